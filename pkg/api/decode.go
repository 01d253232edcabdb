package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin/binding"

	"birdeye-relay/pkg/errs"
)

// maxBodyBytes caps how much of a submission is read.
const maxBodyBytes = 1 << 20

// decodedRequest is the output of decodeRequest.
type decodedRequest struct {
	// Preflight is set for OPTIONS; Fields is nil and nothing else runs.
	Preflight bool
	Fields    map[string]any
}

// decodeRequest turns an inbound request into an untyped field map. Only
// POST carries a submission. Bodies that fail to parse yield an empty map so
// the request fails field validation instead.
func decodeRequest(r *http.Request) (decodedRequest, error) {
	switch r.Method {
	case http.MethodOptions:
		return decodedRequest{Preflight: true}, nil
	case http.MethodPost:
	default:
		return decodedRequest{}, errs.MethodNotAllowed()
	}

	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	}

	if mediaType(r.Header.Get("Content-Type")) == binding.MIMEPOSTForm {
		return decodedRequest{Fields: decodeFormBody(body)}, nil
	}
	return decodedRequest{Fields: decodeJSONBody(body)}, nil
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

// decodeJSONBody returns an empty map for anything that is not a JSON object.
func decodeJSONBody(body []byte) map[string]any {
	fields := map[string]any{}
	if len(body) == 0 {
		return fields
	}
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return map[string]any{}
	}
	return fields
}

// decodeFormBody keeps the last value of a repeated key.
func decodeFormBody(body []byte) map[string]any {
	values, _ := url.ParseQuery(string(body))
	fields := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			fields[key] = vals[len(vals)-1]
		}
	}
	return fields
}
