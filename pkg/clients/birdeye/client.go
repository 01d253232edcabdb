package birdeye

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Client defines the interface for interacting with the Birdeye contactUs API
type Client interface {
	SubmitContact(ctx context.Context, businessID string, payload ContactUsPayload) (*Response, error)
}

// Response is the raw upstream reply.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream accepted the submission.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Birdeye client. A nil httpClient uses
// http.DefaultClient.
func NewClient(apiKey, baseURL string, httpClient *http.Client, logger zerolog.Logger) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger.With().Str("component", "birdeye").Logger(),
	}
}

// ContactUsURL builds the endpoint for businessID. Both the business ID and
// the API key are escaped.
func ContactUsURL(baseURL, businessID, apiKey string) string {
	return fmt.Sprintf("%s/resources/v1/contactUs/%s?api_key=%s",
		strings.TrimRight(baseURL, "/"), url.PathEscape(businessID), url.QueryEscape(apiKey))
}

// SubmitContact posts payload once. A non-2xx reply is not an error; the
// caller inspects Response.StatusCode.
func (c *clientImpl) SubmitContact(ctx context.Context, businessID string, payload ContactUsPayload) (*Response, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ContactUsURL(c.baseURL, businessID, c.apiKey), bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling Birdeye: %w", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	c.logger.Debug().
		Str("business_id", businessID).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Birdeye contactUs response")

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// redact strips the API key from transport errors, which embed the URL.
func redact(err error, apiKey string) error {
	var urlErr *url.Error
	if apiKey == "" || !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, url.QueryEscape(apiKey), "REDACTED"),
		Err: urlErr.Err,
	}
}
