// Package errs defines the error kinds the relay can return to a caller.
//
// Every failure in the request pipeline ends up as an *Error. Handlers switch
// on Kind to pick the HTTP status and render the error with Body, so the
// caller always receives a well-formed JSON object.
package errs

import (
	"errors"
	"net/http"
)

// Kind classifies an error by whose fault it is.
type Kind int

const (
	// KindServer is the catch-all for unexpected failures.
	KindServer Kind = iota
	// KindValidation means the caller sent bad or missing input.
	KindValidation
	// KindConfiguration means the deployment is missing credentials.
	KindConfiguration
	// KindUpstream means Birdeye rejected the submission.
	KindUpstream
	// KindMethodNotAllowed means the request used something other than POST.
	KindMethodNotAllowed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindConfiguration:
		return "configuration_error"
	case KindUpstream:
		return "upstream_error"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "server_error"
	}
}

// UpstreamMessage is the error text attached to every Birdeye failure.
const UpstreamMessage = "Birdeye error"

// Error is the single error type surfaced to callers.
type Error struct {
	Kind    Kind
	Message string

	// Status is only meaningful for KindUpstream, where it carries the
	// upstream HTTP status code. Other kinds derive their status from Kind.
	Status int

	// Fields lists each failed field check for validation errors.
	Fields []string
	// Allowed enumerates recognized location labels.
	Allowed []string
	// Details is the parsed upstream response body, or its raw text.
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the error to the status code sent to the caller.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindUpstream:
		if e.Status >= 400 && e.Status <= 599 {
			return e.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Body is the JSON shape written for every error response.
type Body struct {
	Error   string   `json:"error"`
	Fields  []string `json:"fields,omitempty"`
	Allowed []string `json:"allowed,omitempty"`
	Details any      `json:"details,omitempty"`
}

// Body returns the serializable response body for the error.
func (e *Error) Body() Body {
	return Body{
		Error:   e.Message,
		Fields:  e.Fields,
		Allowed: e.Allowed,
		Details: e.Details,
	}
}

// From converts any error into an *Error. Errors that are not already an
// *Error become KindServer with the original message.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Server(err.Error())
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
