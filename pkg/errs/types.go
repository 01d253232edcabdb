package errs

import "net/http"

// Validation creates a caller-fault error. fields names each failed check.
func Validation(message string, fields ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Fields:  fields,
	}
}

// InvalidLocation creates the validation error returned for an unknown
// location label, listing the labels the caller may use instead.
func InvalidLocation(allowed []string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "invalid or missing location",
		Allowed: allowed,
	}
}

// Configuration creates a deployment-fault error.
func Configuration(message string) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Message: message,
	}
}

// Upstream wraps a non-success Birdeye response.
func Upstream(status int, details any) *Error {
	return &Error{
		Kind:    KindUpstream,
		Message: UpstreamMessage,
		Status:  status,
		Details: details,
	}
}

// Server creates a catch-all error carrying the triggering message.
func Server(message string) *Error {
	if message == "" {
		message = "Server error"
	}
	return &Error{
		Kind:    KindServer,
		Message: message,
	}
}

// MethodNotAllowed is returned for any method other than POST or OPTIONS.
func MethodNotAllowed() *Error {
	return &Error{
		Kind:    KindMethodNotAllowed,
		Message: http.StatusText(http.StatusMethodNotAllowed),
	}
}
