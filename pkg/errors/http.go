package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    map[string]any
}

// NewHTTPError creates an HTTPError without details.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewHTTPErrorWithDetails creates an HTTPError carrying a field-level detail payload.
func NewHTTPErrorWithDetails(statusCode int, message string, details map[string]any) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Details: details}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
