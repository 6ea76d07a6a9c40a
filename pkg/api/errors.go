package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidInput is returned when an argument fails client-side checks.
	// No request is sent.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidResponse is returned when the server answers with something
	// that is not the expected JSON document.
	ErrInvalidResponse = errors.New("invalid response from server")

	errClientConfig = errors.New("invalid client options")
)

// APIError is an error reported by the server in an {"error": "..."} body.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the server's message verbatim, which is what users see.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsAPIError reports whether err carries an [APIError] and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
