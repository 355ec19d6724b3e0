package api

import (
	"errors"
	"fmt"
	"strings"
)

// unauthorizedMessage is the fixed text for 401 responses; the server
// body is not consulted.
const unauthorizedMessage = "unauthorized: invalid or missing app key"

// Common API errors that can be checked with errors.Is.
var (
	// ErrMissingAppKey indicates no app key was provided.
	ErrMissingAppKey = errors.New("app key is required")
	// ErrUnauthorized indicates the app key was rejected by the server.
	ErrUnauthorized = errors.New(unauthorizedMessage)
	// ErrValidationFailed indicates the server rejected the request
	// content (HTTP 422).
	ErrValidationFailed = errors.New("validation failed")
)

// APIError represents a non-2xx response that is neither a validation
// failure nor a transport problem.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return e.StatusCode == 401 && target == ErrUnauthorized
}

// FieldError is one entry of a 422 envelope's errors list.
type FieldError struct {
	Field   string   `json:"field"`
	Reasons []string `json:"reasons"`
}

// ValidationError represents an HTTP 422 response with per-field
// detail.
type ValidationError struct {
	Message string
	Errors  []FieldError
}

// Error renders the server message followed by each field's joined
// reasons, in server order.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	for _, fieldErr := range e.Errors {
		b.WriteString("; ")
		b.WriteString(fieldErr.Field)
		b.WriteString(": ")
		b.WriteString(strings.Join(fieldErr.Reasons, ", "))
	}
	return b.String()
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NetworkError represents a failure below the HTTP layer, such as a
// refused connection or a TLS handshake problem.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
