package passwallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/passwallet/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAppKey is returned when no app key is provided at
	// construction.
	ErrMissingAppKey = errors.New("app key is required")

	// ErrUnauthorized is returned when the server rejects the app key
	// (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized: invalid or missing app key")

	// ErrValidationFailed is returned when the server rejects the
	// request content (HTTP 422).
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilPass is returned when a pass operation is called with a nil
	// pass.
	ErrNilPass = errors.New("pass is nil")
)

// APIError represents a non-2xx response from the PassWallet API that
// is neither a validation failure nor a transport problem.
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

// FieldError is a single field's validation detail.
type FieldError struct {
	Field   string
	Reasons []string
}

// ValidationError represents an HTTP 422 response. It preserves the
// server message and the per-field reasons in server order.
type ValidationError struct {
	Message string
	Errors  []FieldError
}

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

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// wrapError converts internal API errors to public errors so that
// errors.Is() and errors.As() work against this package's types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, api.ErrMissingAppKey) {
		return ErrMissingAppKey
	}

	var validationErr *api.ValidationError
	if errors.As(err, &validationErr) {
		fields := make([]FieldError, 0, len(validationErr.Errors))
		for _, fieldErr := range validationErr.Errors {
			fields = append(fields, FieldError{
				Field:   fieldErr.Field,
				Reasons: fieldErr.Reasons,
			})
		}
		return &ValidationError{
			Message: validationErr.Message,
			Errors:  fields,
		}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
