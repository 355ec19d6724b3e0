package passwallet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passwallet/client-go/internal/api"
)

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, wrapError(nil))
}

func TestWrapError_MissingAppKey(t *testing.T) {
	assert.ErrorIs(t, wrapError(api.ErrMissingAppKey), ErrMissingAppKey)
}

func TestWrapError_ValidationError(t *testing.T) {
	err := wrapError(&api.ValidationError{
		Message: "Invalid",
		Errors: []api.FieldError{
			{Field: "Name", Reasons: []string{"required"}},
		},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Invalid", validationErr.Message)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "Name", validationErr.Errors[0].Field)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestWrapError_APIError(t *testing.T) {
	err := wrapError(&api.APIError{StatusCode: 404, Message: "Pass not found"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Pass not found", apiErr.Message)
}

func TestWrapError_Unauthorized(t *testing.T) {
	err := wrapError(&api.APIError{StatusCode: 401, Message: "whatever"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestWrapError_NetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrapError(&api.NetworkError{Err: cause, URL: "https://example.com"})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, cause)
}

func TestWrapError_UnknownErrorPassesThrough(t *testing.T) {
	cause := errors.New("something else")
	assert.Same(t, cause, wrapError(cause))
}
