package stackdriver_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()
	t.Run("404 becomes NotFoundError", func(t *testing.T) {
		t.Parallel()

		err := stackdriver.ParseErrorResponse(http.StatusNotFound,
			[]byte(`{"error": {"code": "not_found", "message": "no such user"}}`))

		notFound := &stackdriver.NotFoundError{}
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "no such user", notFound.Message)
		assert.Equal(t, "not_found", notFound.Code)
		assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
	})

	t.Run("422 becomes ValidationError", func(t *testing.T) {
		t.Parallel()

		err := stackdriver.ParseErrorResponse(http.StatusUnprocessableEntity,
			[]byte(`{"error": {"message": "invalid", "errors": {"name": ["is required", "too short"]}}}`))

		validation := &stackdriver.ValidationError{}
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, []string{"is required", "too short"}, validation.FieldErrors["name"])
		assert.Contains(t, validation.Error(), "name")
	})

	t.Run("400 becomes ValidationError", func(t *testing.T) {
		t.Parallel()

		err := stackdriver.ParseErrorResponse(http.StatusBadRequest, []byte(`{"error": {"message": "bad"}}`))
		assert.True(t, stackdriver.IsValidation(err))
	})

	t.Run("other statuses become APIError", func(t *testing.T) {
		t.Parallel()

		err := stackdriver.ParseErrorResponse(http.StatusServiceUnavailable, []byte(`{"error": {"message": "down"}}`))

		apiErr := &stackdriver.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		assert.False(t, stackdriver.IsNotFound(err))
		assert.False(t, stackdriver.IsValidation(err))
	})

	t.Run("unparseable body falls back to excerpt", func(t *testing.T) {
		t.Parallel()

		err := stackdriver.ParseErrorResponse(http.StatusBadGateway, []byte("<html>bad gateway</html>"))

		apiErr := &stackdriver.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "<html>bad gateway</html>", apiErr.Message)
	})

	t.Run("empty body falls back to status text", func(t *testing.T) {
		t.Parallel()

		err := stackdriver.ParseErrorResponse(http.StatusInternalServerError, nil)

		apiErr := &stackdriver.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
	})
}

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()
	t.Run("wrapped errors still classify", func(t *testing.T) {
		t.Parallel()

		notFound := stackdriver.ParseErrorResponse(http.StatusNotFound, nil)
		wrapped := fmt.Errorf("getting group 9: %w", notFound)

		assert.True(t, stackdriver.IsNotFound(wrapped))
		assert.False(t, stackdriver.IsValidation(wrapped))
		assert.False(t, stackdriver.IsTransport(wrapped))
	})

	t.Run("transport error unwraps to cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		transportErr := &stackdriver.TransportError{Op: "GET", URL: "http://example.test/", Err: cause}

		assert.True(t, stackdriver.IsTransport(transportErr))
		assert.ErrorIs(t, transportErr, cause)
		assert.Contains(t, transportErr.Error(), "connection refused")
	})

	t.Run("plain errors do not classify", func(t *testing.T) {
		t.Parallel()

		plain := errors.New("some error")

		assert.False(t, stackdriver.IsNotFound(plain))
		assert.False(t, stackdriver.IsValidation(plain))
		assert.False(t, stackdriver.IsTransport(plain))
	})
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	withCode := &stackdriver.APIError{StatusCode: 403, Code: "forbidden", Message: "nope"}
	assert.Equal(t, "stackdriver: forbidden: nope (status: 403)", withCode.Error())

	withoutCode := &stackdriver.APIError{StatusCode: 500, Message: "boom"}
	assert.Equal(t, "stackdriver: boom (status: 500)", withoutCode.Error())
}
