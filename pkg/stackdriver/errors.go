package stackdriver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrAPIKeyRequired     = errors.New("apikey is required when talking to the Stackdriver API")
	ErrEndpointRequired   = errors.New("API endpoint is required")
	ErrMissingData        = errors.New("result does not contain a data field")
	ErrMissingID          = errors.New("record has no id; only created records can be deleted")
	ErrUnknownCollection  = errors.New("unknown resource collection")
	ErrVerbNotSupported   = errors.New("verb not supported by collection")
	ErrCacheDisabled      = errors.New("cache disabled")
	ErrCacheMiss          = errors.New("cache miss")
	ErrNATSConfigRequired = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCache   = errors.New("unsupported cache type")
)

// APIError represents a non-2xx response from the API that is not otherwise
// classified. It carries the HTTP status and the server-provided message.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("stackdriver: %s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("stackdriver: %s (status: %d)", e.Message, e.StatusCode)
}

// NotFoundError is returned when the server reports that the requested
// resource does not exist.
type NotFoundError struct {
	APIError
}

// ValidationError is returned when the server (or the pre-flight check)
// rejects a payload. FieldErrors maps field names to rejection messages when
// the server provides them.
type ValidationError struct {
	APIError

	FieldErrors map[string][]string `json:"field_errors,omitempty"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return e.APIError.Error()
	}

	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}

	return fmt.Sprintf("%s (fields: %s)", e.APIError.Error(), strings.Join(fields, ", "))
}

// TransportError represents a network-level failure: the request never
// produced an HTTP response.
type TransportError struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("stackdriver: %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether the error classifies as a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsValidation reports whether the error classifies as a payload rejection.
func IsValidation(err error) bool {
	validation := &ValidationError{}

	return errors.As(err, &validation)
}

// IsTransport reports whether the error is a network-level failure.
func IsTransport(err error) bool {
	transport := &TransportError{}

	return errors.As(err, &transport)
}

// errorBody is the error envelope the API returns on failures.
type errorBody struct {
	Error struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	} `json:"error"`
}

const maxErrorExcerpt = 200

// ParseErrorResponse maps a non-2xx response to an error from the taxonomy.
// The server's error envelope is used when it parses; otherwise a body
// excerpt stands in for the message.
func ParseErrorResponse(statusCode int, body []byte) error {
	var parsed errorBody

	message := ""
	code := ""
	fieldErrors := map[string][]string(nil)

	if json.Unmarshal(body, &parsed) == nil && parsed.Error.Message != "" {
		message = parsed.Error.Message
		code = parsed.Error.Code
		fieldErrors = parsed.Error.Errors
	} else {
		message = strings.TrimSpace(string(body))
		if len(message) > maxErrorExcerpt {
			message = message[:maxErrorExcerpt]
		}

		if message == "" {
			message = http.StatusText(statusCode)
		}
	}

	apiErr := APIError{StatusCode: statusCode, Code: code, Message: message}

	switch statusCode {
	case http.StatusNotFound:
		return &NotFoundError{APIError: apiErr}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ValidationError{APIError: apiErr, FieldErrors: fieldErrors}
	default:
		return &apiErr
	}
}
