package client

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// payloadValidator checks a CREATE payload before any request is issued.
// Only locally-known required fields are checked; the server remains the
// authority on payload shape.
type payloadValidator func(stackdriver.Record) error

func validatorFor(collection string) payloadValidator {
	switch normalizeCollectionName(collection) {
	case "groups":
		return validateGroupPayload
	default:
		return nil
	}
}

func validateGroupPayload(payload stackdriver.Record) error {
	err := validation.Errors{
		"name": validation.Validate(payload["name"], validation.Required),
	}.Filter()
	if err != nil {
		return asValidationError(err)
	}

	return nil
}

// asValidationError converts ozzo validation errors into the library's
// ValidationError so callers classify pre-flight and server rejections the
// same way.
func asValidationError(err error) error {
	fieldErrors := make(map[string][]string)

	if errs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range errs {
			fieldErrors[field] = append(fieldErrors[field], fieldErr.Error())
		}
	}

	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}

	return &stackdriver.ValidationError{
		APIError: stackdriver.APIError{
			Message: "invalid payload: " + strings.Join(fields, ", "),
		},
		FieldErrors: fieldErrors,
	}
}
