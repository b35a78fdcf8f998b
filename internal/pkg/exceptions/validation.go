package exceptions

import (
	"errors"
	"patient-record-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BuildFieldErrors converts the result of a single-value validation into
// field errors named after field. validate.Var leaves Field() empty, so the
// caller supplies the name.
func BuildFieldErrors(field string, err error) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: field, Message: constvars.ErrDevInvalidInput}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, validationErr := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   field,
			Message: formatTagMessage(validationErr.Tag(), validationErr.Param()),
		})
	}
	return fieldErrors
}

func FormatFieldErrors(details []FieldError) string {
	if len(details) == 0 {
		return constvars.ErrDevInvalidInput
	}

	messages := make([]string, len(details))
	for i, detail := range details {
		messages[i] = detail.Field + " " + detail.Message
	}
	return strings.Join(messages, ", ")
}

func formatTagMessage(tag, param string) string {
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(param), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", param, 1)
		}
	}
	return customMessage
}
