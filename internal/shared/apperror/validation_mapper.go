package apperror

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// full_name -> Full Name
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a binding error into a user-facing AppError.
// Only the first failing field is reported.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		// Field() already returns the json name, see Init.
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		case "max":
			return FieldTooLong(humanReadableField, e.Param())
		case "min":
			if e.Kind() == reflect.String {
				return RequiredField(humanReadableField)
			}
			return FieldTooSmall(humanReadableField, e.Param())
		default:
			return InvalidField(humanReadableField)
		}
	}

	return Wrap(err, ErrInvalidInput.Code, ErrInvalidInput.Message, ErrInvalidInput.HTTPStatus)
}
