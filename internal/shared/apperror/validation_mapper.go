package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name into a label: joining_date -> Joining Date.
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError reports the first failing field of a validator error.
// Field names come from json tags once Init has been called.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return ErrInvalidInput
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "oneof":
		return fieldError("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	case "email":
		return fieldError("%s must be a valid email address", field)
	case "datetime":
		return fieldError("%s must use the %s format", field, e.Param())
	case "min":
		return fieldError("%s must be at least %s characters", field, e.Param())
	case "max":
		return fieldError("%s must be at most %s characters", field, e.Param())
	case "len":
		return fieldError("%s must be exactly %s characters", field, e.Param())
	default:
		return InvalidField(field)
	}
}

func fieldError(format string, args ...any) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf(format, args...), http.StatusBadRequest)
}
