package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is the transport view of an error, ready for the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP resolves any error into an HTTPError. Errors that are not (and do not wrap)
// an *AppError are reported as internal errors without leaking their text.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}
