package toolerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrToolNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tool not found",
		http.StatusNotFound,
	)
	ErrToolAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Tool with this platform already exists",
		http.StatusConflict,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Expire date must not be before purchase date",
		http.StatusBadRequest,
	)
)
