package offboardingerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrOffboardingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Offboarding not found",
		http.StatusNotFound,
	)
	ErrOffboardingAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Offboarding already initiated for this employee",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidResignationDate = apperror.New(
		apperror.CodeInvalidInput,
		"Resignation date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
