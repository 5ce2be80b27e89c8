package employeejoberrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee job not found",
		http.StatusNotFound,
	)
	ErrEmployeeJobAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has a job record",
		http.StatusConflict,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joining_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
