package payrollerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee already has a payroll",
		http.StatusConflict,
	)
	ErrInvalidGrossSalary = apperror.New(
		apperror.CodeInvalidInput,
		"gross salary must not be negative",
		http.StatusBadRequest,
	)
	ErrStatementUnavailable = apperror.New(
		apperror.CodeInvalidState,
		"salary statement is only available for active payrolls",
		http.StatusUnprocessableEntity,
	)
)
