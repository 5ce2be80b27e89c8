package employeebankerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrEmployeeBankNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee bank details not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrMultipleDefaultBanks = apperror.New(
		apperror.CodeInvalidInput,
		"Only one bank account can be the default",
		http.StatusBadRequest,
	)
)
