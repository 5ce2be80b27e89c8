package departmenterrors

import (
	"go-hrm/internal/shared/apperror"
	"net/http"
)

var (
	ErrUnknownDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown department",
		http.StatusBadRequest,
	)
)
