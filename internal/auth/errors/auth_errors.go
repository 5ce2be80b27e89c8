package autherrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrAccountNotActive = apperror.New(
		apperror.CodeForbidden,
		"Account is not active",
		http.StatusForbidden,
	)
	ErrInvitationUsed = apperror.New(
		apperror.CodeInvalidState,
		"Invitation has already been accepted",
		http.StatusUnprocessableEntity,
	)
)
