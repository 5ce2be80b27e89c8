package settingerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrInvalidLeaveAllotment = apperror.New(
		apperror.CodeInvalidInput,
		"Leave allotments must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidOnboardingTasks = apperror.New(
		apperror.CodeInvalidInput,
		"Onboarding tasks need a name and an assignee",
		http.StatusBadRequest,
	)
)
