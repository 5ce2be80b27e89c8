package onboardingerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrOnboardingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Onboarding not found",
		http.StatusNotFound,
	)
	ErrOnboardingAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has an onboarding checklist",
		http.StatusConflict,
	)
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Onboarding task not found",
		http.StatusNotFound,
	)
)
