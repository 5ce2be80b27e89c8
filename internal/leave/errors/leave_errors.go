package leaveerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave ledger not found",
		http.StatusNotFound,
	)
	ErrLeaveAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee already has a leave ledger",
		http.StatusConflict,
	)
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type must be one of casual, sick, earned, without_pay",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrCrossYearRequest = apperror.New(
		apperror.CodeInvalidInput,
		"a leave request must start and end in the same year",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidState,
		"not enough leave remaining",
		http.StatusUnprocessableEntity,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already requested in an overlapping period",
		http.StatusConflict,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"leave request was already reviewed",
		http.StatusUnprocessableEntity,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required when rejecting",
		http.StatusBadRequest,
	)
)
