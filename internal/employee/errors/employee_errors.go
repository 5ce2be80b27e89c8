package employeeerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same personal email already exists",
		http.StatusConflict,
	)
	ErrWorkEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Work email is already in use",
		http.StatusConflict,
	)
	ErrEmployeeIDConflict = apperror.New(
		apperror.CodeConflict,
		"Employee id already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotDeleted = apperror.New(
		apperror.CodeForbidden,
		"employee is not deleted",
		http.StatusForbidden,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Joining date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"Date of birth must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrImmutableField = apperror.New(
		apperror.CodeInvalidInput,
		"id, role, password and work_email cannot be changed here",
		http.StatusBadRequest,
	)
	ErrEmptyUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No fields to update",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)
)
