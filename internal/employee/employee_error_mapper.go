package employee

import (
	"errors"

	employeeerrors "go-hrm/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_employee_personal_email":
			return employeeerrors.ErrEmployeeAlreadyExists
		case "uq_employee_work_email":
			return employeeerrors.ErrWorkEmailTaken
		case "uq_employee_id", "employees_pkey":
			return employeeerrors.ErrEmployeeIDConflict
		}
	}

	return err
}
