package employeejob

import (
	"errors"

	employeejoberrors "go-hrm/internal/employeejob/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeejoberrors.ErrEmployeeJobNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_job_employee" {
		return employeejoberrors.ErrEmployeeJobAlreadyExists
	}

	return err
}
