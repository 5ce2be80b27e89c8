package payroll

import (
	"errors"

	payrollerrors "go-hrm/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payroll_employee" {
		return payrollerrors.ErrPayrollAlreadyExists
	}

	return err
}
