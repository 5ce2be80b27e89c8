package leave

import (
	"errors"

	leaveerrors "go-hrm/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapLedgerError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_employee" {
		return leaveerrors.ErrLeaveAlreadyExists
	}
	return err
}

func mapRequestError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveRequestNotFound
	}
	return err
}
