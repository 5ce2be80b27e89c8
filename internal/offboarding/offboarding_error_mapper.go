package offboarding

import (
	"errors"

	offboardingerrors "go-hrm/internal/offboarding/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return offboardingerrors.ErrOffboardingNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_offboarding_employee" {
		return offboardingerrors.ErrOffboardingAlreadyExists
	}
	return err
}
