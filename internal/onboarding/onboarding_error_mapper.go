package onboarding

import (
	"errors"

	onboardingerrors "go-hrm/internal/onboarding/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return onboardingerrors.ErrOnboardingNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_onboarding_employee" {
		return onboardingerrors.ErrOnboardingAlreadyExists
	}
	return err
}
