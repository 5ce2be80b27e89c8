package tool

import (
	"errors"

	toolerrors "go-hrm/internal/tool/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return toolerrors.ErrToolNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_tool_platform" {
		return toolerrors.ErrToolAlreadyExists
	}
	return err
}
