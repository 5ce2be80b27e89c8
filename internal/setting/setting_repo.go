package setting

import (
	"context"

	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=setting_repo.go -destination=mock/setting_repo_mock.go -package=mock
type Repository interface {
	FindByKey(ctx context.Context, key string) (*Setting, error)
	Upsert(ctx context.Context, setting *Setting) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByKey(ctx context.Context, key string) (*Setting, error) {
	var s Setting
	if err := transaction.DB(ctx, r.db).Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Upsert(ctx context.Context, setting *Setting) error {
	return transaction.DB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(setting).Error
}
