package tool

import (
	"context"

	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
)

var ListOptions = query.Options{
	SearchFields: []string{"platform", "website"},
	SortableFields: map[string]string{
		"created_at": "created_at",
		"platform":   "platform",
	},
	DefaultSort: "created_at",
	DefaultDesc: true,
	TieBreaker:  "id",
}

//go:generate mockgen -source=tool_repo.go -destination=mock/tool_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, tool *Tool) error
	FindAll(ctx context.Context, spec query.Spec) ([]Tool, int64, error)
	FindByPlatform(ctx context.Context, platform string) (*Tool, error)
	Update(ctx context.Context, tool *Tool) error
	DeleteByPlatform(ctx context.Context, platform string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tool *Tool) error {
	return transaction.DB(ctx, r.db).Create(tool).Error
}

func (r *repository) FindAll(ctx context.Context, spec query.Spec) ([]Tool, int64, error) {
	var total int64
	if err := transaction.DB(ctx, r.db).Model(&Tool{}).Scopes(spec.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tools []Tool
	if err := transaction.DB(ctx, r.db).Scopes(spec.Apply()).Find(&tools).Error; err != nil {
		return nil, 0, err
	}
	return tools, total, nil
}

func (r *repository) FindByPlatform(ctx context.Context, platform string) (*Tool, error) {
	var tool Tool
	if err := transaction.DB(ctx, r.db).Where("platform = ?", platform).First(&tool).Error; err != nil {
		return nil, err
	}
	return &tool, nil
}

func (r *repository) Update(ctx context.Context, tool *Tool) error {
	return transaction.DB(ctx, r.db).Save(tool).Error
}

func (r *repository) DeleteByPlatform(ctx context.Context, platform string) (int64, error) {
	res := transaction.DB(ctx, r.db).Where("platform = ?", platform).Delete(&Tool{})
	return res.RowsAffected, res.Error
}
