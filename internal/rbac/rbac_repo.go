package rbac

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListRolePermissions(ctx context.Context) ([]RolePermission, error)
	CreateRolePermissions(ctx context.Context, perms []RolePermission) error
	DeleteRolePermission(ctx context.Context, perm RolePermission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	var result []RolePermission
	err := r.db.WithContext(ctx).
		Order("role, resource, action").
		Find(&result).Error
	return result, err
}

func (r *repository) CreateRolePermissions(ctx context.Context, perms []RolePermission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&perms).Error
}

func (r *repository) DeleteRolePermission(ctx context.Context, perm RolePermission) error {
	return r.db.WithContext(ctx).
		Where("role = ? AND resource = ? AND action = ?", perm.Role, perm.Resource, perm.Action).
		Delete(&RolePermission{}).Error
}
