package onboarding

import (
	"context"

	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=onboarding_repo.go -destination=mock/onboarding_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, onboarding *EmployeeOnboarding) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeOnboarding, error)
	FindByEmployeeIDForUpdate(ctx context.Context, employeeID string) (*EmployeeOnboarding, error)
	Update(ctx context.Context, onboarding *EmployeeOnboarding) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, onboarding *EmployeeOnboarding) error {
	return transaction.DB(ctx, r.db).Create(onboarding).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeOnboarding, error) {
	var o EmployeeOnboarding
	if err := transaction.DB(ctx, r.db).Where("employee_id = ?", employeeID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) FindByEmployeeIDForUpdate(ctx context.Context, employeeID string) (*EmployeeOnboarding, error) {
	var o EmployeeOnboarding
	err := transaction.DB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Update(ctx context.Context, onboarding *EmployeeOnboarding) error {
	return transaction.DB(ctx, r.db).Save(onboarding).Error
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return transaction.DB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Delete(&EmployeeOnboarding{}).Error
}
