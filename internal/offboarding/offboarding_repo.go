package offboarding

import (
	"context"

	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
)

//go:generate mockgen -source=offboarding_repo.go -destination=mock/offboarding_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, o *EmployeeOffboarding) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeOffboarding, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
	FindEmployeeContact(ctx context.Context, employeeID string) (EmployeeContact, error)
	SetEmployeeStatus(ctx context.Context, employeeID, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *EmployeeOffboarding) error {
	return transaction.DB(ctx, r.db).Create(o).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeOffboarding, error) {
	var o EmployeeOffboarding
	if err := transaction.DB(ctx, r.db).Where("employee_id = ?", employeeID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return transaction.DB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Delete(&EmployeeOffboarding{}).Error
}

func (r *repository) FindEmployeeContact(ctx context.Context, employeeID string) (EmployeeContact, error) {
	var rows []EmployeeContact
	err := transaction.DB(ctx, r.db).
		Table("employees").
		Select("id, name, work_email, personal_email").
		Where("id = ?", employeeID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return EmployeeContact{}, err
	}
	if len(rows) == 0 {
		return EmployeeContact{}, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

func (r *repository) SetEmployeeStatus(ctx context.Context, employeeID, status string) (int64, error) {
	res := transaction.DB(ctx, r.db).
		Table("employees").
		Where("id = ?", employeeID).
		Update("status", status)
	return res.RowsAffected, res.Error
}
