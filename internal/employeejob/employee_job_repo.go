package employeejob

import (
	"context"

	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_job_repo.go -destination=mock/employee_job_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, job *EmployeeJob) error
	CountByDepartment(ctx context.Context, department string) (int64, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeJob, error)
	Update(ctx context.Context, job *EmployeeJob) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, job *EmployeeJob) error {
	return transaction.DB(ctx, r.db).Create(job).Error
}

func (r *repository) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var total int64
	err := transaction.DB(ctx, r.db).
		Model(&EmployeeJob{}).
		Where("department = ?", department).
		Count(&total).Error
	return total, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeJob, error) {
	var job EmployeeJob
	err := transaction.DB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) Update(ctx context.Context, job *EmployeeJob) error {
	return transaction.DB(ctx, r.db).Save(job).Error
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return transaction.DB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Delete(&EmployeeJob{}).Error
}
