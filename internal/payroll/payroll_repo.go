package payroll

import (
	"context"

	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
)

// ListOptions is what GET /payrolls may search and sort on.
var ListOptions = query.Options{
	SearchFields: []string{"payrolls.employee_id", "employees.name"},
	SortableFields: map[string]string{
		"created_at":   "payrolls.created_at",
		"employee_id":  "payrolls.employee_id",
		"gross_salary": "payrolls.gross_salary",
		"name":         "employees.name",
	},
	DefaultSort:  "payrolls.created_at",
	DefaultDesc:  true,
	TieBreaker:   "payrolls.id",
	StatusColumn: "payrolls.status",
	Columns: []string{
		"payrolls.*",
		"employees.name AS employee_name",
		"employees.work_email",
		"employee_jobs.department",
		"employee_jobs.designation",
	},
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context, spec query.Spec) ([]PayrollDetail, int64, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Payroll, error)
	FindDetailByEmployeeID(ctx context.Context, employeeID string) (*PayrollDetail, error)
	Update(ctx context.Context, payroll *Payroll) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return transaction.DB(ctx, r.db).
		Table("payrolls").
		Joins("LEFT JOIN employees ON employees.id = payrolls.employee_id").
		Joins("LEFT JOIN employee_jobs ON employee_jobs.employee_id = payrolls.employee_id")
}

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return transaction.DB(ctx, r.db).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context, spec query.Spec) ([]PayrollDetail, int64, error) {
	var total int64
	if err := r.joined(ctx).Scopes(spec.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []PayrollDetail
	if err := r.joined(ctx).Scopes(spec.Apply()).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Payroll, error) {
	var payroll Payroll
	err := transaction.DB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		First(&payroll).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) FindDetailByEmployeeID(ctx context.Context, employeeID string) (*PayrollDetail, error) {
	var rows []PayrollDetail
	err := r.joined(ctx).
		Select(ListOptions.Columns).
		Where("payrolls.employee_id = ?", employeeID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return transaction.DB(ctx, r.db).Save(payroll).Error
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return transaction.DB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Delete(&Payroll{}).Error
}
