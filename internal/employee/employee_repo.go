package employee

import (
	"context"
	"strings"

	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
)

// ListOptions is what GET /employees may search and sort on. Columns leaves out password.
var ListOptions = query.Options{
	SearchFields: []string{"name", "work_email"},
	SortableFields: map[string]string{
		"created_at": "created_at",
		"name":       "name",
		"work_email": "work_email",
		"id":         "id",
		"status":     "status",
	},
	DefaultSort:  "created_at",
	DefaultDesc:  true,
	TieBreaker:   "id",
	StatusColumn: "status",
	Columns: []string{
		"id", "name", "image", "work_email", "personal_email", "role", "status",
		"dob", "nid", "tin", "phone", "gender", "blood_group", "marital_status",
		"present_address", "permanent_address", "facebook", "twitter", "linkedin",
		"discord", "personality", "note", "created_at", "updated_at",
	},
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, employee *Employee) error
	FindAll(ctx context.Context, spec query.Spec) ([]Employee, int64, error)
	FindBasics(ctx context.Context) ([]EmployeeBasic, error)
	FindByRoles(ctx context.Context, roles []string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, employee *Employee) error {
	return transaction.DB(ctx, r.db).Create(employee).Error
}

func (r *repository) FindAll(ctx context.Context, spec query.Spec) ([]Employee, int64, error) {
	var total int64
	if err := transaction.DB(ctx, r.db).Model(&Employee{}).Scopes(spec.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []Employee
	if err := transaction.DB(ctx, r.db).Scopes(spec.Apply()).Find(&employees).Error; err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

func (r *repository) FindBasics(ctx context.Context) ([]EmployeeBasic, error) {
	var rows []EmployeeBasic
	err := transaction.DB(ctx, r.db).
		Table("employees").
		Select("employees.id, employees.name, employees.work_email, employee_jobs.department, employee_jobs.designation").
		Joins("LEFT JOIN employee_jobs ON employee_jobs.employee_id = employees.id").
		Order("employees.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByRoles(ctx context.Context, roles []string) ([]Employee, error) {
	var employees []Employee
	err := transaction.DB(ctx, r.db).
		Select(ListOptions.Columns).
		Where("role IN ?", roles).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var employee Employee
	if err := transaction.DB(ctx, r.db).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail matches either the work or the personal address, case-insensitively.
func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var employee Employee
	err := transaction.DB(ctx, r.db).
		Where("LOWER(work_email) = ? OR LOWER(personal_email) = ?", email, email).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	res := transaction.DB(ctx, r.db).
		Model(&Employee{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := transaction.DB(ctx, r.db).Where("id = ?", id).Delete(&Employee{})
	return res.RowsAffected, res.Error
}
