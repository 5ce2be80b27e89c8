package employeebank

import (
	"context"

	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ListOptions = query.Options{
	SearchFields: []string{"employee_id"},
	SortableFields: map[string]string{
		"created_at":  "created_at",
		"employee_id": "employee_id",
	},
	DefaultSort: "created_at",
	DefaultDesc: true,
	TieBreaker:  "id",
}

//go:generate mockgen -source=employee_bank_repo.go -destination=mock/employee_bank_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, spec query.Spec) ([]EmployeeBank, int64, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeBank, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	Upsert(ctx context.Context, bank *EmployeeBank) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, spec query.Spec) ([]EmployeeBank, int64, error) {
	var total int64
	if err := transaction.DB(ctx, r.db).Model(&EmployeeBank{}).Scopes(spec.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []EmployeeBank
	if err := transaction.DB(ctx, r.db).Scopes(spec.Apply()).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeeBank, error) {
	var bank EmployeeBank
	if err := transaction.DB(ctx, r.db).Where("employee_id = ?", employeeID).First(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

// EmployeeExists share-locks the employee row, so a concurrent delete waits for the caller's
// transaction to finish.
func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var ids []string
	err := transaction.DB(ctx, r.db).
		Table("employees").
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id = ?", employeeID).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// Upsert replaces the bank list for the employee, creating the row on first write.
func (r *repository) Upsert(ctx context.Context, bank *EmployeeBank) error {
	return transaction.DB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"banks", "updated_at"}),
		}).
		Create(bank).Error
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	res := transaction.DB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Delete(&EmployeeBank{})
	return res.RowsAffected, res.Error
}
