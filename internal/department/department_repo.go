package department

import (
	"context"

	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (map[Department]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type departmentCount struct {
	Department string
	Total      int64
}

func (r *repository) CountEmployees(ctx context.Context) (map[Department]int64, error) {
	var rows []departmentCount
	err := transaction.DB(ctx, r.db).
		Table("employee_jobs").
		Select("department, COUNT(*) AS total").
		Group("department").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[Department]int64, len(rows))
	for _, row := range rows {
		counts[Department(row.Department)] = row.Total
	}
	return counts, nil
}
