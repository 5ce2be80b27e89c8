package counter

import (
	"context"
	"time"

	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
)

// TypeDepartmentSerial counts hires per department; the scope is the department name.
const TypeDepartmentSerial = "department_serial"

type Counter struct {
	CounterType string `gorm:"type:varchar(50);primaryKey"`
	Scope       string `gorm:"type:varchar(100);primaryKey"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	// GetNextValue reserves the next value for (counterType, scope). floor is the number of
	// entities already known to exist, so the result is never lower than floor+1.
	GetNextValue(ctx context.Context, counterType, scope string, floor int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, counterType, scope string, floor int64) (int64, error) {
	var nextValue int64

	// Single statement upsert: the row lock is held until the surrounding transaction ends,
	// so concurrent callers on the same scope are serialised.
	err := transaction.DB(ctx, r.db).Raw(`
		INSERT INTO counters (counter_type, scope, last_value, updated_at)
		VALUES (?, ?, ? + 1, now())
		ON CONFLICT (counter_type, scope) DO UPDATE
		SET last_value = GREATEST(counters.last_value, ?) + 1,
			updated_at = now()
		RETURNING last_value
	`, counterType, scope, floor, floor).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
