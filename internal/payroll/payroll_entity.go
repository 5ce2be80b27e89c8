package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_payroll_employee"`
	// GrossSalary is stored in minor currency units.
	GrossSalary int64     `gorm:"type:bigint;not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

// PayrollDetail is a payroll joined with the employee's name and job.
type PayrollDetail struct {
	Payroll
	EmployeeName string
	WorkEmail    string
	Department   string
	Designation  string
}
