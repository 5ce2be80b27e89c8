package offboarding

import (
	"time"

	"github.com/google/uuid"
)

const employeeStatusInactive = "inactive"

type EmployeeOffboarding struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID      string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_offboarding_employee"`
	ResignationDate time.Time `gorm:"type:date;not null"`
	Reason          string    `gorm:"type:text"`
	InitiatedBy     string    `gorm:"type:varchar(32)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (EmployeeOffboarding) TableName() string {
	return "employee_offboardings"
}

// EmployeeContact is the slice of an employee row needed to notify them.
type EmployeeContact struct {
	ID            string
	Name          string
	WorkEmail     string
	PersonalEmail string
}

func (c EmployeeContact) Email() string {
	if c.WorkEmail != "" {
		return c.WorkEmail
	}
	return c.PersonalEmail
}
