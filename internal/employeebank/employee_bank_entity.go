package employeebank

import (
	"time"

	"github.com/google/uuid"
)

type Bank struct {
	BankName      string `json:"bank_name"`
	Branch        string `json:"branch,omitempty"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number,omitempty"`
	IsDefault     bool   `json:"is_default"`
}

type EmployeeBank struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_employee_bank_employee"`
	Banks      []Bank    `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (EmployeeBank) TableName() string {
	return "employee_banks"
}
