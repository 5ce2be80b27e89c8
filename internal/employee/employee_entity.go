package employee

import (
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
	RoleFormer    = "former"

	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is the aggregate root. ID is assigned once at hire and never changes.
type Employee struct {
	ID               string     `gorm:"type:varchar(32);primaryKey"`
	Name             string     `gorm:"type:varchar(120)"`
	Image            string     `gorm:"type:varchar(255)"`
	WorkEmail        string     `gorm:"type:varchar(255);uniqueIndex:uq_employee_work_email,where:work_email <> ''"`
	PersonalEmail    string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_personal_email"`
	Password         string     `gorm:"type:varchar(255)"`
	Role             string     `gorm:"type:varchar(20);not null;default:'user';index"`
	Status           string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	DOB              *time.Time `gorm:"column:dob;type:date"`
	NID              string     `gorm:"column:nid;type:varchar(32)"`
	TIN              string     `gorm:"column:tin;type:varchar(32)"`
	Phone            string     `gorm:"type:varchar(32)"`
	Gender           string     `gorm:"type:varchar(16)"`
	BloodGroup       string     `gorm:"type:varchar(8)"`
	MaritalStatus    string     `gorm:"type:varchar(16)"`
	PresentAddress   string     `gorm:"type:text"`
	PermanentAddress string     `gorm:"type:text"`
	Facebook         string     `gorm:"type:varchar(255)"`
	Twitter          string     `gorm:"type:varchar(255)"`
	Linkedin         string     `gorm:"type:varchar(255)"`
	Discord          string     `gorm:"type:varchar(64)"`
	Personality      string     `gorm:"type:varchar(16)"`
	Note             string     `gorm:"type:text"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeBasic is the directory row shown in pickers.
type EmployeeBasic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WorkEmail   string `json:"work_email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleModerator, RoleUser, RoleFormer:
		return true
	}
	return false
}
