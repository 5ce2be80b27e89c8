package setting

import "time"

const (
	KeyLeaveAllottedDays = "leave_allotted_days"
	KeyOnboardingTasks   = "onboarding_tasks"
)

// Setting is one key in the settings table. Value holds a JSON document.
type Setting struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Setting) TableName() string {
	return "settings"
}

type LeaveAllottedDays struct {
	Casual     int `json:"casual"`
	Sick       int `json:"sick"`
	WithoutPay int `json:"without_pay"`
}

type OnboardingTaskTemplate struct {
	Name       string `json:"name" binding:"required"`
	AssignedTo string `json:"assigned_to" binding:"required"`
}

// Used until an admin saves their own values.
var (
	DefaultLeaveAllottedDays = LeaveAllottedDays{Casual: 10, Sick: 14, WithoutPay: 30}

	DefaultOnboardingTasks = []OnboardingTaskTemplate{
		{Name: "Sign employment contract", AssignedTo: "hr"},
		{Name: "Create work email account", AssignedTo: "admin"},
		{Name: "Prepare workstation", AssignedTo: "admin"},
		{Name: "Introduce to the team", AssignedTo: "manager"},
	}
)
