package onboarding

import (
	"time"

	"go-hrm/internal/setting"

	"github.com/google/uuid"
)

const (
	TaskPending   = "pending"
	TaskCompleted = "completed"
)

type OnboardingTask struct {
	TaskName   string `json:"task_name"`
	AssignedTo string `json:"assigned_to"`
	Status     string `json:"status"`
}

type EmployeeOnboarding struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID string           `gorm:"type:varchar(32);not null;uniqueIndex:uq_onboarding_employee"`
	Tasks      []OnboardingTask `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt  time.Time        `gorm:"autoCreateTime"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime"`
}

func (EmployeeOnboarding) TableName() string {
	return "employee_onboardings"
}

// FromTemplate builds a checklist with every templated task pending.
func FromTemplate(employeeID string, template []setting.OnboardingTaskTemplate) *EmployeeOnboarding {
	tasks := make([]OnboardingTask, 0, len(template))
	for _, t := range template {
		tasks = append(tasks, OnboardingTask{TaskName: t.Name, AssignedTo: t.AssignedTo, Status: TaskPending})
	}
	return &EmployeeOnboarding{ID: uuid.New(), EmployeeID: employeeID, Tasks: tasks}
}

func (o *EmployeeOnboarding) Completed() int {
	n := 0
	for _, t := range o.Tasks {
		if t.Status == TaskCompleted {
			n++
		}
	}
	return n
}
