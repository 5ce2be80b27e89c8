package employeejob

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobTypeFullTime    = "full_time"
	JobTypePartTime    = "part_time"
	JobTypeContractual = "contractual"
	JobTypeInternship  = "internship"
)

type EmployeeJob struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_employee_job_employee"`
	Department  string    `gorm:"type:varchar(32);not null;index"`
	ManagerID   string    `gorm:"type:varchar(32)"`
	JobType     string    `gorm:"type:varchar(20);not null"`
	Designation string    `gorm:"type:varchar(100);not null"`
	JoiningDate time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (EmployeeJob) TableName() string {
	return "employee_jobs"
}
