package employeejob

import (
	"context"
	"strings"
	"time"

	"go-hrm/internal/department"
	employeejoberrors "go-hrm/internal/employeejob/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_job_service.go -destination=mock/employee_job_service_mock.go -package=mock
type Service interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeJobResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeJobRequest) (EmployeeJobResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeejob.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeejob.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeJobResponse, error) {
	job, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeJobResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*job), nil
}

// Update patches the job record. The employee identifier is never re-derived, even when the
// department or joining date changes.
func (s *service) Update(ctx context.Context, employeeID string, req UpdateEmployeeJobRequest) (EmployeeJobResponse, error) {
	job, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeJobResponse{}, mapRepositoryError(err)
	}

	if req.Department != nil {
		dept, err := department.Parse(*req.Department)
		if err != nil {
			return EmployeeJobResponse{}, err
		}
		job.Department = dept.String()
	}
	if req.ManagerID != nil {
		job.ManagerID = strings.TrimSpace(*req.ManagerID)
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Designation != nil {
		job.Designation = strings.TrimSpace(*req.Designation)
	}
	if req.JoiningDate != nil {
		joiningDate, err := time.Parse("2006-01-02", *req.JoiningDate)
		if err != nil {
			return EmployeeJobResponse{}, employeejoberrors.ErrInvalidJoiningDate
		}
		job.JoiningDate = joiningDate
	}

	if err := s.repo.Update(ctx, job); err != nil {
		s.logger.Error("update employee job failed", zap.String("employee_id", employeeID), zap.Error(err))
		return EmployeeJobResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee job success", zap.String("employee_id", employeeID))
	return mapToResponse(*job), nil
}

func mapToResponse(job EmployeeJob) EmployeeJobResponse {
	return EmployeeJobResponse{
		ID:          job.ID.String(),
		EmployeeID:  job.EmployeeID,
		Department:  job.Department,
		ManagerID:   job.ManagerID,
		JobType:     job.JobType,
		Designation: job.Designation,
		JoiningDate: job.JoiningDate.Format("2006-01-02"),
		CreatedAt:   job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   job.UpdatedAt.Format(time.RFC3339),
	}
}
