package onboarding

import (
	"context"
	"strings"
	"time"

	onboardingerrors "go-hrm/internal/onboarding/errors"
	"go-hrm/internal/shared/transaction"

	"go.uber.org/zap"
)

//go:generate mockgen -source=onboarding_service.go -destination=mock/onboarding_service_mock.go -package=mock
type Service interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (OnboardingResponse, error)
	UpdateTaskStatus(ctx context.Context, employeeID string, req UpdateTaskStatusRequest) (OnboardingResponse, error)
}

type service struct {
	repo   Repository
	tx     transaction.Manager
	logger *zap.Logger
}

func NewService(repo Repository, tx transaction.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{repo: repo, tx: tx, logger: l}
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (OnboardingResponse, error) {
	o, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return OnboardingResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*o), nil
}

// UpdateTaskStatus matches the task by name, ignoring case and surrounding space.
func (s *service) UpdateTaskStatus(ctx context.Context, employeeID string, req UpdateTaskStatusRequest) (OnboardingResponse, error) {
	var updated *EmployeeOnboarding
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		o, err := s.repo.FindByEmployeeIDForUpdate(ctx, employeeID)
		if err != nil {
			return mapRepositoryError(err)
		}

		name := strings.TrimSpace(req.TaskName)
		found := false
		for i := range o.Tasks {
			if strings.EqualFold(o.Tasks[i].TaskName, name) {
				o.Tasks[i].Status = req.Status
				found = true
				break
			}
		}
		if !found {
			return onboardingerrors.ErrTaskNotFound
		}

		if err := s.repo.Update(ctx, o); err != nil {
			return mapRepositoryError(err)
		}
		updated = o
		return nil
	})
	if err != nil {
		s.logger.Warn("update onboarding task failed",
			zap.String("employee_id", employeeID),
			zap.String("task_name", req.TaskName),
			zap.Error(err),
		)
		return OnboardingResponse{}, err
	}

	s.logger.Info("onboarding task updated",
		zap.String("employee_id", employeeID),
		zap.String("task_name", req.TaskName),
		zap.String("status", req.Status),
	)
	return mapToResponse(*updated), nil
}

func mapToResponse(o EmployeeOnboarding) OnboardingResponse {
	return OnboardingResponse{
		EmployeeID: o.EmployeeID,
		Tasks:      o.Tasks,
		Completed:  o.Completed(),
		Total:      len(o.Tasks),
		UpdatedAt:  o.UpdatedAt.Format(time.RFC3339),
	}
}
