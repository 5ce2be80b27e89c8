package offboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrm/internal/notification"
	offboardingerrors "go-hrm/internal/offboarding/errors"
	"go-hrm/internal/shared/transaction"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=offboarding_service.go -destination=mock/offboarding_service_mock.go -package=mock
type Service interface {
	Initiate(ctx context.Context, initiatorID string, req InitiateOffboardingRequest) (OffboardingResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (OffboardingResponse, error)
}

type service struct {
	repo   Repository
	sender notification.Sender
	tx     transaction.Manager
	logger *zap.Logger
}

func NewService(repo Repository, sender notification.Sender, tx transaction.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("offboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("offboarding.service")
	}
	return &service{repo: repo, sender: sender, tx: tx, logger: l}
}

// Initiate records the offboarding and deactivates the employee in one transaction, then
// queues the notice for the employee.
func (s *service) Initiate(ctx context.Context, initiatorID string, req InitiateOffboardingRequest) (OffboardingResponse, error) {
	resignation, err := time.Parse(dateLayout, strings.TrimSpace(req.ResignationDate))
	if err != nil {
		return OffboardingResponse{}, offboardingerrors.ErrInvalidResignationDate
	}

	var (
		record  *EmployeeOffboarding
		contact EmployeeContact
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.repo.FindEmployeeContact(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return offboardingerrors.ErrEmployeeNotFound
			}
			return err
		}
		contact = c

		o := &EmployeeOffboarding{
			ID:              uuid.New(),
			EmployeeID:      req.EmployeeID,
			ResignationDate: resignation,
			Reason:          strings.TrimSpace(req.Reason),
			InitiatedBy:     initiatorID,
		}
		if err := s.repo.Create(ctx, o); err != nil {
			return mapRepositoryError(err)
		}
		if _, err := s.repo.SetEmployeeStatus(ctx, req.EmployeeID, employeeStatusInactive); err != nil {
			return err
		}
		record = o
		return nil
	})
	if err != nil {
		s.logger.Warn("initiate offboarding failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return OffboardingResponse{}, err
	}

	if err := s.sender.OffboardingInitiate(ctx, notification.OffboardingInitiate{
		EmployeeID:      contact.ID,
		Email:           contact.Email(),
		Name:            contact.Name,
		ResignationDate: resignation,
	}); err != nil {
		s.logger.Warn("queue offboarding notice failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
	}

	s.logger.Info("offboarding initiated",
		zap.String("employee_id", req.EmployeeID),
		zap.String("initiated_by", initiatorID),
	)
	return mapToResponse(*record), nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (OffboardingResponse, error) {
	o, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return OffboardingResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*o), nil
}

func mapToResponse(o EmployeeOffboarding) OffboardingResponse {
	return OffboardingResponse{
		EmployeeID:      o.EmployeeID,
		ResignationDate: o.ResignationDate.Format(dateLayout),
		Reason:          o.Reason,
		InitiatedBy:     o.InitiatedBy,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}
