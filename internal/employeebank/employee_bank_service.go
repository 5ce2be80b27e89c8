package employeebank

import (
	"context"
	"errors"
	"strings"
	"time"

	employeebankerrors "go-hrm/internal/employeebank/errors"
	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_bank_service.go -destination=mock/employee_bank_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, spec query.Spec) ([]EmployeeBankResponse, int64, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeBankResponse, error)
	Upsert(ctx context.Context, employeeID string, req UpsertEmployeeBankRequest) (EmployeeBankResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	repo   Repository
	tx     transaction.Manager
	logger *zap.Logger
}

func NewService(repo Repository, tx transaction.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeebank.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeebank.service")
	}
	return &service{repo: repo, tx: tx, logger: l}
}

func (s *service) GetAll(ctx context.Context, spec query.Spec) ([]EmployeeBankResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, spec)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]EmployeeBankResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapToResponse(row))
	}
	return resp, total, nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeBankResponse, error) {
	bank, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeBankResponse{}, employeebankerrors.ErrEmployeeBankNotFound
		}
		return EmployeeBankResponse{}, err
	}
	return mapToResponse(*bank), nil
}

// Upsert stores the full list for an existing employee. When no account is flagged default the
// first one becomes it.
func (s *service) Upsert(ctx context.Context, employeeID string, req UpsertEmployeeBankRequest) (EmployeeBankResponse, error) {
	banks := make([]Bank, 0, len(req.Banks))
	defaults := 0
	for _, b := range req.Banks {
		if b.IsDefault {
			defaults++
		}
		banks = append(banks, Bank{
			BankName:      strings.TrimSpace(b.BankName),
			Branch:        strings.TrimSpace(b.Branch),
			AccountName:   strings.TrimSpace(b.AccountName),
			AccountNumber: strings.TrimSpace(b.AccountNumber),
			RoutingNumber: strings.TrimSpace(b.RoutingNumber),
			IsDefault:     b.IsDefault,
		})
	}
	if defaults > 1 {
		return EmployeeBankResponse{}, employeebankerrors.ErrMultipleDefaultBanks
	}
	if defaults == 0 && len(banks) > 0 {
		banks[0].IsDefault = true
	}

	record := &EmployeeBank{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Banks:      banks,
		UpdatedAt:  time.Now(),
	}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.repo.EmployeeExists(ctx, employeeID)
		if err != nil {
			return err
		}
		if !exists {
			return employeebankerrors.ErrEmployeeNotFound
		}
		return s.repo.Upsert(ctx, record)
	})
	if err != nil {
		if errors.Is(err, employeebankerrors.ErrEmployeeNotFound) {
			return EmployeeBankResponse{}, err
		}
		s.logger.Error("upsert employee bank failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeBankResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, employeeID string) error {
	n, err := s.repo.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if n == 0 {
		return employeebankerrors.ErrEmployeeBankNotFound
	}
	s.logger.Info("employee bank deleted", zap.String("employee_id", employeeID))
	return nil
}

func mapToResponse(b EmployeeBank) EmployeeBankResponse {
	banks := b.Banks
	if banks == nil {
		banks = []Bank{}
	}
	return EmployeeBankResponse{
		EmployeeID: b.EmployeeID,
		Banks:      banks,
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}
