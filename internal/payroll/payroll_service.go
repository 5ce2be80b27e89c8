package payroll

import (
	"context"
	"time"

	payrollerrors "go-hrm/internal/payroll/errors"
	"go-hrm/internal/shared/query"

	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, spec query.Spec) ([]PayrollResponse, int64, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (PayrollResponse, error)
	Update(ctx context.Context, employeeID string, req UpdatePayrollRequest) (PayrollResponse, error)
	GetStatement(ctx context.Context, employeeID string) ([]byte, error)
}

type service struct {
	repo    Repository
	orgName string
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(repo Repository, orgName string, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, orgName: orgName, now: time.Now, logger: l}
}

func (s *service) GetAll(ctx context.Context, spec query.Spec) ([]PayrollResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, spec)
	if err != nil {
		s.logger.Error("list payrolls failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]PayrollResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapDetailToResponse(row))
	}
	return resp, total, nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (PayrollResponse, error) {
	detail, err := s.repo.FindDetailByEmployeeID(ctx, employeeID)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapDetailToResponse(*detail), nil
}

func (s *service) Update(ctx context.Context, employeeID string, req UpdatePayrollRequest) (PayrollResponse, error) {
	payroll, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if req.GrossSalary != nil {
		if *req.GrossSalary < 0 {
			return PayrollResponse{}, payrollerrors.ErrInvalidGrossSalary
		}
		payroll.GrossSalary = *req.GrossSalary
	}
	if req.Status != nil {
		payroll.Status = *req.Status
	}

	if err := s.repo.Update(ctx, payroll); err != nil {
		s.logger.Error("update payroll failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update payroll success",
		zap.String("employee_id", employeeID),
		zap.String("status", payroll.Status),
	)
	return mapToResponse(*payroll), nil
}

func (s *service) GetStatement(ctx context.Context, employeeID string) ([]byte, error) {
	detail, err := s.repo.FindDetailByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if detail.Status != StatusActive {
		return nil, payrollerrors.ErrStatementUnavailable
	}
	pdf, err := renderSalaryStatement(s.orgName, *detail, s.now())
	if err != nil {
		s.logger.Error("render salary statement failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return pdf, nil
}

func mapToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID,
		GrossSalary: p.GrossSalary,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func mapDetailToResponse(d PayrollDetail) PayrollResponse {
	resp := mapToResponse(d.Payroll)
	resp.EmployeeName = d.EmployeeName
	resp.WorkEmail = d.WorkEmail
	resp.Department = d.Department
	resp.Designation = d.Designation
	return resp
}
