package employee

import (
	"context"
	"strings"
	"time"

	"go-hrm/internal/department"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/employeejob"
	"go-hrm/internal/leave"
	"go-hrm/internal/notification"
	"go-hrm/internal/onboarding"
	"go-hrm/internal/payroll"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/shared/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create hires an employee. The employee, job, payroll, leave ledger and onboarding
// checklist are written in one transaction together with the department serial, so either
// all five exist under the new id or none do. The invitation is queued after commit and its
// failure does not undo the hire.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	dept, err := department.Parse(req.Department)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joiningDate, err := time.Parse(dateLayout, strings.TrimSpace(req.JoiningDate))
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}
	personalEmail := strings.ToLower(strings.TrimSpace(req.PersonalEmail))

	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("department", dept.String()),
		zap.String("joining_date", req.JoiningDate),
	)

	allotted, err := s.settings.GetLeaveAllottedDays(ctx)
	if err != nil {
		s.logger.Error("create employee read leave settings failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	tasks, err := s.settings.GetOnboardingTasks(ctx)
	if err != nil {
		s.logger.Error("create employee read onboarding settings failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	var created *Employee
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		count, err := s.jobs.CountByDepartment(ctx, dept.String())
		if err != nil {
			return err
		}
		serial, err := s.counter.GetNextValue(ctx, counter.TypeDepartmentSerial, dept.String(), count)
		if err != nil {
			return err
		}
		id := GenerateEmployeeID(dept, joiningDate, serial)

		e := &Employee{
			ID:            id,
			PersonalEmail: personalEmail,
			Role:          RoleUser,
			Status:        StatusPending,
		}
		if err := s.repo.Create(ctx, e); err != nil {
			return mapRepositoryError(err)
		}

		if err := s.jobs.Create(ctx, &employeejob.EmployeeJob{
			ID:          uuid.New(),
			EmployeeID:  id,
			Department:  dept.String(),
			ManagerID:   strings.TrimSpace(req.ManagerID),
			JobType:     req.JobType,
			Designation: strings.TrimSpace(req.Designation),
			JoiningDate: joiningDate,
		}); err != nil {
			return err
		}

		if err := s.payrolls.Create(ctx, &payroll.Payroll{
			ID:          uuid.New(),
			EmployeeID:  id,
			GrossSalary: req.GrossSalary,
			Status:      payroll.StatusActive,
		}); err != nil {
			return err
		}

		if err := s.leaves.Create(ctx, &leave.Leave{
			ID:         uuid.New(),
			EmployeeID: id,
			Years:      []leave.LeaveYear{leave.ProratedYear(joiningDate, allotted)},
		}); err != nil {
			return err
		}

		if err := s.onboardings.Create(ctx, onboarding.FromTemplate(id, tasks)); err != nil {
			return err
		}

		created = e
		return nil
	})
	if err != nil {
		s.logger.Error("create employee failed",
			zap.String("request_id", rid),
			zap.String("department", dept.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.invite(ctx, created, strings.TrimSpace(req.Designation), joiningDate)
	s.invalidateBasics(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", created.ID),
	)
	return mapToResponse(*created), nil
}

func (s *service) invite(ctx context.Context, e *Employee, designation string, joiningDate time.Time) {
	inviteToken, err := s.tokens.CreateToken(token.Claims{ID: e.ID, Role: RoleUser, Purpose: token.PurposeInvite}, s.inviteTTL)
	if err != nil {
		s.logger.Warn("mint invite token failed", zap.String("employee_id", e.ID), zap.Error(err))
		return
	}

	if err := s.sender.InvitationRequest(ctx, notification.InvitationRequest{
		EmployeeID:  e.ID,
		Email:       e.PersonalEmail,
		Designation: designation,
		InviteToken: inviteToken,
		JoiningDate: joiningDate,
	}); err != nil {
		s.logger.Warn("queue invitation failed", zap.String("employee_id", e.ID), zap.Error(err))
	}
}
