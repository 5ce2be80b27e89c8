package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/department"
	departmenterrors "go-hrm/internal/department/errors"
	"go-hrm/internal/employee"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/employeejob"
	"go-hrm/internal/leave"
	"go-hrm/internal/notification"
	"go-hrm/internal/onboarding"
	"go-hrm/internal/payroll"
	"go-hrm/internal/setting"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/shared/token"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	allotted = setting.LeaveAllottedDays{Casual: 10, Sick: 14, WithoutPay: 30}
	template = []setting.OnboardingTaskTemplate{
		{Name: "Sign employment contract", AssignedTo: "hr"},
		{Name: "Prepare workstation", AssignedTo: "admin"},
	}
	joining = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
)

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Department:    "development",
		JoiningDate:   "2024-01-15",
		ManagerID:     "DEV-20200101-001",
		JobType:       employeejob.JobTypeFullTime,
		Designation:   "Software Engineer",
		GrossSalary:   8000000,
		PersonalEmail: "Alice@Mail.com",
	}
}

func (f fixture) expectSettings() {
	f.settings.EXPECT().GetLeaveAllottedDays(gomock.Any()).Return(allotted, nil)
	f.settings.EXPECT().GetOnboardingTasks(gomock.Any()).Return(template, nil)
}

func (f fixture) expectSerial(serial int64) {
	f.jobs.EXPECT().CountByDepartment(gomock.Any(), "development").Return(int64(6), nil)
	f.counter.EXPECT().GetNextValue(gomock.Any(), counter.TypeDepartmentSerial, "development", int64(6)).Return(serial, nil)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("writes all five records under one id", func(t *testing.T) {
		f := newFixture(t)
		const wantID = "DEV-20240115-007"

		f.expectSettings()
		f.sql.ExpectBegin()
		f.expectSerial(7)

		var ids []string
		gomock.InOrder(
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e *employee.Employee) error {
					assert.Equal(t, "alice@mail.com", e.PersonalEmail)
					assert.Equal(t, employee.RoleUser, e.Role)
					assert.Equal(t, employee.StatusPending, e.Status)
					assert.Empty(t, e.Password)
					ids = append(ids, e.ID)
					return nil
				}),
			f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, j *employeejob.EmployeeJob) error {
					assert.Equal(t, "development", j.Department)
					assert.Equal(t, "Software Engineer", j.Designation)
					assert.True(t, joining.Equal(j.JoiningDate))
					ids = append(ids, j.EmployeeID)
					return nil
				}),
			f.payrolls.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p *payroll.Payroll) error {
					assert.Equal(t, payroll.StatusActive, p.Status)
					assert.Equal(t, int64(8000000), p.GrossSalary)
					ids = append(ids, p.EmployeeID)
					return nil
				}),
			f.leaves.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, l *leave.Leave) error {
					assert.Len(t, l.Years, 1)
					year := l.Years[0]
					assert.Equal(t, 2024, year.Year)
					assert.Equal(t, leave.CalculateRemainingLeave(joining, 10), year.Casual.Allotted)
					assert.Equal(t, leave.CalculateRemainingLeave(joining, 14), year.Sick.Allotted)
					assert.Equal(t, leave.CalculateRemainingLeave(joining, 30), year.WithoutPay.Allotted)
					assert.Zero(t, year.Earned.Allotted)
					ids = append(ids, l.EmployeeID)
					return nil
				}),
			f.onboardings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o *onboarding.EmployeeOnboarding) error {
					assert.Len(t, o.Tasks, 2)
					for _, task := range o.Tasks {
						assert.Equal(t, onboarding.TaskPending, task.Status)
					}
					ids = append(ids, o.EmployeeID)
					return nil
				}),
		)
		f.sql.ExpectCommit()

		f.tokens.EXPECT().CreateToken(token.Claims{ID: wantID, Role: employee.RoleUser, Purpose: token.PurposeInvite}, inviteTTL).Return("invite-token", nil)
		f.sender.EXPECT().InvitationRequest(gomock.Any(), notification.InvitationRequest{
			EmployeeID:  wantID,
			Email:       "alice@mail.com",
			Designation: "Software Engineer",
			InviteToken: "invite-token",
			JoiningDate: joining,
		}).Return(nil)
		f.redis.ExpectIncr(employee.BasicsVersionKey).SetVal(2)

		resp, err := f.svc.Create(ctx, createRequest())

		assert.NoError(t, err)
		assert.Equal(t, wantID, resp.ID)
		assert.Equal(t, []string{wantID, wantID, wantID, wantID, wantID}, ids)

		parsed, err := employee.ParseEmployeeID(resp.ID)
		assert.NoError(t, err)
		assert.Equal(t, department.Development, parsed.Department)
		assert.Equal(t, 2024, parsed.Year())

		assert.NoError(t, f.sql.ExpectationsWereMet())
		assert.NoError(t, f.redis.ExpectationsWereMet())
	})

	rollbackCases := []struct {
		name   string
		failAt int
	}{
		{name: "employee insert fails", failAt: 0},
		{name: "job insert fails", failAt: 1},
		{name: "payroll insert fails", failAt: 2},
		{name: "leave insert fails", failAt: 3},
		{name: "onboarding insert fails", failAt: 4},
	}
	for _, tc := range rollbackCases {
		t.Run(tc.name+" rolls back and sends nothing", func(t *testing.T) {
			f := newFixture(t)
			insertErr := errors.New(tc.name)
			result := func(step int) error {
				if step == tc.failAt {
					return insertErr
				}
				return nil
			}

			f.expectSettings()
			f.sql.ExpectBegin()
			f.expectSerial(7)
			inserts := []func(error){
				func(err error) { f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(err) },
				func(err error) { f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(err) },
				func(err error) { f.payrolls.EXPECT().Create(gomock.Any(), gomock.Any()).Return(err) },
				func(err error) { f.leaves.EXPECT().Create(gomock.Any(), gomock.Any()).Return(err) },
				func(err error) { f.onboardings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(err) },
			}
			for step := 0; step <= tc.failAt; step++ {
				inserts[step](result(step))
			}
			f.sql.ExpectRollback()
			f.tokens.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Times(0)
			f.sender.EXPECT().InvitationRequest(gomock.Any(), gomock.Any()).Times(0)

			_, err := f.svc.Create(ctx, createRequest())

			assert.ErrorIs(t, err, insertErr)
			assert.NoError(t, f.sql.ExpectationsWereMet())
			assert.NoError(t, f.redis.ExpectationsWereMet())
		})
	}

	t.Run("duplicate personal email is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.expectSettings()
		f.sql.ExpectBegin()
		f.expectSerial(7)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_personal_email"})
		f.sql.ExpectRollback()

		_, err := f.svc.Create(ctx, createRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("invitation failure keeps the hire", func(t *testing.T) {
		f := newFixture(t)

		f.expectSettings()
		f.sql.ExpectBegin()
		f.expectSerial(1)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.payrolls.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.leaves.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.onboardings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.sql.ExpectCommit()
		f.tokens.EXPECT().CreateToken(gomock.Any(), inviteTTL).Return("invite-token", nil)
		f.sender.EXPECT().InvitationRequest(gomock.Any(), gomock.Any()).Return(errors.New("outbox unavailable"))
		f.redis.ExpectIncr(employee.BasicsVersionKey).SetVal(2)

		resp, err := f.svc.Create(ctx, createRequest())

		assert.NoError(t, err)
		assert.Equal(t, "DEV-20240115-001", resp.ID)
	})

	t.Run("unknown department", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest()
		req.Department = "astronomy"

		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, departmenterrors.ErrUnknownDepartment)
	})

	t.Run("bad joining date", func(t *testing.T) {
		f := newFixture(t)
		req := createRequest()
		req.JoiningDate = "15-01-2024"

		_, err := f.svc.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})
}
