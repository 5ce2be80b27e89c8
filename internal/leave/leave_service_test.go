package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/leave"
	leaveerrors "go-hrm/internal/leave/errors"
	leaveMock "go-hrm/internal/leave/mock"
	"go-hrm/internal/notification"
	notificationMock "go-hrm/internal/notification/mock"
	"go-hrm/internal/setting"
	settingMock "go-hrm/internal/setting/mock"
	"go-hrm/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fixture struct {
	repo     *leaveMock.MockRepository
	settings *settingMock.MockProvider
	sender   *notificationMock.MockSender
	sql      sqlmock.Sqlmock
	svc      leave.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	gdb, err := transaction.OpenGORM(db)
	assert.NoError(t, err)

	f := fixture{
		repo:     leaveMock.NewMockRepository(ctrl),
		settings: settingMock.NewMockProvider(ctrl),
		sender:   notificationMock.NewMockSender(ctrl),
		sql:      sqlMock,
	}
	f.svc = leave.NewService(f.repo, f.settings, f.sender, transaction.NewManager(gdb))
	return f
}

func ledger2024() *leave.Leave {
	return &leave.Leave{
		ID:         uuid.New(),
		EmployeeID: "DEV-20240115-001",
		Years: []leave.LeaveYear{{
			Year:   2024,
			Casual: leave.Balance{Allotted: 10, Consumed: 7},
			Sick:   leave.Balance{Allotted: 14},
		}},
	}
}

func pendingRequest(id uuid.UUID) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:         id,
		EmployeeID: "DEV-20240115-001",
		LeaveType:  leave.TypeCasual,
		StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		DayCount:   3,
		Reason:     "family event",
		Status:     leave.RequestPending,
	}
}

var contact = leave.EmployeeContact{ID: "DEV-20240115-001", Name: "Rahim", WorkEmail: "rahim@acme.io"}

func TestLeaveService_CreateRequest(t *testing.T) {
	ctx := context.Background()
	in := leave.CreateLeaveRequestRequest{
		LeaveType: leave.TypeCasual,
		StartDate: "2024-03-04",
		EndDate:   "2024-03-06",
		Reason:    " family event ",
	}

	t.Run("creates and notifies reviewers", func(t *testing.T) {
		f := newFixture(t)
		f.sql.ExpectBegin()
		f.repo.EXPECT().FindByEmployeeIDForUpdate(gomock.Any(), "DEV-20240115-001").Return(ledger2024(), nil)
		f.repo.EXPECT().HasOverlappingRequest(gomock.Any(), "DEV-20240115-001", gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *leave.LeaveRequest) error {
			assert.Equal(t, 3, r.DayCount)
			assert.Equal(t, "family event", r.Reason)
			assert.Equal(t, leave.RequestPending, r.Status)
			return nil
		})
		f.sql.ExpectCommit()
		f.repo.EXPECT().FindEmployeeContact(gomock.Any(), "DEV-20240115-001").Return(contact, nil)
		f.repo.EXPECT().ListReviewerEmails(gomock.Any()).Return([]string{"admin@acme.io"}, nil)
		f.sender.EXPECT().LeaveRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n notification.LeaveRequest) error {
			assert.Equal(t, []string{"admin@acme.io"}, n.Emails)
			assert.Equal(t, "Rahim", n.Name)
			return nil
		})

		resp, err := f.svc.CreateRequest(ctx, "DEV-20240115-001", in)
		assert.NoError(t, err)
		assert.Equal(t, "Rahim", resp.EmployeeName)
		assert.Equal(t, "2024-03-06", resp.EndDate)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("insufficient balance rolls back", func(t *testing.T) {
		f := newFixture(t)
		in := in
		in.EndDate = "2024-03-08"

		f.sql.ExpectBegin()
		f.repo.EXPECT().FindByEmployeeIDForUpdate(gomock.Any(), "DEV-20240115-001").Return(ledger2024(), nil)
		f.sql.ExpectRollback()

		_, err := f.svc.CreateRequest(ctx, "DEV-20240115-001", in)
		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("year missing from ledger uses the current allotment", func(t *testing.T) {
		f := newFixture(t)
		in := leave.CreateLeaveRequestRequest{LeaveType: leave.TypeSick, StartDate: "2025-02-03", EndDate: "2025-02-03", Reason: "flu"}

		f.sql.ExpectBegin()
		f.repo.EXPECT().FindByEmployeeIDForUpdate(gomock.Any(), "DEV-20240115-001").Return(ledger2024(), nil)
		f.settings.EXPECT().GetLeaveAllottedDays(gomock.Any()).Return(setting.LeaveAllottedDays{Sick: 0}, nil)
		f.sql.ExpectRollback()

		_, err := f.svc.CreateRequest(ctx, "DEV-20240115-001", in)
		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("overlap", func(t *testing.T) {
		f := newFixture(t)
		f.sql.ExpectBegin()
		f.repo.EXPECT().FindByEmployeeIDForUpdate(gomock.Any(), "DEV-20240115-001").Return(ledger2024(), nil)
		f.repo.EXPECT().HasOverlappingRequest(gomock.Any(), "DEV-20240115-001", gomock.Any(), gomock.Any()).Return(true, nil)
		f.sql.ExpectRollback()

		_, err := f.svc.CreateRequest(ctx, "DEV-20240115-001", in)
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateRequest(ctx, "x", leave.CreateLeaveRequestRequest{LeaveType: "vacation"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)

		_, err = f.svc.CreateRequest(ctx, "x", leave.CreateLeaveRequestRequest{LeaveType: leave.TypeSick, StartDate: "2024-03-05", EndDate: "2024-03-04"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)

		_, err = f.svc.CreateRequest(ctx, "x", leave.CreateLeaveRequestRequest{LeaveType: leave.TypeSick, StartDate: "2024-12-30", EndDate: "2025-01-02"})
		assert.ErrorIs(t, err, leaveerrors.ErrCrossYearRequest)

		_, err = f.svc.CreateRequest(ctx, "x", leave.CreateLeaveRequestRequest{LeaveType: leave.TypeSick, StartDate: "04/03/2024", EndDate: "2024-03-04"})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})
}

func TestLeaveService_ApproveRequest(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("consumes balance in the same transaction", func(t *testing.T) {
		f := newFixture(t)
		ledger := ledger2024()
		ledger.Years[0].Casual.Consumed = 0

		f.sql.ExpectBegin()
		f.repo.EXPECT().FindRequestForUpdate(gomock.Any(), id.String()).Return(pendingRequest(id), nil)
		f.repo.EXPECT().FindByEmployeeIDForUpdate(gomock.Any(), "DEV-20240115-001").Return(ledger, nil)
		f.repo.EXPECT().Update(gomock.Any(), ledger).DoAndReturn(func(_ context.Context, l *leave.Leave) error {
			assert.Equal(t, 3, l.Year(2024).Casual.Consumed)
			return nil
		})
		f.repo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *leave.LeaveRequest) error {
			assert.Equal(t, leave.RequestApproved, r.Status)
			assert.Equal(t, "MGT-20200101-001", *r.ReviewedBy)
			assert.NotNil(t, r.ReviewedAt)
			return nil
		})
		f.sql.ExpectCommit()
		f.repo.EXPECT().FindEmployeeContact(gomock.Any(), "DEV-20240115-001").Return(contact, nil)
		f.sender.EXPECT().LeaveRequestResponse(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n notification.LeaveRequestResponse) error {
			assert.Equal(t, "rahim@acme.io", n.Email)
			assert.Equal(t, leave.RequestApproved, n.Status)
			return nil
		})

		resp, err := f.svc.ApproveRequest(ctx, "MGT-20200101-001", id.String())
		assert.NoError(t, err)
		assert.Equal(t, leave.RequestApproved, resp.Status)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("ledger write failure rolls back and skips notification", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("write failed")

		f.sql.ExpectBegin()
		f.repo.EXPECT().FindRequestForUpdate(gomock.Any(), id.String()).Return(pendingRequest(id), nil)
		f.repo.EXPECT().FindByEmployeeIDForUpdate(gomock.Any(), "DEV-20240115-001").Return(ledger2024(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(boom)
		f.sql.ExpectRollback()

		_, err := f.svc.ApproveRequest(ctx, "MGT-20200101-001", id.String())
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("already reviewed", func(t *testing.T) {
		f := newFixture(t)
		req := pendingRequest(id)
		req.Status = leave.RequestRejected

		f.sql.ExpectBegin()
		f.repo.EXPECT().FindRequestForUpdate(gomock.Any(), id.String()).Return(req, nil)
		f.sql.ExpectRollback()

		_, err := f.svc.ApproveRequest(ctx, "MGT-20200101-001", id.String())
		assert.ErrorIs(t, err, leaveerrors.ErrRequestNotPending)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.sql.ExpectBegin()
		f.repo.EXPECT().FindRequestForUpdate(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)
		f.sql.ExpectRollback()

		_, err := f.svc.ApproveRequest(ctx, "MGT-20200101-001", id.String())
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveRequestNotFound)
	})
}

func TestLeaveService_RejectRequest(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("reason required", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RejectRequest(ctx, "MGT-20200101-001", id.String(), leave.RejectLeaveRequestRequest{Reason: "  "})
		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
	})

	t.Run("rejects and tells the employee why", func(t *testing.T) {
		f := newFixture(t)
		f.sql.ExpectBegin()
		f.repo.EXPECT().FindRequestForUpdate(gomock.Any(), id.String()).Return(pendingRequest(id), nil)
		f.repo.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
		f.sql.ExpectCommit()
		f.repo.EXPECT().FindEmployeeContact(gomock.Any(), "DEV-20240115-001").Return(contact, nil)
		f.sender.EXPECT().LeaveRequestResponse(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n notification.LeaveRequestResponse) error {
			assert.Equal(t, "release week", n.Reason)
			assert.Equal(t, leave.RequestRejected, n.Status)
			return errors.New("outbox down")
		})

		resp, err := f.svc.RejectRequest(ctx, "MGT-20200101-001", id.String(), leave.RejectLeaveRequestRequest{Reason: "release week"})
		assert.NoError(t, err, "notification failure is not fatal")
		assert.Equal(t, "release week", *resp.RejectionReason)
	})
}

func TestLeaveService_GetByEmployeeID(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindByEmployeeID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.GetByEmployeeID(context.Background(), "missing")
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}
