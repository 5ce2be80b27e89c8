package offboarding_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/notification"
	notificationMock "go-hrm/internal/notification/mock"
	"go-hrm/internal/offboarding"
	offboardingerrors "go-hrm/internal/offboarding/errors"
	offboardingMock "go-hrm/internal/offboarding/mock"
	"go-hrm/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fixture struct {
	repo   *offboardingMock.MockRepository
	sender *notificationMock.MockSender
	sql    sqlmock.Sqlmock
	svc    offboarding.Service
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
		repo:   offboardingMock.NewMockRepository(ctrl),
		sender: notificationMock.NewMockSender(ctrl),
		sql:    sqlMock,
	}
	f.svc = offboarding.NewService(f.repo, f.sender, transaction.NewManager(gdb))
	return f
}

func TestOffboardingService_Initiate(t *testing.T) {
	ctx := context.Background()
	req := offboarding.InitiateOffboardingRequest{
		EmployeeID:      "DEV-20240115-001",
		ResignationDate: "2024-06-30",
		Reason:          "relocation",
	}
	contact := offboarding.EmployeeContact{ID: "DEV-20240115-001", Name: "Alice", WorkEmail: "alice@acme.io"}

	t.Run("deactivates and notifies", func(t *testing.T) {
		f := newFixture(t)
		f.sql.ExpectBegin()
		f.repo.EXPECT().FindEmployeeContact(gomock.Any(), "DEV-20240115-001").Return(contact, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *offboarding.EmployeeOffboarding) error {
				assert.Equal(t, "ADM-20200101-001", o.InitiatedBy)
				assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), o.ResignationDate)
				return nil
			})
		f.repo.EXPECT().SetEmployeeStatus(gomock.Any(), "DEV-20240115-001", "inactive").Return(int64(1), nil)
		f.sql.ExpectCommit()
		f.sender.EXPECT().OffboardingInitiate(gomock.Any(), notification.OffboardingInitiate{
			EmployeeID:      "DEV-20240115-001",
			Email:           "alice@acme.io",
			Name:            "Alice",
			ResignationDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		}).Return(nil)

		resp, err := f.svc.Initiate(ctx, "ADM-20200101-001", req)
		assert.NoError(t, err)
		assert.Equal(t, "2024-06-30", resp.ResignationDate)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("notification failure keeps the offboarding", func(t *testing.T) {
		f := newFixture(t)
		f.sql.ExpectBegin()
		f.repo.EXPECT().FindEmployeeContact(gomock.Any(), gomock.Any()).Return(contact, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().SetEmployeeStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.sql.ExpectCommit()
		f.sender.EXPECT().OffboardingInitiate(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

		_, err := f.svc.Initiate(ctx, "ADM-20200101-001", req)
		assert.NoError(t, err)
	})

	t.Run("already offboarded rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.sql.ExpectBegin()
		f.repo.EXPECT().FindEmployeeContact(gomock.Any(), gomock.Any()).Return(contact, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_offboarding_employee"})
		f.sql.ExpectRollback()

		_, err := f.svc.Initiate(ctx, "ADM-20200101-001", req)
		assert.ErrorIs(t, err, offboardingerrors.ErrOffboardingAlreadyExists)
		assert.NoError(t, f.sql.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		f := newFixture(t)
		f.sql.ExpectBegin()
		f.repo.EXPECT().FindEmployeeContact(gomock.Any(), gomock.Any()).
			Return(offboarding.EmployeeContact{}, gorm.ErrRecordNotFound)
		f.sql.ExpectRollback()

		_, err := f.svc.Initiate(ctx, "ADM-20200101-001", req)
		assert.ErrorIs(t, err, offboardingerrors.ErrEmployeeNotFound)
	})

	t.Run("bad date", func(t *testing.T) {
		f := newFixture(t)
		bad := req
		bad.ResignationDate = "30/06/2024"

		_, err := f.svc.Initiate(ctx, "ADM-20200101-001", bad)
		assert.ErrorIs(t, err, offboardingerrors.ErrInvalidResignationDate)
	})
}
