package employee_test

import (
	"testing"
	"time"

	"go-hrm/internal/employee"
	employeeMock "go-hrm/internal/employee/mock"
	employeejobMock "go-hrm/internal/employeejob/mock"
	leaveMock "go-hrm/internal/leave/mock"
	notificationMock "go-hrm/internal/notification/mock"
	onboardingMock "go-hrm/internal/onboarding/mock"
	payrollMock "go-hrm/internal/payroll/mock"
	settingMock "go-hrm/internal/setting/mock"
	counterMock "go-hrm/internal/shared/counter/mock"
	tokenMock "go-hrm/internal/shared/token/mock"
	"go-hrm/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const inviteTTL = 72 * time.Hour

type fixture struct {
	repo        *employeeMock.MockRepository
	jobs        *employeejobMock.MockRepository
	payrolls    *payrollMock.MockRepository
	leaves      *leaveMock.MockRepository
	onboardings *onboardingMock.MockRepository
	counter     *counterMock.MockRepository
	settings    *settingMock.MockProvider
	sender      *notificationMock.MockSender
	tokens      *tokenMock.MockService
	sql         sqlmock.Sqlmock
	redis       redismock.ClientMock
	svc         employee.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	gdb, err := transaction.OpenGORM(db)
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()

	f := fixture{
		repo:        employeeMock.NewMockRepository(ctrl),
		jobs:        employeejobMock.NewMockRepository(ctrl),
		payrolls:    payrollMock.NewMockRepository(ctrl),
		leaves:      leaveMock.NewMockRepository(ctrl),
		onboardings: onboardingMock.NewMockRepository(ctrl),
		counter:     counterMock.NewMockRepository(ctrl),
		settings:    settingMock.NewMockProvider(ctrl),
		sender:      notificationMock.NewMockSender(ctrl),
		tokens:      tokenMock.NewMockService(ctrl),
		sql:         sqlMock,
		redis:       redisMock,
	}
	f.svc = employee.NewService(employee.Dependencies{
		Repo:        f.repo,
		Jobs:        f.jobs,
		Payrolls:    f.payrolls,
		Leaves:      f.leaves,
		Onboardings: f.onboardings,
		Counter:     f.counter,
		Settings:    f.settings,
		Sender:      f.sender,
		Tokens:      f.tokens,
		Tx:          transaction.NewManager(gdb),
		Redis:       rdb,
		InviteTTL:   inviteTTL,
		BcryptCost:  bcrypt.MinCost,
	})
	return f
}
