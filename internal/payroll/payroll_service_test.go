package payroll_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go-hrm/internal/payroll"
	payrollerrors "go-hrm/internal/payroll/errors"
	payrollMock "go-hrm/internal/payroll/mock"
	"go-hrm/internal/shared/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func activeDetail() *payroll.PayrollDetail {
	return &payroll.PayrollDetail{
		Payroll: payroll.Payroll{
			ID:          uuid.New(),
			EmployeeID:  "DEV-20240115-001",
			GrossSalary: 450000,
			Status:      payroll.StatusActive,
		},
		EmployeeName: "Rahim",
		Department:   "development",
		Designation:  "Engineer",
	}
}

func TestPayrollService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := payrollMock.NewMockRepository(ctrl)
	svc := payroll.NewService(repo, "Acme")
	ctx := context.Background()
	spec := query.Params{}.ToSpec(payroll.ListOptions)

	t.Run("maps rows", func(t *testing.T) {
		repo.EXPECT().FindAll(ctx, spec).Return([]payroll.PayrollDetail{*activeDetail()}, int64(1), nil)

		resp, total, err := svc.GetAll(ctx, spec)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Rahim", resp[0].EmployeeName)
		assert.Equal(t, "development", resp[0].Department)
	})

	t.Run("repository failure", func(t *testing.T) {
		boom := errors.New("db down")
		repo.EXPECT().FindAll(ctx, spec).Return(nil, int64(0), boom)

		_, _, err := svc.GetAll(ctx, spec)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPayrollService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := payrollMock.NewMockRepository(ctrl)
	svc := payroll.NewService(repo, "Acme")
	ctx := context.Background()

	t.Run("patches gross salary", func(t *testing.T) {
		current := activeDetail().Payroll
		salary := int64(600000)
		repo.EXPECT().FindByEmployeeID(ctx, "DEV-20240115-001").Return(&current, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, p *payroll.Payroll) error {
			assert.Equal(t, int64(600000), p.GrossSalary)
			assert.Equal(t, payroll.StatusActive, p.Status)
			return nil
		})

		resp, err := svc.Update(ctx, "DEV-20240115-001", payroll.UpdatePayrollRequest{GrossSalary: &salary})
		assert.NoError(t, err)
		assert.Equal(t, int64(600000), resp.GrossSalary)
	})

	t.Run("negative salary", func(t *testing.T) {
		current := activeDetail().Payroll
		salary := int64(-1)
		repo.EXPECT().FindByEmployeeID(ctx, "DEV-20240115-001").Return(&current, nil)

		_, err := svc.Update(ctx, "DEV-20240115-001", payroll.UpdatePayrollRequest{GrossSalary: &salary})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidGrossSalary)
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().FindByEmployeeID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, "missing", payroll.UpdatePayrollRequest{})
		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})
}

func TestPayrollService_GetStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := payrollMock.NewMockRepository(ctrl)
	svc := payroll.NewService(repo, "Acme")
	ctx := context.Background()

	t.Run("active payroll renders pdf", func(t *testing.T) {
		repo.EXPECT().FindDetailByEmployeeID(ctx, "DEV-20240115-001").Return(activeDetail(), nil)

		pdf, err := svc.GetStatement(ctx, "DEV-20240115-001")
		assert.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
		assert.Contains(t, string(pdf), "(Monthly gross salary: 4500.00)")
		assert.Contains(t, string(pdf), "(Annual gross salary: 54000.00)")
	})

	t.Run("inactive payroll", func(t *testing.T) {
		detail := activeDetail()
		detail.Status = payroll.StatusInactive
		repo.EXPECT().FindDetailByEmployeeID(ctx, "DEV-20240115-001").Return(detail, nil)

		_, err := svc.GetStatement(ctx, "DEV-20240115-001")
		assert.ErrorIs(t, err, payrollerrors.ErrStatementUnavailable)
	})
}
