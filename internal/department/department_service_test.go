package department_test

import (
	"context"
	"errors"
	"testing"

	"go-hrm/internal/department"
	departmentMock "go-hrm/internal/department/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDepartmentService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := departmentMock.NewMockRepository(ctrl)
	svc := department.NewService(repo)
	ctx := context.Background()

	t.Run("success fills zero headcount", func(t *testing.T) {
		repo.EXPECT().CountEmployees(ctx).Return(map[department.Department]int64{
			department.Development: 12,
			department.HR:          2,
		}, nil)

		resp, err := svc.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, len(department.All()))
		assert.Equal(t, department.DepartmentResponse{Name: "development", Code: "DEV", Headcount: 12}, resp[0])
		assert.Equal(t, int64(0), resp[1].Headcount)
	})

	t.Run("repository error", func(t *testing.T) {
		repo.EXPECT().CountEmployees(ctx).Return(nil, errors.New("db down"))

		resp, err := svc.GetAll(ctx)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}
