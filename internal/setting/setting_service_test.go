package setting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/setting"
	settingerrors "go-hrm/internal/setting/errors"
	settingMock "go-hrm/internal/setting/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func TestSettingService_GetLeaveAllottedDays(t *testing.T) {
	ctx := context.Background()
	cacheKey := setting.CacheKey(setting.KeyLeaveAllottedDays)

	t.Run("cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := settingMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		svc := setting.NewService(repo, rdb)

		rmock.ExpectGet(cacheKey).SetVal(`{"casual":5,"sick":6,"without_pay":7}`)

		days, err := svc.GetLeaveAllottedDays(ctx)
		assert.NoError(t, err)
		assert.Equal(t, setting.LeaveAllottedDays{Casual: 5, Sick: 6, WithoutPay: 7}, days)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and caches the stored value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := settingMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		svc := setting.NewService(repo, rdb)

		stored := `{"casual":12,"sick":10,"without_pay":20}`
		rmock.ExpectGet(cacheKey).RedisNil()
		repo.EXPECT().FindByKey(gomock.Any(), setting.KeyLeaveAllottedDays).
			Return(&setting.Setting{Key: setting.KeyLeaveAllottedDays, Value: stored}, nil)
		rmock.ExpectSet(cacheKey, stored, time.Hour).SetVal("OK")

		days, err := svc.GetLeaveAllottedDays(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 12, days.Casual)
		assert.Equal(t, 20, days.WithoutPay)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("missing row falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := settingMock.NewMockRepository(ctrl)
		svc := setting.NewService(repo, nil)

		repo.EXPECT().FindByKey(gomock.Any(), setting.KeyLeaveAllottedDays).Return(nil, gorm.ErrRecordNotFound)

		days, err := svc.GetLeaveAllottedDays(ctx)
		assert.NoError(t, err)
		assert.Equal(t, setting.DefaultLeaveAllottedDays, days)
	})

	t.Run("database failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := settingMock.NewMockRepository(ctrl)
		svc := setting.NewService(repo, nil)

		boom := errors.New("connection refused")
		repo.EXPECT().FindByKey(gomock.Any(), setting.KeyLeaveAllottedDays).Return(nil, boom)

		_, err := svc.GetLeaveAllottedDays(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestSettingService_GetOnboardingTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := settingMock.NewMockRepository(ctrl)
	svc := setting.NewService(repo, nil)

	repo.EXPECT().FindByKey(gomock.Any(), setting.KeyOnboardingTasks).
		Return(&setting.Setting{Value: `[{"name":"Laptop","assigned_to":"it"}]`}, nil)

	tasks, err := svc.GetOnboardingTasks(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []setting.OnboardingTaskTemplate{{Name: "Laptop", AssignedTo: "it"}}, tasks)
}

func TestSettingService_UpdateLeaveAllottedDays(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := settingMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		svc := setting.NewService(repo, rdb)

		repo.EXPECT().Upsert(gomock.Any(), &setting.Setting{
			Key:   setting.KeyLeaveAllottedDays,
			Value: `{"casual":8,"sick":9,"without_pay":0}`,
		}).Return(nil)
		rmock.ExpectDel(setting.CacheKey(setting.KeyLeaveAllottedDays)).SetVal(1)

		days, err := svc.UpdateLeaveAllottedDays(ctx, setting.UpdateLeaveAllottedDaysRequest{
			Casual: intPtr(8), Sick: intPtr(9), WithoutPay: intPtr(0),
		})
		assert.NoError(t, err)
		assert.Equal(t, 8, days.Casual)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("negative allotment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := setting.NewService(settingMock.NewMockRepository(ctrl), nil)

		_, err := svc.UpdateLeaveAllottedDays(ctx, setting.UpdateLeaveAllottedDaysRequest{
			Casual: intPtr(-1), Sick: intPtr(9), WithoutPay: intPtr(0),
		})
		assert.ErrorIs(t, err, settingerrors.ErrInvalidLeaveAllotment)
	})
}

func TestSettingService_UpdateOnboardingTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := settingMock.NewMockRepository(ctrl)
		svc := setting.NewService(repo, nil)

		repo.EXPECT().Upsert(gomock.Any(), &setting.Setting{
			Key:   setting.KeyOnboardingTasks,
			Value: `[{"name":"Laptop","assigned_to":"it"}]`,
		}).Return(nil)

		tasks, err := svc.UpdateOnboardingTasks(ctx, setting.UpdateOnboardingTasksRequest{
			Tasks: []setting.OnboardingTaskTemplate{{Name: " Laptop ", AssignedTo: "it"}},
		})
		assert.NoError(t, err)
		assert.Equal(t, "Laptop", tasks[0].Name)
	})

	t.Run("blank assignee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := setting.NewService(settingMock.NewMockRepository(ctrl), nil)

		_, err := svc.UpdateOnboardingTasks(ctx, setting.UpdateOnboardingTasksRequest{
			Tasks: []setting.OnboardingTaskTemplate{{Name: "Laptop", AssignedTo: "  "}},
		})
		assert.ErrorIs(t, err, settingerrors.ErrInvalidOnboardingTasks)
	})
}
