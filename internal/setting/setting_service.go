package setting

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	settingerrors "go-hrm/internal/setting/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	CacheKeyPrefix = "settings:"
	CacheTTL       = time.Hour
)

func CacheKey(key string) string {
	return CacheKeyPrefix + key
}

// Provider is the read side other modules depend on.
//
//go:generate mockgen -source=setting_service.go -destination=mock/setting_service_mock.go -package=mock
type Provider interface {
	GetLeaveAllottedDays(ctx context.Context) (LeaveAllottedDays, error)
	GetOnboardingTasks(ctx context.Context) ([]OnboardingTaskTemplate, error)
}

type Service interface {
	GetLeaveAllottedDays(ctx context.Context) (LeaveAllottedDays, error)
	GetOnboardingTasks(ctx context.Context) ([]OnboardingTaskTemplate, error)
	UpdateLeaveAllottedDays(ctx context.Context, req UpdateLeaveAllottedDaysRequest) (LeaveAllottedDays, error)
	UpdateOnboardingTasks(ctx context.Context, req UpdateOnboardingTasksRequest) ([]OnboardingTaskTemplate, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("setting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetLeaveAllottedDays(ctx context.Context) (LeaveAllottedDays, error) {
	var days LeaveAllottedDays
	if err := s.load(ctx, KeyLeaveAllottedDays, DefaultLeaveAllottedDays, &days); err != nil {
		return LeaveAllottedDays{}, err
	}
	return days, nil
}

func (s *service) GetOnboardingTasks(ctx context.Context) ([]OnboardingTaskTemplate, error) {
	var tasks []OnboardingTaskTemplate
	if err := s.load(ctx, KeyOnboardingTasks, DefaultOnboardingTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *service) UpdateLeaveAllottedDays(ctx context.Context, req UpdateLeaveAllottedDaysRequest) (LeaveAllottedDays, error) {
	if req.Casual == nil || req.Sick == nil || req.WithoutPay == nil ||
		*req.Casual < 0 || *req.Sick < 0 || *req.WithoutPay < 0 {
		return LeaveAllottedDays{}, settingerrors.ErrInvalidLeaveAllotment
	}

	days := LeaveAllottedDays{Casual: *req.Casual, Sick: *req.Sick, WithoutPay: *req.WithoutPay}
	if err := s.save(ctx, KeyLeaveAllottedDays, days); err != nil {
		return LeaveAllottedDays{}, err
	}
	return days, nil
}

func (s *service) UpdateOnboardingTasks(ctx context.Context, req UpdateOnboardingTasksRequest) ([]OnboardingTaskTemplate, error) {
	if len(req.Tasks) == 0 {
		return nil, settingerrors.ErrInvalidOnboardingTasks
	}
	tasks := make([]OnboardingTaskTemplate, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		t.Name = strings.TrimSpace(t.Name)
		t.AssignedTo = strings.TrimSpace(t.AssignedTo)
		if t.Name == "" || t.AssignedTo == "" {
			return nil, settingerrors.ErrInvalidOnboardingTasks
		}
		tasks = append(tasks, t)
	}

	if err := s.save(ctx, KeyOnboardingTasks, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// load resolves key from redis, then postgres, then fallback, and decodes it into dst.
func (s *service) load(ctx context.Context, key string, fallback any, dst any) error {
	cacheKey := CacheKey(key)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			if err := json.Unmarshal([]byte(cached), dst); err == nil {
				return nil
			}
			s.logger.Warn("discarding undecodable cached setting", zap.String("key", key))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		raw, err := s.lookup(ctx, key, fallback)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if err := s.rdb.Set(ctx, cacheKey, raw, CacheTTL).Err(); err != nil {
				s.logger.Warn("cache setting failed", zap.String("key", key), zap.Error(err))
			}
		}
		return raw, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(v.(string)), dst)
}

func (s *service) lookup(ctx context.Context, key string, fallback any) (string, error) {
	row, err := s.repo.FindByKey(ctx, key)
	if err == nil {
		return row.Value, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load setting failed", zap.String("key", key), zap.Error(err))
		return "", err
	}

	b, err := json.Marshal(fallback)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *service) save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, &Setting{Key: key, Value: string(b)}); err != nil {
		s.logger.Error("save setting failed", zap.String("key", key), zap.Error(err))
		return err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, CacheKey(key)).Err(); err != nil {
			s.logger.Warn("invalidate setting cache failed", zap.String("key", key), zap.Error(err))
		}
	}

	s.logger.Info("setting updated", zap.String("key", key))
	return nil
}
