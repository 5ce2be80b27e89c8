package department

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	counts, err := s.repo.CountEmployees(ctx)
	if err != nil {
		s.logger.Error("count employees per department failed", zap.Error(err))
		return nil, err
	}

	resp := make([]DepartmentResponse, 0, len(ordered))
	for _, d := range ordered {
		resp = append(resp, DepartmentResponse{
			Name:      d.String(),
			Code:      d.Code(),
			Headcount: counts[d],
		})
	}
	return resp, nil
}
