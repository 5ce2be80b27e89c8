package tool

import (
	"context"
	"strings"
	"time"

	"go-hrm/internal/shared/query"
	toolerrors "go-hrm/internal/tool/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=tool_service.go -destination=mock/tool_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, spec query.Spec) ([]ToolResponse, int64, error)
	GetByPlatform(ctx context.Context, platform string) (ToolResponse, error)
	Create(ctx context.Context, req CreateToolRequest) (ToolResponse, error)
	Update(ctx context.Context, platform string, req UpdateToolRequest) (ToolResponse, error)
	Delete(ctx context.Context, platform string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("tool.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tool.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, spec query.Spec) ([]ToolResponse, int64, error) {
	tools, total, err := s.repo.FindAll(ctx, spec)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]ToolResponse, 0, len(tools))
	for _, t := range tools {
		resp = append(resp, mapToResponse(t))
	}
	return resp, total, nil
}

func (s *service) GetByPlatform(ctx context.Context, platform string) (ToolResponse, error) {
	t, err := s.repo.FindByPlatform(ctx, strings.TrimSpace(platform))
	if err != nil {
		return ToolResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Create(ctx context.Context, req CreateToolRequest) (ToolResponse, error) {
	orgs, err := buildOrganizations(req.Organizations)
	if err != nil {
		return ToolResponse{}, err
	}

	t := &Tool{
		ID:            uuid.New(),
		Platform:      strings.TrimSpace(req.Platform),
		Website:       strings.TrimSpace(req.Website),
		Organizations: orgs,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return ToolResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("tool created", zap.String("platform", t.Platform))
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, platform string, req UpdateToolRequest) (ToolResponse, error) {
	t, err := s.repo.FindByPlatform(ctx, strings.TrimSpace(platform))
	if err != nil {
		return ToolResponse{}, mapRepositoryError(err)
	}

	if req.Website != nil {
		t.Website = strings.TrimSpace(*req.Website)
	}
	if req.Organizations != nil {
		orgs, err := buildOrganizations(*req.Organizations)
		if err != nil {
			return ToolResponse{}, err
		}
		t.Organizations = orgs
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return ToolResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, platform string) error {
	n, err := s.repo.DeleteByPlatform(ctx, strings.TrimSpace(platform))
	if err != nil {
		return err
	}
	if n == 0 {
		return toolerrors.ErrToolNotFound
	}
	s.logger.Info("tool deleted", zap.String("platform", platform))
	return nil
}

func buildOrganizations(reqs []OrganizationRequest) ([]Organization, error) {
	orgs := make([]Organization, 0, len(reqs))
	for _, r := range reqs {
		if r.PurchaseDate != "" && r.ExpireDate != "" && r.ExpireDate < r.PurchaseDate {
			return nil, toolerrors.ErrInvalidDateRange
		}

		org := Organization{
			Name:         strings.TrimSpace(r.Name),
			LoginID:      strings.TrimSpace(r.LoginID),
			Password:     r.Password,
			Price:        r.Price,
			Currency:     strings.ToLower(strings.TrimSpace(r.Currency)),
			Billing:      r.Billing,
			Users:        r.Users,
			PurchaseDate: r.PurchaseDate,
			ExpireDate:   r.ExpireDate,
		}
		if org.Currency == "" {
			org.Currency = DefaultCurrency
		}
		if org.Billing == "" {
			org.Billing = DefaultBilling
		}
		if org.Users == nil {
			org.Users = []string{}
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

func mapToResponse(t Tool) ToolResponse {
	orgs := t.Organizations
	if orgs == nil {
		orgs = []Organization{}
	}
	return ToolResponse{
		Platform:      t.Platform,
		Website:       t.Website,
		Organizations: orgs,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
}
