package rbac

import (
	"context"
	"sort"
	"sync"

	"go-hrm/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req EnforceRequest) (bool, error)
	ListRolePermissions(ctx context.Context) ([]domain.RolePermissionsResponse, error)
	GrantPermission(ctx context.Context, perm RolePermission) error
	RevokePermission(ctx context.Context, perm RolePermission) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy rebuilds the enforcer from role_permissions, seeding the defaults when the table
// is empty.
func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	perms, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return err
	}

	if len(perms) == 0 {
		if err := s.repo.CreateRolePermissions(ctx, DefaultPermissions); err != nil {
			return err
		}
		perms = DefaultPermissions
		s.logger.Info("rbac default permissions seeded", zap.Int("count", len(perms)))
	}

	s.enforcer.ClearPolicy()

	for _, in := range Inheritance {
		if _, err := s.enforcer.AddGroupingPolicy(in.Child, in.Parent); err != nil {
			return err
		}
	}
	for _, p := range perms {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded", zap.Int("permissions", len(perms)))
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if req.Role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRolePermissions(ctx context.Context) ([]domain.RolePermissionsResponse, error) {
	perms, err := s.repo.ListRolePermissions(ctx)
	if err != nil {
		return nil, err
	}

	byRole := map[string][]domain.PermissionResponse{}
	for _, p := range perms {
		byRole[p.Role] = append(byRole[p.Role], domain.PermissionResponse{Resource: p.Resource, Action: p.Action})
	}

	inherits := map[string][]string{}
	for _, in := range Inheritance {
		inherits[in.Child] = append(inherits[in.Child], in.Parent)
	}

	roles := []string{RoleAdmin, RoleModerator, RoleUser, RoleFormer}
	resp := make([]domain.RolePermissionsResponse, 0, len(roles))
	for _, role := range roles {
		rp := byRole[role]
		sort.Slice(rp, func(i, j int) bool {
			if rp[i].Resource == rp[j].Resource {
				return rp[i].Action < rp[j].Action
			}
			return rp[i].Resource < rp[j].Resource
		})
		if rp == nil {
			rp = []domain.PermissionResponse{}
		}
		resp = append(resp, domain.RolePermissionsResponse{
			Role:        role,
			Inherits:    inherits[role],
			Permissions: rp,
		})
	}
	return resp, nil
}

func (s *service) GrantPermission(ctx context.Context, perm RolePermission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.CreateRolePermissions(ctx, []RolePermission{perm}); err != nil {
		return err
	}
	return s.loadPolicyUnlocked(ctx)
}

func (s *service) RevokePermission(ctx context.Context, perm RolePermission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteRolePermission(ctx, perm); err != nil {
		return err
	}
	return s.loadPolicyUnlocked(ctx)
}
