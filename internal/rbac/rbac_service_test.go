package rbac

import (
	"context"
	"errors"
	"testing"

	"go-hrm/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type memoryRepo struct {
	perms   []RolePermission
	created int
	listErr error
}

func (m *memoryRepo) ListRolePermissions(ctx context.Context) ([]RolePermission, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]RolePermission(nil), m.perms...), nil
}

func (m *memoryRepo) CreateRolePermissions(ctx context.Context, perms []RolePermission) error {
	m.created += len(perms)
	m.perms = append(m.perms, perms...)
	return nil
}

func (m *memoryRepo) DeleteRolePermission(ctx context.Context, perm RolePermission) error {
	out := m.perms[:0]
	for _, p := range m.perms {
		if p != perm {
			out = append(out, p)
		}
	}
	m.perms = out
	return nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	return NewService(repo, enforcer)
}

func TestRBACService_LoadPolicySeedsDefaults(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(t, repo)

	assert.NoError(t, svc.LoadPolicy(context.Background()))
	assert.Equal(t, len(DefaultPermissions), repo.created)

	// a second load finds the seeded rows
	assert.NoError(t, svc.LoadPolicy(context.Background()))
	assert.Equal(t, len(DefaultPermissions), repo.created)
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t, &memoryRepo{})
	assert.NoError(t, svc.LoadPolicy(context.Background()))

	cases := []struct {
		role, resource, action string
		want                   bool
	}{
		{RoleAdmin, "employee", "delete", true},
		{RoleAdmin, "setting", "update", true},
		{RoleModerator, "employee", "read", true},
		{RoleModerator, "employee", "delete", false},
		{RoleModerator, "leave_request", "create", true}, // inherited from user
		{RoleUser, "department", "read", true},
		{RoleUser, "employee", "read", false},
		{RoleFormer, "department", "read", false},
		{"", "department", "read", false},
	}

	for _, tc := range cases {
		allowed, err := svc.Enforce(EnforceRequest{Role: tc.role, Resource: tc.resource, Action: tc.action})
		assert.NoError(t, err)
		assert.Equal(t, tc.want, allowed, "%s %s:%s", tc.role, tc.resource, tc.action)
	}
}

func TestRBACService_GrantAndRevoke(t *testing.T) {
	svc := newTestService(t, &memoryRepo{})
	ctx := context.Background()
	assert.NoError(t, svc.LoadPolicy(ctx))

	perm := RolePermission{Role: RoleUser, Resource: "tool", Action: "read"}
	req := EnforceRequest{Role: RoleUser, Resource: "tool", Action: "read"}

	allowed, _ := svc.Enforce(req)
	assert.False(t, allowed)

	assert.NoError(t, svc.GrantPermission(ctx, perm))
	allowed, _ = svc.Enforce(req)
	assert.True(t, allowed)

	assert.NoError(t, svc.RevokePermission(ctx, perm))
	allowed, _ = svc.Enforce(req)
	assert.False(t, allowed)
}

func TestRBACService_ListRolePermissions(t *testing.T) {
	svc := newTestService(t, &memoryRepo{perms: []RolePermission{
		{Role: RoleUser, Resource: "tool", Action: "read"},
		{Role: RoleUser, Resource: "department", Action: "read"},
	}})

	resp, err := svc.ListRolePermissions(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 4)
	assert.Equal(t, RoleUser, resp[2].Role)
	assert.Equal(t, "department", resp[2].Permissions[0].Resource)
	assert.Equal(t, []string{RoleModerator}, resp[0].Inherits)
	assert.Empty(t, resp[3].Permissions)
}

func TestRBACService_LoadPolicyError(t *testing.T) {
	svc := newTestService(t, &memoryRepo{listErr: errors.New("db down")})
	assert.Error(t, svc.LoadPolicy(context.Background()))
}
