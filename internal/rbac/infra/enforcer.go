package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// roleModel matches a role (or a role it inherits) against resource/action policies. "*" in a
// policy matches anything.
const roleModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(roleModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
