package rbac

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
	RoleFormer    = "former"
)

// RolePermission grants role the action on resource. "*" is a wildcard for either column.
type RolePermission struct {
	Role     string `gorm:"type:varchar(20);primaryKey"`
	Resource string `gorm:"type:varchar(50);primaryKey"`
	Action   string `gorm:"type:varchar(30);primaryKey"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// RoleInheritance lets child act with every permission of parent.
type RoleInheritance struct {
	Child  string
	Parent string
}

// Inheritance is fixed: admin includes moderator, moderator includes user. Former employees
// inherit nothing.
var Inheritance = []RoleInheritance{
	{Child: RoleAdmin, Parent: RoleModerator},
	{Child: RoleModerator, Parent: RoleUser},
}

// DefaultPermissions seed an empty role_permissions table.
var DefaultPermissions = []RolePermission{
	{Role: RoleAdmin, Resource: "*", Action: "*"},

	{Role: RoleModerator, Resource: "employee", Action: "read"},
	{Role: RoleModerator, Resource: "employee_job", Action: "read"},
	{Role: RoleModerator, Resource: "leave", Action: "read"},
	{Role: RoleModerator, Resource: "leave_request", Action: "read"},
	{Role: RoleModerator, Resource: "leave_request", Action: "approve"},
	{Role: RoleModerator, Resource: "onboarding", Action: "read"},
	{Role: RoleModerator, Resource: "onboarding", Action: "update"},
	{Role: RoleModerator, Resource: "offboarding", Action: "read"},
	{Role: RoleModerator, Resource: "tool", Action: "read"},
	{Role: RoleModerator, Resource: "setting", Action: "read"},

	{Role: RoleUser, Resource: "department", Action: "read"},
	{Role: RoleUser, Resource: "employee_basic", Action: "read"},
	{Role: RoleUser, Resource: "leave_request", Action: "create"},
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleModerator, RoleUser, RoleFormer:
		return true
	}
	return false
}
