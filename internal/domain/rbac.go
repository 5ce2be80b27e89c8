package domain

// EnforceRequest asks whether a role may perform action on resource. It lives outside the rbac
// package so middleware can depend on it without importing rbac.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type RolePermissionsResponse struct {
	Role        string               `json:"role"`
	Inherits    []string             `json:"inherits,omitempty"`
	Permissions []PermissionResponse `json:"permissions"`
}
