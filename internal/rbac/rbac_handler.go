package rbac

import (
	"net/http"
	"strings"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type PermissionRequest struct {
	Role     string `json:"role" binding:"required,oneof=admin moderator user former"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	req.Role = strings.TrimSpace(req.Role)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Enforce(req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) ListPermissions(c *gin.Context) {
	resp, err := h.service.ListRolePermissions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Grant(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	perm := RolePermission{Role: req.Role, Resource: strings.TrimSpace(req.Resource), Action: strings.TrimSpace(req.Action)}
	if err := h.service.GrantPermission(c.Request.Context(), perm); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, perm, nil)
}

func (h *Handler) Revoke(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	perm := RolePermission{Role: req.Role, Resource: strings.TrimSpace(req.Resource), Action: strings.TrimSpace(req.Action)}
	if err := h.service.RevokePermission(c.Request.Context(), perm); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"revoked": true}, nil)
}
