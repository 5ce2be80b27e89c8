package tool

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	tools := r.Group("/tools")
	tools.Use(auth)
	{
		tools.GET("", middleware.RBACAuthorize(rbacService, "tool", "read"), h.GetAll)
		tools.GET("/:platform", middleware.RBACAuthorize(rbacService, "tool", "read"), h.GetByPlatform)
		tools.POST("", middleware.RBACAuthorize(rbacService, "tool", "create"), h.Create)
		tools.PATCH("/:platform", middleware.RBACAuthorize(rbacService, "tool", "update"), h.Update)
		tools.DELETE("/:platform", middleware.RBACAuthorize(rbacService, "tool", "delete"), h.Delete)
	}
}
