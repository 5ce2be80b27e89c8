package department

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	departments := r.Group("/departments")
	departments.Use(auth)
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetAll)
	}
}
