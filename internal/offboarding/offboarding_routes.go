package offboarding

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	offboardings := r.Group("/offboardings")
	offboardings.Use(auth)
	{
		offboardings.POST("", middleware.RBACAuthorize(rbacService, "offboarding", "create"), h.Initiate)
		offboardings.GET("/:employee_id",
			middleware.SelfOrAuthorize(rbacService, "offboarding", "read", "employee_id"),
			h.GetByEmployeeID,
		)
	}
}
