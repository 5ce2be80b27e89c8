package onboarding

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	onboardings := r.Group("/onboardings")
	onboardings.Use(auth)
	{
		onboardings.GET("/:employee_id",
			middleware.SelfOrAuthorize(rbacService, "onboarding", "read", "employee_id"),
			h.GetByEmployeeID,
		)
		onboardings.PATCH("/:employee_id/tasks", middleware.RBACAuthorize(rbacService, "onboarding", "update"), h.UpdateTaskStatus)
	}
}
