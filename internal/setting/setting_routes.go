package setting

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	settings := r.Group("/settings")
	settings.Use(auth)
	{
		settings.GET("/leave-allotted-days", middleware.RBACAuthorize(rbacService, "setting", "read"), h.GetLeaveAllottedDays)
		settings.PUT("/leave-allotted-days", middleware.RBACAuthorize(rbacService, "setting", "update"), h.UpdateLeaveAllottedDays)
		settings.GET("/onboarding-tasks", middleware.RBACAuthorize(rbacService, "setting", "read"), h.GetOnboardingTasks)
		settings.PUT("/onboarding-tasks", middleware.RBACAuthorize(rbacService, "setting", "update"), h.UpdateOnboardingTasks)
	}
}
