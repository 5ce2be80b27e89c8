package employeejob

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	jobs := r.Group("/employee-jobs")
	jobs.Use(auth)
	{
		jobs.GET("/:employee_id",
			middleware.SelfOrAuthorize(rbacService, "employee_job", "read", "employee_id"),
			h.GetByEmployeeID,
		)
		jobs.PATCH("/:employee_id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee_job", "update"),
			h.Update,
		)
	}
}
