package payroll

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(auth)
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		payrolls.GET("/:employee_id",
			middleware.SelfOrAuthorize(rbacService, "payroll", "read", "employee_id"),
			handler.GetByEmployeeID,
		)
		payrolls.GET("/:employee_id/statement",
			middleware.RateLimitByUser(0.2, 2),
			middleware.SelfOrAuthorize(rbacService, "payroll", "read", "employee_id"),
			handler.DownloadStatement,
		)
		payrolls.PATCH("/:employee_id", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.Update)
	}
}
