package employeebank

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	banks := r.Group("/employee-banks")
	banks.Use(auth)
	{
		banks.GET("", middleware.RBACAuthorize(rbacService, "employee_bank", "read"), h.GetAll)
		banks.GET("/:employee_id",
			middleware.SelfOrAuthorize(rbacService, "employee_bank", "read", "employee_id"),
			h.GetByEmployeeID,
		)
		banks.PUT("/:employee_id",
			middleware.SelfOrAuthorize(rbacService, "employee_bank", "update", "employee_id"),
			h.Upsert,
		)
		banks.DELETE("/:employee_id", middleware.RBACAuthorize(rbacService, "employee_bank", "delete"), h.Delete)
	}
}
