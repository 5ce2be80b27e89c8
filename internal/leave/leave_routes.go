package leave

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService rbac.Service) {
	leaves := r.Group("/leaves")
	leaves.Use(auth)
	{
		leaves.GET("/:employee_id",
			middleware.SelfOrAuthorize(rbacService, "leave", "read", "employee_id"),
			handler.GetByEmployeeID,
		)
	}

	requests := r.Group("/leave-requests")
	requests.Use(auth)
	{
		requests.GET("", middleware.RBACAuthorize(rbacService, "leave_request", "read"), handler.GetRequests)
		requests.POST("",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, "leave_request", "create"),
			handler.CreateRequest,
		)
		requests.PATCH("/:id/approve", middleware.RBACAuthorize(rbacService, "leave_request", "approve"), handler.ApproveRequest)
		requests.PATCH("/:id/reject", middleware.RBACAuthorize(rbacService, "leave_request", "approve"), handler.RejectRequest)
	}
}
