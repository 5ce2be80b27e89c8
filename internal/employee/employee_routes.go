package employee

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	public := r.Group("/employees")
	public.GET("/invite/:token", middleware.RateLimitByIP(0.5, 5), handler.GetByInviteToken)

	employees := r.Group("/employees")
	employees.Use(auth)
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetAll,
		)
		employees.GET("/basics",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee_basic", "read"),
			handler.GetBasics,
		)
		employees.GET("/admins",
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetAdminAndMods,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.SelfOrAuthorize(rbacService, "employee", "read", "id"),
			handler.GetByID,
		)

		create := []gin.HandlerFunc{
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
		}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb))
		}
		employees.POST("", append(create, handler.Create)...)

		employees.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.SelfOrAuthorize(rbacService, "employee", "update", "id"),
			handler.Update,
		)
		employees.PATCH("/:id/email", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.UpdateEmail)
		employees.PATCH("/:id/password",
			middleware.RateLimitByUser(0.2, 2),
			middleware.SelfOrAuthorize(rbacService, "employee", "update", "id"),
			handler.UpdatePassword,
		)
		employees.PATCH("/:id/discord", middleware.SelfOrAuthorize(rbacService, "employee", "update", "id"), handler.UpdateDiscord)
		employees.PATCH("/:id/personality", middleware.SelfOrAuthorize(rbacService, "employee", "update", "id"), handler.UpdatePersonality)
		employees.PATCH("/:id/role", middleware.RBACAuthorize(rbacService, "employee_role", "update"), handler.UpdateRole)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "employee", "delete"),
			handler.Delete,
		)
	}
}
