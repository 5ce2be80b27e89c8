package rbac

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(auth, middleware.RoleMiddleware(RoleAdmin))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions", handler.ListPermissions)
		group.POST("/permissions", handler.Grant)
		group.DELETE("/permissions", handler.Revoke)
	}
}
