package auth

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		group.POST("/invite/accept", middleware.RateLimitByIP(0.1, 3), handler.AcceptInvite)
		group.GET("/me", auth, middleware.RateLimitByUser(2, 5), handler.Me)
		group.POST("/logout", handler.Logout)
	}
}
