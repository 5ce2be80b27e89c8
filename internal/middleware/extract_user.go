package middleware

import (
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ActorID is the authenticated employee, or "" before AuthMiddleware ran.
func ActorID(c *gin.Context) string {
	return c.GetString(ContextEmployeeID)
}

// SelfOrAuthorize lets employees reach their own record (path param equals their id) and
// otherwise falls back to the role policy for resource/action.
func SelfOrAuthorize(service RBACService, resource, action, param string) gin.HandlerFunc {
	authorize := RBACAuthorize(service, resource, action)
	return func(c *gin.Context) {
		actor := ActorID(c)
		if actor == "" {
			response.Abort(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, apperror.ErrUnauthorized.Message)
			return
		}

		if c.Param(param) == actor {
			c.Next()
			return
		}

		authorize(c)
	}
}
