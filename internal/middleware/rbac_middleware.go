package middleware

import (
	"go-hrm/internal/domain"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can answer an enforce request.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok {
			response.Abort(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, "missing auth context")
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role.(string),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Abort(c, apperror.ErrInternal.HTTPStatus, apperror.ErrInternal.Code, apperror.ErrInternal.Message)
			return
		}

		if !allowed {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message,
				gin.H{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
