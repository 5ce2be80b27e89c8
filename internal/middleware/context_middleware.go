package middleware

import (
	"go-hrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request scoped logger carrying the request id and the caller. It
// must run after AuthMiddleware to see the caller.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = c.GetHeader("X-Request-ID")
		}
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("employee_id", c.GetString(ContextEmployeeID)),
			zap.String("role", c.GetString(ContextRole)),
		)

		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
