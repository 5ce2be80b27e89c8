package middleware

import (
	"go-hrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"

	maxRequestIDLength = 64
)

// RequestID propagates the caller's X-Request-ID, or mints a UUID when it is missing or
// unreasonably long.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" || len(rid) > maxRequestIDLength {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}
