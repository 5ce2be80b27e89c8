package middleware

import (
	"sync"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter keeps one token bucket per key (client IP or employee id).
type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	limiter, exists := k.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(k.r, k.b)
		k.limiters[key] = limiter
	}
	return limiter
}

func tooManyRequests(c *gin.Context) {
	response.Abort(c, apperror.ErrTooManyRequests.HTTPStatus, apperror.ErrTooManyRequests.Code, apperror.ErrTooManyRequests.Message)
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// RateLimitByUser limits authenticated callers per employee id; anonymous requests pass.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		employeeID := ActorID(c)
		if employeeID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(employeeID).Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}
