package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
)

// Idempotency replays the stored response for a repeated Idempotency-Key and rejects a
// duplicate while the first request is still running. The handler stores the response under
// IdempotencyCacheKey and releases IdempotencyLockKey.
func Idempotency(rdb *redis.Client, logger ...*zap.Logger) gin.HandlerFunc {
	l := zap.L().Named("middleware.idempotency")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("middleware.idempotency")
	}

	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), ActorID(c), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				l.Debug("idempotent replay", zap.String("key", cacheKey))
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			l.Warn("idempotency lock unavailable", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Abort(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed")
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}
