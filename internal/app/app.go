package app

import (
	"go-hrm/internal/config"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and mounts every module on router. The returned func
// releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")

	db, err := openDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		closeDatabase(db, log)
		return nil, err
	}
	log.Info("redis connection established")

	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))

	if err := registerModules(router, db, rdb, cfg, logger); err != nil {
		_ = rdb.Close()
		closeDatabase(db, log)
		return nil, err
	}

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			log.Warn("close redis failed", zap.Error(err))
		}
		closeDatabase(db, log)
	}
	return cleanup, nil
}
