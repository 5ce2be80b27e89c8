package main

import (
	"log"

	"go-hrm/internal/app"
	"go-hrm/internal/bootstrap"
	"go-hrm/internal/config"
	"go-hrm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	auditLogger := bootstrap.NewZapAuditLogger(logger)
	if err := bootstrap.StartHTTPServer(r, bootstrap.DefaultServerConfig(cfg.Port), auditLogger); err != nil {
		logger.Error("http server failed", zap.Error(err))
	}
}
