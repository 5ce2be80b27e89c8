package main

import (
	"log"

	"go-hrm/internal/app"
	"go-hrm/internal/bootstrap"
	"go-hrm/internal/config"
	"go-hrm/internal/shared/apperror"

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

	if err := app.RunWorker(cfg, logger); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
