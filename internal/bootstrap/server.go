package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func DefaultServerConfig(port string) ServerConfig {
	return ServerConfig{
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// StartHTTPServer serves router until SIGINT or SIGTERM, then drains in-flight requests.
func StartHTTPServer(router *gin.Engine, cfg ServerConfig, auditLogger AuditLogger) error {
	log := zap.L().Named("bootstrap.server")
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
		auditLogger.Log(context.Background(), AuditLog{
			Action:  "SERVER_SHUTDOWN",
			Message: "Server is shutting down",
			Meta:    map[string]any{"signal": sig.String()},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return err
	}
	log.Info("server exited gracefully")
	return nil
}

// WaitForSignal blocks until SIGINT or SIGTERM and returns the signal name.
func WaitForSignal() string {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	return (<-quit).String()
}

// NewLogger builds the process logger; production gets JSON output.
func NewLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
