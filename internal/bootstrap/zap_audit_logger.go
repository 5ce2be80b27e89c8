package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ZapAuditLogger struct {
	logger *zap.Logger
}

func NewZapAuditLogger(logger *zap.Logger) *ZapAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &ZapAuditLogger{logger: logger.Named("audit")}
}

func (l *ZapAuditLogger) Log(_ context.Context, entry AuditLog) {
	l.logger.Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
