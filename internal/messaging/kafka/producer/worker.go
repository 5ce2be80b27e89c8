package producer

import (
	"context"
	"time"

	"go-hrm/internal/messaging/kafka"

	"go.uber.org/zap"
)

type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	cfg WorkerConfig,
) {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 3 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started",
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.Int("batch_size", cfg.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := ProcessPendingEvents(ctx, repo, writer, log, cfg.BatchSize); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// ProcessPendingEvents publishes one batch and returns how many events were marked sent.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	batchSize int,
) (int, error) {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID.String()),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			if err := repo.MarkFailed(ctx, event.ID, err.Error()); err != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID.String()), zap.Error(err))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID.String()),
				zap.Error(err),
			)
			continue
		}
		sent++

		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID.String()),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return sent, nil
}
