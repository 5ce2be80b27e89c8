package app

import (
	"context"

	"go-hrm/internal/bootstrap"
	"go-hrm/internal/config"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/messaging/kafka/producer"
	"go-hrm/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox rows to Kafka until the process is signalled.
func RunWorker(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer closeDatabase(db, log)

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer writer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(db), writer, logger, producer.WorkerConfig{
			PollInterval: cfg.OutboxPollInterval,
			BatchSize:    cfg.OutboxBatchSize,
		})
	}()

	sig := bootstrap.WaitForSignal()
	log.Info("worker shutting down", zap.String("signal", sig))
	cancel()
	<-done

	return nil
}
