package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-hrm/internal/events"
	"go-hrm/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Delivery is retried in place with a linear backoff. Offsets are committed in order, so a
// message still failing after maxDeliveryAttempts is dropped rather than blocking the partition.
const maxDeliveryAttempts = 4

var deliveryBackoff = 2 * time.Second

type NotificationDeliverer interface {
	Deliver(ctx context.Context, event events.NotificationRequestedEvent) error
}

func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	deliverer NotificationDeliverer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		handleNotification(ctx, reader, deliverer, msg, log)
	}
}

func handleNotification(
	ctx context.Context,
	reader MessageReader,
	deliverer NotificationDeliverer,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.NotificationRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode notification event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	attempts, err := deliverWithRetry(ctx, deliverer, event)
	if err != nil {
		var renderErr *notification.RenderError
		switch {
		case errors.As(err, &renderErr):
			log.Warn("notification cannot be rendered, skipping",
				zap.String("kind", event.Kind),
				zap.Error(err),
			)
		case ctx.Err() != nil:
			// Left uncommitted; the group redelivers it after restart.
			log.Warn("notification delivery interrupted by shutdown",
				zap.String("kind", event.Kind),
				zap.Int64("offset", msg.Offset),
			)
			return
		default:
			log.Error("notification dropped after repeated delivery failures",
				zap.String("kind", event.Kind),
				zap.Strings("recipients", event.Recipients),
				zap.Int("attempts", attempts),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit notification message failed", zap.Error(err))
		return
	}

	log.Info("notification delivered",
		zap.String("kind", event.Kind),
		zap.Int("recipients", len(event.Recipients)),
	)
}

func deliverWithRetry(ctx context.Context, deliverer NotificationDeliverer, event events.NotificationRequestedEvent) (int, error) {
	var err error
	for attempt := 1; ; attempt++ {
		if err = deliverer.Deliver(ctx, event); err == nil {
			return attempt, nil
		}
		var renderErr *notification.RenderError
		if errors.As(err, &renderErr) || attempt == maxDeliveryAttempts {
			return attempt, err
		}

		timer := time.NewTimer(time.Duration(attempt) * deliveryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempt, err
		case <-timer.C:
		}
	}
}
