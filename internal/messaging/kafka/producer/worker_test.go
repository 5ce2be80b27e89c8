package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-hrm/internal/messaging/kafka"
	kafkaMock "go-hrm/internal/messaging/kafka/mock"
	"go-hrm/internal/messaging/kafka/producer"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingWriter struct {
	failFor map[string]bool
	written []kafkago.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func outboxEvent(aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.New(),
		RequestID:     "req-1",
		AggregateType: "employee",
		AggregateID:   aggregateID,
		EventType:     "notification_requested",
		Topic:         "hr.notification.requested.v1",
		Payload:       []byte(`{"kind":"invitation"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{}

		ev := outboxEvent("DEV-20240115-001")
		repo.EXPECT().ListPending(ctx, 10).Return([]kafka.OutboxEvent{ev}, nil)
		repo.EXPECT().MarkSent(ctx, ev.ID).Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)

		msg := writer.written[0]
		assert.Equal(t, "hr.notification.requested.v1", msg.Topic)
		assert.Equal(t, []byte("DEV-20240115-001"), msg.Key)

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, "notification_requested", headers["event_type"])
		assert.Equal(t, "req-1", headers["request_id"])
		assert.Equal(t, ev.ID.String(), headers["outbox_id"])
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{failFor: map[string]bool{"bad": true}}

		bad := outboxEvent("bad")
		good := outboxEvent("good")
		repo.EXPECT().ListPending(ctx, 10).Return([]kafka.OutboxEvent{bad, good}, nil)
		repo.EXPECT().MarkFailed(ctx, bad.ID, "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, good.ID).Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 10).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &recordingWriter{}, zap.NewNop(), 10)
		assert.Error(t, err)
	})
}
