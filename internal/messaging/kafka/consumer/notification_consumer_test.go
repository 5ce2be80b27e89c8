package consumer

import (
	"context"
	"errors"
	"testing"

	"go-hrm/internal/events"
	"go-hrm/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type scriptedReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type delivererFunc func(ctx context.Context, event events.NotificationRequestedEvent) error

func (f delivererFunc) Deliver(ctx context.Context, event events.NotificationRequestedEvent) error {
	return f(ctx, event)
}

func noBackoff(t *testing.T) {
	t.Helper()
	prev := deliveryBackoff
	deliveryBackoff = 0
	t.Cleanup(func() { deliveryBackoff = prev })
}

func TestConsumeNotifications(t *testing.T) {
	noBackoff(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte(`{"kind":"invitation","recipients":["a@x.io"]}`)},
			{Offset: 2, Value: []byte(`not json`)},
			{Offset: 3, Value: []byte(`{"kind":"leave_request","recipients":["smtp-down@x.io"]}`)},
			{Offset: 4, Value: []byte(`{"kind":"fax","recipients":["b@x.io"]}`)},
		},
	}

	var delivered []string
	leaveAttempts := 0
	deliverer := delivererFunc(func(_ context.Context, ev events.NotificationRequestedEvent) error {
		switch ev.Kind {
		case "fax":
			return &notification.RenderError{Err: errors.New("unknown kind")}
		case events.KindLeaveRequest:
			leaveAttempts++
			return errors.New("smtp unavailable")
		}
		delivered = append(delivered, ev.Kind)
		return nil
	})

	ConsumeNotifications(ctx, reader, deliverer, zap.NewNop())

	assert.Equal(t, []string{events.KindInvitation}, delivered)
	assert.Equal(t, maxDeliveryAttempts, leaveAttempts)
	// Exhausted retries are dropped so later offsets can be committed.
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
}

func TestConsumeNotifications_RetriesTransientFailure(t *testing.T) {
	noBackoff(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 7, Value: []byte(`{"kind":"invitation","recipients":["a@x.io"]}`)},
		},
	}

	calls := 0
	deliverer := delivererFunc(func(context.Context, events.NotificationRequestedEvent) error {
		calls++
		if calls == 1 {
			return errors.New("connection reset")
		}
		return nil
	})

	ConsumeNotifications(ctx, reader, deliverer, zap.NewNop())

	assert.Equal(t, 2, calls)
	assert.Equal(t, []int64{7}, reader.committed)
}

func TestHandleNotification_ShutdownLeavesMessageUncommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{cancel: cancel}

	deliverer := delivererFunc(func(context.Context, events.NotificationRequestedEvent) error {
		cancel()
		return errors.New("smtp unavailable")
	})

	handleNotification(ctx, reader, deliverer, kafkago.Message{
		Offset: 9,
		Value:  []byte(`{"kind":"invitation","recipients":["a@x.io"]}`),
	}, zap.NewNop())

	assert.Empty(t, reader.committed)
}
