package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	kafkaMock "go-hrm/internal/messaging/kafka/mock"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOutboxSender_InvitationRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	sender := notification.NewOutboxSender(outbox)
	ctx := contextutil.WithRequestID(context.Background(), "req-42")

	outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row *kafka.OutboxEvent) error {
		assert.Equal(t, events.NotificationRequestedTopic, row.Topic)
		assert.Equal(t, "DEV-20240115-007", row.AggregateID)
		assert.Equal(t, "req-42", row.RequestID)
		assert.Equal(t, kafka.OutboxStatusPending, row.Status)

		var ev events.NotificationRequestedEvent
		assert.NoError(t, json.Unmarshal(row.Payload, &ev))
		assert.Equal(t, events.KindInvitation, ev.Kind)
		assert.Equal(t, []string{"new.hire@mail.com"}, ev.Recipients)
		assert.Equal(t, "2024-01-15", ev.JoiningDate)
		assert.Equal(t, "tok", ev.InviteToken)
		return nil
	})

	err := sender.InvitationRequest(ctx, notification.InvitationRequest{
		EmployeeID:  "DEV-20240115-007",
		Email:       "new.hire@mail.com",
		Designation: "Engineer",
		InviteToken: "tok",
		JoiningDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestOutboxSender_LeaveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("no recipients is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := notification.NewOutboxSender(kafkaMock.NewMockOutboxRepository(ctrl))

		assert.NoError(t, sender.LeaveRequest(ctx, notification.LeaveRequest{EmployeeID: "x"}))
	})

	t.Run("outbox failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		sender := notification.NewOutboxSender(outbox)

		outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		err := sender.LeaveRequest(ctx, notification.LeaveRequest{EmployeeID: "x", Emails: []string{"a@b.c"}})
		assert.EqualError(t, err, "insert failed")
	})
}
