package kafka_test

import (
	"context"
	"testing"

	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newRepo(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock, *gorm.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := transaction.OpenGORM(db)
	assert.NoError(t, err)
	return kafka.NewOutboxRepository(gdb), mock, gdb
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: uuid.New(), Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	noID := valid
	noID.ID = uuid.Nil
	assert.Error(t, kafka.ValidateOutboxEvent(noID))

	noPayload := valid
	noPayload.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(noPayload))

	badStatus := valid
	badStatus.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(badStatus), "invalid outbox status: queued")
}

func TestOutboxRepository_CreateJoinsTransaction(t *testing.T) {
	repo, mock, gdb := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "outbox_events"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := transaction.NewManager(gdb).WithinTransaction(context.Background(), func(ctx context.Context) error {
		return repo.Create(ctx, &kafka.OutboxEvent{
			ID:            uuid.New(),
			AggregateType: "employee",
			AggregateID:   "DEV-20240115-001",
			EventType:     "notification_requested",
			Topic:         "hr.notification.requested.v1",
			Payload:       []byte(`{}`),
			Status:        kafka.OutboxStatusPending,
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	repo, mock, _ := newRepo(t)

	err := repo.Create(context.Background(), &kafka.OutboxEvent{ID: uuid.New()})
	assert.EqualError(t, err, "outbox topic is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "outbox_events" SET .*"retry_count"=retry_count \+ 1.* WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), id, "broker unavailable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
