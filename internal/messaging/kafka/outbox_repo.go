package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hrm/internal/shared/transaction"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

const maxErrorMessageLen = 500

type OutboxEvent struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestID     string     `gorm:"type:varchar(64)"`
	AggregateType string     `gorm:"type:varchar(64);not null"`
	AggregateID   string     `gorm:"type:varchar(64);not null"`
	EventType     string     `gorm:"type:varchar(64);not null"`
	Topic         string     `gorm:"type:varchar(128);not null"`
	Payload       []byte     `gorm:"type:jsonb;not null"`
	Status        string     `gorm:"type:varchar(16);not null;default:'pending';index:idx_outbox_status_created,priority:1"`
	RetryCount    int        `gorm:"not null;default:0"`
	ErrorMessage  *string    `gorm:"type:text"`
	NextRetryAt   *time.Time
	ProcessedAt   *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime;index:idx_outbox_status_created,priority:2"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

// Create joins the transaction carried by ctx, so the event commits with the state change
// that produced it.
func (r *outboxRepository) Create(ctx context.Context, event *OutboxEvent) error {
	if err := ValidateOutboxEvent(*event); err != nil {
		return err
	}
	return transaction.DB(ctx, r.db).Create(event).Error
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	var events []OutboxEvent
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{OutboxStatusPending, OutboxStatusFailed}).
		Where("next_retry_at IS NULL OR next_retry_at <= NOW()").
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusSent,
			"processed_at":  gorm.Expr("NOW()"),
			"error_message": nil,
		}).Error
}

// MarkFailed schedules a retry with a linear backoff capped at 150s.
func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if len(reason) > maxErrorMessageLen {
		reason = reason[:maxErrorMessageLen]
	}
	return r.db.WithContext(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusFailed,
			"retry_count":   gorm.Expr("retry_count + 1"),
			"error_message": reason,
			"next_retry_at": gorm.Expr("NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds')"),
		}).Error
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == uuid.Nil {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
