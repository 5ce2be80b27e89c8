package notification

import (
	"context"
	"encoding/json"
	"time"

	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Sender queues mail for asynchronous delivery. Every call only writes an outbox row, so it
// joins the caller's transaction when ctx carries one.
//
//go:generate mockgen -source=notification_sender.go -destination=mock/notification_sender_mock.go -package=mock
type Sender interface {
	InvitationRequest(ctx context.Context, req InvitationRequest) error
	OffboardingInitiate(ctx context.Context, req OffboardingInitiate) error
	LeaveRequest(ctx context.Context, req LeaveRequest) error
	LeaveRequestResponse(ctx context.Context, req LeaveRequestResponse) error
}

type InvitationRequest struct {
	EmployeeID  string
	Email       string
	Designation string
	InviteToken string
	JoiningDate time.Time
}

type OffboardingInitiate struct {
	EmployeeID      string
	Email           string
	Name            string
	ResignationDate time.Time
}

type LeaveRequest struct {
	EmployeeID string
	Emails     []string
	Name       string
	LeaveType  string
	DayCount   int
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

type LeaveRequestResponse struct {
	EmployeeID string
	Email      string
	Name       string
	LeaveType  string
	DayCount   int
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     string
}

type outboxSender struct {
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewOutboxSender(outbox kafka.OutboxRepository, logger ...*zap.Logger) Sender {
	l := zap.L().Named("notification.sender")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.sender")
	}
	return &outboxSender{outbox: outbox, now: time.Now, logger: l}
}

func (s *outboxSender) InvitationRequest(ctx context.Context, req InvitationRequest) error {
	return s.enqueue(ctx, req.EmployeeID, events.NotificationRequestedEvent{
		Kind:        events.KindInvitation,
		Recipients:  []string{req.Email},
		Designation: req.Designation,
		InviteToken: req.InviteToken,
		JoiningDate: req.JoiningDate.Format(dateLayout),
	})
}

func (s *outboxSender) OffboardingInitiate(ctx context.Context, req OffboardingInitiate) error {
	return s.enqueue(ctx, req.EmployeeID, events.NotificationRequestedEvent{
		Kind:            events.KindOffboardingInitiate,
		Recipients:      []string{req.Email},
		Name:            req.Name,
		ResignationDate: req.ResignationDate.Format(dateLayout),
	})
}

func (s *outboxSender) LeaveRequest(ctx context.Context, req LeaveRequest) error {
	if len(req.Emails) == 0 {
		s.logger.Warn("leave request notification has no recipients", zap.String("employee_id", req.EmployeeID))
		return nil
	}
	return s.enqueue(ctx, req.EmployeeID, events.NotificationRequestedEvent{
		Kind:       events.KindLeaveRequest,
		Recipients: req.Emails,
		Name:       req.Name,
		LeaveType:  req.LeaveType,
		DayCount:   req.DayCount,
		StartDate:  req.StartDate.Format(dateLayout),
		EndDate:    req.EndDate.Format(dateLayout),
		Reason:     req.Reason,
	})
}

func (s *outboxSender) LeaveRequestResponse(ctx context.Context, req LeaveRequestResponse) error {
	return s.enqueue(ctx, req.EmployeeID, events.NotificationRequestedEvent{
		Kind:       events.KindLeaveRequestResponse,
		Recipients: []string{req.Email},
		Name:       req.Name,
		LeaveType:  req.LeaveType,
		DayCount:   req.DayCount,
		StartDate:  req.StartDate.Format(dateLayout),
		EndDate:    req.EndDate.Format(dateLayout),
		Reason:     req.Reason,
		Status:     req.Status,
	})
}

func (s *outboxSender) enqueue(ctx context.Context, employeeID string, event events.NotificationRequestedEvent) error {
	event.EventType = events.NotificationRequestedType
	event.OccurredAt = s.now().UTC()

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	requestID := contextutil.GetRequestID(ctx)
	row := &kafka.OutboxEvent{
		ID:            uuid.New(),
		RequestID:     requestID,
		AggregateType: "employee",
		AggregateID:   employeeID,
		EventType:     events.NotificationRequestedType,
		Topic:         events.NotificationRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.Create(ctx, row); err != nil {
		s.logger.Error("enqueue notification failed",
			zap.String("kind", event.Kind),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Debug("notification queued",
		zap.String("kind", event.Kind),
		zap.String("employee_id", employeeID),
		zap.String("outbox_id", row.ID.String()),
	)
	return nil
}
