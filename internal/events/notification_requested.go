package events

import "time"

const (
	NotificationRequestedTopic = "hr.notification.requested.v1"
	NotificationRequestedType  = "notification_requested"
)

const (
	KindInvitation           = "invitation"
	KindOffboardingInitiate  = "offboarding_initiate"
	KindLeaveRequest         = "leave_request"
	KindLeaveRequestResponse = "leave_request_response"
)

// NotificationRequestedEvent asks the consumer to mail Recipients. Which of the optional fields
// are set depends on Kind. Dates are YYYY-MM-DD.
type NotificationRequestedEvent struct {
	EventType  string   `json:"event_type"`
	Kind       string   `json:"kind"`
	Recipients []string `json:"recipients"`

	Name            string `json:"name,omitempty"`
	Designation     string `json:"designation,omitempty"`
	InviteToken     string `json:"invite_token,omitempty"`
	JoiningDate     string `json:"joining_date,omitempty"`
	ResignationDate string `json:"resignation_date,omitempty"`
	LeaveType       string `json:"leave_type,omitempty"`
	DayCount        int    `json:"day_count,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	Reason          string `json:"reason,omitempty"`
	Status          string `json:"status,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}
