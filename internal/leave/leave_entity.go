package leave

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	TypeCasual     = "casual"
	TypeSick       = "sick"
	TypeEarned     = "earned"
	TypeWithoutPay = "without_pay"
)

func IsValidType(t string) bool {
	switch t {
	case TypeCasual, TypeSick, TypeEarned, TypeWithoutPay:
		return true
	}
	return false
}

type Balance struct {
	Allotted int `json:"allotted"`
	Consumed int `json:"consumed"`
}

func (b Balance) Remaining() int {
	return b.Allotted - b.Consumed
}

type LeaveYear struct {
	Year       int     `json:"year"`
	Casual     Balance `json:"casual"`
	Sick       Balance `json:"sick"`
	Earned     Balance `json:"earned"`
	WithoutPay Balance `json:"without_pay"`
}

// Balance returns the bucket for leaveType, or nil for an unknown type.
func (y *LeaveYear) Balance(leaveType string) *Balance {
	switch leaveType {
	case TypeCasual:
		return &y.Casual
	case TypeSick:
		return &y.Sick
	case TypeEarned:
		return &y.Earned
	case TypeWithoutPay:
		return &y.WithoutPay
	}
	return nil
}

// Leave is an employee's ledger, one entry per year, kept in year order.
type Leave struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	EmployeeID string      `gorm:"type:varchar(32);not null;uniqueIndex:uq_leave_employee"`
	Years      []LeaveYear `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt  time.Time   `gorm:"autoCreateTime"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime"`
}

func (Leave) TableName() string {
	return "leaves"
}

func (l *Leave) Year(year int) *LeaveYear {
	for i := range l.Years {
		if l.Years[i].Year == year {
			return &l.Years[i]
		}
	}
	return nil
}

// AddYear inserts entry unless its year is already present.
func (l *Leave) AddYear(entry LeaveYear) *LeaveYear {
	if existing := l.Year(entry.Year); existing != nil {
		return existing
	}
	l.Years = append(l.Years, entry)
	sort.Slice(l.Years, func(i, j int) bool { return l.Years[i].Year < l.Years[j].Year })
	return l.Year(entry.Year)
}

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type LeaveRequest struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID      string     `gorm:"type:varchar(32);not null;index:idx_leave_requests_employee_dates,priority:1"`
	LeaveType       string     `gorm:"type:varchar(20);not null"`
	StartDate       time.Time  `gorm:"type:date;not null;index:idx_leave_requests_employee_dates,priority:2"`
	EndDate         time.Time  `gorm:"type:date;not null;index:idx_leave_requests_employee_dates,priority:3"`
	DayCount        int        `gorm:"not null"`
	Reason          string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason *string    `gorm:"type:text"`
	ReviewedBy      *string    `gorm:"type:varchar(32)"`
	ReviewedAt      *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveRequestDetail is a request joined with the requester's name.
type LeaveRequestDetail struct {
	LeaveRequest
	EmployeeName string
}

// EmployeeContact is what notifications need to know about an employee.
type EmployeeContact struct {
	ID            string
	Name          string
	WorkEmail     string
	PersonalEmail string
}

func (c EmployeeContact) Email() string {
	if c.WorkEmail != "" {
		return c.WorkEmail
	}
	return c.PersonalEmail
}
