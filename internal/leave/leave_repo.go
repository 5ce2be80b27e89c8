package leave

import (
	"context"
	"time"

	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RequestListOptions is what GET /leave-requests may search and sort on.
var RequestListOptions = query.Options{
	SearchFields: []string{"leave_requests.employee_id", "employees.name"},
	SortableFields: map[string]string{
		"created_at": "leave_requests.created_at",
		"start_date": "leave_requests.start_date",
		"name":       "employees.name",
	},
	DefaultSort:  "leave_requests.created_at",
	DefaultDesc:  true,
	TieBreaker:   "leave_requests.id",
	StatusColumn: "leave_requests.status",
	Columns:      []string{"leave_requests.*", "employees.name AS employee_name"},
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *Leave) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*Leave, error)
	FindByEmployeeIDForUpdate(ctx context.Context, employeeID string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error

	CreateRequest(ctx context.Context, req *LeaveRequest) error
	FindRequestForUpdate(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllRequests(ctx context.Context, spec query.Spec) ([]LeaveRequestDetail, int64, error)
	HasOverlappingRequest(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	UpdateRequest(ctx context.Context, req *LeaveRequest) error
	DeleteRequestsByEmployeeID(ctx context.Context, employeeID string) error

	FindEmployeeContact(ctx context.Context, employeeID string) (EmployeeContact, error)
	ListReviewerEmails(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return transaction.DB(ctx, r.db).Create(l).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Leave, error) {
	var l Leave
	if err := transaction.DB(ctx, r.db).Where("employee_id = ?", employeeID).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByEmployeeIDForUpdate(ctx context.Context, employeeID string) (*Leave, error) {
	var l Leave
	err := transaction.DB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return transaction.DB(ctx, r.db).Save(l).Error
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return transaction.DB(ctx, r.db).Where("employee_id = ?", employeeID).Delete(&Leave{}).Error
}

func (r *repository) CreateRequest(ctx context.Context, req *LeaveRequest) error {
	return transaction.DB(ctx, r.db).Create(req).Error
}

func (r *repository) FindRequestForUpdate(ctx context.Context, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := transaction.DB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindAllRequests(ctx context.Context, spec query.Spec) ([]LeaveRequestDetail, int64, error) {
	joined := func() *gorm.DB {
		return transaction.DB(ctx, r.db).
			Table("leave_requests").
			Joins("LEFT JOIN employees ON employees.id = leave_requests.employee_id")
	}

	var total int64
	if err := joined().Scopes(spec.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []LeaveRequestDetail
	if err := joined().Scopes(spec.Apply()).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// HasOverlappingRequest reports a pending or approved request sharing any day with start..end.
func (r *repository) HasOverlappingRequest(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var count int64
	err := transaction.DB(ctx, r.db).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{RequestPending, RequestApproved}).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateRequest(ctx context.Context, req *LeaveRequest) error {
	return transaction.DB(ctx, r.db).Save(req).Error
}

func (r *repository) DeleteRequestsByEmployeeID(ctx context.Context, employeeID string) error {
	return transaction.DB(ctx, r.db).Where("employee_id = ?", employeeID).Delete(&LeaveRequest{}).Error
}

func (r *repository) FindEmployeeContact(ctx context.Context, employeeID string) (EmployeeContact, error) {
	var rows []EmployeeContact
	err := transaction.DB(ctx, r.db).
		Table("employees").
		Select("id, name, work_email, personal_email").
		Where("id = ?", employeeID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return EmployeeContact{}, err
	}
	if len(rows) == 0 {
		return EmployeeContact{}, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

// ListReviewerEmails returns the work emails of active admins and moderators.
func (r *repository) ListReviewerEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := transaction.DB(ctx, r.db).
		Table("employees").
		Where("role IN ?", []string{"admin", "moderator"}).
		Where("status = ?", "active").
		Where("work_email <> ''").
		Pluck("work_email", &emails).Error
	return emails, err
}
