package leave

import (
	"context"
	"strings"
	"time"

	leaveerrors "go-hrm/internal/leave/errors"
	"go-hrm/internal/notification"
	"go-hrm/internal/setting"
	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/transaction"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (LeaveResponse, error)
	GetRequests(ctx context.Context, spec query.Spec) ([]LeaveRequestResponse, int64, error)
	CreateRequest(ctx context.Context, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveRequest(ctx context.Context, reviewerID, id string) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, reviewerID, id string, req RejectLeaveRequestRequest) (LeaveRequestResponse, error)
}

type service struct {
	repo     Repository
	settings setting.Provider
	sender   notification.Sender
	tx       transaction.Manager
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	settings setting.Provider,
	sender notification.Sender,
	tx transaction.Manager,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, settings: settings, sender: sender, tx: tx, now: time.Now, logger: l}
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (LeaveResponse, error) {
	l, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return LeaveResponse{}, mapLedgerError(err)
	}
	return LeaveResponse{
		EmployeeID: l.EmployeeID,
		Years:      l.Years,
		UpdatedAt:  l.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func (s *service) GetRequests(ctx context.Context, spec query.Spec) ([]LeaveRequestResponse, int64, error) {
	rows, total, err := s.repo.FindAllRequests(ctx, spec)
	if err != nil {
		s.logger.Error("list leave requests failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]LeaveRequestResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapRequestToResponse(row))
	}
	return resp, total, nil
}

func (s *service) CreateRequest(ctx context.Context, employeeID string, in CreateLeaveRequestRequest) (LeaveRequestResponse, error) {
	if !IsValidType(in.LeaveType) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	start, end, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		s.logger.Warn("create leave request validation failed", zap.String("employee_id", employeeID), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	req := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveType:  in.LeaveType,
		StartDate:  start,
		EndDate:    end,
		DayCount:   DayCount(start, end),
		Reason:     strings.TrimSpace(in.Reason),
		Status:     RequestPending,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ledger, err := s.repo.FindByEmployeeIDForUpdate(ctx, employeeID)
		if err != nil {
			return mapLedgerError(err)
		}

		year, err := s.yearOf(ctx, ledger, start.Year())
		if err != nil {
			return err
		}
		if year.Balance(req.LeaveType).Remaining() < req.DayCount {
			return leaveerrors.ErrInsufficientBalance
		}

		overlap, err := s.repo.HasOverlappingRequest(ctx, employeeID, start, end)
		if err != nil {
			return err
		}
		if overlap {
			return leaveerrors.ErrLeaveOverlap
		}

		return s.repo.CreateRequest(ctx, req)
	})
	if err != nil {
		s.logger.Warn("create leave request failed", zap.String("employee_id", employeeID), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request created",
		zap.String("leave_request_id", req.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("day_count", req.DayCount),
	)

	name := s.notifyReviewers(ctx, req)
	return mapRequestToResponse(LeaveRequestDetail{LeaveRequest: *req, EmployeeName: name}), nil
}

func (s *service) ApproveRequest(ctx context.Context, reviewerID, id string) (LeaveRequestResponse, error) {
	var req *LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.pendingRequest(ctx, id)
		if err != nil {
			return err
		}

		ledger, err := s.repo.FindByEmployeeIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return mapLedgerError(err)
		}

		year, err := s.yearOf(ctx, ledger, req.StartDate.Year())
		if err != nil {
			return err
		}
		if ledger.Year(year.Year) == nil {
			year = ledger.AddYear(*year)
		}

		balance := year.Balance(req.LeaveType)
		if balance.Remaining() < req.DayCount {
			return leaveerrors.ErrInsufficientBalance
		}
		balance.Consumed += req.DayCount

		if err := s.repo.Update(ctx, ledger); err != nil {
			return mapLedgerError(err)
		}

		s.markReviewed(req, RequestApproved, reviewerID, nil)
		return s.repo.UpdateRequest(ctx, req)
	})
	if err != nil {
		s.logger.Warn("approve leave request failed", zap.String("leave_request_id", id), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request approved",
		zap.String("leave_request_id", id),
		zap.String("reviewed_by", reviewerID),
	)

	name := s.notifyRequester(ctx, req)
	return mapRequestToResponse(LeaveRequestDetail{LeaveRequest: *req, EmployeeName: name}), nil
}

func (s *service) RejectRequest(ctx context.Context, reviewerID, id string, in RejectLeaveRequestRequest) (LeaveRequestResponse, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return LeaveRequestResponse{}, leaveerrors.ErrRejectionReasonRequired
	}

	var req *LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.pendingRequest(ctx, id)
		if err != nil {
			return err
		}
		s.markReviewed(req, RequestRejected, reviewerID, &reason)
		return s.repo.UpdateRequest(ctx, req)
	})
	if err != nil {
		s.logger.Warn("reject leave request failed", zap.String("leave_request_id", id), zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request rejected",
		zap.String("leave_request_id", id),
		zap.String("reviewed_by", reviewerID),
	)

	name := s.notifyRequester(ctx, req)
	return mapRequestToResponse(LeaveRequestDetail{LeaveRequest: *req, EmployeeName: name}), nil
}

func (s *service) pendingRequest(ctx context.Context, id string) (*LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrLeaveRequestNotFound
	}
	req, err := s.repo.FindRequestForUpdate(ctx, id)
	if err != nil {
		return nil, mapRequestError(err)
	}
	if req.Status != RequestPending {
		return nil, leaveerrors.ErrRequestNotPending
	}
	return req, nil
}

func (s *service) markReviewed(req *LeaveRequest, status, reviewerID string, rejectionReason *string) {
	now := s.now().UTC()
	req.Status = status
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &now
	req.RejectionReason = rejectionReason
}

// yearOf returns the ledger entry for year. A year the ledger does not hold yet gets the full
// current allotment; the returned entry is detached from the ledger in that case.
func (s *service) yearOf(ctx context.Context, ledger *Leave, year int) (*LeaveYear, error) {
	if entry := ledger.Year(year); entry != nil {
		return entry, nil
	}
	allotted, err := s.settings.GetLeaveAllottedDays(ctx)
	if err != nil {
		return nil, err
	}
	entry := FullYear(year, allotted)
	return &entry, nil
}

func (s *service) notifyReviewers(ctx context.Context, req *LeaveRequest) string {
	contact, err := s.repo.FindEmployeeContact(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("leave request notification skipped", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return ""
	}
	emails, err := s.repo.ListReviewerEmails(ctx)
	if err != nil {
		s.logger.Warn("leave request notification skipped", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return contact.Name
	}

	err = s.sender.LeaveRequest(ctx, notification.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Emails:     emails,
		Name:       contact.Name,
		LeaveType:  req.LeaveType,
		DayCount:   req.DayCount,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	})
	if err != nil {
		s.logger.Warn("leave request notification failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
	}
	return contact.Name
}

func (s *service) notifyRequester(ctx context.Context, req *LeaveRequest) string {
	contact, err := s.repo.FindEmployeeContact(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("leave response notification skipped", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return ""
	}

	reason := req.Reason
	if req.RejectionReason != nil {
		reason = *req.RejectionReason
	}
	err = s.sender.LeaveRequestResponse(ctx, notification.LeaveRequestResponse{
		EmployeeID: req.EmployeeID,
		Email:      contact.Email(),
		Name:       contact.Name,
		LeaveType:  req.LeaveType,
		DayCount:   req.DayCount,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     reason,
		Status:     req.Status,
	})
	if err != nil {
		s.logger.Warn("leave response notification failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
	}
	return contact.Name
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	if start.Year() != end.Year() {
		return time.Time{}, time.Time{}, leaveerrors.ErrCrossYearRequest
	}
	return start, end, nil
}

func mapRequestToResponse(d LeaveRequestDetail) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:              d.ID.String(),
		EmployeeID:      d.EmployeeID,
		EmployeeName:    d.EmployeeName,
		LeaveType:       d.LeaveType,
		StartDate:       d.StartDate.Format(dateLayout),
		EndDate:         d.EndDate.Format(dateLayout),
		DayCount:        d.DayCount,
		Reason:          d.Reason,
		Status:          d.Status,
		RejectionReason: d.RejectionReason,
		ReviewedBy:      d.ReviewedBy,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
	}
	if d.ReviewedAt != nil {
		v := d.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

