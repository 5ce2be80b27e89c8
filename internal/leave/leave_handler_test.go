package leave_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/leave"
	leaveerrors "go-hrm/internal/leave/errors"
	leaveMock "go-hrm/internal/leave/mock"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/query"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextEmployeeID, "DEV-20240115-001")
	return c, w
}

func TestLeaveHandler_CreateRequest(t *testing.T) {
	t.Run("uses the caller as employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		h := leave.NewHandler(svc)

		c, w := testContext(http.MethodPost, "/leave-requests",
			`{"leave_type":"sick","start_date":"2024-03-04","end_date":"2024-03-04","reason":"flu"}`)
		svc.EXPECT().CreateRequest(gomock.Any(), "DEV-20240115-001", gomock.Any()).
			Return(leave.LeaveRequestResponse{ID: "r1", Status: leave.RequestPending}, nil)

		h.CreateRequest(c)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := leave.NewHandler(leaveMock.NewMockService(ctrl))

		c, w := testContext(http.MethodPost, "/leave-requests",
			`{"leave_type":"vacation","start_date":"2024-03-04","end_date":"2024-03-04","reason":"x"}`)
		h.CreateRequest(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := leaveMock.NewMockService(ctrl)
		h := leave.NewHandler(svc)

		c, w := testContext(http.MethodPost, "/leave-requests",
			`{"leave_type":"casual","start_date":"2024-03-04","end_date":"2024-03-20","reason":"trip"}`)
		svc.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(leave.LeaveRequestResponse{}, leaveerrors.ErrInsufficientBalance)

		h.CreateRequest(c)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestLeaveHandler_GetRequestsFiltersByEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	h := leave.NewHandler(svc)

	c, w := testContext(http.MethodGet, "/leave-requests?employee_id=DEV-20240115-001&status=pending", "")
	svc.EXPECT().GetRequests(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, spec query.Spec) ([]leave.LeaveRequestResponse, int64, error) {
			assert.Equal(t, []query.Filter{
				{Column: "leave_requests.status", Value: "pending"},
				{Column: "leave_requests.employee_id", Value: "DEV-20240115-001"},
			}, spec.Filters)
			return nil, 0, nil
		})

	h.GetRequests(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaveHandler_RejectRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := leave.NewHandler(leaveMock.NewMockService(ctrl))

	c, w := testContext(http.MethodPatch, "/leave-requests/x/reject", `{}`)
	h.RejectRequest(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
