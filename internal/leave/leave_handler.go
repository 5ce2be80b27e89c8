package leave

import (
	"net/http"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetByEmployeeID(c *gin.Context) {
	resp, err := h.service.GetByEmployeeID(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetRequests(c *gin.Context) {
	var params query.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	spec := params.ToSpec(RequestListOptions)
	if employeeID := c.Query("employee_id"); employeeID != "" {
		spec.Filters = append(spec.Filters, query.Filter{Column: "leave_requests.employee_id", Value: employeeID})
	}

	resp, total, err := h.service.GetRequests(c.Request.Context(), spec)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewWindowMeta(total, spec.Skip, spec.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateRequest(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ApproveRequest(c *gin.Context) {
	resp, err := h.service.ApproveRequest(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RejectRequest(c *gin.Context) {
	var req RejectLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RejectRequest(c.Request.Context(), middleware.ActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
