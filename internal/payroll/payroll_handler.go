package payroll

import (
	"fmt"
	"net/http"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/query"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	var params query.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	spec := params.ToSpec(ListOptions)

	resp, total, err := h.service.GetAll(c.Request.Context(), spec)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewWindowMeta(total, spec.Skip, spec.Limit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByEmployeeID(c *gin.Context) {
	resp, err := h.service.GetByEmployeeID(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadStatement(c *gin.Context) {
	employeeID := c.Param("employee_id")

	pdf, err := h.service.GetStatement(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="salary-statement-%s.pdf"`, employeeID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
