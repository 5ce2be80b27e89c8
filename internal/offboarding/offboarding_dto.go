package offboarding

type InitiateOffboardingRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required"`
	ResignationDate string `json:"resignation_date" binding:"required"`
	Reason          string `json:"reason" binding:"max=1000"`
}

type OffboardingResponse struct {
	EmployeeID      string `json:"employee_id"`
	ResignationDate string `json:"resignation_date"`
	Reason          string `json:"reason,omitempty"`
	InitiatedBy     string `json:"initiated_by,omitempty"`
	CreatedAt       string `json:"created_at"`
}
