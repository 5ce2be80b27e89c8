package leave

type CreateLeaveRequestRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=casual sick earned without_pay"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required,max=1000"`
}

type RejectLeaveRequestRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type LeaveResponse struct {
	EmployeeID string      `json:"employee_id"`
	Years      []LeaveYear `json:"years"`
	UpdatedAt  string      `json:"updated_at"`
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DayCount        int     `json:"day_count"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}
