package employeejob

type UpdateEmployeeJobRequest struct {
	Department  *string `json:"department" binding:"omitempty"`
	ManagerID   *string `json:"manager_id" binding:"omitempty"`
	JobType     *string `json:"job_type" binding:"omitempty,oneof=full_time part_time contractual internship"`
	Designation *string `json:"designation" binding:"omitempty,min=2"`
	JoiningDate *string `json:"joining_date" binding:"omitempty"`
}

type EmployeeJobResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Department  string `json:"department"`
	ManagerID   string `json:"manager_id,omitempty"`
	JobType     string `json:"job_type"`
	Designation string `json:"designation"`
	JoiningDate string `json:"joining_date"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
