package onboarding

type UpdateTaskStatusRequest struct {
	TaskName string `json:"task_name" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=pending completed"`
}

type OnboardingResponse struct {
	EmployeeID string           `json:"employee_id"`
	Tasks      []OnboardingTask `json:"tasks"`
	Completed  int              `json:"completed"`
	Total      int              `json:"total"`
	UpdatedAt  string           `json:"updated_at"`
}
