package payroll

type UpdatePayrollRequest struct {
	GrossSalary *int64  `json:"gross_salary" binding:"omitempty,min=0"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type PayrollResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	WorkEmail    string `json:"work_email,omitempty"`
	Department   string `json:"department,omitempty"`
	Designation  string `json:"designation,omitempty"`
	GrossSalary  int64  `json:"gross_salary"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
