package employeebank

type BankRequest struct {
	BankName      string `json:"bank_name" binding:"required,max=120"`
	Branch        string `json:"branch" binding:"max=120"`
	AccountName   string `json:"account_name" binding:"required,max=120"`
	AccountNumber string `json:"account_number" binding:"required,max=64"`
	RoutingNumber string `json:"routing_number" binding:"max=32"`
	IsDefault     bool   `json:"is_default"`
}

type UpsertEmployeeBankRequest struct {
	Banks []BankRequest `json:"banks" binding:"required,dive"`
}

type EmployeeBankResponse struct {
	EmployeeID string `json:"employee_id"`
	Banks      []Bank `json:"banks"`
	UpdatedAt  string `json:"updated_at"`
}
