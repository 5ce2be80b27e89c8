package department

type DepartmentResponse struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Headcount int64  `json:"headcount"`
}
