package employee

type CreateEmployeeRequest struct {
	Department    string `json:"department" binding:"required"`
	JoiningDate   string `json:"joining_date" binding:"required"`
	ManagerID     string `json:"manager_id" binding:"max=32"`
	JobType       string `json:"job_type" binding:"required,oneof=full_time part_time contractual internship"`
	Designation   string `json:"designation" binding:"required,max=100"`
	GrossSalary   int64  `json:"gross_salary" binding:"min=0"`
	PersonalEmail string `json:"personal_email" binding:"required,email"`
}

// UpdateEmployeeRequest is a profile patch. ID, Role, Password and WorkEmail are decoded only
// so that a request touching them can be refused.
type UpdateEmployeeRequest struct {
	ID        *string `json:"id"`
	Role      *string `json:"role"`
	Password  *string `json:"password"`
	WorkEmail *string `json:"work_email"`

	Name             *string `json:"name" binding:"omitempty,min=1,max=120"`
	Image            *string `json:"image" binding:"omitempty,max=255"`
	PersonalEmail    *string `json:"personal_email" binding:"omitempty,email"`
	DOB              *string `json:"dob"`
	NID              *string `json:"nid" binding:"omitempty,max=32"`
	TIN              *string `json:"tin" binding:"omitempty,max=32"`
	Phone            *string `json:"phone" binding:"omitempty,max=32"`
	Gender           *string `json:"gender" binding:"omitempty,oneof=male female other"`
	BloodGroup       *string `json:"blood_group" binding:"omitempty,max=8"`
	MaritalStatus    *string `json:"marital_status" binding:"omitempty,oneof=single married divorced widowed"`
	PresentAddress   *string `json:"present_address"`
	PermanentAddress *string `json:"permanent_address"`
	Facebook         *string `json:"facebook" binding:"omitempty,max=255"`
	Twitter          *string `json:"twitter" binding:"omitempty,max=255"`
	Linkedin         *string `json:"linkedin" binding:"omitempty,max=255"`
	Note             *string `json:"note"`
}

type UpdateEmailRequest struct {
	WorkEmail string `json:"work_email" binding:"required,email"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type UpdateDiscordRequest struct {
	Discord string `json:"discord" binding:"required,max=64"`
}

type UpdatePersonalityRequest struct {
	Personality string `json:"personality" binding:"required,len=4,alpha"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Image            string `json:"image,omitempty"`
	WorkEmail        string `json:"work_email"`
	PersonalEmail    string `json:"personal_email"`
	Role             string `json:"role"`
	Status           string `json:"status"`
	DOB              string `json:"dob,omitempty"`
	NID              string `json:"nid,omitempty"`
	TIN              string `json:"tin,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Gender           string `json:"gender,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	MaritalStatus    string `json:"marital_status,omitempty"`
	PresentAddress   string `json:"present_address,omitempty"`
	PermanentAddress string `json:"permanent_address,omitempty"`
	Facebook         string `json:"facebook,omitempty"`
	Twitter          string `json:"twitter,omitempty"`
	Linkedin         string `json:"linkedin,omitempty"`
	Discord          string `json:"discord,omitempty"`
	Personality      string `json:"personality,omitempty"`
	Note             string `json:"note,omitempty"`
	CreatedAt        string `json:"created_at"`
}
