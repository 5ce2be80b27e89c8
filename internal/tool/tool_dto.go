package tool

type OrganizationRequest struct {
	Name         string   `json:"name" binding:"required,max=120"`
	LoginID      string   `json:"login_id" binding:"required,max=255"`
	Password     string   `json:"password" binding:"required,max=255"`
	Price        float64  `json:"price" binding:"min=0"`
	Currency     string   `json:"currency" binding:"omitempty,max=8"`
	Billing      string   `json:"billing" binding:"omitempty,oneof=onetime monthly yearly"`
	Users        []string `json:"users"`
	PurchaseDate string   `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	ExpireDate   string   `json:"expire_date" binding:"omitempty,datetime=2006-01-02"`
}

type CreateToolRequest struct {
	Platform      string                `json:"platform" binding:"required,max=120"`
	Website       string                `json:"website" binding:"required,url"`
	Organizations []OrganizationRequest `json:"organizations" binding:"dive"`
}

type UpdateToolRequest struct {
	Website       *string                `json:"website" binding:"omitempty,url"`
	Organizations *[]OrganizationRequest `json:"organizations" binding:"omitempty,dive"`
}

type ToolResponse struct {
	Platform      string         `json:"platform"`
	Website       string         `json:"website"`
	Organizations []Organization `json:"organizations"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}
