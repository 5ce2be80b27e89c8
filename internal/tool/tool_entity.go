package tool

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCurrency = "bdt"
	DefaultBilling  = "onetime"
)

// Organization is one account held on a platform.
type Organization struct {
	Name         string   `json:"name"`
	LoginID      string   `json:"login_id"`
	Password     string   `json:"password"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Billing      string   `json:"billing"`
	Users        []string `json:"users"`
	PurchaseDate string   `json:"purchase_date,omitempty"`
	ExpireDate   string   `json:"expire_date,omitempty"`
}

type Tool struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Platform      string         `gorm:"type:varchar(120);not null;uniqueIndex:uq_tool_platform"`
	Website       string         `gorm:"type:varchar(255);not null"`
	Organizations []Organization `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (Tool) TableName() string {
	return "tools"
}
