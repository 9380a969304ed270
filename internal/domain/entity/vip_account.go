package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VIPAccount is a running tab a customer charges drinks against. Created
// implicitly on the first VIP-charged sale, zeroed on settlement. Balance is
// never allowed to persist below zero; every decrement clamps at 0.
type VIPAccount struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;unique;not null" json:"name"`
	Balance   int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a VIPAccount) MarshalJSON() ([]byte, error) {
	type Alias VIPAccount
	return json.Marshal(&struct {
		Alias
		Balance float64 `json:"balance"`
	}{
		Alias:   Alias(a),
		Balance: float64(a.Balance) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new VIP account
func (a *VIPAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VIPAccount model
func (VIPAccount) TableName() string {
	return "vip_accounts"
}

// GetBalanceDecimal returns the outstanding balance as a decimal
func (a *VIPAccount) GetBalanceDecimal() float64 {
	return float64(a.Balance) / 100
}
