package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flavor represents a sellable item in the active event catalog.
// Historical sales snapshot the flavor name and price, so flavors may be
// replaced between events without touching the ledger.
type Flavor struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;unique;not null" json:"name"`
	Price     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Seasonal  bool      `gorm:"default:false" json:"seasonal"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (f Flavor) MarshalJSON() ([]byte, error) {
	type Alias Flavor
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(f),
		Price: float64(f.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new flavor
func (f *Flavor) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Flavor model
func (Flavor) TableName() string {
	return "flavors"
}

// GetPriceDecimal returns the unit price as a decimal
func (f *Flavor) GetPriceDecimal() float64 {
	return float64(f.Price) / 100
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (f *Flavor) SetPriceFromDecimal(price float64) {
	f.Price = int64(price*100 + 0.5)
}
