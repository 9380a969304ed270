package entity

import (
	"encoding/json"
	"time"
)

// EventConfig is the single-row event configuration: the initial cash float
// put in the drawer at opening and whether the event has been configured.
// Row id is always 1.
type EventConfig struct {
	ID           uint      `gorm:"primary_key" json:"-"`
	StandName    string    `gorm:"size:255" json:"stand_name"`
	InitialFloat int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Configured   bool      `gorm:"default:false" json:"configured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c EventConfig) MarshalJSON() ([]byte, error) {
	type Alias EventConfig
	return json.Marshal(&struct {
		Alias
		InitialFloat float64 `json:"initial_float"`
	}{
		Alias:        Alias(c),
		InitialFloat: float64(c.InitialFloat) / 100,
	})
}

// TableName returns the table name for the EventConfig model
func (EventConfig) TableName() string {
	return "event_config"
}

// GetInitialFloatDecimal returns the initial cash float as a decimal
func (c *EventConfig) GetInitialFloatDecimal() float64 {
	return float64(c.InitialFloat) / 100
}
