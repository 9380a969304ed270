package request

// FlavorRequest represents one catalog item in a configure request
type FlavorRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Price    float64 `json:"price" binding:"min=0"`
	Seasonal bool    `json:"seasonal"`
}

// ConfigureRequest represents an event configuration request
type ConfigureRequest struct {
	StandName    string          `json:"stand_name" binding:"omitempty,max=100"`
	InitialFloat float64         `json:"initial_float" binding:"min=0"`
	Flavors      []FlavorRequest `json:"flavors" binding:"required,min=1,dive"`
}
