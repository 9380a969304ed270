package handler

import (
	"github.com/caiolopes/pdv-api/internal/application/service"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/request"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ConfigHandler handles event configuration HTTP requests
type ConfigHandler struct {
	configService *service.ConfigService
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configService *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// Configure handles configuring the event catalog and cash float
func (h *ConfigHandler) Configure(c *gin.Context) {
	var req request.ConfigureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	flavors := make([]service.FlavorInput, 0, len(req.Flavors))
	for _, f := range req.Flavors {
		flavors = append(flavors, service.FlavorInput{
			Name:     f.Name,
			Price:    f.Price,
			Seasonal: f.Seasonal,
		})
	}

	cfg, err := h.configService.Configure(c.Request.Context(), &service.ConfigureInput{
		StandName:    req.StandName,
		InitialFloat: req.InitialFloat,
		Flavors:      flavors,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event configured successfully", cfg)
}

// Get handles getting the current event configuration
func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.configService.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Configuration retrieved successfully", cfg)
}

// Catalog handles listing the active flavor catalog
func (h *ConfigHandler) Catalog(c *gin.Context) {
	flavors, err := h.configService.GetCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog retrieved successfully", flavors)
}

// Reset handles wiping all event state for a fresh start
func (h *ConfigHandler) Reset(c *gin.Context) {
	if err := h.configService.Reset(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "System reset successfully", nil)
}
