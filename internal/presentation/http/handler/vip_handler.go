package handler

import (
	"github.com/caiolopes/pdv-api/internal/application/service"
	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/request"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// VIPHandler handles VIP tab HTTP requests
type VIPHandler struct {
	vipService *service.VIPService
}

// NewVIPHandler creates a new VIP handler
func NewVIPHandler(vipService *service.VIPService) *VIPHandler {
	return &VIPHandler{vipService: vipService}
}

// List handles listing all VIP accounts and balances
func (h *VIPHandler) List(c *gin.Context) {
	accounts, err := h.vipService.ListAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "VIP accounts retrieved successfully", accounts)
}

// Settle handles paying off a VIP tab in full
func (h *VIPHandler) Settle(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "VIP name is required")
		return
	}

	var req request.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	method, ok := enum.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		response.BadRequest(c, "Unknown payment method: "+req.PaymentMethod)
		return
	}

	sale, err := h.vipService.Settle(c.Request.Context(), name, method)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "VIP tab settled successfully", sale)
}
