package handler

import (
	"github.com/caiolopes/pdv-api/internal/application/service"
	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/request"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Finalize handles converting the current cart into a recorded sale
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	session := GetRegisterSession(c)

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	method, ok := enum.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		response.BadRequest(c, "Unknown payment method: "+req.PaymentMethod)
		return
	}

	result, err := h.checkoutService.Finalize(c.Request.Context(), &service.FinalizeInput{
		Session:       session,
		PaymentMethod: method,
		VIPName:       req.VIPName,
		CashTendered:  req.CashTendered,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", result)
}
