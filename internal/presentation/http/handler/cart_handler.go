package handler

import (
	"github.com/caiolopes/pdv-api/internal/application/service"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/request"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles getting the current cart
func (h *CartHandler) Get(c *gin.Context) {
	session := GetRegisterSession(c)
	cart := h.cartService.Get(c.Request.Context(), session)
	response.OK(c, "Cart retrieved successfully", cart)
}

// AddItem handles adding one unit of a flavor to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	session := GetRegisterSession(c)

	var req request.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), session, req.Flavor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// RemoveItem handles decrementing one unit of a flavor from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	session := GetRegisterSession(c)

	flavor := c.Param("flavor")
	if flavor == "" {
		response.BadRequest(c, "Flavor name is required")
		return
	}

	cart := h.cartService.DecrementItem(c.Request.Context(), session, flavor)
	response.OK(c, "Item removed from cart", cart)
}

// ApplyDiscount handles applying a flat discount to the cart
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	session := GetRegisterSession(c)

	var req request.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.ApplyDiscount(c.Request.Context(), session, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount applied", cart)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	session := GetRegisterSession(c)
	h.cartService.Clear(c.Request.Context(), session)
	response.NoContent(c)
}
