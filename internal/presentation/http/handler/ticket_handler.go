package handler

import (
	"strconv"

	"github.com/caiolopes/pdv-api/internal/application/service"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/response"
	"github.com/caiolopes/pdv-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// TicketHandler handles drink ticket HTTP requests
type TicketHandler struct {
	ticketService *service.TicketService
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService *service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// List handles listing the tickets emitted for a sale
func (h *TicketHandler) List(c *gin.Context) {
	saleID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	tickets, err := h.ticketService.ListTickets(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tickets retrieved successfully", tickets)
}

// Render handles rendering a single ticket as a PNG image
func (h *TicketHandler) Render(c *gin.Context) {
	saleID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil || seq < 1 {
		response.BadRequest(c, "Invalid ticket sequence number")
		return
	}

	png, err := h.ticketService.RenderTicket(c.Request.Context(), saleID, seq)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "image/png", png)
}

// Print handles sending a sale's tickets to the thermal printer
func (h *TicketHandler) Print(c *gin.Context) {
	saleID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	tickets, err := h.ticketService.PrintTickets(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tickets printed successfully", tickets)
}

// PrinterStatus handles reporting the configured printer status
func (h *TicketHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.ticketService.GetPrinterStatus())
}
