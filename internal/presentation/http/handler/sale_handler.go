package handler

import (
	"time"

	"github.com/caiolopes/pdv-api/internal/application/service"
	"github.com/caiolopes/pdv-api/internal/domain/enum"
	"github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/request"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/response"
	"github.com/caiolopes/pdv-api/pkg/pagination"
	"github.com/caiolopes/pdv-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// SaleHandler handles ledger HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing ledger sales with filters
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	if filter.Method != "" {
		method, ok := enum.ParsePaymentMethod(filter.Method)
		if !ok {
			response.BadRequest(c, "Unknown payment method: "+filter.Method)
			return
		}
		params.Method = &method
	}

	switch filter.Kind {
	case "":
	case "Product":
		kind := enum.SaleKindProduct
		params.Kind = &kind
	case "Settlement":
		kind := enum.SaleKindSettlement
		params.Kind = &kind
	default:
		response.BadRequest(c, "Unknown sale kind: "+filter.Kind)
		return
	}

	if filter.StartDate != "" {
		t, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &t
	}
	if filter.EndDate != "" {
		t, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		params.EndDate = &t
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles getting a single sale with its lines
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Reverse handles voiding a sale and undoing its side effects
func (h *SaleHandler) Reverse(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.Reverse(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale reversed successfully", nil)
}
