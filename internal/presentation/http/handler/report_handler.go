package handler

import (
	"github.com/caiolopes/pdv-api/internal/application/service"
	"github.com/caiolopes/pdv-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles the end-of-day summary report
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// ByFlavor handles revenue broken down by flavor
func (h *ReportHandler) ByFlavor(c *gin.Context) {
	rows, err := h.reportService.RevenueByFlavor(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Flavor revenue retrieved successfully", rows)
}

// ByHour handles revenue broken down by hour of day
func (h *ReportHandler) ByHour(c *gin.Context) {
	rows, err := h.reportService.RevenueByHour(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Hourly revenue retrieved successfully", rows)
}
