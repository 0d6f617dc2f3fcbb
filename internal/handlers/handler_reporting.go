package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/middleware"
)

// reportingHandler serves sales aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers reporting routes.
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/sales-summary", h.getSalesSummary)
	}
}

// getSalesSummary godoc
// @Summary Sales summary over a date range
// @Description Aggregates completed sales and returns between two dates,
// @Description both inclusive.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SalesSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Router /reports/sales-summary [get]
func (h *reportingHandler) getSalesSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SalesSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	summary, err := h.reportingService.GetSalesSummary(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute sales summary")
		return
	}
	c.JSON(http.StatusOK, dto.SalesSummaryResponse{Summary: *summary})
}
