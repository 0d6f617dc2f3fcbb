package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/middleware"
)

// returnHandler handles partial and full returns against completed sales.
type returnHandler struct {
	returnService portssvc.ReturnSvcFacade
}

func newReturnHandler(returnService portssvc.ReturnSvcFacade) *returnHandler {
	return &returnHandler{returnService: returnService}
}

// registerReturnRoutes registers return routes under the invoices group.
func registerReturnRoutes(group *gin.RouterGroup, returnService portssvc.ReturnSvcFacade) {
	h := newReturnHandler(returnService)

	invoices := group.Group("/invoices")
	{
		invoices.GET("/:invoiceID/returnable", h.listReturnable)
		invoices.POST("/:invoiceID/returns", h.processReturn)
	}
}

// listReturnable godoc
// @Summary List returnable remainders for a sale
// @Description Shows how much of each line can still be returned after all
// @Description prior returns against the invoice.
// @Tags returns
// @Produce json
// @Param invoiceID path string true "Parent sale invoice ID"
// @Success 200 {array} dto.ReturnableItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Not a completed sale"
// @Router /invoices/{invoiceID}/returnable [get]
func (h *returnHandler) listReturnable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	items, err := h.returnService.ListReturnable(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list returnable items")
		return
	}

	resp := make([]dto.ReturnableItemResponse, len(items))
	for i := range items {
		resp[i] = dto.ToReturnableItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, resp)
}

// processReturn godoc
// @Summary Process a return against a completed sale
// @Description Creates a completed return invoice priced at the original sale
// @Description rates, restores stock, and credits the party due-first.
// @Tags returns
// @Accept json
// @Produce json
// @Param invoiceID path string true "Parent sale invoice ID"
// @Param return body dto.ProcessReturnRequest true "Lines to return"
// @Success 201 {object} dto.ProcessReturnResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Over-request or remainder exhausted"
// @Router /invoices/{invoiceID}/returns [post]
func (h *returnHandler) processReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ProcessReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.returnService.ProcessReturn(c.Request.Context(), invoiceID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to process return")
		return
	}

	logger.Info("Return processed",
		slog.String("parent_invoice_id", invoiceID),
		slog.String("return_invoice_id", result.ReturnInvoiceID))
	c.JSON(http.StatusCreated, dto.ToProcessReturnResponse(result))
}
