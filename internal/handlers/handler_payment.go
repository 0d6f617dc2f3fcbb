package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/middleware"
)

// paymentHandler records out-of-bill money movements against a party.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// registerPaymentRoutes registers payment routes under the parties group.
func registerPaymentRoutes(group *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	parties := group.Group("/parties")
	{
		parties.POST("/:partyID/payments", h.recordPayment)
		parties.POST("/:partyID/advance-refunds", h.refundAdvance)
	}
}

// recordPayment godoc
// @Summary Record a payment from a party
// @Description Applies a received payment: due is cleared first and any
// @Description excess becomes advance.
// @Tags payments
// @Accept json
// @Produce json
// @Param partyID path string true "Party ID"
// @Param payment body dto.RecordPaymentRequest true "Amount and method"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.paymentService.RecordPayment(c.Request.Context(), partyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("party_id", partyID))
	c.JSON(http.StatusOK, resp)
}

// refundAdvance godoc
// @Summary Refund part of a party's held advance
// @Description Pays out held advance. Refunding more than the held advance
// @Description fails validation.
// @Tags payments
// @Accept json
// @Produce json
// @Param partyID path string true "Party ID"
// @Param refund body dto.RefundAdvanceRequest true "Amount and notes"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/advance-refunds [post]
func (h *paymentHandler) refundAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RefundAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.paymentService.RefundAdvance(c.Request.Context(), partyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to refund advance")
		return
	}

	logger.Info("Advance refunded", slog.String("party_id", partyID))
	c.JSON(http.StatusOK, resp)
}
