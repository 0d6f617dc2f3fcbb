package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/middleware"
)

// billingHandler handles the session cart and the invoice lifecycle. The
// billing session is keyed by the authenticated user: one cart per counter.
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newBillingHandler(billingService portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{billingService: billingService}
}

// registerBillingRoutes registers the cart and invoice routes.
func registerBillingRoutes(group *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	cart := group.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.DELETE("", h.clearCart)
		cart.POST("/items", h.addCartItem)
		cart.PUT("/items/:productID", h.updateCartItem)
		cart.DELETE("/items/:productID", h.removeCartItem)
		cart.PUT("/discount", h.setCartDiscount)
		cart.PUT("/party", h.setCartParty)
	}

	invoices := group.Group("/invoices")
	{
		invoices.POST("/draft", h.createDraft)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.POST("/:invoiceID/complete", h.completeInvoice)
		invoices.POST("/:invoiceID/cancel", h.cancelInvoice)
	}
}

func (h *billingHandler) session(c *gin.Context) (string, bool) {
	sessionID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return sessionID, ok
}

// getCart godoc
// @Summary Get the current billing cart
// @Description Returns the session cart with computed totals and tax split.
// @Tags billing
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart [get]
func (h *billingHandler) getCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	cart, err := h.billingService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get cart")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// addCartItem godoc
// @Summary Add a product to the cart
// @Description Adds a scanned product to the session cart, merging by product.
// @Tags billing
// @Accept json
// @Produce json
// @Param item body dto.AddCartItemRequest true "Product and amount"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (h *billingHandler) addCartItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	cart, err := h.billingService.AddItem(c.Request.Context(), sessionID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add item to cart")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// updateCartItem godoc
// @Summary Update a cart line
// @Description Replaces a line's quantity or length. Zero drops the line.
// @Tags billing
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param item body dto.UpdateCartItemRequest true "New amount"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productID} [put]
func (h *billingHandler) updateCartItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	cart, err := h.billingService.UpdateItem(c.Request.Context(), sessionID, c.Param("productID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update cart item")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// removeCartItem godoc
// @Summary Remove a cart line
// @Tags billing
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productID} [delete]
func (h *billingHandler) removeCartItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	cart, err := h.billingService.RemoveItem(c.Request.Context(), sessionID, c.Param("productID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to remove cart item")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// setCartDiscount godoc
// @Summary Set the bill-level discount
// @Description Sets a flat discount on the whole cart. It may not exceed the
// @Description cart's gross total.
// @Tags billing
// @Accept json
// @Produce json
// @Param discount body dto.SetCartDiscountRequest true "Discount amount"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/discount [put]
func (h *billingHandler) setCartDiscount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.SetCartDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	cart, err := h.billingService.SetDiscount(c.Request.Context(), sessionID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to set discount")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// setCartParty godoc
// @Summary Select or clear the cart's party
// @Tags billing
// @Accept json
// @Produce json
// @Param party body dto.SetCartPartyRequest true "Party selection; null clears"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/party [put]
func (h *billingHandler) setCartParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.SetCartPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	cart, err := h.billingService.SetParty(c.Request.Context(), sessionID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to set cart party")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// clearCart godoc
// @Summary Empty the billing cart
// @Tags billing
// @Produce json
// @Success 204 "Cart cleared"
// @Failure 401 {object} ErrorResponse
// @Router /cart [delete]
func (h *billingHandler) clearCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	if err := h.billingService.Clear(c.Request.Context(), sessionID); err != nil {
		respondServiceError(c, logger, err, "Failed to clear cart")
		return
	}
	c.Status(http.StatusNoContent)
}

// createDraft godoc
// @Summary Create a draft invoice from the cart
// @Description Prices the session cart into a draft invoice. Drafts touch no
// @Description stock and no ledger.
// @Tags invoices
// @Accept json
// @Produce json
// @Param draft body dto.CreateDraftRequest true "Invoice type and notes"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /invoices/draft [post]
func (h *billingHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	invoice, err := h.billingService.CreateDraft(c.Request.Context(), sessionID, req, sessionID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create draft invoice")
		return
	}

	logger.Info("Draft invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, nil))
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists invoices newest first, filtered by type, status or party.
// @Tags invoices
// @Produce json
// @Param type query string false "Invoice type" Enums(sale, purchase, return)
// @Param status query string false "Invoice status" Enums(draft, completed, cancelled)
// @Param partyID query string false "Party ID"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} ErrorResponse
// @Router /invoices [get]
func (h *billingHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.billingService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getInvoice godoc
// @Summary Get an invoice with its lines
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoiceID} [get]
func (h *billingHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	invoice, items, err := h.billingService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, items))
}

// completeInvoice godoc
// @Summary Complete a draft invoice
// @Description Settles a draft: allocates the payment split, re-checks and
// @Description moves stock, and posts the party ledger effect atomically.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param payment body dto.CompleteInvoiceRequest true "Payment split"
// @Success 200 {object} dto.CompleteInvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Not a draft, or insufficient stock"
// @Failure 422 {object} ErrorResponse "Payment split rejected"
// @Router /invoices/{invoiceID}/complete [post]
func (h *billingHandler) completeInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	actorID, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.CompleteInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.billingService.CompleteInvoice(c.Request.Context(), invoiceID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to complete invoice")
		return
	}

	logger.Info("Invoice completed",
		slog.String("invoice_id", invoiceID),
		slog.String("invoice_number", resp.InvoiceNumber))
	c.JSON(http.StatusOK, resp)
}

// cancelInvoice godoc
// @Summary Cancel a completed invoice
// @Description Reverses a completed invoice: restores stock and posts the
// @Description compensating ledger entry. Money already taken is held as
// @Description party advance.
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 204 "Invoice cancelled"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{invoiceID}/cancel [post]
func (h *billingHandler) cancelInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	actorID, ok := h.session(c)
	if !ok {
		return
	}

	if err := h.billingService.CancelInvoice(c.Request.Context(), invoiceID, actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel invoice")
		return
	}

	logger.Info("Invoice cancelled", slog.String("invoice_id", invoiceID))
	c.Status(http.StatusNoContent)
}
