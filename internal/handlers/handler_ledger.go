package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/middleware"
)

// ledgerHandler serves party ledger history and reconciliation.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

// registerLedgerRoutes registers ledger routes under the parties group.
func registerLedgerRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	parties := group.Group("/parties")
	{
		parties.GET("/:partyID/ledger", h.getLedger)
		parties.POST("/:partyID/ledger/recompute", h.recomputeBalances)
	}
}

// getLedger godoc
// @Summary Get a party's ledger
// @Description Returns ledger entries oldest first with running balance
// @Description snapshots, plus the party's current balances.
// @Tags ledger
// @Produce json
// @Param partyID path string true "Party ID"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.ledgerService.GetEntries(c.Request.Context(), c.Param("partyID"), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get ledger")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// recomputeBalances godoc
// @Summary Recompute a party's balances from the ledger
// @Description Replays the party's full entry history and returns the derived
// @Description due/advance pair. The stored balances are a cache of this fold.
// @Tags ledger
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/ledger/recompute [post]
func (h *ledgerHandler) recomputeBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	due, advance, err := h.ledgerService.RecomputeBalances(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to recompute balances")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"outstandingBalance": due,
		"advanceBalance":     advance,
	})
}
