package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/middleware"
)

// partyHandler handles customer and supplier master data.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func newPartyHandler(partyService portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: partyService}
}

// registerPartyRoutes registers party master data routes.
func registerPartyRoutes(group *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := group.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partyID", h.getParty)
		parties.PUT("/:partyID", h.updateParty)
	}
}

// createParty godoc
// @Summary Create a customer or supplier
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create party")
		return
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties of one type
// @Tags parties
// @Produce json
// @Param type query string true "Party type" Enums(customer, supplier)
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 400 {object} ErrorResponse
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partyType := domain.PartyType(c.Query("type"))
	if partyType != domain.Customer && partyType != domain.Supplier {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be customer or supplier"})
		return
	}
	limit, nextToken := listParams(c)

	parties, next, err := h.partyService.ListParties(c.Request.Context(), partyType, limit, nextToken)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list parties")
		return
	}

	resp := dto.ListPartiesResponse{NextToken: next}
	for i := range parties {
		resp.Parties = append(resp.Parties, dto.ToPartyResponse(&parties[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getParty godoc
// @Summary Get a party by ID
// @Tags parties
// @Produce json
// @Param partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("partyID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updateParty godoc
// @Summary Update master fields of a party
// @Description Balances are excluded; they move only through billing,
// @Description returns and payments.
// @Tags parties
// @Accept json
// @Produce json
// @Param partyID path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to change"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), c.Param("partyID"), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}
