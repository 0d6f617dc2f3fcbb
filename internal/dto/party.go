package dto

import (
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to create a customer or supplier.
type CreatePartyRequest struct {
	Type      domain.PartyType `json:"type" binding:"required,oneof=customer supplier"`
	Name      string           `json:"name" binding:"required"`
	Phone     string           `json:"phone"`
	GSTIN     string           `json:"gstin" binding:"omitempty,len=15"`
	StateCode string           `json:"stateCode"`
}

// UpdatePartyRequest defines the master fields allowed to change. Balances
// are excluded; they move only through billing and payment operations.
type UpdatePartyRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	GSTIN     *string `json:"gstin"`
	StateCode *string `json:"stateCode"`
	IsActive  *bool   `json:"isActive"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID            string           `json:"partyID"`
	Type               domain.PartyType `json:"type"`
	Name               string           `json:"name"`
	Phone              string           `json:"phone"`
	GSTIN              string           `json:"gstin"`
	StateCode          string           `json:"stateCode"`
	OutstandingBalance decimal.Decimal  `json:"outstandingBalance"`
	AdvanceBalance     decimal.Decimal  `json:"advanceBalance"`
	IsActive           bool             `json:"isActive"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:            p.PartyID,
		Type:               p.Type,
		Name:               p.Name,
		Phone:              p.Phone,
		GSTIN:              p.GSTIN,
		StateCode:          p.StateCode,
		OutstandingBalance: p.OutstandingBalance,
		AdvanceBalance:     p.AdvanceBalance,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
	}
}

// ListPartiesResponse wraps a paginated party listing.
type ListPartiesResponse struct {
	Parties   []PartyResponse `json:"parties"`
	NextToken *string         `json:"nextToken,omitempty"`
}
