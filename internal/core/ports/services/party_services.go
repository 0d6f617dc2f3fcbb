package services

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// PartyReaderSvc defines read operations for customers and suppliers.
type PartyReaderSvc interface {
	// GetPartyByID retrieves a specific party by its ID.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of parties of one type.
	ListParties(ctx context.Context, partyType domain.PartyType, limit int, nextToken *string) ([]domain.Party, *string, error)
}

// PartyWriterSvc defines write operations for party master data.
type PartyWriterSvc interface {
	// CreateParty persists a new customer or supplier.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// UpdateParty updates master fields of an existing party.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)
}

// PartySvcFacade combines all party-related service interfaces.
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
