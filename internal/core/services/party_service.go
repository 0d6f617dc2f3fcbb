package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// partyService implements customer and supplier master data operations.
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates the party service.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, partyType domain.PartyType, limit int, nextToken *string) ([]domain.Party, *string, error) {
	parties, token, err := s.partyRepo.ListParties(ctx, partyType, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, token, nil
}

func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	now := time.Now()
	party := domain.Party{
		PartyID:            uuid.NewString(),
		Type:               req.Type,
		Name:               req.Name,
		Phone:              req.Phone,
		GSTIN:              req.GSTIN,
		StateCode:          req.StateCode,
		OutstandingBalance: decimal.Zero,
		AdvanceBalance:     decimal.Zero,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	s.LogInfo(ctx, "Party created", "party_name", party.Name, "party_type", string(party.Type))
	return &party, nil
}

func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party for update: %w", err)
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.GSTIN != nil {
		party.GSTIN = *req.GSTIN
	}
	if req.StateCode != nil {
		party.StateCode = *req.StateCode
	}
	if req.IsActive != nil {
		party.IsActive = *req.IsActive
	}
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		return nil, fmt.Errorf("failed to update party: %w", err)
	}
	return party, nil
}
