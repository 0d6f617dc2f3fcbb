package services

import (
	"context"
	"fmt"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService serves party ledger queries and balance recomputation.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	partyRepo  portsrepo.PartyRepositoryFacade
}

// NewLedgerService creates the ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo, partyRepo: partyRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetEntries(ctx context.Context, partyID string, params dto.ListLedgerParams) (*dto.LedgerResponse, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party for ledger: %w", err)
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByParty(ctx, partyID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	resp := &dto.LedgerResponse{
		PartyID:            party.PartyID,
		OutstandingBalance: party.OutstandingBalance,
		AdvanceBalance:     party.AdvanceBalance,
		NextToken:          nextToken,
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, dto.ToLedgerEntryResponse(&entries[i]))
	}
	return resp, nil
}

func (s *ledgerService) RecomputeBalances(ctx context.Context, partyID string) (due, advance decimal.Decimal, err error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load party for recompute: %w", err)
	}

	entries, err := s.ledgerRepo.FindAllEntriesByParty(ctx, partyID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to load ledger history: %w", err)
	}

	due, advance = domain.ReplayLedger(entries)

	if !due.Equal(party.OutstandingBalance) || !advance.Equal(party.AdvanceBalance) {
		s.LogWarn(ctx, "Ledger replay disagrees with cached balances",
			"party_id", partyID,
			"replayed_due", due.String(), "cached_due", party.OutstandingBalance.String(),
			"replayed_advance", advance.String(), "cached_advance", party.AdvanceBalance.String())
	}

	return due, advance, nil
}
