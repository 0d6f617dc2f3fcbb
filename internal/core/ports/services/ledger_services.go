package services

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade serves party ledger queries with running balances.
type LedgerSvcFacade interface {
	// GetEntries retrieves a page of a party's ledger, oldest first, with
	// running balance snapshots attached.
	GetEntries(ctx context.Context, partyID string, params dto.ListLedgerParams) (*dto.LedgerResponse, error)

	// RecomputeBalances replays the full entry history and returns the
	// derived due/advance pair. The stored party balances are a cache of
	// this fold; this is the authoritative recomputation.
	RecomputeBalances(ctx context.Context, partyID string) (due, advance decimal.Decimal, err error)
}
