package repositories

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
)

// LedgerReader defines read access to party ledgers. Entries come back in
// chronological order so callers can replay the fold.
type LedgerReader interface {
	// ListEntriesByParty retrieves a party's ledger with token-based
	// pagination, oldest first.
	ListEntriesByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)

	// FindAllEntriesByParty retrieves the full, unpaginated history for one
	// party, used to re-derive running balances.
	FindAllEntriesByParty(ctx context.Context, partyID string) ([]domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines ledger repository interfaces. Writes are
// deliberately absent: entries are appended only inside invoice and payment
// transactions owned by the invoice and party repositories.
type LedgerRepositoryFacade interface {
	LedgerReader
}
