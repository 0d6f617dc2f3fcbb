package repositories

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
)

// PartyReader defines read operations for customers and suppliers.
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its unique identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of parties of one type using
	// token-based pagination.
	ListParties(ctx context.Context, partyType domain.PartyType, limit int, nextToken *string) ([]domain.Party, *string, error)
}

// PartyWriter defines write operations for party master data. Balances are
// excluded: they move only inside invoice/payment transactions.
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates master fields of an existing party.
	UpdateParty(ctx context.Context, party domain.Party) error
}

// PartyLedgerWriter applies balance-affecting operations atomically: the
// ledger entry insert and the party balance update happen in one transaction.
type PartyLedgerWriter interface {
	// ApplyLedgerEntry inserts an append-only ledger entry and applies the
	// corresponding balance change to the party row.
	ApplyLedgerEntry(ctx context.Context, entry domain.LedgerEntry, change domain.PartyBalanceChange) error
}

// PartyRepositoryFacade combines all party-related repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
	PartyLedgerWriter
}
