package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	"github.com/vastram/retail_pos_backend/internal/models"
	"github.com/vastram/retail_pos_backend/internal/utils/mapping"
	"github.com/vastram/retail_pos_backend/internal/utils/pagination"
)

const ledgerColumns = `entry_id, party_id, entry_type, debit, credit, running_balance, advance_balance, invoice_id, notes, entry_date, created_by`

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLedgerRepository creates a read-side repository for party ledgers.
// Writes happen inside the invoice and party repository transactions.
func NewPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]models.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var ms []models.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.EntryID, &m.PartyID, &m.EntryType, &m.Debit, &m.Credit,
			&m.RunningBalance, &m.AdvanceBalance, &m.InvoiceID, &m.Notes, &m.EntryDate, &m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return ms, nil
}

func (r *PgxLedgerRepository) ListEntriesByParty(ctx context.Context, partyID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	args := []interface{}{partyID, limit + 1}
	query := fmt.Sprintf(`SELECT %s FROM ledger_entries WHERE party_id = $1`, ledgerColumns)
	if nextToken != nil && *nextToken != "" {
		after, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND entry_date > $3`
		args = append(args, after)
	}
	query += ` ORDER BY entry_date ASC, entry_id ASC LIMIT $2`

	ms, err := r.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		t := pagination.EncodeDateBasedToken(ms[len(ms)-1].EntryDate)
		token = &t
	}
	return mapping.ToDomainLedgerEntrySlice(ms), token, nil
}

func (r *PgxLedgerRepository) FindAllEntriesByParty(ctx context.Context, partyID string) ([]domain.LedgerEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM ledger_entries WHERE party_id = $1 ORDER BY entry_date ASC, entry_id ASC`, ledgerColumns)
	ms, err := r.queryEntries(ctx, query, partyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}
