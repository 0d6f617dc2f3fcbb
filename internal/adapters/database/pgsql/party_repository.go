package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	"github.com/vastram/retail_pos_backend/internal/models"
	"github.com/vastram/retail_pos_backend/internal/utils/mapping"
	"github.com/vastram/retail_pos_backend/internal/utils/pagination"
)

const partyColumns = `party_id, party_type, name, phone, gstin, state_code, outstanding_balance, advance_balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxPartyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPartyRepository creates a new repository for customer/supplier data.
func NewPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{pool: pool}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func scanParty(row pgx.Row) (*models.Party, error) {
	var p models.Party
	err := row.Scan(
		&p.PartyID,
		&p.PartyType,
		&p.Name,
		&p.Phone,
		&p.GSTIN,
		&p.StateCode,
		&p.OutstandingBalance,
		&p.AdvanceBalance,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := fmt.Sprintf(`SELECT %s FROM parties WHERE party_id = $1`, partyColumns)
	p, err := scanParty(r.pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}
	party := mapping.ToDomainParty(*p)
	return &party, nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType, limit int, nextToken *string) ([]domain.Party, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	args := []interface{}{string(partyType), limit + 1}
	query := fmt.Sprintf(`SELECT %s FROM parties WHERE party_type = $1`, partyColumns)
	if nextToken != nil && *nextToken != "" {
		after, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND created_at > $3`
		args = append(args, after)
	}
	query += ` ORDER BY created_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list parties: %w", err)
	}
	defer rows.Close()

	var ms []models.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		ms = append(ms, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating party rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		t := pagination.EncodeDateBasedToken(ms[len(ms)-1].CreatedAt)
		token = &t
	}

	parties := make([]domain.Party, len(ms))
	for i, m := range ms {
		parties[i] = mapping.ToDomainParty(m)
	}
	return parties, token, nil
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO parties (party_id, party_type, name, phone, gstin, state_code, outstanding_balance, advance_balance, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.PartyID, m.PartyType, m.Name, m.Phone, m.GSTIN, m.StateCode,
		m.OutstandingBalance, m.AdvanceBalance, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert party %s: %w", party.PartyID, err)
	}
	return nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	tag, err := r.pool.Exec(ctx, `
		UPDATE parties
		SET name = $1, phone = $2, gstin = $3, state_code = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE party_id = $8`,
		m.Name, m.Phone, m.GSTIN, m.StateCode, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.PartyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", party.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// insertLedgerEntries appends entries inside an open transaction.
func insertLedgerEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO ledger_entries (entry_id, party_id, entry_type, debit, credit, running_balance, advance_balance, invoice_id, notes, entry_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, e := range entries {
		m := mapping.ToModelLedgerEntry(e)
		batch.Queue(query,
			m.EntryID, m.PartyID, m.EntryType, m.Debit, m.Credit,
			m.RunningBalance, m.AdvanceBalance, m.InvoiceID, m.Notes, m.EntryDate, m.CreatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert ledger entries: %w", err)
	}
	return nil
}

// applyPartyBalanceChange moves the cached balances inside an open
// transaction, clamping both at zero.
func applyPartyBalanceChange(ctx context.Context, tx pgx.Tx, change *domain.PartyBalanceChange) error {
	if change == nil {
		return nil
	}
	tag, err := tx.Exec(ctx, `
		UPDATE parties
		SET outstanding_balance = GREATEST(outstanding_balance + $1, 0),
		    advance_balance = GREATEST(advance_balance + $2, 0),
		    last_updated_at = now()
		WHERE party_id = $3`,
		change.DueDelta, change.AdvanceDelta, change.PartyID,
	)
	if err != nil {
		return fmt.Errorf("failed to apply balance change for party %s: %w", change.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPartyRepository) ApplyLedgerEntry(ctx context.Context, entry domain.LedgerEntry, change domain.PartyBalanceChange) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := insertLedgerEntries(ctx, tx, []domain.LedgerEntry{entry}); err != nil {
		return err
	}
	if err := applyPartyBalanceChange(ctx, tx, &change); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ledger entry for party %s: %w", entry.PartyID, err)
	}
	return nil
}
