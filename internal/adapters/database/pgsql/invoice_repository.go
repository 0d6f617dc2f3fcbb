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
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/models"
	"github.com/vastram/retail_pos_backend/internal/utils/mapping"
	"github.com/vastram/retail_pos_backend/internal/utils/pagination"
)

const invoiceColumns = `invoice_id, invoice_number, invoice_type, status, party_id, place_of_supply_state, subtotal, tax_amount, discount_amount, total_amount, amount_paid, pending_amount, returned_amount, parent_invoice_id, notes, created_at, created_by, last_updated_at, last_updated_by`

const lineItemColumns = `line_item_id, invoice_id, product_id, product_code, product_name, hsn_code, price_mode, quantity, length, unit_price, cost_price, gst_rate, line_total, taxable_value, cgst_amount, sgst_amount, igst_amount, returned_quantity, returned_length`

// invoiceNumberPrefixes maps invoice types to their human-readable series.
var invoiceNumberPrefixes = map[domain.InvoiceType]string{
	domain.Sale:     "INV",
	domain.Purchase: "PUR",
	domain.Return:   "RET",
}

type PgxInvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgxInvoiceRepository creates a new repository for invoices, line items
// and the transactional lifecycle transitions.
func NewPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{pool: pool}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.InvoiceType,
		&m.Status,
		&m.PartyID,
		&m.PlaceOfSupplyState,
		&m.Subtotal,
		&m.TaxAmount,
		&m.DiscountAmount,
		&m.TotalAmount,
		&m.AmountPaid,
		&m.PendingAmount,
		&m.ReturnedAmount,
		&m.ParentInvoiceID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanLineItem(row pgx.Row) (*models.LineItem, error) {
	var m models.LineItem
	err := row.Scan(
		&m.LineItemID,
		&m.InvoiceID,
		&m.ProductID,
		&m.ProductCode,
		&m.ProductName,
		&m.HSNCode,
		&m.PriceMode,
		&m.Quantity,
		&m.Length,
		&m.UnitPrice,
		&m.CostPrice,
		&m.GSTRate,
		&m.LineTotal,
		&m.TaxableValue,
		&m.CGSTAmount,
		&m.SGSTAmount,
		&m.IGSTAmount,
		&m.ReturnedQuantity,
		&m.ReturnedLength,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE invoice_id = $1`, invoiceColumns)
	m, err := scanInvoice(r.pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(*m)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindLineItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM line_items WHERE invoice_id = $1 ORDER BY line_item_id`, lineItemColumns)
	rows, err := r.pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find line items for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		m, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item row: %w", err)
		}
		items = append(items, mapping.ToDomainLineItem(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item rows: %w", err)
	}
	return items, nil
}

func (r *PgxInvoiceRepository) FindReturnsByParentID(ctx context.Context, parentInvoiceID string) ([]domain.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE parent_invoice_id = $1 ORDER BY created_at ASC`, invoiceColumns)
	rows, err := r.pool.Query(ctx, query, parentInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find returns for invoice %s: %w", parentInvoiceID, err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE 1=1`, invoiceColumns)
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Type != nil {
		query += fmt.Sprintf(` AND invoice_type = %s`, arg(string(*params.Type)))
	}
	if params.Status != nil {
		query += fmt.Sprintf(` AND status = %s`, arg(string(*params.Status)))
	}
	if params.PartyID != nil {
		query += fmt.Sprintf(` AND party_id = %s`, arg(*params.PartyID))
	}
	if params.NextToken != nil && *params.NextToken != "" {
		before, err := pagination.DecodeDateBasedToken(*params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(` AND created_at < %s`, arg(before))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %s`, arg(limit+1))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var ms []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		t := pagination.EncodeDateBasedToken(ms[len(ms)-1].CreatedAt)
		token = &t
	}

	invoices := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		invoices[i] = mapping.ToDomainInvoice(m)
	}
	return invoices, token, nil
}

func (r *PgxInvoiceRepository) NextInvoiceNumber(ctx context.Context, invoiceType domain.InvoiceType) (string, error) {
	prefix, ok := invoiceNumberPrefixes[invoiceType]
	if !ok {
		return "", fmt.Errorf("%w: unknown invoice type %s", apperrors.ErrValidation, string(invoiceType))
	}

	var next int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO invoice_counters (invoice_type, next_value)
		VALUES ($1, 1)
		ON CONFLICT (invoice_type) DO UPDATE SET next_value = invoice_counters.next_value + 1
		RETURNING next_value`,
		string(invoiceType),
	).Scan(&next)
	if err != nil {
		return "", fmt.Errorf("failed to reserve invoice number for type %s: %w", string(invoiceType), err)
	}

	return fmt.Sprintf("%s-%06d", prefix, next), nil
}

func insertInvoice(ctx context.Context, tx pgx.Tx, m models.Invoice) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO invoices (invoice_id, invoice_number, invoice_type, status, party_id, place_of_supply_state, subtotal, tax_amount, discount_amount, total_amount, amount_paid, pending_amount, returned_amount, parent_invoice_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		m.InvoiceID, m.InvoiceNumber, m.InvoiceType, m.Status, m.PartyID, m.PlaceOfSupplyState,
		m.Subtotal, m.TaxAmount, m.DiscountAmount, m.TotalAmount, m.AmountPaid, m.PendingAmount,
		m.ReturnedAmount, m.ParentInvoiceID, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice %s: %w", m.InvoiceID, err)
	}
	return nil
}

func insertLineItems(ctx context.Context, tx pgx.Tx, items []domain.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO line_items (line_item_id, invoice_id, product_id, product_code, product_name, hsn_code, price_mode, quantity, length, unit_price, cost_price, gst_rate, line_total, taxable_value, cgst_amount, sgst_amount, igst_amount, returned_quantity, returned_length)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	for _, item := range items {
		m := mapping.ToModelLineItem(item)
		batch.Queue(query,
			m.LineItemID, m.InvoiceID, m.ProductID, m.ProductCode, m.ProductName, m.HSNCode,
			m.PriceMode, m.Quantity, m.Length, m.UnitPrice, m.CostPrice, m.GSTRate,
			m.LineTotal, m.TaxableValue, m.CGSTAmount, m.SGSTAmount, m.IGSTAmount,
			m.ReturnedQuantity, m.ReturnedLength,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert line items: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) SaveDraft(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := insertInvoice(ctx, tx, mapping.ToModelInvoice(invoice)); err != nil {
		return err
	}
	if err := insertLineItems(ctx, tx, items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit draft invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

// markInvoiceStatus flips an invoice's lifecycle state, guarding the
// transition with the expected current state so concurrent transitions
// cannot both win.
func markInvoiceStatus(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, expected domain.InvoiceStatus) error {
	m := mapping.ToModelInvoice(invoice)
	tag, err := tx.Exec(ctx, `
		UPDATE invoices
		SET status = $1, amount_paid = $2, pending_amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $6 AND status = $7`,
		m.Status, m.AmountPaid, m.PendingAmount, m.LastUpdatedAt, m.LastUpdatedBy,
		m.InvoiceID, string(expected),
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s status: %w", invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s is no longer %s", apperrors.ErrStateConflict, invoice.InvoiceNumber, string(expected))
	}
	return nil
}

func (r *PgxInvoiceRepository) CompleteInvoice(ctx context.Context, completion domain.InvoiceCompletion) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	inv := completion.Invoice
	if err := markInvoiceStatus(ctx, tx, inv, domain.Draft); err != nil {
		return err
	}
	if err := applyStockMovements(ctx, tx, completion.Movements, &inv.InvoiceID, inv.LastUpdatedBy, inv.InvoiceNumber, inv.LastUpdatedAt); err != nil {
		return err
	}
	if err := insertLedgerEntries(ctx, tx, completion.Entries); err != nil {
		return err
	}
	if err := applyPartyBalanceChange(ctx, tx, completion.PartyChange); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit completion of invoice %s: %w", inv.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) CancelInvoice(ctx context.Context, cancellation domain.InvoiceCancellation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	inv := cancellation.Invoice
	if err := markInvoiceStatus(ctx, tx, inv, domain.Completed); err != nil {
		return err
	}
	if err := applyStockMovements(ctx, tx, cancellation.Movements, &inv.InvoiceID, inv.LastUpdatedBy, fmt.Sprintf("cancellation of %s", inv.InvoiceNumber), inv.LastUpdatedAt); err != nil {
		return err
	}
	if err := insertLedgerEntries(ctx, tx, cancellation.Entries); err != nil {
		return err
	}
	if err := applyPartyBalanceChange(ctx, tx, cancellation.PartyChange); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cancellation of invoice %s: %w", inv.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) SaveReturn(ctx context.Context, ret domain.ReturnCompletion) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	inv := ret.ReturnInvoice
	if err := insertInvoice(ctx, tx, mapping.ToModelInvoice(inv)); err != nil {
		return err
	}
	if err := insertLineItems(ctx, tx, ret.Items); err != nil {
		return err
	}

	// Consume the parent lines' returnable remainders, re-checked here so
	// two concurrent returns cannot both take the same remainder.
	for _, delta := range ret.LineDeltas {
		tag, err := tx.Exec(ctx, `
			UPDATE line_items
			SET returned_quantity = returned_quantity + $1,
			    returned_length = returned_length + $2
			WHERE line_item_id = $3
			  AND returned_quantity + $1 <= quantity
			  AND returned_length + $2 <= length`,
			delta.QuantityDelta, delta.LengthDelta, delta.LineItemID,
		)
		if err != nil {
			return fmt.Errorf("failed to update returned amounts on line %s: %w", delta.LineItemID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: returnable remainder exhausted on line %s", apperrors.ErrStateConflict, delta.LineItemID)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE invoices
		SET returned_amount = returned_amount + $1, last_updated_at = $2, last_updated_by = $3
		WHERE invoice_id = $4`,
		ret.ReturnAmount, inv.LastUpdatedAt, inv.LastUpdatedBy, ret.ParentInvoiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update parent invoice %s returned amount: %w", ret.ParentInvoiceID, err)
	}

	if err := applyStockMovements(ctx, tx, ret.Movements, &inv.InvoiceID, inv.CreatedBy, inv.InvoiceNumber, inv.CreatedAt); err != nil {
		return err
	}
	if err := insertLedgerEntries(ctx, tx, ret.Entries); err != nil {
		return err
	}
	if err := applyPartyBalanceChange(ctx, tx, ret.PartyChange); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit return invoice %s: %w", inv.InvoiceID, err)
	}
	return nil
}
