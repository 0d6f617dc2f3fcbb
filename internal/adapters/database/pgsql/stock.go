package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
)

// applyStockMovement re-checks and moves one product's stock inside an open
// transaction, writing the append-only audit record. The current level is
// read with FOR UPDATE so concurrent completions serialize per product; a
// level computed from an earlier read is never trusted.
func applyStockMovement(ctx context.Context, tx pgx.Tx, m domain.StockMovement, invoiceID *string, actorID string, notes string, at time.Time) (*domain.StockAdjustment, error) {
	var (
		name        string
		stockQty    int64
		stockLength decimal.Decimal
	)
	err := tx.QueryRow(ctx,
		`SELECT name, stock_qty, stock_length FROM products WHERE product_id = $1 FOR UPDATE`,
		m.ProductID,
	).Scan(&name, &stockQty, &stockLength)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock product %s: %w", m.ProductID, err)
	}

	var previous, next decimal.Decimal
	if m.PriceMode == domain.PerLength {
		previous = stockLength
	} else {
		previous = decimal.NewFromInt(stockQty)
	}
	next = previous.Add(m.Delta())

	if next.IsNegative() {
		return nil, &apperrors.InsufficientStockError{
			ProductID:   m.ProductID,
			ProductName: name,
			Available:   previous,
			Required:    m.Delta().Abs(),
		}
	}

	if m.PriceMode == domain.PerLength {
		_, err = tx.Exec(ctx,
			`UPDATE products SET stock_length = $1, last_updated_at = $2 WHERE product_id = $3`,
			next, at, m.ProductID)
	} else {
		_, err = tx.Exec(ctx,
			`UPDATE products SET stock_qty = $1, last_updated_at = $2 WHERE product_id = $3`,
			next.IntPart(), at, m.ProductID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update stock for product %s: %w", m.ProductID, err)
	}

	adjustment := domain.StockAdjustment{
		AdjustmentID: uuid.NewString(),
		ProductID:    m.ProductID,
		ChangeType:   m.ChangeType,
		Previous:     previous,
		New:          next,
		InvoiceID:    invoiceID,
		Notes:        notes,
		ActorID:      actorID,
		CreatedAt:    at,
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO stock_adjustments (adjustment_id, product_id, change_type, previous_value, new_value, invoice_id, notes, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		adjustment.AdjustmentID,
		adjustment.ProductID,
		string(adjustment.ChangeType),
		adjustment.Previous,
		adjustment.New,
		adjustment.InvoiceID,
		adjustment.Notes,
		adjustment.ActorID,
		adjustment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert stock adjustment for product %s: %w", m.ProductID, err)
	}

	return &adjustment, nil
}

// applyStockMovements applies a batch of movements, failing the whole batch
// on the first shortfall.
func applyStockMovements(ctx context.Context, tx pgx.Tx, movements []domain.StockMovement, invoiceID *string, actorID string, notes string, at time.Time) error {
	for _, m := range movements {
		if _, err := applyStockMovement(ctx, tx, m, invoiceID, actorID, notes, at); err != nil {
			return err
		}
	}
	return nil
}
