package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAdjustment is the DB row for one append-only stock audit record.
type StockAdjustment struct {
	AdjustmentID string          `db:"adjustment_id"`
	ProductID    string          `db:"product_id"`
	ChangeType   string          `db:"change_type"`
	Previous     decimal.Decimal `db:"previous_value"`
	New          decimal.Decimal `db:"new_value"`
	InvoiceID    *string         `db:"invoice_id"`
	Notes        string          `db:"notes"`
	ActorID      string          `db:"actor_id"`
	CreatedAt    time.Time       `db:"created_at"`
}
