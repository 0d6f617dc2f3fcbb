package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockChangeType records why a stock level moved.
type StockChangeType string

const (
	ManualUpdate        StockChangeType = "manual_update"
	OpeningStock        StockChangeType = "opening_stock"
	SaleDeduction       StockChangeType = "sale_deduction"
	PurchaseAddition    StockChangeType = "purchase_addition"
	ReturnRestock       StockChangeType = "return_restock"
	CancellationRestore StockChangeType = "cancellation_restore"
)

// StockAdjustment is one immutable audit record of a stock movement.
// The trail is append-only: adjustments are never edited or deleted.
// Previous/New hold units for per_unit SKUs and metres for per_length SKUs;
// only the field matching the product's price mode is meaningful.
type StockAdjustment struct {
	AdjustmentID string          `json:"adjustmentID"` // Primary Key (UUID)
	ProductID    string          `json:"productID"`    // FK -> products.product_id
	ChangeType   StockChangeType `json:"changeType"`
	Previous     decimal.Decimal `json:"previous"`  // On-hand before the movement
	New          decimal.Decimal `json:"new"`       // On-hand after the movement
	InvoiceID    *string         `json:"invoiceID"` // Nullable link for invoice-driven movements
	Notes        string          `json:"notes"`
	ActorID      string          `json:"actorID"` // UserID that caused the movement
	CreatedAt    time.Time       `json:"createdAt"`
}
