package domain

import (
	"github.com/shopspring/decimal"
)

// StockMovement is one signed stock delta to apply inside an invoice
// transaction. Deduction carries a negative delta, restore a positive one.
// The repository re-checks availability at apply time; a movement computed
// from an earlier read is never trusted on its own.
type StockMovement struct {
	ProductID     string
	ProductName   string
	PriceMode     PriceMode
	QuantityDelta int64           // Signed units (per_unit mode)
	LengthDelta   decimal.Decimal // Signed metres (per_length mode)
	ChangeType    StockChangeType
}

// Delta returns the signed movement relevant to the price mode.
func (m StockMovement) Delta() decimal.Decimal {
	if m.PriceMode == PerLength {
		return m.LengthDelta
	}
	return decimal.NewFromInt(m.QuantityDelta)
}

// PartyBalanceChange is the signed due/advance adjustment applied to a party
// inside the same transaction as the invoice and stock writes.
type PartyBalanceChange struct {
	PartyID      string
	DueDelta     decimal.Decimal
	AdvanceDelta decimal.Decimal
}

// InvoiceCompletion bundles everything the draft -> completed transition must
// apply as one atomic unit: the repriced invoice row, per-line stock
// movements with their audit records, and the party ledger effect. If any
// piece fails the whole transition rolls back and the invoice stays draft.
type InvoiceCompletion struct {
	Invoice     Invoice // Status Completed, money fields settled
	Movements   []StockMovement
	PartyChange *PartyBalanceChange // Nil for walk-in cash sales
	Entries     []LedgerEntry       // Empty when no party is involved
}

// InvoiceCancellation is the compensating transaction for completed ->
// cancelled: stock restores and the reversing ledger effect.
type InvoiceCancellation struct {
	Invoice     Invoice // Status Cancelled
	Movements   []StockMovement
	PartyChange *PartyBalanceChange
	Entries     []LedgerEntry
}

// LineReturnDelta increments the cumulative returned amount on one parent
// sale line.
type LineReturnDelta struct {
	LineItemID    string
	QuantityDelta int64
	LengthDelta   decimal.Decimal
}

// ReturnCompletion bundles the atomic creation of a return invoice: the new
// completed return record with its items, the parent-line returned-amount
// increments, stock restores, and the party credit.
type ReturnCompletion struct {
	ReturnInvoice   Invoice
	Items           []LineItem
	ParentInvoiceID string
	ReturnAmount    decimal.Decimal // Positive magnitude of the return
	LineDeltas      []LineReturnDelta
	Movements       []StockMovement
	PartyChange     *PartyBalanceChange
	Entries         []LedgerEntry
}

// ReturnResult is what the returns flow reports back to the caller.
type ReturnResult struct {
	ReturnInvoiceID     string          `json:"returnInvoiceID"`
	ReturnInvoiceNumber string          `json:"returnInvoiceNumber"`
	ReturnAmount        decimal.Decimal `json:"returnAmount"`
	AppliedToDue        decimal.Decimal `json:"appliedToDue"`
	ToAdvance           decimal.Decimal `json:"toAdvance"`
}
