package domain

import (
	"github.com/shopspring/decimal"
)

// InvoiceType indicates the commercial direction of an invoice.
type InvoiceType string

const (
	Sale     InvoiceType = "sale"
	Purchase InvoiceType = "purchase"
	Return   InvoiceType = "return"
)

// InvoiceStatus is the lifecycle state of an invoice.
//
// draft -> completed -> cancelled. Only completed invoices affect stock and
// ledgers. Return invoices are created directly in completed state, linked to
// their parent sale via ParentInvoiceID.
type InvoiceStatus string

const (
	Draft     InvoiceStatus = "draft"
	Completed InvoiceStatus = "completed"
	Cancelled InvoiceStatus = "cancelled"
)

// Invoice represents a priced, time-stamped transaction.
//
// Pricing is tax-inclusive: TotalAmount is the sum of line gross totals minus
// the bill discount, Subtotal is the derived taxable base, and TaxAmount is
// TotalAmount - Subtotal. A return invoice carries a negative TotalAmount by
// convention so ledger views read it as a credit.
type Invoice struct {
	InvoiceID          string          `json:"invoiceID"`     // Primary Key (UUID)
	InvoiceNumber      string          `json:"invoiceNumber"` // Human-readable, per-type sequence
	Type               InvoiceType     `json:"type"`
	Status             InvoiceStatus   `json:"status"`
	PartyID            *string         `json:"partyID"`            // Nullable; walk-in sales have no party
	PlaceOfSupplyState string          `json:"placeOfSupplyState"` // GST state code of the party, empty if unknown
	Subtotal           decimal.Decimal `json:"subtotal"`           // Sum of taxable values
	TaxAmount          decimal.Decimal `json:"taxAmount"`          // Sum of CGST+SGST+IGST
	DiscountAmount     decimal.Decimal `json:"discountAmount"`     // Bill-level discount
	TotalAmount        decimal.Decimal `json:"totalAmount"`        // Gross payable
	AmountPaid         decimal.Decimal `json:"amountPaid"`         // Cash+UPI+card+advance used
	PendingAmount      decimal.Decimal `json:"pendingAmount"`      // Credit portion raised as party due
	ReturnedAmount     decimal.Decimal `json:"returnedAmount"`     // Cumulative value returned so far
	ParentInvoiceID    *string         `json:"parentInvoiceID"`    // Links a return to the sale it reverses
	Notes              string          `json:"notes"`
	AuditFields
}

// CanComplete reports whether the invoice may take the draft -> completed
// transition.
func (i Invoice) CanComplete() bool {
	return i.Status == Draft
}

// CanCancel reports whether the invoice may take the completed -> cancelled
// transition. Drafts are discarded, not cancelled, and a cancelled invoice
// must not be cancelled again (no double stock restore).
func (i Invoice) CanCancel() bool {
	return i.Status == Completed && i.Type != Return
}
