package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary aggregates completed sale invoices over a date range.
type SalesSummary struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	InvoiceCount   int64           `json:"invoiceCount"`
	GrossSales     decimal.Decimal `json:"grossSales"`     // Sum of total_amount
	TaxCollected   decimal.Decimal `json:"taxCollected"`   // Sum of tax_amount
	DiscountGiven  decimal.Decimal `json:"discountGiven"`  // Sum of discount_amount
	AmountPaid     decimal.Decimal `json:"amountPaid"`     // Money actually received
	CreditExtended decimal.Decimal `json:"creditExtended"` // Sum of pending_amount
	ReturnedValue  decimal.Decimal `json:"returnedValue"`  // Sum of return invoice magnitudes
}
