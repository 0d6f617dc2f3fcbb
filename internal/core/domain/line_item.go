package domain

import (
	"github.com/shopspring/decimal"
)

// LineItem represents one product on an invoice with its tax breakup.
//
// LineTotal is always the tax-inclusive gross amount for the line;
// TaxableValue + CGST + SGST + IGST reconstructs it within the 0.01 rounding
// tolerance. Prices are snapshots taken at billing time, not live catalog
// reads.
type LineItem struct {
	LineItemID  string           `json:"lineItemID"` // Primary Key (UUID)
	InvoiceID   string           `json:"invoiceID"`  // FK -> invoices.invoice_id
	ProductID   string           `json:"productID"`  // FK -> products.product_id
	ProductCode string           `json:"productCode"`
	ProductName string           `json:"productName"`
	HSNCode     string           `json:"hsnCode"`
	PriceMode   PriceMode        `json:"priceMode"`
	Quantity    int64            `json:"quantity"`  // Units sold (per_unit mode)
	Length      decimal.Decimal  `json:"length"`    // Metres sold (per_length mode)
	UnitPrice   decimal.Decimal  `json:"unitPrice"` // Gross, tax-inclusive
	CostPrice   *decimal.Decimal `json:"costPrice"` // Snapshot at sale time, nullable
	GSTRate     decimal.Decimal  `json:"gstRate"`

	LineTotal    decimal.Decimal `json:"lineTotal"` // UnitPrice x quantity-or-length, gross
	TaxableValue decimal.Decimal `json:"taxableValue"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`

	// Cumulative amounts consumed by prior returns against this line.
	ReturnedQuantity int64           `json:"returnedQuantity"`
	ReturnedLength   decimal.Decimal `json:"returnedLength"`
}

// BilledAmount returns the quantity or length sold as a decimal according to
// the line's price mode.
func (li LineItem) BilledAmount() decimal.Decimal {
	if li.PriceMode == PerLength {
		return li.Length
	}
	return decimal.NewFromInt(li.Quantity)
}

// ReturnedAmount returns the cumulative returned quantity or length as a
// decimal according to the line's price mode.
func (li LineItem) ReturnedAmount() decimal.Decimal {
	if li.PriceMode == PerLength {
		return li.ReturnedLength
	}
	return decimal.NewFromInt(li.ReturnedQuantity)
}

// ReturnableRemainder is the portion of the line not yet consumed by prior
// returns: original minus cumulative returned, never negative.
func (li LineItem) ReturnableRemainder() decimal.Decimal {
	remainder := li.BilledAmount().Sub(li.ReturnedAmount())
	if remainder.IsNegative() {
		return decimal.Zero
	}
	return remainder
}

// ReturnableItem is the per-line view served to the returns flow.
type ReturnableItem struct {
	LineItemID          string          `json:"lineItemID"`
	ProductID           string          `json:"productID"`
	ProductName         string          `json:"productName"`
	PriceMode           PriceMode       `json:"priceMode"`
	UnitPrice           decimal.Decimal `json:"unitPrice"` // Original sale pricing
	GSTRate             decimal.Decimal `json:"gstRate"`
	OriginalAmount      decimal.Decimal `json:"originalAmount"`      // Quantity or length sold
	ReturnedAmount      decimal.Decimal `json:"returnedAmount"`      // Sum across all prior returns
	ReturnableRemainder decimal.Decimal `json:"returnableRemainder"` // Original - returned, >= 0
}
