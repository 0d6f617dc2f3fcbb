package models

import (
	"github.com/shopspring/decimal"
)

// Invoice is the DB row for a billed transaction.
type Invoice struct {
	InvoiceID          string          `db:"invoice_id"`
	InvoiceNumber      string          `db:"invoice_number"`
	InvoiceType        string          `db:"invoice_type"`
	Status             string          `db:"status"`
	PartyID            *string         `db:"party_id"`
	PlaceOfSupplyState string          `db:"place_of_supply_state"`
	Subtotal           decimal.Decimal `db:"subtotal"`
	TaxAmount          decimal.Decimal `db:"tax_amount"`
	DiscountAmount     decimal.Decimal `db:"discount_amount"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	AmountPaid         decimal.Decimal `db:"amount_paid"`
	PendingAmount      decimal.Decimal `db:"pending_amount"`
	ReturnedAmount     decimal.Decimal `db:"returned_amount"`
	ParentInvoiceID    *string         `db:"parent_invoice_id"`
	Notes              string          `db:"notes"`
	AuditFields
}

// LineItem is the DB row for one product on an invoice.
type LineItem struct {
	LineItemID       string           `db:"line_item_id"`
	InvoiceID        string           `db:"invoice_id"`
	ProductID        string           `db:"product_id"`
	ProductCode      string           `db:"product_code"`
	ProductName      string           `db:"product_name"`
	HSNCode          string           `db:"hsn_code"`
	PriceMode        string           `db:"price_mode"`
	Quantity         int64            `db:"quantity"`
	Length           decimal.Decimal  `db:"length"`
	UnitPrice        decimal.Decimal  `db:"unit_price"`
	CostPrice        *decimal.Decimal `db:"cost_price"`
	GSTRate          decimal.Decimal  `db:"gst_rate"`
	LineTotal        decimal.Decimal  `db:"line_total"`
	TaxableValue     decimal.Decimal  `db:"taxable_value"`
	CGSTAmount       decimal.Decimal  `db:"cgst_amount"`
	SGSTAmount       decimal.Decimal  `db:"sgst_amount"`
	IGSTAmount       decimal.Decimal  `db:"igst_amount"`
	ReturnedQuantity int64            `db:"returned_quantity"`
	ReturnedLength   decimal.Decimal  `db:"returned_length"`
}
