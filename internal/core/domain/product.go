package domain

import (
	"github.com/shopspring/decimal"
)

// PriceMode determines whether a product is billed by integer units or by
// decimal length in metres. Exactly one of the stock/quantity fields is
// meaningful per mode.
type PriceMode string

const (
	PerUnit   PriceMode = "per_unit"
	PerLength PriceMode = "per_length"
)

// Product represents a stocked SKU in the catalog.
type Product struct {
	ProductID   string           `json:"productID"`   // Primary Key (UUID)
	Code        string           `json:"code"`        // Barcode / SKU code, unique
	Name        string           `json:"name"`        // Display name
	HSNCode     string           `json:"hsnCode"`     // GST HSN classification, optional
	PriceMode   PriceMode        `json:"priceMode"`   // per_unit or per_length
	UnitPrice   decimal.Decimal  `json:"unitPrice"`   // Gross, tax-inclusive selling price
	CostPrice   *decimal.Decimal `json:"costPrice"`   // Purchase cost, nullable
	GSTRate     decimal.Decimal  `json:"gstRate"`     // Percentage, clamped to [0,100] at use
	StockQty    int64            `json:"stockQty"`    // Units on hand (per_unit mode)
	StockLength decimal.Decimal  `json:"stockLength"` // Metres on hand (per_length mode)
	IsActive    bool             `json:"isActive"`
	AuditFields
}

// AvailableStock returns the on-hand amount relevant to the product's price
// mode as a decimal, so stock checks share one comparison path.
func (p Product) AvailableStock() decimal.Decimal {
	if p.PriceMode == PerLength {
		return p.StockLength
	}
	return decimal.NewFromInt(p.StockQty)
}
