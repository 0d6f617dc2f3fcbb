package models

import (
	"github.com/shopspring/decimal"
)

// Product is the DB row for a stocked SKU.
type Product struct {
	ProductID   string           `db:"product_id"`
	Code        string           `db:"code"`
	Name        string           `db:"name"`
	HSNCode     string           `db:"hsn_code"`
	PriceMode   string           `db:"price_mode"`
	UnitPrice   decimal.Decimal  `db:"unit_price"`
	CostPrice   *decimal.Decimal `db:"cost_price"`
	GSTRate     decimal.Decimal  `db:"gst_rate"`
	StockQty    int64            `db:"stock_qty"`
	StockLength decimal.Decimal  `db:"stock_length"`
	IsActive    bool             `db:"is_active"`
	AuditFields
}
