package dto

import (
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a catalog product.
type CreateProductRequest struct {
	Code         string           `json:"code" binding:"required"`
	Name         string           `json:"name" binding:"required"`
	HSNCode      string           `json:"hsnCode"`
	PriceMode    domain.PriceMode `json:"priceMode" binding:"required,oneof=per_unit per_length"`
	UnitPrice    decimal.Decimal  `json:"unitPrice" binding:"required"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	GSTRate      decimal.Decimal  `json:"gstRate"`
	OpeningQty   int64            `json:"openingQty"`    // per_unit mode
	OpeningLen   decimal.Decimal  `json:"openingLength"` // per_length mode
}

// UpdateProductRequest defines the catalog fields allowed to change.
// Pointers distinguish zero-value updates from fields not provided.
// Stock is excluded: it moves only via adjustments and invoices.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	HSNCode   *string          `json:"hsnCode"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	CostPrice *decimal.Decimal `json:"costPrice"`
	GSTRate   *decimal.Decimal `json:"gstRate"`
	IsActive  *bool            `json:"isActive"`
}

// AdjustStockRequest defines a manual stock movement.
type AdjustStockRequest struct {
	QuantityDelta int64           `json:"quantityDelta"` // Signed units (per_unit mode)
	LengthDelta   decimal.Decimal `json:"lengthDelta"`   // Signed metres (per_length mode)
	Notes         string          `json:"notes"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID   string           `json:"productID"`
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	HSNCode     string           `json:"hsnCode"`
	PriceMode   domain.PriceMode `json:"priceMode"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	GSTRate     decimal.Decimal  `json:"gstRate"`
	StockQty    int64            `json:"stockQty"`
	StockLength decimal.Decimal  `json:"stockLength"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		Code:        p.Code,
		Name:        p.Name,
		HSNCode:     p.HSNCode,
		PriceMode:   p.PriceMode,
		UnitPrice:   p.UnitPrice,
		CostPrice:   p.CostPrice,
		GSTRate:     p.GSTRate,
		StockQty:    p.StockQty,
		StockLength: p.StockLength,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

// ListProductsResponse wraps a paginated product listing.
type ListProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// StockAdjustmentResponse defines one audit trail record.
type StockAdjustmentResponse struct {
	AdjustmentID string          `json:"adjustmentID"`
	ProductID    string          `json:"productID"`
	ChangeType   string          `json:"changeType"`
	Previous     decimal.Decimal `json:"previous"`
	New          decimal.Decimal `json:"new"`
	InvoiceID    *string         `json:"invoiceID,omitempty"`
	Notes        string          `json:"notes"`
	ActorID      string          `json:"actorID"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToStockAdjustmentResponse converts a domain.StockAdjustment to its DTO.
func ToStockAdjustmentResponse(a *domain.StockAdjustment) StockAdjustmentResponse {
	return StockAdjustmentResponse{
		AdjustmentID: a.AdjustmentID,
		ProductID:    a.ProductID,
		ChangeType:   string(a.ChangeType),
		Previous:     a.Previous,
		New:          a.New,
		InvoiceID:    a.InvoiceID,
		Notes:        a.Notes,
		ActorID:      a.ActorID,
		CreatedAt:    a.CreatedAt,
	}
}

// ListStockAdjustmentsResponse wraps a paginated audit trail listing.
type ListStockAdjustmentsResponse struct {
	Adjustments []StockAdjustmentResponse `json:"adjustments"`
	NextToken   *string                   `json:"nextToken,omitempty"`
}
