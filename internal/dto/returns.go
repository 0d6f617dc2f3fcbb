package dto

import (
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReturnLineRequest asks to return part of one original sale line.
type ReturnLineRequest struct {
	LineItemID string          `json:"lineItemID" binding:"required"`
	Quantity   int64           `json:"quantity" binding:"omitempty,min=1"`
	Length     decimal.Decimal `json:"length"`
}

// ProcessReturnRequest creates a return invoice against a completed sale.
type ProcessReturnRequest struct {
	Items []ReturnLineRequest `json:"items" binding:"required,min=1,dive"`
	Notes string              `json:"notes"`
}

// ReturnableItemResponse is the per-line remainder view for the returns UI.
type ReturnableItemResponse struct {
	LineItemID          string           `json:"lineItemID"`
	ProductID           string           `json:"productID"`
	ProductName         string           `json:"productName"`
	PriceMode           domain.PriceMode `json:"priceMode"`
	UnitPrice           decimal.Decimal  `json:"unitPrice"`
	OriginalAmount      decimal.Decimal  `json:"originalAmount"`
	ReturnedAmount      decimal.Decimal  `json:"returnedAmount"`
	ReturnableRemainder decimal.Decimal  `json:"returnableRemainder"`
}

// ToReturnableItemResponse converts a domain.ReturnableItem to its DTO.
func ToReturnableItemResponse(ri *domain.ReturnableItem) ReturnableItemResponse {
	return ReturnableItemResponse{
		LineItemID:          ri.LineItemID,
		ProductID:           ri.ProductID,
		ProductName:         ri.ProductName,
		PriceMode:           ri.PriceMode,
		UnitPrice:           ri.UnitPrice,
		OriginalAmount:      ri.OriginalAmount,
		ReturnedAmount:      ri.ReturnedAmount,
		ReturnableRemainder: ri.ReturnableRemainder,
	}
}

// ProcessReturnResponse reports the settled return amounts.
type ProcessReturnResponse struct {
	ReturnInvoiceID     string          `json:"returnInvoiceID"`
	ReturnInvoiceNumber string          `json:"returnInvoiceNumber"`
	ReturnAmount        decimal.Decimal `json:"returnAmount"`
	AppliedToDue        decimal.Decimal `json:"appliedToDue"`
	ToAdvance           decimal.Decimal `json:"toAdvance"`
}

// ToProcessReturnResponse converts a domain.ReturnResult to its DTO.
func ToProcessReturnResponse(r *domain.ReturnResult) ProcessReturnResponse {
	return ProcessReturnResponse{
		ReturnInvoiceID:     r.ReturnInvoiceID,
		ReturnInvoiceNumber: r.ReturnInvoiceNumber,
		ReturnAmount:        r.ReturnAmount,
		AppliedToDue:        r.AppliedToDue,
		ToAdvance:           r.ToAdvance,
	}
}
