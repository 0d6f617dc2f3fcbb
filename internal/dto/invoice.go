package dto

import (
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDraftRequest turns the current billing session cart into a draft
// invoice of the given type.
type CreateDraftRequest struct {
	Type  domain.InvoiceType `json:"type" binding:"required,oneof=sale purchase"`
	Notes string             `json:"notes"`
}

// CompleteInvoiceRequest carries the payment split for the draft ->
// completed transition.
type CompleteInvoiceRequest struct {
	Cash           decimal.Decimal `json:"cash"`
	UPI            decimal.Decimal `json:"upi"`
	Card           decimal.Decimal `json:"card"`
	AdvanceUsed    decimal.Decimal `json:"advanceUsed"`
	Credit         decimal.Decimal `json:"credit"`
	ConfirmOverpay bool            `json:"confirmOverpay"`
}

// Split converts the request to the domain payment split.
func (r CompleteInvoiceRequest) Split() domain.PaymentSplit {
	return domain.PaymentSplit{
		Cash:           r.Cash,
		UPI:            r.UPI,
		Card:           r.Card,
		AdvanceUsed:    r.AdvanceUsed,
		Credit:         r.Credit,
		ConfirmOverpay: r.ConfirmOverpay,
	}
}

// LineItemResponse defines the data returned for an invoice line.
type LineItemResponse struct {
	LineItemID       string           `json:"lineItemID"`
	ProductID        string           `json:"productID"`
	ProductName      string           `json:"productName"`
	HSNCode          string           `json:"hsnCode"`
	PriceMode        domain.PriceMode `json:"priceMode"`
	Quantity         int64            `json:"quantity"`
	Length           decimal.Decimal  `json:"length"`
	UnitPrice        decimal.Decimal  `json:"unitPrice"`
	GSTRate          decimal.Decimal  `json:"gstRate"`
	LineTotal        decimal.Decimal  `json:"lineTotal"`
	TaxableValue     decimal.Decimal  `json:"taxableValue"`
	CGST             decimal.Decimal  `json:"cgst"`
	SGST             decimal.Decimal  `json:"sgst"`
	IGST             decimal.Decimal  `json:"igst"`
	ReturnedQuantity int64            `json:"returnedQuantity"`
	ReturnedLength   decimal.Decimal  `json:"returnedLength"`
}

// ToLineItemResponse converts a domain.LineItem to its DTO.
func ToLineItemResponse(li *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:       li.LineItemID,
		ProductID:        li.ProductID,
		ProductName:      li.ProductName,
		HSNCode:          li.HSNCode,
		PriceMode:        li.PriceMode,
		Quantity:         li.Quantity,
		Length:           li.Length,
		UnitPrice:        li.UnitPrice,
		GSTRate:          li.GSTRate,
		LineTotal:        li.LineTotal,
		TaxableValue:     li.TaxableValue,
		CGST:             li.CGST,
		SGST:             li.SGST,
		IGST:             li.IGST,
		ReturnedQuantity: li.ReturnedQuantity,
		ReturnedLength:   li.ReturnedLength,
	}
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID          string               `json:"invoiceID"`
	InvoiceNumber      string               `json:"invoiceNumber"`
	Type               domain.InvoiceType   `json:"type"`
	Status             domain.InvoiceStatus `json:"status"`
	PartyID            *string              `json:"partyID,omitempty"`
	PlaceOfSupplyState string               `json:"placeOfSupplyState"`
	Subtotal           decimal.Decimal      `json:"subtotal"`
	TaxAmount          decimal.Decimal      `json:"taxAmount"`
	DiscountAmount     decimal.Decimal      `json:"discountAmount"`
	TotalAmount        decimal.Decimal      `json:"totalAmount"`
	AmountPaid         decimal.Decimal      `json:"amountPaid"`
	PendingAmount      decimal.Decimal      `json:"pendingAmount"`
	ReturnedAmount     decimal.Decimal      `json:"returnedAmount"`
	ParentInvoiceID    *string              `json:"parentInvoiceID,omitempty"`
	Notes              string               `json:"notes"`
	CreatedAt          time.Time            `json:"createdAt"`
	Items              []LineItemResponse   `json:"items,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice (and optional items) to its DTO.
func ToInvoiceResponse(inv *domain.Invoice, items []domain.LineItem) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:          inv.InvoiceID,
		InvoiceNumber:      inv.InvoiceNumber,
		Type:               inv.Type,
		Status:             inv.Status,
		PartyID:            inv.PartyID,
		PlaceOfSupplyState: inv.PlaceOfSupplyState,
		Subtotal:           inv.Subtotal,
		TaxAmount:          inv.TaxAmount,
		DiscountAmount:     inv.DiscountAmount,
		TotalAmount:        inv.TotalAmount,
		AmountPaid:         inv.AmountPaid,
		PendingAmount:      inv.PendingAmount,
		ReturnedAmount:     inv.ReturnedAmount,
		ParentInvoiceID:    inv.ParentInvoiceID,
		Notes:              inv.Notes,
		CreatedAt:          inv.CreatedAt,
	}
	for i := range items {
		resp.Items = append(resp.Items, ToLineItemResponse(&items[i]))
	}
	return resp
}

// ListInvoicesParams filters and paginates invoice listings.
type ListInvoicesParams struct {
	Type      *domain.InvoiceType   `form:"type" binding:"omitempty,oneof=sale purchase return"`
	Status    *domain.InvoiceStatus `form:"status" binding:"omitempty,oneof=draft completed cancelled"`
	PartyID   *string               `form:"partyID"`
	Limit     int                   `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken *string               `form:"nextToken"`
}

// ListInvoicesResponse wraps a paginated invoice listing.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// CompleteInvoiceResponse reports the settled amounts after completion.
type CompleteInvoiceResponse struct {
	InvoiceID      string          `json:"invoiceID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	AdvanceCreated decimal.Decimal `json:"advanceCreated"`
}
