package dto

import (
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest adds a product to the billing session's cart. Quantity
// applies to per_unit products, length to per_length ones.
type AddCartItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"omitempty,min=1"`
	Length    decimal.Decimal `json:"length"`
}

// UpdateCartItemRequest replaces a line's quantity or length. Zero drops the
// line.
type UpdateCartItemRequest struct {
	Quantity int64           `json:"quantity"`
	Length   decimal.Decimal `json:"length"`
}

// SetCartDiscountRequest sets the bill-level discount on the cart.
type SetCartDiscountRequest struct {
	DiscountAmount decimal.Decimal `json:"discountAmount" binding:"required"`
}

// SetCartPartyRequest selects or clears the cart's customer/supplier.
type SetCartPartyRequest struct {
	PartyID *string `json:"partyID"`
}

// CartItemResponse is one line of the session cart.
type CartItemResponse struct {
	ProductID   string           `json:"productID"`
	ProductCode string           `json:"productCode"`
	ProductName string           `json:"productName"`
	PriceMode   domain.PriceMode `json:"priceMode"`
	Quantity    int64            `json:"quantity"`
	Length      decimal.Decimal  `json:"length"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	GSTRate     decimal.Decimal  `json:"gstRate"`
	GrossTotal  decimal.Decimal  `json:"grossTotal"`
}

// CartResponse is the full priced view of a billing session.
type CartResponse struct {
	Items   []CartItemResponse `json:"items"`
	PartyID *string            `json:"partyID,omitempty"`
	Totals  domain.CartTotals  `json:"totals"`
}

// ToCartResponse converts a cart and its computed totals to the DTO.
func ToCartResponse(cart *domain.Cart, totals domain.CartTotals) CartResponse {
	items := make([]CartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemResponse{
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			PriceMode:   item.PriceMode,
			Quantity:    item.Quantity,
			Length:      item.Length,
			UnitPrice:   item.UnitPrice,
			GSTRate:     item.GSTRate,
			GrossTotal:  item.GrossTotal(),
		}
	}
	return CartResponse{Items: items, PartyID: cart.PartyID, Totals: totals}
}
