package domain

import (
	"github.com/shopspring/decimal"
)

// CartItem is one product being billed in a session, before an invoice
// exists. Prices and GST rate are snapshots taken when the item was added.
type CartItem struct {
	ProductID   string           `json:"productID"`
	ProductCode string           `json:"productCode"`
	ProductName string           `json:"productName"`
	HSNCode     string           `json:"hsnCode"`
	PriceMode   PriceMode        `json:"priceMode"`
	Quantity    int64            `json:"quantity"`
	Length      decimal.Decimal  `json:"length"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	GSTRate     decimal.Decimal  `json:"gstRate"`
}

// BilledAmount returns the quantity or length in the cart as a decimal
// according to the item's price mode.
func (ci CartItem) BilledAmount() decimal.Decimal {
	if ci.PriceMode == PerLength {
		return ci.Length
	}
	return decimal.NewFromInt(ci.Quantity)
}

// GrossTotal is the tax-inclusive line value: unit price times the billed
// quantity or length.
func (ci CartItem) GrossTotal() decimal.Decimal {
	return ci.UnitPrice.Mul(ci.BilledAmount())
}

// Cart is the session-scoped aggregate of items being billed. Each user
// session owns its own Cart; there is no shared singleton.
type Cart struct {
	Items          []CartItem      `json:"items"`
	DiscountAmount decimal.Decimal `json:"discountAmount"` // Bill-level discount
	PartyID        *string         `json:"partyID"`        // Selected customer/supplier, nullable
}

// AddItem merges by product id: adding a product already in the cart
// increments its quantity or length instead of duplicating the line.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.Items[i].Length = c.Items[i].Length.Add(item.Length)
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Item returns the cart line for a product, or nil when absent.
func (c *Cart) Item(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// UpdateItem replaces the quantity/length of an existing line. Setting both
// to zero drops the line. Returns false when the product is not in the cart.
func (c *Cart) UpdateItem(productID string, quantity int64, length decimal.Decimal) bool {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 && !length.IsPositive() {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
		c.Items[i].Quantity = quantity
		c.Items[i].Length = length
		return true
	}
	return false
}

// RemoveItem drops a line entirely. Returns false when the product is not
// in the cart.
func (c *Cart) RemoveItem(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart and resets discount and party selection.
func (c *Cart) Clear() {
	c.Items = nil
	c.DiscountAmount = decimal.Zero
	c.PartyID = nil
}

// CartTotals is the priced summary of a cart under inclusive GST pricing.
type CartTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"` // Taxable base
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"` // Gross payable
}
