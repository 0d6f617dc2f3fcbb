package domain_test

import (
	"testing"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemMergesByProduct(t *testing.T) {
	cart := &domain.Cart{}
	cart.AddItem(domain.CartItem{ProductID: "p1", PriceMode: domain.PerUnit, Quantity: 2, UnitPrice: d("50")})
	cart.AddItem(domain.CartItem{ProductID: "p2", PriceMode: domain.PerLength, Length: d("1.5"), UnitPrice: d("80")})
	cart.AddItem(domain.CartItem{ProductID: "p1", PriceMode: domain.PerUnit, Quantity: 3, UnitPrice: d("50")})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)

	cart.AddItem(domain.CartItem{ProductID: "p2", PriceMode: domain.PerLength, Length: d("0.5")})
	assert.True(t, d("2").Equal(cart.Items[1].Length))
}

func TestCartUpdateItem(t *testing.T) {
	cart := &domain.Cart{}
	cart.AddItem(domain.CartItem{ProductID: "p1", PriceMode: domain.PerUnit, Quantity: 2})

	assert.True(t, cart.UpdateItem("p1", 7, decimal.Zero))
	assert.Equal(t, int64(7), cart.Items[0].Quantity)

	// Zero quantity drops the line.
	assert.True(t, cart.UpdateItem("p1", 0, decimal.Zero))
	assert.Empty(t, cart.Items)

	assert.False(t, cart.UpdateItem("missing", 1, decimal.Zero))
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := &domain.Cart{DiscountAmount: d("25")}
	cart.AddItem(domain.CartItem{ProductID: "p1", PriceMode: domain.PerUnit, Quantity: 1})
	cart.AddItem(domain.CartItem{ProductID: "p2", PriceMode: domain.PerUnit, Quantity: 1})

	assert.True(t, cart.RemoveItem("p1"))
	assert.False(t, cart.RemoveItem("p1"))
	require.Len(t, cart.Items, 1)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.True(t, cart.DiscountAmount.IsZero())
	assert.Nil(t, cart.PartyID)
}

func TestInvoiceTransitions(t *testing.T) {
	inv := domain.Invoice{Status: domain.Draft, Type: domain.Sale}
	assert.True(t, inv.CanComplete())
	assert.False(t, inv.CanCancel())

	inv.Status = domain.Completed
	assert.False(t, inv.CanComplete())
	assert.True(t, inv.CanCancel())

	inv.Status = domain.Cancelled
	assert.False(t, inv.CanComplete())
	assert.False(t, inv.CanCancel())

	ret := domain.Invoice{Status: domain.Completed, Type: domain.Return}
	assert.False(t, ret.CanCancel(), "return invoices are not cancellable")
}
