package billing_test

import (
	"testing"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalcInclusiveLine(t *testing.T) {
	testCases := []struct {
		name        string
		gross       string
		rate        string
		wantTaxable string
		wantGST     string
	}{
		{"18 percent on 118", "118", "18", "100", "18"},
		{"zero rate", "250", "0", "250", "0"},
		{"5 percent on 105", "105", "5", "100", "5"},
		{"12 percent on 500", "500", "12", "446.43", "53.57"},
		{"zero gross", "0", "18", "0", "0"},
		{"negative rate clamps to zero", "100", "-5", "100", "0"},
		{"rate above hundred clamps", "300", "150", "150", "150"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			taxable, gst := billing.CalcInclusiveLine(d(tc.gross), d(tc.rate))
			assert.True(t, d(tc.wantTaxable).Equal(taxable), "taxable: want %s got %s", tc.wantTaxable, taxable)
			assert.True(t, d(tc.wantGST).Equal(gst), "gst: want %s got %s", tc.wantGST, gst)
			// taxable + gst must reconstruct the gross exactly
			assert.True(t, taxable.Add(gst).Equal(d(tc.gross)))
		})
	}
}

func TestSplitGST(t *testing.T) {
	t.Run("intra-state splits evenly", func(t *testing.T) {
		cgst, sgst, igst := billing.SplitGST(false, d("18"))
		assert.True(t, d("9").Equal(cgst))
		assert.True(t, d("9").Equal(sgst))
		assert.True(t, igst.IsZero())
	})

	t.Run("inter-state is all IGST", func(t *testing.T) {
		cgst, sgst, igst := billing.SplitGST(true, d("18"))
		assert.True(t, cgst.IsZero())
		assert.True(t, sgst.IsZero())
		assert.True(t, d("18").Equal(igst))
	})

	t.Run("halves stay equal and sum within tolerance", func(t *testing.T) {
		for _, amount := range []string{"18.01", "0.03", "7.77", "123.45"} {
			cgst, sgst, igst := billing.SplitGST(false, d(amount))
			assert.True(t, cgst.Equal(sgst), "cgst %s != sgst %s for %s", cgst, sgst, amount)
			assert.True(t, igst.IsZero())
			assert.True(t, billing.WithinTolerance(cgst.Add(sgst), d(amount)))
		}
	})
}

func TestIsInterState(t *testing.T) {
	assert.False(t, billing.IsInterState("27", "27"), "same state is intra")
	assert.True(t, billing.IsInterState("27", "29"), "different states are inter")
	// Unknown state on either side is treated as intra-state by policy.
	assert.False(t, billing.IsInterState("", "29"))
	assert.False(t, billing.IsInterState("27", ""))
	assert.False(t, billing.IsInterState("", ""))
}

func TestAllocateProportionalDiscount(t *testing.T) {
	t.Run("proportional split", func(t *testing.T) {
		lines := []decimal.Decimal{d("100"), d("200"), d("300")}
		got := billing.AllocateProportionalDiscount(lines, d("60"))
		require.Len(t, got, 3)
		assert.True(t, d("10").Equal(got[0]))
		assert.True(t, d("20").Equal(got[1]))
		assert.True(t, d("30").Equal(got[2]))
	})

	t.Run("allocations always sum to the discount", func(t *testing.T) {
		cases := [][]string{
			{"33.33", "66.67", "99.99"},
			{"1", "1", "1"},
			{"10.55", "0.45"},
			{"999.99"},
		}
		for _, grossStrs := range cases {
			lines := make([]decimal.Decimal, len(grossStrs))
			for i, s := range grossStrs {
				lines[i] = d(s)
			}
			got := billing.AllocateProportionalDiscount(lines, d("17.50"))
			sum := decimal.Zero
			for _, a := range got {
				sum = sum.Add(a)
			}
			assert.True(t, d("17.50").Equal(sum), "sum %s for lines %v", sum, grossStrs)
		}
	})

	t.Run("zero gross allocates nothing", func(t *testing.T) {
		got := billing.AllocateProportionalDiscount([]decimal.Decimal{d("0"), d("0")}, d("50"))
		for _, a := range got {
			assert.True(t, a.IsZero())
		}
	})

	t.Run("empty lines", func(t *testing.T) {
		got := billing.AllocateProportionalDiscount(nil, d("50"))
		assert.Empty(t, got)
	})
}

func TestCalculateCartTotals(t *testing.T) {
	t.Run("single inclusive line", func(t *testing.T) {
		items := []domain.CartItem{{
			ProductID: "p1",
			PriceMode: domain.PerUnit,
			Quantity:  1,
			UnitPrice: d("118"),
			GSTRate:   d("18"),
		}}
		totals := billing.CalculateCartTotals(items, decimal.Zero)
		assert.True(t, d("100").Equal(totals.Subtotal), "subtotal %s", totals.Subtotal)
		assert.True(t, d("18").Equal(totals.TaxAmount), "tax %s", totals.TaxAmount)
		assert.True(t, d("118").Equal(totals.TotalAmount), "total %s", totals.TotalAmount)
	})

	t.Run("length-based line", func(t *testing.T) {
		items := []domain.CartItem{{
			ProductID: "p2",
			PriceMode: domain.PerLength,
			Length:    d("2.5"),
			UnitPrice: d("40"), // per metre
			GSTRate:   d("0"),
		}}
		totals := billing.CalculateCartTotals(items, decimal.Zero)
		assert.True(t, d("100").Equal(totals.TotalAmount))
		assert.True(t, d("100").Equal(totals.Subtotal))
		assert.True(t, totals.TaxAmount.IsZero())
	})

	t.Run("bill discount reduces total and taxable base", func(t *testing.T) {
		items := []domain.CartItem{
			{ProductID: "a", PriceMode: domain.PerUnit, Quantity: 1, UnitPrice: d("100"), GSTRate: d("0")},
			{ProductID: "b", PriceMode: domain.PerUnit, Quantity: 1, UnitPrice: d("200"), GSTRate: d("0")},
			{ProductID: "c", PriceMode: domain.PerUnit, Quantity: 1, UnitPrice: d("300"), GSTRate: d("0")},
		}
		totals := billing.CalculateCartTotals(items, d("60"))
		assert.True(t, d("540").Equal(totals.TotalAmount), "total %s", totals.TotalAmount)
		assert.True(t, d("60").Equal(totals.DiscountAmount))
	})

	t.Run("discount larger than gross clamps lines to zero", func(t *testing.T) {
		items := []domain.CartItem{
			{ProductID: "a", PriceMode: domain.PerUnit, Quantity: 1, UnitPrice: d("50"), GSTRate: d("18")},
		}
		totals := billing.CalculateCartTotals(items, d("80"))
		assert.True(t, totals.TotalAmount.IsZero())
		assert.False(t, totals.Subtotal.IsNegative())
	})
}

func TestPriceCartItems(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "a", ProductName: "Shirt", PriceMode: domain.PerUnit, Quantity: 2, UnitPrice: d("590"), GSTRate: d("18")},
		{ProductID: "b", ProductName: "Cloth", PriceMode: domain.PerLength, Length: d("3"), UnitPrice: d("105"), GSTRate: d("5")},
	}

	lines := billing.PriceCartItems(items, decimal.Zero, false)
	require.Len(t, lines, 2)

	// Line totals are gross and the tax breakup reconstructs them.
	assert.True(t, d("1180").Equal(lines[0].LineTotal))
	assert.True(t, d("1000").Equal(lines[0].TaxableValue))
	assert.True(t, d("90").Equal(lines[0].CGST))
	assert.True(t, d("90").Equal(lines[0].SGST))
	assert.True(t, lines[0].IGST.IsZero())

	assert.True(t, d("315").Equal(lines[1].LineTotal))
	assert.True(t, d("300").Equal(lines[1].TaxableValue))

	for _, line := range lines {
		reconstructed := line.TaxableValue.Add(line.CGST).Add(line.SGST).Add(line.IGST)
		assert.True(t, billing.WithinTolerance(reconstructed, line.LineTotal))
	}

	t.Run("inter-state uses IGST only", func(t *testing.T) {
		interLines := billing.PriceCartItems(items, decimal.Zero, true)
		for _, line := range interLines {
			assert.True(t, line.CGST.IsZero())
			assert.True(t, line.SGST.IsZero())
		}
		assert.True(t, d("180").Equal(interLines[0].IGST))
	})
}

func TestAllocatePayment(t *testing.T) {
	t.Run("exact cash sale", func(t *testing.T) {
		alloc, err := billing.AllocatePayment(d("118"), domain.PaymentSplit{Cash: d("118")}, false)
		require.NoError(t, err)
		assert.True(t, d("118").Equal(alloc.AmountPaid))
		assert.True(t, alloc.Pending.IsZero())
		assert.True(t, alloc.AdvanceCreated.IsZero())
	})

	t.Run("split payment with credit", func(t *testing.T) {
		split := domain.PaymentSplit{Cash: d("400"), UPI: d("300"), Credit: d("300")}
		alloc, err := billing.AllocatePayment(d("1000"), split, true)
		require.NoError(t, err)
		assert.True(t, d("700").Equal(alloc.AmountPaid))
		assert.True(t, d("300").Equal(alloc.Pending))
	})

	t.Run("underpayment fails", func(t *testing.T) {
		_, err := billing.AllocatePayment(d("1000"), domain.PaymentSplit{Cash: d("900")}, true)
		assert.ErrorIs(t, err, apperrors.ErrUnderpayment)
	})

	t.Run("sub-paisa shortfall passes", func(t *testing.T) {
		_, err := billing.AllocatePayment(d("100"), domain.PaymentSplit{Cash: d("99.995")}, false)
		assert.NoError(t, err)
	})

	t.Run("overpay without confirmation fails", func(t *testing.T) {
		_, err := billing.AllocatePayment(d("500"), domain.PaymentSplit{Cash: d("600")}, true)
		assert.ErrorIs(t, err, apperrors.ErrOverpayNotConfirmed)
	})

	t.Run("confirmed overpay creates advance", func(t *testing.T) {
		split := domain.PaymentSplit{Cash: d("600"), ConfirmOverpay: true}
		alloc, err := billing.AllocatePayment(d("500"), split, true)
		require.NoError(t, err)
		assert.True(t, d("100").Equal(alloc.AdvanceCreated))
		assert.True(t, d("500").Equal(alloc.AmountPaid))
	})

	t.Run("overpay for walk-in has nowhere to hold advance", func(t *testing.T) {
		split := domain.PaymentSplit{Cash: d("600"), ConfirmOverpay: true}
		_, err := billing.AllocatePayment(d("500"), split, false)
		assert.ErrorIs(t, err, apperrors.ErrCustomerRequired)
	})

	t.Run("credit without customer fails", func(t *testing.T) {
		_, err := billing.AllocatePayment(d("100"), domain.PaymentSplit{Credit: d("100")}, false)
		assert.ErrorIs(t, err, apperrors.ErrCustomerRequired)
	})

	t.Run("advance used without customer fails", func(t *testing.T) {
		_, err := billing.AllocatePayment(d("100"), domain.PaymentSplit{Cash: d("50"), AdvanceUsed: d("50")}, false)
		assert.ErrorIs(t, err, apperrors.ErrCustomerRequired)
	})

	t.Run("fully-credit sale pays nothing now", func(t *testing.T) {
		alloc, err := billing.AllocatePayment(d("750"), domain.PaymentSplit{Credit: d("750")}, true)
		require.NoError(t, err)
		assert.True(t, alloc.AmountPaid.IsZero())
		assert.True(t, d("750").Equal(alloc.Pending))
	})

	t.Run("credit beyond the remainder fails even when confirmed", func(t *testing.T) {
		split := domain.PaymentSplit{Credit: d("150"), ConfirmOverpay: true}
		_, err := billing.AllocatePayment(d("100"), split, true)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("cash plus overshooting credit fails", func(t *testing.T) {
		split := domain.PaymentSplit{Cash: d("400"), Credit: d("700"), ConfirmOverpay: true}
		_, err := billing.AllocatePayment(d("1000"), split, true)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("negative leg fails validation", func(t *testing.T) {
		_, err := billing.AllocatePayment(d("100"), domain.PaymentSplit{Cash: d("-10"), UPI: d("110")}, false)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
