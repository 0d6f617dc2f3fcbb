package billing

import (
	"fmt"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyTolerance is the sub-paisa tolerance used for money equality and
// payment coverage checks. All display amounts are rounded to 2 decimal
// places; internal division may carry more precision.
var MoneyTolerance = decimal.NewFromFloat(0.01)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// WithinTolerance reports whether two amounts agree within MoneyTolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(MoneyTolerance)
}

// ClampGSTRate forces a rate into [0, 100]. Corrupt catalog rows must not
// produce negative or runaway tax.
func ClampGSTRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return decimal.Zero
	}
	if rate.GreaterThan(hundred) {
		return hundred
	}
	return rate
}

// CalcInclusiveLine derives the taxable value and GST amount from a gross,
// tax-inclusive line amount: taxable = gross / (1 + rate/100). The taxable
// value is rounded to 2 places and the GST amount is the exact remainder, so
// taxable + gst always reconstructs gross.
func CalcInclusiveLine(gross, gstRate decimal.Decimal) (taxable, gst decimal.Decimal) {
	rate := ClampGSTRate(gstRate)
	divisor := decimal.NewFromInt(1).Add(rate.Div(hundred))
	taxable = gross.Div(divisor).Round(2)
	gst = gross.Sub(taxable)
	return taxable, gst
}

// SplitGST divides a GST amount into its components. Inter-state supply is
// all IGST; intra-state splits evenly into CGST and SGST. The two halves are
// kept exactly equal, so their sum may differ from gst only within tolerance.
func SplitGST(isInterState bool, gst decimal.Decimal) (cgst, sgst, igst decimal.Decimal) {
	if isInterState {
		return decimal.Zero, decimal.Zero, gst
	}
	half := gst.Div(two).Round(2)
	return half, half, decimal.Zero
}

// IsInterState reports whether a supply crosses state lines. When either
// state is unknown the supply is treated as intra-state; that is a documented
// business policy favoring the CGST/SGST split, not a fallback bug.
func IsInterState(shopState, partyState string) bool {
	return shopState != "" && partyState != "" && shopState != partyState
}

// AllocateProportionalDiscount distributes a bill-level discount across lines
// in proportion to their gross values. The allocations sum to exactly the
// bill discount: every line rounds to 2 places and the last line absorbs the
// rounding remainder. A zero-gross cart allocates nothing.
func AllocateProportionalDiscount(lineGross []decimal.Decimal, billDiscount decimal.Decimal) []decimal.Decimal {
	allocations := make([]decimal.Decimal, len(lineGross))
	for i := range allocations {
		allocations[i] = decimal.Zero
	}
	if len(lineGross) == 0 || billDiscount.IsZero() {
		return allocations
	}

	total := decimal.Zero
	for _, g := range lineGross {
		total = total.Add(g)
	}
	if total.IsZero() {
		return allocations
	}

	allocated := decimal.Zero
	for i, g := range lineGross {
		if i == len(lineGross)-1 {
			allocations[i] = billDiscount.Sub(allocated)
			break
		}
		share := billDiscount.Mul(g).Div(total).Round(2)
		allocations[i] = share
		allocated = allocated.Add(share)
	}
	return allocations
}

// CalculateCartTotals prices a cart under inclusive GST: the total is the sum
// of line gross values minus the bill discount, the subtotal is the taxable
// base after proportional discount allocation, and tax is the difference.
// A line whose allocated discount exceeds its gross contributes zero, never
// a negative taxable value.
func CalculateCartTotals(items []domain.CartItem, discount decimal.Decimal) domain.CartTotals {
	gross := make([]decimal.Decimal, len(items))
	for i, item := range items {
		gross[i] = item.GrossTotal()
	}
	allocations := AllocateProportionalDiscount(gross, discount)

	subtotal := decimal.Zero
	total := decimal.Zero
	for i, item := range items {
		effective := gross[i].Sub(allocations[i])
		if effective.IsNegative() {
			effective = decimal.Zero
		}
		taxable, _ := CalcInclusiveLine(effective, item.GSTRate)
		subtotal = subtotal.Add(taxable)
		total = total.Add(effective)
	}

	return domain.CartTotals{
		Subtotal:       subtotal.Round(2),
		DiscountAmount: discount.Round(2),
		TaxAmount:      total.Sub(subtotal).Round(2),
		TotalAmount:    total.Round(2),
	}
}

// PriceCartItems converts cart items into priced invoice line items. The
// bill discount is allocated proportionally and each line's tax breakup is
// computed on its discounted gross, so the invoice subtotal, tax and total
// reconcile exactly with the cart totals. LineTotal stays the undiscounted
// gross for display and return-pricing purposes.
func PriceCartItems(items []domain.CartItem, discount decimal.Decimal, isInterState bool) []domain.LineItem {
	gross := make([]decimal.Decimal, len(items))
	for i, item := range items {
		gross[i] = item.GrossTotal()
	}
	allocations := AllocateProportionalDiscount(gross, discount)

	lines := make([]domain.LineItem, len(items))
	for i, item := range items {
		effective := gross[i].Sub(allocations[i])
		if effective.IsNegative() {
			effective = decimal.Zero
		}
		taxable, gst := CalcInclusiveLine(effective, item.GSTRate)
		cgst, sgst, igst := SplitGST(isInterState, gst)

		lines[i] = domain.LineItem{
			ProductID:    item.ProductID,
			ProductCode:  item.ProductCode,
			ProductName:  item.ProductName,
			HSNCode:      item.HSNCode,
			PriceMode:    item.PriceMode,
			Quantity:     item.Quantity,
			Length:       item.Length,
			UnitPrice:    item.UnitPrice,
			CostPrice:    item.CostPrice,
			GSTRate:      ClampGSTRate(item.GSTRate),
			LineTotal:    gross[i].Round(2),
			TaxableValue: taxable,
			CGST:         cgst.Round(2),
			SGST:         sgst.Round(2),
			IGST:         igst.Round(2),
		}
	}
	return lines
}

// AllocatePayment validates a payment split against an amount due.
//
// Coverage below the due (beyond tolerance) fails with ErrUnderpayment.
// Coverage above it needs ConfirmOverpay, and the confirmed excess becomes
// advance held for the party. The excess must come from money legs; credit
// above the unpaid remainder fails with ErrValidation. Drawing on advance or
// extending credit without a selected party fails with ErrCustomerRequired.
func AllocatePayment(totalDue decimal.Decimal, split domain.PaymentSplit, hasParty bool) (domain.PaymentAllocation, error) {
	for _, leg := range []decimal.Decimal{split.Cash, split.UPI, split.Card, split.AdvanceUsed, split.Credit} {
		if leg.IsNegative() {
			return domain.PaymentAllocation{}, fmt.Errorf("%w: payment amounts must not be negative", apperrors.ErrValidation)
		}
	}

	if split.UsesPartyBalance() && !hasParty {
		return domain.PaymentAllocation{}, apperrors.ErrCustomerRequired
	}

	alloc := split.AllocTotal()
	if alloc.LessThan(totalDue.Sub(MoneyTolerance)) {
		return domain.PaymentAllocation{}, fmt.Errorf("%w: allocated %s against due %s",
			apperrors.ErrUnderpayment, alloc.String(), totalDue.String())
	}

	advanceCreated := decimal.Zero
	if alloc.GreaterThan(totalDue.Add(MoneyTolerance)) {
		// Only tenders actually received can form the excess. Credit beyond
		// the unpaid remainder would record a receivable that was never owed.
		if split.Credit.IsPositive() && split.Credit.GreaterThan(totalDue.Sub(split.MoneyTotal()).Add(MoneyTolerance)) {
			return domain.PaymentAllocation{}, fmt.Errorf("%w: credit %s exceeds the unpaid remainder %s",
				apperrors.ErrValidation, split.Credit.String(), decimal.Max(totalDue.Sub(split.MoneyTotal()), decimal.Zero).String())
		}
		if !split.ConfirmOverpay {
			return domain.PaymentAllocation{}, apperrors.ErrOverpayNotConfirmed
		}
		if !hasParty {
			// Excess cannot be held for an anonymous walk-in.
			return domain.PaymentAllocation{}, apperrors.ErrCustomerRequired
		}
		advanceCreated = alloc.Sub(totalDue).Round(2)
	}

	// The excess is held as advance, not applied to this bill, so
	// AmountPaid + Pending always settles to the amount due.
	return domain.PaymentAllocation{
		AmountPaid:     split.MoneyTotal().Sub(advanceCreated).Round(2),
		Pending:        split.Credit.Round(2),
		AdvanceCreated: advanceCreated,
	}, nil
}
