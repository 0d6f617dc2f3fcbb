package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how money was received or paid outside a bill,
// e.g. a customer clearing dues at the counter.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodUPI  PaymentMethod = "upi"
	MethodCard PaymentMethod = "card"
)

// PaymentSplit is the caller-proposed division of an invoice total across
// tenders. AdvanceUsed draws down the party's held advance; Credit leaves the
// amount as party due. ConfirmOverpay must be set for any excess over the
// total to be accepted as new advance.
type PaymentSplit struct {
	Cash           decimal.Decimal `json:"cash"`
	UPI            decimal.Decimal `json:"upi"`
	Card           decimal.Decimal `json:"card"`
	AdvanceUsed    decimal.Decimal `json:"advanceUsed"`
	Credit         decimal.Decimal `json:"credit"`
	ConfirmOverpay bool            `json:"confirmOverpay"`
}

// MoneyTotal is the sum of tenders actually received now (everything except
// credit).
func (s PaymentSplit) MoneyTotal() decimal.Decimal {
	return s.Cash.Add(s.UPI).Add(s.Card).Add(s.AdvanceUsed)
}

// AllocTotal is the full coverage the split claims, including credit.
func (s PaymentSplit) AllocTotal() decimal.Decimal {
	return s.MoneyTotal().Add(s.Credit)
}

// UsesPartyBalance reports whether the split touches a party's books
// (advance drawn or credit extended), which requires a selected party.
func (s PaymentSplit) UsesPartyBalance() bool {
	return s.AdvanceUsed.IsPositive() || s.Credit.IsPositive()
}

// PaymentAllocation is the validated outcome of applying a PaymentSplit to an
// amount due.
type PaymentAllocation struct {
	AmountPaid     decimal.Decimal `json:"amountPaid"`     // Money received now
	Pending        decimal.Decimal `json:"pending"`        // Credit portion raised as due
	AdvanceCreated decimal.Decimal `json:"advanceCreated"` // Confirmed overpay excess
}
