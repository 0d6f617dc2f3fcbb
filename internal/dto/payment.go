package dto

import (
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest records money received from (or paid to) a party
// outside a bill, e.g. a customer clearing dues at the counter.
type RecordPaymentRequest struct {
	Amount decimal.Decimal      `json:"amount" binding:"required"`
	Method domain.PaymentMethod `json:"method" binding:"required,oneof=cash upi card"`
	Notes  string               `json:"notes"`
}

// RefundAdvanceRequest pays out part of a party's held advance.
type RefundAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes"`
}

// PaymentResponse reports the party balances after the operation.
type PaymentResponse struct {
	PartyID            string          `json:"partyID"`
	AppliedToDue       decimal.Decimal `json:"appliedToDue"`
	ToAdvance          decimal.Decimal `json:"toAdvance"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	AdvanceBalance     decimal.Decimal `json:"advanceBalance"`
}
