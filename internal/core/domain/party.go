package domain

import (
	"github.com/shopspring/decimal"
)

// PartyType distinguishes customers (who owe the shop) from suppliers
// (whom the shop owes). Balance direction is implicit in the type.
type PartyType string

const (
	Customer PartyType = "customer"
	Supplier PartyType = "supplier"
)

// Party represents a customer or supplier with running balances.
//
// OutstandingBalance is the "due" magnitude: what the customer owes the shop,
// or what the shop owes the supplier. AdvanceBalance is credit held for the
// party from overpayment or unapplied return value. Both are kept >= 0; the
// ledger fold clamps them and routes any excess credit into advance.
type Party struct {
	PartyID            string          `json:"partyID"` // Primary Key (UUID)
	Type               PartyType       `json:"type"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`     // Optional
	GSTIN              string          `json:"gstin"`     // Optional; 15-char GST identification number
	StateCode          string          `json:"stateCode"` // GST state code, optional; empty means unknown
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	AdvanceBalance     decimal.Decimal `json:"advanceBalance"`
	IsActive           bool            `json:"isActive"`
	AuditFields
}
