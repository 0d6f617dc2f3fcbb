package models

import (
	"github.com/shopspring/decimal"
)

// Party is the DB row for a customer or supplier.
type Party struct {
	PartyID            string          `db:"party_id"`
	PartyType          string          `db:"party_type"`
	Name               string          `db:"name"`
	Phone              string          `db:"phone"`
	GSTIN              string          `db:"gstin"`
	StateCode          string          `db:"state_code"`
	OutstandingBalance decimal.Decimal `db:"outstanding_balance"`
	AdvanceBalance     decimal.Decimal `db:"advance_balance"`
	IsActive           bool            `db:"is_active"`
	AuditFields
}
