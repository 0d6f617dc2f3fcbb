package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the DB row for one append-only ledger record.
type LedgerEntry struct {
	EntryID        string          `db:"entry_id"`
	PartyID        string          `db:"party_id"`
	EntryType      string          `db:"entry_type"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	RunningBalance decimal.Decimal `db:"running_balance"`
	AdvanceBalance decimal.Decimal `db:"advance_balance"`
	InvoiceID      *string         `db:"invoice_id"`
	Notes          string          `db:"notes"`
	EntryDate      time.Time       `db:"entry_date"`
	CreatedBy      string          `db:"created_by"`
}
