package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType classifies an append-only ledger record.
type LedgerEntryType string

const (
	EntrySale       LedgerEntryType = "sale"       // Debit: raises due
	EntryPurchase   LedgerEntryType = "purchase"   // Debit: raises what the shop owes a supplier
	EntryReturn     LedgerEntryType = "return"     // Credit: clears due, excess to advance
	EntryPayment    LedgerEntryType = "payment"    // Credit: clears due, excess to advance
	EntryAdjustment LedgerEntryType = "adjustment" // Correction or advance drawdown, signed via debit/credit
)

// LedgerEntry is one immutable record in a party's ledger. Entries are never
// edited or deleted; corrections are new entries. RunningBalance and
// AdvanceBalance are snapshots of the fold after this entry and can always be
// re-derived by replaying the full history.
type LedgerEntry struct {
	EntryID        string          `json:"entryID"` // Primary Key (UUID)
	PartyID        string          `json:"partyID"` // FK -> parties.party_id
	Type           LedgerEntryType `json:"type"`
	Debit          decimal.Decimal `json:"debit"`  // Amount owed added, >= 0
	Credit         decimal.Decimal `json:"credit"` // Amount paid/credited, >= 0
	RunningBalance decimal.Decimal `json:"runningBalance"`
	AdvanceBalance decimal.Decimal `json:"advanceBalance"`
	InvoiceID      *string         `json:"invoiceID"` // Nullable link to the originating invoice
	Notes          string          `json:"notes"`
	EntryDate      time.Time       `json:"entryDate"`
	CreatedBy      string          `json:"createdBy"`
}

// ApplyCredit folds one credit amount into a (due, advance) pair: the credit
// clears existing due first and only the remainder becomes advance. Returns
// the applied portion, the advance portion, and the updated balances.
func ApplyCredit(due, advance, credit decimal.Decimal) (applied, toAdvance, newDue, newAdvance decimal.Decimal) {
	applied = decimal.Min(credit, due)
	toAdvance = credit.Sub(applied)
	if toAdvance.IsNegative() {
		toAdvance = decimal.Zero
	}
	newDue = due.Sub(applied)
	if newDue.IsNegative() {
		newDue = decimal.Zero
	}
	newAdvance = advance.Add(toAdvance)
	return applied, toAdvance, newDue, newAdvance
}

// ApplyEntry folds one entry into a (due, advance) pair.
//
// Sale/purchase debits raise due. Return/payment credits clear due first and
// route the excess to advance. Adjustment debits are the advance drawdown
// path (advance applied to a bill, advance refunded): they consume held
// advance first and only the remainder raises due. Adjustment credits behave
// like any other credit.
func ApplyEntry(due, advance decimal.Decimal, e LedgerEntry) (newDue, newAdvance decimal.Decimal) {
	switch {
	case e.Debit.IsPositive() && e.Type == EntryAdjustment:
		fromAdvance := decimal.Min(advance, e.Debit)
		newAdvance = advance.Sub(fromAdvance)
		newDue = due.Add(e.Debit.Sub(fromAdvance))
	case e.Debit.IsPositive():
		newDue = due.Add(e.Debit)
		newAdvance = advance
	case e.Credit.IsPositive():
		_, _, newDue, newAdvance = ApplyCredit(due, advance, e.Credit)
	default:
		newDue, newAdvance = due, advance
	}
	return newDue, newAdvance
}

// ReplayLedger folds a chronologically ordered entry sequence into running
// due/advance balances, stamping each entry's snapshot in place. The fold is
// deterministic: due never goes negative, excess credit always flows to
// advance. Returns the final balances.
func ReplayLedger(entries []LedgerEntry) (due, advance decimal.Decimal) {
	due = decimal.Zero
	advance = decimal.Zero
	for i := range entries {
		e := &entries[i]
		due, advance = ApplyEntry(due, advance, *e)
		e.RunningBalance = due
		e.AdvanceBalance = advance
	}
	return due, advance
}
