package dto

import (
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListLedgerParams paginates a party's ledger history.
type ListLedgerParams struct {
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// LedgerEntryResponse is one row of a party's ledger with its running
// balance snapshot.
type LedgerEntryResponse struct {
	EntryID        string          `json:"entryID"`
	Type           string          `json:"type"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	AdvanceBalance decimal.Decimal `json:"advanceBalance"`
	InvoiceID      *string         `json:"invoiceID,omitempty"`
	Notes          string          `json:"notes"`
	EntryDate      time.Time       `json:"entryDate"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:        e.EntryID,
		Type:           string(e.Type),
		Debit:          e.Debit,
		Credit:         e.Credit,
		RunningBalance: e.RunningBalance,
		AdvanceBalance: e.AdvanceBalance,
		InvoiceID:      e.InvoiceID,
		Notes:          e.Notes,
		EntryDate:      e.EntryDate,
	}
}

// LedgerResponse is a party's ledger page plus the current fold result.
type LedgerResponse struct {
	PartyID            string                `json:"partyID"`
	Entries            []LedgerEntryResponse `json:"entries"`
	OutstandingBalance decimal.Decimal       `json:"outstandingBalance"`
	AdvanceBalance     decimal.Decimal       `json:"advanceBalance"`
	NextToken          *string               `json:"nextToken,omitempty"`
}
