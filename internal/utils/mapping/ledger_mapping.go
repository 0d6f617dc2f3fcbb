package mapping

import (
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:        d.EntryID,
		PartyID:        d.PartyID,
		EntryType:      string(d.Type),
		Debit:          d.Debit,
		Credit:         d.Credit,
		RunningBalance: d.RunningBalance,
		AdvanceBalance: d.AdvanceBalance,
		InvoiceID:      d.InvoiceID,
		Notes:          d.Notes,
		EntryDate:      d.EntryDate,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:        m.EntryID,
		PartyID:        m.PartyID,
		Type:           domain.LedgerEntryType(m.EntryType),
		Debit:          m.Debit,
		Credit:         m.Credit,
		RunningBalance: m.RunningBalance,
		AdvanceBalance: m.AdvanceBalance,
		InvoiceID:      m.InvoiceID,
		Notes:          m.Notes,
		EntryDate:      m.EntryDate,
		CreatedBy:      m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToModelStockAdjustment converts a domain StockAdjustment to its model.
func ToModelStockAdjustment(d domain.StockAdjustment) models.StockAdjustment {
	return models.StockAdjustment{
		AdjustmentID: d.AdjustmentID,
		ProductID:    d.ProductID,
		ChangeType:   string(d.ChangeType),
		Previous:     d.Previous,
		New:          d.New,
		InvoiceID:    d.InvoiceID,
		Notes:        d.Notes,
		ActorID:      d.ActorID,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainStockAdjustment converts a model StockAdjustment to its domain form.
func ToDomainStockAdjustment(m models.StockAdjustment) domain.StockAdjustment {
	return domain.StockAdjustment{
		AdjustmentID: m.AdjustmentID,
		ProductID:    m.ProductID,
		ChangeType:   domain.StockChangeType(m.ChangeType),
		Previous:     m.Previous,
		New:          m.New,
		InvoiceID:    m.InvoiceID,
		Notes:        m.Notes,
		ActorID:      m.ActorID,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainStockAdjustmentSlice converts a slice of model StockAdjustments.
func ToDomainStockAdjustmentSlice(ms []models.StockAdjustment) []domain.StockAdjustment {
	ds := make([]domain.StockAdjustment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockAdjustment(m)
	}
	return ds
}
