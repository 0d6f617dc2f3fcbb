package services

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// ReturnSvcFacade drives partial and full returns against completed sales.
type ReturnSvcFacade interface {
	// ListReturnable computes the per-line returnable remainder for a
	// completed sale, accounting for all prior returns.
	ListReturnable(ctx context.Context, invoiceID string) ([]domain.ReturnableItem, error)

	// ProcessReturn creates a completed return invoice against the parent
	// sale: validates remainders, prices the return at original sale rates,
	// restores stock and applies the credit to the party (due first, excess
	// to advance).
	ProcessReturn(ctx context.Context, parentInvoiceID string, req dto.ProcessReturnRequest, actorUserID string) (*domain.ReturnResult, error)
}
