package services

import (
	"context"
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
)

// ReportingSvcFacade exposes aggregated sales figures.
type ReportingSvcFacade interface {
	// GetSalesSummary aggregates completed sale invoices inside [from, to].
	GetSalesSummary(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error)
}
