package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReportingRepository creates a repository for sales aggregates.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingReader {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingReader = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetSalesSummary(ctx context.Context, params dto.SalesSummaryParams) (*domain.SalesSummary, error) {
	// Both bounds are inclusive of the day they name.
	from := params.From
	until := params.To.AddDate(0, 0, 1)

	summary := &domain.SalesSummary{From: params.From, To: params.To}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount), 0),
		       COALESCE(SUM(tax_amount), 0),
		       COALESCE(SUM(discount_amount), 0),
		       COALESCE(SUM(amount_paid), 0),
		       COALESCE(SUM(pending_amount), 0)
		FROM invoices
		WHERE invoice_type = 'sale' AND status = 'completed'
		  AND created_at >= $1 AND created_at < $2`,
		from, until,
	).Scan(
		&summary.InvoiceCount,
		&summary.GrossSales,
		&summary.TaxCollected,
		&summary.DiscountGiven,
		&summary.AmountPaid,
		&summary.CreditExtended,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	// Return invoices carry negative totals; report the positive magnitude.
	err = r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(-total_amount), 0)
		FROM invoices
		WHERE invoice_type = 'return' AND status = 'completed'
		  AND created_at >= $1 AND created_at < $2`,
		from, until,
	).Scan(&summary.ReturnedValue)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate returns: %w", err)
	}

	return summary, nil
}
