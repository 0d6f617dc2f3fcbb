package repositories

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// InvoiceReader defines read operations for invoices and their lines.
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindLineItemsByInvoiceID retrieves all line items of one invoice in
	// insertion order.
	FindLineItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.LineItem, error)

	// FindReturnsByParentID retrieves all return invoices linked to a parent
	// sale.
	FindReturnsByParentID(ctx context.Context, parentInvoiceID string) ([]domain.Invoice, error)

	// ListInvoices retrieves a filtered, paginated invoice list using
	// token-based pagination.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error)
}

// InvoiceWriter defines write operations for the invoice lifecycle. The
// multi-table transitions are single atomic methods: either every effect
// lands or none does.
type InvoiceWriter interface {
	// NextInvoiceNumber reserves the next human-readable invoice number for
	// the given type from the per-type counter.
	NextInvoiceNumber(ctx context.Context, invoiceType domain.InvoiceType) (string, error)

	// SaveDraft persists a draft invoice with its priced line items. Drafts
	// touch no stock and no ledger.
	SaveDraft(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error

	// CompleteInvoice applies the draft -> completed transition as one
	// transaction: per-line stock re-check and deduction (with audit
	// records), invoice money/status update, party balance change and ledger
	// entry. Stock availability is re-validated inside the transaction; a
	// shortfall fails the whole transition with an insufficient-stock error
	// and the invoice stays draft.
	CompleteInvoice(ctx context.Context, completion domain.InvoiceCompletion) error

	// CancelInvoice applies the compensating completed -> cancelled
	// transaction: stock restores, reversed ledger effect, status flip.
	CancelInvoice(ctx context.Context, cancellation domain.InvoiceCancellation) error

	// SaveReturn atomically creates a completed return invoice: new invoice
	// row and items, parent line returned-amount increments, parent
	// returned_amount update, stock restores with audit records, and the
	// party credit entry.
	SaveReturn(ctx context.Context, ret domain.ReturnCompletion) error
}

// ReportingReader defines aggregate queries over completed invoices.
type ReportingReader interface {
	// GetSalesSummary aggregates completed sales and returns over a range.
	GetSalesSummary(ctx context.Context, params dto.SalesSummaryParams) (*domain.SalesSummary, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
