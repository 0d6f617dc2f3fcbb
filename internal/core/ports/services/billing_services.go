package services

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// CartSvc manages per-session billing carts. A session is identified by the
// authenticated user; each session owns an isolated cart aggregate.
type CartSvc interface {
	// AddItem adds a product to the session cart, merging by product id.
	AddItem(ctx context.Context, sessionID string, req dto.AddCartItemRequest) (*dto.CartResponse, error)

	// UpdateItem replaces a line's quantity or length; zero drops the line.
	UpdateItem(ctx context.Context, sessionID string, productID string, req dto.UpdateCartItemRequest) (*dto.CartResponse, error)

	// RemoveItem drops a line from the session cart.
	RemoveItem(ctx context.Context, sessionID string, productID string) (*dto.CartResponse, error)

	// SetDiscount sets the bill-level discount.
	SetDiscount(ctx context.Context, sessionID string, req dto.SetCartDiscountRequest) (*dto.CartResponse, error)

	// SetParty selects or clears the cart's customer/supplier.
	SetParty(ctx context.Context, sessionID string, req dto.SetCartPartyRequest) (*dto.CartResponse, error)

	// GetCart returns the current cart with computed totals.
	GetCart(ctx context.Context, sessionID string) (*dto.CartResponse, error)

	// Clear empties the session cart.
	Clear(ctx context.Context, sessionID string) error
}

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	// GetInvoice retrieves an invoice with its line items.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, []domain.LineItem, error)

	// ListInvoices retrieves a filtered, paginated invoice list.
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)
}

// InvoiceWriterSvc drives the invoice lifecycle.
type InvoiceWriterSvc interface {
	// CreateDraft prices the session cart into a draft invoice. The draft
	// touches no stock and no ledger.
	CreateDraft(ctx context.Context, sessionID string, req dto.CreateDraftRequest, creatorUserID string) (*domain.Invoice, error)

	// CompleteInvoice performs the atomic draft -> completed transition:
	// payment allocation, stock re-check and deduction, party ledger update.
	CompleteInvoice(ctx context.Context, invoiceID string, req dto.CompleteInvoiceRequest, actorUserID string) (*dto.CompleteInvoiceResponse, error)

	// CancelInvoice performs the compensating completed -> cancelled
	// transition, restoring stock and reversing the ledger effect.
	CancelInvoice(ctx context.Context, invoiceID string, actorUserID string) error
}

// BillingSvcFacade combines the cart and invoice lifecycle interfaces.
type BillingSvcFacade interface {
	CartSvc
	InvoiceReaderSvc
	InvoiceWriterSvc
}
