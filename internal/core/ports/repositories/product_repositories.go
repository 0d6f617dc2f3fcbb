package repositories

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
)

// ProductReader defines read operations for the catalog and stock levels.
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByCode retrieves a product by its barcode/SKU code.
	FindProductByCode(ctx context.Context, code string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products keyed by ID.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a paginated product list using token-based
	// pagination. It returns the products, a token for the next page, and an
	// error.
	ListProducts(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error)
}

// ProductWriter defines write operations for the catalog.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates catalog fields of an existing product. Stock
	// levels are never written through this path; they move only via
	// AdjustStock or an invoice transaction.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// AdjustStock applies one manual stock movement and its audit record
	// atomically. The repository re-reads the current level inside the
	// transaction; a deduction below zero fails with an insufficient-stock
	// error.
	AdjustStock(ctx context.Context, movement domain.StockMovement, actorID string, notes string) (*domain.StockAdjustment, error)
}

// StockAuditReader defines read access to the append-only stock trail.
type StockAuditReader interface {
	// ListAdjustmentsByProduct retrieves the audit trail for one product,
	// newest first, with token-based pagination.
	ListAdjustmentsByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockAdjustment, *string, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	StockAuditReader
}
