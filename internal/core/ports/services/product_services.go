package services

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// ProductReaderSvc defines read operations for the catalog.
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product by its ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetProductByCode retrieves a product by barcode/SKU code, as scanned
	// at the counter.
	GetProductByCode(ctx context.Context, code string) (*domain.Product, error)

	// ListProducts retrieves a paginated product list.
	ListProducts(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error)
}

// ProductWriterSvc defines write operations for the catalog.
type ProductWriterSvc interface {
	// CreateProduct persists a new product, writing an opening-stock audit
	// record when an opening quantity or length is given.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct updates catalog fields of an existing product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)
}

// StockSvc defines manual stock movements and audit trail reads.
type StockSvc interface {
	// AdjustStock applies a manual signed stock movement with its audit
	// record.
	AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, actorUserID string) (*domain.StockAdjustment, error)

	// ListStockAdjustments retrieves a product's append-only audit trail.
	ListStockAdjustments(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockAdjustment, *string, error)
}

// ProductSvcFacade combines all product-related service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
	StockSvc
}
