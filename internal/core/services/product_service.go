package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// productService implements catalog and stock operations.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates the product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *productService) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get product by code: %w", err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error) {
	products, token, err := s.productRepo.ListProducts(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, token, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}
	if req.GSTRate.IsNegative() || req.GSTRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: gst rate must be between 0 and 100", apperrors.ErrValidation)
	}
	if req.OpeningQty < 0 || req.OpeningLen.IsNegative() {
		return nil, fmt.Errorf("%w: opening stock must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Code:      req.Code,
		Name:      req.Name,
		HSNCode:   req.HSNCode,
		PriceMode: req.PriceMode,
		UnitPrice: req.UnitPrice,
		CostPrice: req.CostPrice,
		GSTRate:   req.GSTRate,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	// Opening stock goes through the adjustment path so the audit trail
	// starts at the true opening level.
	if req.OpeningQty > 0 || req.OpeningLen.IsPositive() {
		movement := domain.StockMovement{
			ProductID:     product.ProductID,
			ProductName:   product.Name,
			PriceMode:     product.PriceMode,
			QuantityDelta: req.OpeningQty,
			LengthDelta:   req.OpeningLen,
			ChangeType:    domain.OpeningStock,
		}
		if _, err := s.productRepo.AdjustStock(ctx, movement, creatorUserID, "opening stock"); err != nil {
			return nil, fmt.Errorf("failed to record opening stock: %w", err)
		}
		if product.PriceMode == domain.PerLength {
			product.StockLength = req.OpeningLen
		} else {
			product.StockQty = req.OpeningQty
		}
	}

	s.LogInfo(ctx, "Product created", "product_code", product.Code)
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product for update: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.HSNCode != nil {
		product.HSNCode = *req.HSNCode
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.CostPrice != nil {
		product.CostPrice = req.CostPrice
	}
	if req.GSTRate != nil {
		if req.GSTRate.IsNegative() || req.GSTRate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: gst rate must be between 0 and 100", apperrors.ErrValidation)
		}
		product.GSTRate = *req.GSTRate
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *productService) AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, actorUserID string) (*domain.StockAdjustment, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product for adjustment: %w", err)
	}

	switch product.PriceMode {
	case domain.PerLength:
		if req.QuantityDelta != 0 {
			return nil, fmt.Errorf("%w: product %s tracks stock by length", apperrors.ErrValidation, product.Code)
		}
		if req.LengthDelta.IsZero() {
			return nil, fmt.Errorf("%w: length delta must be non-zero", apperrors.ErrValidation)
		}
	default:
		if !req.LengthDelta.IsZero() {
			return nil, fmt.Errorf("%w: product %s tracks stock by quantity", apperrors.ErrValidation, product.Code)
		}
		if req.QuantityDelta == 0 {
			return nil, fmt.Errorf("%w: quantity delta must be non-zero", apperrors.ErrValidation)
		}
	}

	movement := domain.StockMovement{
		ProductID:     product.ProductID,
		ProductName:   product.Name,
		PriceMode:     product.PriceMode,
		QuantityDelta: req.QuantityDelta,
		LengthDelta:   req.LengthDelta,
		ChangeType:    domain.ManualUpdate,
	}

	adjustment, err := s.productRepo.AdjustStock(ctx, movement, actorUserID, req.Notes)
	if err != nil {
		s.LogError(ctx, err, "Manual stock adjustment failed", "product_code", product.Code)
		return nil, err
	}

	s.LogInfo(ctx, "Stock adjusted", "product_code", product.Code,
		"previous", adjustment.Previous.String(), "new", adjustment.New.String())
	return adjustment, nil
}

func (s *productService) ListStockAdjustments(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockAdjustment, *string, error) {
	adjustments, token, err := s.productRepo.ListAdjustmentsByProduct(ctx, productID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list stock adjustments: %w", err)
	}
	return adjustments, token, nil
}
