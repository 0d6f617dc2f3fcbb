package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/core/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// --- Test Suite Setup ---

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
	actorID  string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
	suite.actorID = uuid.NewString()
}

// --- Test Cases ---

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Code:      "SAREE-B",
		Name:      "Cotton Saree",
		HSNCode:   "5208",
		PriceMode: domain.PerUnit,
		UnitPrice: decimal.NewFromInt(250),
		GSTRate:   decimal.NewFromInt(5),
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.Equal(req.Code, product.Code)
	suite.Equal(req.Name, product.Name)
	suite.True(product.IsActive)
	suite.Equal(int64(0), product.StockQty)
	suite.Equal(suite.actorID, product.CreatedBy)
	suite.WithinDuration(time.Now(), product.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_OpeningStockGoesThroughAuditTrail() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Code:       "SHIRT-L",
		Name:       "Formal Shirt L",
		PriceMode:  domain.PerUnit,
		UnitPrice:  decimal.NewFromInt(590),
		GSTRate:    decimal.NewFromInt(18),
		OpeningQty: 10,
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	var movement domain.StockMovement
	suite.mockRepo.On("AdjustStock", ctx, mock.AnythingOfType("domain.StockMovement"), suite.actorID, "opening stock").
		Run(func(args mock.Arguments) {
			movement = args.Get(1).(domain.StockMovement)
		}).
		Return(&domain.StockAdjustment{
			AdjustmentID: uuid.NewString(),
			ChangeType:   domain.OpeningStock,
			Previous:     decimal.Zero,
			New:          decimal.NewFromInt(10),
		}, nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(int64(10), product.StockQty)
	suite.Equal(domain.OpeningStock, movement.ChangeType)
	suite.Equal(int64(10), movement.QuantityDelta)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Code:      "BAD",
		Name:      "Bad Product",
		PriceMode: domain.PerUnit,
		UnitPrice: decimal.NewFromInt(-1),
	}

	product, err := suite.service.CreateProduct(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(product)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct")
}

func (suite *ProductServiceTestSuite) TestCreateProduct_GSTRateOutOfRange() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Code:      "BAD",
		Name:      "Bad Product",
		PriceMode: domain.PerUnit,
		UnitPrice: decimal.NewFromInt(100),
		GSTRate:   decimal.NewFromInt(120),
	}

	product, err := suite.service.CreateProduct(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(product)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct")
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_Success() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID: uuid.NewString(),
		Code:      "SAREE-B",
		Name:      "Cotton Saree",
		PriceMode: domain.PerUnit,
		UnitPrice: decimal.NewFromInt(250),
		GSTRate:   decimal.NewFromInt(5),
		IsActive:  true,
	}
	newName := "Cotton Saree Blue"
	newPrice := decimal.NewFromInt(275)

	suite.mockRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, existing.ProductID, dto.UpdateProductRequest{
		Name:      &newName,
		UnitPrice: &newPrice,
	}, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(newName, product.Name)
	suite.True(newPrice.Equal(product.UnitPrice))
	suite.Equal(suite.actorID, product.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestAdjustStock_ModeMismatch() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID:   uuid.NewString(),
		Code:        "FAB-R",
		Name:        "Shirting Fabric",
		PriceMode:   domain.PerLength,
		UnitPrice:   decimal.NewFromInt(180),
		StockLength: decimal.NewFromInt(40),
		IsActive:    true,
	}

	suite.mockRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()

	adjustment, err := suite.service.AdjustStock(ctx, existing.ProductID, dto.AdjustStockRequest{
		QuantityDelta: 5,
	}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(adjustment)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdjustStock")
}

func (suite *ProductServiceTestSuite) TestAdjustStock_ZeroDelta() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID: uuid.NewString(),
		Code:      "SHIRT-L",
		Name:      "Formal Shirt L",
		PriceMode: domain.PerUnit,
		UnitPrice: decimal.NewFromInt(590),
		IsActive:  true,
	}

	suite.mockRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()

	adjustment, err := suite.service.AdjustStock(ctx, existing.ProductID, dto.AdjustStockRequest{}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(adjustment)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdjustStock")
}

func (suite *ProductServiceTestSuite) TestAdjustStock_Success() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID: uuid.NewString(),
		Code:      "SHIRT-L",
		Name:      "Formal Shirt L",
		PriceMode: domain.PerUnit,
		UnitPrice: decimal.NewFromInt(590),
		StockQty:  25,
		IsActive:  true,
	}

	suite.mockRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()

	var movement domain.StockMovement
	suite.mockRepo.On("AdjustStock", ctx, mock.AnythingOfType("domain.StockMovement"), suite.actorID, "shop soiled").
		Run(func(args mock.Arguments) {
			movement = args.Get(1).(domain.StockMovement)
		}).
		Return(&domain.StockAdjustment{
			AdjustmentID: uuid.NewString(),
			ProductID:    existing.ProductID,
			ChangeType:   domain.ManualUpdate,
			Previous:     decimal.NewFromInt(25),
			New:          decimal.NewFromInt(22),
		}, nil).Once()

	adjustment, err := suite.service.AdjustStock(ctx, existing.ProductID, dto.AdjustStockRequest{
		QuantityDelta: -3,
		Notes:         "shop soiled",
	}, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(adjustment)
	suite.True(decimal.NewFromInt(22).Equal(adjustment.New))
	suite.Equal(domain.ManualUpdate, movement.ChangeType)
	suite.Equal(int64(-3), movement.QuantityDelta)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestAdjustStock_InsufficientStock() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID: uuid.NewString(),
		Code:      "SHIRT-L",
		Name:      "Formal Shirt L",
		PriceMode: domain.PerUnit,
		UnitPrice: decimal.NewFromInt(590),
		StockQty:  2,
		IsActive:  true,
	}

	suite.mockRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockRepo.On("AdjustStock", ctx, mock.AnythingOfType("domain.StockMovement"), suite.actorID, "").
		Return(nil, apperrors.ErrInsufficientStock).Once()

	adjustment, err := suite.service.AdjustStock(ctx, existing.ProductID, dto.AdjustStockRequest{
		QuantityDelta: -5,
	}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Nil(adjustment)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
