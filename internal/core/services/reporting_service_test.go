package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/core/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// MockReportingReader is a mock type for the ReportingReader interface
type MockReportingReader struct {
	mock.Mock
}

func (m *MockReportingReader) GetSalesSummary(ctx context.Context, params dto.SalesSummaryParams) (*domain.SalesSummary, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesSummary), args.Error(1)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingReader
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingReader)
	suite.service = services.NewReportingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestGetSalesSummary_Success() {
	ctx := context.Background()
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	expected := &domain.SalesSummary{
		From:         from,
		To:           to,
		InvoiceCount: 42,
		GrossSales:   decimal.NewFromInt(95000),
		TaxCollected: decimal.NewFromInt(8100),
	}

	suite.mockRepo.On("GetSalesSummary", ctx, dto.SalesSummaryParams{From: from, To: to}).Return(expected, nil).Once()

	summary, err := suite.service.GetSalesSummary(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(expected, summary)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetSalesSummary_InvertedRange() {
	ctx := context.Background()
	from := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	summary, err := suite.service.GetSalesSummary(ctx, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetSalesSummary")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
