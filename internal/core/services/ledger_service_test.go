package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/core/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockPartyRepo  *MockPartyRepository
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockPartyRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestGetEntries_Success() {
	ctx := context.Background()
	party := &domain.Party{
		PartyID:            uuid.NewString(),
		Type:               domain.Customer,
		Name:               "Meena",
		OutstandingBalance: decimal.NewFromInt(300),
		AdvanceBalance:     decimal.Zero,
		IsActive:           true,
	}
	entries := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), PartyID: party.PartyID, Type: domain.EntrySale, Debit: decimal.NewFromInt(500)},
		{EntryID: uuid.NewString(), PartyID: party.PartyID, Type: domain.EntryPayment, Credit: decimal.NewFromInt(200)},
	}
	params := dto.ListLedgerParams{Limit: 50}

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByParty", ctx, party.PartyID, 50, (*string)(nil)).Return(entries, nil, nil).Once()

	resp, err := suite.service.GetEntries(ctx, party.PartyID, params)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(party.PartyID, resp.PartyID)
	suite.Require().Len(resp.Entries, 2)
	suite.Equal("sale", resp.Entries[0].Type)
	suite.True(decimal.NewFromInt(300).Equal(resp.OutstandingBalance))

	suite.mockPartyRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecomputeBalances_ReplaysHistory() {
	ctx := context.Background()
	party := &domain.Party{
		PartyID:            uuid.NewString(),
		Type:               domain.Customer,
		Name:               "Meena",
		OutstandingBalance: decimal.NewFromInt(300),
		AdvanceBalance:     decimal.Zero,
		IsActive:           true,
	}
	history := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), PartyID: party.PartyID, Type: domain.EntrySale, Debit: decimal.NewFromInt(500)},
		{EntryID: uuid.NewString(), PartyID: party.PartyID, Type: domain.EntryPayment, Credit: decimal.NewFromInt(200)},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockLedgerRepo.On("FindAllEntriesByParty", ctx, party.PartyID).Return(history, nil).Once()

	due, advance, err := suite.service.RecomputeBalances(ctx, party.PartyID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(300).Equal(due))
	suite.True(advance.IsZero())

	suite.mockPartyRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecomputeBalances_OverpaidHistoryEndsInAdvance() {
	ctx := context.Background()
	party := &domain.Party{
		PartyID:            uuid.NewString(),
		Type:               domain.Customer,
		Name:               "Meena",
		OutstandingBalance: decimal.Zero,
		AdvanceBalance:     decimal.NewFromInt(150),
		IsActive:           true,
	}
	history := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), PartyID: party.PartyID, Type: domain.EntrySale, Debit: decimal.NewFromInt(350)},
		{EntryID: uuid.NewString(), PartyID: party.PartyID, Type: domain.EntryPayment, Credit: decimal.NewFromInt(500)},
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockLedgerRepo.On("FindAllEntriesByParty", ctx, party.PartyID).Return(history, nil).Once()

	due, advance, err := suite.service.RecomputeBalances(ctx, party.PartyID)

	suite.Require().NoError(err)
	suite.True(due.IsZero())
	suite.True(decimal.NewFromInt(150).Equal(advance))

	suite.mockPartyRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
