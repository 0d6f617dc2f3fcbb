package services_test

import (
	"context"
	"testing"

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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPartyRepo *MockPartyRepository
	service       portssvc.PaymentSvcFacade
	actorID       string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewPaymentService(suite.mockPartyRepo)
	suite.actorID = uuid.NewString()
}

func (suite *PaymentServiceTestSuite) customer(due, advance int64) *domain.Party {
	return &domain.Party{
		PartyID:            uuid.NewString(),
		Type:               domain.Customer,
		Name:               "Meena",
		OutstandingBalance: decimal.NewFromInt(due),
		AdvanceBalance:     decimal.NewFromInt(advance),
		IsActive:           true,
	}
}

// --- Test Cases ---

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	resp, err := suite.service.RecordPayment(ctx, uuid.NewString(), dto.RecordPaymentRequest{
		Amount: decimal.Zero,
		Method: domain.MethodCash,
	}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ClearsDueFirst() {
	ctx := context.Background()
	party := suite.customer(300, 0)

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	var entry domain.LedgerEntry
	var change domain.PartyBalanceChange
	suite.mockPartyRepo.On("ApplyLedgerEntry", ctx, mock.AnythingOfType("domain.LedgerEntry"), mock.AnythingOfType("domain.PartyBalanceChange")).
		Run(func(args mock.Arguments) {
			entry = args.Get(1).(domain.LedgerEntry)
			change = args.Get(2).(domain.PartyBalanceChange)
		}).
		Return(nil).Once()

	resp, err := suite.service.RecordPayment(ctx, party.PartyID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(500),
		Method: domain.MethodUPI,
	}, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(decimal.NewFromInt(300).Equal(resp.AppliedToDue))
	suite.True(decimal.NewFromInt(200).Equal(resp.ToAdvance))
	suite.True(resp.OutstandingBalance.IsZero())
	suite.True(decimal.NewFromInt(200).Equal(resp.AdvanceBalance))

	suite.Equal(domain.EntryPayment, entry.Type)
	suite.True(decimal.NewFromInt(500).Equal(entry.Credit))
	suite.True(entry.RunningBalance.IsZero())
	suite.True(decimal.NewFromInt(200).Equal(entry.AdvanceBalance))
	suite.Contains(entry.Notes, "upi")

	suite.True(decimal.NewFromInt(-300).Equal(change.DueDelta))
	suite.True(decimal.NewFromInt(200).Equal(change.AdvanceDelta))

	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RepoError() {
	ctx := context.Background()
	party := suite.customer(100, 0)

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockPartyRepo.On("ApplyLedgerEntry", ctx, mock.AnythingOfType("domain.LedgerEntry"), mock.AnythingOfType("domain.PartyBalanceChange")).
		Return(apperrors.ErrBackendUnavailable).Once()

	resp, err := suite.service.RecordPayment(ctx, party.PartyID, dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(100),
		Method: domain.MethodCash,
	}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBackendUnavailable)
	suite.Nil(resp)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRefundAdvance_ExceedsHeld() {
	ctx := context.Background()
	party := suite.customer(0, 100)

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	resp, err := suite.service.RefundAdvance(ctx, party.PartyID, dto.RefundAdvanceRequest{
		Amount: decimal.NewFromInt(150),
	}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRefundAdvance_Success() {
	ctx := context.Background()
	party := suite.customer(0, 200)

	suite.mockPartyRepo.On("FindPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	var entry domain.LedgerEntry
	var change domain.PartyBalanceChange
	suite.mockPartyRepo.On("ApplyLedgerEntry", ctx, mock.AnythingOfType("domain.LedgerEntry"), mock.AnythingOfType("domain.PartyBalanceChange")).
		Run(func(args mock.Arguments) {
			entry = args.Get(1).(domain.LedgerEntry)
			change = args.Get(2).(domain.PartyBalanceChange)
		}).
		Return(nil).Once()

	resp, err := suite.service.RefundAdvance(ctx, party.PartyID, dto.RefundAdvanceRequest{
		Amount: decimal.NewFromInt(150),
	}, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.OutstandingBalance.IsZero())
	suite.True(decimal.NewFromInt(50).Equal(resp.AdvanceBalance))

	// The refund drains held advance without touching due.
	suite.Equal(domain.EntryAdjustment, entry.Type)
	suite.True(decimal.NewFromInt(150).Equal(entry.Debit))
	suite.True(change.DueDelta.IsZero())
	suite.True(decimal.NewFromInt(-150).Equal(change.AdvanceDelta))

	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
