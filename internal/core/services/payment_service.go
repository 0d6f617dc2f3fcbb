package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// paymentService records out-of-bill money movements against a party.
type paymentService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPaymentService creates the payment service.
func NewPaymentService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{partyRepo: partyRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) RecordPayment(ctx context.Context, partyID string, req dto.RecordPaymentRequest, actorUserID string) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party for payment: %w", err)
	}

	notes := req.Notes
	if notes == "" {
		notes = fmt.Sprintf("payment of %s received via %s", utils.FormatMoney(req.Amount), string(req.Method))
	}
	entry := newLedgerEntry(party.PartyID, domain.EntryPayment, decimal.Zero, req.Amount.Round(2), nil, notes, actorUserID, time.Now())

	change := foldEntries(party, []domain.LedgerEntry{entry})
	entry.RunningBalance = party.OutstandingBalance.Add(change.DueDelta)
	entry.AdvanceBalance = party.AdvanceBalance.Add(change.AdvanceDelta)

	if err := s.partyRepo.ApplyLedgerEntry(ctx, entry, *change); err != nil {
		s.LogError(ctx, err, "Payment recording failed", "party_id", party.PartyID)
		return nil, err
	}

	appliedToDue := change.DueDelta.Neg()
	s.LogInfo(ctx, "Payment recorded", "party_id", party.PartyID,
		"amount", req.Amount.String(), "applied_to_due", appliedToDue.String())

	return &dto.PaymentResponse{
		PartyID:            party.PartyID,
		AppliedToDue:       appliedToDue,
		ToAdvance:          change.AdvanceDelta,
		OutstandingBalance: party.OutstandingBalance.Add(change.DueDelta),
		AdvanceBalance:     party.AdvanceBalance.Add(change.AdvanceDelta),
	}, nil
}

func (s *paymentService) RefundAdvance(ctx context.Context, partyID string, req dto.RefundAdvanceRequest, actorUserID string) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: refund amount must be positive", apperrors.ErrValidation)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party for refund: %w", err)
	}
	if req.Amount.GreaterThan(party.AdvanceBalance) {
		return nil, fmt.Errorf("%w: refund %s exceeds held advance %s",
			apperrors.ErrValidation, req.Amount.String(), party.AdvanceBalance.String())
	}

	notes := req.Notes
	if notes == "" {
		notes = fmt.Sprintf("advance of %s refunded", utils.FormatMoney(req.Amount))
	}
	entry := newLedgerEntry(party.PartyID, domain.EntryAdjustment, req.Amount.Round(2), decimal.Zero, nil, notes, actorUserID, time.Now())

	change := foldEntries(party, []domain.LedgerEntry{entry})
	entry.RunningBalance = party.OutstandingBalance.Add(change.DueDelta)
	entry.AdvanceBalance = party.AdvanceBalance.Add(change.AdvanceDelta)

	if err := s.partyRepo.ApplyLedgerEntry(ctx, entry, *change); err != nil {
		s.LogError(ctx, err, "Advance refund failed", "party_id", party.PartyID)
		return nil, err
	}

	s.LogInfo(ctx, "Advance refunded", "party_id", party.PartyID, "amount", req.Amount.String())

	return &dto.PaymentResponse{
		PartyID:            party.PartyID,
		AppliedToDue:       decimal.Zero,
		ToAdvance:          change.AdvanceDelta,
		OutstandingBalance: party.OutstandingBalance.Add(change.DueDelta),
		AdvanceBalance:     party.AdvanceBalance.Add(change.AdvanceDelta),
	}, nil
}
