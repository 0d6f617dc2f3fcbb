package services

import (
	"context"

	"github.com/vastram/retail_pos_backend/internal/dto"
)

// PaymentSvcFacade records out-of-bill money movements against a party.
type PaymentSvcFacade interface {
	// RecordPayment applies a received payment to the party: due is cleared
	// first and any excess becomes advance.
	RecordPayment(ctx context.Context, partyID string, req dto.RecordPaymentRequest, actorUserID string) (*dto.PaymentResponse, error)

	// RefundAdvance pays out part of a party's held advance. Refunding more
	// than the held advance fails validation.
	RefundAdvance(ctx context.Context, partyID string, req dto.RefundAdvanceRequest, actorUserID string) (*dto.PaymentResponse, error)
}
