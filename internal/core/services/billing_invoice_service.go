package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/utils/billing"
	"github.com/shopspring/decimal"
)

func (s *billingService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, []domain.LineItem, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	items, err := s.invoiceRepo.FindLineItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get invoice items: %w", err)
	}
	return invoice, items, nil
}

func (s *billingService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	resp := &dto.ListInvoicesResponse{NextToken: nextToken}
	for i := range invoices {
		resp.Invoices = append(resp.Invoices, dto.ToInvoiceResponse(&invoices[i], nil))
	}
	return resp, nil
}

// draftParty validates the cart's party against the draft type. Purchases
// need a supplier; a sale's party, when present, must be a customer.
func (s *billingService) draftParty(ctx context.Context, invoiceType domain.InvoiceType, partyID *string) (*domain.Party, error) {
	if partyID == nil {
		if invoiceType == domain.Purchase {
			return nil, fmt.Errorf("%w: a purchase requires a supplier", apperrors.ErrValidation)
		}
		return nil, nil
	}

	party, err := s.partyRepo.FindPartyByID(ctx, *partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party for draft: %w", err)
	}
	switch invoiceType {
	case domain.Purchase:
		if party.Type != domain.Supplier {
			return nil, fmt.Errorf("%w: party %s is not a supplier", apperrors.ErrValidation, party.Name)
		}
	default:
		if party.Type != domain.Customer {
			return nil, fmt.Errorf("%w: party %s is not a customer", apperrors.ErrValidation, party.Name)
		}
	}
	return party, nil
}

func (s *billingService) CreateDraft(ctx context.Context, sessionID string, req dto.CreateDraftRequest, creatorUserID string) (*domain.Invoice, error) {
	s.mu.Lock()
	cart := *s.cart(sessionID)
	cart.Items = append([]domain.CartItem(nil), s.cart(sessionID).Items...)
	s.mu.Unlock()

	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}

	party, err := s.draftParty(ctx, req.Type, cart.PartyID)
	if err != nil {
		return nil, err
	}

	placeOfSupply := ""
	if party != nil {
		placeOfSupply = party.StateCode
	}
	isInterState := billing.IsInterState(s.shopStateCode, placeOfSupply)

	lines := billing.PriceCartItems(cart.Items, cart.DiscountAmount, isInterState)
	totals := billing.CalculateCartTotals(cart.Items, cart.DiscountAmount)

	number, err := s.invoiceRepo.NextInvoiceNumber(ctx, req.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve invoice number: %w", err)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:          uuid.NewString(),
		InvoiceNumber:      number,
		Type:               req.Type,
		Status:             domain.Draft,
		PartyID:            cart.PartyID,
		PlaceOfSupplyState: placeOfSupply,
		Subtotal:           totals.Subtotal,
		TaxAmount:          totals.TaxAmount,
		DiscountAmount:     totals.DiscountAmount,
		TotalAmount:        totals.TotalAmount,
		AmountPaid:         decimal.Zero,
		PendingAmount:      decimal.Zero,
		ReturnedAmount:     decimal.Zero,
		Notes:              req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	for i := range lines {
		lines[i].LineItemID = uuid.NewString()
		lines[i].InvoiceID = invoice.InvoiceID
	}

	if err := s.invoiceRepo.SaveDraft(ctx, invoice, lines); err != nil {
		return nil, fmt.Errorf("failed to save draft invoice: %w", err)
	}

	s.LogInfo(ctx, "Draft invoice created", "invoice_number", number, "type", string(req.Type))

	s.mu.Lock()
	s.cart(sessionID).Clear()
	s.mu.Unlock()

	return &invoice, nil
}

// foldEntries stamps running balance snapshots onto entries starting from the
// party's current balances and returns the resulting balance change.
func foldEntries(party *domain.Party, entries []domain.LedgerEntry) *domain.PartyBalanceChange {
	if party == nil || len(entries) == 0 {
		return nil
	}
	due := party.OutstandingBalance
	advance := party.AdvanceBalance
	for i := range entries {
		due, advance = domain.ApplyEntry(due, advance, entries[i])
		entries[i].RunningBalance = due
		entries[i].AdvanceBalance = advance
	}
	return &domain.PartyBalanceChange{
		PartyID:      party.PartyID,
		DueDelta:     due.Sub(party.OutstandingBalance),
		AdvanceDelta: advance.Sub(party.AdvanceBalance),
	}
}

func newLedgerEntry(partyID string, entryType domain.LedgerEntryType, debit, credit decimal.Decimal, invoiceID *string, notes, actorID string, at time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		PartyID:   partyID,
		Type:      entryType,
		Debit:     debit,
		Credit:    credit,
		InvoiceID: invoiceID,
		Notes:     notes,
		EntryDate: at,
		CreatedBy: actorID,
	}
}

// completionEntries builds the ledger records for a completed invoice.
//
// A sale debits the full total and immediately credits the money received,
// so the net due movement is the credit portion. A purchase only debits the
// unpaid portion owed to the supplier. Advance drawn against the bill is a
// separate adjustment debit so the replay drains held advance.
func completionEntries(invoice domain.Invoice, split domain.PaymentSplit, alloc domain.PaymentAllocation, actorID string, at time.Time) []domain.LedgerEntry {
	if invoice.PartyID == nil {
		return nil
	}
	partyID := *invoice.PartyID
	invoiceID := invoice.InvoiceID

	var entries []domain.LedgerEntry
	if invoice.Type == domain.Purchase {
		if alloc.Pending.IsPositive() {
			entries = append(entries, newLedgerEntry(partyID, domain.EntryPurchase, alloc.Pending, decimal.Zero, &invoiceID, invoice.InvoiceNumber, actorID, at))
		}
		if alloc.AdvanceCreated.IsPositive() {
			entries = append(entries, newLedgerEntry(partyID, domain.EntryPayment, decimal.Zero, alloc.AdvanceCreated, &invoiceID, "overpayment held as advance", actorID, at))
		}
	} else {
		entries = append(entries, newLedgerEntry(partyID, domain.EntrySale, invoice.TotalAmount, decimal.Zero, &invoiceID, invoice.InvoiceNumber, actorID, at))
		if split.MoneyTotal().IsPositive() {
			entries = append(entries, newLedgerEntry(partyID, domain.EntryPayment, decimal.Zero, split.MoneyTotal(), &invoiceID, "payment at billing", actorID, at))
		}
	}
	if split.AdvanceUsed.IsPositive() {
		entries = append(entries, newLedgerEntry(partyID, domain.EntryAdjustment, split.AdvanceUsed, decimal.Zero, &invoiceID, "advance applied to bill", actorID, at))
	}
	return entries
}

func (s *billingService) CompleteInvoice(ctx context.Context, invoiceID string, req dto.CompleteInvoiceRequest, actorUserID string) (*dto.CompleteInvoiceResponse, error) {
	invoice, items, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.CanComplete() {
		return nil, fmt.Errorf("%w: invoice %s is %s, only drafts can be completed", apperrors.ErrStateConflict, invoice.InvoiceNumber, invoice.Status)
	}

	var party *domain.Party
	if invoice.PartyID != nil {
		party, err = s.partyRepo.FindPartyByID(ctx, *invoice.PartyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load party for completion: %w", err)
		}
	}

	split := req.Split()
	alloc, err := billing.AllocatePayment(invoice.TotalAmount, split, party != nil)
	if err != nil {
		return nil, err
	}
	if split.AdvanceUsed.IsPositive() && party != nil && split.AdvanceUsed.GreaterThan(party.AdvanceBalance) {
		return nil, fmt.Errorf("%w: advance used %s exceeds held advance %s", apperrors.ErrValidation, split.AdvanceUsed.String(), party.AdvanceBalance.String())
	}

	deduct := invoice.Type != domain.Purchase
	movements := make([]domain.StockMovement, 0, len(items))
	for _, li := range items {
		m := domain.StockMovement{
			ProductID:     li.ProductID,
			ProductName:   li.ProductName,
			PriceMode:     li.PriceMode,
			QuantityDelta: li.Quantity,
			LengthDelta:   li.Length,
			ChangeType:    domain.PurchaseAddition,
		}
		if deduct {
			m.QuantityDelta = -li.Quantity
			m.LengthDelta = li.Length.Neg()
			m.ChangeType = domain.SaleDeduction
		}
		movements = append(movements, m)
	}

	now := time.Now()
	completed := *invoice
	completed.Status = domain.Completed
	completed.AmountPaid = alloc.AmountPaid
	completed.PendingAmount = alloc.Pending
	completed.LastUpdatedAt = now
	completed.LastUpdatedBy = actorUserID

	entries := completionEntries(completed, split, alloc, actorUserID, now)
	change := foldEntries(party, entries)

	err = s.invoiceRepo.CompleteInvoice(ctx, domain.InvoiceCompletion{
		Invoice:     completed,
		Movements:   movements,
		PartyChange: change,
		Entries:     entries,
	})
	if err != nil {
		s.LogError(ctx, err, "Invoice completion failed", "invoice_number", invoice.InvoiceNumber)
		return nil, err
	}

	s.LogInfo(ctx, "Invoice completed", "invoice_number", invoice.InvoiceNumber,
		"total", completed.TotalAmount.String(), "pending", alloc.Pending.String())

	// Report the advance the ledger actually gained. When the party carried
	// older dues, the fold absorbs part of the excess into those dues and
	// the allocator's figure overstates what the books now hold.
	advanceCreated := alloc.AdvanceCreated
	if change != nil {
		advanceCreated = change.AdvanceDelta.Add(split.AdvanceUsed)
		if advanceCreated.IsNegative() {
			advanceCreated = decimal.Zero
		}
	}

	return &dto.CompleteInvoiceResponse{
		InvoiceID:      completed.InvoiceID,
		InvoiceNumber:  completed.InvoiceNumber,
		AmountPaid:     alloc.AmountPaid,
		PendingAmount:  alloc.Pending,
		AdvanceCreated: advanceCreated,
	}, nil
}

func (s *billingService) CancelInvoice(ctx context.Context, invoiceID string, actorUserID string) error {
	invoice, items, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}
	if !invoice.CanCancel() {
		return fmt.Errorf("%w: invoice %s is %s and cannot be cancelled", apperrors.ErrStateConflict, invoice.InvoiceNumber, invoice.Status)
	}

	var party *domain.Party
	if invoice.PartyID != nil {
		party, err = s.partyRepo.FindPartyByID(ctx, *invoice.PartyID)
		if err != nil {
			return fmt.Errorf("failed to load party for cancellation: %w", err)
		}
	}

	// Reverse the stock effect of completion. Cancelling a purchase removes
	// the added stock again, so it can fail on insufficient stock if the
	// goods were already sold on.
	restore := invoice.Type != domain.Purchase
	movements := make([]domain.StockMovement, 0, len(items))
	for _, li := range items {
		m := domain.StockMovement{
			ProductID:     li.ProductID,
			ProductName:   li.ProductName,
			PriceMode:     li.PriceMode,
			QuantityDelta: -li.Quantity,
			LengthDelta:   li.Length.Neg(),
			ChangeType:    domain.CancellationRestore,
		}
		if restore {
			m.QuantityDelta = li.Quantity
			m.LengthDelta = li.Length
		}
		movements = append(movements, m)
	}

	now := time.Now()
	cancelled := *invoice
	cancelled.Status = domain.Cancelled
	cancelled.LastUpdatedAt = now
	cancelled.LastUpdatedBy = actorUserID

	// The invoice's due contribution is reversed and any money taken is held
	// as advance for the party until refunded.
	var entries []domain.LedgerEntry
	if party != nil {
		reversal := invoice.PendingAmount.Add(invoice.AmountPaid)
		if reversal.IsPositive() {
			entries = append(entries, newLedgerEntry(party.PartyID, domain.EntryAdjustment, decimal.Zero, reversal,
				&cancelled.InvoiceID, fmt.Sprintf("cancellation of %s", invoice.InvoiceNumber), actorUserID, now))
		}
	}
	change := foldEntries(party, entries)

	err = s.invoiceRepo.CancelInvoice(ctx, domain.InvoiceCancellation{
		Invoice:     cancelled,
		Movements:   movements,
		PartyChange: change,
		Entries:     entries,
	})
	if err != nil {
		s.LogError(ctx, err, "Invoice cancellation failed", "invoice_number", invoice.InvoiceNumber)
		return err
	}

	s.LogInfo(ctx, "Invoice cancelled", "invoice_number", invoice.InvoiceNumber)
	return nil
}
