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
	"github.com/vastram/retail_pos_backend/internal/utils/billing"
	"github.com/vastram/retail_pos_backend/pkg/config"
	"github.com/shopspring/decimal"
)

// returnService implements partial and full returns against completed sales.
type returnService struct {
	BaseService
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	partyRepo     portsrepo.PartyRepositoryFacade
	shopStateCode string
}

// NewReturnService creates the return service.
func NewReturnService(cfg *config.Config, invoiceRepo portsrepo.InvoiceRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade) portssvc.ReturnSvcFacade {
	return &returnService{
		invoiceRepo:   invoiceRepo,
		partyRepo:     partyRepo,
		shopStateCode: cfg.ShopStateCode,
	}
}

var _ portssvc.ReturnSvcFacade = (*returnService)(nil)

// returnableParent loads and validates the parent sale for a return flow.
func (s *returnService) returnableParent(ctx context.Context, invoiceID string) (*domain.Invoice, []domain.LineItem, error) {
	parent, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load parent invoice: %w", err)
	}
	if parent.Type != domain.Sale || parent.Status != domain.Completed {
		return nil, nil, fmt.Errorf("%w: only completed sales are returnable, invoice %s is a %s %s",
			apperrors.ErrStateConflict, parent.InvoiceNumber, string(parent.Status), string(parent.Type))
	}
	items, err := s.invoiceRepo.FindLineItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load parent line items: %w", err)
	}
	return parent, items, nil
}

func (s *returnService) ListReturnable(ctx context.Context, invoiceID string) ([]domain.ReturnableItem, error) {
	_, items, err := s.returnableParent(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	returnable := make([]domain.ReturnableItem, 0, len(items))
	for _, li := range items {
		returnable = append(returnable, domain.ReturnableItem{
			LineItemID:          li.LineItemID,
			ProductID:           li.ProductID,
			ProductName:         li.ProductName,
			PriceMode:           li.PriceMode,
			UnitPrice:           li.UnitPrice,
			GSTRate:             li.GSTRate,
			OriginalAmount:      li.BilledAmount(),
			ReturnedAmount:      li.ReturnedAmount(),
			ReturnableRemainder: li.ReturnableRemainder(),
		})
	}
	return returnable, nil
}

// requestedAmount validates one return request line against its parent line
// and returns the quantity-or-length being returned.
func requestedAmount(line *domain.LineItem, req dto.ReturnLineRequest) (decimal.Decimal, error) {
	var requested decimal.Decimal
	switch line.PriceMode {
	case domain.PerLength:
		if req.Quantity != 0 || !req.Length.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: line %s is returned by length", apperrors.ErrValidation, line.LineItemID)
		}
		requested = req.Length
	default:
		if req.Length.IsPositive() || req.Quantity < 1 {
			return decimal.Zero, fmt.Errorf("%w: line %s is returned by quantity", apperrors.ErrValidation, line.LineItemID)
		}
		requested = decimal.NewFromInt(req.Quantity)
	}

	// Over-request indicates a stale view or a bug upstream; it is rejected,
	// never clamped.
	if requested.GreaterThan(line.ReturnableRemainder()) {
		return decimal.Zero, fmt.Errorf("%w: requested %s exceeds returnable remainder %s on line %s",
			apperrors.ErrStateConflict, requested.String(), line.ReturnableRemainder().String(), line.LineItemID)
	}
	return requested, nil
}

func (s *returnService) ProcessReturn(ctx context.Context, parentInvoiceID string, req dto.ProcessReturnRequest, actorUserID string) (*domain.ReturnResult, error) {
	parent, parentItems, err := s.returnableParent(ctx, parentInvoiceID)
	if err != nil {
		return nil, err
	}

	linesByID := make(map[string]*domain.LineItem, len(parentItems))
	for i := range parentItems {
		linesByID[parentItems[i].LineItemID] = &parentItems[i]
	}

	var party *domain.Party
	if parent.PartyID != nil {
		party, err = s.partyRepo.FindPartyByID(ctx, *parent.PartyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load party for return: %w", err)
		}
	}

	now := time.Now()
	returnInvoiceID := uuid.NewString()
	isInterState := billing.IsInterState(s.shopStateCode, parent.PlaceOfSupplyState)

	returnAmount := decimal.Zero
	taxableSum := decimal.Zero
	taxSum := decimal.Zero
	returnItems := make([]domain.LineItem, 0, len(req.Items))
	lineDeltas := make([]domain.LineReturnDelta, 0, len(req.Items))
	movements := make([]domain.StockMovement, 0, len(req.Items))

	seen := make(map[string]bool, len(req.Items))
	for _, itemReq := range req.Items {
		line, ok := linesByID[itemReq.LineItemID]
		if !ok {
			return nil, fmt.Errorf("%w: line %s is not on invoice %s", apperrors.ErrNotFound, itemReq.LineItemID, parent.InvoiceNumber)
		}
		if seen[itemReq.LineItemID] {
			return nil, fmt.Errorf("%w: line %s requested twice", apperrors.ErrValidation, itemReq.LineItemID)
		}
		seen[itemReq.LineItemID] = true

		requested, err := requestedAmount(line, itemReq)
		if err != nil {
			return nil, err
		}

		// Value the return at the original sale pricing, never the current
		// catalog price.
		gross := line.UnitPrice.Mul(requested).Round(2)
		taxable, gst := billing.CalcInclusiveLine(gross, line.GSTRate)
		cgst, sgst, igst := billing.SplitGST(isInterState, gst)

		returnAmount = returnAmount.Add(gross)
		taxableSum = taxableSum.Add(taxable)
		taxSum = taxSum.Add(gross.Sub(taxable))

		returnItems = append(returnItems, domain.LineItem{
			LineItemID:   uuid.NewString(),
			InvoiceID:    returnInvoiceID,
			ProductID:    line.ProductID,
			ProductCode:  line.ProductCode,
			ProductName:  line.ProductName,
			HSNCode:      line.HSNCode,
			PriceMode:    line.PriceMode,
			Quantity:     itemReq.Quantity,
			Length:       itemReq.Length,
			UnitPrice:    line.UnitPrice,
			CostPrice:    line.CostPrice,
			GSTRate:      line.GSTRate,
			LineTotal:    gross,
			TaxableValue: taxable,
			CGST:         cgst.Round(2),
			SGST:         sgst.Round(2),
			IGST:         igst.Round(2),
		})
		lineDeltas = append(lineDeltas, domain.LineReturnDelta{
			LineItemID:    line.LineItemID,
			QuantityDelta: itemReq.Quantity,
			LengthDelta:   itemReq.Length,
		})
		movements = append(movements, domain.StockMovement{
			ProductID:     line.ProductID,
			ProductName:   line.ProductName,
			PriceMode:     line.PriceMode,
			QuantityDelta: itemReq.Quantity,
			LengthDelta:   itemReq.Length,
			ChangeType:    domain.ReturnRestock,
		})
	}

	number, err := s.invoiceRepo.NextInvoiceNumber(ctx, domain.Return)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve return invoice number: %w", err)
	}

	// Return invoices carry negative totals by convention so ledger views
	// read them as credits. Line values stay positive magnitudes.
	returnInvoice := domain.Invoice{
		InvoiceID:          returnInvoiceID,
		InvoiceNumber:      number,
		Type:               domain.Return,
		Status:             domain.Completed,
		PartyID:            parent.PartyID,
		PlaceOfSupplyState: parent.PlaceOfSupplyState,
		Subtotal:           taxableSum.Round(2).Neg(),
		TaxAmount:          taxSum.Round(2).Neg(),
		DiscountAmount:     decimal.Zero,
		TotalAmount:        returnAmount.Neg(),
		ParentInvoiceID:    &parent.InvoiceID,
		Notes:              req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	appliedToDue := decimal.Zero
	toAdvance := decimal.Zero
	var entries []domain.LedgerEntry
	if party != nil {
		appliedToDue = decimal.Min(returnAmount, party.OutstandingBalance)
		toAdvance = returnAmount.Sub(appliedToDue)
		entries = append(entries, newLedgerEntry(party.PartyID, domain.EntryReturn, decimal.Zero, returnAmount,
			&returnInvoiceID, fmt.Sprintf("return %s against %s", number, parent.InvoiceNumber), actorUserID, now))
	}
	change := foldEntries(party, entries)

	err = s.invoiceRepo.SaveReturn(ctx, domain.ReturnCompletion{
		ReturnInvoice:   returnInvoice,
		Items:           returnItems,
		ParentInvoiceID: parent.InvoiceID,
		ReturnAmount:    returnAmount,
		LineDeltas:      lineDeltas,
		Movements:       movements,
		PartyChange:     change,
		Entries:         entries,
	})
	if err != nil {
		s.LogError(ctx, err, "Return processing failed", "parent_invoice", parent.InvoiceNumber)
		return nil, err
	}

	s.LogInfo(ctx, "Return processed", "return_number", number,
		"parent_invoice", parent.InvoiceNumber, "return_amount", returnAmount.String())

	return &domain.ReturnResult{
		ReturnInvoiceID:     returnInvoiceID,
		ReturnInvoiceNumber: number,
		ReturnAmount:        returnAmount,
		AppliedToDue:        appliedToDue,
		ToAdvance:           toAdvance,
	}, nil
}
