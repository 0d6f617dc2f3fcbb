package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/vastram/retail_pos_backend/internal/apperrors"
	"github.com/vastram/retail_pos_backend/internal/core/domain"
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/internal/dto"
	"github.com/vastram/retail_pos_backend/internal/utils/billing"
	"github.com/vastram/retail_pos_backend/pkg/config"
	"github.com/shopspring/decimal"
)

// billingService implements the cart and invoice lifecycle operations. Carts
// live in memory, keyed by session; each session owns an isolated aggregate
// so two counters never bill into the same cart.
type billingService struct {
	BaseService
	productRepo   portsrepo.ProductRepositoryFacade
	partyRepo     portsrepo.PartyRepositoryFacade
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	shopStateCode string

	mu    sync.Mutex
	carts map[string]*domain.Cart
}

// NewBillingService creates the billing service.
func NewBillingService(cfg *config.Config, productRepo portsrepo.ProductRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.BillingSvcFacade {
	return &billingService{
		productRepo:   productRepo,
		partyRepo:     partyRepo,
		invoiceRepo:   invoiceRepo,
		shopStateCode: cfg.ShopStateCode,
		carts:         make(map[string]*domain.Cart),
	}
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// cart returns the session's cart, creating it on first use. Callers must
// hold s.mu.
func (s *billingService) cart(sessionID string) *domain.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &domain.Cart{}
		s.carts[sessionID] = c
	}
	return c
}

func (s *billingService) cartResponse(c *domain.Cart) *dto.CartResponse {
	totals := billing.CalculateCartTotals(c.Items, c.DiscountAmount)
	resp := dto.ToCartResponse(c, totals)
	return &resp
}

// validateModeAmounts checks that the quantity/length pair matches the
// product's price mode.
func validateModeAmounts(mode domain.PriceMode, code string, quantity int64, length decimal.Decimal) error {
	switch mode {
	case domain.PerLength:
		if quantity != 0 {
			return fmt.Errorf("%w: product %s is billed by length, not quantity", apperrors.ErrValidation, code)
		}
		if !length.IsPositive() {
			return fmt.Errorf("%w: length must be positive for product %s", apperrors.ErrValidation, code)
		}
	default:
		if length.IsPositive() {
			return fmt.Errorf("%w: product %s is billed by quantity, not length", apperrors.ErrValidation, code)
		}
		if quantity < 1 {
			return fmt.Errorf("%w: quantity must be at least 1 for product %s", apperrors.ErrValidation, code)
		}
	}
	return nil
}

func (s *billingService) AddItem(ctx context.Context, sessionID string, req dto.AddCartItemRequest) (*dto.CartResponse, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product for cart: %w", err)
	}
	if !product.IsActive {
		return nil, fmt.Errorf("%w: product %s is inactive", apperrors.ErrValidation, product.Code)
	}
	if err := validateModeAmounts(product.PriceMode, product.Code, req.Quantity, req.Length); err != nil {
		return nil, err
	}

	item := domain.CartItem{
		ProductID:   product.ProductID,
		ProductCode: product.Code,
		ProductName: product.Name,
		HSNCode:     product.HSNCode,
		PriceMode:   product.PriceMode,
		Quantity:    req.Quantity,
		Length:      req.Length,
		UnitPrice:   product.UnitPrice,
		CostPrice:   product.CostPrice,
		GSTRate:     product.GSTRate,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.AddItem(item)
	return s.cartResponse(c), nil
}

func (s *billingService) UpdateItem(ctx context.Context, sessionID string, productID string, req dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	line := c.Item(productID)
	if line == nil {
		return nil, fmt.Errorf("%w: product %s not in cart", apperrors.ErrNotFound, productID)
	}
	// Both amounts at zero drops the line; anything else must fit the
	// line's price mode.
	dropping := req.Quantity <= 0 && !req.Length.IsPositive()
	if !dropping {
		if err := validateModeAmounts(line.PriceMode, line.ProductCode, req.Quantity, req.Length); err != nil {
			return nil, err
		}
	}
	c.UpdateItem(productID, req.Quantity, req.Length)
	return s.cartResponse(c), nil
}

func (s *billingService) RemoveItem(ctx context.Context, sessionID string, productID string) (*dto.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	if !c.RemoveItem(productID) {
		return nil, fmt.Errorf("%w: product %s not in cart", apperrors.ErrNotFound, productID)
	}
	return s.cartResponse(c), nil
}

func (s *billingService) SetDiscount(ctx context.Context, sessionID string, req dto.SetCartDiscountRequest) (*dto.CartResponse, error) {
	if req.DiscountAmount.IsNegative() {
		return nil, fmt.Errorf("%w: discount must not be negative", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)

	gross := decimal.Zero
	for _, item := range c.Items {
		gross = gross.Add(item.GrossTotal())
	}
	if req.DiscountAmount.GreaterThan(gross) {
		return nil, fmt.Errorf("%w: discount %s exceeds cart total %s", apperrors.ErrValidation, req.DiscountAmount.String(), gross.String())
	}

	c.DiscountAmount = req.DiscountAmount
	return s.cartResponse(c), nil
}

func (s *billingService) SetParty(ctx context.Context, sessionID string, req dto.SetCartPartyRequest) (*dto.CartResponse, error) {
	if req.PartyID != nil {
		party, err := s.partyRepo.FindPartyByID(ctx, *req.PartyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load party for cart: %w", err)
		}
		if !party.IsActive {
			return nil, fmt.Errorf("%w: party %s is inactive", apperrors.ErrValidation, party.Name)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.PartyID = req.PartyID
	return s.cartResponse(c), nil
}

func (s *billingService) GetCart(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartResponse(s.cart(sessionID)), nil
}

func (s *billingService) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Clear()
	return nil
}
