package services

import (
	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
	portssvc "github.com/vastram/retail_pos_backend/internal/core/ports/services"
	"github.com/vastram/retail_pos_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo)
	container.Party = NewPartyService(repos.PartyRepo)
	container.Billing = NewBillingService(cfg, repos.ProductRepo, repos.PartyRepo, repos.InvoiceRepo)
	container.Return = NewReturnService(cfg, repos.InvoiceRepo, repos.PartyRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.PartyRepo)
	container.Payment = NewPaymentService(repos.PartyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportRepo)
	container.Token = NewTokenService(cfg)

	return container
}
