package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vastram/retail_pos_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo: NewPgxProductRepository(dbPool),
		PartyRepo:   NewPgxPartyRepository(dbPool),
		InvoiceRepo: NewPgxInvoiceRepository(dbPool),
		LedgerRepo:  NewPgxLedgerRepository(dbPool),
		ReportRepo:  NewPgxReportingRepository(dbPool),
		UserRepo:    NewPgxUserRepository(dbPool),
	}
}
