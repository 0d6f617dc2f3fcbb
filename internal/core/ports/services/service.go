package services

// ServiceContainer holds all the application services so handlers can be
// wired from a single value.
type ServiceContainer struct {
	Product   ProductSvcFacade
	Party     PartySvcFacade
	Billing   BillingSvcFacade
	Return    ReturnSvcFacade
	Ledger    LedgerSvcFacade
	Payment   PaymentSvcFacade
	User      UserSvcFacade
	Reporting ReportingSvcFacade
	Token     TokenSvc
}
