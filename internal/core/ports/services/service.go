package services

// ServiceContainer holds all service interfaces needed by handlers.
// This makes passing dependencies to the router cleaner.
type ServiceContainer struct {
	Voucher   VoucherSvcFacade
	Ledger    LedgerPosterSvc
	Reporting ReportingSvc
	Account   AccountReaderSvc
}
