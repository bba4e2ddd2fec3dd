package services

import (
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
)

// NewServiceContainer wires the ledger core services on top of a repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	poster := NewLedgerPoster(repos.TxManager, repos.LedgerRepo)

	return &portssvc.ServiceContainer{
		Ledger:  poster,
		Voucher: NewVoucherService(repos, poster),
		Reporting: NewReportingService(
			repos.LedgerRepo,
			repos.AccountDir,
			repos.BusinessDir,
			WithReportingVoucherReader(repos.VoucherRepo),
		),
		Account: NewAccountService(repos.AccountDir, repos.BusinessDir),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.VoucherSvcFacade = (*voucherService)(nil)
	_ portssvc.LedgerPosterSvc  = (*ledgerPoster)(nil)
	_ portssvc.ReportingSvc     = (*reportingService)(nil)
	_ portssvc.AccountReaderSvc = (*accountService)(nil)
)
