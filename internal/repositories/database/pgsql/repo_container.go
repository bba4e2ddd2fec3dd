package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VoucherRepo: newPgxVoucherRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		AccountDir:  newPgxAccountDirectory(dbPool),
		BusinessDir: newPgxBusinessDirectory(dbPool),
		TxManager:   newTxManager(dbPool),
	}
}
