package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
)

// TxManager runs units of work in Postgres transactions.
type TxManager struct {
	pool *pgxpool.Pool
}

func newTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx commits when fn returns nil and rolls back otherwise.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	return pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		return fn(ctx, &unitOfWork{tx: tx})
	})
}

type unitOfWork struct {
	tx pgx.Tx
}

func (u *unitOfWork) Vouchers() portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{DB: u.tx}}
}

func (u *unitOfWork) Ledger() portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{DB: u.tx}}
}

// Lock takes a transaction-scoped advisory lock; it is released on commit or rollback.
func (u *unitOfWork) Lock(ctx context.Context, key string) error {
	if _, err := u.tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return mapError(err, "failed to acquire lock "+key)
	}
	return nil
}

var (
	_ portsrepo.TxManager  = (*TxManager)(nil)
	_ portsrepo.UnitOfWork = (*unitOfWork)(nil)
)
