package repositories

import "context"

// UnitOfWork exposes repositories bound to one atomic transaction.
type UnitOfWork interface {
	Vouchers() VoucherRepositoryFacade
	Ledger() LedgerRepositoryFacade

	// Lock serializes units of work on key until the transaction ends.
	Lock(ctx context.Context, key string) error
}

// TxManager runs fn inside a transaction. A nil return commits, an error rolls back.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
