package repositories

import (
	"context"
	"time"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader is the query side of the ledger store. All date bounds are
// inclusive calendar dates; nil means unbounded.
type LedgerReader interface {
	HasEntries(ctx context.Context, voucherID string) (bool, error)
	FindByVoucher(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error)
	FindByAccount(ctx context.Context, accountID string, from, to *time.Time) ([]domain.LedgerEntry, error)
	FindByBusiness(ctx context.Context, businessID string, from, to *time.Time) ([]domain.LedgerEntry, error)

	// BalanceAsOf returns debit minus credit for the account up to and including date.
	BalanceAsOf(ctx context.Context, accountID string, date *time.Time) (decimal.Decimal, error)

	// BalancesAsOf returns debit minus credit per account of the business up to and including date.
	BalancesAsOf(ctx context.Context, businessID string, date *time.Time) (map[string]decimal.Decimal, error)

	// TotalsForPeriod returns total debits and credits of the business within [from, to].
	TotalsForPeriod(ctx context.Context, businessID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error)

	// MovementsForPeriod returns per-account debit and credit totals within [from, to].
	MovementsForPeriod(ctx context.Context, businessID string, from, to time.Time) (map[string]domain.Movement, error)
}

// LedgerWriter appends and discards postings.
type LedgerWriter interface {
	// InsertBatch persists all entries or none. A repeated (voucher, source line)
	// pair fails with apperrors.ErrDuplicate.
	InsertBatch(ctx context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error)

	// DeleteByVoucher discards every entry of a voucher and returns how many were removed.
	DeleteByVoucher(ctx context.Context, voucherID string) (int, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
