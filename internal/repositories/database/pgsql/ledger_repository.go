package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/models"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/utils/mapping"
)

const entryColumns = `entry_id, business_id, voucher_id, source_line_id, entry_date, account_id,
	debit, credit, currency_code, exchange_rate, base_debit, base_credit,
	cost_center_id, project_id, reconciliation_status, created_at, created_by`

// Entries are returned by entry date; entry_seq keeps insertion order within a day.
const entryOrder = ` ORDER BY entry_date, entry_seq`

// PgxLedgerRepository reads and writes the append-only ledger_entries table.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{DB: pool}}
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, where string, args ...any) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE ` + where + entryOrder + ";"
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to query ledger entries")
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var e models.LedgerEntry
		err := rows.Scan(
			&e.EntryID,
			&e.BusinessID,
			&e.VoucherID,
			&e.SourceLineID,
			&e.EntryDate,
			&e.AccountID,
			&e.Debit,
			&e.Credit,
			&e.CurrencyCode,
			&e.ExchangeRate,
			&e.BaseDebit,
			&e.BaseCredit,
			&e.CostCenterID,
			&e.ProjectID,
			&e.ReconciliationStatus,
			&e.CreatedAt,
			&e.CreatedBy,
		)
		if err != nil {
			return nil, mapError(err, "failed to scan ledger entry row")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating ledger entry rows")
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

func (r *PgxLedgerRepository) HasEntries(ctx context.Context, voucherID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE voucher_id = $1)`, voucherID).Scan(&exists)
	if err != nil {
		return false, mapError(err, "failed to check ledger entries for voucher "+voucherID)
	}
	return exists, nil
}

func (r *PgxLedgerRepository) FindByVoucher(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error) {
	return r.queryEntries(ctx, "voucher_id = $1", voucherID)
}

func (r *PgxLedgerRepository) FindByAccount(ctx context.Context, accountID string, from, to *time.Time) ([]domain.LedgerEntry, error) {
	return r.queryEntries(ctx,
		"account_id = $1 AND ($2::date IS NULL OR entry_date >= $2) AND ($3::date IS NULL OR entry_date <= $3)",
		accountID, optionalDate(from), optionalDate(to))
}

func (r *PgxLedgerRepository) FindByBusiness(ctx context.Context, businessID string, from, to *time.Time) ([]domain.LedgerEntry, error) {
	return r.queryEntries(ctx,
		"business_id = $1 AND ($2::date IS NULL OR entry_date >= $2) AND ($3::date IS NULL OR entry_date <= $3)",
		businessID, optionalDate(from), optionalDate(to))
}

// BalanceAsOf returns debit minus credit up to and including date.
func (r *PgxLedgerRepository) BalanceAsOf(ctx context.Context, accountID string, date *time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit), 0) - COALESCE(SUM(credit), 0)
		FROM ledger_entries
		WHERE account_id = $1 AND ($2::date IS NULL OR entry_date <= $2);
	`
	var balance decimal.Decimal
	if err := r.DB.QueryRow(ctx, query, accountID, optionalDate(date)).Scan(&balance); err != nil {
		return decimal.Zero, mapError(err, "failed to compute balance for account "+accountID)
	}
	return balance, nil
}

// BalancesAsOf returns debit minus credit per account up to and including date.
func (r *PgxLedgerRepository) BalancesAsOf(ctx context.Context, businessID string, date *time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT account_id, SUM(debit) - SUM(credit)
		FROM ledger_entries
		WHERE business_id = $1 AND ($2::date IS NULL OR entry_date <= $2)
		GROUP BY account_id;
	`
	rows, err := r.DB.Query(ctx, query, businessID, optionalDate(date))
	if err != nil {
		return nil, mapError(err, "failed to query balances for business "+businessID)
	}
	defer rows.Close()

	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var accountID string
		var balance decimal.Decimal
		if err := rows.Scan(&accountID, &balance); err != nil {
			return nil, mapError(err, "failed to scan balance row")
		}
		out[accountID] = balance
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating balance rows")
	}
	return out, nil
}

// TotalsForPeriod returns total debits and credits within [from, to].
func (r *PgxLedgerRepository) TotalsForPeriod(ctx context.Context, businessID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM ledger_entries
		WHERE business_id = $1 AND entry_date BETWEEN $2 AND $3;
	`
	var debit, credit decimal.Decimal
	err := r.DB.QueryRow(ctx, query, businessID, domain.DateOnly(from), domain.DateOnly(to)).Scan(&debit, &credit)
	if err != nil {
		return decimal.Zero, decimal.Zero, mapError(err, "failed to total ledger for business "+businessID)
	}
	return debit, credit, nil
}

// MovementsForPeriod returns per-account debit and credit totals within [from, to].
func (r *PgxLedgerRepository) MovementsForPeriod(ctx context.Context, businessID string, from, to time.Time) (map[string]domain.Movement, error) {
	query := `
		SELECT account_id, SUM(debit), SUM(credit)
		FROM ledger_entries
		WHERE business_id = $1 AND entry_date BETWEEN $2 AND $3
		GROUP BY account_id;
	`
	rows, err := r.DB.Query(ctx, query, businessID, domain.DateOnly(from), domain.DateOnly(to))
	if err != nil {
		return nil, mapError(err, "failed to query movements for business "+businessID)
	}
	defer rows.Close()

	out := make(map[string]domain.Movement)
	for rows.Next() {
		var accountID string
		var m domain.Movement
		if err := rows.Scan(&accountID, &m.Debit, &m.Credit); err != nil {
			return nil, mapError(err, "failed to scan movement row")
		}
		out[accountID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating movement rows")
	}
	return out, nil
}

// InsertBatch persists all entries or none in a single batch.
func (r *PgxLedgerRepository) InsertBatch(ctx context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error) {
	if len(entries) == 0 {
		return []domain.LedgerEntry{}, nil
	}
	query := `INSERT INTO ledger_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`

	err := r.InTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, entry := range entries {
			e := mapping.ToModelLedgerEntry(entry)
			batch.Queue(query,
				e.EntryID,
				e.BusinessID,
				e.VoucherID,
				e.SourceLineID,
				e.EntryDate,
				e.AccountID,
				e.Debit,
				e.Credit,
				e.CurrencyCode,
				e.ExchangeRate,
				e.BaseDebit,
				e.BaseCredit,
				e.CostCenterID,
				e.ProjectID,
				e.ReconciliationStatus,
				e.CreatedAt,
				e.CreatedBy,
			)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return nil, mapError(err, "failed to insert ledger entries for voucher "+entries[0].VoucherID)
	}

	out := make([]domain.LedgerEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// DeleteByVoucher discards every entry of a voucher.
func (r *PgxLedgerRepository) DeleteByVoucher(ctx context.Context, voucherID string) (int, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM ledger_entries WHERE voucher_id = $1`, voucherID)
	if err != nil {
		return 0, mapError(err, "failed to delete ledger entries for voucher "+voucherID)
	}
	return int(tag.RowsAffected()), nil
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)
