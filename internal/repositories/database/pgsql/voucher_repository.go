package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/models"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/utils/mapping"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/utils/pagination"
)

const voucherColumns = `voucher_id, business_id, voucher_number, voucher_type, voucher_date, status,
	currency_code, exchange_rate, reference, narration, cost_center_id, project_id,
	total_amount, tax_amount, discount_amount, round_off, net_amount,
	posted_at, posted_by, deleted_at, ledger_posting_error,
	created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, voucher_id, line_number, account_id, description, debit, credit,
	line_amount, tax_amount, discount_amount, cost_center_id, project_id`

// PgxVoucherRepository stores vouchers and their lines.
type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) *PgxVoucherRepository {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{DB: pool}}
}

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.BusinessID,
		&m.VoucherNumber,
		&m.VoucherType,
		&m.VoucherDate,
		&m.Status,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.Reference,
		&m.Narration,
		&m.CostCenterID,
		&m.ProjectID,
		&m.TotalAmount,
		&m.TaxAmount,
		&m.DiscountAmount,
		&m.RoundOff,
		&m.NetAmount,
		&m.PostedAt,
		&m.PostedBy,
		&m.DeletedAt,
		&m.LedgerPostingError,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectVouchers(rows pgx.Rows) ([]models.Voucher, error) {
	defer rows.Close()
	vouchers := []models.Voucher{}
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan voucher row")
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating voucher rows")
	}
	return vouchers, nil
}

// FindVoucherByID retrieves a voucher header with its lines ordered by line number.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1;`
	m, err := scanVoucher(r.DB.QueryRow(ctx, query, voucherID))
	if err != nil {
		return nil, mapError(err, "failed to find voucher "+voucherID)
	}

	lines, err := r.findLines(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	v := mapping.ToDomainVoucher(m, lines)
	return &v, nil
}

func (r *PgxVoucherRepository) findLines(ctx context.Context, voucherID string) ([]models.VoucherLine, error) {
	query := `SELECT ` + lineColumns + ` FROM voucher_lines WHERE voucher_id = $1 ORDER BY line_number;`
	rows, err := r.DB.Query(ctx, query, voucherID)
	if err != nil {
		return nil, mapError(err, "failed to query lines for voucher "+voucherID)
	}
	defer rows.Close()

	lines := []models.VoucherLine{}
	for rows.Next() {
		var l models.VoucherLine
		err := rows.Scan(
			&l.LineID,
			&l.VoucherID,
			&l.LineNumber,
			&l.AccountID,
			&l.Description,
			&l.Debit,
			&l.Credit,
			&l.LineAmount,
			&l.TaxAmount,
			&l.DiscountAmount,
			&l.CostCenterID,
			&l.ProjectID,
		)
		if err != nil {
			return nil, mapError(err, "failed to scan line row for voucher "+voucherID)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating line rows for voucher "+voucherID)
	}
	return lines, nil
}

// FindVouchersByIDs retrieves voucher headers keyed by ID.
func (r *PgxVoucherRepository) FindVouchersByIDs(ctx context.Context, voucherIDs []string) (map[string]domain.Voucher, error) {
	out := make(map[string]domain.Voucher, len(voucherIDs))
	if len(voucherIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = ANY($1);`
	rows, err := r.DB.Query(ctx, query, voucherIDs)
	if err != nil {
		return nil, mapError(err, "failed to query vouchers by IDs")
	}
	vouchers, err := collectVouchers(rows)
	if err != nil {
		return nil, err
	}
	for _, m := range vouchers {
		out[m.VoucherID] = mapping.ToDomainVoucher(m, nil)
	}
	return out, nil
}

// ListVouchers retrieves a page of non-deleted vouchers using token-based pagination.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, businessID string, filter domain.VoucherFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	where := []string{"business_id = $1", "status <> 'DELETED'"}
	args := []any{businessID}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.VoucherType != nil {
		where = append(where, "voucher_type = "+arg(string(*filter.VoucherType)))
	}
	if filter.Status != nil {
		where = append(where, "status = "+arg(string(*filter.Status)))
	}
	if filter.FromDate != nil {
		where = append(where, "voucher_date >= "+arg(domain.DateOnly(*filter.FromDate)))
	}
	if filter.ToDate != nil {
		where = append(where, "voucher_date <= "+arg(domain.DateOnly(*filter.ToDate)))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid nextToken: %w: %v", apperrors.ErrValidation, err)
		}
		// Tuple comparison matches the ORDER BY below.
		where = append(where, fmt.Sprintf("(voucher_date, created_at, voucher_id) < (%s, %s, %s)",
			arg(cursor.VoucherDate), arg(cursor.CreatedAt), arg(cursor.VoucherID)))
	}

	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY voucher_date DESC, created_at DESC, voucher_id DESC LIMIT ` + arg(fetchLimit) + ";"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapError(err, "failed to list vouchers for business "+businessID)
	}
	vouchers, err := collectVouchers(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(vouchers) > limit {
		vouchers = vouchers[:limit]
		last := vouchers[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{VoucherDate: last.VoucherDate, CreatedAt: last.CreatedAt, VoucherID: last.VoucherID})
		nextTokenVal = &token
	}

	out := make([]domain.Voucher, len(vouchers))
	for i, m := range vouchers {
		out[i] = mapping.ToDomainVoucher(m, nil)
	}
	return out, nextTokenVal, nil
}

// ListPostedWithoutLedger returns POSTED vouchers that have no ledger entries, oldest first.
func (r *PgxVoucherRepository) ListPostedWithoutLedger(ctx context.Context, limit int) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + `
		FROM vouchers v
		WHERE v.status = 'POSTED'
		  AND NOT EXISTS (SELECT 1 FROM ledger_entries le WHERE le.voucher_id = v.voucher_id)
		ORDER BY v.last_updated_at, v.voucher_id
		LIMIT $1;`
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := r.DB.Query(ctx, query, lim)
	if err != nil {
		return nil, mapError(err, "failed to list posted vouchers without ledger")
	}
	vouchers, err := collectVouchers(rows)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Voucher, len(vouchers))
	for i, m := range vouchers {
		out[i] = mapping.ToDomainVoucher(m, nil)
	}
	return out, nil
}

// GenerateVoucherNumber counts every voucher of the business/type/year, deleted ones included.
func (r *PgxVoucherRepository) GenerateVoucherNumber(ctx context.Context, businessID string, voucherType domain.VoucherType, voucherDate time.Time) (string, error) {
	query := `
		SELECT COUNT(*)
		FROM vouchers
		WHERE business_id = $1 AND voucher_type = $2 AND EXTRACT(YEAR FROM voucher_date) = $3;
	`
	var count int
	if err := r.DB.QueryRow(ctx, query, businessID, string(voucherType), voucherDate.Year()).Scan(&count); err != nil {
		return "", mapError(err, "failed to count vouchers for numbering")
	}
	return domain.FormatVoucherNumber(voucherType, voucherDate.Year(), count+1), nil
}

func queueLineInserts(batch *pgx.Batch, lines []domain.VoucherLine) {
	query := `INSERT INTO voucher_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	for _, line := range lines {
		l := mapping.ToModelVoucherLine(line)
		batch.Queue(query,
			l.LineID,
			l.VoucherID,
			l.LineNumber,
			l.AccountID,
			l.Description,
			l.Debit,
			l.Credit,
			l.LineAmount,
			l.TaxAmount,
			l.DiscountAmount,
			l.CostCenterID,
			l.ProjectID,
		)
	}
}

// SaveVoucher persists a new voucher with its lines atomically.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		query := `INSERT INTO vouchers (` + voucherColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);`
		_, err := tx.Exec(ctx, query,
			m.VoucherID,
			m.BusinessID,
			m.VoucherNumber,
			m.VoucherType,
			m.VoucherDate,
			m.Status,
			m.CurrencyCode,
			m.ExchangeRate,
			m.Reference,
			m.Narration,
			m.CostCenterID,
			m.ProjectID,
			m.TotalAmount,
			m.TaxAmount,
			m.DiscountAmount,
			m.RoundOff,
			m.NetAmount,
			m.PostedAt,
			m.PostedBy,
			m.DeletedAt,
			m.LedgerPostingError,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		queueLineInserts(batch, voucher.Lines)
		// Close surfaces the first failing statement of the batch.
		return tx.SendBatch(ctx, batch).Close()
	})
	return mapError(err, "failed to save voucher "+voucher.VoucherID)
}

// UpdateVoucher rewrites the header of a DRAFT voucher and replaces its lines.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE vouchers
			SET voucher_type = $2, voucher_date = $3, currency_code = $4, exchange_rate = $5,
			    reference = $6, narration = $7, cost_center_id = $8, project_id = $9,
			    total_amount = $10, tax_amount = $11, discount_amount = $12, round_off = $13, net_amount = $14,
			    last_updated_at = $15, last_updated_by = $16
			WHERE voucher_id = $1 AND status = 'DRAFT';
		`
		tag, err := tx.Exec(ctx, query,
			m.VoucherID,
			m.VoucherType,
			m.VoucherDate,
			m.CurrencyCode,
			m.ExchangeRate,
			m.Reference,
			m.Narration,
			m.CostCenterID,
			m.ProjectID,
			m.TotalAmount,
			m.TaxAmount,
			m.DiscountAmount,
			m.RoundOff,
			m.NetAmount,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vouchers WHERE voucher_id = $1)`, m.VoucherID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return apperrors.NewNotFoundError("voucher " + m.VoucherID)
			}
			return apperrors.NewAppError(409, "voucher "+m.VoucherID+" is not a draft", apperrors.ErrInvalidState)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM voucher_lines WHERE voucher_id = $1`, m.VoucherID); err != nil {
			return err
		}
		batch := &pgx.Batch{}
		queueLineInserts(batch, voucher.Lines)
		return tx.SendBatch(ctx, batch).Close()
	})
	return mapError(err, "failed to update voucher "+voucher.VoucherID)
}

// SetPosted transitions DRAFT to POSTED. The status guard makes concurrent posts race-free.
func (r *PgxVoucherRepository) SetPosted(ctx context.Context, voucherID string, postedBy string, postedAt time.Time) (bool, error) {
	query := `
		UPDATE vouchers
		SET status = 'POSTED', posted_at = $2, posted_by = $3, last_updated_at = $2, last_updated_by = $3
		WHERE voucher_id = $1 AND status = 'DRAFT';
	`
	tag, err := r.DB.Exec(ctx, query, voucherID, postedAt, postedBy)
	if err != nil {
		return false, mapError(err, "failed to post voucher "+voucherID)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkDeleted transitions DRAFT to DELETED.
func (r *PgxVoucherRepository) MarkDeleted(ctx context.Context, voucherID string, deletedBy string, deletedAt time.Time) (bool, error) {
	query := `
		UPDATE vouchers
		SET status = 'DELETED', deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE voucher_id = $1 AND status = 'DRAFT';
	`
	tag, err := r.DB.Exec(ctx, query, voucherID, deletedAt, deletedBy)
	if err != nil {
		return false, mapError(err, "failed to delete voucher "+voucherID)
	}
	return tag.RowsAffected() == 1, nil
}

// RecordPostingError stores or clears the last ledger posting failure.
func (r *PgxVoucherRepository) RecordPostingError(ctx context.Context, voucherID string, message *string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE vouchers SET ledger_posting_error = $2 WHERE voucher_id = $1`, voucherID, message)
	if err != nil {
		return mapError(err, "failed to record posting error for voucher "+voucherID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + voucherID)
	}
	return nil
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)
