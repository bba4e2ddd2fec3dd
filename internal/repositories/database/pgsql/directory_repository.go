package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/models"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/utils/mapping"
)

const accountColumns = `account_id, business_id, code, name, account_type, parent_account_id,
	is_active, is_group, created_at, created_by, last_updated_at, last_updated_by`

// PgxAccountDirectory reads the chart of accounts.
type PgxAccountDirectory struct {
	BaseRepository
}

func newPgxAccountDirectory(pool *pgxpool.Pool) *PgxAccountDirectory {
	return &PgxAccountDirectory{BaseRepository: BaseRepository{DB: pool}}
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.BusinessID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.ParentAccountID,
		&m.IsActive,
		&m.IsGroup,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAccountByID retrieves a specific account by its unique identifier.
func (r *PgxAccountDirectory) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.DB.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, mapError(err, "failed to find account "+accountID)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountDirectory) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.DB.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, mapError(err, "failed to query accounts by IDs")
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan account row")
		}
		out[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating account rows")
	}
	return out, nil
}

// ListAccounts returns every account of a business ordered by code.
func (r *PgxAccountDirectory) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE business_id = $1 ORDER BY code, account_id;`
	rows, err := r.DB.Query(ctx, query, businessID)
	if err != nil {
		return nil, mapError(err, "failed to list accounts for business "+businessID)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan account row")
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating account rows")
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// PgxBusinessDirectory reads tenants.
type PgxBusinessDirectory struct {
	BaseRepository
}

func newPgxBusinessDirectory(pool *pgxpool.Pool) *PgxBusinessDirectory {
	return &PgxBusinessDirectory{BaseRepository: BaseRepository{DB: pool}}
}

// FindBusinessByID returns apperrors.ErrNotFound when absent.
func (r *PgxBusinessDirectory) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT business_id, name, base_currency_code, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM businesses
		WHERE business_id = $1;
	`
	var m models.Business
	err := r.DB.QueryRow(ctx, query, businessID).Scan(
		&m.BusinessID,
		&m.Name,
		&m.BaseCurrencyCode,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapError(err, "failed to find business "+businessID)
	}
	b := mapping.ToDomainBusiness(m)
	return &b, nil
}

var (
	_ portsrepo.AccountDirectory  = (*PgxAccountDirectory)(nil)
	_ portsrepo.BusinessDirectory = (*PgxBusinessDirectory)(nil)
)
