package repositories

import (
	"context"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
)

// AccountDirectory resolves chart-of-account entries. Account maintenance
// lives outside the ledger core, so only reads are exposed.
type AccountDirectory interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns every account of a business, including inactive and group accounts.
	ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error)
}

// BusinessDirectory resolves tenants.
type BusinessDirectory interface {
	// FindBusinessByID returns apperrors.ErrNotFound when absent.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
}
