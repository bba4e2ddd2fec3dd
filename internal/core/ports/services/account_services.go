package services

import (
	"context"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/dto"
)

// AccountReaderSvc exposes the chart of accounts of a business. Accounts are
// maintained outside the ledger core, so there are no write operations.
type AccountReaderSvc interface {
	// GetAccount retrieves an account of the business. Accounts of other businesses are reported as not found.
	GetAccount(ctx context.Context, businessID string, accountID string) (*domain.Account, error)

	// ListAccounts returns the business's accounts ordered by code.
	ListAccounts(ctx context.Context, businessID string, params dto.ListAccountsParams) ([]domain.Account, error)
}
