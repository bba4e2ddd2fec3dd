package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/dto"
)

// accountService serves read-only chart-of-accounts queries scoped to a business.
type accountService struct {
	BaseService
	accountDir  portsrepo.AccountDirectory
	businessDir portsrepo.BusinessDirectory
}

// NewAccountService creates a new account reader on top of the directories.
func NewAccountService(accountDir portsrepo.AccountDirectory, businessDir portsrepo.BusinessDirectory) portssvc.AccountReaderSvc {
	return &accountService{
		accountDir:  accountDir,
		businessDir: businessDir,
	}
}

func (s *accountService) GetAccount(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	account, err := s.accountDir.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to load account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.BusinessID != businessID {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, businessID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	if _, err := s.businessDir.FindBusinessByID(ctx, businessID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("business %s: %w", businessID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load business: %w", err)
	}

	all, err := s.accountDir.ListAccounts(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(all))
	for _, acc := range all {
		if params.PostableOnly && !acc.IsPostable() {
			continue
		}
		if params.AccountType != nil && acc.AccountType != *params.AccountType {
			continue
		}
		accounts = append(accounts, acc)
	}
	s.LogDebug(ctx, "Accounts listed", slog.String("business_id", businessID), slog.Int("count", len(accounts)))
	return accounts, nil
}
