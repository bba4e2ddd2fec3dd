package memory

import (
	"context"
	"sort"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
)

// AccountDirectory serves accounts seeded into the store.
type AccountDirectory struct {
	s *Store
}

// SeedAccount adds or replaces an account.
func (s *Store) SeedAccount(account domain.Account) {
	_ = sharedAccessor{s}.write(func(st *state) error {
		st.accounts[account.AccountID] = account
		return nil
	})
}

// SeedBusiness adds or replaces a business.
func (s *Store) SeedBusiness(business domain.Business) {
	_ = sharedAccessor{s}.write(func(st *state) error {
		st.businesses[business.BusinessID] = business
		return nil
	})
}

func (d *AccountDirectory) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var out *domain.Account
	err := sharedAccessor{d.s}.read(func(st *state) error {
		acc, ok := st.accounts[accountID]
		if !ok {
			return apperrors.ErrNotFound
		}
		out = &acc
		return nil
	})
	return out, err
}

func (d *AccountDirectory) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	err := sharedAccessor{d.s}.read(func(st *state) error {
		for _, id := range accountIDs {
			if acc, ok := st.accounts[id]; ok {
				out[id] = acc
			}
		}
		return nil
	})
	return out, err
}

func (d *AccountDirectory) ListAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	var out []domain.Account
	err := sharedAccessor{d.s}.read(func(st *state) error {
		for _, acc := range st.accounts {
			if acc.BusinessID == businessID {
				out = append(out, acc)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, err
}

// BusinessDirectory serves businesses seeded into the store.
type BusinessDirectory struct {
	s *Store
}

func (d *BusinessDirectory) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	var out *domain.Business
	err := sharedAccessor{d.s}.read(func(st *state) error {
		b, ok := st.businesses[businessID]
		if !ok {
			return apperrors.ErrNotFound
		}
		out = &b
		return nil
	})
	return out, err
}

var (
	_ portsrepo.AccountDirectory  = (*AccountDirectory)(nil)
	_ portsrepo.BusinessDirectory = (*BusinessDirectory)(nil)
)
