// Package memory provides in-process implementations of the repository ports.
// They back the local demo mode and serve as test doubles for the services.
package memory

import (
	"context"
	"sync"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
)

type state struct {
	businesses map[string]domain.Business
	accounts   map[string]domain.Account
	vouchers   map[string]domain.Voucher
	entries    []domain.LedgerEntry
}

func newState() *state {
	return &state{
		businesses: make(map[string]domain.Business),
		accounts:   make(map[string]domain.Account),
		vouchers:   make(map[string]domain.Voucher),
	}
}

func (st *state) clone() *state {
	c := &state{
		businesses: make(map[string]domain.Business, len(st.businesses)),
		accounts:   make(map[string]domain.Account, len(st.accounts)),
		vouchers:   make(map[string]domain.Voucher, len(st.vouchers)),
		entries:    make([]domain.LedgerEntry, len(st.entries)),
	}
	for k, v := range st.businesses {
		c.businesses[k] = v
	}
	for k, v := range st.accounts {
		c.accounts[k] = v
	}
	for k, v := range st.vouchers {
		c.vouchers[k] = copyVoucher(v)
	}
	copy(c.entries, st.entries)
	return c
}

// Store holds all data in memory. Units of work run one at a time against a
// private copy of the state that replaces the shared state on commit, so readers
// never see uncommitted writes.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	st   *state

	insertHook func([]domain.LedgerEntry) error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// accessor abstracts over the shared state and a unit of work's private copy.
type accessor interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
	store() *Store
}

type sharedAccessor struct{ s *Store }

func (a sharedAccessor) read(fn func(st *state) error) error {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return fn(a.s.st)
}

func (a sharedAccessor) write(fn func(st *state) error) error {
	a.s.txMu.Lock()
	defer a.s.txMu.Unlock()
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return fn(a.s.st)
}

func (a sharedAccessor) store() *Store { return a.s }

type txAccessor struct {
	s  *Store
	st *state
}

func (a txAccessor) read(fn func(st *state) error) error  { return fn(a.st) }
func (a txAccessor) write(fn func(st *state) error) error { return fn(a.st) }
func (a txAccessor) store() *Store                        { return a.s }

// Vouchers returns the voucher repository over the shared state.
func (s *Store) Vouchers() *VoucherRepository {
	return &VoucherRepository{acc: sharedAccessor{s}}
}

// Ledger returns the ledger repository over the shared state.
func (s *Store) Ledger() *LedgerRepository {
	return &LedgerRepository{acc: sharedAccessor{s}}
}

// Accounts returns the account directory.
func (s *Store) Accounts() *AccountDirectory {
	return &AccountDirectory{s: s}
}

// Businesses returns the business directory.
func (s *Store) Businesses() *BusinessDirectory {
	return &BusinessDirectory{s: s}
}

// RepositoryProvider wires every port to this store.
func (s *Store) RepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VoucherRepo: s.Vouchers(),
		LedgerRepo:  s.Ledger(),
		AccountDir:  s.Accounts(),
		BusinessDir: s.Businesses(),
		TxManager:   s,
	}
}

// SetInsertHook installs a function called before every ledger batch insert;
// a non-nil return fails the insert. Tests use it to simulate storage faults.
func (s *Store) SetInsertHook(hook func([]domain.LedgerEntry) error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.insertHook = hook
}

// RunInTx implements portsrepo.TxManager.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	work := s.st.clone()
	s.mu.RUnlock()

	acc := txAccessor{s: s, st: work}
	if err := fn(ctx, &unitOfWork{acc: acc}); err != nil {
		return err
	}

	s.mu.Lock()
	s.st = work
	s.mu.Unlock()
	return nil
}

type unitOfWork struct {
	acc txAccessor
}

func (u *unitOfWork) Vouchers() portsrepo.VoucherRepositoryFacade {
	return &VoucherRepository{acc: u.acc}
}

func (u *unitOfWork) Ledger() portsrepo.LedgerRepositoryFacade {
	return &LedgerRepository{acc: u.acc}
}

// Lock is a no-op: units of work are already serialized.
func (u *unitOfWork) Lock(ctx context.Context, key string) error {
	return ctx.Err()
}

var (
	_ portsrepo.TxManager  = (*Store)(nil)
	_ portsrepo.UnitOfWork = (*unitOfWork)(nil)
)
