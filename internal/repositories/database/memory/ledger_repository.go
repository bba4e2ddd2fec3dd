package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
)

// LedgerRepository is an append-only list of ledger entries.
type LedgerRepository struct {
	acc accessor
}

func inRange(e domain.LedgerEntry, from, to *time.Time) bool {
	d := domain.DateOnly(e.EntryDate)
	if from != nil && d.Before(domain.DateOnly(*from)) {
		return false
	}
	if to != nil && d.After(domain.DateOnly(*to)) {
		return false
	}
	return true
}

// selectEntries returns matching entries ordered by entry date, keeping insertion order within a day.
func (r *LedgerRepository) selectEntries(match func(e domain.LedgerEntry) bool) ([]domain.LedgerEntry, error) {
	out := make([]domain.LedgerEntry, 0)
	err := r.acc.read(func(st *state) error {
		for _, e := range st.entries {
			if match(e) {
				out = append(out, e)
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].EntryDate.Before(out[j].EntryDate) })
	return out, err
}

func (r *LedgerRepository) HasEntries(ctx context.Context, voucherID string) (bool, error) {
	var found bool
	err := r.acc.read(func(st *state) error {
		for _, e := range st.entries {
			if e.VoucherID == voucherID {
				found = true
				break
			}
		}
		return nil
	})
	return found, err
}

func (r *LedgerRepository) FindByVoucher(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error) {
	return r.selectEntries(func(e domain.LedgerEntry) bool { return e.VoucherID == voucherID })
}

func (r *LedgerRepository) FindByAccount(ctx context.Context, accountID string, from, to *time.Time) ([]domain.LedgerEntry, error) {
	return r.selectEntries(func(e domain.LedgerEntry) bool {
		return e.AccountID == accountID && inRange(e, from, to)
	})
}

func (r *LedgerRepository) FindByBusiness(ctx context.Context, businessID string, from, to *time.Time) ([]domain.LedgerEntry, error) {
	return r.selectEntries(func(e domain.LedgerEntry) bool {
		return e.BusinessID == businessID && inRange(e, from, to)
	})
}

func (r *LedgerRepository) BalanceAsOf(ctx context.Context, accountID string, date *time.Time) (decimal.Decimal, error) {
	var m domain.Movement
	err := r.acc.read(func(st *state) error {
		for _, e := range st.entries {
			if e.AccountID == accountID && inRange(e, nil, date) {
				m = m.Add(e)
			}
		}
		return nil
	})
	return m.Net(), err
}

func (r *LedgerRepository) BalancesAsOf(ctx context.Context, businessID string, date *time.Time) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	err := r.acc.read(func(st *state) error {
		for _, e := range st.entries {
			if e.BusinessID == businessID && inRange(e, nil, date) {
				out[e.AccountID] = out[e.AccountID].Add(e.Debit).Sub(e.Credit)
			}
		}
		return nil
	})
	return out, err
}

func (r *LedgerRepository) TotalsForPeriod(ctx context.Context, businessID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var m domain.Movement
	err := r.acc.read(func(st *state) error {
		for _, e := range st.entries {
			if e.BusinessID == businessID && inRange(e, &from, &to) {
				m = m.Add(e)
			}
		}
		return nil
	})
	return m.Debit, m.Credit, err
}

func (r *LedgerRepository) MovementsForPeriod(ctx context.Context, businessID string, from, to time.Time) (map[string]domain.Movement, error) {
	out := make(map[string]domain.Movement)
	err := r.acc.read(func(st *state) error {
		for _, e := range st.entries {
			if e.BusinessID == businessID && inRange(e, &from, &to) {
				out[e.AccountID] = out[e.AccountID].Add(e)
			}
		}
		return nil
	})
	return out, err
}

// InsertBatch appends all entries or none. (voucher, source line) is unique.
func (r *LedgerRepository) InsertBatch(ctx context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error) {
	err := r.acc.write(func(st *state) error {
		if hook := r.acc.store().insertHook; hook != nil {
			if err := hook(entries); err != nil {
				return err
			}
		}
		existing := make(map[string]struct{}, len(st.entries))
		for _, e := range st.entries {
			existing[e.VoucherID+"/"+e.SourceLineID] = struct{}{}
		}
		for _, e := range entries {
			key := e.VoucherID + "/" + e.SourceLineID
			if _, dup := existing[key]; dup {
				return fmt.Errorf("ledger entry for voucher %s line %s: %w", e.VoucherID, e.SourceLineID, apperrors.ErrDuplicate)
			}
			existing[key] = struct{}{}
		}
		st.entries = append(st.entries, entries...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.LedgerEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *LedgerRepository) DeleteByVoucher(ctx context.Context, voucherID string) (int, error) {
	removed := 0
	err := r.acc.write(func(st *state) error {
		kept := st.entries[:0:0]
		for _, e := range st.entries {
			if e.VoucherID == voucherID {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		st.entries = kept
		return nil
	})
	return removed, err
}

// AppendRaw writes entries without any checks. Tests use it to plant
// inconsistent ledgers for the reconciliation check.
func (r *LedgerRepository) AppendRaw(entries ...domain.LedgerEntry) {
	_ = r.acc.write(func(st *state) error {
		st.entries = append(st.entries, entries...)
		return nil
	})
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)
