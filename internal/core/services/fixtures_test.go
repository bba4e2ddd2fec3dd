package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/repositories/database/memory"
)

const (
	testBusinessID  = "biz-1"
	otherBusinessID = "biz-2"
	testUserID      = "user-1"

	cashID     = "acc-cash"
	bankID     = "acc-bank"
	salesID    = "acc-sales"
	rentID     = "acc-rent"
	capitalID  = "acc-capital"
	inactiveID = "acc-inactive"
	groupID    = "acc-group"
	foreignID  = "acc-foreign"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newSeededStore returns a store with two businesses and a small chart of accounts.
func newSeededStore() *memory.Store {
	store := memory.NewStore()
	store.SeedBusiness(domain.Business{BusinessID: testBusinessID, Name: "Acme Traders", BaseCurrencyCode: "INR", IsActive: true})
	store.SeedBusiness(domain.Business{BusinessID: otherBusinessID, Name: "Other Co", BaseCurrencyCode: "USD", IsActive: true})

	for _, acc := range []domain.Account{
		{AccountID: cashID, Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true},
		{AccountID: bankID, Code: "1010", Name: "Bank", AccountType: domain.Asset, IsActive: true},
		{AccountID: capitalID, Code: "3000", Name: "Capital", AccountType: domain.Equity, IsActive: true},
		{AccountID: salesID, Code: "4000", Name: "Sales", AccountType: domain.Revenue, IsActive: true},
		{AccountID: rentID, Code: "5000", Name: "Rent", AccountType: domain.Expense, IsActive: true},
		{AccountID: inactiveID, Code: "1900", Name: "Old Till", AccountType: domain.Asset, IsActive: false},
		{AccountID: groupID, Code: "1999", Name: "Current Assets", AccountType: domain.Asset, IsActive: true, IsGroup: true},
	} {
		acc.BusinessID = testBusinessID
		store.SeedAccount(acc)
	}
	store.SeedAccount(domain.Account{AccountID: foreignID, BusinessID: otherBusinessID, Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true})
	return store
}

// seedPostedVoucher stores a POSTED voucher with the given lines directly,
// bypassing lifecycle validation.
func seedPostedVoucher(store *memory.Store, voucherID string, voucherDate time.Time, lines ...domain.VoucherLine) domain.Voucher {
	v := buildPostedVoucher(voucherID, voucherDate, lines...)
	seedVoucher(store, v)
	return v
}

func seedVoucher(store *memory.Store, v domain.Voucher) {
	if err := store.Vouchers().SaveVoucher(context.Background(), v); err != nil {
		panic(err)
	}
}

func buildPostedVoucher(voucherID string, voucherDate time.Time, lines ...domain.VoucherLine) domain.Voucher {
	now := time.Now().UTC()
	for i := range lines {
		lines[i].VoucherID = voucherID
		lines[i].LineNumber = i + 1
		if lines[i].LineID == "" {
			lines[i].LineID = voucherID + "-line-" + string(rune('a'+i))
		}
	}
	v := domain.Voucher{
		VoucherID:     voucherID,
		BusinessID:    testBusinessID,
		VoucherNumber: "JV-" + voucherID,
		VoucherType:   domain.Journal,
		VoucherDate:   voucherDate,
		Status:        domain.VoucherPosted,
		CurrencyCode:  "INR",
		ExchangeRate:  decimal.NewFromInt(1),
		PostedAt:      &now,
		Lines:         lines,
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: testUserID, LastUpdatedAt: now, LastUpdatedBy: testUserID},
	}
	return v
}

func debitLine(accountID, amount string) domain.VoucherLine {
	return domain.VoucherLine{AccountID: accountID, Debit: dec(amount), LineAmount: dec(amount)}
}

func creditLine(accountID, amount string) domain.VoucherLine {
	return domain.VoucherLine{AccountID: accountID, Credit: dec(amount)}
}

// MockLedgerPoster is a mock type for the LedgerPosterSvc interface
type MockLedgerPoster struct {
	mock.Mock
}

func (m *MockLedgerPoster) PostVoucherToLedger(ctx context.Context, voucherID string, postedBy string) *domain.PostingResult {
	args := m.Called(ctx, voucherID, postedBy)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.PostingResult)
}

func (m *MockLedgerPoster) RegenerateVoucherLedger(ctx context.Context, voucherID string, postedBy string) *domain.PostingResult {
	args := m.Called(ctx, voucherID, postedBy)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.PostingResult)
}

func (m *MockLedgerPoster) GetVoucherEntries(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// lockRecordingTxManager wraps a TxManager and records every lock key taken inside its units of work.
type lockRecordingTxManager struct {
	inner portsrepo.TxManager
	mu    sync.Mutex
	keys  []string
}

func (m *lockRecordingTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	return m.inner.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return fn(ctx, &lockRecordingUnitOfWork{UnitOfWork: uow, m: m})
	})
}

func (m *lockRecordingTxManager) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.keys...)
}

type lockRecordingUnitOfWork struct {
	portsrepo.UnitOfWork
	m *lockRecordingTxManager
}

func (u *lockRecordingUnitOfWork) Lock(ctx context.Context, key string) error {
	u.m.mu.Lock()
	u.m.keys = append(u.m.keys, key)
	u.m.mu.Unlock()
	return u.UnitOfWork.Lock(ctx, key)
}
