package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
)

type StoreTestSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = NewStore()
	s.ctx = context.Background()
	s.store.SeedBusiness(domain.Business{BusinessID: "biz-1", Name: "Acme", BaseCurrencyCode: "INR", IsActive: true})
}

func draft(id string, day int, created time.Time) domain.Voucher {
	return domain.Voucher{
		VoucherID:     id,
		BusinessID:    "biz-1",
		VoucherNumber: "JV-" + id,
		VoucherType:   domain.Journal,
		VoucherDate:   time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC),
		Status:        domain.VoucherDraft,
		CurrencyCode:  "INR",
		ExchangeRate:  decimal.NewFromInt(1),
		Lines: []domain.VoucherLine{
			{LineID: id + "-1", VoucherID: id, LineNumber: 1, AccountID: "acc-1", Debit: decimal.NewFromInt(10)},
			{LineID: id + "-2", VoucherID: id, LineNumber: 2, AccountID: "acc-2", Credit: decimal.NewFromInt(10)},
		},
		AuditFields: domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
	}
}

func entry(voucherID, lineID string, debit, credit int64) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      voucherID + "/" + lineID,
		BusinessID:   "biz-1",
		VoucherID:    voucherID,
		SourceLineID: lineID,
		AccountID:    "acc-1",
		EntryDate:    time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Debit:        decimal.NewFromInt(debit),
		Credit:       decimal.NewFromInt(credit),
	}
}

func (s *StoreTestSuite) TestRunInTx_RollsBackOnError() {
	boom := errors.New("boom")
	err := s.store.RunInTx(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		require.NoError(s.T(), uow.Vouchers().SaveVoucher(ctx, draft("v1", 1, time.Now())))
		_, err := uow.Ledger().InsertBatch(ctx, []domain.LedgerEntry{entry("v1", "l1", 10, 0)})
		require.NoError(s.T(), err)
		return boom
	})
	assert.ErrorIs(s.T(), err, boom)

	_, err = s.store.Vouchers().FindVoucherByID(s.ctx, "v1")
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
	has, err := s.store.Ledger().HasEntries(s.ctx, "v1")
	require.NoError(s.T(), err)
	assert.False(s.T(), has)
}

func (s *StoreTestSuite) TestRunInTx_WritesInvisibleUntilCommit() {
	err := s.store.RunInTx(s.ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		require.NoError(s.T(), uow.Vouchers().SaveVoucher(ctx, draft("v1", 1, time.Now())))

		inside, err := uow.Vouchers().FindVoucherByID(ctx, "v1")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), "v1", inside.VoucherID)

		_, err = s.store.Vouchers().FindVoucherByID(ctx, "v1")
		assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
		return nil
	})
	require.NoError(s.T(), err)

	_, err = s.store.Vouchers().FindVoucherByID(s.ctx, "v1")
	assert.NoError(s.T(), err)
}

func (s *StoreTestSuite) TestRunInTx_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	called := false
	err := s.store.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		called = true
		return nil
	})
	assert.ErrorIs(s.T(), err, context.Canceled)
	assert.False(s.T(), called)
}

func (s *StoreTestSuite) TestInsertBatch_DuplicateSourceLineRejectsWholeBatch() {
	ledger := s.store.Ledger()
	_, err := ledger.InsertBatch(s.ctx, []domain.LedgerEntry{entry("v1", "l1", 10, 0)})
	require.NoError(s.T(), err)

	_, err = ledger.InsertBatch(s.ctx, []domain.LedgerEntry{entry("v1", "l2", 0, 10), entry("v1", "l1", 10, 0)})
	assert.ErrorIs(s.T(), err, apperrors.ErrDuplicate)

	entries, err := ledger.FindByVoucher(s.ctx, "v1")
	require.NoError(s.T(), err)
	assert.Len(s.T(), entries, 1)
}

func (s *StoreTestSuite) TestInsertHookFailsInsert() {
	s.store.SetInsertHook(func([]domain.LedgerEntry) error { return errors.New("disk full") })
	_, err := s.store.Ledger().InsertBatch(s.ctx, []domain.LedgerEntry{entry("v1", "l1", 10, 0)})
	assert.EqualError(s.T(), err, "disk full")
}

func (s *StoreTestSuite) TestLedgerBalancesAndRanges() {
	ledger := s.store.Ledger()
	e1 := entry("v1", "l1", 100, 0)
	e2 := entry("v2", "l1", 0, 30)
	e2.EntryDate = time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	ledger.AppendRaw(e1, e2)

	cut := time.Date(2025, time.March, 4, 23, 0, 0, 0, time.UTC)
	bal, err := ledger.BalanceAsOf(s.ctx, "acc-1", &cut)
	require.NoError(s.T(), err)
	assert.True(s.T(), bal.Equal(decimal.NewFromInt(100)))

	bal, err = ledger.BalanceAsOf(s.ctx, "acc-1", nil)
	require.NoError(s.T(), err)
	assert.True(s.T(), bal.Equal(decimal.NewFromInt(70)))

	from := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	debit, credit, err := ledger.TotalsForPeriod(s.ctx, "biz-1", from, from)
	require.NoError(s.T(), err)
	assert.True(s.T(), debit.IsZero())
	assert.True(s.T(), credit.Equal(decimal.NewFromInt(30)))

	removed, err := ledger.DeleteByVoucher(s.ctx, "v1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, removed)
}

func (s *StoreTestSuite) TestListVouchers_PagesNewestFirstAndSkipsDeleted() {
	repo := s.store.Vouchers()
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(s.T(), repo.SaveVoucher(s.ctx, draft("a", 1, base)))
	require.NoError(s.T(), repo.SaveVoucher(s.ctx, draft("b", 2, base)))
	require.NoError(s.T(), repo.SaveVoucher(s.ctx, draft("c", 2, base.Add(time.Minute))))
	require.NoError(s.T(), repo.SaveVoucher(s.ctx, draft("d", 3, base)))
	ok, err := repo.MarkDeleted(s.ctx, "d", "user-1", base)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	page, token, err := repo.ListVouchers(s.ctx, "biz-1", domain.VoucherFilter{}, 2, nil)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), token)
	require.Len(s.T(), page, 2)
	assert.Equal(s.T(), "c", page[0].VoucherID)
	assert.Equal(s.T(), "b", page[1].VoucherID)
	assert.Nil(s.T(), page[0].Lines)

	page, token, err = repo.ListVouchers(s.ctx, "biz-1", domain.VoucherFilter{}, 2, token)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), token)
	require.Len(s.T(), page, 1)
	assert.Equal(s.T(), "a", page[0].VoucherID)

	bad := "%%%"
	_, _, err = repo.ListVouchers(s.ctx, "biz-1", domain.VoucherFilter{}, 2, &bad)
	assert.ErrorIs(s.T(), err, apperrors.ErrValidation)
}

func (s *StoreTestSuite) TestVoucherNumberingAndUniqueness() {
	repo := s.store.Vouchers()
	v := draft("a", 1, time.Now())
	v.VoucherNumber, _ = repo.GenerateVoucherNumber(s.ctx, "biz-1", domain.Journal, v.VoucherDate)
	assert.Equal(s.T(), "JV2500001", v.VoucherNumber)
	require.NoError(s.T(), repo.SaveVoucher(s.ctx, v))

	next, err := repo.GenerateVoucherNumber(s.ctx, "biz-1", domain.Journal, v.VoucherDate)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "JV2500002", next)

	clash := draft("b", 1, time.Now())
	clash.VoucherNumber = v.VoucherNumber
	assert.ErrorIs(s.T(), repo.SaveVoucher(s.ctx, clash), apperrors.ErrDuplicate)
	assert.ErrorIs(s.T(), repo.SaveVoucher(s.ctx, v), apperrors.ErrDuplicate)
}

func (s *StoreTestSuite) TestStatusTransitionsOnlyFromDraft() {
	repo := s.store.Vouchers()
	require.NoError(s.T(), repo.SaveVoucher(s.ctx, draft("a", 1, time.Now())))

	posted, err := repo.SetPosted(s.ctx, "a", "user-1", time.Now())
	require.NoError(s.T(), err)
	assert.True(s.T(), posted)

	posted, err = repo.SetPosted(s.ctx, "a", "user-1", time.Now())
	require.NoError(s.T(), err)
	assert.False(s.T(), posted)

	deleted, err := repo.MarkDeleted(s.ctx, "a", "user-1", time.Now())
	require.NoError(s.T(), err)
	assert.False(s.T(), deleted)

	assert.ErrorIs(s.T(), repo.UpdateVoucher(s.ctx, draft("a", 2, time.Now())), apperrors.ErrInvalidState)

	pending, err := repo.ListPostedWithoutLedger(s.ctx, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), pending, 1)
	assert.Equal(s.T(), "a", pending[0].VoucherID)
}

func (s *StoreTestSuite) TestFindVoucherReturnsCopy() {
	repo := s.store.Vouchers()
	require.NoError(s.T(), repo.SaveVoucher(s.ctx, draft("a", 1, time.Now())))

	got, err := repo.FindVoucherByID(s.ctx, "a")
	require.NoError(s.T(), err)
	got.Lines[0].Debit = decimal.NewFromInt(999)

	again, err := repo.FindVoucherByID(s.ctx, "a")
	require.NoError(s.T(), err)
	assert.True(s.T(), again.Lines[0].Debit.Equal(decimal.NewFromInt(10)))
}
