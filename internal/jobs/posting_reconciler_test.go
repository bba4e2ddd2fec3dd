package jobs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/repositories/database/memory"
)

type PostingReconcilerTestSuite struct {
	suite.Suite
	store      *memory.Store
	reconciler *PostingReconciler
	ctx        context.Context
}

func TestPostingReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(PostingReconcilerTestSuite))
}

func (s *PostingReconcilerTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.ctx = context.Background()
	poster := services.NewLedgerPoster(s.store, s.store.Ledger())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.reconciler = NewPostingReconciler(s.store.Vouchers(), poster, logger, 10)
}

func (s *PostingReconcilerTestSuite) seedPosted(id string, debit, credit string, postingErr *string) {
	now := time.Now().UTC()
	v := domain.Voucher{
		VoucherID:          id,
		BusinessID:         "biz-1",
		VoucherNumber:      "JV-" + id,
		VoucherType:        domain.Journal,
		VoucherDate:        time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC),
		Status:             domain.VoucherPosted,
		CurrencyCode:       "INR",
		ExchangeRate:       decimal.NewFromInt(1),
		PostedAt:           &now,
		LedgerPostingError: postingErr,
		Lines: []domain.VoucherLine{
			{LineID: id + "-1", VoucherID: id, LineNumber: 1, AccountID: "acc-cash", Debit: decimal.RequireFromString(debit)},
			{LineID: id + "-2", VoucherID: id, LineNumber: 2, AccountID: "acc-sales", Credit: decimal.RequireFromString(credit)},
		},
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	require.NoError(s.T(), s.store.Vouchers().SaveVoucher(s.ctx, v))
}

func (s *PostingReconcilerTestSuite) TestRunOnce_PostsMissingLedgerAndClearsError() {
	msg := "PERSISTENCE_ERROR: connection reset"
	s.seedPosted("v1", "250.00", "250.00", &msg)

	summary, err := s.reconciler.RunOnce(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), ReconcileSummary{Scanned: 1, Posted: 1}, summary)

	entries, err := s.store.Ledger().FindByVoucher(s.ctx, "v1")
	require.NoError(s.T(), err)
	require.Len(s.T(), entries, 2)
	assert.Equal(s.T(), ReconcilerUser, entries[0].CreatedBy)

	v, err := s.store.Vouchers().FindVoucherByID(s.ctx, "v1")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), v.LedgerPostingError)

	summary, err = s.reconciler.RunOnce(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), ReconcileSummary{}, summary)
}

func (s *PostingReconcilerTestSuite) TestRunOnce_RecordsPersistentFailure() {
	s.seedPosted("v2", "500.00", "450.00", nil)

	summary, err := s.reconciler.RunOnce(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), ReconcileSummary{Scanned: 1, Failed: 1}, summary)

	v, err := s.store.Vouchers().FindVoucherByID(s.ctx, "v2")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), v.LedgerPostingError)
	assert.Contains(s.T(), *v.LedgerPostingError, "unbalanced")

	has, err := s.store.Ledger().HasEntries(s.ctx, "v2")
	require.NoError(s.T(), err)
	assert.False(s.T(), has)
}

func (s *PostingReconcilerTestSuite) TestRunOnce_RecoversAfterStorageFault() {
	s.seedPosted("v3", "80.00", "80.00", nil)
	s.store.SetInsertHook(func([]domain.LedgerEntry) error { return errors.New("disk full") })

	summary, err := s.reconciler.RunOnce(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, summary.Failed)

	s.store.SetInsertHook(nil)
	summary, err = s.reconciler.RunOnce(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 1, summary.Posted)

	v, err := s.store.Vouchers().FindVoucherByID(s.ctx, "v3")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), v.LedgerPostingError)
}

func (s *PostingReconcilerTestSuite) TestRunOnce_CancelledContext() {
	s.seedPosted("v4", "10.00", "10.00", nil)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.reconciler.RunOnce(ctx)
	assert.ErrorIs(s.T(), err, context.Canceled)
}

func (s *PostingReconcilerTestSuite) TestStartAndStop() {
	stop := s.reconciler.Start(1)
	assert.NotPanics(s.T(), stop)
}

func (s *PostingReconcilerTestSuite) TestStartLogsScheduleOnce() {
	var buf bytes.Buffer
	poster := services.NewLedgerPoster(s.store, s.store.Ledger())
	reconciler := NewPostingReconciler(s.store.Vouchers(), poster, slog.New(slog.NewTextHandler(&buf, nil)), 10)

	stop := reconciler.Start(5)
	stop()

	out := buf.String()
	assert.Equal(s.T(), 1, strings.Count(out, "Posting reconciler scheduled"))
	assert.Contains(s.T(), out, "interval_minutes=5")
}
