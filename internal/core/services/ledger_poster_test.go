package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/repositories/database/memory"
)

type LedgerPosterTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *memory.Store
	poster portssvc.LedgerPosterSvc
}

func (suite *LedgerPosterTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newSeededStore()
	suite.poster = services.NewLedgerPoster(suite.store, suite.store.Ledger())
}

func (suite *LedgerPosterTestSuite) TestPost_CreatesBalancedEntries() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2),
		debitLine(cashID, "10000"),
		creditLine(capitalID, "10000"),
	)

	result := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)

	suite.Require().True(result.Success, result.Message)
	suite.Equal(domain.OutcomePosted, result.Outcome)
	suite.False(result.Idempotent)
	suite.Equal(2, result.EntriesCreated)
	suite.Len(result.EntryIDs, 2)
	suite.True(result.TotalDebit.Equal(dec("10000")))
	suite.True(result.TotalCredit.Equal(dec("10000")))
	suite.True(result.Difference.IsZero())

	entries, err := suite.store.Ledger().FindByVoucher(suite.ctx, v.VoucherID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	for i, e := range entries {
		suite.Equal(v.Lines[i].LineID, e.SourceLineID)
		suite.Equal(testBusinessID, e.BusinessID)
		suite.Equal(date(2025, 4, 2), e.EntryDate)
		suite.Equal(domain.Unreconciled, e.ReconciliationStatus)
		suite.Equal(testUserID, e.CreatedBy)
	}
}

func (suite *LedgerPosterTestSuite) TestPost_IsIdempotent() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2),
		debitLine(cashID, "250"),
		creditLine(salesID, "250"),
	)

	first := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)
	second := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)

	suite.Require().True(first.Success)
	suite.Require().True(second.Success)
	suite.Equal(domain.OutcomeAlreadyPosted, second.Outcome)
	suite.True(second.Idempotent)
	suite.Equal(first.EntriesCreated, second.EntriesCreated)
	suite.ElementsMatch(first.EntryIDs, second.EntryIDs)
	suite.Contains(second.Message, "idempotent")

	entries, err := suite.store.Ledger().FindByVoucher(suite.ctx, v.VoucherID)
	suite.Require().NoError(err)
	suite.Len(entries, 2)
}

func (suite *LedgerPosterTestSuite) TestPost_ConcurrentCallsPostOnce() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2),
		debitLine(cashID, "99.99"),
		creditLine(salesID, "99.99"),
	)

	const workers = 16
	results := make([]*domain.PostingResult, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)
		}(i)
	}
	wg.Wait()

	posted := 0
	for _, r := range results {
		suite.Require().True(r.Success, r.Message)
		suite.ElementsMatch(results[0].EntryIDs, r.EntryIDs)
		if r.Outcome == domain.OutcomePosted {
			posted++
		}
	}
	suite.Equal(1, posted)

	entries, err := suite.store.Ledger().FindByVoucher(suite.ctx, v.VoucherID)
	suite.Require().NoError(err)
	suite.Len(entries, 2)
}

func (suite *LedgerPosterTestSuite) TestPost_SkipsZeroLines() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2),
		debitLine(cashID, "500"),
		domain.VoucherLine{AccountID: bankID},
		creditLine(salesID, "500"),
	)

	result := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)

	suite.Require().True(result.Success)
	suite.Equal(2, result.EntriesCreated)
	entries, _ := suite.store.Ledger().FindByVoucher(suite.ctx, v.VoucherID)
	for _, e := range entries {
		suite.NotEqual(bankID, e.AccountID)
	}
}

func (suite *LedgerPosterTestSuite) TestPost_AppliesExchangeRateAndTags() {
	cc := "cc-north"
	project := "proj-7"
	lineProject := "proj-line"
	v := buildPostedVoucher("v1", date(2025, 4, 2),
		domain.VoucherLine{AccountID: cashID, Debit: dec("100.00"), ProjectID: &lineProject},
		creditLine(salesID, "100.00"),
	)
	v.ExchangeRate = dec("82.123456")
	v.CostCenterID = &cc
	v.ProjectID = &project
	seedVoucher(suite.store, v)

	result := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)
	suite.Require().True(result.Success, result.Message)

	entries, _ := suite.store.Ledger().FindByVoucher(suite.ctx, v.VoucherID)
	suite.Require().Len(entries, 2)
	suite.True(entries[0].BaseDebit.Equal(dec("8212.35")), entries[0].BaseDebit.String())
	suite.True(entries[1].BaseCredit.Equal(dec("8212.35")))
	suite.True(entries[0].ExchangeRate.Equal(dec("82.123456")))
	suite.Equal(cc, *entries[0].CostCenterID)
	suite.Equal(lineProject, *entries[0].ProjectID)
	suite.Equal(project, *entries[1].ProjectID)
}

func (suite *LedgerPosterTestSuite) TestPost_NotFound() {
	result := suite.poster.PostVoucherToLedger(suite.ctx, "missing", testUserID)

	suite.False(result.Success)
	suite.Equal(domain.OutcomeNotFound, result.Outcome)
	suite.Equal(0, result.EntriesCreated)
	suite.ErrorIs(result.Err(), domain.ErrPostingFailed)
}

func (suite *LedgerPosterTestSuite) TestPost_RejectsDraft() {
	v := buildPostedVoucher("draft-1", date(2025, 4, 2), debitLine(cashID, "1"), creditLine(salesID, "1"))
	v.Status = domain.VoucherDraft
	v.PostedAt = nil
	seedVoucher(suite.store, v)

	result := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)

	suite.False(result.Success)
	suite.Equal(domain.OutcomeInvalidStatus, result.Outcome)
	suite.Contains(result.Message, "DRAFT")
	has, _ := suite.store.Ledger().HasEntries(suite.ctx, v.VoucherID)
	suite.False(has)
}

func (suite *LedgerPosterTestSuite) TestPost_EmptyVoucher() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2),
		domain.VoucherLine{AccountID: cashID},
		domain.VoucherLine{AccountID: salesID},
	)

	result := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)

	suite.False(result.Success)
	suite.Equal(domain.OutcomeEmptyVoucher, result.Outcome)
	suite.Equal("no lines to post", result.Message)
}

func (suite *LedgerPosterTestSuite) TestPost_UnbalancedPersistsNothing() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2),
		debitLine(cashID, "500"),
		creditLine(salesID, "450"),
	)

	result := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)

	suite.False(result.Success)
	suite.Equal(domain.OutcomeUnbalanced, result.Outcome)
	suite.True(result.Difference.Equal(dec("50")))
	suite.Contains(result.Message, "50.00")
	has, _ := suite.store.Ledger().HasEntries(suite.ctx, v.VoucherID)
	suite.False(has)
}

func (suite *LedgerPosterTestSuite) TestPost_WithinToleranceSucceeds() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2),
		debitLine(cashID, "100.01"),
		creditLine(salesID, "100.00"),
	)

	result := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)

	suite.True(result.Success, result.Message)
}

func (suite *LedgerPosterTestSuite) TestPost_PersistenceErrorRollsBack() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2), debitLine(cashID, "10"), creditLine(salesID, "10"))
	suite.store.SetInsertHook(func([]domain.LedgerEntry) error { return errors.New("disk full") })

	result := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)

	suite.False(result.Success)
	suite.Equal(domain.OutcomePersistenceError, result.Outcome)
	suite.Contains(result.Message, "disk full")
	has, _ := suite.store.Ledger().HasEntries(suite.ctx, v.VoucherID)
	suite.False(has)
}

func (suite *LedgerPosterTestSuite) TestRegenerate_ReplacesEntries() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2), debitLine(cashID, "10"), creditLine(salesID, "10"))
	first := suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID)
	suite.Require().True(first.Success)

	result := suite.poster.RegenerateVoucherLedger(suite.ctx, v.VoucherID, testUserID)

	suite.Require().True(result.Success, result.Message)
	suite.Equal(domain.OutcomePosted, result.Outcome)
	suite.Equal(2, result.EntriesCreated)
	for _, id := range first.EntryIDs {
		suite.NotContains(result.EntryIDs, id)
	}
	entries, _ := suite.store.Ledger().FindByVoucher(suite.ctx, v.VoucherID)
	suite.Len(entries, 2)
}

func (suite *LedgerPosterTestSuite) TestRegenerate_UnbalancedKeepsExistingEntries() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2), debitLine(cashID, "10"), creditLine(salesID, "9"))
	suite.store.Ledger().AppendRaw(
		domain.LedgerEntry{EntryID: "old-1", BusinessID: testBusinessID, VoucherID: v.VoucherID, SourceLineID: v.Lines[0].LineID, AccountID: cashID, Debit: dec("10")},
		domain.LedgerEntry{EntryID: "old-2", BusinessID: testBusinessID, VoucherID: v.VoucherID, SourceLineID: v.Lines[1].LineID, AccountID: salesID, Credit: dec("10")},
	)

	result := suite.poster.RegenerateVoucherLedger(suite.ctx, v.VoucherID, testUserID)

	suite.False(result.Success)
	suite.Equal(domain.OutcomeUnbalanced, result.Outcome)
	entries, _ := suite.store.Ledger().FindByVoucher(suite.ctx, v.VoucherID)
	suite.Require().Len(entries, 2)
	suite.Equal("old-1", entries[0].EntryID)
}

func (suite *LedgerPosterTestSuite) TestRegenerate_RequiresPosted() {
	v := buildPostedVoucher("draft-1", date(2025, 4, 2), debitLine(cashID, "1"), creditLine(salesID, "1"))
	v.Status = domain.VoucherDraft
	seedVoucher(suite.store, v)

	result := suite.poster.RegenerateVoucherLedger(suite.ctx, v.VoucherID, testUserID)

	suite.Equal(domain.OutcomeInvalidStatus, result.Outcome)
}

func (suite *LedgerPosterTestSuite) TestGetVoucherEntries() {
	v := seedPostedVoucher(suite.store, "v1", date(2025, 4, 2), debitLine(cashID, "10"), creditLine(salesID, "10"))
	suite.Require().True(suite.poster.PostVoucherToLedger(suite.ctx, v.VoucherID, testUserID).Success)

	entries, err := suite.poster.GetVoucherEntries(suite.ctx, v.VoucherID)

	suite.Require().NoError(err)
	suite.Len(entries, 2)
}

func TestLedgerPoster(t *testing.T) {
	suite.Run(t, new(LedgerPosterTestSuite))
}
