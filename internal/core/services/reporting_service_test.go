package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/repositories/database/memory"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Store
	poster  portssvc.LedgerPosterSvc
	service portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newSeededStore()
	repos := suite.store.RepositoryProvider()
	suite.poster = services.NewLedgerPoster(repos.TxManager, repos.LedgerRepo)
	suite.service = services.NewReportingService(repos.LedgerRepo, repos.AccountDir, repos.BusinessDir,
		services.WithReportingVoucherReader(repos.VoucherRepo))
}

func (suite *ReportingServiceTestSuite) post(voucherID string, day int, lines ...domain.VoucherLine) {
	seedPostedVoucher(suite.store, voucherID, date(2025, 4, day), lines...)
	result := suite.poster.PostVoucherToLedger(suite.ctx, voucherID, testUserID)
	suite.Require().True(result.Success, result.Message)
}

// --- Statement / balance ---

func (suite *ReportingServiceTestSuite) TestAccountStatement_OpeningRunningClosing() {
	suite.post("v1", 1, debitLine(cashID, "1000"), creditLine(capitalID, "1000"))
	suite.post("v2", 10, debitLine(rentID, "300"), creditLine(cashID, "300"))
	suite.post("v3", 12, debitLine(rentID, "900"), creditLine(cashID, "900"))
	suite.post("v4", 25, debitLine(cashID, "50"), creditLine(salesID, "50"))

	st, err := suite.service.AccountStatement(suite.ctx, testBusinessID, cashID, date(2025, 4, 5), date(2025, 4, 20))

	suite.Require().NoError(err)
	suite.True(st.OpeningBalance.Equal(dec("1000")))
	suite.Equal(domain.SideDebit, st.OpeningSide)
	suite.Require().Len(st.Lines, 2)
	suite.True(st.Lines[0].RunningBalance.Equal(dec("700")))
	suite.Equal(domain.SideDebit, st.Lines[0].RunningSide)
	suite.True(st.Lines[1].RunningBalance.Equal(dec("-200")))
	suite.Equal(domain.SideCredit, st.Lines[1].RunningSide)
	suite.True(st.TotalCredit.Equal(dec("1200")))
	suite.True(st.ClosingBalance.Equal(dec("-200")))
	suite.Equal(domain.SideCredit, st.ClosingSide)
}

func (suite *ReportingServiceTestSuite) TestAccountStatement_UniformSignRuleForCreditAccounts() {
	suite.post("v1", 1, debitLine(cashID, "1000"), creditLine(capitalID, "1000"))

	st, err := suite.service.AccountStatement(suite.ctx, testBusinessID, capitalID, date(2025, 4, 1), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.True(st.ClosingBalance.Equal(dec("-1000")))
	suite.Equal(domain.SideCredit, st.ClosingSide)
}

func (suite *ReportingServiceTestSuite) TestAccountStatement_Errors() {
	_, err := suite.service.AccountStatement(suite.ctx, testBusinessID, "missing", date(2025, 4, 1), date(2025, 4, 30))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.AccountStatement(suite.ctx, testBusinessID, foreignID, date(2025, 4, 1), date(2025, 4, 30))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.AccountStatement(suite.ctx, "ghost", cashID, date(2025, 4, 1), date(2025, 4, 30))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.AccountStatement(suite.ctx, testBusinessID, cashID, date(2025, 5, 1), date(2025, 4, 30))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestAccountBalance() {
	suite.post("v1", 1, debitLine(cashID, "1000"), creditLine(capitalID, "1000"))
	suite.post("v2", 10, debitLine(rentID, "300"), creditLine(cashID, "300"))

	all, err := suite.service.AccountBalance(suite.ctx, testBusinessID, cashID, nil)
	suite.Require().NoError(err)
	suite.True(all.Balance.Equal(dec("700")))
	suite.Equal(domain.SideDebit, all.Side)
	suite.Nil(all.AsOf)

	asOf := date(2025, 4, 9)
	early, err := suite.service.AccountBalance(suite.ctx, testBusinessID, cashID, &asOf)
	suite.Require().NoError(err)
	suite.True(early.Balance.Equal(dec("1000")))
	suite.Equal("1000", early.Code)
}

// --- Trial balance ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_JournalScenario() {
	suite.post("v1", 2, debitLine(cashID, "10000"), creditLine(capitalID, "10000"))

	entries, _ := suite.store.Ledger().FindByVoucher(suite.ctx, "v1")
	suite.Len(entries, 2)

	tb, err := suite.service.TrialBalance(suite.ctx, testBusinessID, date(2025, 4, 1), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.Equal("Acme Traders", tb.BusinessName)
	suite.Require().Len(tb.Rows, 2)
	suite.Equal(cashID, tb.Rows[0].AccountID)
	suite.True(tb.Rows[0].ClosingDebit.Equal(dec("10000")))
	suite.True(tb.Rows[0].ClosingCredit.IsZero())
	suite.Equal(capitalID, tb.Rows[1].AccountID)
	suite.True(tb.Rows[1].ClosingCredit.Equal(dec("10000")))
	suite.True(tb.TotalClosingDebit.Equal(tb.TotalClosingCredit))
	suite.True(tb.IsBalanced)
	suite.True(tb.Difference.IsZero())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_OpeningPeriodClosingColumns() {
	suite.post("v1", 1, debitLine(cashID, "1000"), creditLine(capitalID, "1000"))
	suite.post("v2", 15, debitLine(rentID, "400"), creditLine(cashID, "400"))
	suite.post("v3", 16, debitLine(bankID, "250"), creditLine(salesID, "250"))

	tb, err := suite.service.TrialBalance(suite.ctx, testBusinessID, date(2025, 4, 10), date(2025, 4, 30))

	suite.Require().NoError(err)
	codes := make([]string, len(tb.Rows))
	for i, r := range tb.Rows {
		codes[i] = r.Code
	}
	suite.Equal([]string{"1000", "1010", "3000", "4000", "5000"}, codes, "rows ordered by code")

	cash := tb.Rows[0]
	suite.True(cash.OpeningDebit.Equal(dec("1000")))
	suite.True(cash.PeriodCredit.Equal(dec("400")))
	suite.True(cash.ClosingDebit.Equal(dec("600")))

	capital := tb.Rows[2]
	suite.True(capital.OpeningCredit.Equal(dec("1000")))
	suite.True(capital.PeriodDebit.IsZero())
	suite.True(capital.ClosingCredit.Equal(dec("1000")))

	suite.True(tb.TotalOpeningDebit.Equal(tb.TotalOpeningCredit))
	suite.True(tb.TotalPeriodDebit.Equal(dec("650")))
	suite.True(tb.TotalClosingDebit.Sub(tb.TotalClosingCredit).Equal(tb.Difference))
	suite.True(tb.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_OmitsZeroInactiveAndGroupAccounts() {
	suite.post("v1", 1, debitLine(cashID, "100"), creditLine(capitalID, "100"))
	suite.store.Ledger().AppendRaw(
		domain.LedgerEntry{EntryID: "x1", BusinessID: testBusinessID, VoucherID: "raw", SourceLineID: "l1", AccountID: inactiveID, EntryDate: date(2025, 4, 3), Debit: dec("5")},
		domain.LedgerEntry{EntryID: "x2", BusinessID: testBusinessID, VoucherID: "raw", SourceLineID: "l2", AccountID: groupID, EntryDate: date(2025, 4, 3), Credit: dec("5")},
	)

	tb, err := suite.service.TrialBalance(suite.ctx, testBusinessID, date(2025, 4, 1), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.Len(tb.Rows, 2)
	for _, r := range tb.Rows {
		suite.NotContains([]string{inactiveID, groupID, bankID}, r.AccountID)
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_ReportsImbalance() {
	suite.post("v1", 1, debitLine(cashID, "100"), creditLine(capitalID, "100"))
	suite.store.Ledger().AppendRaw(domain.LedgerEntry{
		EntryID: "x1", BusinessID: testBusinessID, VoucherID: "raw", SourceLineID: "l1",
		AccountID: bankID, EntryDate: date(2025, 4, 3), Debit: dec("0.01"),
	})

	tb, err := suite.service.TrialBalance(suite.ctx, testBusinessID, date(2025, 4, 1), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.True(tb.Difference.Equal(dec("0.01")))
	suite.False(tb.IsBalanced, "0.01 is not strictly below the tolerance")
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Errors() {
	_, err := suite.service.TrialBalance(suite.ctx, "ghost", date(2025, 4, 1), date(2025, 4, 30))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.TrialBalance(suite.ctx, testBusinessID, date(2025, 4, 30), date(2025, 4, 1))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Profit and loss ---

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_SignConvention() {
	suite.post("v1", 3, debitLine(cashID, "1000"), creditLine(salesID, "1000"))
	suite.post("v2", 4, debitLine(rentID, "600"), creditLine(cashID, "600"))

	pl, err := suite.service.ProfitAndLoss(suite.ctx, testBusinessID, date(2025, 4, 1), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.Require().Len(pl.Income, 1)
	suite.Equal(salesID, pl.Income[0].AccountID)
	suite.True(pl.Income[0].NetAmount.Equal(dec("1000")))
	suite.Require().Len(pl.Expenses, 1)
	suite.True(pl.Expenses[0].NetAmount.Equal(dec("600")))
	suite.True(pl.TotalIncome.Equal(dec("1000")))
	suite.True(pl.TotalExpenses.Equal(dec("600")))
	suite.True(pl.NetProfit.Equal(dec("400")))
	suite.True(pl.IsProfitable)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_LossAndPeriodBounds() {
	suite.post("v1", 3, debitLine(cashID, "100"), creditLine(salesID, "100"))
	suite.post("v2", 20, debitLine(rentID, "600"), creditLine(cashID, "600"))

	pl, err := suite.service.ProfitAndLoss(suite.ctx, testBusinessID, date(2025, 4, 10), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.Empty(pl.Income, "zero-net revenue accounts are omitted")
	suite.True(pl.NetProfit.Equal(dec("-600")))
	suite.False(pl.IsProfitable)
}

// --- Reconciliation ---

func (suite *ReportingServiceTestSuite) TestReconciliationCheck_DetectsUnbalancedVoucher() {
	suite.post("v1", 5, debitLine(cashID, "700"), creditLine(salesID, "700"))
	bad := seedPostedVoucher(suite.store, "v2", date(2025, 4, 6), debitLine(rentID, "500"), creditLine(cashID, "450"))
	suite.store.Ledger().AppendRaw(
		domain.LedgerEntry{EntryID: "b1", BusinessID: testBusinessID, VoucherID: bad.VoucherID, SourceLineID: bad.Lines[0].LineID, AccountID: rentID, EntryDate: bad.VoucherDate, Debit: dec("500")},
		domain.LedgerEntry{EntryID: "b2", BusinessID: testBusinessID, VoucherID: bad.VoucherID, SourceLineID: bad.Lines[1].LineID, AccountID: cashID, EntryDate: bad.VoucherDate, Credit: dec("450")},
	)

	report, err := suite.service.ReconciliationCheck(suite.ctx, testBusinessID, date(2025, 4, 1), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.True(report.TotalDebit.Equal(dec("1200")))
	suite.True(report.TotalCredit.Equal(dec("1150")))
	suite.True(report.Difference.Equal(dec("50")))
	suite.False(report.IsBalanced)
	suite.Require().Len(report.UnbalancedVouchers, 1)
	u := report.UnbalancedVouchers[0]
	suite.Equal("v2", u.VoucherID)
	suite.Equal("JV-v2", u.VoucherNumber)
	suite.Equal(domain.Journal, u.VoucherType)
	suite.True(u.Difference.Equal(dec("50")))
}

func (suite *ReportingServiceTestSuite) TestReconciliationCheck_Balanced() {
	suite.post("v1", 5, debitLine(cashID, "700"), creditLine(salesID, "700"))

	report, err := suite.service.ReconciliationCheck(suite.ctx, testBusinessID, date(2025, 4, 1), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.True(report.IsBalanced)
	suite.Empty(report.UnbalancedVouchers)
}

func (suite *ReportingServiceTestSuite) TestReconciliationCheck_WithoutVoucherReader() {
	repos := suite.store.RepositoryProvider()
	svc := services.NewReportingService(repos.LedgerRepo, repos.AccountDir, repos.BusinessDir)
	suite.store.Ledger().AppendRaw(domain.LedgerEntry{
		EntryID: "x1", BusinessID: testBusinessID, VoucherID: "orphan", SourceLineID: "l1",
		AccountID: cashID, EntryDate: date(2025, 4, 3), Debit: dec("5"),
	})

	report, err := svc.ReconciliationCheck(suite.ctx, testBusinessID, date(2025, 4, 1), date(2025, 4, 30))

	suite.Require().NoError(err)
	suite.Require().Len(report.UnbalancedVouchers, 1)
	suite.Equal("orphan", report.UnbalancedVouchers[0].VoucherID)
	suite.Empty(report.UnbalancedVouchers[0].VoucherNumber)
	suite.Equal(date(2025, 4, 3), report.UnbalancedVouchers[0].VoucherDate)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
