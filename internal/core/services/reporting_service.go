package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/shopspring/decimal"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/utils/accounting"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerReader
	accountDir  portsrepo.AccountDirectory
	businessDir portsrepo.BusinessDirectory
	voucherRepo portsrepo.VoucherReader
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingVoucherReader lets the reconciliation check attach voucher
// numbers and types to unbalanced vouchers.
func WithReportingVoucherReader(reader portsrepo.VoucherReader) ReportingServiceOption {
	return func(s *reportingService) {
		s.voucherRepo = reader
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(ledgerRepo portsrepo.LedgerReader, accountDir portsrepo.AccountDirectory, businessDir portsrepo.BusinessDirectory, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{
		ledgerRepo:  ledgerRepo,
		accountDir:  accountDir,
		businessDir: businessDir,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// AccountStatement lists the account's entries in [from, to] with running balances.
func (s *reportingService) AccountStatement(ctx context.Context, businessID, accountID string, from, to time.Time) (*domain.AccountStatement, error) {
	from, to, err := normalizePeriod(from, to)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	account, err := s.requireAccount(ctx, businessID, accountID)
	if err != nil {
		return nil, err
	}

	dayBefore := from.AddDate(0, 0, -1)
	opening, err := s.ledgerRepo.BalanceAsOf(ctx, accountID, &dayBefore)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}
	entries, err := s.ledgerRepo.FindByAccount(ctx, accountID, &from, &to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account entries", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve account entries: %w", err)
	}

	statement := &domain.AccountStatement{
		Account:        *account,
		FromDate:       from,
		ToDate:         to,
		OpeningBalance: opening,
		OpeningSide:    accounting.SideOf(opening),
		Lines:          make([]domain.StatementLine, 0, len(entries)),
	}
	running := opening
	for _, e := range entries {
		running = running.Add(e.Debit).Sub(e.Credit)
		statement.TotalDebit = statement.TotalDebit.Add(e.Debit)
		statement.TotalCredit = statement.TotalCredit.Add(e.Credit)
		statement.Lines = append(statement.Lines, domain.StatementLine{
			LedgerEntry:    e,
			RunningBalance: running,
			RunningSide:    accounting.SideOf(running),
		})
	}
	statement.ClosingBalance = opening.Add(statement.TotalDebit).Sub(statement.TotalCredit)
	statement.ClosingSide = accounting.SideOf(statement.ClosingBalance)

	s.LogInfo(ctx, "Account statement generated successfully",
		slog.String("account_id", accountID),
		slog.String("from", from.Format(domain.DateLayout)),
		slog.String("to", to.Format(domain.DateLayout)),
		slog.Int("entry_count", len(entries)))
	return statement, nil
}

// AccountBalance returns debit minus credit up to asOf (all time when nil).
func (s *reportingService) AccountBalance(ctx context.Context, businessID, accountID string, asOf *time.Time) (*domain.AccountBalance, error) {
	if _, err := s.requireBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	account, err := s.requireAccount(ctx, businessID, accountID)
	if err != nil {
		return nil, err
	}

	var date *time.Time
	if asOf != nil {
		d := domain.DateOnly(*asOf)
		date = &d
	}
	balance, err := s.ledgerRepo.BalanceAsOf(ctx, accountID, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute account balance", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to compute account balance: %w", err)
	}

	return &domain.AccountBalance{
		AccountID:   account.AccountID,
		Code:        account.Code,
		Name:        account.Name,
		AccountType: account.AccountType,
		AsOf:        date,
		Balance:     balance,
		Side:        accounting.SideOf(balance),
	}, nil
}

// TrialBalance generates the per-account opening, period and closing summary.
func (s *reportingService) TrialBalance(ctx context.Context, businessID string, from, to time.Time) (*domain.TrialBalanceReport, error) {
	from, to, err := normalizePeriod(from, to)
	if err != nil {
		return nil, err
	}
	business, err := s.requireBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.postableAccounts(ctx, businessID)
	if err != nil {
		return nil, err
	}

	dayBefore := from.AddDate(0, 0, -1)
	openings, err := s.ledgerRepo.BalancesAsOf(ctx, businessID, &dayBefore)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve opening balances", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to retrieve opening balances: %w", err)
	}
	movements, err := s.ledgerRepo.MovementsForPeriod(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve period movements", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to retrieve period movements: %w", err)
	}

	rows := treemap.NewWithStringComparator()
	for _, acc := range accounts {
		opening := openings[acc.AccountID]
		movement := movements[acc.AccountID]
		closing := opening.Add(movement.Debit).Sub(movement.Credit)
		if opening.IsZero() && movement.Debit.IsZero() && movement.Credit.IsZero() && closing.IsZero() {
			continue
		}

		row := domain.TrialBalanceRow{
			AccountID:    acc.AccountID,
			Code:         acc.Code,
			Name:         acc.Name,
			AccountType:  acc.AccountType,
			PeriodDebit:  movement.Debit,
			PeriodCredit: movement.Credit,
		}
		row.OpeningDebit, row.OpeningCredit = accounting.SplitBalance(opening)
		row.ClosingDebit, row.ClosingCredit = accounting.SplitBalance(closing)
		rows.Put(accountSortKey(acc), row)
	}

	report := &domain.TrialBalanceReport{
		BusinessID:   business.BusinessID,
		BusinessName: business.Name,
		FromDate:     from,
		ToDate:       to,
		Rows:         make([]domain.TrialBalanceRow, 0, rows.Size()),
	}
	it := rows.Iterator()
	for it.Next() {
		row := it.Value().(domain.TrialBalanceRow)
		report.Rows = append(report.Rows, row)
		report.TotalOpeningDebit = report.TotalOpeningDebit.Add(row.OpeningDebit)
		report.TotalOpeningCredit = report.TotalOpeningCredit.Add(row.OpeningCredit)
		report.TotalPeriodDebit = report.TotalPeriodDebit.Add(row.PeriodDebit)
		report.TotalPeriodCredit = report.TotalPeriodCredit.Add(row.PeriodCredit)
		report.TotalClosingDebit = report.TotalClosingDebit.Add(row.ClosingDebit)
		report.TotalClosingCredit = report.TotalClosingCredit.Add(row.ClosingCredit)
	}
	report.Difference = report.TotalClosingDebit.Sub(report.TotalClosingCredit)
	report.IsBalanced = accounting.WithinTolerance(report.Difference)

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("business_id", businessID),
		slog.String("from", from.Format(domain.DateLayout)),
		slog.String("to", to.Format(domain.DateLayout)),
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("balanced", report.IsBalanced))
	return report, nil
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *reportingService) ProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	from, to, err := normalizePeriod(from, to)
	if err != nil {
		return nil, err
	}
	business, err := s.requireBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	accounts, err := s.postableAccounts(ctx, businessID)
	if err != nil {
		return nil, err
	}
	movements, err := s.ledgerRepo.MovementsForPeriod(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve profit and loss data",
			slog.String("business_id", businessID),
			slog.String("from", from.Format(domain.DateLayout)),
			slog.String("to", to.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
	}

	income := treemap.NewWithStringComparator()
	expenses := treemap.NewWithStringComparator()
	for _, acc := range accounts {
		m := movements[acc.AccountID]
		var net decimal.Decimal
		var target *treemap.Map
		switch acc.AccountType {
		case domain.Revenue:
			net, target = m.Credit.Sub(m.Debit), income
		case domain.Expense:
			net, target = m.Debit.Sub(m.Credit), expenses
		default:
			continue
		}
		if net.IsZero() {
			continue
		}
		target.Put(accountSortKey(acc), domain.AccountAmount{
			AccountID: acc.AccountID,
			Code:      acc.Code,
			Name:      acc.Name,
			NetAmount: net,
		})
	}

	report := &domain.ProfitAndLossReport{
		BusinessID:   business.BusinessID,
		BusinessName: business.Name,
		FromDate:     from,
		ToDate:       to,
	}
	report.Income, report.TotalIncome = collectAmounts(income)
	report.Expenses, report.TotalExpenses = collectAmounts(expenses)
	report.NetProfit = report.TotalIncome.Sub(report.TotalExpenses)
	report.IsProfitable = !report.NetProfit.IsNegative()

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("business_id", businessID),
		slog.String("from", from.Format(domain.DateLayout)),
		slog.String("to", to.Format(domain.DateLayout)),
		slog.Int("revenue_accounts", len(report.Income)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return report, nil
}

// ReconciliationCheck compares period debit and credit totals and lists every
// voucher whose own entries do not balance.
func (s *reportingService) ReconciliationCheck(ctx context.Context, businessID string, from, to time.Time) (*domain.ReconciliationReport, error) {
	from, to, err := normalizePeriod(from, to)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	debit, credit, err := s.ledgerRepo.TotalsForPeriod(ctx, businessID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve period totals", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to retrieve period totals: %w", err)
	}
	entries, err := s.ledgerRepo.FindByBusiness(ctx, businessID, &from, &to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve period entries", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to retrieve period entries: %w", err)
	}

	byVoucher := make(map[string]domain.Movement)
	entryDates := make(map[string]time.Time)
	for _, e := range entries {
		byVoucher[e.VoucherID] = byVoucher[e.VoucherID].Add(e)
		entryDates[e.VoucherID] = e.EntryDate
	}

	unbalanced := make([]domain.UnbalancedVoucher, 0)
	for voucherID, m := range byVoucher {
		diff := m.Net()
		if !accounting.ExceedsTolerance(diff) {
			continue
		}
		unbalanced = append(unbalanced, domain.UnbalancedVoucher{
			VoucherID:   voucherID,
			VoucherDate: entryDates[voucherID],
			Debit:       m.Debit,
			Credit:      m.Credit,
			Difference:  diff,
		})
	}
	if err := s.attachVoucherMetadata(ctx, unbalanced); err != nil {
		return nil, err
	}
	sort.Slice(unbalanced, func(i, j int) bool {
		a, b := unbalanced[i], unbalanced[j]
		if !a.VoucherDate.Equal(b.VoucherDate) {
			return a.VoucherDate.Before(b.VoucherDate)
		}
		if a.VoucherNumber != b.VoucherNumber {
			return a.VoucherNumber < b.VoucherNumber
		}
		return a.VoucherID < b.VoucherID
	})

	difference := debit.Sub(credit)
	report := &domain.ReconciliationReport{
		BusinessID:         businessID,
		FromDate:           from,
		ToDate:             to,
		TotalDebit:         debit,
		TotalCredit:        credit,
		Difference:         difference,
		IsBalanced:         !accounting.ExceedsTolerance(difference),
		UnbalancedVouchers: unbalanced,
	}

	if !report.IsBalanced || len(unbalanced) > 0 {
		s.GetLogger(ctx).Warn("Reconciliation check found discrepancies",
			slog.String("business_id", businessID),
			slog.String("difference", difference.StringFixed(2)),
			slog.Int("unbalanced_vouchers", len(unbalanced)))
	} else {
		s.LogInfo(ctx, "Reconciliation check passed", slog.String("business_id", businessID))
	}
	return report, nil
}

func (s *reportingService) attachVoucherMetadata(ctx context.Context, unbalanced []domain.UnbalancedVoucher) error {
	if s.voucherRepo == nil || len(unbalanced) == 0 {
		return nil
	}
	ids := make([]string, len(unbalanced))
	for i, u := range unbalanced {
		ids[i] = u.VoucherID
	}
	vouchers, err := s.voucherRepo.FindVouchersByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load unbalanced voucher details")
		return fmt.Errorf("failed to load voucher details: %w", err)
	}
	for i := range unbalanced {
		if v, ok := vouchers[unbalanced[i].VoucherID]; ok {
			unbalanced[i].VoucherNumber = v.VoucherNumber
			unbalanced[i].VoucherType = v.VoucherType
			unbalanced[i].VoucherDate = v.VoucherDate
		}
	}
	return nil
}

func (s *reportingService) requireBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessDir.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("business %s: %w", businessID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load business: %w", err)
	}
	return business, nil
}

func (s *reportingService) requireAccount(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	account, err := s.accountDir.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.BusinessID != businessID {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return account, nil
}

// postableAccounts returns the active, non-group accounts of a business.
func (s *reportingService) postableAccounts(ctx context.Context, businessID string) ([]domain.Account, error) {
	all, err := s.accountDir.ListAccounts(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accounts := make([]domain.Account, 0, len(all))
	for _, acc := range all {
		if acc.IsPostable() {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

func normalizePeriod(from, to time.Time) (time.Time, time.Time, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if from.After(to) {
		return from, to, fmt.Errorf("%w: fromDate %s is after toDate %s",
			apperrors.ErrValidation, from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	}
	return from, to, nil
}

// accountSortKey orders by code; the ID suffix keeps duplicate codes distinct.
func accountSortKey(acc domain.Account) string {
	return acc.Code + "\x00" + acc.AccountID
}

func collectAmounts(m *treemap.Map) ([]domain.AccountAmount, decimal.Decimal) {
	amounts := make([]domain.AccountAmount, 0, m.Size())
	total := decimal.Zero
	it := m.Iterator()
	for it.Next() {
		a := it.Value().(domain.AccountAmount)
		amounts = append(amounts, a)
		total = total.Add(a.NetAmount)
	}
	return amounts, total
}
