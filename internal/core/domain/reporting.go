package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one ledger entry of an account statement with the balance after it.
type StatementLine struct {
	LedgerEntry
	RunningBalance decimal.Decimal `json:"runningBalance"`
	RunningSide    BalanceSide     `json:"runningSide"`
}

// AccountStatement lists an account's entries for a period between its opening and closing balances.
type AccountStatement struct {
	Account        Account         `json:"account"`
	FromDate       time.Time       `json:"fromDate"`
	ToDate         time.Time       `json:"toDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OpeningSide    BalanceSide     `json:"openingSide"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	ClosingSide    BalanceSide     `json:"closingSide"`
	Lines          []StatementLine `json:"lines"`
}

// AccountBalance is the signed balance (debit minus credit) of one account.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	AsOf        *time.Time      `json:"asOf,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	Side        BalanceSide     `json:"side"`
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	AccountType   AccountType     `json:"accountType"`
	OpeningDebit  decimal.Decimal `json:"openingDebit"`
	OpeningCredit decimal.Decimal `json:"openingCredit"`
	PeriodDebit   decimal.Decimal `json:"periodDebit"`
	PeriodCredit  decimal.Decimal `json:"periodCredit"`
	ClosingDebit  decimal.Decimal `json:"closingDebit"`
	ClosingCredit decimal.Decimal `json:"closingCredit"`
}

// TrialBalanceReport is the per-account opening, movement and closing summary for a period.
type TrialBalanceReport struct {
	BusinessID         string            `json:"businessID"`
	BusinessName       string            `json:"businessName"`
	FromDate           time.Time         `json:"fromDate"`
	ToDate             time.Time         `json:"toDate"`
	Rows               []TrialBalanceRow `json:"rows"`
	TotalOpeningDebit  decimal.Decimal   `json:"totalOpeningDebit"`
	TotalOpeningCredit decimal.Decimal   `json:"totalOpeningCredit"`
	TotalPeriodDebit   decimal.Decimal   `json:"totalPeriodDebit"`
	TotalPeriodCredit  decimal.Decimal   `json:"totalPeriodCredit"`
	TotalClosingDebit  decimal.Decimal   `json:"totalClosingDebit"`
	TotalClosingCredit decimal.Decimal   `json:"totalClosingCredit"`
	Difference         decimal.Decimal   `json:"difference"`
	IsBalanced         bool              `json:"isBalanced"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// ProfitAndLossReport represents a profit and loss report
type ProfitAndLossReport struct {
	BusinessID    string          `json:"businessID"`
	BusinessName  string          `json:"businessName"`
	FromDate      time.Time       `json:"fromDate"`
	ToDate        time.Time       `json:"toDate"`
	Income        []AccountAmount `json:"income"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	IsProfitable  bool            `json:"isProfitable"`
}

// UnbalancedVoucher identifies a voucher whose own entries do not net to zero.
type UnbalancedVoucher struct {
	VoucherID     string          `json:"voucherID"`
	VoucherNumber string          `json:"voucherNumber"`
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherDate   time.Time       `json:"voucherDate"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Difference    decimal.Decimal `json:"difference"`
}

// ReconciliationReport is the period-level double-entry check.
type ReconciliationReport struct {
	BusinessID         string              `json:"businessID"`
	FromDate           time.Time           `json:"fromDate"`
	ToDate             time.Time           `json:"toDate"`
	TotalDebit         decimal.Decimal     `json:"totalDebit"`
	TotalCredit        decimal.Decimal     `json:"totalCredit"`
	Difference         decimal.Decimal     `json:"difference"`
	IsBalanced         bool                `json:"isBalanced"`
	UnbalancedVouchers []UnbalancedVoucher `json:"unbalancedVouchers"`
}
