package dto

import (
	"time"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementLineResponse is one entry of an account statement.
type StatementLineResponse struct {
	LedgerEntryResponse
	RunningBalance decimal.Decimal    `json:"runningBalance"`
	RunningSide    domain.BalanceSide `json:"runningSide"`
}

// AccountStatementResponse represents the account statement response
type AccountStatementResponse struct {
	AccountID      string                  `json:"accountID"`
	AccountCode    string                  `json:"accountCode"`
	AccountName    string                  `json:"accountName"`
	AccountType    domain.AccountType      `json:"accountType"`
	FromDate       string                  `json:"fromDate"`
	ToDate         string                  `json:"toDate"`
	OpeningBalance decimal.Decimal         `json:"openingBalance"`
	OpeningSide    domain.BalanceSide      `json:"openingSide"`
	TotalDebit     decimal.Decimal         `json:"totalDebit"`
	TotalCredit    decimal.Decimal         `json:"totalCredit"`
	ClosingBalance decimal.Decimal         `json:"closingBalance"`
	ClosingSide    domain.BalanceSide      `json:"closingSide"`
	Lines          []StatementLineResponse `json:"lines"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID   string             `json:"accountID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	AsOf        *string            `json:"asOf,omitempty"`
	Balance     decimal.Decimal    `json:"balance"`
	Side        domain.BalanceSide `json:"side"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID     string          `json:"accountID"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   string          `json:"accountType"`
	OpeningDebit  decimal.Decimal `json:"openingDebit"`
	OpeningCredit decimal.Decimal `json:"openingCredit"`
	PeriodDebit   decimal.Decimal `json:"periodDebit"`
	PeriodCredit  decimal.Decimal `json:"periodCredit"`
	ClosingDebit  decimal.Decimal `json:"closingDebit"`
	ClosingCredit decimal.Decimal `json:"closingCredit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	BusinessID   string                    `json:"businessID"`
	BusinessName string                    `json:"businessName"`
	FromDate     string                    `json:"fromDate"`
	ToDate       string                    `json:"toDate"`
	Rows         []TrialBalanceRowResponse `json:"rows"`
	Totals       struct {
		OpeningDebit  decimal.Decimal `json:"openingDebit"`
		OpeningCredit decimal.Decimal `json:"openingCredit"`
		PeriodDebit   decimal.Decimal `json:"periodDebit"`
		PeriodCredit  decimal.Decimal `json:"periodCredit"`
		ClosingDebit  decimal.Decimal `json:"closingDebit"`
		ClosingCredit decimal.Decimal `json:"closingCredit"`
	} `json:"totals"`
	Difference decimal.Decimal `json:"difference"`
	IsBalanced bool            `json:"isBalanced"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	BusinessID   string                  `json:"businessID"`
	BusinessName string                  `json:"businessName"`
	FromDate     string                  `json:"fromDate"`
	ToDate       string                  `json:"toDate"`
	Income       []AccountAmountResponse `json:"income"`
	Expenses     []AccountAmountResponse `json:"expenses"`
	Summary      struct {
		TotalIncome   decimal.Decimal `json:"totalIncome"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		NetProfit     decimal.Decimal `json:"netProfit"`
		IsProfitable  bool            `json:"isProfitable"`
	} `json:"summary"`
}

// UnbalancedVoucherResponse identifies a voucher whose entries do not balance.
type UnbalancedVoucherResponse struct {
	VoucherID     string             `json:"voucherID"`
	VoucherNumber string             `json:"voucherNumber"`
	VoucherType   domain.VoucherType `json:"voucherType"`
	VoucherDate   string             `json:"voucherDate"`
	Debit         decimal.Decimal    `json:"debit"`
	Credit        decimal.Decimal    `json:"credit"`
	Difference    decimal.Decimal    `json:"difference"`
}

// ReconciliationResponse represents the reconciliation check response
type ReconciliationResponse struct {
	BusinessID         string                      `json:"businessID"`
	FromDate           string                      `json:"fromDate"`
	ToDate             string                      `json:"toDate"`
	TotalDebit         decimal.Decimal             `json:"totalDebit"`
	TotalCredit        decimal.Decimal             `json:"totalCredit"`
	Difference         decimal.Decimal             `json:"difference"`
	IsBalanced         bool                        `json:"isBalanced"`
	UnbalancedVouchers []UnbalancedVoucherResponse `json:"unbalancedVouchers"`
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// ToAccountStatementResponse converts a domain.AccountStatement to its DTO.
func ToAccountStatementResponse(s *domain.AccountStatement) AccountStatementResponse {
	resp := AccountStatementResponse{
		AccountID:      s.Account.AccountID,
		AccountCode:    s.Account.Code,
		AccountName:    s.Account.Name,
		AccountType:    s.Account.AccountType,
		FromDate:       formatDate(s.FromDate),
		ToDate:         formatDate(s.ToDate),
		OpeningBalance: s.OpeningBalance,
		OpeningSide:    s.OpeningSide,
		TotalDebit:     s.TotalDebit,
		TotalCredit:    s.TotalCredit,
		ClosingBalance: s.ClosingBalance,
		ClosingSide:    s.ClosingSide,
		Lines:          make([]StatementLineResponse, len(s.Lines)),
	}
	for i, l := range s.Lines {
		resp.Lines[i] = StatementLineResponse{
			LedgerEntryResponse: ToLedgerEntryResponse(l.LedgerEntry),
			RunningBalance:      l.RunningBalance,
			RunningSide:         l.RunningSide,
		}
	}
	return resp
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	resp := AccountBalanceResponse{
		AccountID:   b.AccountID,
		Code:        b.Code,
		Name:        b.Name,
		AccountType: b.AccountType,
		Balance:     b.Balance,
		Side:        b.Side,
	}
	if b.AsOf != nil {
		asOf := formatDate(*b.AsOf)
		resp.AsOf = &asOf
	}
	return resp
}

// ToTrialBalanceResponse converts domain trial balance to DTO
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		BusinessID:   report.BusinessID,
		BusinessName: report.BusinessName,
		FromDate:     formatDate(report.FromDate),
		ToDate:       formatDate(report.ToDate),
		Rows:         make([]TrialBalanceRowResponse, len(report.Rows)),
		Difference:   report.Difference,
		IsBalanced:   report.IsBalanced,
	}
	for i, row := range report.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:     row.AccountID,
			AccountCode:   row.Code,
			AccountName:   row.Name,
			AccountType:   string(row.AccountType),
			OpeningDebit:  row.OpeningDebit,
			OpeningCredit: row.OpeningCredit,
			PeriodDebit:   row.PeriodDebit,
			PeriodCredit:  row.PeriodCredit,
			ClosingDebit:  row.ClosingDebit,
			ClosingCredit: row.ClosingCredit,
		}
	}
	response.Totals.OpeningDebit = report.TotalOpeningDebit
	response.Totals.OpeningCredit = report.TotalOpeningCredit
	response.Totals.PeriodDebit = report.TotalPeriodDebit
	response.Totals.PeriodCredit = report.TotalPeriodCredit
	response.Totals.ClosingDebit = report.TotalClosingDebit
	response.Totals.ClosingCredit = report.TotalClosingCredit
	return response
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	res := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		res[i] = AccountAmountResponse{AccountID: a.AccountID, Code: a.Code, Name: a.Name, Amount: a.NetAmount}
	}
	return res
}

// ToProfitAndLossResponse converts domain P&L report to DTO
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		BusinessID:   report.BusinessID,
		BusinessName: report.BusinessName,
		FromDate:     formatDate(report.FromDate),
		ToDate:       formatDate(report.ToDate),
		Income:       toAccountAmountResponses(report.Income),
		Expenses:     toAccountAmountResponses(report.Expenses),
	}
	response.Summary.TotalIncome = report.TotalIncome
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.NetProfit = report.NetProfit
	response.Summary.IsProfitable = report.IsProfitable
	return response
}

// ToReconciliationResponse converts the reconciliation report to DTO
func ToReconciliationResponse(report *domain.ReconciliationReport) ReconciliationResponse {
	response := ReconciliationResponse{
		BusinessID:         report.BusinessID,
		FromDate:           formatDate(report.FromDate),
		ToDate:             formatDate(report.ToDate),
		TotalDebit:         report.TotalDebit,
		TotalCredit:        report.TotalCredit,
		Difference:         report.Difference,
		IsBalanced:         report.IsBalanced,
		UnbalancedVouchers: make([]UnbalancedVoucherResponse, len(report.UnbalancedVouchers)),
	}
	for i, v := range report.UnbalancedVouchers {
		response.UnbalancedVouchers[i] = UnbalancedVoucherResponse{
			VoucherID:     v.VoucherID,
			VoucherNumber: v.VoucherNumber,
			VoucherType:   v.VoucherType,
			VoucherDate:   formatDate(v.VoucherDate),
			Debit:         v.Debit,
			Credit:        v.Credit,
			Difference:    v.Difference,
		}
	}
	return response
}
