package services

import (
	"context"
	"time"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
)

// ReportingSvc defines read-only views over the ledger. Date ranges are
// inclusive calendar dates; from after to is a validation error.
type ReportingSvc interface {
	// AccountStatement lists an account's entries with opening, running and closing balances.
	AccountStatement(ctx context.Context, businessID, accountID string, from, to time.Time) (*domain.AccountStatement, error)

	// AccountBalance returns the account balance up to asOf, or over all time when asOf is nil.
	AccountBalance(ctx context.Context, businessID, accountID string, asOf *time.Time) (*domain.AccountBalance, error)

	// TrialBalance generates the per-account opening/period/closing summary.
	TrialBalance(ctx context.Context, businessID string, from, to time.Time) (*domain.TrialBalanceReport, error)

	// ProfitAndLoss generates a profit and loss report for a specific period
	ProfitAndLoss(ctx context.Context, businessID string, from, to time.Time) (*domain.ProfitAndLossReport, error)

	// ReconciliationCheck verifies period totals and reports vouchers whose own entries do not balance.
	ReconciliationCheck(ctx context.Context, businessID string, from, to time.Time) (*domain.ReconciliationReport, error)
}
