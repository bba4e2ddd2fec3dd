package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents a row of the chart of accounts.
type Account struct {
	AccountID       string      `db:"account_id"`
	BusinessID      string      `db:"business_id"`
	Code            string      `db:"code"`
	Name            string      `db:"name"`
	AccountType     AccountType `db:"account_type"`
	ParentAccountID *string     `db:"parent_account_id"` // Nullable
	IsActive        bool        `db:"is_active"`
	IsGroup         bool        `db:"is_group"`
	AuditFields
}

// Business represents a tenant row.
type Business struct {
	BusinessID       string `db:"business_id"`
	Name             string `db:"name"`
	BaseCurrencyCode string `db:"base_currency_code"`
	IsActive         bool   `db:"is_active"`
	AuditFields
}
