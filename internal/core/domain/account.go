package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is a chart-of-accounts entry owned by a business.
// Accounts are maintained elsewhere; the ledger core only reads them.
type Account struct {
	AccountID       string      `json:"accountID"`
	BusinessID      string      `json:"businessID"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID string      `json:"parentAccountID,omitempty"`
	IsActive        bool        `json:"isActive"`
	IsGroup         bool        `json:"isGroup"` // group accounts never receive postings
	AuditFields
}

// IsPostable reports whether the account can carry ledger entries and appear in reports.
func (a Account) IsPostable() bool {
	return a.IsActive && !a.IsGroup
}
