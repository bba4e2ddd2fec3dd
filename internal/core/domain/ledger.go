package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus tracks whether a ledger entry has been matched externally.
type ReconciliationStatus string

const (
	Unreconciled ReconciliationStatus = "UNRECONCILED"
	Reconciled   ReconciliationStatus = "RECONCILED"
)

// LedgerEntry is an immutable posting derived from exactly one voucher line.
type LedgerEntry struct {
	EntryID              string               `json:"entryID"`
	BusinessID           string               `json:"businessID"`
	VoucherID            string               `json:"voucherID"`
	SourceLineID         string               `json:"sourceLineID"`
	EntryDate            time.Time            `json:"entryDate"`
	AccountID            string               `json:"accountID"`
	Debit                decimal.Decimal      `json:"debit"`
	Credit               decimal.Decimal      `json:"credit"`
	CurrencyCode         string               `json:"currencyCode"`
	ExchangeRate         decimal.Decimal      `json:"exchangeRate"`
	BaseDebit            decimal.Decimal      `json:"baseDebit"`
	BaseCredit           decimal.Decimal      `json:"baseCredit"`
	CostCenterID         *string              `json:"costCenterID,omitempty"`
	ProjectID            *string              `json:"projectID,omitempty"`
	ReconciliationStatus ReconciliationStatus `json:"reconciliationStatus"`
	CreatedAt            time.Time            `json:"createdAt"`
	CreatedBy            string               `json:"createdBy"`
}

// Movement is the debit and credit total of a set of entries.
type Movement struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// Add accumulates an entry into the movement.
func (m Movement) Add(e LedgerEntry) Movement {
	return Movement{Debit: m.Debit.Add(e.Debit), Credit: m.Credit.Add(e.Credit)}
}

// Net returns debit minus credit.
func (m Movement) Net() decimal.Decimal {
	return m.Debit.Sub(m.Credit)
}

// BalanceSide labels a balance as debit or credit.
type BalanceSide string

const (
	SideDebit  BalanceSide = "Dr"
	SideCredit BalanceSide = "Cr"
)
