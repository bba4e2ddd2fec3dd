package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry represents a row of the append-only ledger_entries table.
type LedgerEntry struct {
	EntryID              string          `db:"entry_id"`
	BusinessID           string          `db:"business_id"`
	VoucherID            string          `db:"voucher_id"`
	SourceLineID         string          `db:"source_line_id"`
	EntryDate            time.Time       `db:"entry_date"`
	AccountID            string          `db:"account_id"`
	Debit                decimal.Decimal `db:"debit"`
	Credit               decimal.Decimal `db:"credit"`
	CurrencyCode         string          `db:"currency_code"`
	ExchangeRate         decimal.Decimal `db:"exchange_rate"`
	BaseDebit            decimal.Decimal `db:"base_debit"`
	BaseCredit           decimal.Decimal `db:"base_credit"`
	CostCenterID         *string         `db:"cost_center_id"`
	ProjectID            *string         `db:"project_id"`
	ReconciliationStatus string          `db:"reconciliation_status"`
	CreatedAt            time.Time       `db:"created_at"`
	CreatedBy            string          `db:"created_by"`
}
