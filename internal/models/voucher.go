package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher represents a row of the vouchers table.
type Voucher struct {
	VoucherID          string          `db:"voucher_id"`
	BusinessID         string          `db:"business_id"`
	VoucherNumber      string          `db:"voucher_number"`
	VoucherType        string          `db:"voucher_type"`
	VoucherDate        time.Time       `db:"voucher_date"`
	Status             string          `db:"status"`
	CurrencyCode       string          `db:"currency_code"`
	ExchangeRate       decimal.Decimal `db:"exchange_rate"`
	Reference          string          `db:"reference"`
	Narration          string          `db:"narration"`
	CostCenterID       *string         `db:"cost_center_id"`
	ProjectID          *string         `db:"project_id"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	TaxAmount          decimal.Decimal `db:"tax_amount"`
	DiscountAmount     decimal.Decimal `db:"discount_amount"`
	RoundOff           decimal.Decimal `db:"round_off"`
	NetAmount          decimal.Decimal `db:"net_amount"`
	PostedAt           *time.Time      `db:"posted_at"`
	PostedBy           *string         `db:"posted_by"`
	DeletedAt          *time.Time      `db:"deleted_at"`
	LedgerPostingError *string         `db:"ledger_posting_error"`
	AuditFields
}

// VoucherLine represents a row of the voucher_lines table.
type VoucherLine struct {
	LineID         string          `db:"line_id"`
	VoucherID      string          `db:"voucher_id"`
	LineNumber     int             `db:"line_number"`
	AccountID      string          `db:"account_id"`
	Description    string          `db:"description"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	LineAmount     decimal.Decimal `db:"line_amount"`
	TaxAmount      decimal.Decimal `db:"tax_amount"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	CostCenterID   *string         `db:"cost_center_id"`
	ProjectID      *string         `db:"project_id"`
}
