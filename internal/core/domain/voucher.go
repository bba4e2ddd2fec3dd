package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType identifies the business transaction a voucher records.
type VoucherType string

const (
	Sales      VoucherType = "SALES"
	Purchase   VoucherType = "PURCHASE"
	Payment    VoucherType = "PAYMENT"
	Receipt    VoucherType = "RECEIPT"
	Journal    VoucherType = "JOURNAL"
	Contra     VoucherType = "CONTRA"
	DebitNote  VoucherType = "DEBIT_NOTE"
	CreditNote VoucherType = "CREDIT_NOTE"
)

var voucherPrefixes = map[VoucherType]string{
	Sales:      "SV",
	Purchase:   "PV",
	Payment:    "PAY",
	Receipt:    "RV",
	Journal:    "JV",
	Contra:     "CV",
	DebitNote:  "DN",
	CreditNote: "CN",
}

// VoucherTypes lists every supported voucher type.
func VoucherTypes() []VoucherType {
	return []VoucherType{Sales, Purchase, Payment, Receipt, Journal, Contra, DebitNote, CreditNote}
}

// IsValid reports whether t belongs to the fixed voucher type enumeration.
func (t VoucherType) IsValid() bool {
	_, ok := voucherPrefixes[t]
	return ok
}

// Prefix returns the numbering prefix for t, or "" for an unknown type.
func (t VoucherType) Prefix() string {
	return voucherPrefixes[t]
}

// FormatVoucherNumber renders {prefix}{yy}{sequence:5}, e.g. JV2500042.
func FormatVoucherNumber(t VoucherType, year int, sequence int) string {
	return fmt.Sprintf("%s%02d%05d", t.Prefix(), year%100, sequence)
}

// VoucherStatus is the lifecycle state of a voucher.
type VoucherStatus string

const (
	VoucherDraft   VoucherStatus = "DRAFT"
	VoucherPosted  VoucherStatus = "POSTED"
	VoucherDeleted VoucherStatus = "DELETED"
)

// Voucher is a business transaction header together with its ordered lines.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`
	BusinessID    string          `json:"businessID"`
	VoucherNumber string          `json:"voucherNumber"`
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherDate   time.Time       `json:"voucherDate"`
	Status        VoucherStatus   `json:"status"`
	CurrencyCode  string          `json:"currencyCode"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"` // 6 dp
	Reference     string          `json:"reference"`
	Narration     string          `json:"narration"`
	CostCenterID  *string         `json:"costCenterID,omitempty"`
	ProjectID     *string         `json:"projectID,omitempty"`
	VoucherTotals
	PostedAt           *time.Time    `json:"postedAt,omitempty"`
	PostedBy           *string       `json:"postedBy,omitempty"`
	DeletedAt          *time.Time    `json:"deletedAt,omitempty"`
	LedgerPostingError *string       `json:"ledgerPostingError,omitempty"`
	Lines              []VoucherLine `json:"lines"`
	AuditFields
}

// VoucherTotals are derived from the lines; all values carry 2 dp.
type VoucherTotals struct {
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	RoundOff       decimal.Decimal `json:"roundOff"`
	NetAmount      decimal.Decimal `json:"netAmount"`
}

// IsDraft reports whether the voucher may still be edited, deleted or posted.
func (v *Voucher) IsDraft() bool {
	return v.Status == VoucherDraft
}

// VoucherLine is one debit or credit row of a voucher.
type VoucherLine struct {
	LineID         string          `json:"lineID"`
	VoucherID      string          `json:"voucherID"`
	LineNumber     int             `json:"lineNumber"`
	AccountID      string          `json:"accountID"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	LineAmount     decimal.Decimal `json:"lineAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	CostCenterID   *string         `json:"costCenterID,omitempty"`
	ProjectID      *string         `json:"projectID,omitempty"`
}

var (
	ErrLineMissingAccount  = errors.New("line account is required")
	ErrLineNegativeAmount  = errors.New("line amounts must not be negative")
	ErrLineDebitAndCredit  = errors.New("line cannot carry both a debit and a credit")
	ErrLineInvalidPosition = errors.New("line number must be positive")
)

// Validate enforces the per-line rules: an account, non-negative amounts,
// and at most one of debit/credit set.
func (l VoucherLine) Validate() error {
	if l.AccountID == "" {
		return fmt.Errorf("line %d: %w", l.LineNumber, ErrLineMissingAccount)
	}
	if l.LineNumber <= 0 {
		return fmt.Errorf("line %d: %w", l.LineNumber, ErrLineInvalidPosition)
	}
	for _, amt := range []decimal.Decimal{l.Debit, l.Credit, l.LineAmount, l.TaxAmount, l.DiscountAmount} {
		if amt.IsNegative() {
			return fmt.Errorf("line %d: %w", l.LineNumber, ErrLineNegativeAmount)
		}
	}
	if !l.Debit.IsZero() && !l.Credit.IsZero() {
		return fmt.Errorf("line %d: %w", l.LineNumber, ErrLineDebitAndCredit)
	}
	return nil
}

// IsZero reports whether the line moves no money and so produces no ledger entry.
func (l VoucherLine) IsZero() bool {
	return l.Debit.IsZero() && l.Credit.IsZero()
}

// VoucherFilter narrows voucher listings. Zero values mean "any".
type VoucherFilter struct {
	VoucherType *VoucherType
	Status      *VoucherStatus
	FromDate    *time.Time
	ToDate      *time.Time
}
