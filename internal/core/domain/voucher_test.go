package domain_test

import (
	"testing"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVoucherLine_Validate(t *testing.T) {
	tests := []struct {
		name    string
		line    domain.VoucherLine
		wantErr error
	}{
		{
			name: "debit only",
			line: domain.VoucherLine{LineNumber: 1, AccountID: "acc-1", Debit: decimal.NewFromInt(100)},
		},
		{
			name: "credit only",
			line: domain.VoucherLine{LineNumber: 2, AccountID: "acc-1", Credit: decimal.NewFromInt(100)},
		},
		{
			name: "zero line is allowed",
			line: domain.VoucherLine{LineNumber: 1, AccountID: "acc-1"},
		},
		{
			name:    "missing account",
			line:    domain.VoucherLine{LineNumber: 1, Debit: decimal.NewFromInt(1)},
			wantErr: domain.ErrLineMissingAccount,
		},
		{
			name:    "non-positive line number",
			line:    domain.VoucherLine{AccountID: "acc-1", Debit: decimal.NewFromInt(1)},
			wantErr: domain.ErrLineInvalidPosition,
		},
		{
			name:    "negative debit",
			line:    domain.VoucherLine{LineNumber: 1, AccountID: "acc-1", Debit: decimal.NewFromInt(-5)},
			wantErr: domain.ErrLineNegativeAmount,
		},
		{
			name:    "negative tax",
			line:    domain.VoucherLine{LineNumber: 1, AccountID: "acc-1", Debit: decimal.NewFromInt(5), TaxAmount: decimal.NewFromInt(-1)},
			wantErr: domain.ErrLineNegativeAmount,
		},
		{
			name:    "both debit and credit",
			line:    domain.VoucherLine{LineNumber: 1, AccountID: "acc-1", Debit: decimal.NewFromInt(5), Credit: decimal.NewFromInt(5)},
			wantErr: domain.ErrLineDebitAndCredit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVoucherType_Prefix(t *testing.T) {
	expected := map[domain.VoucherType]string{
		domain.Sales:      "SV",
		domain.Purchase:   "PV",
		domain.Payment:    "PAY",
		domain.Receipt:    "RV",
		domain.Journal:    "JV",
		domain.Contra:     "CV",
		domain.DebitNote:  "DN",
		domain.CreditNote: "CN",
	}
	assert.Len(t, domain.VoucherTypes(), len(expected))
	for _, vt := range domain.VoucherTypes() {
		assert.True(t, vt.IsValid())
		assert.Equal(t, expected[vt], vt.Prefix())
	}
	assert.False(t, domain.VoucherType("BARTER").IsValid())
	assert.Empty(t, domain.VoucherType("BARTER").Prefix())
}

func TestFormatVoucherNumber(t *testing.T) {
	assert.Equal(t, "JV2500001", domain.FormatVoucherNumber(domain.Journal, 2025, 1))
	assert.Equal(t, "PAY2612345", domain.FormatVoucherNumber(domain.Payment, 2026, 12345))
	assert.Equal(t, "SV0900042", domain.FormatVoucherNumber(domain.Sales, 2009, 42))
}

func TestPostingResult_Err(t *testing.T) {
	ok := domain.NewPostingSuccess("v1", domain.OutcomePosted, "posted", []domain.LedgerEntry{
		{EntryID: "e1", Debit: decimal.NewFromInt(10)},
		{EntryID: "e2", Credit: decimal.NewFromInt(10)},
	})
	assert.NoError(t, ok.Err())
	assert.Equal(t, []string{"e1", "e2"}, ok.EntryIDs)
	assert.True(t, ok.Difference.IsZero())
	assert.False(t, ok.Idempotent)

	again := domain.NewPostingSuccess("v1", domain.OutcomeAlreadyPosted, "idempotent", nil)
	assert.True(t, again.Idempotent)

	failed := domain.NewPostingFailure("v1", domain.OutcomeUnbalanced, "off by 5")
	err := failed.Err()
	assert.ErrorIs(t, err, domain.ErrPostingFailed)
	assert.Contains(t, err.Error(), "UNBALANCED")

	var nilResult *domain.PostingResult
	assert.ErrorIs(t, nilResult.Err(), domain.ErrPostingFailed)
}
