package dto

import (
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID              string                      `json:"entryID"`
	VoucherID            string                      `json:"voucherID"`
	SourceLineID         string                      `json:"sourceLineID"`
	EntryDate            string                      `json:"entryDate"`
	AccountID            string                      `json:"accountID"`
	Debit                decimal.Decimal             `json:"debit"`
	Credit               decimal.Decimal             `json:"credit"`
	CurrencyCode         string                      `json:"currencyCode"`
	ExchangeRate         decimal.Decimal             `json:"exchangeRate"`
	BaseDebit            decimal.Decimal             `json:"baseDebit"`
	BaseCredit           decimal.Decimal             `json:"baseCredit"`
	CostCenterID         *string                     `json:"costCenterID,omitempty"`
	ProjectID            *string                     `json:"projectID,omitempty"`
	ReconciliationStatus domain.ReconciliationStatus `json:"reconciliationStatus"`
}

// PostingResultResponse mirrors domain.PostingResult on the wire.
type PostingResultResponse struct {
	VoucherID      string                `json:"voucherID"`
	Outcome        domain.PostingOutcome `json:"outcome"`
	Success        bool                  `json:"success"`
	Idempotent     bool                  `json:"idempotent"`
	Message        string                `json:"message"`
	EntriesCreated int                   `json:"entriesCreated"`
	EntryIDs       []string              `json:"entryIDs"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	Difference     decimal.Decimal       `json:"difference"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:              e.EntryID,
		VoucherID:            e.VoucherID,
		SourceLineID:         e.SourceLineID,
		EntryDate:            e.EntryDate.Format(domain.DateLayout),
		AccountID:            e.AccountID,
		Debit:                e.Debit,
		Credit:               e.Credit,
		CurrencyCode:         e.CurrencyCode,
		ExchangeRate:         e.ExchangeRate,
		BaseDebit:            e.BaseDebit,
		BaseCredit:           e.BaseCredit,
		CostCenterID:         e.CostCenterID,
		ProjectID:            e.ProjectID,
		ReconciliationStatus: e.ReconciliationStatus,
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToLedgerEntryResponse(e)
	}
	return res
}

// ToPostingResultResponse converts a domain.PostingResult to its DTO.
func ToPostingResultResponse(r *domain.PostingResult) PostingResultResponse {
	if r == nil {
		return PostingResultResponse{EntryIDs: []string{}}
	}
	ids := r.EntryIDs
	if ids == nil {
		ids = []string{}
	}
	return PostingResultResponse{
		VoucherID:      r.VoucherID,
		Outcome:        r.Outcome,
		Success:        r.Success,
		Idempotent:     r.Idempotent,
		Message:        r.Message,
		EntriesCreated: r.EntriesCreated,
		EntryIDs:       ids,
		TotalDebit:     r.TotalDebit,
		TotalCredit:    r.TotalCredit,
		Difference:     r.Difference,
	}
}
