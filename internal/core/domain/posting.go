package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// PostingOutcome classifies the result of a ledger posting attempt.
type PostingOutcome string

const (
	OutcomePosted           PostingOutcome = "POSTED"
	OutcomeAlreadyPosted    PostingOutcome = "ALREADY_POSTED"
	OutcomeNotFound         PostingOutcome = "NOT_FOUND"
	OutcomeInvalidStatus    PostingOutcome = "INVALID_STATUS"
	OutcomeEmptyVoucher     PostingOutcome = "EMPTY_VOUCHER"
	OutcomeUnbalanced       PostingOutcome = "UNBALANCED"
	OutcomePersistenceError PostingOutcome = "PERSISTENCE_ERROR"
)

// ErrPostingFailed is the root of every error produced by PostingResult.Err.
var ErrPostingFailed = errors.New("ledger posting failed")

// PostingResult is the structured report of a posting attempt. Failures are
// values, not errors, so callers always get identifiers and amounts back.
type PostingResult struct {
	VoucherID      string          `json:"voucherID"`
	Outcome        PostingOutcome  `json:"outcome"`
	Success        bool            `json:"success"`
	Idempotent     bool            `json:"idempotent"`
	Message        string          `json:"message"`
	EntriesCreated int             `json:"entriesCreated"`
	EntryIDs       []string        `json:"entryIDs"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	Difference     decimal.Decimal `json:"difference"`
}

// NewPostingFailure builds a failed result.
func NewPostingFailure(voucherID string, outcome PostingOutcome, message string) *PostingResult {
	return &PostingResult{
		VoucherID: voucherID,
		Outcome:   outcome,
		Message:   message,
		EntryIDs:  []string{},
	}
}

// NewPostingSuccess builds a successful result from the entries written (or found).
func NewPostingSuccess(voucherID string, outcome PostingOutcome, message string, entries []LedgerEntry) *PostingResult {
	r := &PostingResult{
		VoucherID:      voucherID,
		Outcome:        outcome,
		Success:        true,
		Idempotent:     outcome == OutcomeAlreadyPosted,
		Message:        message,
		EntriesCreated: len(entries),
		EntryIDs:       make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		r.EntryIDs = append(r.EntryIDs, e.EntryID)
		r.TotalDebit = r.TotalDebit.Add(e.Debit)
		r.TotalCredit = r.TotalCredit.Add(e.Credit)
	}
	r.Difference = r.TotalDebit.Sub(r.TotalCredit)
	return r
}

// Err returns nil for a successful result and an error wrapping ErrPostingFailed otherwise.
func (r *PostingResult) Err() error {
	if r == nil {
		return fmt.Errorf("%w: no result", ErrPostingFailed)
	}
	if r.Success {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrPostingFailed, r.Outcome, r.Message)
}
