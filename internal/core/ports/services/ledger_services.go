package services

import (
	"context"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
)

// LedgerPosterSvc converts posted vouchers into ledger entries.
// Posting never returns an error: every failure is a PostingResult.
type LedgerPosterSvc interface {
	// PostVoucherToLedger is idempotent: a voucher that already has entries
	// yields an ALREADY_POSTED result carrying the existing entry IDs.
	PostVoucherToLedger(ctx context.Context, voucherID string, postedBy string) *domain.PostingResult

	// RegenerateVoucherLedger discards and rebuilds the entries of a POSTED voucher atomically.
	RegenerateVoucherLedger(ctx context.Context, voucherID string, postedBy string) *domain.PostingResult

	// GetVoucherEntries returns the entries posted for a voucher.
	GetVoucherEntries(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error)
}
