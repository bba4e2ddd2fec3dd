package repositories

import (
	"context"
	"time"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
)

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher header with its lines ordered by line number.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// FindVouchersByIDs retrieves voucher headers (without lines) keyed by ID.
	FindVouchersByIDs(ctx context.Context, voucherIDs []string) (map[string]domain.Voucher, error)

	// ListVouchers retrieves a page of non-deleted vouchers of a business, newest first.
	// It returns the vouchers, a token for the next page, and an error.
	ListVouchers(ctx context.Context, businessID string, filter domain.VoucherFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error)

	// ListPostedWithoutLedger returns POSTED vouchers that have no ledger entries, oldest first.
	ListPostedWithoutLedger(ctx context.Context, limit int) ([]domain.Voucher, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// GenerateVoucherNumber returns the next number for the business/type/year of voucherDate.
	// Callers hold the matching unit-of-work lock so concurrent creates do not collide.
	GenerateVoucherNumber(ctx context.Context, businessID string, voucherType domain.VoucherType, voucherDate time.Time) (string, error)

	// SaveVoucher persists a new voucher with its lines.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error

	// UpdateVoucher rewrites the header and replaces all lines of a DRAFT voucher.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error

	// SetPosted transitions DRAFT to POSTED. It reports false when the voucher was not DRAFT.
	SetPosted(ctx context.Context, voucherID string, postedBy string, postedAt time.Time) (bool, error)

	// MarkDeleted transitions DRAFT to DELETED. It reports false when the voucher was not DRAFT.
	MarkDeleted(ctx context.Context, voucherID string, deletedBy string, deletedAt time.Time) (bool, error)

	// RecordPostingError stores (or clears, with nil) the last ledger posting failure.
	RecordPostingError(ctx context.Context, voucherID string, message *string) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}
