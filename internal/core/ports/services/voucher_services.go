package services

import (
	"context"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/dto"
)

// VoucherReaderSvc defines read operations for voucher data
type VoucherReaderSvc interface {
	// GetVoucher retrieves a voucher with its lines, scoped to the business.
	GetVoucher(ctx context.Context, businessID string, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves a paginated list of vouchers in a business.
	ListVouchers(ctx context.Context, businessID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)

	// ListLedgerEntries returns the ledger entries posted for a voucher of the business.
	ListLedgerEntries(ctx context.Context, businessID string, voucherID string) ([]domain.LedgerEntry, error)
}

// VoucherWriterSvc defines the voucher lifecycle transitions.
type VoucherWriterSvc interface {
	// CreateVoucher validates and persists a new DRAFT voucher.
	CreateVoucher(ctx context.Context, businessID string, req dto.CreateVoucherRequest, actorID string) (*domain.Voucher, error)

	// UpdateVoucher replaces the header and lines of a DRAFT voucher.
	UpdateVoucher(ctx context.Context, businessID string, voucherID string, req dto.UpdateVoucherRequest, actorID string) (*domain.Voucher, error)

	// DeleteVoucher soft-deletes a DRAFT voucher.
	DeleteVoucher(ctx context.Context, businessID string, voucherID string, actorID string) error

	// PostVoucher moves a DRAFT voucher to POSTED and generates its ledger entries.
	// When ledger generation fails the voucher stays POSTED; the returned error wraps
	// ErrLedgerPostingFailed and both the voucher and the result are still returned.
	PostVoucher(ctx context.Context, businessID string, voucherID string, actorID string) (*domain.Voucher, *domain.PostingResult, error)

	// RegenerateLedger rebuilds the ledger entries of a POSTED voucher.
	RegenerateLedger(ctx context.Context, businessID string, voucherID string, actorID string) (*domain.PostingResult, error)
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
