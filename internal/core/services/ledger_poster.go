package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/utils/accounting"
)

// ledgerPoster turns posted vouchers into ledger entries.
type ledgerPoster struct {
	BaseService
	txManager  portsrepo.TxManager
	ledgerRepo portsrepo.LedgerReader
}

// NewLedgerPoster creates a new LedgerPosterSvc.
func NewLedgerPoster(txManager portsrepo.TxManager, ledgerRepo portsrepo.LedgerReader) portssvc.LedgerPosterSvc {
	return &ledgerPoster{
		txManager:  txManager,
		ledgerRepo: ledgerRepo,
	}
}

func voucherLockKey(voucherID string) string {
	return "voucher:" + voucherID
}

// PostVoucherToLedger posts a voucher inside one unit of work. The voucher lock
// serializes concurrent posts; the (voucher, source line) uniqueness in the store
// is the backstop, and a duplicate there is reported as already posted.
func (p *ledgerPoster) PostVoucherToLedger(ctx context.Context, voucherID string, postedBy string) *domain.PostingResult {
	logger := p.GetLogger(ctx).With(slog.String("voucher_id", voucherID))

	var result *domain.PostingResult
	err := p.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Lock(ctx, voucherLockKey(voucherID)); err != nil {
			return err
		}

		voucher, err := uow.Vouchers().FindVoucherByID(ctx, voucherID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				result = domain.NewPostingFailure(voucherID, domain.OutcomeNotFound, "voucher not found")
				return nil
			}
			return err
		}

		hasEntries, err := uow.Ledger().HasEntries(ctx, voucherID)
		if err != nil {
			return err
		}
		if hasEntries {
			existing, err := uow.Ledger().FindByVoucher(ctx, voucherID)
			if err != nil {
				return err
			}
			result = alreadyPosted(voucherID, existing)
			return nil
		}

		if voucher.Status != domain.VoucherPosted {
			result = domain.NewPostingFailure(voucherID, domain.OutcomeInvalidStatus,
				fmt.Sprintf("voucher status is %s; only POSTED vouchers can be posted to the ledger", voucher.Status))
			return nil
		}

		entries, failure := p.prepareEntries(voucher, postedBy)
		if failure != nil {
			result = failure
			return nil
		}

		inserted, err := uow.Ledger().InsertBatch(ctx, entries)
		if err != nil {
			return err
		}
		result = domain.NewPostingSuccess(voucherID, domain.OutcomePosted,
			fmt.Sprintf("%d ledger entries created", len(inserted)), inserted)
		return nil
	})

	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race to a concurrent post of the same voucher.
			if existing, ferr := p.ledgerRepo.FindByVoucher(ctx, voucherID); ferr == nil && len(existing) > 0 {
				logger.Info("Concurrent posting detected, returning existing entries")
				return alreadyPosted(voucherID, existing)
			}
		}
		p.LogError(ctx, err, "Failed to persist ledger entries", slog.String("voucher_id", voucherID))
		return domain.NewPostingFailure(voucherID, domain.OutcomePersistenceError, err.Error())
	}

	if result.Success {
		logger.Info("Voucher posted to ledger",
			slog.String("outcome", string(result.Outcome)),
			slog.Int("entries", result.EntriesCreated))
	} else {
		logger.Warn("Voucher not posted to ledger",
			slog.String("outcome", string(result.Outcome)),
			slog.String("reason", result.Message))
	}
	return result
}

// RegenerateVoucherLedger replaces the entries of a POSTED voucher in one unit of work.
func (p *ledgerPoster) RegenerateVoucherLedger(ctx context.Context, voucherID string, postedBy string) *domain.PostingResult {
	var result *domain.PostingResult
	err := p.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Lock(ctx, voucherLockKey(voucherID)); err != nil {
			return err
		}

		voucher, err := uow.Vouchers().FindVoucherByID(ctx, voucherID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				result = domain.NewPostingFailure(voucherID, domain.OutcomeNotFound, "voucher not found")
				return nil
			}
			return err
		}
		if voucher.Status != domain.VoucherPosted {
			result = domain.NewPostingFailure(voucherID, domain.OutcomeInvalidStatus,
				fmt.Sprintf("voucher status is %s; only POSTED vouchers can be regenerated", voucher.Status))
			return nil
		}

		entries, failure := p.prepareEntries(voucher, postedBy)
		if failure != nil {
			// Leave the existing entries untouched.
			result = failure
			return nil
		}

		removed, err := uow.Ledger().DeleteByVoucher(ctx, voucherID)
		if err != nil {
			return err
		}
		inserted, err := uow.Ledger().InsertBatch(ctx, entries)
		if err != nil {
			return err
		}
		result = domain.NewPostingSuccess(voucherID, domain.OutcomePosted,
			fmt.Sprintf("ledger regenerated: %d entries removed, %d created", removed, len(inserted)), inserted)
		return nil
	})
	if err != nil {
		p.LogError(ctx, err, "Failed to regenerate ledger entries", slog.String("voucher_id", voucherID))
		return domain.NewPostingFailure(voucherID, domain.OutcomePersistenceError, err.Error())
	}

	p.LogInfo(ctx, "Voucher ledger regeneration finished",
		slog.String("voucher_id", voucherID),
		slog.String("outcome", string(result.Outcome)),
		slog.Bool("success", result.Success))
	return result
}

// GetVoucherEntries returns the entries posted for a voucher.
func (p *ledgerPoster) GetVoucherEntries(ctx context.Context, voucherID string) ([]domain.LedgerEntry, error) {
	entries, err := p.ledgerRepo.FindByVoucher(ctx, voucherID)
	if err != nil {
		p.LogError(ctx, err, "Failed to load voucher ledger entries", slog.String("voucher_id", voucherID))
		return nil, err
	}
	return entries, nil
}

// prepareEntries builds the entries for a voucher and runs the empty and
// balance checks. A non-nil result means nothing may be persisted.
func (p *ledgerPoster) prepareEntries(voucher *domain.Voucher, postedBy string) ([]domain.LedgerEntry, *domain.PostingResult) {
	entries := buildLedgerEntries(voucher, postedBy, time.Now().UTC())
	if len(entries) == 0 {
		return nil, domain.NewPostingFailure(voucher.VoucherID, domain.OutcomeEmptyVoucher, "no lines to post")
	}

	totals := accounting.SumEntries(entries)
	diff := totals.Net()
	if accounting.ExceedsTolerance(diff) {
		failure := domain.NewPostingFailure(voucher.VoucherID, domain.OutcomeUnbalanced,
			fmt.Sprintf("ledger entries are unbalanced: debit %s, credit %s, difference %s",
				totals.Debit.StringFixed(2), totals.Credit.StringFixed(2), diff.StringFixed(2)))
		failure.TotalDebit = totals.Debit
		failure.TotalCredit = totals.Credit
		failure.Difference = diff
		return nil, failure
	}
	return entries, nil
}

// buildLedgerEntries maps every non-zero line to one entry. Line tags win over
// voucher-level cost center and project.
func buildLedgerEntries(voucher *domain.Voucher, postedBy string, now time.Time) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, 0, len(voucher.Lines))
	for _, line := range voucher.Lines {
		if line.IsZero() {
			continue
		}
		entries = append(entries, domain.LedgerEntry{
			EntryID:              uuid.NewString(),
			BusinessID:           voucher.BusinessID,
			VoucherID:            voucher.VoucherID,
			SourceLineID:         line.LineID,
			EntryDate:            domain.DateOnly(voucher.VoucherDate),
			AccountID:            line.AccountID,
			Debit:                line.Debit,
			Credit:               line.Credit,
			CurrencyCode:         voucher.CurrencyCode,
			ExchangeRate:         voucher.ExchangeRate,
			BaseDebit:            accounting.ToBase(line.Debit, voucher.ExchangeRate),
			BaseCredit:           accounting.ToBase(line.Credit, voucher.ExchangeRate),
			CostCenterID:         coalesce(line.CostCenterID, voucher.CostCenterID),
			ProjectID:            coalesce(line.ProjectID, voucher.ProjectID),
			ReconciliationStatus: domain.Unreconciled,
			CreatedAt:            now,
			CreatedBy:            postedBy,
		})
	}
	return entries
}

func alreadyPosted(voucherID string, existing []domain.LedgerEntry) *domain.PostingResult {
	return domain.NewPostingSuccess(voucherID, domain.OutcomeAlreadyPosted,
		fmt.Sprintf("voucher already posted with %d ledger entries; nothing to do (idempotent)", len(existing)), existing)
}

func coalesce(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
