package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/dto"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/utils/accounting"
)

var (
	ErrVoucherNoLines       = fmt.Errorf("%w: voucher must have at least one line", apperrors.ErrValidation)
	ErrInvalidVoucherType   = fmt.Errorf("%w: unsupported voucher type", apperrors.ErrValidation)
	ErrJournalUnbalanced    = fmt.Errorf("%w: journal debits and credits do not match", apperrors.ErrValidation)
	ErrAccountNotFound      = fmt.Errorf("%w: account not found", apperrors.ErrValidation)
	ErrAccountInactive      = fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
	ErrAccountIsGroup       = fmt.Errorf("%w: group accounts cannot receive postings", apperrors.ErrValidation)
	ErrAccountWrongBusiness = fmt.Errorf("%w: account belongs to another business", apperrors.ErrValidation)
	ErrNonPositiveNetAmount = fmt.Errorf("%w: voucher net amount must be positive", apperrors.ErrValidation)
	ErrInvalidExchangeRate  = fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	ErrBusinessInactive     = fmt.Errorf("%w: business is inactive", apperrors.ErrValidation)
	ErrVoucherYearChange    = fmt.Errorf("%w: voucher date cannot move to another year", apperrors.ErrValidation)

	ErrVoucherNotDraft  = fmt.Errorf("%w: voucher is not in DRAFT status", apperrors.ErrInvalidState)
	ErrVoucherNotPosted = fmt.Errorf("%w: voucher is not in POSTED status", apperrors.ErrInvalidState)

	ErrLedgerPostingFailed = domain.ErrPostingFailed
)

// VoucherServiceOption configures a voucherService.
type VoucherServiceOption func(*voucherService)

// WithVoucherClock overrides the clock used for audit timestamps.
func WithVoucherClock(now func() time.Time) VoucherServiceOption {
	return func(s *voucherService) {
		s.now = now
	}
}

// voucherService manages the voucher lifecycle: DRAFT -> POSTED | DELETED.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	accountDir  portsrepo.AccountDirectory
	businessDir portsrepo.BusinessDirectory
	txManager   portsrepo.TxManager
	poster      portssvc.LedgerPosterSvc
	now         func() time.Time
}

// NewVoucherService creates a new VoucherSvcFacade.
func NewVoucherService(repos portsrepo.RepositoryProvider, poster portssvc.LedgerPosterSvc, opts ...VoucherServiceOption) portssvc.VoucherSvcFacade {
	s := &voucherService{
		voucherRepo: repos.VoucherRepo,
		accountDir:  repos.AccountDir,
		businessDir: repos.BusinessDir,
		txManager:   repos.TxManager,
		poster:      poster,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func voucherNumberLockKey(businessID string, voucherType domain.VoucherType, date time.Time) string {
	return fmt.Sprintf("voucher-number:%s:%s:%d", businessID, voucherType, date.Year())
}

// CreateVoucher validates the request and persists a DRAFT voucher with a generated number.
func (s *voucherService) CreateVoucher(ctx context.Context, businessID string, req dto.CreateVoucherRequest, actorID string) (*domain.Voucher, error) {
	business, err := s.requireBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if !req.VoucherType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVoucherType, req.VoucherType)
	}

	now := s.now()
	voucherID := uuid.NewString()
	lines := buildVoucherLines(voucherID, req.Lines)
	if err := s.validateLines(ctx, businessID, lines); err != nil {
		s.LogWarn(ctx, err, "Voucher validation failed", slog.String("business_id", businessID))
		return nil, err
	}
	if req.VoucherType == domain.Journal {
		if err := validateJournalBalance(lines); err != nil {
			return nil, err
		}
	}
	rate, err := resolveExchangeRate(req.ExchangeRate)
	if err != nil {
		return nil, err
	}

	voucher := domain.Voucher{
		VoucherID:     voucherID,
		BusinessID:    businessID,
		VoucherType:   req.VoucherType,
		VoucherDate:   domain.DateOnly(req.VoucherDate),
		Status:        domain.VoucherDraft,
		CurrencyCode:  resolveCurrency(req.CurrencyCode, business),
		ExchangeRate:  rate,
		Reference:     req.Reference,
		Narration:     req.Narration,
		CostCenterID:  req.CostCenterID,
		ProjectID:     req.ProjectID,
		VoucherTotals: accounting.CalculateVoucherTotals(lines),
		Lines:         lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Lock(ctx, voucherNumberLockKey(businessID, voucher.VoucherType, voucher.VoucherDate)); err != nil {
			return err
		}
		number, err := uow.Vouchers().GenerateVoucherNumber(ctx, businessID, voucher.VoucherType, voucher.VoucherDate)
		if err != nil {
			return fmt.Errorf("failed to generate voucher number: %w", err)
		}
		voucher.VoucherNumber = number
		return uow.Vouchers().SaveVoucher(ctx, voucher)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	s.LogInfo(ctx, "Voucher created",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("voucher_number", voucher.VoucherNumber),
		slog.String("business_id", businessID))
	return &voucher, nil
}

// GetVoucher returns the voucher when it belongs to the business.
func (s *voucherService) GetVoucher(ctx context.Context, businessID string, voucherID string) (*domain.Voucher, error) {
	return s.loadScoped(ctx, s.voucherRepo, businessID, voucherID)
}

// ListVouchers returns a page of the business's non-deleted vouchers.
func (s *voucherService) ListVouchers(ctx context.Context, businessID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	if _, err := s.requireBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	filter := domain.VoucherFilter{VoucherType: params.VoucherType, Status: params.Status}
	var err error
	if filter.FromDate, err = parseOptionalDate("fromDate", params.FromDate); err != nil {
		return nil, err
	}
	if filter.ToDate, err = parseOptionalDate("toDate", params.ToDate); err != nil {
		return nil, err
	}
	if filter.FromDate != nil && filter.ToDate != nil && filter.FromDate.After(*filter.ToDate) {
		return nil, fmt.Errorf("%w: fromDate must not be after toDate", apperrors.ErrValidation)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, businessID, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	return &dto.ListVouchersResponse{
		Vouchers:  dto.ToVoucherResponses(vouchers),
		NextToken: nextToken,
	}, nil
}

// ListLedgerEntries returns the entries posted for a voucher of the business.
func (s *voucherService) ListLedgerEntries(ctx context.Context, businessID string, voucherID string) ([]domain.LedgerEntry, error) {
	if _, err := s.loadScoped(ctx, s.voucherRepo, businessID, voucherID); err != nil {
		return nil, err
	}
	return s.poster.GetVoucherEntries(ctx, voucherID)
}

// UpdateVoucher replaces the header fields and lines of a DRAFT voucher.
func (s *voucherService) UpdateVoucher(ctx context.Context, businessID string, voucherID string, req dto.UpdateVoucherRequest, actorID string) (*domain.Voucher, error) {
	business, err := s.requireBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	rate, err := resolveExchangeRate(req.ExchangeRate)
	if err != nil {
		return nil, err
	}

	var updated *domain.Voucher
	err = s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Lock(ctx, voucherLockKey(voucherID)); err != nil {
			return err
		}
		current, err := s.loadScoped(ctx, uow.Vouchers(), businessID, voucherID)
		if err != nil {
			return err
		}
		if !current.IsDraft() {
			return ErrVoucherNotDraft
		}
		// The voucher number encodes the year and is counted against it.
		voucherDate := domain.DateOnly(req.VoucherDate)
		if voucherDate.Year() != current.VoucherDate.Year() {
			return fmt.Errorf("%w: %s is numbered in %d", ErrVoucherYearChange, current.VoucherNumber, current.VoucherDate.Year())
		}

		lines := buildVoucherLines(voucherID, req.Lines)
		if err := s.validateLines(ctx, businessID, lines); err != nil {
			return err
		}
		if current.VoucherType == domain.Journal {
			if err := validateJournalBalance(lines); err != nil {
				return err
			}
		}

		next := *current
		next.VoucherDate = voucherDate
		next.CurrencyCode = resolveCurrency(req.CurrencyCode, business)
		next.ExchangeRate = rate
		next.Reference = req.Reference
		next.Narration = req.Narration
		next.CostCenterID = req.CostCenterID
		next.ProjectID = req.ProjectID
		next.Lines = lines
		next.VoucherTotals = accounting.CalculateVoucherTotals(lines)
		next.LastUpdatedAt = s.now()
		next.LastUpdatedBy = actorID

		if err := uow.Vouchers().UpdateVoucher(ctx, next); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update voucher", voucherID)
		return nil, err
	}

	s.LogInfo(ctx, "Voucher updated", slog.String("voucher_id", voucherID))
	return updated, nil
}

// DeleteVoucher soft-deletes a DRAFT voucher.
func (s *voucherService) DeleteVoucher(ctx context.Context, businessID string, voucherID string, actorID string) error {
	voucher, err := s.loadScoped(ctx, s.voucherRepo, businessID, voucherID)
	if err != nil {
		return err
	}
	if !voucher.IsDraft() {
		return ErrVoucherNotDraft
	}

	deleted, err := s.voucherRepo.MarkDeleted(ctx, voucherID, actorID, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to delete voucher", slog.String("voucher_id", voucherID))
		return fmt.Errorf("failed to delete voucher: %w", err)
	}
	if !deleted {
		// Status changed between the read and the conditional write.
		return ErrVoucherNotDraft
	}

	s.LogInfo(ctx, "Voucher deleted", slog.String("voucher_id", voucherID))
	return nil
}

// PostVoucher moves a DRAFT voucher to POSTED and then hands it to the ledger poster.
// A ledger failure does not roll the status back; it is recorded on the voucher
// for the reconciler and returned alongside the voucher and the posting result.
func (s *voucherService) PostVoucher(ctx context.Context, businessID string, voucherID string, actorID string) (*domain.Voucher, *domain.PostingResult, error) {
	// Checks and the status change share the voucher lock with UpdateVoucher.
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Lock(ctx, voucherLockKey(voucherID)); err != nil {
			return err
		}
		voucher, err := s.loadScoped(ctx, uow.Vouchers(), businessID, voucherID)
		if err != nil {
			return err
		}
		if !voucher.IsDraft() {
			return ErrVoucherNotDraft
		}
		if len(voucher.Lines) == 0 {
			return ErrVoucherNoLines
		}
		if !voucher.NetAmount.IsPositive() {
			return fmt.Errorf("%w: got %s", ErrNonPositiveNetAmount, voucher.NetAmount.StringFixed(2))
		}
		if voucher.VoucherType == domain.Journal {
			if err := validateJournalBalance(voucher.Lines); err != nil {
				return err
			}
		}

		ok, err := uow.Vouchers().SetPosted(ctx, voucherID, actorID, s.now())
		if err != nil {
			s.LogError(ctx, err, "Failed to mark voucher posted", slog.String("voucher_id", voucherID))
			return fmt.Errorf("failed to post voucher: %w", err)
		}
		if !ok {
			return ErrVoucherNotDraft
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	result := s.poster.PostVoucherToLedger(ctx, voucherID, actorID)
	if postErr := result.Err(); postErr != nil {
		s.LogError(ctx, postErr, "Voucher posted but ledger generation failed",
			slog.String("voucher_id", voucherID),
			slog.String("outcome", string(result.Outcome)))
		msg := result.Message
		if err := s.voucherRepo.RecordPostingError(ctx, voucherID, &msg); err != nil {
			s.LogError(ctx, err, "Failed to record ledger posting error", slog.String("voucher_id", voucherID))
		}
		reloaded, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
		if err != nil {
			return nil, result, postErr
		}
		return reloaded, result, postErr
	}

	reloaded, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, result, fmt.Errorf("failed to reload posted voucher: %w", err)
	}
	s.LogInfo(ctx, "Voucher posted",
		slog.String("voucher_id", voucherID),
		slog.String("voucher_number", reloaded.VoucherNumber),
		slog.Int("ledger_entries", result.EntriesCreated))
	return reloaded, result, nil
}

// RegenerateLedger rebuilds the ledger entries of a POSTED voucher and clears
// any recorded posting error on success.
func (s *voucherService) RegenerateLedger(ctx context.Context, businessID string, voucherID string, actorID string) (*domain.PostingResult, error) {
	voucher, err := s.loadScoped(ctx, s.voucherRepo, businessID, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.Status != domain.VoucherPosted {
		return nil, ErrVoucherNotPosted
	}

	result := s.poster.RegenerateVoucherLedger(ctx, voucherID, actorID)
	if err := result.Err(); err != nil {
		return result, err
	}
	if voucher.LedgerPostingError != nil {
		if err := s.voucherRepo.RecordPostingError(ctx, voucherID, nil); err != nil {
			s.LogError(ctx, err, "Failed to clear ledger posting error", slog.String("voucher_id", voucherID))
		}
	}
	return result, nil
}

func (s *voucherService) requireBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessDir.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("business %s: %w", businessID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load business: %w", err)
	}
	if !business.IsActive {
		return nil, ErrBusinessInactive
	}
	return business, nil
}

// loadScoped reads a voucher and hides vouchers of other businesses behind NotFound.
func (s *voucherService) loadScoped(ctx context.Context, reader portsrepo.VoucherReader, businessID, voucherID string) (*domain.Voucher, error) {
	voucher, err := reader.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to load voucher", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to load voucher: %w", err)
	}
	if voucher.BusinessID != businessID {
		return nil, fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
	}
	return voucher, nil
}

// validateLines runs the per-line checks and resolves every account through the directory.
func (s *voucherService) validateLines(ctx context.Context, businessID string, lines []domain.VoucherLine) error {
	if len(lines) == 0 {
		return ErrVoucherNoLines
	}

	ids := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			ids = append(ids, line.AccountID)
		}
	}

	accounts, err := s.accountDir.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to resolve accounts: %w", err)
	}
	for _, line := range lines {
		acc, ok := accounts[line.AccountID]
		switch {
		case !ok:
			return fmt.Errorf("%w: line %d references %s", ErrAccountNotFound, line.LineNumber, line.AccountID)
		case acc.BusinessID != businessID:
			return fmt.Errorf("%w: line %d references %s", ErrAccountWrongBusiness, line.LineNumber, line.AccountID)
		case !acc.IsActive:
			return fmt.Errorf("%w: line %d references %s (%s)", ErrAccountInactive, line.LineNumber, acc.Code, acc.Name)
		case acc.IsGroup:
			return fmt.Errorf("%w: line %d references %s (%s)", ErrAccountIsGroup, line.LineNumber, acc.Code, acc.Name)
		}
	}
	return nil
}

func (s *voucherService) logFailure(ctx context.Context, err error, msg, voucherID string) {
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
		s.LogWarn(ctx, err, msg, slog.String("voucher_id", voucherID))
		return
	}
	s.LogError(ctx, err, msg, slog.String("voucher_id", voucherID))
}

// validateJournalBalance requires debits and credits to match exactly.
func validateJournalBalance(lines []domain.VoucherLine) error {
	totals := accounting.SumLines(lines)
	if !totals.Debit.Equal(totals.Credit) {
		return fmt.Errorf("%w: debits %s, credits %s",
			ErrJournalUnbalanced, totals.Debit.StringFixed(2), totals.Credit.StringFixed(2))
	}
	return nil
}

func buildVoucherLines(voucherID string, reqs []dto.VoucherLineRequest) []domain.VoucherLine {
	lines := make([]domain.VoucherLine, len(reqs))
	for i, r := range reqs {
		amount := r.Debit
		if r.LineAmount != nil {
			amount = *r.LineAmount
		}
		lines[i] = domain.VoucherLine{
			LineID:         uuid.NewString(),
			VoucherID:      voucherID,
			LineNumber:     i + 1,
			AccountID:      r.AccountID,
			Description:    r.Description,
			Debit:          r.Debit.Round(accounting.AmountPlaces),
			Credit:         r.Credit.Round(accounting.AmountPlaces),
			LineAmount:     amount.Round(accounting.AmountPlaces),
			TaxAmount:      r.TaxAmount.Round(accounting.AmountPlaces),
			DiscountAmount: r.DiscountAmount.Round(accounting.AmountPlaces),
			CostCenterID:   r.CostCenterID,
			ProjectID:      r.ProjectID,
		}
	}
	return lines
}

func resolveExchangeRate(rate *decimal.Decimal) (decimal.Decimal, error) {
	if rate == nil {
		return decimal.NewFromInt(1), nil
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidExchangeRate, rate.String())
	}
	return rate.Round(accounting.RatePlaces), nil
}

func resolveCurrency(code string, business *domain.Business) string {
	if code != "" {
		return code
	}
	return business.BaseCurrencyCode
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must use format %s", apperrors.ErrValidation, field, domain.DateLayout)
	}
	return &t, nil
}
