// Package jobs holds background work scheduled alongside the HTTP server.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/jasonlvhit/gocron"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portssvc "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/services"
)

// ReconcilerUser is recorded as the poster of entries written by the reconciler.
const ReconcilerUser = "system:posting-reconciler"

// PendingPostings is the slice of the voucher store the reconciler needs.
type PendingPostings interface {
	ListPostedWithoutLedger(ctx context.Context, limit int) ([]domain.Voucher, error)
	RecordPostingError(ctx context.Context, voucherID string, message *string) error
}

// ReconcileSummary reports one pass of the reconciler.
type ReconcileSummary struct {
	Scanned int
	Posted  int
	Failed  int
	Skipped int
}

// PostingReconciler re-posts vouchers that reached POSTED without ledger
// entries, which happens when the ledger write fails after the status change.
type PostingReconciler struct {
	vouchers  PendingPostings
	poster    portssvc.LedgerPosterSvc
	logger    *slog.Logger
	batchSize int
	timeout   time.Duration
}

// NewPostingReconciler builds a reconciler handling at most batchSize vouchers per pass.
func NewPostingReconciler(vouchers PendingPostings, poster portssvc.LedgerPosterSvc, logger *slog.Logger, batchSize int) *PostingReconciler {
	if batchSize <= 0 {
		batchSize = 50
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostingReconciler{
		vouchers:  vouchers,
		poster:    poster,
		logger:    logger.With(slog.String("job", "posting_reconciler")),
		batchSize: batchSize,
		timeout:   time.Minute,
	}
}

// RunOnce performs a single reconciliation pass.
func (j *PostingReconciler) RunOnce(ctx context.Context) (ReconcileSummary, error) {
	var summary ReconcileSummary

	pending, err := j.vouchers.ListPostedWithoutLedger(ctx, j.batchSize)
	if err != nil {
		j.logger.Error("Failed to list vouchers pending ledger posting", slog.String("error", err.Error()))
		return summary, err
	}
	summary.Scanned = len(pending)

	for _, v := range pending {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		result := j.poster.PostVoucherToLedger(ctx, v.VoucherID, ReconcilerUser)
		switch {
		case result.Success:
			summary.Posted++
			if v.LedgerPostingError != nil {
				if err := j.vouchers.RecordPostingError(ctx, v.VoucherID, nil); err != nil {
					j.logger.Warn("Failed to clear posting error", slog.String("voucher_id", v.VoucherID), slog.String("error", err.Error()))
				}
			}
			j.logger.Info("Voucher reconciled to ledger", slog.String("voucher_id", v.VoucherID), slog.Int("entries", result.EntriesCreated))
		case result.Outcome == domain.OutcomeNotFound || result.Outcome == domain.OutcomeInvalidStatus:
			// The voucher changed between listing and posting.
			summary.Skipped++
		default:
			summary.Failed++
			msg := result.Message
			if err := j.vouchers.RecordPostingError(ctx, v.VoucherID, &msg); err != nil {
				j.logger.Warn("Failed to record posting error", slog.String("voucher_id", v.VoucherID), slog.String("error", err.Error()))
			}
			j.logger.Error("Voucher still cannot be posted to ledger",
				slog.String("voucher_id", v.VoucherID),
				slog.String("outcome", string(result.Outcome)),
				slog.String("message", result.Message))
		}
	}

	if summary.Scanned > 0 {
		j.logger.Info("Posting reconciliation pass finished",
			slog.Int("scanned", summary.Scanned),
			slog.Int("posted", summary.Posted),
			slog.Int("failed", summary.Failed),
			slog.Int("skipped", summary.Skipped))
	}
	return summary, nil
}

func (j *PostingReconciler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	_, _ = j.RunOnce(ctx)
}

// Start schedules a pass every intervalMinutes and returns a function that stops the schedule.
func (j *PostingReconciler) Start(intervalMinutes uint64) (stop func()) {
	s := gocron.NewScheduler()
	s.Every(intervalMinutes).Minutes().Do(j.run)
	stopped := s.Start()
	j.logger.Info("Posting reconciler scheduled", slog.Uint64("interval_minutes", intervalMinutes))
	return func() {
		s.Clear()
		stopped <- true
	}
}
