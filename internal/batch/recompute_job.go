package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/pkg/apperrors"
)

// RecomputeLoanStatusJob walks every active loan once a day and recomputes
// its balance, status, and missed-day count as of the current date.
type RecomputeLoanStatusJob struct {
	loanRepo    loan.Repository
	loanService loan.LoanService
	logger      *slog.Logger
}

func NewRecomputeLoanStatusJob(
	loanRepo loan.Repository,
	loanSvc loan.LoanService,
	logger *slog.Logger,
) *RecomputeLoanStatusJob {
	if loanRepo == nil || loanSvc == nil || logger == nil {
		panic("RecomputeLoanStatusJob dependencies cannot be nil")
	}
	return &RecomputeLoanStatusJob{
		loanRepo:    loanRepo,
		loanService: loanSvc,
		logger:      logger.With("job", "RecomputeLoanStatus"),
	}
}

func (j *RecomputeLoanStatusJob) Run(ctx context.Context) error {
	startTime := time.Now()
	asOf := time.Date(startTime.Year(), startTime.Month(), startTime.Day(), 0, 0, 0, 0, time.UTC)
	j.logger.InfoContext(ctx, "Starting daily loan status recompute job.", slog.Time("asOf", asOf))

	activeLoanIDs, err := j.loanRepo.GetAllActiveLoanIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to get active loan IDs, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to get active loans: %w", err)
	}
	j.logger.InfoContext(ctx, "Fetched active loan IDs.", slog.Int("count", len(activeLoanIDs)))

	if len(activeLoanIDs) == 0 {
		j.logger.InfoContext(ctx, "No active loans found to process.")
		j.logger.InfoContext(ctx, "Loan status recompute job finished.", slog.Duration("duration", time.Since(startTime)))
		return nil
	}

	var wg sync.WaitGroup
	var processedCount, paidCount, overdueCount, errorCount atomic.Int32

	for _, loanID := range activeLoanIDs {
		wg.Add(1)
		go func(currentLoanID int64) {
			defer wg.Done()

			logCtx := j.logger.With(slog.Int64("loanID", currentLoanID))

			recomputed, recErr := j.loanService.RecomputeLoan(ctx, currentLoanID, asOf)
			if recErr != nil {
				if errors.Is(recErr, apperrors.ErrNotFound) {
					logCtx.WarnContext(ctx, "Loan not found during recompute (potentially deleted recently?)", slog.Any("error", recErr))
				} else {
					logCtx.ErrorContext(ctx, "Failed to recompute loan", slog.Any("error", recErr))
					errorCount.Add(1)
				}
				return
			}

			switch recomputed.Status {
			case loan.StatusPaid:
				logCtx.InfoContext(ctx, "Loan settled in full.", slog.Float64("balance", recomputed.Balance))
				paidCount.Add(1)
			case loan.StatusOverdue:
				logCtx.InfoContext(ctx, "Loan past its due date with an open balance.",
					slog.Float64("balance", recomputed.Balance),
					slog.Int("missedDays", recomputed.MissedDays))
				overdueCount.Add(1)
			}
			processedCount.Add(1)
		}(loanID)
	}

	wg.Wait()
	duration := time.Since(startTime)
	summaryLog := j.logger.With(
		slog.Duration("duration", duration),
		slog.Int("total_active_loans", len(activeLoanIDs)),
		slog.Int("loans_processed", int(processedCount.Load())),
		slog.Int("loans_settled", int(paidCount.Load())),
		slog.Int("loans_overdue", int(overdueCount.Load())),
		slog.Int("errors_encountered", int(errorCount.Load())),
	)
	if errorCount.Load() > 0 {
		summaryLog.WarnContext(ctx, "Loan status recompute job finished with errors.")
		return fmt.Errorf("job completed with %d errors", errorCount.Load())
	}
	summaryLog.InfoContext(ctx, "Loan status recompute job finished successfully.")
	return nil
}
