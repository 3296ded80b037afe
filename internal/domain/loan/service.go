package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"microloan-ledger/internal/event"
	"microloan-ledger/internal/infrastructure/monitoring"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type LoanService interface {
	GetLoan(ctx context.Context, loanID int64) (*Loan, error)

	GetPayments(ctx context.Context, loanID int64) ([]Payment, error)

	GetMissedDays(ctx context.Context, loanID int64, asOf time.Time) (int, error)

	ListLoansByBorrower(ctx context.Context, borrowerID int64) ([]Loan, error)

	RegisterPayment(ctx context.Context, loanID int64, date time.Time, amount Money, asOf time.Time) (*Payment, error)

	RecomputeLoan(ctx context.Context, loanID int64, asOf time.Time) (*Loan, error)
}

type loanServiceImpl struct {
	repo      Repository
	publisher event.EventPublisher
	logger    *slog.Logger
}

func NewLoanService(r Repository, publisher event.EventPublisher, logger *slog.Logger) LoanService {
	return &loanServiceImpl{repo: r, publisher: publisher, logger: logger.With("component", "LoanService")}
}

func (s *loanServiceImpl) GetLoan(ctx context.Context, loanID int64) (*Loan, error) {
	s.logger.Info("Getting loan details", "loanID", loanID)
	l, err := s.repo.GetLoanByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Loan not found", "loanID", loanID)
			return nil, fmt.Errorf("%w: loan with ID %d not found", apperrors.ErrNotFound, loanID)
		}
		s.logger.Error("Failed to get loan", "loanID", loanID, "error", err)
		return nil, fmt.Errorf("%w: failed to get loan %d: %v", apperrors.ErrInternalServer, loanID, err)
	}

	payments, err := s.repo.GetPaymentsByLoanID(ctx, loanID)
	if err != nil {
		s.logger.Error("Failed to get loan payments", "loanID", loanID, "error", err)
		return nil, fmt.Errorf("%w: failed to get payments for loan %d: %v", apperrors.ErrInternalServer, loanID, err)
	}
	l.Payments = payments

	return l, nil
}

func (s *loanServiceImpl) GetPayments(ctx context.Context, loanID int64) ([]Payment, error) {
	s.logger.Info("Getting loan payments", "loanID", loanID)
	if _, err := s.repo.GetLoanByID(ctx, loanID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: loan with ID %d not found", apperrors.ErrNotFound, loanID)
		}
		return nil, fmt.Errorf("%w: failed to get loan %d: %v", apperrors.ErrInternalServer, loanID, err)
	}

	payments, err := s.repo.GetPaymentsByLoanID(ctx, loanID)
	if err != nil {
		s.logger.Error("Failed to get loan payments", "loanID", loanID, "error", err)
		return nil, fmt.Errorf("%w: failed to get payments for loan %d: %v", apperrors.ErrInternalServer, loanID, err)
	}
	return payments, nil
}

// GetMissedDays reports the missed-day count as of the given date without
// touching the stored value. The stored count is refreshed on every payment
// mutation and by the nightly recompute job.
func (s *loanServiceImpl) GetMissedDays(ctx context.Context, loanID int64, asOf time.Time) (int, error) {
	s.logger.Info("Computing missed days", "loanID", loanID, "asOf", asOf)
	l, err := s.GetLoan(ctx, loanID)
	if err != nil {
		return 0, err
	}
	return ComputeMissedDays(l.StartDate, l.DueDate, l.Payments, asOf), nil
}

func (s *loanServiceImpl) ListLoansByBorrower(ctx context.Context, borrowerID int64) ([]Loan, error) {
	s.logger.Info("Listing loans for borrower", "borrowerID", borrowerID)
	loans, err := s.repo.ListLoansByBorrower(ctx, borrowerID)
	if err != nil {
		s.logger.Error("Failed to list loans", "borrowerID", borrowerID, "error", err)
		return nil, fmt.Errorf("%w: failed to list loans for borrower %d: %v", apperrors.ErrInternalServer, borrowerID, err)
	}
	return loans, nil
}

// RegisterPayment persists the payment and reruns the declarative recompute
// over the full stored payment set inside one transaction, with the loan row
// locked. There is no ad-hoc balance decrement, so registering never
// double-subtracts and concurrent payments against one loan serialize on the
// row lock.
func (s *loanServiceImpl) RegisterPayment(ctx context.Context, loanID int64, date time.Time, amount Money, asOf time.Time) (payment *Payment, err error) {
	s.logger.Info("Registering payment", "loanID", loanID, "amount", amount)

	if amount <= 0 {
		monitoring.RecordPayment("failure_amount")
		return nil, fmt.Errorf("%w: amount must be greater than zero, got %.2f", apperrors.ErrInvalidPaymentAmount, amount)
	}
	if date.IsZero() {
		date = truncateDay(asOf)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("Failed to begin transaction", "error", err)
		monitoring.RecordPayment("failure_internal")
		return nil, fmt.Errorf("%w: could not begin transaction: %v", apperrors.ErrInternalServer, err)
	}

	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("Panic occurred during payment registration", "loanID", loanID, "error", p)
			_ = s.repo.RollbackTx(ctx, tx)
			panic(p)
		} else if err != nil {
			s.logger.Error("Rolling back transaction due to error", "error", err)
			_ = s.repo.RollbackTx(ctx, tx)
		}
	}()

	l, err := s.repo.GetLoanForUpdate(ctx, tx, loanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, apperrors.ErrNotFound) {
			monitoring.RecordPayment("failure_not_found")
			return nil, fmt.Errorf("%w: cannot register payment, loan ID %d not found", apperrors.ErrNotFound, loanID)
		}
		monitoring.RecordPayment("failure_internal")
		return nil, fmt.Errorf("%w: could not lock loan %d: %v", apperrors.ErrInternalServer, loanID, err)
	}

	created, err := s.repo.InsertPaymentInTx(ctx, tx, &Payment{LoanID: loanID, Date: date, Amount: amount})
	if err != nil {
		monitoring.RecordPayment("failure_internal")
		return nil, fmt.Errorf("%w: could not insert payment: %v", apperrors.ErrInternalServer, err)
	}

	payments, err := s.repo.GetPaymentsByLoanIDInTx(ctx, tx, loanID)
	if err != nil {
		monitoring.RecordPayment("failure_internal")
		return nil, fmt.Errorf("%w: could not load payment set: %v", apperrors.ErrInternalServer, err)
	}

	oldStatus := l.Status
	l.Recompute(payments, asOf)

	if err = s.repo.UpdateLoanDerivedInTx(ctx, tx, l); err != nil {
		monitoring.RecordPayment("failure_internal")
		return nil, fmt.Errorf("%w: could not update loan derived fields: %v", apperrors.ErrInternalServer, err)
	}

	if err = s.repo.CommitTx(ctx, tx); err != nil {
		s.logger.Error("Failed to commit transaction", "loanID", loanID, "error", err)
		monitoring.RecordPayment("failure_internal")
		return nil, fmt.Errorf("%w: could not commit transaction: %v", apperrors.ErrInternalServer, err)
	}

	monitoring.RecordPayment("success")
	s.logger.Info("Payment registered successfully", "loanID", loanID, "paymentID", created.ID, "balance", l.Balance, "status", l.Status)

	s.publishStatusChange(ctx, l, oldStatus)

	return created, nil
}

// RecomputeLoan reruns the derived-field computation against the stored
// payment set. The nightly job uses it to pick up overdue transitions that
// happen with no payment activity at all.
func (s *loanServiceImpl) RecomputeLoan(ctx context.Context, loanID int64, asOf time.Time) (l *Loan, err error) {
	s.logger.Info("Recomputing loan", "loanID", loanID, "asOf", asOf)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: could not begin transaction: %v", apperrors.ErrInternalServer, err)
	}
	defer func() {
		if err != nil {
			_ = s.repo.RollbackTx(ctx, tx)
		}
	}()

	l, err = s.repo.GetLoanForUpdate(ctx, tx, loanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: loan with ID %d not found", apperrors.ErrNotFound, loanID)
		}
		return nil, fmt.Errorf("%w: could not lock loan %d: %v", apperrors.ErrInternalServer, loanID, err)
	}

	payments, err := s.repo.GetPaymentsByLoanIDInTx(ctx, tx, loanID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not load payment set: %v", apperrors.ErrInternalServer, err)
	}

	oldStatus := l.Status
	l.Recompute(payments, asOf)

	if err = s.repo.UpdateLoanDerivedInTx(ctx, tx, l); err != nil {
		return nil, fmt.Errorf("%w: could not update loan derived fields: %v", apperrors.ErrInternalServer, err)
	}

	if err = s.repo.CommitTx(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: could not commit transaction: %v", apperrors.ErrInternalServer, err)
	}

	if l.Status == StatusOverdue && oldStatus != StatusOverdue {
		monitoring.RecordLoanOverdue()
	}
	s.publishStatusChange(ctx, l, oldStatus)

	return l, nil
}

func (s *loanServiceImpl) publishStatusChange(ctx context.Context, l *Loan, oldStatus LoanStatus) {
	if s.publisher == nil || l.Status == oldStatus {
		return
	}
	evt := event.LoanStatusChangedEvent{
		LoanID:     l.ID,
		BorrowerID: l.BorrowerID,
		OldStatus:  string(oldStatus),
		NewStatus:  string(l.Status),
		Balance:    l.Balance,
		MissedDays: l.MissedDays,
		Timestamp:  time.Now(),
	}
	if err := s.publisher.PublishLoanStatusChanged(ctx, evt); err != nil {
		s.logger.Error("Failed to publish loan status change event", "loanID", l.ID, "error", err)
	}
}
