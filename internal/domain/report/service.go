package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"microloan-ledger/internal/pkg/apperrors"
)

// PaymentSource and ExpenseSource are the slices of the durable store the
// reports read from. The postgres loan and expense repositories satisfy them.
type PaymentSource interface {
	SumPaymentsBetween(ctx context.Context, start, end time.Time) (float64, error)
	SumPaymentsAll(ctx context.Context) (float64, error)
}

type ExpenseSource interface {
	SumExpensesBetween(ctx context.Context, start, end time.Time) (float64, error)
	SumExpensesAll(ctx context.Context) (float64, error)
}

type ReportService interface {
	// Cashflow sums payments and expenses with weekStart <= date <= weekEnd.
	// An inverted window yields zero totals, not an error.
	Cashflow(ctx context.Context, weekStart, weekEnd time.Time) (*CashflowReport, error)

	GlobalBalance(ctx context.Context) (*GlobalBalance, error)
}

type reportServiceImpl struct {
	payments PaymentSource
	expenses ExpenseSource
	cache    BalanceCache
	logger   *slog.Logger
}

func NewReportService(payments PaymentSource, expenses ExpenseSource, cache BalanceCache, logger *slog.Logger) ReportService {
	return &reportServiceImpl{
		payments: payments,
		expenses: expenses,
		cache:    cache,
		logger:   logger.With("component", "ReportService"),
	}
}

func (s *reportServiceImpl) Cashflow(ctx context.Context, weekStart, weekEnd time.Time) (*CashflowReport, error) {
	s.logger.Info("Computing cashflow report", "weekStart", weekStart, "weekEnd", weekEnd)

	report := &CashflowReport{WeekStart: weekStart, WeekEnd: weekEnd}
	if weekStart.After(weekEnd) {
		// An inverted window is tolerated, not rejected: zero totals.
		return report, nil
	}

	income, err := s.payments.SumPaymentsBetween(ctx, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("Failed to sum payments for cashflow", "error", err)
		return nil, fmt.Errorf("%w: failed to sum payments: %v", apperrors.ErrInternalServer, err)
	}

	expense, err := s.expenses.SumExpensesBetween(ctx, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("Failed to sum expenses for cashflow", "error", err)
		return nil, fmt.Errorf("%w: failed to sum expenses: %v", apperrors.ErrInternalServer, err)
	}

	report.TotalIncome = income
	report.TotalExpense = expense
	report.Balance = income - expense
	return report, nil
}

func (s *reportServiceImpl) GlobalBalance(ctx context.Context) (*GlobalBalance, error) {
	s.logger.Info("Computing global balance")

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			s.logger.Debug("Global balance served from cache")
			return cached, nil
		}
	}

	income, err := s.payments.SumPaymentsAll(ctx)
	if err != nil {
		s.logger.Error("Failed to sum all payments", "error", err)
		return nil, fmt.Errorf("%w: failed to sum payments: %v", apperrors.ErrInternalServer, err)
	}

	expense, err := s.expenses.SumExpensesAll(ctx)
	if err != nil {
		s.logger.Error("Failed to sum all expenses", "error", err)
		return nil, fmt.Errorf("%w: failed to sum expenses: %v", apperrors.ErrInternalServer, err)
	}

	balance := &GlobalBalance{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
		ComputedAt:   time.Now(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, balance); err != nil {
			s.logger.Warn("Failed to cache global balance", "error", err)
		}
	}

	return balance, nil
}
