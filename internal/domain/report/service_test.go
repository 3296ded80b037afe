package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPaymentSource struct {
	mock.Mock
}

func (m *mockPaymentSource) SumPaymentsBetween(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockPaymentSource) SumPaymentsAll(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mockExpenseSource struct {
	mock.Mock
}

func (m *mockExpenseSource) SumExpensesBetween(ctx context.Context, start, end time.Time) (float64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockExpenseSource) SumExpensesAll(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mapCache struct {
	stored *GlobalBalance
	setErr error
}

func (c *mapCache) Get(ctx context.Context) (*GlobalBalance, bool) {
	if c.stored == nil {
		return nil, false
	}
	return c.stored, true
}

func (c *mapCache) Set(ctx context.Context, b *GlobalBalance) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.stored = b
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReportServiceCashflow(t *testing.T) {
	ctx := context.Background()
	weekStart := time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)

	t.Run("balances income against expenses", func(t *testing.T) {
		payments := new(mockPaymentSource)
		expenses := new(mockExpenseSource)
		svc := NewReportService(payments, expenses, nil, discardLogger())

		payments.On("SumPaymentsBetween", ctx, weekStart, weekEnd).Return(250.0, nil)
		expenses.On("SumExpensesBetween", ctx, weekStart, weekEnd).Return(80.0, nil)

		report, err := svc.Cashflow(ctx, weekStart, weekEnd)

		assert.NoError(t, err)
		assert.Equal(t, 250.0, report.TotalIncome)
		assert.Equal(t, 80.0, report.TotalExpense)
		assert.Equal(t, 170.0, report.Balance)
		assert.Equal(t, weekStart, report.WeekStart)
		assert.Equal(t, weekEnd, report.WeekEnd)
	})

	t.Run("an inverted window yields zero totals", func(t *testing.T) {
		payments := new(mockPaymentSource)
		expenses := new(mockExpenseSource)
		svc := NewReportService(payments, expenses, nil, discardLogger())

		report, err := svc.Cashflow(ctx, weekEnd, weekStart)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, report.TotalIncome)
		assert.Equal(t, 0.0, report.TotalExpense)
		assert.Equal(t, 0.0, report.Balance)
		payments.AssertNotCalled(t, "SumPaymentsBetween")
		expenses.AssertNotCalled(t, "SumExpensesBetween")
	})

	t.Run("a week with no activity balances to zero", func(t *testing.T) {
		payments := new(mockPaymentSource)
		expenses := new(mockExpenseSource)
		svc := NewReportService(payments, expenses, nil, discardLogger())

		payments.On("SumPaymentsBetween", ctx, weekStart, weekEnd).Return(0.0, nil)
		expenses.On("SumExpensesBetween", ctx, weekStart, weekEnd).Return(0.0, nil)

		report, err := svc.Cashflow(ctx, weekStart, weekEnd)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, report.Balance)
	})

	t.Run("propagates source failures", func(t *testing.T) {
		payments := new(mockPaymentSource)
		expenses := new(mockExpenseSource)
		svc := NewReportService(payments, expenses, nil, discardLogger())

		payments.On("SumPaymentsBetween", ctx, weekStart, weekEnd).Return(0.0, errors.New("connection reset"))

		_, err := svc.Cashflow(ctx, weekStart, weekEnd)

		assert.Error(t, err)
	})
}

func TestReportServiceGlobalBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("computes and caches the balance", func(t *testing.T) {
		payments := new(mockPaymentSource)
		expenses := new(mockExpenseSource)
		cache := &mapCache{}
		svc := NewReportService(payments, expenses, cache, discardLogger())

		payments.On("SumPaymentsAll", ctx).Return(1500.0, nil).Once()
		expenses.On("SumExpensesAll", ctx).Return(400.0, nil).Once()

		balance, err := svc.GlobalBalance(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1500.0, balance.TotalIncome)
		assert.Equal(t, 400.0, balance.TotalExpense)
		assert.Equal(t, 1100.0, balance.Balance)
		assert.NotNil(t, cache.stored)

		// Second call is served from the cache; the Once expectations
		// above would fail on a recompute.
		again, err := svc.GlobalBalance(ctx)
		assert.NoError(t, err)
		assert.Equal(t, balance, again)
		payments.AssertExpectations(t)
	})

	t.Run("a cache write failure does not fail the report", func(t *testing.T) {
		payments := new(mockPaymentSource)
		expenses := new(mockExpenseSource)
		cache := &mapCache{setErr: errors.New("redis down")}
		svc := NewReportService(payments, expenses, cache, discardLogger())

		payments.On("SumPaymentsAll", ctx).Return(100.0, nil)
		expenses.On("SumExpensesAll", ctx).Return(30.0, nil)

		balance, err := svc.GlobalBalance(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 70.0, balance.Balance)
	})

	t.Run("works without a cache", func(t *testing.T) {
		payments := new(mockPaymentSource)
		expenses := new(mockExpenseSource)
		svc := NewReportService(payments, expenses, nil, discardLogger())

		payments.On("SumPaymentsAll", ctx).Return(0.0, nil)
		expenses.On("SumExpensesAll", ctx).Return(0.0, nil)

		balance, err := svc.GlobalBalance(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, balance.Balance)
	})
}
