package batch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"microloan-ledger/internal/batch"
	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) GetLoan(ctx context.Context, loanID int64) (*loan.Loan, error) {
	args := m.Called(ctx, loanID)
	if l, ok := args.Get(0).(*loan.Loan); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) GetPayments(ctx context.Context, loanID int64) ([]loan.Payment, error) {
	args := m.Called(ctx, loanID)
	if payments, ok := args.Get(0).([]loan.Payment); ok {
		return payments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) GetMissedDays(ctx context.Context, loanID int64, asOf time.Time) (int, error) {
	args := m.Called(ctx, loanID, asOf)
	return args.Int(0), args.Error(1)
}

func (m *MockLoanService) ListLoansByBorrower(ctx context.Context, borrowerID int64) ([]loan.Loan, error) {
	args := m.Called(ctx, borrowerID)
	if loans, ok := args.Get(0).([]loan.Loan); ok {
		return loans, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) RegisterPayment(ctx context.Context, loanID int64, date time.Time, amount loan.Money, asOf time.Time) (*loan.Payment, error) {
	args := m.Called(ctx, loanID, date, amount, asOf)
	if p, ok := args.Get(0).(*loan.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) RecomputeLoan(ctx context.Context, loanID int64, asOf time.Time) (*loan.Loan, error) {
	args := m.Called(ctx, loanID, asOf)
	if l, ok := args.Get(0).(*loan.Loan); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) GetLoanByID(ctx context.Context, loanID int64) (*loan.Loan, error) {
	args := m.Called(ctx, loanID)
	if l, ok := args.Get(0).(*loan.Loan); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanRepository) ListLoansByBorrower(ctx context.Context, borrowerID int64) ([]loan.Loan, error) {
	args := m.Called(ctx, borrowerID)
	if loans, ok := args.Get(0).([]loan.Loan); ok {
		return loans, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanRepository) GetAllActiveLoanIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]int64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanRepository) GetPaymentsByLoanID(ctx context.Context, loanID int64) ([]loan.Payment, error) {
	args := m.Called(ctx, loanID)
	if payments, ok := args.Get(0).([]loan.Payment); ok {
		return payments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanRepository) GetLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID int64) (*loan.Loan, error) {
	args := m.Called(ctx, tx, loanID)
	if l, ok := args.Get(0).(*loan.Loan); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanRepository) InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment *loan.Payment) (*loan.Payment, error) {
	args := m.Called(ctx, tx, payment)
	if p, ok := args.Get(0).(*loan.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanRepository) GetPaymentsByLoanIDInTx(ctx context.Context, tx pgx.Tx, loanID int64) ([]loan.Payment, error) {
	args := m.Called(ctx, tx, loanID)
	if payments, ok := args.Get(0).([]loan.Payment); ok {
		return payments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanRepository) UpdateLoanDerivedInTx(ctx context.Context, tx pgx.Tx, l *loan.Loan) error {
	args := m.Called(ctx, tx, l)
	return args.Error(0)
}

func (m *MockLoanRepository) SumPaymentsBetween(ctx context.Context, start, end time.Time) (loan.Money, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(loan.Money), args.Error(1)
}

func (m *MockLoanRepository) SumPaymentsAll(ctx context.Context) (loan.Money, error) {
	args := m.Called(ctx)
	return args.Get(0).(loan.Money), args.Error(1)
}

func (m *MockLoanRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLoanRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecomputeLoanStatusJobRun(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes every active loan", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		mockSvc := new(MockLoanService)
		job := batch.NewRecomputeLoanStatusJob(mockRepo, mockSvc, newTestLogger())

		mockRepo.On("GetAllActiveLoanIDs", ctx).Return([]int64{1, 2, 3}, nil)
		mockSvc.On("RecomputeLoan", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).
			Return(&loan.Loan{ID: 1, Status: loan.StatusActive}, nil)
		mockSvc.On("RecomputeLoan", mock.Anything, int64(2), mock.AnythingOfType("time.Time")).
			Return(&loan.Loan{ID: 2, Status: loan.StatusPaid}, nil)
		mockSvc.On("RecomputeLoan", mock.Anything, int64(3), mock.AnythingOfType("time.Time")).
			Return(&loan.Loan{ID: 3, Status: loan.StatusOverdue, MissedDays: 4}, nil)

		err := job.Run(ctx)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no active loans is a no-op", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		mockSvc := new(MockLoanService)
		job := batch.NewRecomputeLoanStatusJob(mockRepo, mockSvc, newTestLogger())

		mockRepo.On("GetAllActiveLoanIDs", ctx).Return([]int64{}, nil)

		err := job.Run(ctx)

		assert.NoError(t, err)
		mockSvc.AssertNotCalled(t, "RecomputeLoan")
	})

	t.Run("aborts when active loan IDs cannot be fetched", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		mockSvc := new(MockLoanService)
		job := batch.NewRecomputeLoanStatusJob(mockRepo, mockSvc, newTestLogger())

		mockRepo.On("GetAllActiveLoanIDs", ctx).Return(([]int64)(nil), errors.New("connection refused"))

		err := job.Run(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get active loans")
	})

	t.Run("vanished loans are skipped without failing the job", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		mockSvc := new(MockLoanService)
		job := batch.NewRecomputeLoanStatusJob(mockRepo, mockSvc, newTestLogger())

		mockRepo.On("GetAllActiveLoanIDs", ctx).Return([]int64{1, 2}, nil)
		mockSvc.On("RecomputeLoan", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).
			Return(&loan.Loan{ID: 1, Status: loan.StatusActive}, nil)
		mockSvc.On("RecomputeLoan", mock.Anything, int64(2), mock.AnythingOfType("time.Time")).
			Return((*loan.Loan)(nil), apperrors.ErrNotFound)

		err := job.Run(ctx)

		assert.NoError(t, err)
		mockSvc.AssertExpectations(t)
	})

	t.Run("reports errors in the result", func(t *testing.T) {
		mockRepo := new(MockLoanRepository)
		mockSvc := new(MockLoanService)
		job := batch.NewRecomputeLoanStatusJob(mockRepo, mockSvc, newTestLogger())

		mockRepo.On("GetAllActiveLoanIDs", ctx).Return([]int64{1}, nil)
		mockSvc.On("RecomputeLoan", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).
			Return((*loan.Loan)(nil), errors.New("deadlock detected"))

		err := job.Run(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "1 errors")
	})
}
