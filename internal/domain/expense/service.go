package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"microloan-ledger/internal/infrastructure/monitoring"
	"microloan-ledger/internal/pkg/apperrors"
)

type ExpenseService interface {
	CreateExpense(ctx context.Context, description string, date time.Time, amount float64, category Category) (*Expense, error)

	GetExpense(ctx context.Context, expenseID int64) (*Expense, error)

	ListExpenses(ctx context.Context, from, to *time.Time) ([]Expense, error)
}

type expenseServiceImpl struct {
	repo   Repository
	logger *slog.Logger
}

func NewExpenseService(r Repository, logger *slog.Logger) ExpenseService {
	return &expenseServiceImpl{repo: r, logger: logger.With("component", "ExpenseService")}
}

func (s *expenseServiceImpl) CreateExpense(ctx context.Context, description string, date time.Time, amount float64, category Category) (*Expense, error) {
	s.logger.Info("Creating expense", "amount", amount, "category", category)

	e, err := NewExpense(description, date, amount, category)
	if err != nil {
		s.logger.Warn("Expense validation failed", "error", err)
		return nil, err
	}

	created, err := s.repo.CreateExpense(ctx, e)
	if err != nil {
		s.logger.Error("Failed to save expense", "error", err)
		return nil, fmt.Errorf("%w: failed to save expense: %v", apperrors.ErrInternalServer, err)
	}

	monitoring.RecordExpense()
	s.logger.Info("Expense created", "expenseID", created.ID)
	return created, nil
}

func (s *expenseServiceImpl) GetExpense(ctx context.Context, expenseID int64) (*Expense, error) {
	e, err := s.repo.GetExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Expense not found", "expenseID", expenseID)
			return nil, fmt.Errorf("%w: expense with ID %d not found", apperrors.ErrNotFound, expenseID)
		}
		s.logger.Error("Failed to get expense", "expenseID", expenseID, "error", err)
		return nil, fmt.Errorf("%w: failed to get expense %d: %v", apperrors.ErrInternalServer, expenseID, err)
	}
	return e, nil
}

func (s *expenseServiceImpl) ListExpenses(ctx context.Context, from, to *time.Time) ([]Expense, error) {
	expenses, err := s.repo.ListExpenses(ctx, from, to)
	if err != nil {
		s.logger.Error("Failed to list expenses", "error", err)
		return nil, fmt.Errorf("%w: failed to list expenses: %v", apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
