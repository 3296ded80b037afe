package expense

import (
	"context"
	"time"
)

type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) (*Expense, error)

	GetExpenseByID(ctx context.Context, expenseID int64) (*Expense, error)

	ListExpenses(ctx context.Context, from, to *time.Time) ([]Expense, error)

	SumExpensesBetween(ctx context.Context, start, end time.Time) (float64, error)

	SumExpensesAll(ctx context.Context) (float64, error)
}
