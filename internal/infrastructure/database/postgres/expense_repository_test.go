package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"microloan-ledger/internal/domain/expense"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExpenseRepo(t *testing.T) (context.Context, *ExpenseRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	repo := NewExpenseRepository(mockPool, newTestLogger())
	return context.Background(), repo, mockPool
}

func expenseRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "description", "expense_date", "amount", "category", "created_at"})
}

func TestExpenseRepository_CreateExpense(t *testing.T) {
	sql := `
        INSERT INTO expenses (description, expense_date, amount, category, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING ` + expenseColumns

	date := time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("inserts and returns the stored expense", func(t *testing.T) {
		ctx, repo, mockPool := setupExpenseRepo(t)

		mockPool.ExpectQuery(regexp.QuoteMeta(sql)).
			WithArgs("diesel for the field route", date, 45.0, expense.CategoryFuel).
			WillReturnRows(expenseRows().AddRow(
				int64(5), "diesel for the field route", date, 45.0, expense.CategoryFuel, now,
			))

		e := &expense.Expense{Description: "diesel for the field route", Date: date, Amount: 45.0, Category: expense.CategoryFuel}
		created, err := repo.CreateExpense(ctx, e)

		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		assert.Equal(t, expense.CategoryFuel, created.Category)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("wraps insert failure", func(t *testing.T) {
		ctx, repo, mockPool := setupExpenseRepo(t)

		mockPool.ExpectQuery(regexp.QuoteMeta(sql)).
			WithArgs("diesel for the field route", date, 45.0, expense.CategoryFuel).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.CreateExpense(ctx, &expense.Expense{
			Description: "diesel for the field route", Date: date, Amount: 45.0, Category: expense.CategoryFuel,
		})

		assert.ErrorIs(t, err, apperrors.ErrDatabase)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})
}

func TestExpenseRepository_GetExpenseByID(t *testing.T) {
	query := `
        SELECT ` + expenseColumns + `
        FROM expenses
        WHERE id = $1`

	date := time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("returns the expense", func(t *testing.T) {
		ctx, repo, mockPool := setupExpenseRepo(t)

		mockPool.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(int64(5)).
			WillReturnRows(expenseRows().AddRow(
				int64(5), "lunch on collection day", date, 12.5, expense.CategoryFood, now,
			))

		e, err := repo.GetExpenseByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), e.ID)
		assert.Equal(t, expense.CategoryFood, e.Category)
		assert.Equal(t, 12.5, e.Amount)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		ctx, repo, mockPool := setupExpenseRepo(t)

		mockPool.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetExpenseByID(ctx, 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})
}

func TestExpenseRepository_ListExpenses(t *testing.T) {
	date1 := time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
	date2 := time.Date(2023, 6, 7, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	t.Run("lists everything without a window", func(t *testing.T) {
		query := `
        SELECT ` + expenseColumns + `
        FROM expenses ORDER BY expense_date ASC, id ASC`

		ctx, repo, mockPool := setupExpenseRepo(t)

		mockPool.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(expenseRows().
				AddRow(int64(5), "lunch on collection day", date1, 12.5, expense.CategoryFood, now).
				AddRow(int64(6), "diesel for the field route", date2, 45.0, expense.CategoryFuel, now))

		expenses, err := repo.ListExpenses(ctx, nil, nil)

		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, expense.CategoryFuel, expenses[1].Category)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("applies both window bounds", func(t *testing.T) {
		query := `
        SELECT ` + expenseColumns + `
        FROM expenses WHERE expense_date >= $1 AND expense_date <= $2 ORDER BY expense_date ASC, id ASC`

		ctx, repo, mockPool := setupExpenseRepo(t)

		mockPool.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(date1, date2).
			WillReturnRows(expenseRows().
				AddRow(int64(5), "lunch on collection day", date1, 12.5, expense.CategoryFood, now))

		expenses, err := repo.ListExpenses(ctx, &date1, &date2)

		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("applies a lone upper bound", func(t *testing.T) {
		query := `
        SELECT ` + expenseColumns + `
        FROM expenses WHERE expense_date <= $1 ORDER BY expense_date ASC, id ASC`

		ctx, repo, mockPool := setupExpenseRepo(t)

		mockPool.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(date2).
			WillReturnRows(expenseRows())

		expenses, err := repo.ListExpenses(ctx, nil, &date2)

		require.NoError(t, err)
		assert.Empty(t, expenses)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})
}

func TestExpenseRepository_SumExpenses(t *testing.T) {
	t.Run("sums expenses in window", func(t *testing.T) {
		query := `
        SELECT COALESCE(SUM(amount), 0.00)
        FROM expenses
        WHERE expense_date >= $1 AND expense_date <= $2`

		ctx, repo, mockPool := setupExpenseRepo(t)

		start := time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC)
		end := time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)

		mockPool.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(start, end).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(80.0))

		total, err := repo.SumExpensesBetween(ctx, start, end)

		require.NoError(t, err)
		assert.Equal(t, 80.0, total)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("sums all expenses", func(t *testing.T) {
		query := `SELECT COALESCE(SUM(amount), 0.00) FROM expenses`

		ctx, repo, mockPool := setupExpenseRepo(t)

		mockPool.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(312.75))

		total, err := repo.SumExpensesAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, 312.75, total)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})
}
