package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"microloan-ledger/internal/domain/expense"
	"microloan-ledger/internal/infrastructure/monitoring"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const expenseColumns = `id, description, expense_date, amount, category, created_at`

type ExpenseRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ expense.Repository = (*ExpenseRepository)(nil)

func NewExpenseRepository(db DBPool, logger *slog.Logger) *ExpenseRepository {
	return &ExpenseRepository{db: db, logger: logger.With("component", "ExpenseRepository")}
}

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.Description, &e.Date, &e.Amount, &e.Category, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) CreateExpense(ctx context.Context, e *expense.Expense) (*expense.Expense, error) {
	sql := `
        INSERT INTO expenses (description, expense_date, amount, category, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING ` + expenseColumns

	created, err := scanExpense(r.db.QueryRow(ctx, sql, e.Description, e.Date, e.Amount, e.Category))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert expense", "error", err)
		return nil, translateDBError(err, r.logger)
	}
	r.logger.InfoContext(ctx, "Expense created in DB", "expense_id", created.ID)
	return created, nil
}

func (r *ExpenseRepository) GetExpenseByID(ctx context.Context, expenseID int64) (*expense.Expense, error) {
	query := `
        SELECT ` + expenseColumns + `
        FROM expenses
        WHERE id = $1`

	e, err := scanExpense(r.db.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Expense not found", "expense_id", expenseID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get expense by ID", "expense_id", expenseID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return e, nil
}

func (r *ExpenseRepository) ListExpenses(ctx context.Context, from, to *time.Time) ([]expense.Expense, error) {
	query := `
        SELECT ` + expenseColumns + `
        FROM expenses`
	args := make([]any, 0, 2)
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" WHERE expense_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += fmt.Sprintf(" AND expense_date <= $%d", len(args))
		} else {
			query += fmt.Sprintf(" WHERE expense_date <= $%d", len(args))
		}
	}
	query += " ORDER BY expense_date ASC, id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query expenses", "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	expenses := make([]expense.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan expense row", "error", err)
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		expenses = append(expenses, *e)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating expense rows", "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return expenses, nil
}

func (r *ExpenseRepository) SumExpensesBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64

	query := `
        SELECT COALESCE(SUM(amount), 0.00)
        FROM expenses
        WHERE expense_date >= $1 AND expense_date <= $2`

	status := "success"
	startTime := time.Now()
	err := r.db.QueryRow(ctx, query, start, end).Scan(&total)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("SumExpensesBetween", status, time.Since(startTime))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to sum expenses in range", "error", err)
		return 0, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return total, nil
}

func (r *ExpenseRepository) SumExpensesAll(ctx context.Context) (float64, error) {
	var total float64

	query := `SELECT COALESCE(SUM(amount), 0.00) FROM expenses`

	status := "success"
	startTime := time.Now()
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("SumExpensesAll", status, time.Since(startTime))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to sum all expenses", "error", err)
		return 0, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return total, nil
}
