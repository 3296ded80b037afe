package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/infrastructure/monitoring"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

var _ DBPool = (pgxmock.PgxPoolIface)(nil)

var errMsgFormat = "%w: %w"

const loanColumns = `id, borrower_id, request_id, principal, interest_rate, total_amount, daily_payment, start_date, due_date, balance, status, missed_days, created_at, updated_at`

type LoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ loan.Repository = (*LoanRepository)(nil)

func NewLoanRepository(db DBPool, logger *slog.Logger) *LoanRepository {
	return &LoanRepository{db: db, logger: logger.With("component", "LoanRepository")}
}

func (r *LoanRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return tx, nil
}

func (r *LoanRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", "error", err)
		return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return nil
}

func (r *LoanRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	err := tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		r.logger.ErrorContext(ctx, "Failed to rollback transaction", "error", err)
		return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return nil
}

func scanLoan(row pgx.Row) (*loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(
		&l.ID, &l.BorrowerID, &l.RequestID, &l.Principal, &l.InterestRate,
		&l.TotalAmount, &l.DailyPayment, &l.StartDate, &l.DueDate,
		&l.Balance, &l.Status, &l.MissedDays, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoanRepository) GetLoanByID(ctx context.Context, loanID int64) (*loan.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE id = $1`
	status := "success"
	startTime := time.Now()

	l, err := scanLoan(r.db.QueryRow(ctx, query, loanID))

	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("GetLoanByID", status, time.Since(startTime))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Loan not found", "loan_id", loanID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get loan by ID", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return l, nil
}

func (r *LoanRepository) ListLoansByBorrower(ctx context.Context, borrowerID int64) ([]loan.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE borrower_id = $1
        ORDER BY id`

	rows, err := r.db.Query(ctx, query, borrowerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query loans by borrower", "borrower_id", borrowerID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	loans := make([]loan.Loan, 0)
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan loan row", "borrower_id", borrowerID, "error", err)
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		loans = append(loans, *l)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating loan rows", "borrower_id", borrowerID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return loans, nil
}

func (r *LoanRepository) GetAllActiveLoanIDs(ctx context.Context) ([]int64, error) {
	logCtx := r.logger.With(slog.String("operation", "GetAllActiveLoanIDs"))
	logCtx.DebugContext(ctx, "Attempting to get all active loan IDs")

	query := `SELECT id FROM loans WHERE status = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, loan.StatusActive)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to query active loan IDs", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query active loans: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	loanIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			logCtx.ErrorContext(ctx, "Failed to scan active loan ID row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed scanning active loan ID: %w", apperrors.ErrDatabase, err)
		}
		loanIDs = append(loanIDs, id)
	}

	if err = rows.Err(); err != nil {
		logCtx.ErrorContext(ctx, "Error iterating active loan ID rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating active loan IDs: %w", apperrors.ErrDatabase, err)
	}

	logCtx.DebugContext(ctx, "Finished getting active loan IDs", slog.Int("count", len(loanIDs)))
	return loanIDs, nil
}

func (r *LoanRepository) GetLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID int64) (*loan.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE id = $1
        FOR UPDATE`

	l, err := scanLoan(tx.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Loan not found for update", "loan_id", loanID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to lock loan row", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return l, nil
}

func (r *LoanRepository) InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment *loan.Payment) (*loan.Payment, error) {
	sql := `
        INSERT INTO payments (loan_id, payment_date, amount, created_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING id, loan_id, payment_date, amount, created_at`

	var created loan.Payment
	err := tx.QueryRow(ctx, sql, payment.LoanID, payment.Date, payment.Amount).Scan(
		&created.ID, &created.LoanID, &created.Date, &created.Amount, &created.CreatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert payment", "loan_id", payment.LoanID, "error", err)
		return nil, fmt.Errorf("%w: failed to insert payment: %w", apperrors.ErrDatabase, err)
	}
	r.logger.InfoContext(ctx, "Payment inserted in DB", "payment_id", created.ID, "loan_id", created.LoanID)
	return &created, nil
}

func scanPayments(rows pgx.Rows) ([]loan.Payment, error) {
	payments := make([]loan.Payment, 0)
	for rows.Next() {
		var p loan.Payment
		if err := rows.Scan(&p.ID, &p.LoanID, &p.Date, &p.Amount, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *LoanRepository) GetPaymentsByLoanID(ctx context.Context, loanID int64) ([]loan.Payment, error) {
	query := `
        SELECT id, loan_id, payment_date, amount, created_at
        FROM payments
        WHERE loan_id = $1
        ORDER BY payment_date ASC, id ASC`

	rows, err := r.db.Query(ctx, query, loanID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payments", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	payments, err := scanPayments(rows)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to scan payment rows", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return payments, nil
}

func (r *LoanRepository) GetPaymentsByLoanIDInTx(ctx context.Context, tx pgx.Tx, loanID int64) ([]loan.Payment, error) {
	query := `
        SELECT id, loan_id, payment_date, amount, created_at
        FROM payments
        WHERE loan_id = $1
        ORDER BY payment_date ASC, id ASC`

	rows, err := tx.Query(ctx, query, loanID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payments in tx", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	payments, err := scanPayments(rows)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to scan payment rows in tx", "loan_id", loanID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return payments, nil
}

func (r *LoanRepository) UpdateLoanDerivedInTx(ctx context.Context, tx pgx.Tx, l *loan.Loan) error {
	sql := `
        UPDATE loans
        SET total_amount = $1, balance = $2, status = $3, missed_days = $4, updated_at = NOW()
        WHERE id = $5`

	cmdTag, err := tx.Exec(ctx, sql, l.TotalAmount, l.Balance, l.Status, l.MissedDays, l.ID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update loan derived fields", "loan_id", l.ID, "error", err)
		return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	if cmdTag.RowsAffected() != 1 {
		r.logger.ErrorContext(ctx, "Loan derived-field update affected zero rows", "loan_id", l.ID)
		return fmt.Errorf("%w: loan update affected zero rows", apperrors.ErrDatabase)
	}
	return nil
}

func (r *LoanRepository) SumPaymentsBetween(ctx context.Context, start, end time.Time) (loan.Money, error) {
	var total loan.Money

	query := `
        SELECT COALESCE(SUM(amount), 0.00)
        FROM payments
        WHERE payment_date >= $1 AND payment_date <= $2`

	status := "success"
	startTime := time.Now()
	err := r.db.QueryRow(ctx, query, start, end).Scan(&total)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("SumPaymentsBetween", status, time.Since(startTime))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to sum payments in range", "error", err)
		return 0, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return total, nil
}

func (r *LoanRepository) SumPaymentsAll(ctx context.Context) (loan.Money, error) {
	var total loan.Money

	query := `SELECT COALESCE(SUM(amount), 0.00) FROM payments`

	status := "success"
	startTime := time.Now()
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("SumPaymentsAll", status, time.Since(startTime))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to sum all payments", "error", err)
		return 0, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return total, nil
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {

		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
