package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/domain/request"
	"microloan-ledger/internal/infrastructure/monitoring"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const requestColumns = `id, borrower_id, amount, term_days, interest_rate, status, created_at, updated_at`

type RequestRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ request.Repository = (*RequestRepository)(nil)

func NewRequestRepository(db DBPool, logger *slog.Logger) *RequestRepository {
	return &RequestRepository{db: db, logger: logger.With("component", "RequestRepository")}
}

func scanRequest(row pgx.Row) (*request.LoanRequest, error) {
	var req request.LoanRequest
	err := row.Scan(
		&req.ID, &req.BorrowerID, &req.Amount, &req.TermDays,
		&req.InterestRate, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req *request.LoanRequest) (*request.LoanRequest, error) {
	sql := `
        INSERT INTO loan_requests (borrower_id, amount, term_days, interest_rate, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING ` + requestColumns

	created, err := scanRequest(r.db.QueryRow(ctx, sql,
		req.BorrowerID, req.Amount, req.TermDays, req.InterestRate, req.Status,
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert loan request", "borrower_id", req.BorrowerID, "error", err)
		return nil, translateDBError(err, r.logger)
	}
	r.logger.InfoContext(ctx, "Loan request created in DB", "request_id", created.ID)
	return created, nil
}

func (r *RequestRepository) GetRequestByID(ctx context.Context, requestID int64) (*request.LoanRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM loan_requests
        WHERE id = $1`
	status := "success"
	startTime := time.Now()

	req, err := scanRequest(r.db.QueryRow(ctx, query, requestID))

	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("GetRequestByID", status, time.Since(startTime))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Loan request not found", "request_id", requestID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get loan request by ID", "request_id", requestID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return req, nil
}

func (r *RequestRepository) ListRequestsByBorrower(ctx context.Context, borrowerID int64) ([]request.LoanRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM loan_requests
        WHERE borrower_id = $1
        ORDER BY id`

	rows, err := r.db.Query(ctx, query, borrowerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query loan requests", "borrower_id", borrowerID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	requests := make([]request.LoanRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan loan request row", "borrower_id", borrowerID, "error", err)
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		requests = append(requests, *req)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating loan request rows", "borrower_id", borrowerID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return requests, nil
}

func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, requestID int64, status request.RequestStatus) error {
	sql := `UPDATE loan_requests SET status = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, sql, status, requestID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update loan request status", "request_id", requestID, "status", status, "error", err)
		return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	if cmdTag.RowsAffected() != 1 {
		r.logger.ErrorContext(ctx, "Loan request status update affected zero rows", "request_id", requestID)
		return fmt.Errorf("%w: loan request %d", apperrors.ErrNotFound, requestID)
	}
	r.logger.InfoContext(ctx, "Loan request status updated in DB", "request_id", requestID, "new_status", status)
	return nil
}

// ApproveRequest performs the two writes of an approval atomically: the
// request row flips to APPROVED (only if still DRAFT) and the loan row is
// inserted. The request row is never deleted.
func (r *RequestRepository) ApproveRequest(ctx context.Context, requestID int64, newLoan *loan.Loan) (createdLoan *loan.Loan, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin approval transaction", "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				r.logger.ErrorContext(ctx, "Failed to rollback approval transaction", "error", rbErr)
			}
		}
	}()

	updateSQL := `
        UPDATE loan_requests
        SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status = $3`

	cmdTag, err := tx.Exec(ctx, updateSQL, request.StatusApproved, requestID, request.StatusDraft)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to mark request approved", "request_id", requestID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Request not in draft state at approval time", "request_id", requestID)
		err = fmt.Errorf("%w: request %d is no longer in draft state", apperrors.ErrConflict, requestID)
		return nil, err
	}

	loanSQL := `
        INSERT INTO loans (borrower_id, request_id, principal, interest_rate, total_amount, daily_payment, start_date, due_date, balance, status, missed_days, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
        RETURNING ` + loanColumns

	createdLoan, err = scanLoan(tx.QueryRow(ctx, loanSQL,
		newLoan.BorrowerID, newLoan.RequestID, newLoan.Principal, newLoan.InterestRate,
		newLoan.TotalAmount, newLoan.DailyPayment, newLoan.StartDate, newLoan.DueDate,
		newLoan.Balance, newLoan.Status, newLoan.MissedDays,
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert loan", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: failed to insert loan: %w", apperrors.ErrDatabase, err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit approval transaction", "request_id", requestID, "error", err)
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Loan created in DB from approved request", "request_id", requestID, "loan_id", createdLoan.ID)
	return createdLoan, nil
}
