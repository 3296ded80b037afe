package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"microloan-ledger/internal/domain/borrower"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const borrowerColumns = `id, name, address, active, created_at, updated_at`

type BorrowerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ borrower.BorrowerRepository = (*BorrowerRepository)(nil)

func NewBorrowerRepository(db DBPool, logger *slog.Logger) *BorrowerRepository {
	if db == nil {
		panic("DBPool cannot be nil for BorrowerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewBorrowerRepository, using default stderr handler")
	}
	return &BorrowerRepository{
		db:     db,
		logger: logger.With("component", "BorrowerRepository"),
	}
}

func scanBorrower(row pgx.Row) (*borrower.Borrower, error) {
	var b borrower.Borrower
	err := row.Scan(&b.BorrowerID, &b.Name, &b.Address, &b.Active, &b.CreateDate, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BorrowerRepository) Save(ctx context.Context, b *borrower.Borrower) error {
	sql := `
        INSERT INTO borrowers (name, address, active, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, sql, b.Name, b.Address, b.Active).Scan(&b.BorrowerID, &b.CreateDate, &b.UpdatedAt)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert borrower", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}
	r.logger.InfoContext(ctx, "Borrower created in DB", "borrower_id", b.BorrowerID)
	return nil
}

func (r *BorrowerRepository) GetByID(ctx context.Context, borrowerID int64) (*borrower.Borrower, error) {
	query := `
        SELECT ` + borrowerColumns + `
        FROM borrowers
        WHERE id = $1`

	b, err := scanBorrower(r.db.QueryRow(ctx, query, borrowerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Borrower not found", "borrower_id", borrowerID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get borrower by ID", "borrower_id", borrowerID, slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return b, nil
}

func (r *BorrowerRepository) ListActive(ctx context.Context) ([]*borrower.Borrower, error) {
	query := `
        SELECT ` + borrowerColumns + `
        FROM borrowers
        WHERE active = TRUE
        ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query active borrowers", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	borrowers := make([]*borrower.Borrower, 0)
	for rows.Next() {
		b, err := scanBorrower(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan borrower row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		borrowers = append(borrowers, b)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating borrower rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return borrowers, nil
}

func (r *BorrowerRepository) SetActive(ctx context.Context, borrowerID int64, active bool) error {
	sql := `UPDATE borrowers SET active = $1, updated_at = NOW() WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, sql, active, borrowerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update borrower active flag", "borrower_id", borrowerID, slog.Any("error", err))
		return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	if cmdTag.RowsAffected() != 1 {
		r.logger.ErrorContext(ctx, "Borrower active-flag update affected zero rows", "borrower_id", borrowerID)
		return fmt.Errorf("%w: borrower %d", apperrors.ErrNotFound, borrowerID)
	}
	return nil
}
