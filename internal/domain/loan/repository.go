package loan

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	GetLoanByID(ctx context.Context, loanID int64) (*Loan, error)

	ListLoansByBorrower(ctx context.Context, borrowerID int64) ([]Loan, error)

	GetAllActiveLoanIDs(ctx context.Context) ([]int64, error)

	GetPaymentsByLoanID(ctx context.Context, loanID int64) ([]Payment, error)

	// GetLoanForUpdate locks the loan row for the duration of the
	// transaction. Payment registration serializes on it.
	GetLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID int64) (*Loan, error)

	InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment *Payment) (*Payment, error)

	GetPaymentsByLoanIDInTx(ctx context.Context, tx pgx.Tx, loanID int64) ([]Payment, error)

	UpdateLoanDerivedInTx(ctx context.Context, tx pgx.Tx, l *Loan) error

	SumPaymentsBetween(ctx context.Context, start, end time.Time) (Money, error)

	SumPaymentsAll(ctx context.Context) (Money, error)

	BeginTx(ctx context.Context) (pgx.Tx, error)

	CommitTx(ctx context.Context, tx pgx.Tx) error

	RollbackTx(ctx context.Context, tx pgx.Tx) error
}
