package request

import (
	"context"

	"microloan-ledger/internal/domain/loan"
)

type Repository interface {
	CreateRequest(ctx context.Context, req *LoanRequest) (*LoanRequest, error)

	GetRequestByID(ctx context.Context, requestID int64) (*LoanRequest, error)

	ListRequestsByBorrower(ctx context.Context, borrowerID int64) ([]LoanRequest, error)

	UpdateRequestStatus(ctx context.Context, requestID int64, status RequestStatus) error

	// ApproveRequest flips the request to APPROVED and inserts the
	// materialized loan in a single transaction.
	ApproveRequest(ctx context.Context, requestID int64, newLoan *loan.Loan) (*loan.Loan, error)
}
