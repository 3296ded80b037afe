package request

import (
	"fmt"
	"time"

	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/pkg/apperrors"
)

type RequestStatus string

const (
	StatusDraft    RequestStatus = "DRAFT"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

const DefaultInterestRate = 10.0

// LoanRequest is a loan application. It is immutable once it leaves DRAFT:
// the only transitions are DRAFT -> APPROVED and DRAFT -> REJECTED, both
// terminal.
type LoanRequest struct {
	ID           int64
	BorrowerID   int64
	Amount       loan.Money
	TermDays     int
	InterestRate loan.Money
	Status       RequestStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewLoanRequest validates at creation time, so a malformed application
// never reaches the store and approval can assume a well-formed request.
func NewLoanRequest(borrowerID int64, amount loan.Money, termDays int, interestRate loan.Money) (*LoanRequest, error) {
	if borrowerID <= 0 {
		return nil, apperrors.NewValidationError("borrowerId", "must reference a borrower")
	}
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "must be greater than zero")
	}
	if termDays <= 0 {
		return nil, fmt.Errorf("%w: got %d days", apperrors.ErrInvalidTerm, termDays)
	}
	if interestRate < 0 {
		return nil, apperrors.NewValidationError("interestRate", "cannot be negative")
	}

	return &LoanRequest{
		BorrowerID:   borrowerID,
		Amount:       amount,
		TermDays:     termDays,
		InterestRate: interestRate,
		Status:       StatusDraft,
	}, nil
}

func (r *LoanRequest) IsDraft() bool {
	return r.Status == StatusDraft
}
