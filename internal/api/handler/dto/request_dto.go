package dto

import (
	"fmt"
	"strconv"
	"time"

	"microloan-ledger/internal/domain/request"
)

type CreateLoanRequestRequest struct {
	BorrowerID   int64    `json:"borrowerId"`
	Amount       float64  `json:"amount"`
	TermDays     int      `json:"termDays"`
	InterestRate *float64 `json:"interestRate,omitempty"`
}

func (r *CreateLoanRequestRequest) Validate() error {
	if r.BorrowerID <= 0 {
		return fmt.Errorf("borrowerId must be positive")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if r.TermDays <= 0 {
		return fmt.Errorf("termDays must be positive")
	}
	if r.InterestRate != nil && *r.InterestRate < 0 {
		return fmt.Errorf("interestRate cannot be negative")
	}
	return nil
}

// ParsedInterestRate resolves the rate, falling back to the standard rate
// when the field is omitted. An explicit zero stays zero.
func (r *CreateLoanRequestRequest) ParsedInterestRate() float64 {
	if r.InterestRate == nil {
		return request.DefaultInterestRate
	}
	return *r.InterestRate
}

type ApproveRequestRequest struct {
	StartDate string `json:"startDate,omitempty"`
}

func (r *ApproveRequestRequest) Validate() error {
	if r.StartDate != "" {
		if _, err := time.Parse(time.DateOnly, r.StartDate); err != nil {
			return fmt.Errorf("invalid startDate format (use YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (r *ApproveRequestRequest) ParsedStartDate() time.Time {
	if r.StartDate == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.DateOnly, r.StartDate)
	return t
}

type LoanRequestResponse struct {
	ID           string    `json:"id"`
	BorrowerID   string    `json:"borrowerId"`
	Amount       string    `json:"amount"`
	TermDays     int       `json:"termDays"`
	InterestRate string    `json:"interestRate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewLoanRequestResponse(req *request.LoanRequest) LoanRequestResponse {
	return LoanRequestResponse{
		ID:           strconv.FormatInt(req.ID, 10),
		BorrowerID:   strconv.FormatInt(req.BorrowerID, 10),
		Amount:       formatMoney(req.Amount),
		TermDays:     req.TermDays,
		InterestRate: formatRate(req.InterestRate),
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
}
