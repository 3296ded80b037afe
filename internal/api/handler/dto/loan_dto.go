package dto

import (
	"fmt"
	"strconv"
	"time"

	"microloan-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type RegisterPaymentRequest struct {
	Amount string `json:"amount"`
	Date   string `json:"date,omitempty"`
}

func (r *RegisterPaymentRequest) Validate() error {
	if _, err := decimal.NewFromString(r.Amount); err != nil || r.Amount == "" {
		return fmt.Errorf("invalid payment amount: %w", err)
	}
	if r.Date != "" {
		if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
			return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

// ParsedAmount returns the payment amount as a float. Validate must have
// succeeded first.
func (r *RegisterPaymentRequest) ParsedAmount() loan.Money {
	d, _ := decimal.NewFromString(r.Amount)
	f, _ := d.Float64()
	return f
}

// ParsedDate returns the payment date, or the zero time when the field was
// omitted so the service can default it.
func (r *RegisterPaymentRequest) ParsedDate() time.Time {
	if r.Date == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.DateOnly, r.Date)
	return t
}

type LoanResponse struct {
	ID           string            `json:"id"`
	BorrowerID   string            `json:"borrowerId"`
	RequestID    string            `json:"requestId"`
	Principal    string            `json:"principal"`
	InterestRate string            `json:"interestRate"`
	TotalAmount  string            `json:"totalAmount"`
	DailyPayment string            `json:"dailyPayment"`
	StartDate    string            `json:"startDate"`
	DueDate      string            `json:"dueDate"`
	Balance      string            `json:"balance"`
	Status       string            `json:"status"`
	MissedDays   int               `json:"missedDays"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	Payments     []PaymentResponse `json:"payments,omitempty"`
}

type PaymentResponse struct {
	ID        string    `json:"id"`
	LoanID    string    `json:"loanId"`
	Date      string    `json:"date"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

type MissedDaysResponse struct {
	LoanID     string `json:"loanId"`
	AsOf       string `json:"asOf"`
	MissedDays int    `json:"missedDays"`
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func NewLoanResponse(domainLoan *loan.Loan, includePayments bool) LoanResponse {
	formatDecimalMoney := func(d decimal.Decimal) string {
		return d.StringFixed(2)
	}

	principalStr := formatDecimalMoney(decimal.NewFromFloat(domainLoan.Principal))
	totalStr := formatDecimalMoney(decimal.NewFromFloat(domainLoan.TotalAmount))
	dailyStr := formatDecimalMoney(decimal.NewFromFloat(domainLoan.DailyPayment))
	balanceStr := formatDecimalMoney(decimal.NewFromFloat(domainLoan.Balance))
	interestRateStr := decimal.NewFromFloat(domainLoan.InterestRate).String()

	resp := LoanResponse{
		ID:           strconv.FormatInt(domainLoan.ID, 10),
		BorrowerID:   strconv.FormatInt(domainLoan.BorrowerID, 10),
		RequestID:    strconv.FormatInt(domainLoan.RequestID, 10),
		Principal:    principalStr,
		InterestRate: interestRateStr,
		TotalAmount:  totalStr,
		DailyPayment: dailyStr,
		StartDate:    domainLoan.StartDate.Format(time.DateOnly),
		DueDate:      domainLoan.DueDate.Format(time.DateOnly),
		Balance:      balanceStr,
		Status:       string(domainLoan.Status),
		MissedDays:   domainLoan.MissedDays,
		CreatedAt:    domainLoan.CreatedAt,
		UpdatedAt:    domainLoan.UpdatedAt,
	}

	if includePayments && domainLoan.Payments != nil {
		resp.Payments = make([]PaymentResponse, len(domainLoan.Payments))
		for i, p := range domainLoan.Payments {
			resp.Payments[i] = NewPaymentResponse(&p)
		}
	}

	return resp
}

func NewPaymentResponse(p *loan.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        strconv.FormatInt(p.ID, 10),
		LoanID:    strconv.FormatInt(p.LoanID, 10),
		Date:      p.Date.Format(time.DateOnly),
		Amount:    decimal.NewFromFloat(p.Amount).StringFixed(2),
		CreatedAt: p.CreatedAt,
	}
}
