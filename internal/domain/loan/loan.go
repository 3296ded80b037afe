package loan

import (
	"fmt"
	"math"
	"time"

	"microloan-ledger/internal/pkg/apperrors"
)

type Money = float64

type LoanStatus string

const (
	StatusActive  LoanStatus = "ACTIVE"
	StatusPaid    LoanStatus = "PAID"
	StatusOverdue LoanStatus = "OVERDUE"
)

type Loan struct {
	ID           int64
	BorrowerID   int64
	RequestID    int64
	Principal    Money
	InterestRate Money
	TotalAmount  Money
	DailyPayment Money
	StartDate    time.Time
	DueDate      time.Time
	Balance      Money
	Status       LoanStatus
	MissedDays   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Payments     []Payment
}

type Payment struct {
	ID        int64
	LoanID    int64
	Date      time.Time
	Amount    Money
	CreatedAt time.Time
}

// NewLoan builds the loan materialized by an approved request. The term is
// consumed here to fix the daily payment and the due date; it is not stored.
func NewLoan(borrowerID, requestID int64, principal, interestRate Money, termDays int, startDate time.Time) (*Loan, error) {
	if principal <= 0 {
		return nil, fmt.Errorf("%w: principal must be greater than zero", apperrors.ErrValidation)
	}
	if interestRate < 0 {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", apperrors.ErrValidation)
	}
	if termDays <= 0 {
		return nil, fmt.Errorf("%w: got %d days", apperrors.ErrInvalidTerm, termDays)
	}
	if startDate.IsZero() {
		startDate = time.Now().Truncate(24 * time.Hour)
	}

	l := &Loan{
		BorrowerID:   borrowerID,
		RequestID:    requestID,
		Principal:    principal,
		InterestRate: interestRate,
		StartDate:    startDate,
		DueDate:      startDate.AddDate(0, 0, termDays),
		Status:       StatusActive,
	}

	l.TotalAmount = ComputeTotal(l.Principal, l.InterestRate)
	l.DailyPayment = roundTo(l.TotalAmount/float64(termDays), 2)
	l.Balance = l.TotalAmount

	return l, nil
}

// ComputeTotal is the flat one-time markup: principal * (1 + rate/100).
func ComputeTotal(principal, interestRate Money) Money {
	return principal * (1 + interestRate/100)
}

// Recompute derives balance, status and missed days from the stored payment
// set as of the given date. It is the only path that updates these fields;
// callers rerun it whenever the payment set or the loan dates change.
//
// Status moves one way only: ACTIVE -> PAID, ACTIVE -> OVERDUE,
// OVERDUE -> PAID. Nothing here ever resets a loan back to ACTIVE, even if
// the balance goes positive again.
func (l *Loan) Recompute(payments []Payment, asOf time.Time) {
	l.TotalAmount = ComputeTotal(l.Principal, l.InterestRate)

	totalPaid := Money(0)
	for _, p := range payments {
		totalPaid += p.Amount
	}
	l.Balance = l.TotalAmount - totalPaid

	if l.Balance <= 0 {
		l.Status = StatusPaid
	} else if truncateDay(asOf).After(truncateDay(l.DueDate)) {
		l.Status = StatusOverdue
	}

	l.MissedDays = ComputeMissedDays(l.StartDate, l.DueDate, payments, asOf)
}

// ComputeMissedDays counts the calendar days in [startDate, min(asOf, dueDate)]
// with no payment recorded on that exact date. Days with several payments
// count once. A missing start or due date, or a due date before the start
// date, yields zero rather than an error.
func ComputeMissedDays(startDate, dueDate time.Time, payments []Payment, asOf time.Time) int {
	if startDate.IsZero() || dueDate.IsZero() {
		return 0
	}

	end := truncateDay(dueDate)
	if today := truncateDay(asOf); today.Before(end) {
		end = today
	}

	start := truncateDay(startDate)
	if end.Before(start) {
		return 0
	}

	paidDays := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		paidDays[dayKey(p.Date)] = struct{}{}
	}

	missed := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if _, ok := paidDays[dayKey(d)]; !ok {
			missed++
		}
	}
	return missed
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func roundTo(n float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(n*pow) / pow
}
