package dto

import (
	"fmt"
	"strconv"
	"time"

	"microloan-ledger/internal/domain/expense"
)

type CreateExpenseRequest struct {
	Description string  `json:"description"`
	Date        string  `json:"date,omitempty"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
}

func (r *CreateExpenseRequest) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if r.Date != "" {
		if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
			return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (r *CreateExpenseRequest) ParsedDate() time.Time {
	if r.Date == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.DateOnly, r.Date)
	return t
}

type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          strconv.FormatInt(e.ID, 10),
		Description: e.Description,
		Date:        e.Date.Format(time.DateOnly),
		Amount:      formatMoney(e.Amount),
		Category:    string(e.Category),
		CreatedAt:   e.CreatedAt,
	}
}
