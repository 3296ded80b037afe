package expense

import (
	"time"

	"microloan-ledger/internal/pkg/apperrors"
)

type Category string

const (
	CategoryFood  Category = "FOOD"
	CategoryFuel  Category = "FUEL"
	CategoryOther Category = "OTHER"
)

// Expense is a dated cash outflow with no relation to any loan.
type Expense struct {
	ID          int64
	Description string
	Date        time.Time
	Amount      float64
	Category    Category
	CreatedAt   time.Time
}

func NewExpense(description string, date time.Time, amount float64, category Category) (*Expense, error) {
	if description == "" {
		return nil, apperrors.NewValidationError("description", "cannot be empty")
	}
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "must be greater than zero")
	}
	if date.IsZero() {
		date = time.Now()
	}

	switch category {
	case CategoryFood, CategoryFuel, CategoryOther:
	case "":
		category = CategoryOther
	default:
		return nil, apperrors.NewValidationError("category", "must be one of FOOD, FUEL, OTHER")
	}

	return &Expense{
		Description: description,
		Date:        date,
		Amount:      amount,
		Category:    category,
	}, nil
}
