package report

import "time"

// CashflowReport is a pure read-projection over payments and expenses in an
// inclusive date window. It is recomputed on every evaluation and never
// stored.
type CashflowReport struct {
	WeekStart    time.Time `json:"weekStart"`
	WeekEnd      time.Time `json:"weekEnd"`
	TotalIncome  float64   `json:"totalIncome"`
	TotalExpense float64   `json:"totalExpense"`
	Balance      float64   `json:"balance"`
}

// GlobalBalance aggregates every payment and expense ever recorded, with no
// date scoping.
type GlobalBalance struct {
	TotalIncome  float64   `json:"totalIncome"`
	TotalExpense float64   `json:"totalExpense"`
	Balance      float64   `json:"balance"`
	ComputedAt   time.Time `json:"computedAt"`
}
