package dto

import (
	"time"

	"microloan-ledger/internal/domain/report"
)

type CashflowResponse struct {
	WeekStart    string `json:"weekStart"`
	WeekEnd      string `json:"weekEnd"`
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpense"`
	Balance      string `json:"balance"`
}

type GlobalBalanceResponse struct {
	TotalIncome  string    `json:"totalIncome"`
	TotalExpense string    `json:"totalExpense"`
	Balance      string    `json:"balance"`
	ComputedAt   time.Time `json:"computedAt"`
}

func NewCashflowResponse(r *report.CashflowReport) CashflowResponse {
	return CashflowResponse{
		WeekStart:    r.WeekStart.Format(time.DateOnly),
		WeekEnd:      r.WeekEnd.Format(time.DateOnly),
		TotalIncome:  formatMoney(r.TotalIncome),
		TotalExpense: formatMoney(r.TotalExpense),
		Balance:      formatMoney(r.Balance),
	}
}

func NewGlobalBalanceResponse(r *report.GlobalBalance) GlobalBalanceResponse {
	return GlobalBalanceResponse{
		TotalIncome:  formatMoney(r.TotalIncome),
		TotalExpense: formatMoney(r.TotalExpense),
		Balance:      formatMoney(r.Balance),
		ComputedAt:   r.ComputedAt,
	}
}
