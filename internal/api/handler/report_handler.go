package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"microloan-ledger/internal/api/handler/dto"
	"microloan-ledger/internal/domain/report"
	"microloan-ledger/internal/pkg/apperrors"
)

type ReportHandler struct {
	service report.ReportService
	logger  *slog.Logger
}

func NewReportHandler(s report.ReportService, l *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: s,
		logger:  l.With("component", "ReportHandler"),
	}
}

// GetCashflow reports income versus expenses for a date window.
//
// @Summary Retrieve cashflow report
// @Description This endpoint sums registered payments and recorded expenses with dates inside the inclusive [start, end] window. When the parameters are omitted the current calendar week (Monday through Sunday) is used.
// @Tags Reports
// @Produce json
// @Param start query string false "Window start (YYYY-MM-DD)"
// @Param end query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashflowResponse "Cashflow successfully computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid date parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/cashflow [get]
func (h *ReportHandler) GetCashflow(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseCashflowWindow(r)
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	cashflow, err := h.service.Cashflow(r.Context(), start, end)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCashflowResponse(cashflow))
}

// GetGlobalBalance reports the all-time income minus expenses.
//
// @Summary Retrieve global balance
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.GlobalBalanceResponse "Balance successfully computed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/balance [get]
func (h *ReportHandler) GetGlobalBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.service.GlobalBalance(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewGlobalBalanceResponse(balance))
}

// parseCashflowWindow resolves the start/end query parameters, falling back
// to the current Monday-through-Sunday week when both are absent.
func parseCashflowWindow(r *http.Request) (time.Time, time.Time, error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" && endStr == "" {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	}

	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start and end must be provided together")
	}

	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %v", err)
	}
	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %v", err)
	}
	return start, end, nil
}
