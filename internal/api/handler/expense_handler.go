package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"microloan-ledger/internal/api/handler/dto"
	"microloan-ledger/internal/domain/expense"
	"microloan-ledger/internal/pkg/apperrors"
)

type ExpenseHandler struct {
	service expense.ExpenseService
	logger  *slog.Logger
}

func NewExpenseHandler(s expense.ExpenseService, l *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: s,
		logger:  l.With("component", "ExpenseHandler"),
	}
}

// CreateExpense records an operational expense.
//
// @Summary Record an expense
// @Description This endpoint records an expense against the ledger. The category defaults to OTHER and the date to today when omitted.
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} dto.ExpenseResponse "Expense successfully recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.service.CreateExpense(r.Context(), req.Description, req.ParsedDate(), req.Amount, expense.Category(req.Category))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewExpenseResponse(created))
}

// ListExpenses lists expenses, optionally constrained to a date range.
//
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse "Expenses successfully retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid date range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		t, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			respondError(w, fmt.Errorf("%w: invalid from date", apperrors.ErrInvalidArgument))
			return
		}
		from = &t
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		t, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			respondError(w, fmt.Errorf("%w: invalid to date", apperrors.ErrInvalidArgument))
			return
		}
		to = &t
	}

	expenses, err := h.service.ListExpenses(r.Context(), from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = dto.NewExpenseResponse(&e)
	}
	respondJSON(w, http.StatusOK, resp)
}
