package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"microloan-ledger/internal/api/handler/dto"
	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/pkg/apperrors"
)

type LoanHandler struct {
	service loan.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(s loan.LoanService, l *slog.Logger) *LoanHandler {
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
	}
}

// parseAsOf reads the optional asOf query parameter, defaulting to today.
func parseAsOf(r *http.Request) (time.Time, error) {
	asOfStr := r.URL.Query().Get("asOf")
	if asOfStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(time.DateOnly, asOfStr)
}

// GetLoan retrieves the details of a specific loan.
//
// @Summary Retrieve loan details
// @Description This endpoint retrieves a loan by its ID. The registered payments can be included in the response by adding the query parameter `include=payments`.
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID"
// @Param include query string false "Optional parameter to include payments (use 'payments')"
// @Success 200 {object} dto.LoanResponse "Loan details successfully retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID} [get]
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := getIDFromURL(r, "loanID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	domainLoan, err := h.service.GetLoan(r.Context(), loanID)
	if err != nil {
		respondError(w, err)
		return
	}

	includePayments := r.URL.Query().Get("include") == "payments"
	if includePayments && domainLoan.Payments == nil {
		payments, err := h.service.GetPayments(r.Context(), loanID)
		if err != nil {
			respondError(w, err)
			return
		}
		domainLoan.Payments = payments
	}

	resp := dto.NewLoanResponse(domainLoan, includePayments)
	respondJSON(w, http.StatusOK, resp)
}

// RegisterPayment records a payment against a loan and recomputes its state.
//
// @Summary Register a loan payment
// @Description This endpoint records a payment for a loan by its ID. The amount must be specified in the payload; the payment date defaults to today when omitted.
// @Tags Loans
// @Accept json
// @Produce json
// @Param loanID path int true "Loan ID"
// @Param request body dto.RegisterPaymentRequest true "Payment request payload"
// @Success 201 {object} dto.PaymentResponse "Payment successfully registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID, request payload, or validation error"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID}/payments [post]
func (h *LoanHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	loanID, err := getIDFromURL(r, "loanID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	var req dto.RegisterPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	asOf, err := parseAsOf(r)
	if err != nil {
		respondError(w, fmt.Errorf("%w: invalid asOf date", apperrors.ErrInvalidArgument))
		return
	}

	payment, err := h.service.RegisterPayment(r.Context(), loanID, req.ParsedDate(), req.ParsedAmount(), asOf)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewPaymentResponse(payment))
}

// GetPayments lists the payments registered against a loan.
//
// @Summary List loan payments
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID"
// @Success 200 {array} dto.PaymentResponse "Payments successfully retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID}/payments [get]
func (h *LoanHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	loanID, err := getIDFromURL(r, "loanID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	payments, err := h.service.GetPayments(r.Context(), loanID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = dto.NewPaymentResponse(&p)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetMissedDays reports how many scheduled days have gone unpaid.
//
// @Summary Retrieve missed payment days
// @Description This endpoint counts the calendar days between the loan start and the asOf date (capped at the due date) that have no registered payment. The asOf query parameter defaults to today.
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID"
// @Param asOf query string false "Reference date (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} dto.MissedDaysResponse "Missed days successfully computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID or asOf date"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID}/missed-days [get]
func (h *LoanHandler) GetMissedDays(w http.ResponseWriter, r *http.Request) {
	loanID, err := getIDFromURL(r, "loanID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	asOf, err := parseAsOf(r)
	if err != nil {
		respondError(w, fmt.Errorf("%w: invalid asOf date", apperrors.ErrInvalidArgument))
		return
	}

	missedDays, err := h.service.GetMissedDays(r.Context(), loanID, asOf)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := dto.MissedDaysResponse{
		LoanID:     strconv.FormatInt(loanID, 10),
		AsOf:       asOf.Format(time.DateOnly),
		MissedDays: missedDays,
	}
	respondJSON(w, http.StatusOK, resp)
}
