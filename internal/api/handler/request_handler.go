package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"microloan-ledger/internal/api/handler/dto"
	"microloan-ledger/internal/domain/request"
	"microloan-ledger/internal/pkg/apperrors"
)

type RequestHandler struct {
	service request.RequestService
	logger  *slog.Logger
}

func NewRequestHandler(s request.RequestService, l *slog.Logger) *RequestHandler {
	return &RequestHandler{
		service: s,
		logger:  l.With("component", "RequestHandler"),
	}
}

// CreateRequest handles the creation of a new loan request.
//
// @Summary Create a loan request
// @Description This endpoint files a new loan request in DRAFT status. The interest rate defaults to 10 percent when omitted.
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body dto.CreateLoanRequestRequest true "Loan request payload"
// @Success 201 {object} dto.LoanRequestResponse "Loan request successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 404 {object} dto.ErrorResponse "Borrower not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.service.CreateRequest(r.Context(), req.BorrowerID, req.Amount, req.TermDays, req.ParsedInterestRate())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewLoanRequestResponse(created))
}

// GetRequest retrieves a loan request by ID.
//
// @Summary Retrieve a loan request
// @Tags Requests
// @Produce json
// @Param requestID path int true "Request ID"
// @Success 200 {object} dto.LoanRequestResponse "Loan request successfully retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{requestID} [get]
func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := getIDFromURL(r, "requestID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	domainReq, err := h.service.GetRequest(r.Context(), requestID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewLoanRequestResponse(domainReq))
}

// ApproveRequest approves a DRAFT request and creates the resulting loan.
//
// @Summary Approve a loan request
// @Description This endpoint approves a DRAFT loan request and materializes the loan with its daily schedule. The loan start date defaults to today when omitted from the payload.
// @Tags Requests
// @Accept json
// @Produce json
// @Param requestID path int true "Request ID"
// @Param request body dto.ApproveRequestRequest false "Approval payload"
// @Success 201 {object} dto.LoanResponse "Loan successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID or payload"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request is not in DRAFT status"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{requestID}/approve [post]
func (h *RequestHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := getIDFromURL(r, "requestID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	var req dto.ApproveRequestRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
			return
		}
		if err := req.Validate(); err != nil {
			respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
			return
		}
	}

	startDate := req.ParsedStartDate()
	if startDate.IsZero() {
		now := time.Now()
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	createdLoan, err := h.service.ApproveRequest(r.Context(), requestID, startDate)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewLoanResponse(createdLoan, false))
}

// RejectRequest rejects a DRAFT loan request.
//
// @Summary Reject a loan request
// @Tags Requests
// @Produce json
// @Param requestID path int true "Request ID"
// @Success 200 {object} map[string]string "Request successfully rejected"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Request is not in DRAFT status"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{requestID}/reject [post]
func (h *RequestHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := getIDFromURL(r, "requestID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.RejectRequest(r.Context(), requestID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Request rejected"})
}
