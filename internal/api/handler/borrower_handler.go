package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"microloan-ledger/internal/api/handler/dto"
	"microloan-ledger/internal/domain/borrower"
	"microloan-ledger/internal/pkg/apperrors"
)

type BorrowerHandler struct {
	service borrower.BorrowerService
	logger  *slog.Logger
}

func NewBorrowerHandler(s borrower.BorrowerService, l *slog.Logger) *BorrowerHandler {
	return &BorrowerHandler{
		service: s,
		logger:  l.With("component", "BorrowerHandler"),
	}
}

// CreateBorrower registers a new borrower.
//
// @Summary Create a borrower
// @Tags Borrowers
// @Accept json
// @Produce json
// @Param request body dto.CreateBorrowerRequest true "Borrower payload"
// @Success 201 {object} dto.BorrowerResponse "Borrower successfully created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /borrowers [post]
func (h *BorrowerHandler) CreateBorrower(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBorrowerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.service.CreateBorrower(r.Context(), req.Name, req.Address)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewBorrowerResponse(created))
}

// GetBorrower retrieves a borrower by ID.
//
// @Summary Retrieve a borrower
// @Tags Borrowers
// @Produce json
// @Param borrowerID path int true "Borrower ID"
// @Success 200 {object} dto.BorrowerResponse "Borrower successfully retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid borrower ID"
// @Failure 404 {object} dto.ErrorResponse "Borrower not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /borrowers/{borrowerID} [get]
func (h *BorrowerHandler) GetBorrower(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := getIDFromURL(r, "borrowerID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	b, err := h.service.GetBorrower(r.Context(), borrowerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewBorrowerResponse(b))
}

// ListBorrowers lists the active borrowers.
//
// @Summary List active borrowers
// @Tags Borrowers
// @Produce json
// @Success 200 {array} dto.BorrowerResponse "Borrowers successfully retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /borrowers [get]
func (h *BorrowerHandler) ListBorrowers(w http.ResponseWriter, r *http.Request) {
	borrowers, err := h.service.ListActiveBorrowers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.BorrowerResponse, len(borrowers))
	for i, b := range borrowers {
		resp[i] = dto.NewBorrowerResponse(b)
	}
	respondJSON(w, http.StatusOK, resp)
}

// DeactivateBorrower marks a borrower inactive so new requests are refused.
//
// @Summary Deactivate a borrower
// @Tags Borrowers
// @Produce json
// @Param borrowerID path int true "Borrower ID"
// @Success 200 {object} map[string]string "Borrower successfully deactivated"
// @Failure 400 {object} dto.ErrorResponse "Invalid borrower ID"
// @Failure 404 {object} dto.ErrorResponse "Borrower not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /borrowers/{borrowerID}/deactivate [put]
func (h *BorrowerHandler) DeactivateBorrower(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := getIDFromURL(r, "borrowerID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.DeactivateBorrower(r.Context(), borrowerID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Borrower deactivated"})
}

// ReactivateBorrower reverses a deactivation.
//
// @Summary Reactivate a borrower
// @Tags Borrowers
// @Produce json
// @Param borrowerID path int true "Borrower ID"
// @Success 200 {object} map[string]string "Borrower successfully reactivated"
// @Failure 400 {object} dto.ErrorResponse "Invalid borrower ID"
// @Failure 404 {object} dto.ErrorResponse "Borrower not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /borrowers/{borrowerID}/reactivate [put]
func (h *BorrowerHandler) ReactivateBorrower(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := getIDFromURL(r, "borrowerID")
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.ReactivateBorrower(r.Context(), borrowerID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Borrower reactivated"})
}
