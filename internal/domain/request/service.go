package request

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"microloan-ledger/internal/domain/borrower"
	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/event"
	"microloan-ledger/internal/infrastructure/monitoring"
	"microloan-ledger/internal/pkg/apperrors"
)

type RequestService interface {
	CreateRequest(ctx context.Context, borrowerID int64, amount loan.Money, termDays int, interestRate loan.Money) (*LoanRequest, error)

	GetRequest(ctx context.Context, requestID int64) (*LoanRequest, error)

	ListRequestsByBorrower(ctx context.Context, borrowerID int64) ([]LoanRequest, error)

	// ApproveRequest materializes a loan from a DRAFT request as of the
	// given date and marks the request APPROVED.
	ApproveRequest(ctx context.Context, requestID int64, asOf time.Time) (*loan.Loan, error)

	RejectRequest(ctx context.Context, requestID int64) error
}

type requestServiceImpl struct {
	repo            Repository
	borrowerService borrower.BorrowerService
	publisher       event.EventPublisher
	logger          *slog.Logger
}

func NewRequestService(r Repository, bs borrower.BorrowerService, publisher event.EventPublisher, logger *slog.Logger) RequestService {
	return &requestServiceImpl{
		repo:            r,
		borrowerService: bs,
		publisher:       publisher,
		logger:          logger.With("component", "RequestService"),
	}
}

func (s *requestServiceImpl) CreateRequest(ctx context.Context, borrowerID int64, amount loan.Money, termDays int, interestRate loan.Money) (*LoanRequest, error) {
	s.logger.Info("Creating loan request", "borrowerID", borrowerID, "amount", amount, "termDays", termDays)

	req, err := NewLoanRequest(borrowerID, amount, termDays, interestRate)
	if err != nil {
		s.logger.Warn("Loan request validation failed", "error", err)
		return nil, err
	}

	cust, err := s.borrowerService.GetBorrower(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, borrower.ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: borrower %d not found", apperrors.ErrValidation, borrowerID)
		}
		return nil, fmt.Errorf("failed to verify borrower: %w", err)
	}
	if !cust.Active {
		s.logger.Warn("Attempted to create request for inactive borrower", "borrowerID", borrowerID)
		return nil, fmt.Errorf("%w: borrower %d is not active", apperrors.ErrValidation, borrowerID)
	}

	created, err := s.repo.CreateRequest(ctx, req)
	if err != nil {
		s.logger.Error("Failed to save loan request", "error", err)
		return nil, fmt.Errorf("%w: failed to save loan request: %v", apperrors.ErrInternalServer, err)
	}

	s.logger.Info("Loan request created", "requestID", created.ID, "borrowerID", borrowerID)
	return created, nil
}

func (s *requestServiceImpl) GetRequest(ctx context.Context, requestID int64) (*LoanRequest, error) {
	req, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Loan request not found", "requestID", requestID)
			return nil, fmt.Errorf("%w: loan request with ID %d not found", apperrors.ErrNotFound, requestID)
		}
		s.logger.Error("Failed to get loan request", "requestID", requestID, "error", err)
		return nil, fmt.Errorf("%w: failed to get loan request %d: %v", apperrors.ErrInternalServer, requestID, err)
	}
	return req, nil
}

func (s *requestServiceImpl) ListRequestsByBorrower(ctx context.Context, borrowerID int64) ([]LoanRequest, error) {
	requests, err := s.repo.ListRequestsByBorrower(ctx, borrowerID)
	if err != nil {
		s.logger.Error("Failed to list loan requests", "borrowerID", borrowerID, "error", err)
		return nil, fmt.Errorf("%w: failed to list requests for borrower %d: %v", apperrors.ErrInternalServer, borrowerID, err)
	}
	return requests, nil
}

func (s *requestServiceImpl) ApproveRequest(ctx context.Context, requestID int64, asOf time.Time) (*loan.Loan, error) {
	s.logger.Info("Approving loan request", "requestID", requestID)

	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !req.IsDraft() {
		s.logger.Warn("Request is not approvable", "requestID", requestID, "status", req.Status)
		return nil, fmt.Errorf("%w: request %d is %s", apperrors.ErrRequestNotDraft, requestID, req.Status)
	}

	cust, err := s.borrowerService.GetBorrower(ctx, req.BorrowerID)
	if err != nil {
		if errors.Is(err, borrower.ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: borrower %d not found", apperrors.ErrValidation, req.BorrowerID)
		}
		return nil, fmt.Errorf("failed to verify borrower status: %w", err)
	}
	if !cust.Active {
		return nil, fmt.Errorf("%w: borrower %d is not active", apperrors.ErrValidation, req.BorrowerID)
	}

	newLoan, err := loan.NewLoan(req.BorrowerID, req.ID, req.Amount, req.InterestRate, req.TermDays, asOf)
	if err != nil {
		s.logger.Error("Failed to build loan from request", "requestID", requestID, "error", err)
		return nil, err
	}

	createdLoan, err := s.repo.ApproveRequest(ctx, requestID, newLoan)
	if err != nil {
		s.logger.Error("Failed to persist approval", "requestID", requestID, "error", err)
		return nil, fmt.Errorf("%w: failed to persist approval: %v", apperrors.ErrInternalServer, err)
	}

	monitoring.RecordRequestApproved()
	s.logger.Info("Loan request approved", "requestID", requestID, "loanID", createdLoan.ID)

	if s.publisher != nil {
		evt := event.LoanApprovedEvent{
			LoanID:       createdLoan.ID,
			RequestID:    requestID,
			BorrowerID:   createdLoan.BorrowerID,
			Principal:    createdLoan.Principal,
			TotalAmount:  createdLoan.TotalAmount,
			DailyPayment: createdLoan.DailyPayment,
			StartDate:    createdLoan.StartDate,
			DueDate:      createdLoan.DueDate,
			Timestamp:    time.Now(),
		}
		if pubErr := s.publisher.PublishLoanApproved(ctx, evt); pubErr != nil {
			s.logger.Error("Failed to publish loan approved event", "loanID", createdLoan.ID, "error", pubErr)
		}
	}

	return createdLoan, nil
}

func (s *requestServiceImpl) RejectRequest(ctx context.Context, requestID int64) error {
	s.logger.Info("Rejecting loan request", "requestID", requestID)

	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !req.IsDraft() {
		return fmt.Errorf("%w: request %d is %s", apperrors.ErrRequestNotDraft, requestID, req.Status)
	}

	if err := s.repo.UpdateRequestStatus(ctx, requestID, StatusRejected); err != nil {
		s.logger.Error("Failed to reject loan request", "requestID", requestID, "error", err)
		return fmt.Errorf("%w: failed to reject request %d: %v", apperrors.ErrInternalServer, requestID, err)
	}
	s.logger.Info("Loan request rejected", "requestID", requestID)
	return nil
}
