package request

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"microloan-ledger/internal/domain/borrower"
	"microloan-ledger/internal/domain/loan"
	"microloan-ledger/internal/event"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateRequest(ctx context.Context, req *LoanRequest) (*LoanRequest, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*LoanRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetRequestByID(ctx context.Context, requestID int64) (*LoanRequest, error) {
	args := m.Called(ctx, requestID)
	if r, ok := args.Get(0).(*LoanRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListRequestsByBorrower(ctx context.Context, borrowerID int64) ([]LoanRequest, error) {
	args := m.Called(ctx, borrowerID)
	if rs, ok := args.Get(0).([]LoanRequest); ok {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) UpdateRequestStatus(ctx context.Context, requestID int64, status RequestStatus) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}

func (m *mockRepository) ApproveRequest(ctx context.Context, requestID int64, newLoan *loan.Loan) (*loan.Loan, error) {
	args := m.Called(ctx, requestID, newLoan)
	if l, ok := args.Get(0).(*loan.Loan); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBorrowerService struct {
	mock.Mock
}

func (m *mockBorrowerService) CreateBorrower(ctx context.Context, name, address string) (*borrower.Borrower, error) {
	args := m.Called(ctx, name, address)
	if b, ok := args.Get(0).(*borrower.Borrower); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBorrowerService) GetBorrower(ctx context.Context, borrowerID int64) (*borrower.Borrower, error) {
	args := m.Called(ctx, borrowerID)
	if b, ok := args.Get(0).(*borrower.Borrower); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBorrowerService) ListActiveBorrowers(ctx context.Context) ([]*borrower.Borrower, error) {
	args := m.Called(ctx)
	if bs, ok := args.Get(0).([]*borrower.Borrower); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBorrowerService) DeactivateBorrower(ctx context.Context, borrowerID int64) error {
	args := m.Called(ctx, borrowerID)
	return args.Error(0)
}

func (m *mockBorrowerService) ReactivateBorrower(ctx context.Context, borrowerID int64) error {
	args := m.Called(ctx, borrowerID)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishLoanApproved(ctx context.Context, e event.LoanApprovedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockPublisher) PublishLoanStatusChanged(ctx context.Context, e event.LoanStatusChangedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockPublisher) PublishBorrowerCreated(ctx context.Context, e event.BorrowerCreatedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockPublisher) PublishBorrowerUpdated(ctx context.Context, e event.BorrowerUpdatedEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeBorrower(id int64) *borrower.Borrower {
	return &borrower.Borrower{BorrowerID: id, Name: "Maria", Address: "Main St 1", Active: true}
}

func TestRequestServiceCreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a draft request for an active borrower", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		bs.On("GetBorrower", ctx, int64(42)).Return(activeBorrower(42), nil)
		repo.On("CreateRequest", ctx, mock.MatchedBy(func(r *LoanRequest) bool {
			return r.BorrowerID == 42 && r.Amount == 1000 && r.TermDays == 30 && r.Status == StatusDraft
		})).Return(&LoanRequest{ID: 1, BorrowerID: 42, Amount: 1000, TermDays: 30, InterestRate: 10, Status: StatusDraft}, nil)

		created, err := svc.CreateRequest(ctx, 42, 1000, 30, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		repo.AssertExpectations(t)
		bs.AssertExpectations(t)
	})

	t.Run("rejects a zero term before hitting the store", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		_, err := svc.CreateRequest(ctx, 42, 1000, 0, 10)

		assert.ErrorIs(t, err, apperrors.ErrInvalidTerm)
		repo.AssertNotCalled(t, "CreateRequest")
	})

	t.Run("rejects an unknown borrower", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		bs.On("GetBorrower", ctx, int64(99)).Return((*borrower.Borrower)(nil), borrower.ErrNotFound)

		_, err := svc.CreateRequest(ctx, 99, 1000, 30, 10)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		repo.AssertNotCalled(t, "CreateRequest")
	})

	t.Run("rejects an inactive borrower", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		inactive := activeBorrower(42)
		inactive.Active = false
		bs.On("GetBorrower", ctx, int64(42)).Return(inactive, nil)

		_, err := svc.CreateRequest(ctx, 42, 1000, 30, 10)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		repo.AssertNotCalled(t, "CreateRequest")
	})
}

func TestRequestServiceApproveRequest(t *testing.T) {
	ctx := context.Background()
	asOf := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	draft := func() *LoanRequest {
		return &LoanRequest{ID: 1, BorrowerID: 42, Amount: 1000, TermDays: 30, InterestRate: 10, Status: StatusDraft}
	}

	t.Run("approves a draft and returns the materialized loan", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		pub := new(mockPublisher)
		svc := NewRequestService(repo, bs, pub, discardLogger())

		repo.On("GetRequestByID", ctx, int64(1)).Return(draft(), nil)
		bs.On("GetBorrower", ctx, int64(42)).Return(activeBorrower(42), nil)
		repo.On("ApproveRequest", ctx, int64(1), mock.MatchedBy(func(l *loan.Loan) bool {
			return l.BorrowerID == 42 && l.TotalAmount == 1100 && l.DailyPayment == 36.67 && l.StartDate.Equal(asOf)
		})).Return(&loan.Loan{ID: 10, BorrowerID: 42, RequestID: 1, TotalAmount: 1100, Status: loan.StatusActive, StartDate: asOf}, nil)
		pub.On("PublishLoanApproved", ctx, mock.AnythingOfType("event.LoanApprovedEvent")).Return(nil)

		created, err := svc.ApproveRequest(ctx, 1, asOf)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("refuses to approve a non-draft request", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		approved := draft()
		approved.Status = StatusApproved
		repo.On("GetRequestByID", ctx, int64(1)).Return(approved, nil)

		_, err := svc.ApproveRequest(ctx, 1, asOf)

		assert.ErrorIs(t, err, apperrors.ErrRequestNotDraft)
		repo.AssertNotCalled(t, "ApproveRequest")
	})

	t.Run("refuses to approve for an inactive borrower", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		inactive := activeBorrower(42)
		inactive.Active = false
		repo.On("GetRequestByID", ctx, int64(1)).Return(draft(), nil)
		bs.On("GetBorrower", ctx, int64(42)).Return(inactive, nil)

		_, err := svc.ApproveRequest(ctx, 1, asOf)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		repo.AssertNotCalled(t, "ApproveRequest")
	})

	t.Run("surfaces a lost approval race as internal error", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		repo.On("GetRequestByID", ctx, int64(1)).Return(draft(), nil)
		bs.On("GetBorrower", ctx, int64(42)).Return(activeBorrower(42), nil)
		repo.On("ApproveRequest", ctx, int64(1), mock.Anything).Return((*loan.Loan)(nil), errors.New("approval raced"))

		_, err := svc.ApproveRequest(ctx, 1, asOf)

		assert.ErrorIs(t, err, apperrors.ErrInternalServer)
	})
}

func TestRequestServiceRejectRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a draft", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		repo.On("GetRequestByID", ctx, int64(1)).
			Return(&LoanRequest{ID: 1, BorrowerID: 42, Status: StatusDraft}, nil)
		repo.On("UpdateRequestStatus", ctx, int64(1), StatusRejected).Return(nil)

		err := svc.RejectRequest(ctx, 1)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("refuses to reject a rejected request twice", func(t *testing.T) {
		repo := new(mockRepository)
		bs := new(mockBorrowerService)
		svc := NewRequestService(repo, bs, nil, discardLogger())

		repo.On("GetRequestByID", ctx, int64(1)).
			Return(&LoanRequest{ID: 1, BorrowerID: 42, Status: StatusRejected}, nil)

		err := svc.RejectRequest(ctx, 1)

		assert.ErrorIs(t, err, apperrors.ErrRequestNotDraft)
		repo.AssertNotCalled(t, "UpdateRequestStatus")
	})
}

func TestNewLoanRequestDefaults(t *testing.T) {
	req, err := NewLoanRequest(42, 1000, 30, DefaultInterestRate)
	assert.NoError(t, err)
	assert.Equal(t, StatusDraft, req.Status)
	assert.Equal(t, 10.0, req.InterestRate)
	assert.True(t, req.IsDraft())
}
