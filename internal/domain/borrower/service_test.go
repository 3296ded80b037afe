package borrower

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"microloan-ledger/internal/event"
	"microloan-ledger/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockBorrowerRepository struct {
	mock.Mock
}

func (m *mockBorrowerRepository) Save(ctx context.Context, b *Borrower) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBorrowerRepository) GetByID(ctx context.Context, borrowerID int64) (*Borrower, error) {
	args := m.Called(ctx, borrowerID)
	if b, ok := args.Get(0).(*Borrower); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBorrowerRepository) ListActive(ctx context.Context) ([]*Borrower, error) {
	args := m.Called(ctx)
	if bs, ok := args.Get(0).([]*Borrower); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBorrowerRepository) SetActive(ctx context.Context, borrowerID int64, active bool) error {
	args := m.Called(ctx, borrowerID, active)
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

func TestBorrowerServiceCreateBorrower(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and publishes", func(t *testing.T) {
		repo := new(mockBorrowerRepository)
		pub := new(mockPublisher)
		svc := NewBorrowerService(repo, pub, discardLogger())

		repo.On("Save", ctx, mock.MatchedBy(func(b *Borrower) bool {
			return b.Name == "Maria" && b.Active
		})).Return(nil)
		pub.On("PublishBorrowerCreated", ctx, mock.AnythingOfType("event.BorrowerCreatedEvent")).Return(nil)

		b, err := svc.CreateBorrower(ctx, "Maria", "Main St 1")

		assert.NoError(t, err)
		assert.True(t, b.Active)
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		repo := new(mockBorrowerRepository)
		svc := NewBorrowerService(repo, nil, discardLogger())

		_, err := svc.CreateBorrower(ctx, "   ", "Main St 1")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("surfaces repository failures", func(t *testing.T) {
		repo := new(mockBorrowerRepository)
		svc := NewBorrowerService(repo, nil, discardLogger())

		repo.On("Save", ctx, mock.Anything).Return(errors.New("unique violation"))

		_, err := svc.CreateBorrower(ctx, "Maria", "Main St 1")

		assert.Error(t, err)
	})
}

func TestBorrowerServiceGetBorrower(t *testing.T) {
	ctx := context.Background()

	repo := new(mockBorrowerRepository)
	svc := NewBorrowerService(repo, nil, discardLogger())

	repo.On("GetByID", ctx, int64(7)).Return((*Borrower)(nil), apperrors.ErrNotFound)

	_, err := svc.GetBorrower(ctx, 7)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBorrowerServiceDeactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates and publishes the update", func(t *testing.T) {
		repo := new(mockBorrowerRepository)
		pub := new(mockPublisher)
		svc := NewBorrowerService(repo, pub, discardLogger())

		repo.On("GetByID", ctx, int64(7)).Return(&Borrower{BorrowerID: 7, Name: "Maria", Active: true}, nil)
		repo.On("SetActive", ctx, int64(7), false).Return(nil)
		pub.On("PublishBorrowerUpdated", ctx, mock.MatchedBy(func(e event.BorrowerUpdatedEvent) bool {
			return !e.Payload.Active
		})).Return(nil)

		err := svc.DeactivateBorrower(ctx, 7)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("unknown borrower cannot be deactivated", func(t *testing.T) {
		repo := new(mockBorrowerRepository)
		svc := NewBorrowerService(repo, nil, discardLogger())

		repo.On("GetByID", ctx, int64(8)).Return((*Borrower)(nil), apperrors.ErrNotFound)

		err := svc.DeactivateBorrower(ctx, 8)

		assert.ErrorIs(t, err, ErrNotFound)
		repo.AssertNotCalled(t, "SetActive")
	})
}
