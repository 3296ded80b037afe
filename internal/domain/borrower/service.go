package borrower

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"microloan-ledger/internal/event"
	"microloan-ledger/internal/pkg/apperrors"
)

var ErrNotFound = errors.New("borrower not found")

type BorrowerService interface {
	CreateBorrower(ctx context.Context, name, address string) (*Borrower, error)
	GetBorrower(ctx context.Context, borrowerID int64) (*Borrower, error)
	ListActiveBorrowers(ctx context.Context) ([]*Borrower, error)
	DeactivateBorrower(ctx context.Context, borrowerID int64) error
	ReactivateBorrower(ctx context.Context, borrowerID int64) error
}

var _ BorrowerService = (*borrowerService)(nil)

type borrowerService struct {
	repo   BorrowerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewBorrowerService(repo BorrowerRepository, publisher event.EventPublisher, logger *slog.Logger) BorrowerService {
	if repo == nil {
		panic("borrower repository cannot be nil")
	}
	return &borrowerService{
		repo:   repo,
		pub:    publisher,
		logger: logger.With(slog.String("component", "borrowerService")),
	}
}

func newBorrowerEventPayload(b *Borrower) event.BorrowerEventPayload {
	if b == nil {
		return event.BorrowerEventPayload{}
	}
	return event.BorrowerEventPayload{
		BorrowerID: b.BorrowerID,
		Name:       b.Name,
		Address:    b.Address,
		Active:     b.Active,
		CreateDate: b.CreateDate,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (s *borrowerService) CreateBorrower(ctx context.Context, name, address string) (*Borrower, error) {
	s.logger.InfoContext(ctx, "Attempting to create new borrower")

	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" {
		s.logger.WarnContext(ctx, "Validation failed: name is empty")
		return nil, apperrors.NewValidationError("name", "cannot be empty")
	}
	if address == "" {
		s.logger.WarnContext(ctx, "Validation failed: address is empty", slog.String("name", name))
		return nil, apperrors.NewValidationError("address", "cannot be empty")
	}

	b := NewBorrower(name, address)
	if err := s.repo.Save(ctx, b); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save borrower", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save borrower: %w", err)
	}
	s.logger.InfoContext(ctx, "Borrower created", slog.Int64("borrowerID", b.BorrowerID))

	if s.pub != nil {
		evt := event.BorrowerCreatedEvent{Timestamp: time.Now(), Payload: newBorrowerEventPayload(b)}
		if err := s.pub.PublishBorrowerCreated(ctx, evt); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish borrower created event", slog.Any("error", err))
		}
	}

	return b, nil
}

func (s *borrowerService) GetBorrower(ctx context.Context, borrowerID int64) (*Borrower, error) {
	b, err := s.repo.GetByID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Borrower not found", slog.Int64("borrowerID", borrowerID))
			return nil, fmt.Errorf("%w: borrower %d", ErrNotFound, borrowerID)
		}
		s.logger.ErrorContext(ctx, "Failed to get borrower", slog.Int64("borrowerID", borrowerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to get borrower %d: %w", borrowerID, err)
	}
	return b, nil
}

func (s *borrowerService) ListActiveBorrowers(ctx context.Context) ([]*Borrower, error) {
	borrowers, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list active borrowers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list active borrowers: %w", err)
	}
	return borrowers, nil
}

func (s *borrowerService) DeactivateBorrower(ctx context.Context, borrowerID int64) error {
	return s.setActive(ctx, borrowerID, false)
}

func (s *borrowerService) ReactivateBorrower(ctx context.Context, borrowerID int64) error {
	return s.setActive(ctx, borrowerID, true)
}

func (s *borrowerService) setActive(ctx context.Context, borrowerID int64, active bool) error {
	b, err := s.GetBorrower(ctx, borrowerID)
	if err != nil {
		return err
	}

	if active {
		b.Reactivate()
	} else {
		b.Deactivate()
	}

	if err := s.repo.SetActive(ctx, borrowerID, active); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update borrower active flag",
			slog.Int64("borrowerID", borrowerID), slog.Bool("active", active), slog.Any("error", err))
		return fmt.Errorf("failed to update borrower %d: %w", borrowerID, err)
	}
	s.logger.InfoContext(ctx, "Borrower active flag updated", slog.Int64("borrowerID", borrowerID), slog.Bool("active", active))

	if s.pub != nil {
		evt := event.BorrowerUpdatedEvent{Timestamp: time.Now(), Payload: newBorrowerEventPayload(b)}
		if err := s.pub.PublishBorrowerUpdated(ctx, evt); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish borrower updated event", slog.Any("error", err))
		}
	}
	return nil
}
