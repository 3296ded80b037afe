package borrower

import "context"

type BorrowerRepository interface {
	Save(ctx context.Context, b *Borrower) error

	GetByID(ctx context.Context, borrowerID int64) (*Borrower, error)

	ListActive(ctx context.Context) ([]*Borrower, error)

	SetActive(ctx context.Context, borrowerID int64, active bool) error
}
