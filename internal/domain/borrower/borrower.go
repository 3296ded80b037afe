package borrower

import "time"

type Borrower struct {
	BorrowerID int64     `json:"borrowerId"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Active     bool      `json:"active"`
	CreateDate time.Time `json:"createDate"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewBorrower(name, address string) *Borrower {
	now := time.Now()
	return &Borrower{
		Name:       name,
		Address:    address,
		Active:     true,
		CreateDate: now,
		UpdatedAt:  now,
	}
}

func (b *Borrower) Deactivate() {
	if b.Active {
		b.Active = false
		b.UpdatedAt = time.Now()
	}
}

func (b *Borrower) Reactivate() {
	if !b.Active {
		b.Active = true
		b.UpdatedAt = time.Now()
	}
}
