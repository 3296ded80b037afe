package dto

import (
	"fmt"
	"strconv"
	"time"

	"microloan-ledger/internal/domain/borrower"
)

type CreateBorrowerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (r *CreateBorrowerRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

type BorrowerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Active     bool      `json:"active"`
	CreateDate time.Time `json:"createDate"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewBorrowerResponse(b *borrower.Borrower) BorrowerResponse {
	return BorrowerResponse{
		ID:         strconv.FormatInt(b.BorrowerID, 10),
		Name:       b.Name,
		Address:    b.Address,
		Active:     b.Active,
		CreateDate: b.CreateDate,
		UpdatedAt:  b.UpdatedAt,
	}
}
