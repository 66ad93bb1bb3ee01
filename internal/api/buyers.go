// Package api provides typed operations over the backend REST resources.
package api

import (
	"context"
	"fmt"
)

// Buyer is a lessee/buyer account.
type Buyer struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	PhoneNo             string `json:"phone_no"`
	ContactPersonName   string `json:"contact_person_name" table:"wide"`
	ContactPersonNumber string `json:"contact_person_number" table:"wide"`
}

// BuyerInput carries the writable buyer fields.
type BuyerInput struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	PhoneNo             string `json:"phone_no"`
	ContactPersonName   string `json:"contact_person_name"`
	ContactPersonNumber string `json:"contact_person_number"`
}

// ListBuyers returns all buyers.
func (s *Service) ListBuyers(ctx context.Context) ([]Buyer, error) {
	return getList[Buyer](ctx, s.c, "/buyers/", nil)
}

// GetBuyer returns one buyer by id.
func (s *Service) GetBuyer(ctx context.Context, id int64) (*Buyer, error) {
	var b Buyer
	if err := s.c.Get(ctx, fmt.Sprintf("/buyers/%d/", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBuyer creates a buyer and returns the stored row.
func (s *Service) CreateBuyer(ctx context.Context, in BuyerInput) (*Buyer, error) {
	var b Buyer
	if err := s.c.Post(ctx, "/buyers/", in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBuyer replaces a buyer's fields.
func (s *Service) UpdateBuyer(ctx context.Context, id int64, in BuyerInput) (*Buyer, error) {
	var b Buyer
	if err := s.c.Put(ctx, fmt.Sprintf("/buyers/%d/", id), in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBuyer removes a buyer.
func (s *Service) DeleteBuyer(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/buyers/%d/", id))
}
