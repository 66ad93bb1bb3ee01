// Package api provides typed operations over the backend REST resources.
package api

import (
	"context"
	"fmt"
	"strconv"
)

// Address is a delivery location belonging to a buyer.
type Address struct {
	ID           int64  `json:"id"`
	Buyer        int64  `json:"buyer"`
	LocationName string `json:"location_name"`
	LocationCode string `json:"location_code"`
	Address      string `json:"address" table:"wide"`
	City         string `json:"city"`
	State        string `json:"state" table:"wide"`
	Pincode      string `json:"pincode" table:"wide"`
}

// AddressInput carries the writable address fields.
type AddressInput struct {
	Buyer        int64  `json:"buyer,omitempty"`
	LocationName string `json:"location_name"`
	LocationCode string `json:"location_code"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// ListAddresses returns addresses, optionally restricted to one buyer.
func (s *Service) ListAddresses(ctx context.Context, buyerID int64) ([]Address, error) {
	var params map[string]string
	if buyerID > 0 {
		params = map[string]string{"buyer_id": strconv.FormatInt(buyerID, 10)}
	}
	return getList[Address](ctx, s.c, "/addresses/", params)
}

// CreateAddress creates an address for a buyer.
func (s *Service) CreateAddress(ctx context.Context, in AddressInput) (*Address, error) {
	var a Address
	if err := s.c.Post(ctx, "/addresses/", in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAddress replaces an address's fields.
func (s *Service) UpdateAddress(ctx context.Context, id int64, in AddressInput) (*Address, error) {
	var a Address
	if err := s.c.Put(ctx, fmt.Sprintf("/addresses/%d/", id), in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAddress removes an address.
func (s *Service) DeleteAddress(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/addresses/%d/", id))
}
