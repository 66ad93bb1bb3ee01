// Package api provides typed operations over the backend REST resources.
package api

import (
	"context"
	"fmt"
	"strconv"
)

// Inventory is one stock row: how many of an item a buyer holds, or
// the business's own stock when buyer is zero.
type Inventory struct {
	ID       int64  `json:"id"`
	Buyer    int64  `json:"buyer,omitempty"`
	Item     int64  `json:"item"`
	ItemName string `json:"item_name,omitempty"`
	Quantity int    `json:"quantity"`
}

// ListInventories returns stock rows, optionally for one buyer.
func (s *Service) ListInventories(ctx context.Context, buyerID int64) ([]Inventory, error) {
	var params map[string]string
	if buyerID > 0 {
		params = map[string]string{"buyer_id": strconv.FormatInt(buyerID, 10)}
	}
	return getList[Inventory](ctx, s.c, "/inventories/", params)
}

// SetInventoryQuantity overwrites the quantity of one stock row.
func (s *Service) SetInventoryQuantity(ctx context.Context, id int64, quantity int) (*Inventory, error) {
	payload := map[string]int{"quantity": quantity}
	var inv Inventory
	if err := s.c.Put(ctx, fmt.Sprintf("/inventories/%d/", id), payload, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}
