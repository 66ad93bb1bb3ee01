// Package api provides typed operations over the backend REST resources.
package api

import (
	"context"
	"fmt"
)

// Item is a rentable inventory item definition.
type Item struct {
	ID       int64  `json:"id"`
	ItemName string `json:"item_name"`
	ItemCode string `json:"item_code"`
}

// ItemInput carries the writable item fields.
type ItemInput struct {
	ItemName string `json:"item_name"`
	ItemCode string `json:"item_code"`
}

// ListItems returns all items.
func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	return getList[Item](ctx, s.c, "/items/", nil)
}

// GetItem returns one item by id.
func (s *Service) GetItem(ctx context.Context, id int64) (*Item, error) {
	var it Item
	if err := s.c.Get(ctx, fmt.Sprintf("/items/%d/", id), nil, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// CreateItem creates an item and returns the stored row.
func (s *Service) CreateItem(ctx context.Context, in ItemInput) (*Item, error) {
	var it Item
	if err := s.c.Post(ctx, "/items/", in, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateItem replaces an item's fields.
func (s *Service) UpdateItem(ctx context.Context, id int64, in ItemInput) (*Item, error) {
	var it Item
	if err := s.c.Put(ctx, fmt.Sprintf("/items/%d/", id), in, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// DeleteItem removes an item.
func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/items/%d/", id))
}
