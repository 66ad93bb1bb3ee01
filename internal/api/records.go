// Package api provides typed operations over the backend REST resources.
package api

import (
	"context"
	"fmt"
	"strconv"
)

// Transaction types used by the backend.
const (
	TransactionRent   = "rent"
	TransactionReturn = "return"
)

// Invoice status filter values.
const (
	InvStatusUnpaid = "unpaid"
	InvStatusPaid   = "paid"
)

// LineItem is one item line on a record. Money fields are decimal
// strings on the wire and stay strings here; arithmetic parses them
// explicitly instead of trusting float round-trips.
type LineItem struct {
	Item     int64  `json:"item"`
	ItemName string `json:"item_name,omitempty"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	GST      string `json:"gst"`
	Cess     string `json:"cess"`
}

// Amount returns quantity*price plus GST and cess for this line.
func (li LineItem) Amount() (float64, error) {
	price, err := strconv.ParseFloat(li.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("line item %d: bad price %q", li.Item, li.Price)
	}
	total := float64(li.Quantity) * price
	for _, extra := range []string{li.GST, li.Cess} {
		if extra == "" {
			continue
		}
		v, err := strconv.ParseFloat(extra, 64)
		if err != nil {
			return 0, fmt.Errorf("line item %d: bad tax amount %q", li.Item, extra)
		}
		total += v
	}
	return total, nil
}

// Record is a rental or return transaction.
type Record struct {
	ID               int64      `json:"id"`
	Buyer            int64      `json:"buyer"`
	BuyerName        string     `json:"buyer_name,omitempty"`
	BuyerAddress     *int64     `json:"buyer_address"`
	BuyerAddressName string     `json:"buyer_address_name,omitempty" table:"wide"`
	TransactionType  string     `json:"transaction_type"`
	LineItems        []LineItem `json:"line_items" table:"-"`
	CreatedForDate   string     `json:"created_for_date"`
	Days             int        `json:"days"`
	InvStatus        string     `json:"inv_status,omitempty"`
	Total            string     `json:"total,omitempty"`
}

// ComputedTotal sums the line-item amounts. Used when the backend
// omits the total field.
func (r Record) ComputedTotal() (float64, error) {
	var sum float64
	for _, li := range r.LineItems {
		amount, err := li.Amount()
		if err != nil {
			return 0, err
		}
		sum += amount
	}
	return sum, nil
}

// RecordInput carries the writable record fields.
type RecordInput struct {
	Buyer           int64      `json:"buyer"`
	BuyerAddress    *int64     `json:"buyer_address"`
	TransactionType string     `json:"transaction_type"`
	LineItems       []LineItem `json:"line_items"`
	CreatedForDate  string     `json:"created_for_date"`
	Days            int        `json:"days"`
}

// RecordFilter narrows ListRecords. Zero values mean "no filter".
type RecordFilter struct {
	BuyerID         int64
	InvStatus       string
	TransactionType string
}

func (f RecordFilter) params() map[string]string {
	params := map[string]string{}
	if f.BuyerID > 0 {
		params["buyer_id"] = strconv.FormatInt(f.BuyerID, 10)
	}
	if f.InvStatus != "" {
		params["inv_status"] = f.InvStatus
	}
	if f.TransactionType != "" {
		params["transaction_type"] = f.TransactionType
	}
	if len(params) == 0 {
		return nil
	}
	return params
}

// ListRecords returns transaction records matching the filter.
func (s *Service) ListRecords(ctx context.Context, filter RecordFilter) ([]Record, error) {
	return getList[Record](ctx, s.c, "/records/", filter.params())
}

// GetRecord returns one record by id.
func (s *Service) GetRecord(ctx context.Context, id int64) (*Record, error) {
	var r Record
	if err := s.c.Get(ctx, fmt.Sprintf("/records/%d/", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRecord creates a record and returns the stored row.
func (s *Service) CreateRecord(ctx context.Context, in RecordInput) (*Record, error) {
	var r Record
	if err := s.c.Post(ctx, "/records/", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRecord replaces a record's fields.
func (s *Service) UpdateRecord(ctx context.Context, id int64, in RecordInput) (*Record, error) {
	var r Record
	if err := s.c.Put(ctx, fmt.Sprintf("/records/%d/", id), in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRecord removes a record.
func (s *Service) DeleteRecord(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/records/%d/", id))
}
