// Package api provides typed operations over the backend REST resources.
package api

import (
	"context"
	"fmt"
)

// Receipt is one payment applied to a record.
type Receipt struct {
	ID       int64  `json:"id"`
	RecordID int64  `json:"record_id"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
}

// UpdatePayment applies a payment amount to an unpaid record.
func (s *Service) UpdatePayment(ctx context.Context, recordID int64, amount string) error {
	payload := map[string]string{"amount": amount}
	return s.c.Post(ctx, fmt.Sprintf("/update-payment/%d/", recordID), payload, nil)
}

// ListReceipts returns the payment history.
func (s *Service) ListReceipts(ctx context.Context) ([]Receipt, error) {
	return getList[Receipt](ctx, s.c, "/payment-receipts/", nil)
}
