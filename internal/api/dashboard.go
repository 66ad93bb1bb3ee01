// Package api provides typed operations over the backend REST resources.
package api

import "context"

// Counts are the top-line resource counts on the dashboard.
type Counts struct {
	Buyers  int `json:"buyers"`
	Items   int `json:"items"`
	Records int `json:"records"`
}

// SalesSummary aggregates sales and outstanding payments over a date
// range. Money arrives as decimal strings.
type SalesSummary struct {
	TotalSales     string `json:"total_sales"`
	PaymentPending string `json:"payment_pending"`
}

// BuyerPending is one row of the dashboard buyer list: a buyer and
// their outstanding amount.
type BuyerPending struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PendingAmount string `json:"pending_amount"`
}

// DashboardCounts returns the resource counts.
func (s *Service) DashboardCounts(ctx context.Context) (*Counts, error) {
	var c Counts
	if err := s.c.Get(ctx, "/dashboard-count/", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SalesPayment returns sales totals between two dates (YYYY-MM-DD).
func (s *Service) SalesPayment(ctx context.Context, startDate, endDate string) (*SalesSummary, error) {
	params := map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
	}
	var sum SalesSummary
	if err := s.c.Get(ctx, "/sales-payment/", params, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// DashboardBuyerList returns buyers with pending payment amounts.
func (s *Service) DashboardBuyerList(ctx context.Context) ([]BuyerPending, error) {
	return getList[BuyerPending](ctx, s.c, "/dashboard-buyer-list/", nil)
}
