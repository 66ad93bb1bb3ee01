// Package api provides typed operations over the business-tracking
// backend's REST resources.
//
// Each file covers one resource (buyers, items, addresses, records,
// inventory, payments, dashboard aggregates). All calls go through the
// request gateway in internal/client, which owns credentials and error
// normalization; this package only maps Go types onto wire shapes.
package api
