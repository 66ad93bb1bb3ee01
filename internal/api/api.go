// Package api provides typed operations over the backend REST resources.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ntgen1/bt-admin/internal/client"
)

// Service exposes the backend resources through the request gateway.
type Service struct {
	c *client.Client
}

// New creates a Service on top of the given gateway client.
func New(c *client.Client) *Service {
	return &Service{c: c}
}

// Client returns the underlying gateway client.
func (s *Service) Client() *client.Client {
	return s.c
}

// getList fetches a collection. The backend is inconsistent about
// list envelopes: some endpoints return a bare array, others wrap it
// as {"data": [...]}. Both shapes are accepted; anything else is a
// malformed response. Errors are never masked as empty lists.
func getList[T any](ctx context.Context, c *client.Client, path string, params map[string]string) ([]T, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, params, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw, path)
}

func decodeList[T any](raw json.RawMessage, path string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, malformedList(path, trimmed, err)
		}
		return items, nil
	}

	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, malformedList(path, trimmed, err)
	}
	return wrapped.Data, nil
}

func malformedList(path string, body []byte, err error) error {
	return &client.Error{
		Kind:    client.KindMalformed,
		Message: fmt.Sprintf("decode %s list: %v", path, err),
		Detail:  string(body),
		Cause:   err,
	}
}
