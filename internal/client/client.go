// Package client is the request gateway for the bt-admin tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ntgen1/bt-admin/internal/session"
	"github.com/ntgen1/bt-admin/internal/telemetry/logger"
)

// Session is the slice of the session store the gateway needs: it
// reads the token and may trigger invalidation, nothing more.
type Session interface {
	Token() (string, bool)
	Invalidate(reason string) bool
}

// Client issues requests against the backend API.
type Client struct {
	baseURL string
	http    *http.Client
	session Session
	nav     Navigator
	log     logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithNavigator sets the redirect hook used on session expiry.
func WithNavigator(nav Navigator) Option {
	return func(c *Client) { c.nav = nav }
}

// WithLogger sets the request logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a gateway client for the given base URL. sess may be nil
// for a purely anonymous client.
func New(baseURL string, sess Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: sess,
		nav:     nopNavigator{},
		log:     logger.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request and decodes a successful JSON response into
// target. A nil target discards the body; a no-content response is a
// success with nothing decoded. All failures are *Error values.
func (c *Client) Do(ctx context.Context, req Request, target any) error {
	u := req.buildURL(c.baseURL)
	method := req.method()

	var bodyReader io.Reader
	if req.hasBody() {
		data, err := json.Marshal(req.Payload)
		if err != nil {
			return &Error{
				Kind:    KindTransport,
				Message: fmt.Sprintf("marshal payload: %v", err),
				Cause:   err,
			}
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return &Error{
			Kind:    KindTransport,
			Message: fmt.Sprintf("create request: %v", err),
			Cause:   err,
		}
	}

	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	c.attachToken(httpReq, req)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", req.Path, "error", err)
		return &Error{
			Kind:    KindTransport,
			Message: fmt.Sprintf("request %s %s: %v", method, req.Path, err),
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		"method", method,
		"path", req.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		return c.authExpired()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &Error{
			Kind:    KindRejected,
			Status:  resp.StatusCode,
			Message: messageFromBody(body, resp.StatusCode),
			Detail:  strings.TrimSpace(string(body)),
		}
	}

	return decodeBody(resp, target)
}

// attachToken adds the Authorization header, except on authentication
// endpoints where a stale token must never be sent.
func (c *Client) attachToken(httpReq *http.Request, req Request) {
	if c.session == nil || req.isAuthPath() {
		return
	}
	if token, ok := c.session.Token(); ok {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
}

// authExpired tears down the session and fails the call. The store
// guarantees a single invalidation signal even when several in-flight
// requests all come back 401.
func (c *Client) authExpired() *Error {
	if c.session != nil {
		if c.session.Invalidate(session.ReasonTokenExpired) {
			c.log.Info("session expired, cleared stored credentials")
		}
	}
	if !c.nav.AtLogin() {
		c.nav.RedirectToLogin()
	}
	return &Error{
		Kind:    KindAuthExpired,
		Status:  http.StatusUnauthorized,
		Message: "session expired, please login again",
	}
}

// decodeBody parses a successful response. An empty body (204, or an
// empty 200) is never fed to the JSON decoder.
func decodeBody(resp *http.Response, target any) error {
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Kind:    KindTransport,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("read response: %v", err),
			Cause:   err,
		}
	}

	if len(bytes.TrimSpace(body)) == 0 || target == nil {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &Error{
			Kind:    KindMalformed,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("decode response: %v", err),
			Detail:  strings.TrimSpace(string(body)),
			Cause:   err,
		}
	}

	return nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, params map[string]string, target any) error {
	return c.Do(ctx, Request{Path: path, Method: http.MethodGet, Params: params}, target)
}

// Post issues a POST request with a JSON payload.
func (c *Client) Post(ctx context.Context, path string, payload, target any) error {
	return c.Do(ctx, Request{Path: path, Method: http.MethodPost, Payload: payload}, target)
}

// Put issues a PUT request with a JSON payload.
func (c *Client) Put(ctx context.Context, path string, payload, target any) error {
	return c.Do(ctx, Request{Path: path, Method: http.MethodPut, Payload: payload}, target)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, Request{Path: path, Method: http.MethodDelete}, nil)
}
