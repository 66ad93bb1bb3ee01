// Package client is the request gateway for the bt-admin tool.
package client

import (
	"net/http"
	"net/url"
	"strings"
)

// Request describes one API call. A zero Method means GET. Path may be
// an absolute http(s) URL, which is used as-is, or a path joined to
// the client's base URL.
type Request struct {
	Path    string
	Method  string
	Payload any               // JSON-serialized for POST/PUT/PATCH
	Params  map[string]string // appended as a query string
}

// method returns the effective HTTP method.
func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// hasBody reports whether the payload should be sent. Only the
// body-bearing verbs carry one; a payload on GET or DELETE is ignored.
func (r Request) hasBody() bool {
	if r.Payload == nil {
		return false
	}
	switch r.method() {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// isAuthPath reports whether the request targets an authentication
// endpoint. Purely a substring check over the raw path; it keeps stale
// credentials out of (re)authentication calls and is not a security
// boundary.
func (r Request) isAuthPath() bool {
	return strings.Contains(r.Path, "/token/") || strings.Contains(r.Path, "/auth/")
}

// buildURL resolves the request target against the base URL and
// appends query parameters.
func (r Request) buildURL(baseURL string) string {
	u := r.Path
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		if !strings.HasPrefix(u, "/") {
			u = "/" + u
		}
		u = baseURL + u
	}

	if len(r.Params) > 0 {
		q := url.Values{}
		for k, v := range r.Params {
			q.Set(k, v)
		}
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + q.Encode()
	}

	return u
}
