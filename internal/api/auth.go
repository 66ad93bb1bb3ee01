// Package api provides typed operations over the backend REST resources.
package api

import (
	"context"
	"fmt"
)

// tokenResponse is the credential-exchange response.
type tokenResponse struct {
	Access string `json:"access"`
}

// Login exchanges a username and password for a bearer token. The
// gateway never attaches a stale Authorization header on this path.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var resp tokenResponse
	if err := s.c.Post(ctx, "/token/", payload, &resp); err != nil {
		return "", err
	}
	if resp.Access == "" {
		return "", fmt.Errorf("login: no access token in response")
	}
	return resp.Access, nil
}

// LoginOAuth exchanges an OAuth credential (e.g. a Google ID token)
// for a bearer token via the provider-specific endpoint.
func (s *Service) LoginOAuth(ctx context.Context, provider, credential string) (string, error) {
	payload := map[string]string{"credential": credential}

	var resp tokenResponse
	if err := s.c.Post(ctx, "/auth/"+provider+"/", payload, &resp); err != nil {
		return "", err
	}
	if resp.Access == "" {
		return "", fmt.Errorf("%s login: no access token in response", provider)
	}
	return resp.Access, nil
}
