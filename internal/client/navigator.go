// Package client is the request gateway for the bt-admin tool.
package client

// Navigator is the gateway's hook into the surrounding application's
// navigation. When a request fails with 401 the gateway redirects to
// the login flow, unless the user is already there.
type Navigator interface {
	// AtLogin reports whether the login flow is already active.
	AtLogin() bool

	// RedirectToLogin sends the user to the login flow.
	RedirectToLogin()
}

// nopNavigator is the default when no navigator is configured.
type nopNavigator struct{}

func (nopNavigator) AtLogin() bool    { return true }
func (nopNavigator) RedirectToLogin() {}
