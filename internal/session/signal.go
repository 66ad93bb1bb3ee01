// Package session manages the client-side authentication session.
package session

// Invalidation reasons carried by Signal.
const (
	// ReasonTokenExpired indicates the backend rejected the token (401).
	ReasonTokenExpired = "token_expired"

	// ReasonUserLogout indicates an explicit logout by the user.
	ReasonUserLogout = "user_logout"
)

// Signal notifies subscribers that the session has been invalidated.
type Signal struct {
	Reason string
}

// Listener receives invalidation signals. Listeners are called
// synchronously, outside the store's lock, in subscription order.
type Listener func(Signal)
