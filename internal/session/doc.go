// Package session manages the client-side authentication session.
//
// The session is the bearer token obtained from the backend, plus an
// optional cached user profile. It is persisted to a state file so a
// session survives process restarts, and it notifies subscribers when
// it is invalidated:
//
//   - store.go: Store with durable persistence and concurrent access
//   - signal.go: invalidation signal and subscription
package session
