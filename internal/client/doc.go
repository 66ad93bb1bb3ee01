// Package client is the request gateway for the bt-admin tool.
//
// Every outbound call to the backend goes through Client.Do, so URL
// construction, bearer-token attachment, JSON serialization and error
// normalization are implemented exactly once:
//
//   - request.go: request descriptor and URL building
//   - client.go: the gateway itself
//   - errors.go: normalized error values and message extraction
//   - navigator.go: redirect hook for expired sessions
//
// The gateway performs no retries and imposes no timeout of its own;
// cancellation is caller-driven through context.Context.
package client
