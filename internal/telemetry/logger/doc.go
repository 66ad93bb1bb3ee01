// Package logger provides structured logging for bt-admin.
//
// It wraps log/slog to provide structured logging with automatic
// redaction of credentials, so a bearer token never reaches a log
// line even at debug level:
//
//   - logger.go: logger interface and slog-backed implementation
//   - redact.go: sensitive key/value redaction
package logger
