// Package repl provides the interactive mode for bt-admin.
//
//   - repl.go: read-eval-print loop dispatching lines to a runner
//   - history.go: persistent command history
//   - completer.go: prefix completion over the command tree
package repl
