// Package output provides output formatting for bt-admin.
//
//   - formatter.go: format selection (table, json, yaml)
//   - table.go: reflection-driven table rendering
//   - json.go, yaml.go: machine-readable output
//   - money.go: decimal-string amount formatting
//   - spinner.go: progress indicator for slow fetches
package output
