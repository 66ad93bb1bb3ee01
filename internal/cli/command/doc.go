// Package command provides CLI command definitions for bt-admin.
//
// Every command is a thin layer over internal/api: parse flags, call
// one or two typed operations through the request gateway, hand the
// result to internal/cli/output. Shared collaborators (config,
// session store, gateway) live in Env, built once in the app's Before
// hook and stashed in the app metadata.
package command
