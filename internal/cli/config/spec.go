// Package config loads bt-admin's local configuration.
package config

import (
	"os"
	"path/filepath"
)

// DefaultServer is the production backend. Override with the
// `server` config key, the BT_SERVER env var, or --server.
const DefaultServer = "https://bt-backend.ntgen1.in"

// Config is the local configuration for bt-admin.
type Config struct {
	// Server is the backend base URL.
	Server string `koanf:"server" yaml:"server"`

	// Output is the default output format (table, json, yaml).
	Output string `koanf:"output" yaml:"output"`

	// SessionFile is where the bearer token is persisted between runs.
	SessionFile string `koanf:"session_file" yaml:"session_file"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level" yaml:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server:      DefaultServer,
		Output:      "table",
		SessionFile: filepath.Join(stateDir(), "session.json"),
		LogLevel:    "info",
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(stateDir(), "config.yaml")
}

func stateDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".bt-admin")
}
