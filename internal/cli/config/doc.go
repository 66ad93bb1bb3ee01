// Package config loads bt-admin's local configuration.
//
// Configuration is read once at startup with priority
// flag > environment > file > default:
//
//   - spec.go: configuration structure and defaults
//   - loader.go: koanf-based loading from YAML file and BT_* env vars
package config
