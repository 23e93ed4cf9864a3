// Package config loads and validates arbor.toml for the CLI. The file
// is optional; every field has a working default.
package config
