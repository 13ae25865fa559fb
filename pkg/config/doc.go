// Package config handles configuration management for linkfix.
// It layers the embedded TOML defaults, an optional user file (TOML or
// YAML), LINKFIX_ environment variables and command-line overrides, and
// decodes the result into a Config value that is passed explicitly to the
// components that need it.
package config
