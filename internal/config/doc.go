// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merging them
// through a builder with first-non-zero-wins precedence and validating the
// result before the server starts.
package config
