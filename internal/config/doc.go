// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional YAML file, a .env file and
// SEOGEN_* environment variables). The resulting Config is read-only after
// startup and is passed explicitly to every component that needs it.
package config
