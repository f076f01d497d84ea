// Package config loads, normalizes, and validates libris configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours LIBRIS_* environment overrides. Commands obtain
// settings through this package so the catalog, logger, and shell receive
// sanitized paths and clear validation errors.
package config
