// Package config loads, normalizes, and validates imdblist configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours the IMDBLIST_INPUT_DIR environment fallback.
// The Config type carries every knob the ingest pipeline, the exporter and
// the CLI need, so callers receive sanitized paths and clear validation
// errors from one place.
package config
