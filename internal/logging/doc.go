// Package logging assembles the structured slog loggers used across
// imdblist.
//
// It owns the console and JSON handlers, level and output plumbing, and a
// few helpers (component loggers, a no-op logger for tests, and a progress
// sampler) so every pass logs with the same shape. Prefer these constructors
// over hand-rolled slog setup.
package logging
