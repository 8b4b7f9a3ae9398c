package ingest

import (
	"log/slog"
	"time"
)

// Stats reports the outcome of one parser pass.
type Stats struct {
	Category Category
	Path     string
	// Missing is set when the source could not be opened; the pass did not run.
	Missing bool
	// Err holds a read error that cut the pass short.
	Err error

	Lines      int
	Merged     int
	NotFound   int
	Duplicates int
	Mismatched int
	// Filtered counts titles skipped by the movie/series toggles.
	Filtered int
	// Invalid counts values that parsed but were rejected (unknown currency,
	// rating outside the accepted set).
	Invalid int

	Elapsed time.Duration
}

// LogAttrs renders the counters for structured logging. The category is
// left to the caller's logger.
func (s Stats) LogAttrs() []any {
	return []any{
		slog.Int("lines", s.Lines),
		slog.Int("merged", s.Merged),
		slog.Int("not_found", s.NotFound),
		slog.Int("duplicates", s.Duplicates),
		slog.Int("mismatched", s.Mismatched),
		slog.Int("filtered", s.Filtered),
		slog.Int("invalid", s.Invalid),
		slog.Duration("elapsed", s.Elapsed),
	}
}

// Report collects the stats of a pipeline run in execution order.
type Report struct {
	RunID  string
	Passes []Stats
}

// Missing returns the passes whose source was not found.
func (r Report) Missing() []Stats {
	var out []Stats
	for _, s := range r.Passes {
		if s.Missing {
			out = append(out, s)
		}
	}
	return out
}

// Pass returns the stats for category c.
func (r Report) Pass(c Category) (Stats, bool) {
	for _, s := range r.Passes {
		if s.Category == c {
			return s, true
		}
	}
	return Stats{}, false
}
