package preflight

import (
	"path/filepath"

	"imdblist/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	// Optional marks a check whose failure degrades the run instead of
	// blocking it, such as a missing dump.
	Optional bool
}

// RunAll executes the checks for every source in the configured pass order
// followed by the output and log directories.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckCharset("Source encoding", cfg.Sources.Encoding)}
	for _, category := range cfg.Ingest.Order {
		path, err := cfg.SourcePath(category)
		if err != nil {
			results = append(results, Result{Name: category, Detail: err.Error()})
			continue
		}
		results = append(results, CheckSource(category, path))
	}

	results = append(results, CheckDirectoryAccess("Output directory", filepath.Dir(cfg.Paths.OutputPath)))
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	return results
}

// Failed counts required checks that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed && !r.Optional {
			n++
		}
	}
	return n
}
