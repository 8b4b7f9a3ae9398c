package testsupport

import (
	"path/filepath"
	"testing"

	"imdblist/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory: dumps are
// read from <base>/input and the table is written to <base>/out/movies.tsv.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.InputDir = filepath.Join(base, "input")
	cfgVal.Paths.OutputPath = filepath.Join(base, "out", "movies.tsv")
	cfgVal.Ingest.PrintProgress = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSampleDumps writes the sample corpus into the config's input directory.
func WithSampleDumps() ConfigOption {
	return func(b *configBuilder) {
		WriteSampleDumps(b.t, b.cfg.Paths.InputDir)
	}
}

// WithExportFormat selects the export sink and matching output file name.
func WithExportFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Export.Format = format
		if format == "sqlite" {
			b.cfg.Paths.OutputPath = filepath.Join(b.baseDir, "out", "movies.db")
		}
	}
}

// WithOrder overrides the pass order.
func WithOrder(categories ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ingest.Order = categories
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.InputDir)
}
