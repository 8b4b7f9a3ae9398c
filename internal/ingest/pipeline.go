package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"imdblist/internal/catalog"
	"imdblist/internal/listfile"
	"imdblist/internal/logging"
)

// ctxCheckInterval is how many lines pass between cancellation checks.
const ctxCheckInterval = 1 << 16

// Source names the dump for one category.
type Source struct {
	Category Category
	Path     string
}

// Pipeline runs parsers over their sources, one file at a time, in the order
// the sources are given.
type Pipeline struct {
	Registry *catalog.Registry
	Tally    *catalog.Tally
	Options  Options
	// Charset is the IANA name of the dump encoding; empty means ISO-8859-1.
	Charset string
	// Progress logs sampled byte-percent progress for each pass.
	Progress bool
	Logger   *slog.Logger
	RunID    string
}

// NewPipeline returns a pipeline over a fresh registry and tally.
func NewPipeline(opts Options, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		Registry: catalog.NewRegistry(),
		Tally:    catalog.NewTally(),
		Options:  opts,
		Logger:   logger,
	}
}

// Run executes one pass per source. Missing sources and read errors are
// recorded in the report and never stop the run; only an unusable charset or
// a cancelled context does.
func (p *Pipeline) Run(ctx context.Context, sources []Source) (Report, error) {
	root := p.Logger
	if root == nil {
		root = logging.NewNop()
	}
	if p.RunID != "" {
		root = root.With(slog.String(logging.FieldRunID, p.RunID))
	}
	logger := logging.NewComponentLogger(root, "ingest")
	if _, err := listfile.LookupEncoding(p.Charset); err != nil {
		return Report{RunID: p.RunID}, fmt.Errorf("source charset: %w", err)
	}

	parsers := NewParsers(p.Registry, p.Tally, p.Options, root)
	report := Report{RunID: p.RunID}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		parser, ok := parsers[src.Category]
		if !ok {
			return report, fmt.Errorf("no parser for category %q", src.Category)
		}
		st := p.runPass(ctx, parser, src, logger)
		report.Passes = append(report.Passes, st)
		if err := ctx.Err(); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (p *Pipeline) runPass(ctx context.Context, parser Parser, src Source, logger *slog.Logger) Stats {
	st := Stats{Category: src.Category, Path: src.Path}
	passLogger := logger.With(slog.String(logging.FieldCategory, string(src.Category)))

	reader, err := listfile.Open(src.Path, p.Charset)
	if err != nil {
		st.Missing = true
		if !errors.Is(err, listfile.ErrSourceMissing) {
			st.Err = err
		}
		passLogger.Warn("source not found", slog.String("path", src.Path), logging.Error(err))
		return st
	}
	defer reader.Close()

	if p.Progress {
		passLogger.Info("processing", slog.String("path", reader.Path()))
	}
	started := time.Now()
	lines := &trackedLines{Reader: reader, ctx: ctx, st: &st, logger: passLogger}
	if p.Progress {
		lines.sampler = logging.NewProgressSampler(10)
	}
	if err := parser.Parse(lines, &st); err != nil {
		st.Err = err
		if ctx.Err() == nil {
			passLogger.Error("pass aborted by read error", logging.Error(err))
		}
	}
	st.Elapsed = time.Since(started)
	if p.Progress {
		passLogger.Info("pass complete", st.LogAttrs()...)
	}
	return st
}

// trackedLines adds cancellation and progress sampling to a reader. Lines
// too long to buffer are counted as mismatches and never reach the parser.
type trackedLines struct {
	*listfile.Reader
	ctx     context.Context
	st      *Stats
	sampler *logging.ProgressSampler
	logger  *slog.Logger
	err     error
}

func (t *trackedLines) Scan() bool {
	for {
		if t.err != nil {
			return false
		}
		if !t.Reader.Scan() {
			return false
		}
		if t.Reader.LineNumber()%ctxCheckInterval == 0 {
			if err := t.ctx.Err(); err != nil {
				t.err = err
				return false
			}
			if t.sampler != nil {
				pct := t.Reader.Percent()
				if t.sampler.ShouldLog(pct, "") {
					t.logger.Info("progress", slog.Float64("percent", pct), slog.Int("lines", t.Reader.LineNumber()))
				}
			}
		}
		if !t.Reader.Overlong() {
			return true
		}
		t.st.Lines++
		t.st.Mismatched++
		t.logger.Warn("skipping overlong line", slog.Int("line", t.Reader.LineNumber()))
	}
}

func (t *trackedLines) Err() error {
	if t.err != nil {
		return t.err
	}
	return t.Reader.Err()
}
