package main

import (
	"context"
	"fmt"
	"log/slog"

	"imdblist/internal/config"
	"imdblist/internal/ingest"
)

// ingestRun is one pipeline execution over the configured sources.
type ingestRun struct {
	pipeline *ingest.Pipeline
	report   ingest.Report
}

func buildSources(cfg *config.Config) ([]ingest.Source, error) {
	sources := make([]ingest.Source, 0, len(cfg.Ingest.Order))
	for _, name := range cfg.Ingest.Order {
		category, err := ingest.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		path, err := cfg.SourcePath(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, ingest.Source{Category: category, Path: path})
	}
	return sources, nil
}

func ingestOptions(cfg *config.Config) ingest.Options {
	return ingest.Options{
		IncludeMovies:   cfg.Ingest.IncludeMovies,
		IncludeSeries:   cfg.Ingest.IncludeSeries,
		StoreMPAAReason: cfg.Ingest.StoreMPAAReason,
		PrintMismatch:   cfg.Ingest.PrintMismatch,
	}
}

func runIngest(ctx context.Context, cfg *config.Config, logger *slog.Logger, runID string) (*ingestRun, error) {
	sources, err := buildSources(cfg)
	if err != nil {
		return nil, err
	}
	pipeline := ingest.NewPipeline(ingestOptions(cfg), logger)
	pipeline.Charset = cfg.Sources.Encoding
	pipeline.Progress = cfg.Ingest.PrintProgress
	pipeline.RunID = runID

	report, err := pipeline.Run(ctx, sources)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return &ingestRun{pipeline: pipeline, report: report}, nil
}
