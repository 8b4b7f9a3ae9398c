package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imdblist/internal/preflight"
	"imdblist/internal/testsupport"
)

func sampleIngest(t *testing.T, order ...string) *ingestRun {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithSampleDumps(), testsupport.WithOrder(order...))
	if err := os.Remove(filepath.Join(cfg.Paths.InputDir, "language.list")); err != nil {
		t.Fatalf("remove language.list: %v", err)
	}
	run, err := runIngest(context.Background(), cfg, nil, "run-1")
	if err != nil {
		t.Fatalf("runIngest: %v", err)
	}
	return run
}

func TestSummarizePassesFromIngest(t *testing.T) {
	run := sampleIngest(t, "titles", "directors", "business", "languages")
	passes := summarizePasses(run.report)
	if len(passes) != 4 {
		t.Fatalf("expected 4 passes, got %d", len(passes))
	}
	directors := passes[1]
	got := strings.Join(passCounts(directors.Category, directors)[2:5], ",")
	if directors.Category != "directors" || got != "3,1,1" {
		t.Fatalf("directors merged/not found/duplicates = %s (%+v)", got, directors)
	}
	if !passes[3].Missing || passes[3].Error != "" {
		t.Fatalf("languages should be missing without error: %+v", passes[3])
	}
}

func TestRenderReportTotalsAndMissing(t *testing.T) {
	run := sampleIngest(t, "titles", "directors", "business", "languages")
	passes := summarizePasses(run.report)

	table := renderReport(passes)
	for _, want := range []string{"directors", "business", "languages"} {
		requireContains(t, table, want)
	}
	requireContains(t, strings.ToUpper(table), "TOTAL")
	// titles 4 + directors 3 + business 2
	requireContains(t, table, " 9 ")

	missing := renderMissing(passes, false)
	if len(missing) != 1 {
		t.Fatalf("expected one missing line, got %q", missing)
	}
	requireContains(t, missing[0], "languages:")
	requireContains(t, missing[0], "[WARN] "+passes[3].Path+" not found")
}

func TestRenderTallyFromIngest(t *testing.T) {
	run := sampleIngest(t, "titles", "genres", "languages")
	entries := topEntries(run.pipeline.Tally.Genre.Sorted(), 2)
	if len(entries) != 2 || entries[0].Label != "Comedy" || entries[0].Count != 2 {
		t.Fatalf("unexpected top genres: %+v", entries)
	}
	table := renderTally(entries)
	requireContains(t, table, "Comedy")
	requireContains(t, table, "Animation")
	if strings.Contains(table, "Romance") {
		t.Fatalf("top 2 should cut Romance:\n%s", table)
	}
}

func TestPreflightLinesFromChecks(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSampleDumps(), testsupport.WithOrder("titles", "languages"))
	if err := os.Remove(filepath.Join(cfg.Paths.InputDir, "language.list")); err != nil {
		t.Fatalf("remove language.list: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	results := preflight.RunAll(cfg)
	lines := preflightLines(results, false)
	if len(lines) != len(results) {
		t.Fatalf("expected %d lines, got %d", len(results), len(lines))
	}
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Source encoding:", "[OK] ISO-8859-1")
	if lines[0] != want {
		t.Fatalf("first line mismatch\n got: %q\nwant: %q", lines[0], want)
	}
	requireContains(t, lines[1], "titles:")
	requireContains(t, lines[1], "[OK]")
	requireContains(t, lines[2], "[WARN]")
	requireContains(t, lines[2], "missing: pass will be skipped")
	if preflight.Failed(results) != 0 {
		t.Fatalf("a missing list must not fail preflight: %v", lines)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("titles", statusError, "unreadable", true)
	if !strings.HasPrefix(got, ansiRed) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected red status line, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
