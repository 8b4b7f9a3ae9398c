package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"imdblist/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("IMDBLIST_INPUT_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, "imdb"); cfg.Paths.InputDir != want {
		t.Fatalf("input dir = %q, want %q", cfg.Paths.InputDir, want)
	}
	if want := filepath.Join(tempHome, "imdb", "movies.tsv"); cfg.Paths.OutputPath != want {
		t.Fatalf("output path = %q, want %q", cfg.Paths.OutputPath, want)
	}
	if cfg.Sources.Encoding != "ISO-8859-1" {
		t.Fatalf("source encoding = %q", cfg.Sources.Encoding)
	}
	if !cfg.Ingest.IncludeMovies || cfg.Ingest.IncludeSeries {
		t.Fatalf("expected movies-only defaults, got %+v", cfg.Ingest)
	}
	if len(cfg.Ingest.Order) != len(config.Categories) || cfg.Ingest.Order[0] != "titles" {
		t.Fatalf("unexpected default order %v", cfg.Ingest.Order)
	}
	if cfg.Export.Format != "tsv" || cfg.Export.MissingNumber != "-1" {
		t.Fatalf("unexpected export defaults %+v", cfg.Export)
	}
}

func TestLoadHonoursInputDirEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Setenv("IMDBLIST_INPUT_DIR", dir)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.InputDir != dir {
		t.Fatalf("input dir = %q, want %q", cfg.Paths.InputDir, dir)
	}
}

func TestLoadCustomFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMDBLIST_INPUT_DIR", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "imdblist.toml")

	payload := map[string]any{
		"paths": map[string]any{
			"input_dir":   filepath.Join(dir, "dumps"),
			"output_path": filepath.Join(dir, "out", "movies.db"),
		},
		"sources": map[string]any{
			"titles": "/srv/imdb/movies.list",
		},
		"ingest": map[string]any{
			"include_series": true,
			"order":          []string{"Titles", " genres "},
		},
		"export": map[string]any{
			"format":      "SQLite",
			"columns":     []string{"year", "Genre"},
			"only_genres": []string{" Animation "},
		},
		"logging": map[string]any{
			"format": "JSON",
		},
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected %q to be loaded, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Export.Format != "sqlite" {
		t.Fatalf("format = %q, want sqlite", cfg.Export.Format)
	}
	if got := strings.Join(cfg.Export.Columns, ","); got != "year,genre" {
		t.Fatalf("columns = %q", got)
	}
	if len(cfg.Export.OnlyGenres) != 1 || cfg.Export.OnlyGenres[0] != "Animation" {
		t.Fatalf("only genres = %v", cfg.Export.OnlyGenres)
	}
	if got := strings.Join(cfg.Ingest.Order, ","); got != "titles,genres" {
		t.Fatalf("order = %q", got)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging format = %q", cfg.Logging.Format)
	}
	if cfg.Sources.Genres != "genres.list" {
		t.Fatalf("unset source should keep default, got %q", cfg.Sources.Genres)
	}

	titles, err := cfg.SourcePath("titles")
	if err != nil || titles != "/srv/imdb/movies.list" {
		t.Fatalf("SourcePath(titles) = %q, %v", titles, err)
	}
	genres, err := cfg.SourcePath("genres")
	if err != nil || genres != filepath.Join(dir, "dumps", "genres.list") {
		t.Fatalf("SourcePath(genres) = %q, %v", genres, err)
	}
	if _, err := cfg.SourcePath("trivia"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"unknown format", func(c *config.Config) { c.Export.Format = "csv" }, "export.format"},
		{"unknown column", func(c *config.Config) { c.Export.Columns = []string{"plot"} }, "export.columns"},
		{"unknown source charset", func(c *config.Config) { c.Sources.Encoding = "klingon-8" }, "sources.encoding"},
		{"unknown export charset", func(c *config.Config) { c.Export.Encoding = "nope" }, "export.encoding"},
		{"no title kinds", func(c *config.Config) { c.Ingest.IncludeMovies = false }, "include_movies"},
		{"unknown category", func(c *config.Config) { c.Ingest.Order = []string{"trivia"} }, "ingest.order"},
		{"duplicate category", func(c *config.Config) { c.Ingest.Order = []string{"titles", "titles"} }, "listed twice"},
		{"negative genre count", func(c *config.Config) { c.Export.MinGenreCount = -1 }, "min_genre_count"},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "imdblist.toml")
	if err := os.WriteFile(path, []byte("[paths]\nstaging_dir = \"/tmp\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IMDBLIST_INPUT_DIR", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if len(cfg.Export.IgnoreGenres) != 2 {
		t.Fatalf("ignore genres = %v", cfg.Export.IgnoreGenres)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/imdb/lists")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "imdb", "lists"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}
