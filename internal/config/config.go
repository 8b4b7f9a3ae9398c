package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input and output locations.
type Paths struct {
	InputDir   string `toml:"input_dir"`
	OutputPath string `toml:"output_path"`
	LogDir     string `toml:"log_dir"`
}

// Sources names the dump file for each category, relative to
// Paths.InputDir unless absolute.
type Sources struct {
	Encoding     string `toml:"encoding"`
	Titles       string `toml:"titles"`
	Genres       string `toml:"genres"`
	Ratings      string `toml:"ratings"`
	Business     string `toml:"business"`
	Directors    string `toml:"directors"`
	RunningTimes string `toml:"running_times"`
	Countries    string `toml:"countries"`
	Languages    string `toml:"languages"`
	MPAA         string `toml:"mpaa"`
}

// Ingest controls which titles are kept and how passes report.
type Ingest struct {
	IncludeMovies   bool     `toml:"include_movies"`
	IncludeSeries   bool     `toml:"include_series"`
	StoreMPAAReason bool     `toml:"store_mpaa_reason"`
	PrintProgress   bool     `toml:"print_progress"`
	PrintMismatch   bool     `toml:"print_mismatch"`
	Order           []string `toml:"order"`
}

// Export controls the flattened table.
type Export struct {
	Format         string   `toml:"format"`
	Encoding       string   `toml:"encoding"`
	Columns        []string `toml:"columns"`
	GenreColumns   []string `toml:"genre_columns"`
	MinGenreCount  int      `toml:"min_genre_count"`
	OnlyGenres     []string `toml:"only_genres"`
	IgnoreGenres   []string `toml:"ignore_genres"`
	DropIncomplete bool     `toml:"drop_incomplete"`
	MissingNumber  string   `toml:"missing_number"`
	MissingText    string   `toml:"missing_text"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for imdblist.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Sources Sources `toml:"sources"`
	Ingest  Ingest  `toml:"ingest"`
	Export  Export  `toml:"export"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("imdblist.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// SourceFile returns the configured file name for a category and whether the
// category is known.
func (s Sources) SourceFile(category string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "titles":
		return s.Titles, true
	case "genres":
		return s.Genres, true
	case "ratings":
		return s.Ratings, true
	case "business":
		return s.Business, true
	case "directors":
		return s.Directors, true
	case "running_times":
		return s.RunningTimes, true
	case "countries":
		return s.Countries, true
	case "languages":
		return s.Languages, true
	case "mpaa":
		return s.MPAA, true
	default:
		return "", false
	}
}

// SourcePath resolves the dump path for a category against Paths.InputDir.
func (c *Config) SourcePath(category string) (string, error) {
	name, ok := c.Sources.SourceFile(category)
	if !ok {
		return "", fmt.Errorf("unknown source category %q", category)
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(c.Paths.InputDir, name), nil
}

// EnsureDirectories creates the directories an export run writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Paths.OutputPath)}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
