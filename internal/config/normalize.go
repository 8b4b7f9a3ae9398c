package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSources()
	c.normalizeIngest()
	c.normalizeExport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("IMDBLIST_INPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.InputDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		c.Paths.InputDir = defaultInputDir
	}
	if strings.TrimSpace(c.Paths.OutputPath) == "" {
		c.Paths.OutputPath = defaultOutputPath
	}
	var err error
	if c.Paths.InputDir, err = expandPath(strings.TrimSpace(c.Paths.InputDir)); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if c.Paths.OutputPath, err = expandPath(strings.TrimSpace(c.Paths.OutputPath)); err != nil {
		return fmt.Errorf("paths.output_path: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSources() {
	defaults := Default().Sources
	c.Sources.Encoding = strings.TrimSpace(c.Sources.Encoding)
	if c.Sources.Encoding == "" {
		c.Sources.Encoding = defaultSourceCharset
	}
	fill := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	fill(&c.Sources.Titles, defaults.Titles)
	fill(&c.Sources.Genres, defaults.Genres)
	fill(&c.Sources.Ratings, defaults.Ratings)
	fill(&c.Sources.Business, defaults.Business)
	fill(&c.Sources.Directors, defaults.Directors)
	fill(&c.Sources.RunningTimes, defaults.RunningTimes)
	fill(&c.Sources.Countries, defaults.Countries)
	fill(&c.Sources.Languages, defaults.Languages)
	fill(&c.Sources.MPAA, defaults.MPAA)
}

func (c *Config) normalizeIngest() {
	c.Ingest.Order = lowerList(c.Ingest.Order)
	if len(c.Ingest.Order) == 0 {
		c.Ingest.Order = append([]string(nil), Categories...)
	}
}

func (c *Config) normalizeExport() {
	c.Export.Format = strings.ToLower(strings.TrimSpace(c.Export.Format))
	if c.Export.Format == "" {
		c.Export.Format = defaultExportFormat
	}
	c.Export.Encoding = strings.TrimSpace(c.Export.Encoding)
	if c.Export.Encoding == "" {
		c.Export.Encoding = defaultExportCharset
	}
	c.Export.Columns = lowerList(c.Export.Columns)
	c.Export.GenreColumns = trimList(c.Export.GenreColumns)
	c.Export.OnlyGenres = trimList(c.Export.OnlyGenres)
	c.Export.IgnoreGenres = trimList(c.Export.IgnoreGenres)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func trimList(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func lowerList(values []string) []string {
	out := trimList(values)
	for i := range out {
		out[i] = strings.ToLower(out[i])
	}
	return out
}
