package config

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/encoding/ianaindex"

	"imdblist/internal/catalog"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSources(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSources() error {
	if err := validateCharset(c.Sources.Encoding); err != nil {
		return fmt.Errorf("sources.encoding: %w", err)
	}
	return nil
}

func (c *Config) validateIngest() error {
	if !c.Ingest.IncludeMovies && !c.Ingest.IncludeSeries {
		return errors.New("ingest: at least one of include_movies or include_series must be true")
	}
	seen := make(map[string]struct{}, len(c.Ingest.Order))
	for _, name := range c.Ingest.Order {
		if !slices.Contains(Categories, name) {
			return fmt.Errorf("ingest.order: unknown category %q", name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("ingest.order: category %q listed twice", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func (c *Config) validateExport() error {
	switch c.Export.Format {
	case "tsv", "sqlite":
	default:
		return fmt.Errorf("export.format: unsupported value %q (want tsv or sqlite)", c.Export.Format)
	}
	if err := validateCharset(c.Export.Encoding); err != nil {
		return fmt.Errorf("export.encoding: %w", err)
	}
	if _, err := catalog.ParseKeys(c.Export.Columns); err != nil {
		return fmt.Errorf("export.columns: %w", err)
	}
	if c.Export.MinGenreCount < 0 {
		return errors.New("export.min_genre_count must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func validateCharset(name string) error {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return err
	}
	if enc == nil {
		return fmt.Errorf("charset %q has no decoder", name)
	}
	return nil
}
