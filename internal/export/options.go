package export

import (
	"fmt"

	"imdblist/internal/catalog"
	"imdblist/internal/config"
)

// Format selects the output sink.
type Format string

const (
	FormatTSV    Format = "tsv"
	FormatSQLite Format = "sqlite"
)

// Options controls the projection of records into rows.
type Options struct {
	Format Format
	// Columns lists the attributes after the title column. Nil means every key
	// in canonical order.
	Columns []catalog.Key
	// GenreColumns are the indicator columns the genre key expands into. Nil
	// selects every tallied genre above MinGenreCount, most frequent first.
	GenreColumns  []string
	MinGenreCount int
	// OnlyGenres keeps records carrying at least one of these genres.
	OnlyGenres []string
	// IgnoreGenres drops records carrying any of these genres.
	IgnoreGenres   []string
	DropIncomplete bool
	MissingNumber  string
	MissingText    string
	// Encoding is the IANA charset of TSV output; the SQLite sink always
	// stores UTF-8.
	Encoding string
}

// DefaultOptions writes every column as UTF-8 TSV with "-1" for missing
// numbers.
func DefaultOptions() Options {
	return Options{
		Format:        FormatTSV,
		MissingNumber: "-1",
		Encoding:      "utf-8",
	}
}

// OptionsFromConfig translates the [export] section.
func OptionsFromConfig(cfg config.Export) (Options, error) {
	opts := Options{
		Format:         Format(cfg.Format),
		GenreColumns:   cfg.GenreColumns,
		MinGenreCount:  cfg.MinGenreCount,
		OnlyGenres:     cfg.OnlyGenres,
		IgnoreGenres:   cfg.IgnoreGenres,
		DropIncomplete: cfg.DropIncomplete,
		MissingNumber:  cfg.MissingNumber,
		MissingText:    cfg.MissingText,
		Encoding:       cfg.Encoding,
	}
	if len(cfg.Columns) > 0 {
		keys, err := catalog.ParseKeys(cfg.Columns)
		if err != nil {
			return Options{}, fmt.Errorf("export columns: %w", err)
		}
		opts.Columns = keys
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) validate() error {
	switch o.Format {
	case FormatTSV, FormatSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, o.Format)
	}
	if _, err := lookupEncoding(o.Encoding); err != nil {
		return err
	}
	return nil
}

func (o Options) columns() []catalog.Key {
	if o.Columns == nil {
		return catalog.AllKeys
	}
	return o.Columns
}
