package ingest

import (
	"log/slog"

	"imdblist/internal/catalog"
	"imdblist/internal/logging"
)

// Parser runs one pass over a dump.
type Parser interface {
	Category() Category
	Parse(lines LineSource, st *Stats) error
}

// Options tunes parser behaviour.
type Options struct {
	IncludeMovies   bool
	IncludeSeries   bool
	StoreMPAAReason bool
	// PrintMismatch echoes every line that does not match its grammar.
	PrintMismatch bool
}

// DefaultOptions ingests movies only and skips MPAA reason text.
func DefaultOptions() Options {
	return Options{IncludeMovies: true}
}

type base struct {
	logger *slog.Logger
	echo   bool
}

func newBase(logger *slog.Logger, category Category, echo bool) base {
	logger = logging.NewComponentLogger(logger, "ingest")
	return base{logger: logger.With(slog.String(logging.FieldCategory, string(category))), echo: echo}
}

func (b base) mismatch(st *Stats, line string) {
	st.Mismatched++
	if b.echo {
		b.logger.Info("line mismatch", slog.String("line", line))
	}
}

// NewParsers builds one parser per category. Only the title parser receives
// the registry's create capability.
func NewParsers(reg *catalog.Registry, tally *catalog.Tally, opts Options, logger *slog.Logger) map[Category]Parser {
	return map[Category]Parser{
		CategoryTitles:       NewTitleParser(reg, opts, logger),
		CategoryGenres:       NewGenreParser(reg, tally, opts, logger),
		CategoryRatings:      NewRatingParser(reg, opts, logger),
		CategoryBusiness:     NewBusinessParser(reg, opts, logger),
		CategoryDirectors:    NewDirectorParser(reg, opts, logger),
		CategoryRunningTimes: NewLengthParser(reg, opts, logger),
		CategoryCountries:    NewCountryParser(reg, tally, opts, logger),
		CategoryLanguages:    NewLanguageParser(reg, tally, opts, logger),
		CategoryMPAA:         NewMPAAParser(reg, tally, opts, logger),
	}
}
