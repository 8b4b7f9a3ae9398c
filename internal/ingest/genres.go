package ingest

import (
	"log/slog"
	"strings"

	"imdblist/internal/catalog"
)

// GenreParser appends "title<TAB>genre" lines to each title's genre list.
type GenreParser struct {
	base
	reg   catalog.Mutator
	tally *catalog.Tally
}

func NewGenreParser(reg catalog.Mutator, tally *catalog.Tally, opts Options, logger *slog.Logger) *GenreParser {
	return &GenreParser{base: newBase(logger, CategoryGenres, opts.PrintMismatch), reg: reg, tally: tally}
}

func (p *GenreParser) Category() Category { return CategoryGenres }

func (p *GenreParser) Parse(lines LineSource, st *Stats) error {
	for lines.Scan() {
		st.Lines++
		line := lines.Text()
		tokens := splitTabs(line)
		if len(tokens) != 2 {
			p.mismatch(st, line)
			continue
		}
		title := strings.TrimSpace(tokens[0])
		genre := strings.TrimSpace(tokens[1])
		if title == "" || genre == "" {
			p.mismatch(st, line)
			continue
		}
		found := p.reg.Update(title, func(rec *catalog.Record) {
			if !appendUnique(rec, catalog.KeyGenre, genre) {
				st.Duplicates++
				return
			}
			p.tally.Genre.Add(genre)
			st.Merged++
		})
		if !found {
			st.NotFound++
		}
	}
	return lines.Err()
}
