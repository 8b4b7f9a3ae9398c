package ingest

import (
	"log/slog"
	"regexp"
	"strings"

	"imdblist/internal/catalog"
)

// titleYearSuffix finds the "(YYYY)" or "(????)" annotation that ends a
// title, optionally followed by a (V), (TV), or (VG) marker. Anything after
// it, such as an episode in braces or an "(as ...)" credit, is dropped when
// the raw field is not an exact title.
var titleYearSuffix = regexp.MustCompile(`\((\d{4}|\?{4})[^)]*\)\s*(\(V\)|\(TV\)|\(VG\))*`)

// DirectorParser reads the tab hierarchy of directors.list:
//
//	Name			Titles
//	----			------
//	Doe, Jane		First Film (2001)
//				Second Film (2004) (TV)
//
// A line with two fields starts a new director; a line with one field is
// another title for the current director. A blank line ends the current
// director.
type DirectorParser struct {
	base
	reg catalog.Mutator
}

func NewDirectorParser(reg catalog.Mutator, opts Options, logger *slog.Logger) *DirectorParser {
	return &DirectorParser{base: newBase(logger, CategoryDirectors, opts.PrintMismatch), reg: reg}
}

func (p *DirectorParser) Category() Category { return CategoryDirectors }

func (p *DirectorParser) Parse(lines LineSource, st *Stats) error {
	var (
		current string
		started bool
	)
	for lines.Scan() {
		st.Lines++
		raw := lines.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			current = ""
			continue
		}

		var field string
		tokens := splitTabs(line)
		switch len(tokens) {
		case 1:
			field = tokens[0]
		case 2:
			current, field = tokens[0], tokens[1]
		default:
			if started {
				p.mismatch(st, raw)
			}
			continue
		}

		if current == "----" && field == "------" {
			started = true
			current = ""
			continue
		}
		if !started {
			continue
		}
		if current == "" {
			p.mismatch(st, raw)
			continue
		}

		title := p.resolve(field)
		director := current
		found := p.reg.Update(title, func(rec *catalog.Record) {
			if appendUnique(rec, catalog.KeyDirector, director) {
				st.Merged++
			} else {
				st.Duplicates++
			}
		})
		if !found && title != "" {
			st.NotFound++
		}
	}
	return lines.Err()
}

func (p *DirectorParser) resolve(field string) string {
	if exists(p.reg, field) {
		return field
	}
	if loc := titleYearSuffix.FindStringIndex(field); loc != nil {
		return strings.TrimSpace(field[:loc[1]])
	}
	return field
}
