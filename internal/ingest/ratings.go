package ingest

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"imdblist/internal/catalog"
)

// ratingPrefix matches the fixed-width columns ahead of the title, e.g.
// "      0000.00005      69   7.8  Zero Hour (2013)".
var ratingPrefix = regexp.MustCompile(`^\s*\S{10}\s+[0-9]+\s+[0-9.]+\s+`)

// RatingParser stores the vote distribution, vote count, and rating.
type RatingParser struct {
	base
	reg catalog.Mutator
}

func NewRatingParser(reg catalog.Mutator, opts Options, logger *slog.Logger) *RatingParser {
	return &RatingParser{base: newBase(logger, CategoryRatings, opts.PrintMismatch), reg: reg}
}

func (p *RatingParser) Category() Category { return CategoryRatings }

func (p *RatingParser) Parse(lines LineSource, st *Stats) error {
	for lines.Scan() {
		st.Lines++
		line := lines.Text()
		loc := ratingPrefix.FindStringIndex(line)
		if loc == nil {
			p.mismatch(st, line)
			continue
		}
		title := strings.TrimSpace(line[loc[1]:])
		fields := strings.Fields(line[:loc[1]])
		if title == "" || len(fields) != 3 {
			p.mismatch(st, line)
			continue
		}
		votes, err := strconv.Atoi(fields[1])
		if err != nil {
			p.mismatch(st, line)
			continue
		}
		rating, ok := parseNumber(fields[2])
		if !ok {
			p.mismatch(st, line)
			continue
		}
		found := p.reg.Update(title, func(rec *catalog.Record) {
			if !replace(rec, catalog.KeyRating) {
				return
			}
			rec.SetRating(fields[0], votes, rating)
			st.Merged++
		})
		if !found {
			st.NotFound++
		}
	}
	return lines.Err()
}
