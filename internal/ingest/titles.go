package ingest

import (
	"log/slog"
	"strconv"
	"strings"

	"imdblist/internal/catalog"
)

// TitleParser reads "title<TAB>year" lines and is the only pass that adds
// titles to the registry.
type TitleParser struct {
	base
	reg  catalog.Creator
	opts Options
}

func NewTitleParser(reg catalog.Creator, opts Options, logger *slog.Logger) *TitleParser {
	return &TitleParser{base: newBase(logger, CategoryTitles, opts.PrintMismatch), reg: reg, opts: opts}
}

func (p *TitleParser) Category() Category { return CategoryTitles }

func (p *TitleParser) Parse(lines LineSource, st *Stats) error {
	for lines.Scan() {
		st.Lines++
		line := lines.Text()
		tokens := splitTabs(line)
		if len(tokens) != 2 {
			p.mismatch(st, line)
			continue
		}
		title := strings.TrimSpace(tokens[0])
		if title == "" {
			p.mismatch(st, line)
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(tokens[1]))
		if err != nil {
			year = catalog.YearUnknown
		}

		if catalog.IsSeries(title) {
			if !p.opts.IncludeSeries {
				st.Filtered++
				continue
			}
		} else if !p.opts.IncludeMovies {
			st.Filtered++
			continue
		}

		if p.reg.Create(title, year) {
			st.Merged++
		} else {
			st.Duplicates++
		}
	}
	return lines.Err()
}
