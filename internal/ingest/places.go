package ingest

import (
	"log/slog"
	"strings"

	"imdblist/internal/catalog"
)

// FirstValueParser stores the first "title<TAB>value" line seen for each
// title; it backs both the country and the language passes.
type FirstValueParser struct {
	base
	category Category
	key      catalog.Key
	reg      catalog.Mutator
	counter  *catalog.Counter
	policy   writePolicy
	set      func(*catalog.Record, string)
}

func NewCountryParser(reg catalog.Mutator, tally *catalog.Tally, opts Options, logger *slog.Logger) *FirstValueParser {
	return &FirstValueParser{
		base:     newBase(logger, CategoryCountries, opts.PrintMismatch),
		category: CategoryCountries,
		key:      catalog.KeyCountry,
		reg:      reg,
		counter:  &tally.Country,
		policy:   firstWins,
		set:      (*catalog.Record).SetCountry,
	}
}

func NewLanguageParser(reg catalog.Mutator, tally *catalog.Tally, opts Options, logger *slog.Logger) *FirstValueParser {
	return &FirstValueParser{
		base:     newBase(logger, CategoryLanguages, opts.PrintMismatch),
		category: CategoryLanguages,
		key:      catalog.KeyLanguage,
		reg:      reg,
		counter:  &tally.Language,
		policy:   firstWins,
		set:      (*catalog.Record).SetLanguage,
	}
}

func (p *FirstValueParser) Category() Category { return p.category }

func (p *FirstValueParser) Parse(lines LineSource, st *Stats) error {
	for lines.Scan() {
		st.Lines++
		raw := lines.Text()
		tokens := splitTabs(strings.TrimSpace(raw))
		if len(tokens) < 2 {
			p.mismatch(st, raw)
			continue
		}
		title := strings.TrimSpace(tokens[0])
		value := strings.TrimSpace(tokens[1])
		found := p.reg.Update(title, func(rec *catalog.Record) {
			if !p.policy(rec, p.key) {
				st.Duplicates++
				return
			}
			p.set(rec, value)
			p.counter.Add(value)
			st.Merged++
		})
		if !found {
			st.NotFound++
		}
	}
	return lines.Err()
}
