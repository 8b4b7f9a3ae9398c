package ingest

import (
	"log/slog"
	"strings"

	"imdblist/internal/catalog"
)

// LengthParser reads running times such as
//
//	The Movie (2008)	West Germany:26	(Worldwide Short Film Festival)
//	Werewolf Tales (2003) (V)				USA:80
//
// The first parsable entry per title wins. An entry that cannot be parsed is
// stored as catalog.LengthUnparsed and may still be replaced by a later one.
type LengthParser struct {
	base
	reg catalog.Mutator
}

func NewLengthParser(reg catalog.Mutator, opts Options, logger *slog.Logger) *LengthParser {
	return &LengthParser{base: newBase(logger, CategoryRunningTimes, opts.PrintMismatch), reg: reg}
}

func (p *LengthParser) Category() Category { return CategoryRunningTimes }

func (p *LengthParser) Parse(lines LineSource, st *Stats) error {
	for lines.Scan() {
		st.Lines++
		raw := lines.Text()
		tokens := splitTabs(strings.TrimSpace(raw))
		if len(tokens) < 2 {
			p.mismatch(st, raw)
			continue
		}
		title := strings.TrimSpace(tokens[0])
		value := tokens[1]
		found := p.reg.Update(title, func(rec *catalog.Record) {
			if rec.Has(catalog.KeyLength) {
				st.Duplicates++
			}
			if !keepUnlessParsed(rec, catalog.KeyLength) {
				return
			}
			minutes := parseLength(value)
			rec.SetLength(minutes)
			if minutes >= 0 {
				st.Merged++
			}
		})
		if !found {
			st.NotFound++
		}
	}
	return lines.Err()
}

// lengthStrategies are tried in order; the first success wins.
var lengthStrategies = []func(string) (float64, bool){
	// "85"
	parseNumber,
	// "USA:80"
	func(s string) (float64, bool) {
		i := strings.Index(s, ":")
		if i < 0 {
			return 0, false
		}
		return parseNumber(s[i+1:])
	},
	// "Canada:10:53" is minutes and seconds
	func(s string) (float64, bool) {
		parts := strings.Split(s, ":")
		if len(parts) < 3 {
			return 0, false
		}
		minutes, ok := parseNumber(parts[1])
		if !ok {
			return 0, false
		}
		seconds, ok := parseNumber(parts[2])
		if !ok {
			return 0, false
		}
		return minutes + seconds/60, true
	},
	// "USA:10'30", "50 6 episodes", "Japan:2 1/2": first run of digits
	func(s string) (float64, bool) {
		fields := strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' })
		if len(fields) == 0 {
			return 0, false
		}
		return parseNumber(fields[0])
	},
}

func parseLength(value string) float64 {
	for _, strategy := range lengthStrategies {
		if minutes, ok := strategy(value); ok {
			return minutes
		}
	}
	return catalog.LengthUnparsed
}
