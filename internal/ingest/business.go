package ingest

import (
	"log/slog"
	"strings"

	"imdblist/internal/catalog"
	"imdblist/internal/currency"
)

// BusinessParser reads dash-delimited blocks such as
//
//	MV: Deadpool (2016)
//	BT: USD 58,000,000
//	GR: USD 363,024,263 (USA) (5 June 2016)
//	GR: USD 754,500,000 (Worldwide) (3 April 2016)
//
// The budget is the last convertible BT line. Revenue is the largest
// convertible GR line, on the assumption that the worldwide figure is the
// biggest one reported.
type BusinessParser struct {
	base
	reg catalog.Mutator
}

func NewBusinessParser(reg catalog.Mutator, opts Options, logger *slog.Logger) *BusinessParser {
	return &BusinessParser{base: newBase(logger, CategoryBusiness, opts.PrintMismatch), reg: reg}
}

func (p *BusinessParser) Category() Category { return CategoryBusiness }

type businessBlock struct {
	title  string
	found  bool
	budget lastWins
	gross  maxWins
}

func (p *BusinessParser) Parse(lines LineSource, st *Stats) error {
	var block businessBlock
	for lines.Scan() {
		st.Lines++
		line := lines.Text()
		switch {
		case isDelimiter(line):
			p.flush(&block, st)
		case strings.HasPrefix(line, "MV: "):
			p.flush(&block, st)
			block.title = strings.TrimSpace(line[4:])
			block.found = exists(p.reg, block.title)
			if !block.found {
				st.NotFound++
			}
		case strings.HasPrefix(line, "BT:"):
			if v, ok := p.amount(line[3:], st); ok {
				block.budget.offer(v)
			}
		case strings.HasPrefix(line, "GR:"):
			if v, ok := p.amount(line[3:], st); ok {
				block.gross.offer(v)
			}
		}
	}
	p.flush(&block, st)
	return lines.Err()
}

// amount converts "USD 58,000,000 (USA) ..." to base currency units.
func (p *BusinessParser) amount(rest string, st *Stats) (float64, bool) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		st.Invalid++
		return 0, false
	}
	value, ok := parseNumber(fields[1])
	if !ok {
		st.Invalid++
		return 0, false
	}
	converted, ok := currency.Convert(value, fields[0], currency.BaseCode)
	if !ok {
		st.Invalid++
		return 0, false
	}
	return converted, true
}

func (p *BusinessParser) flush(block *businessBlock, st *Stats) {
	defer func() { *block = businessBlock{} }()
	if block.title == "" || !block.found {
		return
	}
	p.reg.Update(block.title, func(rec *catalog.Record) {
		if block.budget.set {
			if units, ok := toUnits(block.budget.value); ok {
				rec.SetBudget(units)
			}
		}
		if block.gross.set {
			if units, ok := toUnits(block.gross.value); ok {
				rec.SetRevenue(units)
			}
		}
	})
	st.Merged++
}
