package ingest

import (
	"log/slog"
	"strings"

	"imdblist/internal/catalog"
)

// validMPAA is the closed set of ratings stored on records. Other tokens are
// tallied so they show up in the distribution summary.
var validMPAA = map[string]bool{
	"PG":    true,
	"PG-13": true,
	"R":     true,
	"NV-17": true,
}

// MPAAParser reads dash-delimited blocks such as
//
//	MV: The Revenant (2015)
//	RE: Rated R for strong frontier combat and violence including gory
//	RE: images, a sexual assault, language and brief nudity
//
// The rating is the word after "rated "; the joined RE text is the reason.
type MPAAParser struct {
	base
	reg   catalog.Mutator
	tally *catalog.Tally
	opts  Options
}

func NewMPAAParser(reg catalog.Mutator, tally *catalog.Tally, opts Options, logger *slog.Logger) *MPAAParser {
	return &MPAAParser{base: newBase(logger, CategoryMPAA, opts.PrintMismatch), reg: reg, tally: tally, opts: opts}
}

func (p *MPAAParser) Category() Category { return CategoryMPAA }

type mpaaBlock struct {
	title  string
	found  bool
	reason []string
}

func (p *MPAAParser) Parse(lines LineSource, st *Stats) error {
	var block mpaaBlock
	for lines.Scan() {
		st.Lines++
		line := strings.TrimSpace(lines.Text())
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
		case strings.HasPrefix(line, "RE:"):
			if text := strings.TrimSpace(line[3:]); text != "" {
				block.reason = append(block.reason, text)
			}
		}
	}
	p.flush(&block, st)
	return lines.Err()
}

func (p *MPAAParser) flush(block *mpaaBlock, st *Stats) {
	defer func() { *block = mpaaBlock{} }()
	if block.title == "" || !block.found {
		return
	}
	reason := strings.Join(block.reason, " ")
	p.reg.Update(block.title, func(rec *catalog.Record) {
		if !firstWins(rec, catalog.KeyMPAA) {
			st.Duplicates++
			return
		}
		if rating := extractRating(reason); rating != "" {
			p.tally.MPAA.Add(rating)
			if validMPAA[rating] {
				rec.SetMPAA(rating)
			} else {
				st.Invalid++
			}
		}
		if p.opts.StoreMPAAReason && reason != "" {
			rec.SetMPAAReason(reason)
		}
		st.Merged++
	})
}

// extractRating returns the word following "rated " (any case), or the first
// word when the phrase is absent.
func extractRating(reason string) string {
	text := reason
	if i := indexFold(text, "rated "); i >= 0 {
		text = strings.TrimSpace(text[i+len("rated"):])
	}
	word, _, _ := strings.Cut(text, " ")
	return word
}
