package ingest

import (
	"errors"
	"strings"
	"testing"

	"imdblist/internal/catalog"
	"imdblist/internal/currency"
)

// sliceLines feeds fixed lines to a parser.
type sliceLines struct {
	lines []string
	pos   int
	err   error
}

func newLines(lines ...string) *sliceLines {
	return &sliceLines{lines: lines, pos: -1}
}

func (s *sliceLines) Scan() bool {
	if s.pos+1 >= len(s.lines) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceLines) Text() string { return s.lines[s.pos] }
func (s *sliceLines) Err() error   { return s.err }

func seeded(titles ...string) *catalog.Registry {
	reg := catalog.NewRegistry()
	for _, title := range titles {
		reg.Create(title, 2000)
	}
	return reg
}

func mustFind(t *testing.T, reg *catalog.Registry, title string) *catalog.Record {
	t.Helper()
	rec, ok := reg.Find(title)
	if !ok {
		t.Fatalf("title %q not registered", title)
	}
	return rec
}

func TestTitleParser(t *testing.T) {
	reg := catalog.NewRegistry()
	p := NewTitleParser(reg, DefaultOptions(), nil)
	var st Stats
	err := p.Parse(newLines(
		"MOVIES LIST",
		"Heat (1995)\t\t\t1995",
		"Ghost Movie (????)\t\t????",
		"Heat (1995)\t\t\t1996",
		"\"Lost\" (2004)\t\t2004-2010",
		"Too\tMany\tFields",
	), &st)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := mustFind(t, reg, "Heat (1995)").Year(); got != 1995 {
		t.Fatalf("year = %d, want 1995 (first insert wins)", got)
	}
	if got := mustFind(t, reg, "Ghost Movie (????)").Year(); got != catalog.YearUnknown {
		t.Fatalf("year = %d, want unknown sentinel", got)
	}
	if _, ok := reg.Find(`"Lost" (2004)`); ok {
		t.Fatal("series should be filtered by default")
	}
	want := Stats{Lines: 6, Merged: 2, Duplicates: 1, Filtered: 1, Mismatched: 2}
	if st != want {
		t.Fatalf("stats = %+v, want %+v", st, want)
	}
}

func TestTitleParserSeriesOnly(t *testing.T) {
	reg := catalog.NewRegistry()
	p := NewTitleParser(reg, Options{IncludeSeries: true}, nil)
	var st Stats
	if err := p.Parse(newLines("Heat (1995)\t1995", "\"Lost\" (2004)\t2004"), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("registry size = %d, want 1", reg.Len())
	}
	if _, ok := reg.Find(`"Lost" (2004)`); !ok {
		t.Fatal("expected series to be registered")
	}
}

func TestGenreParserAppendsAndTallies(t *testing.T) {
	reg := seeded("Toy Story (1995)")
	tally := catalog.NewTally()
	p := NewGenreParser(reg, tally, DefaultOptions(), nil)
	var st Stats
	if err := p.Parse(newLines(
		"Toy Story (1995)\t\tAnimation",
		"Toy Story (1995)\t\tComedy",
		"Toy Story (1995)\t\tComedy",
		"Nowhere (1999)\t\tDrama",
	), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	genres := mustFind(t, reg, "Toy Story (1995)").Genres()
	if strings.Join(genres, ",") != "Animation,Comedy" {
		t.Fatalf("genres = %v", genres)
	}
	if tally.Genre.Count("Comedy") != 1 {
		t.Fatalf("Comedy tally = %d, want 1", tally.Genre.Count("Comedy"))
	}
	if tally.Genre.Count("Drama") != 0 {
		t.Fatal("unresolved titles must not be tallied")
	}
	if st.Merged != 2 || st.Duplicates != 1 || st.NotFound != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRatingParser(t *testing.T) {
	reg := seeded("Heat (1995)")
	p := NewRatingParser(reg, DefaultOptions(), nil)
	var st Stats
	if err := p.Parse(newLines(
		"      0000000124  541612   8.2  Heat (1995)",
		"      0000000125  600000   8.4  Heat (1995)",
		"      000000012x  lots     8.2  Heat (1995)",
		"      0000000124  10       1.2.3  Heat (1995)",
		"New  Distribution  Votes  Rank  Title",
		"      0000000124  10       5.0  Missing (2000)",
	), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec := mustFind(t, reg, "Heat (1995)")
	if rec.Votes() != 600000 || rec.Rating() != 8.4 || rec.VoteDistribution() != "0000000125" {
		t.Fatalf("rating fields = %d %v %q", rec.Votes(), rec.Rating(), rec.VoteDistribution())
	}
	if st.Merged != 2 || st.Mismatched != 3 || st.NotFound != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestBusinessParserRevenueIsMaxGross(t *testing.T) {
	reg := seeded("Heat (1995)")
	p := NewBusinessParser(reg, DefaultOptions(), nil)
	var st Stats
	if err := p.Parse(newLines(
		"-------------------------------------------------------------------------------",
		"MV: Heat (1995)",
		"BT: USD 100",
		"GR: USD 50",
		"GR: EUR 200",
		"-------------------------------------------------------------------------------",
	), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec := mustFind(t, reg, "Heat (1995)")
	if rec.Budget() != 100 {
		t.Fatalf("budget = %d, want 100", rec.Budget())
	}
	eur, _ := currency.Convert(200, "EUR", "USD")
	if eur <= 50 {
		t.Fatalf("fixture assumes EUR is worth more than USD, got %v", eur)
	}
	if rec.Revenue() != int64(eur) {
		t.Fatalf("revenue = %d, want %d", rec.Revenue(), int64(eur))
	}
	if st.Merged != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestBusinessParserOmitsBadFields(t *testing.T) {
	reg := seeded("Heat (1995)", "Alien (1979)")
	p := NewBusinessParser(reg, DefaultOptions(), nil)
	var st Stats
	if err := p.Parse(newLines(
		"MV: Heat (1995)",
		"BT: ZZZ 100",
		"GR: USD lots",
		"GR: USD 1,250",
		"MV: Nowhere (1999)",
		"BT: USD 5",
		"BT: USD 7",
		"-------------------------------------------------------------------------------",
		"BT: USD 9",
		"MV: Alien (1979)",
		"BT: USD 11,000,000",
		"BT: USD 12,000,000",
		"BT: XXX 1",
	), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	heat := mustFind(t, reg, "Heat (1995)")
	if heat.Has(catalog.KeyBudget) {
		t.Fatal("unknown currency must leave budget unset")
	}
	if heat.Revenue() != 1250 {
		t.Fatalf("revenue = %d, want 1250", heat.Revenue())
	}
	alien := mustFind(t, reg, "Alien (1979)")
	if alien.Budget() != 12000000 {
		t.Fatalf("budget = %d, want last convertible BT", alien.Budget())
	}
	if alien.Has(catalog.KeyRevenue) {
		t.Fatal("block without GR must not set revenue")
	}
	if st.Merged != 2 || st.NotFound != 1 || st.Invalid != 3 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestDirectorParser(t *testing.T) {
	reg := seeded("Amélie (2001)", "Toy Story (1995)", "Heat (1995)", "Ignored (1990)")
	p := NewDirectorParser(reg, DefaultOptions(), nil)
	var st Stats
	if err := p.Parse(newLines(
		"Someone\t\tIgnored (1990)",
		"Name\t\t\tTitles",
		"----\t\t\t------",
		"Jeunet, Jean-Pierre\tAmélie (2001)",
		"\t\t\tAlien: Resurrection (1997)",
		"",
		"Lasseter, John\t\tToy Story (1995)  (as John Lasseter)",
		"\t\t\tToy Story (1995)",
		"",
		"\t\t\tHeat (1995)",
		"Mann, Michael\t\tHeat (1995) (TV) {Pilot}",
	), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec := mustFind(t, reg, "Ignored (1990)"); rec.Has(catalog.KeyDirector) {
		t.Fatal("lines before the header must be ignored")
	}
	if got := mustFind(t, reg, "Amélie (2001)").Directors(); len(got) != 1 || got[0] != "Jeunet, Jean-Pierre" {
		t.Fatalf("directors = %v", got)
	}
	if got := mustFind(t, reg, "Toy Story (1995)").Directors(); len(got) != 1 || got[0] != "Lasseter, John" {
		t.Fatalf("directors = %v", got)
	}
	if got := mustFind(t, reg, "Heat (1995)").Directors(); len(got) != 0 {
		t.Fatalf("suffix with (TV) should resolve to %q which is not registered, got %v", "Heat (1995) (TV)", got)
	}
	// continuation after a blank line has no director
	if st.Mismatched != 1 {
		t.Fatalf("mismatched = %d, want 1", st.Mismatched)
	}
	if st.Merged != 2 || st.Duplicates != 1 || st.NotFound != 2 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestLengthParserFallsBackFromUnparsable(t *testing.T) {
	reg := seeded("Toy Story (1995)", "Amélie (2001)", "Heat (1995)", "Blank (2000)")
	p := NewLengthParser(reg, DefaultOptions(), nil)
	var st Stats
	if err := p.Parse(newLines(
		"Toy Story (1995)\t\tabout an hour",
		"Toy Story (1995)\t\tUSA:42",
		"Toy Story (1995)\t\tUSA:99",
		"Amélie (2001)\t\t122",
		"Heat (1995)\t\tUSA:170:30",
		"Blank (2000)\t\tn/a",
	), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tests := []struct {
		title string
		want  float64
	}{
		{"Toy Story (1995)", 42},
		{"Amélie (2001)", 122},
		{"Heat (1995)", 170.5},
		{"Blank (2000)", catalog.LengthUnparsed},
	}
	for _, tt := range tests {
		if got := mustFind(t, reg, tt.title).Length(); got != tt.want {
			t.Errorf("%s length = %v, want %v", tt.title, got, tt.want)
		}
	}
	if st.Merged != 3 || st.Duplicates != 2 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestParseLengthStrategies(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"85", 85},
		{"1,200", 1200},
		{"USA:80", 80},
		{"Canada:10:30", 10.5},
		{"USA:10'30", 10},
		{"50 6 episodes", 50},
		{"nothing", catalog.LengthUnparsed},
	}
	for _, tt := range tests {
		if got := parseLength(tt.in); got != tt.want {
			t.Errorf("parseLength(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFirstValueParsersKeepFirstValue(t *testing.T) {
	reg := seeded("Amélie (2001)")
	tally := catalog.NewTally()
	countries := NewCountryParser(reg, tally, DefaultOptions(), nil)
	languages := NewLanguageParser(reg, tally, DefaultOptions(), nil)

	for i := 0; i < 2; i++ {
		var st Stats
		if err := countries.Parse(newLines("Amélie (2001)\tFrance", "Amélie (2001)\tGermany"), &st); err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if err := languages.Parse(newLines("Amélie (2001)\tFrench\t(original)", "Amélie (2001)\tGerman"), &st); err != nil {
			t.Fatalf("Parse: %v", err)
		}
	}
	rec := mustFind(t, reg, "Amélie (2001)")
	if rec.Country() != "France" || rec.Language() != "French" {
		t.Fatalf("country=%q language=%q", rec.Country(), rec.Language())
	}
	if tally.Country.Count("France") != 1 || tally.Country.Count("Germany") != 0 {
		t.Fatal("only stored countries are tallied")
	}
	if countries.Category() != CategoryCountries || languages.Category() != CategoryLanguages {
		t.Fatal("unexpected categories")
	}
}

func TestMPAAParser(t *testing.T) {
	reg := seeded("Toy Story (1995)", "Ghost Movie (????)", "Heat (1995)")
	tally := catalog.NewTally()
	p := NewMPAAParser(reg, tally, Options{IncludeMovies: true, StoreMPAAReason: true}, nil)
	var st Stats
	if err := p.Parse(newLines(
		"-------------------------------------------------------------------------------",
		"MV: Toy Story (1995)",
		"RE: Rated PG-13 for violence",
		"-------------------------------------------------------------------------------",
		"MV: Ghost Movie (????)",
		"RE: Rated NC-1 for nothing",
		"-------------------------------------------------------------------------------",
		"MV: Toy Story (1995)",
		"RE: Rated R for more violence",
		"-------------------------------------------------------------------------------",
		"MV: Heat (1995)",
		"RE: Rated R for strong violence",
		"RE: and language",
	), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	toy := mustFind(t, reg, "Toy Story (1995)")
	if toy.MPAA() != "PG-13" {
		t.Fatalf("mpaa = %q, want PG-13", toy.MPAA())
	}
	if toy.MPAAReason() != "Rated PG-13 for violence" {
		t.Fatalf("reason = %q", toy.MPAAReason())
	}
	ghost := mustFind(t, reg, "Ghost Movie (????)")
	if ghost.Has(catalog.KeyMPAA) {
		t.Fatal("invalid rating must not be stored")
	}
	if tally.MPAA.Count("NC-1") != 1 {
		t.Fatalf("NC-1 tally = %d, want 1", tally.MPAA.Count("NC-1"))
	}
	heat := mustFind(t, reg, "Heat (1995)")
	if heat.MPAA() != "R" || heat.MPAAReason() != "Rated R for strong violence and language" {
		t.Fatalf("heat mpaa=%q reason=%q", heat.MPAA(), heat.MPAAReason())
	}
	if st.Duplicates != 1 || st.Invalid != 1 || st.Merged != 3 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestMPAAReasonSkippedByDefault(t *testing.T) {
	reg := seeded("Heat (1995)")
	p := NewMPAAParser(reg, catalog.NewTally(), DefaultOptions(), nil)
	var st Stats
	if err := p.Parse(newLines("MV: Heat (1995)", "RE: rated r for violence"), &st); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec := mustFind(t, reg, "Heat (1995)")
	if rec.Has(catalog.KeyMPAAReason) {
		t.Fatal("reason should not be stored by default")
	}
	if rec.Has(catalog.KeyMPAA) {
		t.Fatal("lowercase r is not a valid rating")
	}
}

func TestExtractRating(t *testing.T) {
	tests := map[string]string{
		"Rated PG-13 for violence":      "PG-13",
		"This film is RATED R for gore": "R",
		"PG for mild peril":             "PG",
		"":                              "",
	}
	for in, want := range tests {
		if got := extractRating(in); got != want {
			t.Errorf("extractRating(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParserReturnsReadError(t *testing.T) {
	boom := errors.New("disk gone")
	lines := newLines("Heat (1995)\t1995")
	lines.err = boom
	var st Stats
	err := NewTitleParser(catalog.NewRegistry(), DefaultOptions(), nil).Parse(lines, &st)
	if !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
}
