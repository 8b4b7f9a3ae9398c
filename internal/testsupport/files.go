package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

// WriteLatin1 writes lines to path encoded as ISO-8859-1, the charset of the
// real dumps, each terminated by a newline.
func WriteLatin1(t testing.TB, path string, lines ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	text := strings.Join(lines, "\n") + "\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const delimiter = "-------------------------------------------------------------------------------"

// SampleDumps is a small corpus in the layout of the real dumps, keyed by the
// default file name. It exercises every pass:
//
//   - "Amélie (2001)" needs Latin-1 decoding.
//   - "Toy Story (1995)" is Animation and Comedy; "Heat (1995)" is Drama only.
//   - "Heat (1995)" earns its revenue from the larger EUR gross.
//   - "Toy Story (1995)" has an unparsable running time before "USA:81".
//   - "Ghost Movie (????)" has an unknown year and an invalid MPAA rating.
//   - "\"Lost\" (2004)" is a series and is skipped by default.
var SampleDumps = map[string][]string{
	"movies.list": {
		"CRC: 0x1C7A4E2B  File: movies.list  Date: Fri Dec 16 00:00:00 2016",
		"",
		"MOVIES LIST",
		"===========",
		"",
		"Amélie (2001)\t\t\t\t\t2001",
		"Toy Story (1995)\t\t\t\t1995",
		"Heat (1995)\t\t\t\t\t1995",
		"Ghost Movie (????)\t\t\t\t????",
		"\"Lost\" (2004)\t\t\t\t\t2004-2010",
	},
	"genres.list": {
		"8: THE GENRES LIST",
		"==================",
		"",
		"Amélie (2001)\t\t\t\t\tComedy",
		"Amélie (2001)\t\t\t\t\tRomance",
		"Toy Story (1995)\t\t\t\tAnimation",
		"Toy Story (1995)\t\t\t\tComedy",
		"Toy Story (1995)\t\t\t\tComedy",
		"Heat (1995)\t\t\t\t\tDrama",
		"Nowhere (1999)\t\t\t\t\tDrama",
	},
	"ratings.list": {
		"MOVIE RATINGS REPORT",
		"",
		"New  Distribution  Votes  Rank  Title",
		"      0000001222  661233   8.3  Amélie (2001)",
		"      0000000133  809051   8.3  Toy Story (1995)",
		"      0000000124  541612   8.2  Heat (1995)",
		"      000000012x  lots     8.2  Heat (1995)",
	},
	"business.list": {
		"BUSINESS LIST",
		"=============",
		"",
		delimiter,
		"MV: Heat (1995)",
		"",
		"BT: USD 60,000,000",
		"GR: USD 67,436,818 (USA) (31 March 1996)",
		"GR: EUR 100,000,000 (Worldwide)",
		"GR: XYZ 999,999,999,999 (Nowhere)",
		"",
		delimiter,
		"MV: Toy Story (1995)",
		"BT: USD 30,000,000",
		"GR: USD 373,554,033 (Worldwide)",
	},
	"directors.list": {
		"THE DIRECTORS LIST",
		"==================",
		"",
		"Name\t\t\tTitles",
		"----\t\t\t------",
		"Jeunet, Jean-Pierre\tAmélie (2001)",
		"\t\t\tAlien: Resurrection (1997)",
		"",
		"Lasseter, John\t\tToy Story (1995)  (as John Lasseter)",
		"\t\t\tToy Story (1995)",
		"",
		"Mann, Michael\t\tHeat (1995)",
	},
	"running-times.list": {
		"RUNNING TIMES LIST",
		"==================",
		"Amélie (2001)\t\t\t\t\t122",
		"Amélie (2001)\t\t\t\t\tFrance:120",
		"Toy Story (1995)\t\t\t\tabout an hour and a half",
		"Toy Story (1995)\t\t\t\tUSA:81",
		"Heat (1995)\t\t\t\t\tUSA:170:30",
	},
	"countries.list": {
		"COUNTRIES LIST",
		"==============",
		"Amélie (2001)\t\t\t\t\tFrance",
		"Amélie (2001)\t\t\t\t\tGermany",
		"Toy Story (1995)\t\t\t\tUSA",
		"Heat (1995)\t\t\t\t\tUSA",
	},
	"language.list": {
		"LANGUAGE LIST",
		"=============",
		"Amélie (2001)\t\t\t\t\tFrench",
		"Toy Story (1995)\t\t\t\tEnglish",
		"Heat (1995)\t\t\t\t\tEnglish\t(original)",
		"Heat (1995)\t\t\t\t\tSpanish",
	},
	"mpaa-ratings-reasons.list": {
		"MPAA RATINGS REASONS LIST",
		"=========================",
		delimiter,
		"MV: Amélie (2001)",
		"RE: Rated R for sexual content.",
		delimiter,
		"MV: Heat (1995)",
		"RE: Rated R for strong violence",
		"RE: and language",
		delimiter,
		"MV: Ghost Movie (????)",
		"RE: Rated NC-1 for nothing",
		delimiter,
		"MV: Toy Story (1995)",
		"RE: Rated PG-13 for violence",
	},
}

// WriteSampleDumps writes SampleDumps into dir.
func WriteSampleDumps(t testing.TB, dir string) {
	t.Helper()
	for name, lines := range SampleDumps {
		WriteLatin1(t, filepath.Join(dir, name), lines...)
	}
}
