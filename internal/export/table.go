package export

import (
	"slices"
	"strings"

	"imdblist/internal/catalog"
)

// Table is the row projection for one export.
type Table struct {
	header []string
	keys   []catalog.Key
	genres []string
	only   map[string]struct{}
	ignore map[string]struct{}
	opts   Options
}

// NewTable resolves the header for opts. The tally supplies the genre columns
// when opts.GenreColumns is nil.
func NewTable(tally *catalog.Tally, opts Options) *Table {
	t := &Table{
		keys:   opts.columns(),
		only:   toSet(opts.OnlyGenres),
		ignore: toSet(opts.IgnoreGenres),
		opts:   opts,
	}
	t.genres = opts.GenreColumns
	if t.genres == nil {
		t.genres = t.defaultGenres(tally)
	}

	t.header = append(t.header, "title")
	for _, key := range t.keys {
		if key == catalog.KeyGenre {
			for _, genre := range t.genres {
				t.header = append(t.header, clean(genre))
			}
			continue
		}
		t.header = append(t.header, string(key))
	}
	return t
}

func (t *Table) defaultGenres(tally *catalog.Tally) []string {
	if tally == nil {
		return []string{}
	}
	out := []string{}
	for _, entry := range tally.Genre.Sorted() {
		if entry.Count <= t.opts.MinGenreCount {
			continue
		}
		if _, skip := t.ignore[entry.Label]; skip {
			continue
		}
		out = append(out, entry.Label)
	}
	return out
}

// Header returns the column names, starting with "title".
func (t *Table) Header() []string {
	return slices.Clone(t.header)
}

// GenreColumns returns the genres the genre key expanded into.
func (t *Table) GenreColumns() []string {
	return slices.Clone(t.genres)
}

// Row renders rec. The second result is false when the record is filtered
// out.
func (t *Table) Row(title string, rec *catalog.Record) ([]string, bool) {
	if !t.keepGenres(rec) {
		return nil, false
	}
	row := make([]string, 0, len(t.header))
	row = append(row, clean(title))
	for _, key := range t.keys {
		if key == catalog.KeyGenre {
			if t.opts.DropIncomplete && !rec.Has(catalog.KeyGenre) {
				return nil, false
			}
			for _, genre := range t.genres {
				if rec.HasGenre(genre) {
					row = append(row, "1")
				} else {
					row = append(row, "0")
				}
			}
			continue
		}
		value, ok := rec.Value(key)
		if !ok {
			if t.opts.DropIncomplete {
				return nil, false
			}
			if key.Numeric() {
				value = t.opts.MissingNumber
			} else {
				value = t.opts.MissingText
			}
		}
		row = append(row, clean(value))
	}
	return row, true
}

func (t *Table) keepGenres(rec *catalog.Record) bool {
	genres := rec.Genres()
	if len(t.only) > 0 {
		matched := false
		for _, g := range genres {
			if _, ok := t.only[g]; ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, g := range genres {
		if _, ok := t.ignore[g]; ok {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

var cleaner = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// clean keeps a value on one line and inside one column.
func clean(s string) string {
	return cleaner.Replace(s)
}
