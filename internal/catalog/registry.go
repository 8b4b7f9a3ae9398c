package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Creator is the capability handed to the title pass: it may add titles.
type Creator interface {
	Create(title string, year int) bool
}

// Mutator is the capability handed to every enrichment pass: it may change
// records that already exist but never add new ones.
type Mutator interface {
	Update(title string, fn func(*Record)) bool
}

// Match pairs a title with its record in search results.
type Match struct {
	Title  string
	Record *Record
}

// Registry maps exact titles to records and remembers insertion order.
type Registry struct {
	records map[string]*Record
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*Record)}
}

// IsSeries reports whether title follows the dump convention for series and
// episodes (a leading double quote).
func IsSeries(title string) bool {
	return strings.HasPrefix(title, `"`)
}

// Create inserts title with the given year. It returns false, leaving the
// existing record untouched, when title is already registered.
func (r *Registry) Create(title string, year int) bool {
	if _, ok := r.records[title]; ok {
		return false
	}
	rec := &Record{}
	rec.SetYear(year)
	r.records[title] = rec
	r.order = append(r.order, title)
	return true
}

// Update applies fn to the record for title. It returns false when the title
// is not registered; fn is not called in that case.
func (r *Registry) Update(title string, fn func(*Record)) bool {
	rec, ok := r.records[title]
	if !ok {
		return false
	}
	fn(rec)
	return true
}

// Find returns the record for an exact title.
func (r *Registry) Find(title string) (*Record, bool) {
	rec, ok := r.records[title]
	return rec, ok
}

// Len returns the number of registered titles.
func (r *Registry) Len() int {
	return len(r.records)
}

// Each calls fn for every title in insertion order until fn returns false.
func (r *Registry) Each(fn func(title string, rec *Record) bool) {
	for _, title := range r.order {
		if !fn(title, r.records[title]) {
			return
		}
	}
}

// PrefixSearch returns titles starting with phrase, ignoring case.
func (r *Registry) PrefixSearch(phrase string) []Match {
	folded := fold(phrase)
	return r.search(func(title string) bool {
		return strings.HasPrefix(fold(title), folded)
	})
}

// SubstringSearch returns titles containing phrase, ignoring case.
func (r *Registry) SubstringSearch(phrase string) []Match {
	folded := fold(phrase)
	return r.search(func(title string) bool {
		return strings.Contains(fold(title), folded)
	})
}

func (r *Registry) search(match func(string) bool) []Match {
	var out []Match
	for _, title := range r.order {
		if match(title) {
			out = append(out, Match{Title: title, Record: r.records[title]})
		}
	}
	return out
}

// ClearAttribute removes k from every record.
func (r *Registry) ClearAttribute(k Key) {
	for _, rec := range r.records {
		rec.Clear(k)
	}
}

func fold(s string) string {
	return cases.Fold().String(s)
}
