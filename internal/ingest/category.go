package ingest

import (
	"fmt"
	"strings"
)

// Category identifies one dump and the parser that understands it.
type Category string

const (
	CategoryTitles       Category = "titles"
	CategoryGenres       Category = "genres"
	CategoryRatings      Category = "ratings"
	CategoryBusiness     Category = "business"
	CategoryDirectors    Category = "directors"
	CategoryRunningTimes Category = "running_times"
	CategoryCountries    Category = "countries"
	CategoryLanguages    Category = "languages"
	CategoryMPAA         Category = "mpaa"
)

// DefaultOrder runs the title pass first so every other pass has records to
// enrich.
var DefaultOrder = []Category{
	CategoryTitles,
	CategoryGenres,
	CategoryRatings,
	CategoryBusiness,
	CategoryDirectors,
	CategoryRunningTimes,
	CategoryCountries,
	CategoryLanguages,
	CategoryMPAA,
}

var defaultFileNames = map[Category]string{
	CategoryTitles:       "movies.list",
	CategoryGenres:       "genres.list",
	CategoryRatings:      "ratings.list",
	CategoryBusiness:     "business.list",
	CategoryDirectors:    "directors.list",
	CategoryRunningTimes: "running-times.list",
	CategoryCountries:    "countries.list",
	CategoryLanguages:    "language.list",
	CategoryMPAA:         "mpaa-ratings-reasons.list",
}

// DefaultFileName returns the conventional dump name for c.
func (c Category) DefaultFileName() string {
	return defaultFileNames[c]
}

// ParseCategory resolves a category name.
func ParseCategory(name string) (Category, error) {
	candidate := Category(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := defaultFileNames[candidate]; !ok {
		return "", fmt.Errorf("unknown source category %q", name)
	}
	return candidate, nil
}
