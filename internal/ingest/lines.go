package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"imdblist/internal/catalog"
)

// LineSource yields the lines of one dump.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// blockDelimiter opens and closes records in the block formats.
var blockDelimiter = strings.Repeat("-", 27)

var tabRun = regexp.MustCompile(`\t+`)

func splitTabs(line string) []string {
	return tabRun.Split(line, -1)
}

func isDelimiter(line string) bool {
	return strings.HasPrefix(line, blockDelimiter)
}

// parseNumber reads a decimal in the dump's en_US convention, where commas
// group thousands.
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// toUnits truncates a converted amount to whole base units.
func toUnits(v float64) (int64, bool) {
	if math.IsNaN(v) || v >= math.MaxInt64 || v <= math.MinInt64 {
		return 0, false
	}
	return int64(v), true
}

func exists(m catalog.Mutator, title string) bool {
	return m.Update(title, func(*catalog.Record) {})
}

// indexFold finds substr in s ignoring ASCII case, returning a byte offset
// into s.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
