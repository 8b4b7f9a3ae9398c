package ingest

import "imdblist/internal/catalog"

// A writePolicy decides whether a pass may write key on rec.
type writePolicy func(rec *catalog.Record, key catalog.Key) bool

// firstWins keeps the first value ever stored.
func firstWins(rec *catalog.Record, key catalog.Key) bool {
	return !rec.Has(key)
}

// replace lets every matching line overwrite the previous value.
func replace(*catalog.Record, catalog.Key) bool {
	return true
}

// keepUnlessParsed blocks writes only once a non-negative value is stored, so
// a later line may replace an earlier unparsable one.
func keepUnlessParsed(rec *catalog.Record, key catalog.Key) bool {
	if !rec.Has(key) {
		return true
	}
	return rec.Length() < 0
}

// appendUnique adds value to a multi-valued key, reporting whether it was new.
func appendUnique(rec *catalog.Record, key catalog.Key, value string) bool {
	switch key {
	case catalog.KeyGenre:
		return rec.AddGenre(value)
	case catalog.KeyDirector:
		return rec.AddDirector(value)
	default:
		return false
	}
}

// maxWins tracks the largest candidate seen within a block.
type maxWins struct {
	value float64
	set   bool
}

func (m *maxWins) offer(v float64) {
	if !m.set || v > m.value {
		m.value = v
		m.set = true
	}
}

// lastWins tracks the most recent candidate seen within a block.
type lastWins struct {
	value float64
	set   bool
}

func (l *lastWins) offer(v float64) {
	l.value = v
	l.set = true
}
