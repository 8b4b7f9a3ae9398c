package catalog

import "sort"

// Counter counts occurrences of labels and remembers first-seen order.
type Counter struct {
	counts map[string]int
	order  []string
}

// Entry is one label and its count.
type Entry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Add increments label by one.
func (c *Counter) Add(label string) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// Count returns the count for label.
func (c *Counter) Count(label string) int {
	return c.counts[label]
}

// Len returns the number of distinct labels.
func (c *Counter) Len() int {
	return len(c.order)
}

// Labels returns labels in first-seen order.
func (c *Counter) Labels() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Sorted returns entries by descending count, ties broken by label.
func (c *Counter) Sorted() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, Entry{Label: label, Count: c.counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Tally groups the per-category counters filled in during ingestion.
type Tally struct {
	Genre    Counter
	Country  Counter
	Language Counter
	MPAA     Counter
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{}
}
