// Package catalog owns the merged, in-memory view of every cataloged work.
//
// A Registry maps the exact title string found in the dumps to a Record, a
// bag of optional attributes drawn from a closed key set. Records are created
// once, by the title pass, and enriched by every other pass through the
// narrower Mutator capability so a later pass can never resurrect a title the
// title pass skipped. Tally carries the per-category frequency counters that
// passes accumulate alongside the registry.
package catalog
