// Package export flattens the merged registry into a table and writes it as
// tab-separated text or as a SQLite database.
//
// A Table decides the header and renders one row per record, applying the
// genre filters, the drop-incomplete rule and the missing-value placeholders.
// An Exporter streams those rows into a sink while holding an advisory lock
// on the output path, so two runs never interleave their writes.
package export
