// Package ingest parses the nine catalog dumps and merges them into a
// catalog.Registry.
//
// Every dump has its own grammar: tab separated pairs, a fixed-width ratings
// table, a tab hierarchy of directors, and dash delimited blocks for business
// and MPAA data. Each parser owns its tokenizer and a named merge policy
// (first wins, replace, append, max wins, keep unless parsed) and reports what
// it did through Stats. Malformed lines, unknown titles, and unparsable values
// are counted and skipped; nothing short of a read error stops a pass.
//
// Only the title parser receives the catalog.Creator capability. Every other
// parser works through catalog.Mutator and therefore can only enrich titles
// that already exist, which is why the title pass runs first in the default
// order.
package ingest
