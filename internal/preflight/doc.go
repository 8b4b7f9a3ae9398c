// Package preflight checks that an ingest run can start: every configured
// dump is present and readable, the source charset is known, and the output
// directory accepts writes.
package preflight
