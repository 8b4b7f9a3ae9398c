// Package currency converts monetary amounts between currencies using a
// frozen offline rate table.
//
// The table is compiled into the binary and never refreshed: figures in the
// business dump span decades, so a single approximate snapshot (plus
// hand-curated rates for currencies that no longer exist) is good enough to
// compare budgets and grosses in one base unit.
package currency
