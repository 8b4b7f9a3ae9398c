// Package main hosts the imdblist CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration once, runs the ingest pipeline
// over the plain-text dumps, and surfaces the result as an exported table,
// a distribution summary, a title search, or a preflight report. The heavy
// lifting lives in the internal packages; commands here only wire them
// together and render output.
package main
