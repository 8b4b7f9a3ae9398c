// Package listfile opens catalog dump files and yields their lines as UTF-8
// text.
//
// Dumps are single-byte encoded (ISO-8859-1 by default); the charset is
// resolved through the IANA registry so any encoding golang.org/x/text knows
// can be configured. Readers track how many raw bytes have been consumed so
// callers can report progress on multi-gigabyte inputs.
package listfile
