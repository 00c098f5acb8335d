// Package record reads semicolon-delimited CSV exports row by row.
//
// A Reader is a forward-only sequence over the rows of one file:
// open, iterate, close. Restarting means reopening the file. The header
// row is validated on open so callers fail before any data row is seen.
package record
