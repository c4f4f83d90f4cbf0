// Package format renders internal/sqlast statements back into SQL text
// (spec.md §4.4), grounded on the teacher's pkg/format package: a Formatter
// holding rendering options, one method per statement kind building a line
// (or several, for multi-column statements) out of a []string of parts
// joined by spaces, with column-name alignment for CREATE TABLE bodies.
//
// Unlike the teacher, which always backtick-quotes (ClickHouse has one
// quoting convention), this formatter picks its quote character from the
// parser.Dialect it was built with, so the same tree renders with the
// identifier-quoting style a reader of that dialect's output expects.
package format
