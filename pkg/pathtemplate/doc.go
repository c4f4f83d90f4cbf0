// Package pathtemplate parses a migration file's path into a template that
// describes how to generate the next migration's path with the same shape
// (spec.md §4.5), grounded on original_source/src/path_template.rs.
//
// No library in the module's dependency surface models this mini-grammar
// (a handful of numeric/date/semver alternatives glued together with
// literal separators), so the scanner here is hand-rolled on top of
// "regexp"/"strconv"/"time" rather than adapting participle, which is
// already committed to pkg/parser's SQL grammar and isn't a good fit for
// scanning filesystem paths token-by-token with backtracking.
package pathtemplate
