// Package sqlast defines the AST types shared by the parser, formatter, diff
// engine, and migrate engine. A Statement is a tagged union over the DDL
// forms the rest of the module understands; anything outside that set is
// carried as an Unsupported statement rather than losing information or
// panicking during parse.
package sqlast
