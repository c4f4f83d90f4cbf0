package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ddlLexer tokenizes the DDL subset internal/sqlast models. It accepts both
// double-quoted and backtick-quoted identifiers regardless of dialect, since
// the grammar is shared; a dialect only changes which style a pretty-printer
// chooses to emit (pkg/format), never which one is accepted here.
var ddlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*`},
	{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
	{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
	{Name: "QuotedIdent", Pattern: "`([^`\\\\]|\\\\.)*`" + `|"([^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[(),.;=<>!+\-*/\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// ddlKeywords lists every reserved word the grammar matches literally.
// participle.CaseInsensitive makes them match regardless of source casing,
// following the teacher's pkg/parser/parser.go convention.
var ddlKeywords = []string{
	"CREATE", "ALTER", "DROP", "TABLE", "INDEX", "TYPE", "EXTENSION", "DOMAIN",
	"IF", "NOT", "EXISTS", "ON", "CLUSTER", "UNIQUE", "ADD", "COLUMN", "RENAME",
	"TO", "SET", "DATA", "DEFAULT", "NULL", "GENERATED", "ALWAYS", "BY",
	"IDENTITY", "AS", "ENUM", "VALUE", "BEFORE", "AFTER", "CASCADE", "RESTRICT",
	"PURGE", "TEMPORARY", "AND", "USING", "CHECK", "PRIMARY", "KEY", "REPLACE",
	"OR", "START", "WITH",
}

var ddlParser = participle.MustBuild[grammar](
	participle.Lexer(ddlLexer),
	participle.Elide("Comment", "MultilineComment", "Whitespace"),
	participle.CaseInsensitive(ddlKeywords...),
	participle.UseLookahead(4),
)
