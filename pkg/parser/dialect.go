// Package parser adapts a SQL text plus a dialect selector into the
// statement list the rest of the module works with (internal/sqlast). It is
// the only package that knows anything about concrete SQL syntax; diff,
// migrate, and the name generator all operate purely on internal/sqlast
// values.
//
// Parsing is built on github.com/alecthomas/participle/v2, generalizing the
// single-dialect ClickHouse DDL grammar this module's ancestor used into a
// dialect-parameterized grammar covering the statement subset internal/sqlast
// models. Dialect affects only the identifier quoting style pkg/format
// prints; the lexer and the grammar are shared.
package parser

import "fmt"

// Dialect selects the identifier quoting convention used when formatting.
// The lexer and grammar accepted are dialect-independent: they cover the
// statement subset internal/sqlast models, not full dialect-specific syntax.
type Dialect string

const (
	Ansi        Dialect = "ansi"
	BigQuery    Dialect = "bigquery"
	ClickHouse  Dialect = "clickhouse"
	Databricks  Dialect = "databricks"
	DuckDB      Dialect = "duckdb"
	Generic     Dialect = "generic"
	Hive        Dialect = "hive"
	MsSQL       Dialect = "mssql"
	MySQL       Dialect = "mysql"
	PostgreSQL  Dialect = "postgresql"
	RedshiftSQL Dialect = "redshift"
	Snowflake   Dialect = "snowflake"
	SQLite      Dialect = "sqlite"
)

// dialects is the closed enumeration spec.md §4.3 names, in no particular
// order beyond matching the spec's listing.
var dialects = map[Dialect]bool{
	Ansi: true, BigQuery: true, ClickHouse: true, Databricks: true,
	DuckDB: true, Generic: true, Hive: true, MsSQL: true, MySQL: true,
	PostgreSQL: true, RedshiftSQL: true, Snowflake: true, SQLite: true,
}

// ParseDialect validates a dialect name, returning an error naming the bad
// value if it isn't one of the closed set. An empty string is not valid;
// callers that want the default should pass Generic explicitly.
func ParseDialect(name string) (Dialect, error) {
	d := Dialect(name)
	if !dialects[d] {
		return "", fmt.Errorf("unknown dialect %q", name)
	}
	return d, nil
}

// QuoteChar reports the identifier-quoting character pkg/format should wrap
// a dialect's identifiers in when quoting is needed: backtick for the MySQL/
// ClickHouse family, square bracket for MsSQL, ANSI double quote otherwise.
// The lexer itself accepts either quote style regardless of dialect (see the
// QuotedIdent pattern in lexer.go), so this affects only pretty-printed output.
func (d Dialect) QuoteChar() byte {
	switch d {
	case MySQL, ClickHouse:
		return '`'
	case MsSQL:
		return '['
	default:
		return '"'
	}
}
