package format

import (
	"regexp"
	"strings"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
	"github.com/pseudomuto/sqlschema/pkg/parser"
)

// Options controls formatting behavior.
type Options struct {
	// IndentSize is the number of spaces per indent level.
	IndentSize int
	// UppercaseKeywords uppercases SQL keywords when true, lowercases otherwise.
	UppercaseKeywords bool
	// AlignColumns pads column names in a CREATE TABLE body to a common width.
	AlignColumns bool
}

// DefaultOptions returns the formatter's standard rendering options.
func DefaultOptions() Options {
	return Options{IndentSize: 4, UppercaseKeywords: true, AlignColumns: true}
}

// Formatter renders internal/sqlast values as SQL text for a given dialect.
type Formatter struct {
	dialect parser.Dialect
	options Options
}

// New creates a Formatter for dialect with the given options.
func New(dialect parser.Dialect, options Options) *Formatter {
	return &Formatter{dialect: dialect, options: options}
}

// NewDefault creates a Formatter for dialect with DefaultOptions.
func NewDefault(dialect parser.Dialect) *Formatter {
	return New(dialect, DefaultOptions())
}

// Tree renders every statement in t, each terminated by ";", separated by
// blank lines (spec.md §4.4).
func (f *Formatter) Tree(t sqlast.Tree) string {
	parts := make([]string, 0, len(t.Statements))
	for _, s := range t.Statements {
		if rendered := f.Statement(s); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Statement renders a single statement, terminated by ";".
func (f *Formatter) Statement(s sqlast.Statement) string {
	switch {
	case s.CreateTable != nil:
		return f.createTable(s.CreateTable)
	case s.AlterTable != nil:
		return f.alterTable(s.AlterTable)
	case s.Drop != nil:
		return f.drop(s.Drop)
	case s.CreateIndex != nil:
		return f.createIndex(s.CreateIndex)
	case s.CreateType != nil:
		return f.createType(s.CreateType)
	case s.AlterType != nil:
		return f.alterType(s.AlterType)
	case s.CreateExtension != nil:
		return f.createExtension(s.CreateExtension)
	case s.DropExtension != nil:
		return f.dropExtension(s.DropExtension)
	case s.CreateDomain != nil:
		return f.createDomain(s.CreateDomain)
	case s.DropDomain != nil:
		return f.dropDomain(s.DropDomain)
	case s.Unsupported != nil:
		return s.Unsupported.Raw + ";"
	default:
		return ""
	}
}

func (f *Formatter) keyword(kw string) string {
	if f.options.UppercaseKeywords {
		return strings.ToUpper(kw)
	}
	return strings.ToLower(kw)
}

func (f *Formatter) indent(level int) string {
	return strings.Repeat(" ", level*f.options.IndentSize)
}

// simpleIdent matches an identifier plain enough to print unquoted: this
// keeps everyday output readable rather than wrapping every name in quote
// marks the way the teacher's always-backtick ClickHouse formatter does.
var simpleIdent = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// identifier quotes name in the dialect's quoting style when it isn't a
// plain lowercase/underscore identifier.
func (f *Formatter) identifier(name string) string {
	if simpleIdent.MatchString(name) {
		return name
	}
	switch q := f.dialect.QuoteChar(); q {
	case '[':
		return "[" + name + "]"
	default:
		return string(q) + name + string(q)
	}
}

// qualifiedName renders a dotted name (e.g. schema.table), quoting each part.
func (f *Formatter) qualifiedName(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = f.identifier(p)
	}
	return strings.Join(parts, ".")
}

func (f *Formatter) buildCreate(objectType string, ifNotExists bool, name string) []string {
	parts := []string{f.keyword("CREATE " + objectType)}
	if ifNotExists {
		parts = append(parts, f.keyword("IF NOT EXISTS"))
	}
	return append(parts, name)
}

func (f *Formatter) buildDrop(objectType string, ifExists bool, names []string) []string {
	parts := []string{f.keyword("DROP " + objectType)}
	if ifExists {
		parts = append(parts, f.keyword("IF EXISTS"))
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = f.qualifiedName(n)
	}
	return append(parts, strings.Join(quoted, ", "))
}
