package format

import (
	"strings"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

func (f *Formatter) createDomain(stmt *sqlast.CreateDomain) string {
	parts := []string{
		f.keyword("CREATE DOMAIN"), f.qualifiedName(stmt.Name),
		f.keyword("AS"), stmt.DataType,
	}
	// Constraints holds the raw tokens between CHECK's parens, not one
	// string per clause (see pkg/parser's createDomainStmt grammar), so a
	// single CHECK(...) is reconstituted by re-joining them with spaces.
	if len(stmt.Constraints) > 0 {
		parts = append(parts, f.keyword("CHECK")+" ("+strings.Join(stmt.Constraints, " ")+")")
	}
	return strings.Join(parts, " ") + ";"
}

func (f *Formatter) dropDomain(stmt *sqlast.DropDomain) string {
	parts := f.buildDrop("DOMAIN", stmt.IfExists, []string{stmt.Name})
	return strings.Join(parts, " ") + ";"
}
