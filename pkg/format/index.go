package format

import (
	"strings"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

func (f *Formatter) createIndex(stmt *sqlast.CreateIndex) string {
	parts := []string{f.keyword("CREATE")}
	if stmt.Unique {
		parts = append(parts, f.keyword("UNIQUE"))
	}
	parts = append(parts, f.keyword("INDEX"))
	if stmt.IfNotExists {
		parts = append(parts, f.keyword("IF NOT EXISTS"))
	}
	if stmt.HasName {
		parts = append(parts, f.identifier(stmt.Name))
	}
	parts = append(parts, f.keyword("ON"), f.qualifiedName(stmt.TableName))

	cols := make([]string, len(stmt.Columns))
	for i, c := range stmt.Columns {
		cols[i] = f.identifier(c)
	}
	parts = append(parts, "("+strings.Join(cols, ", ")+")")

	return strings.Join(parts, " ") + ";"
}
