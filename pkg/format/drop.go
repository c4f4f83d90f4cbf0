package format

import (
	"strings"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

var dropObjectType = map[sqlast.ObjectKind]string{
	sqlast.KindTable: "TABLE",
	sqlast.KindIndex: "INDEX",
	sqlast.KindType:  "TYPE",
}

func (f *Formatter) drop(stmt *sqlast.Drop) string {
	parts := f.buildDrop(dropObjectType[stmt.Kind], stmt.IfExists, stmt.Names)
	if stmt.Cascade {
		parts = append(parts, f.keyword("CASCADE"))
	}
	if stmt.Restrict {
		parts = append(parts, f.keyword("RESTRICT"))
	}
	if stmt.Purge {
		parts = append(parts, f.keyword("PURGE"))
	}
	if stmt.Temporary {
		parts = append(parts, f.keyword("TEMPORARY"))
	}
	return strings.Join(parts, " ") + ";"
}
