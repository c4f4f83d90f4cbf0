package format

import (
	"strings"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

func (f *Formatter) createExtension(stmt *sqlast.CreateExtension) string {
	parts := f.buildCreate("EXTENSION", stmt.IfNotExists, f.identifier(stmt.Name))
	return strings.Join(parts, " ") + ";"
}

func (f *Formatter) dropExtension(stmt *sqlast.DropExtension) string {
	parts := f.buildDrop("EXTENSION", stmt.IfExists, stmt.Names)
	if stmt.Cascade {
		parts = append(parts, f.keyword("CASCADE"))
	}
	return strings.Join(parts, " ") + ";"
}
