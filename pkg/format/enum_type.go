package format

import (
	"strings"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

func (f *Formatter) createType(stmt *sqlast.CreateType) string {
	header := strings.Join([]string{f.keyword("CREATE TYPE"), f.qualifiedName(stmt.Name), f.keyword("AS")}, " ")

	switch {
	case stmt.Enum != nil:
		labels := make([]string, len(stmt.Enum.Labels))
		for i, l := range stmt.Enum.Labels {
			labels[i] = "'" + l + "'"
		}
		return header + " " + f.keyword("ENUM") + " (" + strings.Join(labels, ", ") + ");"
	case stmt.Composite != nil:
		lines := []string{header + " ("}
		width := f.columnAlignWidth(stmt.Composite.Attributes)
		for i, attr := range stmt.Composite.Attributes {
			line := f.indent(1) + f.columnDef(attr, width)
			if i < len(stmt.Composite.Attributes)-1 {
				line += ","
			}
			lines = append(lines, line)
		}
		lines = append(lines, ")")
		return strings.Join(lines, "\n") + ";"
	default:
		return header + ";"
	}
}

func (f *Formatter) alterType(stmt *sqlast.AlterType) string {
	prefix := f.keyword("ALTER TYPE") + " " + f.qualifiedName(stmt.Name) + " "

	switch op := stmt.Operation; {
	case op.Rename != nil:
		return prefix + f.keyword("RENAME TO") + " " + f.identifier(op.Rename.NewName) + ";"
	case op.AddValue != nil:
		return prefix + f.addValueOp(op.AddValue) + ";"
	case op.RenameValue != nil:
		return prefix + f.keyword("RENAME VALUE") + " '" + op.RenameValue.From + "' " + f.keyword("TO") + " '" + op.RenameValue.To + "';"
	default:
		return prefix + ";"
	}
}

func (f *Formatter) addValueOp(op *sqlast.AddValueOp) string {
	parts := []string{f.keyword("ADD VALUE")}
	if op.IfNotExists {
		parts = append(parts, f.keyword("IF NOT EXISTS"))
	}
	parts = append(parts, "'"+op.Value+"'")

	if op.Position != nil && op.Position.HasPosition {
		if op.Position.IsBefore {
			parts = append(parts, f.keyword("BEFORE"), "'"+op.Position.Before+"'")
		} else {
			parts = append(parts, f.keyword("AFTER"), "'"+op.Position.After+"'")
		}
	}
	return strings.Join(parts, " ")
}
