package format

import (
	"strings"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

func (f *Formatter) createTable(stmt *sqlast.CreateTable) string {
	header := f.buildCreate("TABLE", stmt.IfNotExists, f.qualifiedName(stmt.Name))
	lines := []string{strings.Join(header, " ") + " ("}

	width := f.columnAlignWidth(stmt.Columns)
	for i, col := range stmt.Columns {
		line := f.indent(1) + f.columnDef(col, width)
		if i < len(stmt.Columns)-1 {
			line += ","
		}
		lines = append(lines, line)
	}
	lines = append(lines, ")")

	if stmt.OnCluster != "" {
		lines[len(lines)-1] += " " + f.keyword("ON CLUSTER") + " " + f.identifier(stmt.OnCluster)
	}

	return strings.Join(lines, "\n") + ";"
}

func (f *Formatter) columnAlignWidth(cols []sqlast.ColumnDef) int {
	if !f.options.AlignColumns {
		return 0
	}
	width := 0
	for _, c := range cols {
		if n := len(f.identifier(c.Name)); n > width {
			width = n
		}
	}
	return width
}

func (f *Formatter) columnDef(col sqlast.ColumnDef, alignWidth int) string {
	name := f.identifier(col.Name)
	if alignWidth > 0 {
		name = padRight(name, alignWidth)
	}

	parts := []string{name, col.DataType}
	for _, opt := range col.Options {
		parts = append(parts, f.columnOption(opt))
	}
	return strings.Join(parts, " ")
}

func (f *Formatter) columnOption(opt sqlast.ColumnOption) string {
	switch opt.Kind {
	case sqlast.ColumnOptionNotNull:
		return f.keyword("NOT NULL")
	case sqlast.ColumnOptionDefault:
		return f.keyword("DEFAULT") + " " + opt.Default
	case sqlast.ColumnOptionGenerated:
		return f.generatedOption(opt.Generated)
	default:
		return opt.Raw
	}
}

func (f *Formatter) generatedOption(g *sqlast.GeneratedOption) string {
	if g == nil {
		return ""
	}
	s := f.keyword("GENERATED") + " " + f.keyword(string(g.As)) + " " + f.keyword("AS IDENTITY")
	if g.SequenceOptions != "" {
		s += " (" + g.SequenceOptions + ")"
	}
	return s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (f *Formatter) alterTable(stmt *sqlast.AlterTable) string {
	header := []string{f.keyword("ALTER TABLE")}
	if stmt.IfExists {
		header = append(header, f.keyword("IF EXISTS"))
	}
	header = append(header, f.qualifiedName(stmt.Name))

	lines := []string{strings.Join(header, " ")}
	for i, op := range stmt.Operations {
		line := f.indent(1) + f.alterTableOp(op)
		if i < len(stmt.Operations)-1 {
			line += ","
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n") + ";"
}

func (f *Formatter) alterTableOp(op sqlast.AlterTableOperation) string {
	switch {
	case op.AddColumn != nil:
		parts := []string{f.keyword("ADD COLUMN")}
		if op.AddColumn.IfNotExists {
			parts = append(parts, f.keyword("IF NOT EXISTS"))
		}
		return strings.Join(append(parts, f.columnDef(op.AddColumn.Column, 0)), " ")
	case op.DropColumn != nil:
		parts := []string{f.keyword("DROP COLUMN")}
		if op.DropColumn.IfExists {
			parts = append(parts, f.keyword("IF EXISTS"))
		}
		return strings.Join(append(parts, f.identifier(op.DropColumn.Name)), " ")
	case op.AlterColumn != nil:
		return f.alterColumnOp(op.AlterColumn)
	case op.RenameColumn != nil:
		return strings.Join([]string{
			f.keyword("RENAME COLUMN"), f.identifier(op.RenameColumn.OldName),
			f.keyword("TO"), f.identifier(op.RenameColumn.NewName),
		}, " ")
	case op.RenameTable != nil:
		return f.keyword("RENAME TO") + " " + f.qualifiedName(op.RenameTable.NewName)
	case op.Unsupported != nil:
		return op.Unsupported.Raw
	default:
		return ""
	}
}

func (f *Formatter) alterColumnOp(op *sqlast.AlterColumnOp) string {
	prefix := f.keyword("ALTER COLUMN") + " " + f.identifier(op.Name)
	switch op.Kind {
	case sqlast.AlterColumnSetNotNull:
		return prefix + " " + f.keyword("SET NOT NULL")
	case sqlast.AlterColumnDropNotNull:
		return prefix + " " + f.keyword("DROP NOT NULL")
	case sqlast.AlterColumnSetDefault:
		return prefix + " " + f.keyword("SET DEFAULT") + " " + op.Default
	case sqlast.AlterColumnDropDefault:
		return prefix + " " + f.keyword("DROP DEFAULT")
	case sqlast.AlterColumnSetDataType:
		return prefix + " " + f.keyword("SET DATA TYPE") + " " + op.DataType
	case sqlast.AlterColumnAddGenerated:
		return prefix + " " + f.keyword("ADD") + " " + f.generatedOption(op.Generated)
	default:
		return prefix
	}
}
