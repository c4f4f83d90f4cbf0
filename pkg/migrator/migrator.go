// Package migrator applies a migration (a list of ALTER/DROP/CREATE
// statements, typically produced by pkg/schemadiff) to a schema tree and
// returns the resulting tree (spec.md §4.2), grounded on
// original_source/src/migration.rs's Migrate trait.
//
// Migrate runs two passes: a rewrite pass over A, where every CreateTable,
// CreateIndex, CreateType, CreateExtension, and CreateDomain is matched
// against M looking for the ALTER/DROP statement that targets it (eliminated
// on a DROP, mutated on an ALTER, left alone if no match is found); and an
// append pass over M, where its own CREATE statements are copied onto the
// end of the result as wholly new objects.
package migrator

import (
	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

// Migrate applies m to a and returns the resulting tree. a must contain only
// Create* statements (it's meant to be the output of a prior parse of actual
// schema, not of a migration); anything else fails with NotImplemented.
func Migrate(a, m sqlast.Tree) (sqlast.Tree, error) {
	var out []sqlast.Statement

	for _, sa := range a.Statements {
		next, err := migrateStatement(sa, m)
		if err != nil {
			return sqlast.Tree{}, err
		}
		if next != nil {
			out = append(out, *next)
		}
	}

	for _, sb := range m.Statements {
		if sb.IsCreate() {
			out = append(out, sb)
		}
	}

	return sqlast.New(out), nil
}

// migrateStatement returns the statement sa becomes after applying m, or nil
// if m eliminates it (a DROP matched it).
func migrateStatement(sa sqlast.Statement, m sqlast.Tree) (*sqlast.Statement, error) {
	switch {
	case sa.CreateTable != nil:
		return migrateCreateTable(sa.CreateTable, m)
	case sa.CreateIndex != nil:
		return migrateCreateIndex(sa.CreateIndex, m)
	case sa.CreateType != nil:
		return migrateCreateType(sa.CreateType, m)
	case sa.CreateExtension != nil:
		return migrateCreateExtension(sa.CreateExtension, m)
	case sa.CreateDomain != nil:
		return migrateCreateDomain(sa.CreateDomain, m)
	default:
		return nil, &Error{Kind: NotImplemented, A: &sa}
	}
}

func migrateCreateTable(ct *sqlast.CreateTable, m sqlast.Tree) (*sqlast.Statement, error) {
	for i := range m.Statements {
		sb := m.Statements[i]
		switch {
		case sb.AlterTable != nil && sb.AlterTable.Name == ct.Name:
			next, err := applyAlterTable(*ct, sb.AlterTable.Operations)
			if err != nil {
				return nil, err
			}
			return &sqlast.Statement{CreateTable: &next}, nil
		case sb.Drop != nil && sb.Drop.Kind == sqlast.KindTable && len(sb.Drop.Names) == 1 && sb.Drop.Names[0] == ct.Name:
			return nil, nil
		}
	}
	return &sqlast.Statement{CreateTable: ct}, nil
}

func migrateCreateIndex(ci *sqlast.CreateIndex, m sqlast.Tree) (*sqlast.Statement, error) {
	if !ci.HasName {
		// no DROP INDEX can be matched to an unnamed index by name, so it
		// always passes through untouched.
		return &sqlast.Statement{CreateIndex: ci}, nil
	}
	for i := range m.Statements {
		sb := m.Statements[i]
		if sb.Drop != nil && sb.Drop.Kind == sqlast.KindIndex && len(sb.Drop.Names) == 1 && sb.Drop.Names[0] == ci.Name {
			return nil, nil
		}
	}
	return &sqlast.Statement{CreateIndex: ci}, nil
}

func migrateCreateType(ct *sqlast.CreateType, m sqlast.Tree) (*sqlast.Statement, error) {
	for i := range m.Statements {
		sb := m.Statements[i]
		switch {
		case sb.AlterType != nil && sb.AlterType.Name == ct.Name:
			next, err := applyAlterType(*ct, sb.AlterType.Operation)
			if err != nil {
				return nil, err
			}
			return &sqlast.Statement{CreateType: &next}, nil
		case sb.Drop != nil && sb.Drop.Kind == sqlast.KindType && len(sb.Drop.Names) == 1 && sb.Drop.Names[0] == ct.Name:
			return nil, nil
		}
	}
	return &sqlast.Statement{CreateType: ct}, nil
}

func migrateCreateExtension(ce *sqlast.CreateExtension, m sqlast.Tree) (*sqlast.Statement, error) {
	for i := range m.Statements {
		sb := m.Statements[i]
		if sb.DropExtension != nil && contains(sb.DropExtension.Names, ce.Name) {
			return nil, nil
		}
	}
	return &sqlast.Statement{CreateExtension: ce}, nil
}

func migrateCreateDomain(cd *sqlast.CreateDomain, m sqlast.Tree) (*sqlast.Statement, error) {
	for i := range m.Statements {
		sb := m.Statements[i]
		if sb.DropDomain != nil && sb.DropDomain.Name == cd.Name {
			return nil, nil
		}
	}
	return &sqlast.Statement{CreateDomain: cd}, nil
}

// applyAlterTable folds ops into t's column list, returning the resulting
// CreateTable. The original CreateTable is never mutated in place; a new
// column slice is built so callers holding the old *CreateTable still see
// the pre-migration shape.
func applyAlterTable(t sqlast.CreateTable, ops []sqlast.AlterTableOperation) (sqlast.CreateTable, error) {
	cols := append([]sqlast.ColumnDef(nil), t.Columns...)

	for _, op := range ops {
		switch {
		case op.AddColumn != nil:
			cols = append(cols, op.AddColumn.Column)
		case op.DropColumn != nil:
			cols = dropColumn(cols, op.DropColumn.Name)
		case op.AlterColumn != nil:
			var err error
			cols, err = alterColumn(cols, op.AlterColumn)
			if err != nil {
				return sqlast.CreateTable{}, err
			}
		case op.RenameColumn != nil:
			cols = renameColumn(cols, op.RenameColumn)
		case op.RenameTable != nil:
			t.Name = op.RenameTable.NewName
		default:
			return sqlast.CreateTable{}, &Error{
				Kind: AlterTableOpNotImplemented,
				A:    &sqlast.Statement{CreateTable: &t},
				Op:   "UNSUPPORTED",
			}
		}
	}

	t.Columns = cols
	return t, nil
}

func dropColumn(cols []sqlast.ColumnDef, name string) []sqlast.ColumnDef {
	out := cols[:0:0]
	for _, c := range cols {
		if c.Name != name {
			out = append(out, c)
		}
	}
	return out
}

func renameColumn(cols []sqlast.ColumnDef, op *sqlast.RenameColumnOp) []sqlast.ColumnDef {
	out := append([]sqlast.ColumnDef(nil), cols...)
	for i := range out {
		if out[i].Name == op.OldName {
			out[i].Name = op.NewName
		}
	}
	return out
}

func alterColumn(cols []sqlast.ColumnDef, op *sqlast.AlterColumnOp) ([]sqlast.ColumnDef, error) {
	out := append([]sqlast.ColumnDef(nil), cols...)
	for i := range out {
		if out[i].Name != op.Name {
			continue
		}

		switch op.Kind {
		case sqlast.AlterColumnSetNotNull:
			out[i].Options = append(out[i].Options, sqlast.ColumnOption{Kind: sqlast.ColumnOptionNotNull})
		case sqlast.AlterColumnDropNotNull:
			out[i].Options = filterOptions(out[i].Options, sqlast.ColumnOptionNotNull)
		case sqlast.AlterColumnSetDefault:
			opts := filterOptions(out[i].Options, sqlast.ColumnOptionDefault)
			out[i].Options = append(opts, sqlast.ColumnOption{Kind: sqlast.ColumnOptionDefault, Default: op.Default})
		case sqlast.AlterColumnDropDefault:
			out[i].Options = filterOptions(out[i].Options, sqlast.ColumnOptionDefault)
		case sqlast.AlterColumnSetDataType:
			out[i].DataType = op.DataType
		case sqlast.AlterColumnAddGenerated:
			opts := filterOptions(out[i].Options, sqlast.ColumnOptionGenerated)
			out[i].Options = append(opts, sqlast.ColumnOption{Kind: sqlast.ColumnOptionGenerated, Generated: op.Generated})
		default:
			return nil, &Error{Kind: AlterTableOpNotImplemented, Op: string(op.Kind)}
		}
	}
	return out, nil
}

func filterOptions(opts []sqlast.ColumnOption, kind sqlast.ColumnOptionKind) []sqlast.ColumnOption {
	out := opts[:0:0]
	for _, o := range opts {
		if o.Kind != kind {
			out = append(out, o)
		}
	}
	return out
}

// applyAlterType applies a single ALTER TYPE operation to t's representation.
func applyAlterType(t sqlast.CreateType, op sqlast.AlterTypeOperation) (sqlast.CreateType, error) {
	switch {
	case op.Rename != nil:
		t.Name = op.Rename.NewName
		return t, nil
	case op.AddValue != nil:
		if t.Enum == nil {
			return sqlast.CreateType{}, invalidTypeOp(t, op, "ADD_VALUE")
		}
		t.Enum = &sqlast.EnumRepresentation{Labels: addEnumValue(t.Enum.Labels, op.AddValue)}
		return t, nil
	case op.RenameValue != nil:
		if t.Enum == nil {
			return sqlast.CreateType{}, invalidTypeOp(t, op, "RENAME_VALUE")
		}
		labels := make([]string, len(t.Enum.Labels))
		for i, l := range t.Enum.Labels {
			if l == op.RenameValue.From {
				labels[i] = op.RenameValue.To
			} else {
				labels[i] = l
			}
		}
		t.Enum = &sqlast.EnumRepresentation{Labels: labels}
		return t, nil
	default:
		return sqlast.CreateType{}, &Error{Kind: NotImplemented, A: &sqlast.Statement{CreateType: &t}}
	}
}

func invalidTypeOp(t sqlast.CreateType, op sqlast.AlterTypeOperation, name string) error {
	return &Error{
		Kind: AlterTypeInvalidOp,
		A:    &sqlast.Statement{CreateType: &t},
		B:    &sqlast.Statement{AlterType: &sqlast.AlterType{Name: t.Name, Operation: op}},
		Op:   name,
	}
}

// addEnumValue inserts value into labels per pos, defaulting to append when
// pos is nil. A BEFORE target that can't be found inserts at the start; an
// AFTER target that can't be found appends at the end.
func addEnumValue(labels []string, add *sqlast.AddValueOp) []string {
	out := append([]string(nil), labels...)

	if add.Position == nil || !add.Position.HasPosition {
		return append(out, add.Value)
	}

	if add.Position.IsBefore {
		idx := indexOf(out, add.Position.Before)
		if idx < 0 {
			idx = 0
		}
		return insertAt(out, idx, add.Value)
	}

	idx := indexOf(out, add.Position.After)
	if idx < 0 {
		return append(out, add.Value)
	}
	return insertAt(out, idx+1, add.Value)
}

func indexOf(labels []string, v string) int {
	for i, l := range labels {
		if l == v {
			return i
		}
	}
	return -1
}

func insertAt(labels []string, idx int, v string) []string {
	out := make([]string, 0, len(labels)+1)
	out = append(out, labels[:idx]...)
	out = append(out, v)
	out = append(out, labels[idx:]...)
	return out
}

func contains(names []string, v string) bool {
	for _, n := range names {
		if n == v {
			return true
		}
	}
	return false
}
