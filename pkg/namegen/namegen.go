package namegen

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

const defaultMaxLen = 50

// GenerateName derives a migration name from tree's statements, truncating
// to the default maximum length (50) by dropping trailing parts and
// appending "__etc" when the joined name would otherwise be too long. ok is
// false when tree contributes no nameable parts at all.
func GenerateName(tree sqlast.Tree) (name string, ok bool) {
	return GenerateNameMax(tree, defaultMaxLen)
}

// GenerateNameMax is GenerateName with an explicit maximum length.
func GenerateNameMax(tree sqlast.Tree, maxLen int) (name string, ok bool) {
	parts := make([]string, 0, len(tree.Statements))
	for _, s := range tree.Statements {
		if part, ok := statementName(s); ok {
			parts = append(parts, part)
		}
	}

	suffix := false
	name = strings.Join(parts, "__")
	for len(name) > maxLen && len(parts) > 0 {
		suffix = true
		parts = parts[:len(parts)-1]
		name = strings.Join(parts, "__")
	}

	if suffix {
		name += "__etc"
	}

	return name, name != ""
}

func statementName(s sqlast.Statement) (string, bool) {
	switch {
	case s.CreateTable != nil:
		return fmt.Sprintf("create_%s", s.CreateTable.Name), true
	case s.AlterTable != nil:
		return alterTableName(s.AlterTable), true
	case s.Drop != nil:
		return dropName(string(s.Drop.Kind), s.Drop.Names), true
	case s.CreateIndex != nil:
		suffix := ""
		if s.CreateIndex.HasName {
			suffix = "_" + s.CreateIndex.Name
		}
		return fmt.Sprintf("create_%s%s", s.CreateIndex.TableName, suffix), true
	case s.CreateType != nil:
		return fmt.Sprintf("create_type_%s", s.CreateType.Name), true
	case s.AlterType != nil:
		return fmt.Sprintf("alter_type_%s", s.AlterType.Name), true
	case s.CreateExtension != nil:
		return fmt.Sprintf("create_extension_%s", s.CreateExtension.Name), true
	case s.DropExtension != nil:
		return dropName(string(sqlast.KindExtension), s.DropExtension.Names), true
	case s.CreateDomain != nil:
		return fmt.Sprintf("create_domain_%s", s.CreateDomain.Name), true
	case s.DropDomain != nil:
		return dropName(string(sqlast.KindDomain), []string{s.DropDomain.Name}), true
	default:
		return "", false
	}
}

func dropName(kind string, names []string) string {
	prefix := ""
	if sqlast.ObjectKind(kind) != sqlast.KindTable {
		prefix = strings.ToLower(kind) + "_"
	}
	return fmt.Sprintf("drop_%s%s", prefix, strings.Join(names, "_and_"))
}

// alterTableName derives an ALTER TABLE statement's name part. A
// RenameTable operation flips the verb from "alter" to "rename"; more than
// two operations, or none at all, collapse to a bare "alter_<table>"/
// "rename_<table>" rather than listing every op.
func alterTableName(a *sqlast.AlterTable) string {
	verb := "alter"
	var ops []string
	for _, op := range a.Operations {
		switch {
		case op.AddColumn != nil:
			ops = append(ops, "add_"+op.AddColumn.Column.Name)
		case op.DropColumn != nil:
			ops = append(ops, "drop_"+op.DropColumn.Name)
		case op.RenameColumn != nil:
			ops = append(ops, fmt.Sprintf("rename_%s_to_%s", op.RenameColumn.OldName, op.RenameColumn.NewName))
		case op.AlterColumn != nil:
			ops = append(ops, "alter_"+op.AlterColumn.Name)
		case op.RenameTable != nil:
			verb = "rename"
			ops = append(ops, "to_"+op.RenameTable.NewName)
		}
	}

	if len(ops) == 0 || len(ops) > 2 {
		return fmt.Sprintf("%s_%s", verb, a.Name)
	}
	return fmt.Sprintf("%s_%s_%s", verb, a.Name, strings.Join(ops, "_"))
}
