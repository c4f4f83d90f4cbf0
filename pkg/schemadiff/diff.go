// Package schemadiff computes the DDL delta between two parsed schema trees
// (spec.md §4.1), grounded on original_source/src/diff.rs's statement-pair
// comparison but restructured as a closed switch over internal/sqlast's
// tagged union rather than a pattern match over an open AST.
package schemadiff

import (
	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

// Diff compares a and b and returns the statements that, applied to a, yield
// b. It returns nil with no error when a and b are already equal. Iteration
// order mirrors a then b; no sorting is performed (spec.md §4.1's tie-break
// rule).
func Diff(a, b sqlast.Tree) ([]sqlast.Statement, error) {
	var out []sqlast.Statement
	bIndexMatched := make(map[int]bool)

	for i := range a.Statements {
		sa := a.Statements[i]
		kind, name, ok := sa.Identity()
		if !ok {
			if sa.CreateIndex != nil && !sa.CreateIndex.HasName {
				j, sb, found := findUnnamedIndexByTable(b, sa.CreateIndex.TableName, bIndexMatched)
				if !found {
					return nil, &Error{Kind: DropUnnamedIndex, A: &sa}
				}
				bIndexMatched[j] = true
				stmts, err := diffCreateIndex(sa.CreateIndex, sb.CreateIndex, &sa, sb)
				if err != nil {
					return nil, err
				}
				out = append(out, stmts...)
			}
			continue
		}
		sb, found := findByIdentity(b, kind, name)
		if !found {
			out = append(out, dropFor(kind, name))
			continue
		}
		stmts, err := diffPair(sa, *sb)
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}

	for i := range b.Statements {
		sb := b.Statements[i]
		kind, name, ok := sb.Identity()
		if !ok {
			if sb.CreateIndex != nil && !sb.CreateIndex.HasName && !bIndexMatched[i] {
				out = append(out, sb)
			}
			continue
		}
		if _, found := findByIdentity(a, kind, name); !found {
			out = append(out, sb)
		}
	}

	return out, nil
}

func findByIdentity(t sqlast.Tree, kind sqlast.ObjectKind, name string) (*sqlast.Statement, bool) {
	for i := range t.Statements {
		k, n, ok := t.Statements[i].Identity()
		if ok && k == kind && n == name {
			return &t.Statements[i], true
		}
	}
	return nil, false
}

// findUnnamedIndexByTable locates an unnamed CreateIndex in t targeting
// table, skipping indexes already claimed via matched. Unnamed indexes can't
// be paired by Identity (it deliberately excludes them), so Diff falls back
// to matching by the table they're defined on.
func findUnnamedIndexByTable(t sqlast.Tree, table string, matched map[int]bool) (int, *sqlast.Statement, bool) {
	for i := range t.Statements {
		s := &t.Statements[i]
		if matched[i] || s.CreateIndex == nil || s.CreateIndex.HasName {
			continue
		}
		if s.CreateIndex.TableName == table {
			return i, s, true
		}
	}
	return -1, nil, false
}

// dropFor builds the elimination statement for an object missing from B.
// Extensions and domains carry their own dedicated Drop* statement forms
// rather than going through the generic Drop (spec.md §4.1: "CreateExtension
// — handled at list level: missing in B → DropExtension").
func dropFor(kind sqlast.ObjectKind, name string) sqlast.Statement {
	switch kind {
	case sqlast.KindExtension:
		return sqlast.Statement{DropExtension: &sqlast.DropExtension{Names: []string{name}}}
	case sqlast.KindDomain:
		return sqlast.Statement{DropDomain: &sqlast.DropDomain{Name: name}}
	default:
		return sqlast.Statement{Drop: &sqlast.Drop{Kind: kind, Names: []string{name}}}
	}
}

// diffPair dispatches to the per-kind comparison for two statements already
// known to share an identity.
func diffPair(sa, sb sqlast.Statement) ([]sqlast.Statement, error) {
	if sqlast.New([]sqlast.Statement{sa}).Equal(sqlast.New([]sqlast.Statement{sb})) {
		return nil, nil
	}
	switch {
	case sa.CreateTable != nil && sb.CreateTable != nil:
		return diffCreateTable(sa.CreateTable, sb.CreateTable)
	case sa.CreateIndex != nil && sb.CreateIndex != nil:
		return diffCreateIndex(sa.CreateIndex, sb.CreateIndex, &sa, &sb)
	case sa.CreateType != nil && sb.CreateType != nil:
		return diffCreateType(sa.CreateType, sb.CreateType)
	case sa.CreateDomain != nil && sb.CreateDomain != nil:
		return diffCreateDomain(sa.CreateDomain, sb.CreateDomain)
	case sa.CreateExtension != nil && sb.CreateExtension != nil:
		return nil, nil // identical by identity; extensions carry no other attributes worth diffing
	default:
		return nil, &Error{Kind: NotImplemented, A: &sa, B: &sb}
	}
}

func diffCreateTable(a, b *sqlast.CreateTable) ([]sqlast.Statement, error) {
	if sqlast.New([]sqlast.Statement{{CreateTable: a}}).Equal(sqlast.New([]sqlast.Statement{{CreateTable: b}})) {
		return nil, nil
	}

	bCols := make(map[string]bool, len(b.Columns))
	for _, c := range b.Columns {
		bCols[c.Name] = true
	}
	aCols := make(map[string]bool, len(a.Columns))
	for _, c := range a.Columns {
		aCols[c.Name] = true
	}

	var ops []sqlast.AlterTableOperation
	for _, c := range a.Columns {
		if !bCols[c.Name] {
			ops = append(ops, sqlast.AlterTableOperation{DropColumn: &sqlast.DropColumnOp{Name: c.Name}})
		}
	}
	for _, c := range b.Columns {
		if !aCols[c.Name] {
			ops = append(ops, sqlast.AlterTableOperation{AddColumn: &sqlast.AddColumnOp{Column: c}})
		}
	}

	if len(ops) == 0 {
		return nil, nil
	}
	return []sqlast.Statement{{AlterTable: &sqlast.AlterTable{Name: a.Name, Operations: ops}}}, nil
}

func diffCreateIndex(a, b *sqlast.CreateIndex, sa, sb *sqlast.Statement) ([]sqlast.Statement, error) {
	if sqlast.New([]sqlast.Statement{*sa}).Equal(sqlast.New([]sqlast.Statement{*sb})) {
		return nil, nil
	}
	if !a.HasName || !b.HasName {
		return nil, &Error{Kind: CompareUnnamedIndex, A: sa, B: sb}
	}
	drop := sqlast.Statement{Drop: &sqlast.Drop{Kind: sqlast.KindIndex, Names: []string{a.Name}}}
	create := sqlast.Statement{CreateIndex: b}
	return []sqlast.Statement{drop, create}, nil
}

func diffCreateDomain(a, b *sqlast.CreateDomain) ([]sqlast.Statement, error) {
	if sqlast.New([]sqlast.Statement{{CreateDomain: a}}).Equal(sqlast.New([]sqlast.Statement{{CreateDomain: b}})) {
		return nil, nil
	}
	drop := sqlast.Statement{DropDomain: &sqlast.DropDomain{Name: a.Name, IfExists: true}}
	create := sqlast.Statement{CreateDomain: b}
	return []sqlast.Statement{drop, create}, nil
}

// diffCreateType compares two CREATE TYPE statements sharing a name. Only
// enum-vs-enum is currently supported; anything else is NotImplemented so
// the caller can fall back to drop+create.
func diffCreateType(a, b *sqlast.CreateType) ([]sqlast.Statement, error) {
	if a.Enum == nil || b.Enum == nil {
		return nil, &Error{
			Kind: NotImplemented,
			A:    &sqlast.Statement{CreateType: a},
			B:    &sqlast.Statement{CreateType: b},
		}
	}

	aLabels, bLabels := a.Enum.Labels, b.Enum.Labels
	switch {
	case len(aLabels) == len(bLabels):
		return diffEnumSameLength(a.Name, aLabels, bLabels), nil
	case len(aLabels) < len(bLabels):
		return diffEnumGrew(a.Name, aLabels, bLabels), nil
	default:
		return nil, &Error{
			Kind: RemoveEnumLabel,
			A:    &sqlast.Statement{CreateType: a},
			B:    &sqlast.Statement{CreateType: b},
		}
	}
}

func diffEnumSameLength(name string, aLabels, bLabels []string) []sqlast.Statement {
	var out []sqlast.Statement
	for i := range aLabels {
		if aLabels[i] == bLabels[i] {
			continue
		}
		out = append(out, alterType(name, sqlast.AlterTypeOperation{
			RenameValue: &sqlast.RenameValueOp{From: aLabels[i], To: bLabels[i]},
		}))
	}
	return out
}

// diffEnumGrew walks b in order against a, emitting AddValue ops for labels
// that appear only in b. It mirrors original_source/src/diff.rs's
// peekable-iterator walk: while the head of the remaining a matches b,
// consume it and remember it as the insertion anchor; otherwise insert b
// after that anchor (or before the unconsumed head of a when there is no
// anchor yet) and make b the new anchor. Once a is exhausted, labels not
// already in a are appended with no position.
func diffEnumGrew(name string, aLabels, bLabels []string) []sqlast.Statement {
	var out []sqlast.Statement
	ai := 0
	var prev string
	havePrev := false

	for _, b := range bLabels {
		if ai < len(aLabels) {
			a := aLabels[ai]
			if a == b {
				prev, havePrev = a, true
				ai++
				continue
			}
			var pos sqlast.AddValuePosition
			if havePrev {
				pos = sqlast.AddValuePosition{HasPosition: true, IsBefore: false, After: prev}
			} else {
				pos = sqlast.AddValuePosition{HasPosition: true, IsBefore: true, Before: a}
			}
			prev, havePrev = b, true
			out = append(out, alterType(name, sqlast.AlterTypeOperation{
				AddValue: &sqlast.AddValueOp{Value: b, Position: &pos},
			}))
			continue
		}

		if contains(aLabels, b) {
			continue
		}
		out = append(out, alterType(name, sqlast.AlterTypeOperation{
			AddValue: &sqlast.AddValueOp{Value: b},
		}))
	}
	return out
}

func alterType(name string, op sqlast.AlterTypeOperation) sqlast.Statement {
	return sqlast.Statement{AlterType: &sqlast.AlterType{Name: name, Operation: op}}
}

func contains(labels []string, v string) bool {
	for _, l := range labels {
		if l == v {
			return true
		}
	}
	return false
}
