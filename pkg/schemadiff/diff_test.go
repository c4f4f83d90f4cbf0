package schemadiff_test

import (
	"testing"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/pseudomuto/sqlschema/pkg/schemadiff"
	"github.com/stretchr/testify/require"
)

func parseTree(t *testing.T, sql string) sqlast.Tree {
	t.Helper()
	tree, err := parser.ParseSQL(sql, parser.Generic)
	require.NoError(t, err)
	return tree
}

func TestDiff_NoChange(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE TABLE foo (id INT PRIMARY KEY);`)
	ops, err := schemadiff.Diff(a, a)
	require.NoError(t, err)
	require.Nil(t, ops)
}

func TestDiff_CreatesNewTable(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE TABLE foo (id INT PRIMARY KEY);`)
	b := parseTree(t, `CREATE TABLE foo (id INT PRIMARY KEY); CREATE TABLE bar (id INT PRIMARY KEY);`)

	ops, err := schemadiff.Diff(a, b)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.NotNil(t, ops[0].CreateTable)
	require.Equal(t, "bar", ops[0].CreateTable.Name)
}

func TestDiff_DropsMissingTable(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE TABLE foo (id INT PRIMARY KEY); CREATE TABLE bar (id INT PRIMARY KEY);`)
	b := parseTree(t, `CREATE TABLE foo (id INT PRIMARY KEY);`)

	ops, err := schemadiff.Diff(a, b)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.NotNil(t, ops[0].Drop)
	require.Equal(t, sqlast.KindTable, ops[0].Drop.Kind)
	require.Equal(t, []string{"bar"}, ops[0].Drop.Names)
}

func TestDiff_ColumnAddition(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE TABLE foo (id INT);`)
	b := parseTree(t, `CREATE TABLE foo (id INT, bar TEXT);`)

	ops, err := schemadiff.Diff(a, b)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.NotNil(t, ops[0].AlterTable)
	require.Len(t, ops[0].AlterTable.Operations, 1)
	require.NotNil(t, ops[0].AlterTable.Operations[0].AddColumn)
	require.Equal(t, "bar", ops[0].AlterTable.Operations[0].AddColumn.Column.Name)
}

func TestDiff_ColumnSetIsAddAndDropOnly(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE TABLE foo (id INT, old_col TEXT);`)
	b := parseTree(t, `CREATE TABLE foo (id INT, new_col TEXT);`)

	ops, err := schemadiff.Diff(a, b)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	for _, op := range ops[0].AlterTable.Operations {
		require.True(t, op.AddColumn != nil || op.DropColumn != nil)
	}
}

func TestDiff_EnumAddValueBefore(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE TYPE bug_status AS ENUM ('open', 'closed');`)
	b := parseTree(t, `CREATE TYPE bug_status AS ENUM ('new', 'open', 'closed');`)

	ops, err := schemadiff.Diff(a, b)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	add := ops[0].AlterType.Operation.AddValue
	require.NotNil(t, add)
	require.Equal(t, "new", add.Value)
	require.True(t, add.Position.IsBefore)
	require.Equal(t, "open", add.Position.Before)
}

func TestDiff_EnumAddValueMultiple(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE TYPE bug_status AS ENUM ('open', 'critical');`)
	b := parseTree(t, `CREATE TYPE bug_status AS ENUM ('new', 'open', 'assigned', 'closed', 'critical');`)

	ops, err := schemadiff.Diff(a, b)
	require.NoError(t, err)
	require.Len(t, ops, 3)

	require.Equal(t, "new", ops[0].AlterType.Operation.AddValue.Value)
	require.True(t, ops[0].AlterType.Operation.AddValue.Position.IsBefore)
	require.Equal(t, "open", ops[0].AlterType.Operation.AddValue.Position.Before)

	require.Equal(t, "assigned", ops[1].AlterType.Operation.AddValue.Value)
	require.False(t, ops[1].AlterType.Operation.AddValue.Position.IsBefore)
	require.Equal(t, "open", ops[1].AlterType.Operation.AddValue.Position.After)

	require.Equal(t, "closed", ops[2].AlterType.Operation.AddValue.Value)
	require.False(t, ops[2].AlterType.Operation.AddValue.Position.IsBefore)
	require.Equal(t, "assigned", ops[2].AlterType.Operation.AddValue.Position.After)
}

func TestDiff_EnumRemovedLabelIsError(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE TYPE bug_status AS ENUM ('open', 'closed', 'archived');`)
	b := parseTree(t, `CREATE TYPE bug_status AS ENUM ('open', 'closed');`)

	_, err := schemadiff.Diff(a, b)
	require.Error(t, err)
	var diffErr *schemadiff.Error
	require.ErrorAs(t, err, &diffErr)
	require.Equal(t, schemadiff.RemoveEnumLabel, diffErr.Kind)
}

func TestDiff_UnnamedIndexComparisonFails(t *testing.T) {
	t.Parallel()

	a := parseTree(t, `CREATE INDEX ON foo (id);`)
	b := parseTree(t, `CREATE INDEX ON foo (id, name);`)

	_, err := schemadiff.Diff(a, b)
	require.Error(t, err)
	var diffErr *schemadiff.Error
	require.ErrorAs(t, err, &diffErr)
	require.Equal(t, schemadiff.CompareUnnamedIndex, diffErr.Kind)
}
