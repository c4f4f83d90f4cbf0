package parser_test

import (
	"testing"

	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParseSQL_CreateTable(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`CREATE TABLE foo (id INT PRIMARY KEY, name TEXT NOT NULL);`, parser.Generic)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Len())

	stmt := tree.Statements[0]
	require.NotNil(t, stmt.CreateTable)
	require.Equal(t, "foo", stmt.CreateTable.Name)
	require.Len(t, stmt.CreateTable.Columns, 2)
	require.Equal(t, "id", stmt.CreateTable.Columns[0].Name)
	require.Equal(t, "INT", stmt.CreateTable.Columns[0].DataType)
}

func TestParseSQL_CreateTableIfNotExistsAndCluster(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`CREATE TABLE IF NOT EXISTS bar (id INT) ON CLUSTER prod;`, parser.Generic)
	require.NoError(t, err)

	ct := tree.Statements[0].CreateTable
	require.True(t, ct.IfNotExists)
	require.Equal(t, "prod", ct.OnCluster)
}

func TestParseSQL_AlterTableAddDropColumn(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`ALTER TABLE foo ADD COLUMN bar TEXT, DROP COLUMN baz;`, parser.Generic)
	require.NoError(t, err)

	at := tree.Statements[0].AlterTable
	require.Equal(t, "foo", at.Name)
	require.Len(t, at.Operations, 2)
	require.NotNil(t, at.Operations[0].AddColumn)
	require.Equal(t, "bar", at.Operations[0].AddColumn.Column.Name)
	require.NotNil(t, at.Operations[1].DropColumn)
	require.Equal(t, "baz", at.Operations[1].DropColumn.Name)
}

func TestParseSQL_DropTable(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`DROP TABLE IF EXISTS bar, baz CASCADE;`, parser.Generic)
	require.NoError(t, err)

	drop := tree.Statements[0].Drop
	require.True(t, drop.IfExists)
	require.True(t, drop.Cascade)
	require.Equal(t, []string{"bar", "baz"}, drop.Names)
}

func TestParseSQL_CreateIndex(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`CREATE UNIQUE INDEX idx_foo ON foo (id, name);`, parser.Generic)
	require.NoError(t, err)

	idx := tree.Statements[0].CreateIndex
	require.True(t, idx.Unique)
	require.True(t, idx.HasName)
	require.Equal(t, "idx_foo", idx.Name)
	require.Equal(t, "foo", idx.TableName)
	require.Equal(t, []string{"id", "name"}, idx.Columns)
}

func TestParseSQL_CreateTypeEnum(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`CREATE TYPE bug_status AS ENUM ('open', 'closed');`, parser.Generic)
	require.NoError(t, err)

	ct := tree.Statements[0].CreateType
	require.Equal(t, "bug_status", ct.Name)
	require.NotNil(t, ct.Enum)
	require.Equal(t, []string{"open", "closed"}, ct.Enum.Labels)
}

func TestParseSQL_AlterTypeAddValue(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`ALTER TYPE bug_status ADD VALUE 'new' BEFORE 'open';`, parser.Generic)
	require.NoError(t, err)

	op := tree.Statements[0].AlterType.Operation.AddValue
	require.NotNil(t, op)
	require.Equal(t, "new", op.Value)
	require.NotNil(t, op.Position)
	require.True(t, op.Position.HasPosition)
	require.True(t, op.Position.IsBefore)
	require.Equal(t, "open", op.Position.Before)
}

func TestParseSQL_UnsupportedStatementDoesNotFailParse(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`GRANT SELECT ON foo TO bar;`, parser.Generic)
	require.NoError(t, err)
	require.NotNil(t, tree.Statements[0].Unsupported)
	require.Equal(t, "GRANT", tree.Statements[0].Unsupported.Keyword)
}

func TestParseSQL_RejectsUnknownDialect(t *testing.T) {
	t.Parallel()

	_, err := parser.ParseSQL(`CREATE TABLE foo (id INT);`, parser.Dialect("not-a-dialect"))
	require.Error(t, err)
}

func TestParseSQL_MultipleStatements(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL(`
		CREATE TABLE foo (id INT PRIMARY KEY);
		CREATE TABLE bar (id INT PRIMARY KEY);
	`, parser.Generic)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())
}
