package format_test

import (
	"testing"

	"github.com/pseudomuto/sqlschema/pkg/format"
	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
)

func render(t *testing.T, dialect parser.Dialect, sql string) string {
	t.Helper()
	tree, err := parser.ParseSQL(sql, parser.Generic)
	require.NoError(t, err)
	return format.NewDefault(dialect).Tree(tree)
}

func TestTree_CreateTableMultilineWithAlignedColumns(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "CREATE TABLE foo(id INT, name TEXT);")
	assert.Equal(t, got, "CREATE TABLE foo (\n    id   INT,\n    name TEXT\n);")
}

func TestTree_TwoStatementsSeparatedByBlankLine(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "CREATE TABLE foo(id INT); CREATE TABLE bar(id INT);")
	assert.Equal(t, got, "CREATE TABLE foo (\n    id INT\n);\n\nCREATE TABLE bar (\n    id INT\n);")
}

func TestStatement_AlterTableDropColumn(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "ALTER TABLE foo DROP COLUMN bar;")
	assert.Equal(t, got, "ALTER TABLE foo\n    DROP COLUMN bar;")
}

func TestStatement_DropTableWithCascade(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "DROP TABLE foo, bar CASCADE;")
	assert.Equal(t, got, "DROP TABLE foo, bar CASCADE;")
}

func TestStatement_CreateIndexUnnamed(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "CREATE UNIQUE INDEX ON films (title);")
	assert.Equal(t, got, "CREATE UNIQUE INDEX ON films (title);")
}

func TestStatement_CreateTypeEnum(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "CREATE TYPE status AS ENUM('one', 'two');")
	assert.Equal(t, got, "CREATE TYPE status AS ENUM ('one', 'two');")
}

func TestStatement_AlterTypeAddValueBefore(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "ALTER TYPE status ADD VALUE 'pending' BEFORE 'active';")
	assert.Equal(t, got, "ALTER TYPE status ADD VALUE 'pending' BEFORE 'active';")
}

func TestStatement_CreateExtension(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "CREATE EXTENSION IF NOT EXISTS pgcrypto;")
	assert.Equal(t, got, "CREATE EXTENSION IF NOT EXISTS pgcrypto;")
}

func TestStatement_CreateDomainWithCheck(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "CREATE DOMAIN positive_int AS INT CHECK(VALUE > 0);")
	assert.Equal(t, got, "CREATE DOMAIN positive_int AS INT CHECK (VALUE > 0);")
}

func TestIdentifier_QuotesNonSimpleNamesPerDialect(t *testing.T) {
	t.Parallel()

	got := render(t, parser.MySQL, `CREATE TABLE "My Table"("My Col" TEXT);`)
	assert.Equal(t, got, "CREATE TABLE `My Table` (\n    `My Col` TEXT\n);")
}

func TestIdentifier_MsSQLUsesSquareBrackets(t *testing.T) {
	t.Parallel()

	got := render(t, parser.MsSQL, `CREATE TABLE "My Table"(id INT);`)
	assert.Equal(t, got, "CREATE TABLE [My Table] (\n    id INT\n);")
}

func TestTree_UnsupportedStatementEmitsRawText(t *testing.T) {
	t.Parallel()

	got := render(t, parser.Generic, "GRANT SELECT ON foo TO bar;")
	assert.Equal(t, got, "GRANT SELECT ON foo TO bar;")
}
