package namegen_test

import (
	"testing"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
	"github.com/pseudomuto/sqlschema/pkg/namegen"
	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, sql string) string {
	t.Helper()
	tree, err := parser.ParseSQL(sql, parser.Generic)
	require.NoError(t, err)
	name, ok := namegen.GenerateName(tree)
	require.True(t, ok)
	return name
}

func TestGenerateName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sql  string
		name string
	}{
		{"CREATE TABLE foo(bar TEXT);", "create_foo"},
		{"CREATE TABLE foo(bar TEXT); CREATE TABLE bar(foo TEXT);", "create_foo__create_bar"},
		{
			"CREATE TABLE foo(bar TEXT); CREATE TABLE bar(foo TEXT); CREATE TABLE baz(id INT); CREATE TABLE some_really_long_name(id INT);",
			"create_foo__create_bar__create_baz__etc",
		},
		{"ALTER TABLE foo DROP COLUMN bar;", "alter_foo_drop_bar"},
		{"ALTER TABLE foo ADD COLUMN bar TEXT;", "alter_foo_add_bar"},
		{"ALTER TABLE foo ALTER COLUMN bar SET DATA TYPE INT;", "alter_foo_alter_bar"},
		{"ALTER TABLE foo RENAME bar TO id;", "alter_foo_rename_bar_to_id"},
		{"ALTER TABLE foo RENAME TO bar;", "rename_foo_to_bar"},
		{"DROP TABLE foo;", "drop_foo"},
		{"CREATE TYPE status AS ENUM('one', 'two', 'three');", "create_type_status"},
		{"DROP TYPE status;", "drop_type_status"},
		{"CREATE UNIQUE INDEX title_idx ON films (title);", "create_films_title_idx"},
		{"DROP INDEX title_idx;", "drop_index_title_idx"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.name, generate(t, tc.sql))
		})
	}
}

func TestGenerateName_UnnamedIndexOmitsSuffix(t *testing.T) {
	t.Parallel()
	require.Equal(t, "create_films", generate(t, "CREATE INDEX ON films (title);"))
}

func TestGenerateName_DropMultipleNamesJoinedWithAnd(t *testing.T) {
	t.Parallel()
	require.Equal(t, "drop_foo_and_bar", generate(t, "DROP TABLE foo, bar;"))
}

func TestGenerateName_ExtensionAndDomainGetTypePrefixedNames(t *testing.T) {
	t.Parallel()
	require.Equal(t, "create_extension_pgcrypto", generate(t, "CREATE EXTENSION pgcrypto;"))
	require.Equal(t, "drop_extension_pgcrypto", generate(t, "DROP EXTENSION pgcrypto;"))
	require.Equal(t, "create_domain_positive_int", generate(t, "CREATE DOMAIN positive_int AS INT;"))
	require.Equal(t, "drop_domain_positive_int", generate(t, "DROP DOMAIN positive_int;"))
}

func TestGenerateName_MoreThanTwoAlterOpsCollapseToBareVerb(t *testing.T) {
	t.Parallel()
	require.Equal(t, "alter_foo", generate(t, `
		ALTER TABLE foo
			ADD COLUMN a TEXT,
			ADD COLUMN b TEXT,
			ADD COLUMN c TEXT;
	`))
}

func TestGenerateName_MaxLenTruncatesToAllThatFit(t *testing.T) {
	t.Parallel()

	tree, err := parser.ParseSQL("CREATE TABLE foo(id INT); CREATE TABLE bar(id INT);", parser.Generic)
	require.NoError(t, err)

	name, ok := namegen.GenerateNameMax(tree, 12)
	require.True(t, ok)
	require.Equal(t, "create_foo__etc", name)
}

func TestGenerateName_EmptyTreeYieldsNoName(t *testing.T) {
	t.Parallel()

	name, ok := namegen.GenerateName(sqlast.Tree{})
	require.False(t, ok)
	require.Empty(t, name)
}
