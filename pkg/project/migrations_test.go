package project_test

import (
	"testing"

	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/pseudomuto/sqlschema/pkg/pathtemplate"
	"github.com/pseudomuto/sqlschema/pkg/project"
	"github.com/stretchr/testify/require"
)

func TestFoldMigrations_EmptyDirUsesDefaultTemplate(t *testing.T) {
	t.Parallel()

	fsys := newFakeFilesystem()
	require.NoError(t, fsys.MkdirAll("migrations"))

	tree, opts, err := project.FoldMigrations(fsys, "migrations", parser.Generic)
	require.NoError(t, err)
	require.Equal(t, 0, tree.Len())
	require.Equal(t, pathtemplate.DefaultTemplate(), opts.Template)
	require.True(t, opts.IncludeDown)
}

func TestFoldMigrations_AppliesMigrationsInLexicographicOrder(t *testing.T) {
	t.Parallel()

	fsys := newFakeFilesystem()
	require.NoError(t, fsys.WriteFile("migrations/001_create_foo.sql", []byte("CREATE TABLE foo(id INT);")))
	require.NoError(t, fsys.WriteFile("migrations/002_create_bar.sql", []byte("CREATE TABLE bar(id INT);")))

	tree, opts, err := project.FoldMigrations(fsys, "migrations", parser.Generic)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())
	require.NotNil(t, tree.Statements[0].CreateTable)
	require.Equal(t, "foo", tree.Statements[0].CreateTable.Name)
	require.NotNil(t, tree.Statements[1].CreateTable)
	require.Equal(t, "bar", tree.Statements[1].CreateTable.Name)
	require.False(t, opts.IncludeDown)
}

func TestFoldMigrations_SkipsDownMigrationsAndNonSQLFiles(t *testing.T) {
	t.Parallel()

	fsys := newFakeFilesystem()
	require.NoError(t, fsys.WriteFile("migrations/001_create_foo.up.sql", []byte("CREATE TABLE foo(id INT);")))
	require.NoError(t, fsys.WriteFile("migrations/001_create_foo.down.sql", []byte("DROP TABLE foo;")))
	require.NoError(t, fsys.WriteFile("migrations/README.md", []byte("notes")))

	tree, opts, err := project.FoldMigrations(fsys, "migrations", parser.Generic)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Len())
	require.True(t, opts.IncludeDown)
}

func TestFoldMigrations_DescendsIntoSubdirectories(t *testing.T) {
	t.Parallel()

	fsys := newFakeFilesystem()
	require.NoError(t, fsys.WriteFile("migrations/dev/001_create_foo.sql", []byte("CREATE TABLE foo(id INT);")))

	tree, _, err := project.FoldMigrations(fsys, "migrations", parser.Generic)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Len())
}
