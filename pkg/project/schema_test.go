package project_test

import (
	"testing"

	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/pseudomuto/sqlschema/pkg/project"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema_CreatesMissingSchemaAndMigrationsDir(t *testing.T) {
	t.Parallel()

	fsys := newFakeFilesystem()
	opts := project.RunOptions{SchemaPath: "db/schema.sql", MigrationsDir: "db/migrations", Dialect: parser.Generic}

	require.NoError(t, project.GenerateSchema(fsys, opts))

	data, err := fsys.ReadFile("db/schema.sql")
	require.NoError(t, err)
	require.Empty(t, string(data))
}

func TestGenerateSchema_RegeneratesFromMigrations(t *testing.T) {
	t.Parallel()

	fsys := newFakeFilesystem()
	require.NoError(t, fsys.WriteFile("db/schema.sql", nil))
	require.NoError(t, fsys.WriteFile("db/migrations/001_create_foo.sql", []byte("CREATE TABLE foo(id INT);")))

	opts := project.RunOptions{SchemaPath: "db/schema.sql", MigrationsDir: "db/migrations", Dialect: parser.Generic}
	require.NoError(t, project.GenerateSchema(fsys, opts))

	data, err := fsys.ReadFile("db/schema.sql")
	require.NoError(t, err)
	require.Contains(t, string(data), "CREATE TABLE foo")
}

func TestGenerateSchema_RejectsDirectoryAsSchemaPath(t *testing.T) {
	t.Parallel()

	fsys := newFakeFilesystem()
	require.NoError(t, fsys.MkdirAll("db/schema.sql"))

	opts := project.RunOptions{SchemaPath: "db/schema.sql", MigrationsDir: "db/migrations", Dialect: parser.Generic}
	err := project.GenerateSchema(fsys, opts)
	require.Error(t, err)
}
