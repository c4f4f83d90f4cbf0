package project

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlschema/internal/sqlast"
	"github.com/pseudomuto/sqlschema/pkg/format"
	"github.com/pseudomuto/sqlschema/pkg/migrator"
	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/pseudomuto/sqlschema/pkg/schemadiff"
)

// GenerateSchema regenerates opts.SchemaPath as the fold of every migration
// under opts.MigrationsDir, creating both paths if absent (spec.md §6's
// `schema` command), grounded on
// original_source/src/bin/sql-schema.rs::run_schema.
func GenerateSchema(fsys Filesystem, opts RunOptions) error {
	if err := ensureFile(fsys, opts.SchemaPath); err != nil {
		return errors.Wrap(err, "schema path")
	}
	if err := ensureDir(fsys, opts.MigrationsDir); err != nil {
		return errors.Wrap(err, "migrations dir")
	}

	migrations, _, err := FoldMigrations(fsys, opts.MigrationsDir, opts.Dialect)
	if err != nil {
		return errors.Wrap(err, "folding migrations")
	}

	schemaData, err := fsys.ReadFile(opts.SchemaPath)
	if err != nil {
		return errors.Wrapf(err, "reading schema file %s", opts.SchemaPath)
	}
	schema, err := parser.ParseSQL(string(schemaData), opts.Dialect)
	if err != nil {
		return errors.Wrapf(err, "parsing schema file %s", opts.SchemaPath)
	}

	diffStmts, err := schemadiff.Diff(schema, migrations)
	if err != nil {
		return errors.Wrap(err, "diffing schema against migrations")
	}

	updated, err := migrator.Migrate(schema, sqlast.New(diffStmts))
	if err != nil {
		return errors.Wrap(err, "applying diff to schema")
	}

	rendered := format.NewDefault(opts.Dialect).Tree(updated)
	slog.Info("writing", "path", opts.SchemaPath)
	if err := fsys.WriteFile(opts.SchemaPath, []byte(rendered)); err != nil {
		return errors.Wrapf(err, "writing schema file %s", opts.SchemaPath)
	}

	return nil
}
