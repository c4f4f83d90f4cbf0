package project

import (
	"encoding/binary"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlschema/internal/sqlast"
	"github.com/pseudomuto/sqlschema/pkg/format"
	"github.com/pseudomuto/sqlschema/pkg/namegen"
	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/pseudomuto/sqlschema/pkg/pathtemplate"
	"github.com/pseudomuto/sqlschema/pkg/schemadiff"
)

// MigrationRequest carries a `migration` command invocation's resolved
// inputs, after config/CLI-flag merging (spec.md §6).
type MigrationRequest struct {
	RunOptions
	Name        string
	IncludeDown *bool
	MaxNameLen  int
	Clock       Clock
}

// GenerateMigration diffs the schema file against the folded migrations
// directory and, if they differ, writes one new up-migration file (and,
// when the inferred or requested options call for it, a paired down
// migration) under req.MigrationsDir, named via namegen when req.Name is
// empty and following the inferred pathtemplate.PathTemplate (spec.md §6's
// `migration` command), grounded on
// original_source/src/bin/sql-schema.rs::run_migration.
//
// A reverse-diff failure while building the down migration never blocks the
// up migration: it is logged as a warning and the down migration is written
// empty (spec.md §7's one exception to "no error is silently swallowed").
func GenerateMigration(fsys Filesystem, req MigrationRequest) error {
	if err := ensureFile(fsys, req.SchemaPath); err != nil {
		return errors.Wrap(err, "schema path")
	}
	if err := ensureDir(fsys, req.MigrationsDir); err != nil {
		return errors.Wrap(err, "migrations dir")
	}

	migrations, inferred, err := FoldMigrations(fsys, req.MigrationsDir, req.Dialect)
	if err != nil {
		return errors.Wrap(err, "folding migrations")
	}
	opts := inferred.Reconcile(req.IncludeDown)

	schemaData, err := fsys.ReadFile(req.SchemaPath)
	if err != nil {
		return errors.Wrapf(err, "reading schema file %s", req.SchemaPath)
	}
	schema, err := parser.ParseSQL(string(schemaData), req.Dialect)
	if err != nil {
		return errors.Wrapf(err, "parsing schema file %s", req.SchemaPath)
	}

	upStmts, err := schemadiff.Diff(migrations, schema)
	if err != nil {
		return errors.Wrap(err, "diffing migrations against schema")
	}
	if len(upStmts) == 0 {
		slog.Info("existing migrations and the schema file are the same")
		return nil
	}
	upTree := sqlast.New(upStmts)

	name := req.Name
	if name == "" {
		if generated, ok := namegen.GenerateNameMax(upTree, req.MaxNameLen); ok {
			name = generated
		} else {
			name = "generated_migration"
		}
	}

	tmpl := opts.Template
	if opts.IncludeDown {
		tmpl = tmpl.WithUpDown()
	}

	upData := pathtemplate.TemplateData{
		Timestamp: req.Clock.Now(),
		Name:      name,
		HasRandom: true,
		Random:    randomComponent(),
	}
	if opts.IncludeDown {
		upData.HasUpDown = true
		upData.UpDown = pathtemplate.Up
	}

	upPath := filepath.Join(req.MigrationsDir, tmpl.Resolve(upData))
	if err := writeMigration(fsys, upPath, format.NewDefault(req.Dialect).Tree(upTree)); err != nil {
		return err
	}

	if !opts.IncludeDown {
		return nil
	}

	downTree := sqlast.Empty()
	downStmts, err := schemadiff.Diff(schema, migrations)
	if err != nil {
		slog.Warn("error creating down migration", "error", err)
	} else {
		downTree = sqlast.New(downStmts)
	}

	downData := upData
	downData.UpDown = pathtemplate.Down
	downPath := filepath.Join(req.MigrationsDir, tmpl.Resolve(downData))

	return writeMigration(fsys, downPath, format.NewDefault(req.Dialect).Tree(downTree))
}

// randomComponent derives a path template's random-number token
// (pathtemplate.KindRandomNumber) from a
// fresh UUID's leading bytes, giving each generated migration filename a
// collision-resistant random component independent of the clock (spec.md
// §4.5's random token).
func randomComponent() int {
	id := uuid.New()
	return int(binary.BigEndian.Uint32(id[:4]) & 0x7fffffff)
}

func writeMigration(fsys Filesystem, path, contents string) error {
	dir := filepath.Dir(path)
	slog.Info("writing", "path", path)
	if err := fsys.MkdirAll(dir); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	if err := fsys.WriteFile(path, []byte(contents)); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
