package project

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlschema/internal/sqlast"
	"github.com/pseudomuto/sqlschema/pkg/migrator"
	"github.com/pseudomuto/sqlschema/pkg/parser"
	"github.com/pseudomuto/sqlschema/pkg/pathtemplate"
)

// MigrationOptions carries the path template and include-down default
// inferred from the existing migrations directory (SPEC_FULL.md §4),
// grounded on original_source/src/bin/sql-schema.rs's MigrationOptions.
type MigrationOptions struct {
	Template    pathtemplate.PathTemplate
	IncludeDown bool
}

// Reconcile overrides the inferred IncludeDown with an explicit value when
// the caller provided one (non-nil), otherwise keeps the inferred default.
// Grounded on original_source/src/bin/sql-schema.rs's
// MigrationOptions::reconcile.
func (o MigrationOptions) Reconcile(includeDown *bool) MigrationOptions {
	if includeDown != nil {
		o.IncludeDown = *includeDown
	}
	return o
}

// isDownMigration reports whether a migration file stem names a reverse
// migration, per spec.md §6: stem ends in ".down"/".undo", or is exactly
// "down"/"undo".
func isDownMigration(stem string) bool {
	return strings.HasSuffix(stem, ".down") || strings.HasSuffix(stem, ".undo") ||
		stem == "down" || stem == "undo"
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// listMigrationFiles walks dir recursively, returning the relative paths
// (relative to dir) of up-migration *.sql files in lexicographic order.
// Non-file entries are descended into; non-.sql files and down-migrations
// are skipped with a logged note (spec.md §6).
func listMigrationFiles(fsys Filesystem, dir string) ([]string, error) {
	var files []string

	err := fsys.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir || d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return errors.Wrapf(err, "relativizing %s", path)
		}

		if strings.ToLower(filepath.Ext(path)) != ".sql" {
			slog.Info("skipping", "path", rel)
			return nil
		}
		if isDownMigration(stemOf(path)) {
			slog.Info("skipping", "path", rel)
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking migrations directory %s", dir)
	}

	sort.Strings(files)
	return files, nil
}

// FoldMigrations parses every up-migration under dir (in application order)
// and folds them onto an empty tree via migrator.Migrate, returning the
// resulting schema tree plus the MigrationOptions inferred from the
// lexicographically-greatest migration's path (or pathtemplate.DefaultTemplate() if
// dir is empty), grounded on
// original_source/src/bin/sql-schema.rs::parse_migrations.
func FoldMigrations(fsys Filesystem, dir string, dialect parser.Dialect) (sqlast.Tree, MigrationOptions, error) {
	files, err := listMigrationFiles(fsys, dir)
	if err != nil {
		return sqlast.Tree{}, MigrationOptions{}, err
	}

	opts, err := inferOptions(files)
	if err != nil {
		return sqlast.Tree{}, MigrationOptions{}, err
	}

	tree := sqlast.Empty()
	for _, rel := range files {
		path := filepath.Join(dir, rel)
		slog.Info("parsing", "path", rel)

		data, err := fsys.ReadFile(path)
		if err != nil {
			return sqlast.Tree{}, MigrationOptions{}, errors.Wrapf(err, "reading migration %s", path)
		}
		migration, err := parser.ParseSQL(string(data), dialect)
		if err != nil {
			return sqlast.Tree{}, MigrationOptions{}, errors.Wrapf(err, "parsing migration %s", path)
		}

		tree, err = migrator.Migrate(tree, migration)
		if err != nil {
			return sqlast.Tree{}, MigrationOptions{}, errors.Wrapf(err, "applying migration %s", path)
		}
	}

	return tree, opts, nil
}

func inferOptions(files []string) (MigrationOptions, error) {
	if len(files) == 0 {
		tmpl := pathtemplate.DefaultTemplate()
		return MigrationOptions{Template: tmpl, IncludeDown: tmpl.IncludesUpDown()}, nil
	}

	latest := files[len(files)-1]
	tmpl, err := pathtemplate.Parse(latest)
	if err != nil {
		return MigrationOptions{}, errors.Wrapf(err, "inferring template from %s", latest)
	}

	return MigrationOptions{Template: tmpl, IncludeDown: tmpl.IncludesUpDown()}, nil
}
