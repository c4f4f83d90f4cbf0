package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultSchemaPath is the schema file path used when none is specified
	DefaultSchemaPath = "./schema/schema.sql"

	// DefaultMigrationsDir is the migrations directory used when none is specified
	DefaultMigrationsDir = "./schema/migrations"

	// DefaultMigrationName is the migration name used when none is specified
	DefaultMigrationName = "generated_migration"

	// DefaultMaxNameLen bounds how long a generated migration name can get
	// before namegen truncates it (spec.md §4.6).
	DefaultMaxNameLen = 50
)
