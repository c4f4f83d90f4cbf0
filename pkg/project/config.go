package project

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlschema/pkg/consts"
	"github.com/pseudomuto/sqlschema/pkg/parser"
	"gopkg.in/yaml.v3"
)

// Config holds the optional project-wide defaults loaded from
// sqlschema.yaml (SPEC_FULL.md §2). Every field is a pointer so a merge with
// CLI flags can tell "not set" apart from "set to the zero value", mirroring
// the teacher's pkg/config override-merging pattern.
type Config struct {
	SchemaPath    *string `yaml:"schema_path,omitempty"`
	MigrationsDir *string `yaml:"migrations_dir,omitempty"`
	Dialect       *string `yaml:"dialect,omitempty"`
	Name          *string `yaml:"name,omitempty"`
	IncludeDown   *bool   `yaml:"include_down,omitempty"`
	MaxNameLen    *int    `yaml:"max_name_len,omitempty"`
}

// LoadConfig parses a project configuration from r. A missing or empty file
// is not an error; LoadConfigFile returns an empty Config for an absent
// file so callers can treat "no config" and "default config" identically.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}
	return &cfg, nil
}

// LoadConfigFile loads the project configuration from path. A non-existent
// file yields an empty Config rather than an error, since sqlschema.yaml is
// entirely optional.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// RunOptions carries the settings shared by GenerateSchema and
// GenerateMigration once config and CLI flags have been merged.
type RunOptions struct {
	SchemaPath    string
	MigrationsDir string
	Dialect       parser.Dialect
}

// Merge layers explicit CLI flag values over cfg's defaults, falling back to
// the package-wide defaults in pkg/consts when neither is set. An empty
// string/dialect from the CLI means "not explicitly set" (urfave/cli/v3
// reports flags this way when left at their zero value), matching the
// teacher's CLI-flag-overrides-config-file precedence.
func (cfg *Config) Merge(schemaPath, migrationsDir, dialect string) RunOptions {
	opts := RunOptions{
		SchemaPath:    consts.DefaultSchemaPath,
		MigrationsDir: consts.DefaultMigrationsDir,
		Dialect:       parser.Generic,
	}

	if cfg.SchemaPath != nil {
		opts.SchemaPath = *cfg.SchemaPath
	}
	if cfg.MigrationsDir != nil {
		opts.MigrationsDir = *cfg.MigrationsDir
	}
	if cfg.Dialect != nil {
		opts.Dialect = parser.Dialect(*cfg.Dialect)
	}

	if schemaPath != "" {
		opts.SchemaPath = schemaPath
	}
	if migrationsDir != "" {
		opts.MigrationsDir = migrationsDir
	}
	if dialect != "" {
		opts.Dialect = parser.Dialect(dialect)
	}

	return opts
}

// MigrationDefaults resolves the name/include-down/max-name-len defaults a
// `migration` command invocation should fall back to when the matching CLI
// flag wasn't explicitly set. An empty name defers to namegen
// (GenerateMigration derives one from the diff, falling back to the literal
// "generated_migration" only if namegen itself has nothing to say).
func (cfg *Config) MigrationDefaults() (name string, includeDown *bool, maxNameLen int) {
	maxNameLen = consts.DefaultMaxNameLen

	if cfg.Name != nil {
		name = *cfg.Name
	}
	if cfg.MaxNameLen != nil {
		maxNameLen = *cfg.MaxNameLen
	}
	return name, cfg.IncludeDown, maxNameLen
}
