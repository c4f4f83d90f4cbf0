package cmd

import (
	"context"

	"github.com/pseudomuto/sqlschema/pkg/project"
	"github.com/urfave/cli/v3"
)

// schema returns the `schema` command: regenerate the schema file as the
// fold of every migration in the migrations directory (spec.md §6).
func schema(cfg *project.Config) *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "regenerate the schema file from the migrations directory",
		Flags: []cli.Flag{schemaPathFlag, migrationsDirFlag, dialectFlag},
		Action: func(_ context.Context, cmd *cli.Command) error {
			opts := cfg.Merge(cmd.String("schema-path"), cmd.String("migrations-dir"), cmd.String("dialect"))
			return project.GenerateSchema(project.OSFilesystem(), opts)
		},
	}
}
