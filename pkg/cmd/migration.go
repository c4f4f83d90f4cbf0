package cmd

import (
	"context"

	"github.com/pseudomuto/sqlschema/pkg/project"
	"github.com/urfave/cli/v3"
)

// migration returns the `migration` command: diff the schema file against
// the migrations directory and emit one or two new migration files
// (spec.md §6).
func migration(cfg *project.Config) *cli.Command {
	return &cli.Command{
		Name:  "migration",
		Usage: "generate a new migration from edits to the schema file",
		Flags: []cli.Flag{
			schemaPathFlag, migrationsDirFlag, dialectFlag,
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "name of the migration",
			},
			&cli.BoolFlag{
				Name:  "include-down",
				Usage: "write a paired down migration (defaults to matching the existing migrations directory)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			opts := cfg.Merge(cmd.String("schema-path"), cmd.String("migrations-dir"), cmd.String("dialect"))

			name, includeDown, maxNameLen := cfg.MigrationDefaults()
			if cmd.String("name") != "" {
				name = cmd.String("name")
			}
			if cmd.IsSet("include-down") {
				v := cmd.Bool("include-down")
				includeDown = &v
			}

			return project.GenerateMigration(project.OSFilesystem(), project.MigrationRequest{
				RunOptions:  opts,
				Name:        name,
				IncludeDown: includeDown,
				MaxNameLen:  maxNameLen,
				Clock:       project.RealClock(),
			})
		},
	}
}
