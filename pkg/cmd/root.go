package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	// Version carries the build-time version information main.go stamps in,
	// following the teacher's cmd/housekeeper/main.go variables.
	Version struct {
		Version string
		Commit  string
		Date    string
	}
)

var (
	schemaPathFlag = &cli.StringFlag{
		Name:    "schema-path",
		Aliases: []string{"s"},
		Usage:   "path to the schema file",
	}

	migrationsDirFlag = &cli.StringFlag{
		Name:    "migrations-dir",
		Aliases: []string{"m"},
		Usage:   "path to the migrations directory",
	}

	dialectFlag = &cli.StringFlag{
		Name:    "dialect",
		Aliases: []string{"d"},
		Usage:   "SQL dialect to parse/format with",
	}
)

// Run assembles the sqlschema CLI application and runs it, wired through
// fx's lifecycle so the process exits with the command's status code
// (following the teacher's pkg/cmd/root.go Run).
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Date)
	}

	app := &cli.Command{
		Name:     "sqlschema",
		Usage:    "keep a declarative SQL schema file and a migrations directory in sync",
		Version:  p.Version.Version,
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("sqlschema failed", "error", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}
		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
