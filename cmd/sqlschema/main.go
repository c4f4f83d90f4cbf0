// Command sqlschema keeps a declarative SQL schema file and a directory of
// timestamped migration scripts synchronized in either direction.
//
// Usage:
//
//	# Regenerate the schema file from the migrations directory
//	sqlschema schema -s db/schema.sql -m db/migrations -d postgresql
//
//	# Generate a new migration from edits made to the schema file
//	sqlschema migration -s db/schema.sql -m db/migrations -n add_users_table
package main

import (
	"context"
	"os"
	"time"

	"github.com/pseudomuto/sqlschema/pkg/cmd"
	"github.com/pseudomuto/sqlschema/pkg/project"
	"go.uber.org/fx"
)

// Build-time variables set by the release tooling, following the teacher's
// cmd/housekeeper/main.go convention.
var (
	version string = "local"
	commit  string = "local"
	date    string = time.Now().UTC().Format(time.RFC3339)
)

func main() {
	fx.New(
		fx.Supply(
			os.Args,
			context.Background(),
			&cmd.Version{Version: version, Commit: commit, Date: date},
		),
		project.Module,
		cmd.Module,
	).Run()
}
