// Package cmd implements the sqlschema CLI's two subcommands, following the
// urfave/cli/v3 + go.uber.org/fx wiring pattern the teacher uses to assemble
// its command tree and lifecycle.
//
// # Available commands
//
//   - schema: regenerate the schema file from the migrations directory
//   - migration: generate a new migration from edits to the schema file
//
// Both commands share the --schema-path/-s, --migrations-dir/-m and
// --dialect/-d flags (spec.md §6); migration additionally takes --name/-n
// and --include-down.
package cmd
