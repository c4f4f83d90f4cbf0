// Package project orchestrates pkg/parser, pkg/schemadiff, pkg/migrator,
// pkg/pathtemplate, pkg/namegen and pkg/format into the two operations the
// CLI exposes: regenerating a schema file from a migrations directory, and
// generating a new migration from edits to the schema file (spec.md §4.7,
// §6), grounded on original_source/src/bin/sql-schema.rs.
//
// Filesystem access is abstracted behind the Filesystem interface so the
// orchestration logic can be exercised against an in-memory fake without
// touching disk, following the teacher's pkg/cmd pattern of isolating
// side effects behind a narrow collaborator interface.
package project
