package migrator

import (
	"fmt"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

// ErrorKind enumerates the ways Migrate can fail (spec.md §7).
type ErrorKind string

const (
	// UnnamedIndex means a CreateIndex needed a name to be matched against a
	// DROP INDEX but had none.
	UnnamedIndex ErrorKind = "UNNAMED_INDEX"
	// AlterTableOpNotImplemented means an ALTER TABLE clause isn't one
	// migrate knows how to fold into a CreateTable.
	AlterTableOpNotImplemented ErrorKind = "ALTER_TABLE_OP_NOT_IMPLEMENTED"
	// AlterTypeInvalidOp means an ALTER TYPE operation (ADD VALUE, RENAME
	// VALUE) was applied to a composite type, which has no labels.
	AlterTypeInvalidOp ErrorKind = "ALTER_TYPE_INVALID_OP"
	// NotImplemented means the statement pair isn't covered by any per-kind
	// migrate rule, or A contained something other than a Create* statement.
	NotImplemented ErrorKind = "NOT_IMPLEMENTED"
)

// Error is returned by Migrate when a statement from A can't be reconciled
// against the corresponding statement in the migration. Op carries the
// offending operation's name for AlterTableOpNotImplemented/
// AlterTypeInvalidOp; it's empty otherwise.
type Error struct {
	Kind ErrorKind
	A    *sqlast.Statement
	B    *sqlast.Statement
	Op   string
}

func (e *Error) Error() string {
	msg := "migrator: "
	switch e.Kind {
	case UnnamedIndex:
		msg += "can't migrate an unnamed index"
	case AlterTableOpNotImplemented:
		msg += fmt.Sprintf("ALTER TABLE operation %q not yet supported", e.Op)
	case AlterTypeInvalidOp:
		msg += fmt.Sprintf("invalid ALTER TYPE operation %q for a composite type", e.Op)
	case NotImplemented:
		msg += "not yet supported"
	default:
		msg += string(e.Kind)
	}
	if e.A != nil {
		msg += fmt.Sprintf("\n\nsubject: %+v", e.A)
	}
	if e.B != nil {
		msg += fmt.Sprintf("\n\nmigration: %+v", e.B)
	}
	return msg
}
