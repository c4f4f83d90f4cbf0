package schemadiff

import (
	"fmt"

	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

// ErrorKind enumerates the ways Diff can fail (spec.md §7). The set is meant
// to grow; callers should not exhaustively switch without a default case.
type ErrorKind string

const (
	// DropUnnamedIndex means A contains an index diff would need to name in
	// a DROP INDEX, but the index has no name.
	DropUnnamedIndex ErrorKind = "DROP_UNNAMED_INDEX"
	// CompareUnnamedIndex means a CreateIndex on either side of a comparison
	// lacks a name, so diff can't tell whether they're the same index.
	CompareUnnamedIndex ErrorKind = "COMPARE_UNNAMED_INDEX"
	// RemoveEnumLabel means B's enum has fewer labels than A's; the diff
	// engine doesn't infer which ones were removed.
	RemoveEnumLabel ErrorKind = "REMOVE_ENUM_LABEL"
	// NotImplemented means the statement pair isn't covered by any per-kind
	// diff rule.
	NotImplemented ErrorKind = "NOT_IMPLEMENTED"
)

// Error is returned by Diff when two statements can't be reconciled. It
// carries up to two statements for diagnostics, mirroring the Kind+subject
// shape of migrator.Error in pkg/migrator.
type Error struct {
	Kind ErrorKind
	A    *sqlast.Statement
	B    *sqlast.Statement
}

func (e *Error) Error() string {
	msg := "schemadiff: " + string(e.Kind)
	switch e.Kind {
	case DropUnnamedIndex:
		msg = "schemadiff: can't drop an unnamed index"
	case CompareUnnamedIndex:
		msg = "schemadiff: can't compare indexes without a name on both sides"
	case RemoveEnumLabel:
		msg = "schemadiff: removing enum labels isn't supported"
	case NotImplemented:
		msg = "schemadiff: diff not implemented for this statement pair"
	}
	if e.A != nil {
		msg += fmt.Sprintf("\n\nsubject A: %+v", e.A)
	}
	if e.B != nil {
		msg += fmt.Sprintf("\n\nsubject B: %+v", e.B)
	}
	return msg
}
