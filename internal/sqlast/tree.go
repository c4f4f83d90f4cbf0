package sqlast

import "github.com/google/go-cmp/cmp"

// Tree is an ordered sequence of Statements (spec.md §3's SyntaxTree).
// Values are immutable once constructed; every transformation in this module
// returns a fresh Tree rather than mutating one in place.
type Tree struct {
	Statements []Statement
}

// Empty returns a Tree with no statements.
func Empty() Tree {
	return Tree{}
}

// New wraps an explicit statement slice in a Tree.
func New(statements []Statement) Tree {
	return Tree{Statements: statements}
}

// Equal reports whether two trees are structurally identical, per spec.md
// §3 ("Equality is structural"). Comparison is delegated to go-cmp rather
// than a hand-rolled deep-equal walk over every variant.
func (t Tree) Equal(other Tree) bool {
	return cmp.Equal(t.Statements, other.Statements)
}

// Diff returns a human-readable structural diff between two trees, useful
// in test failure output and CLI diagnostics.
func (t Tree) Diff(other Tree) string {
	return cmp.Diff(t.Statements, other.Statements)
}

// Len returns the number of statements in the tree.
func (t Tree) Len() int {
	return len(t.Statements)
}
