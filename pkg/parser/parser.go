package parser

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlschema/internal/sqlast"
)

// ParseError wraps a failure from the underlying participle parser with the
// path that produced it, per spec.md §7's ParseError taxonomy entry.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseSQL parses sql under dialect and returns the resulting tree. dialect
// is checked against the supported set (an unknown one is a ParseError) but
// does not change what is accepted: the lexer and the statement grammar
// (spec.md §3) are shared across dialects.
//
// Example:
//
//	tree, err := parser.ParseSQL(`CREATE TABLE foo (id INT PRIMARY KEY);`, parser.Generic)
func ParseSQL(sql string, dialect Dialect) (sqlast.Tree, error) {
	if !dialects[dialect] {
		return sqlast.Tree{}, &ParseError{Err: errors.Errorf("unknown dialect %q", dialect)}
	}

	g := &grammar{}
	if err := ddlParser.ParseString("", sql, g); err != nil {
		return sqlast.Tree{}, &ParseError{Err: err}
	}
	return toTree(g), nil
}

// ParseFile reads path and parses its contents under dialect.
func ParseFile(path string, dialect Dialect) (sqlast.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sqlast.Tree{}, &ParseError{Path: path, Err: errors.Wrap(err, "reading schema file")}
	}
	tree, err := ParseSQL(string(data), dialect)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return sqlast.Tree{}, parseErr
		}
		return sqlast.Tree{}, &ParseError{Path: path, Err: err}
	}
	return tree, nil
}
