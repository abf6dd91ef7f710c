// Package ast defines the typed abstract syntax tree produced by the
// parser: names, expressions, statements, and top-level items
// (spec §3). Nodes hold no parent pointers; a function body is simply
// an ordered slice of statements.
package ast

import (
	"strings"

	"github.com/cwbudde/go-basic/internal/source"
	"github.com/cwbudde/go-basic/internal/token"
)

// Name is a bare identifier plus an optional type qualifier (sigil).
type Name struct {
	Ident     string
	Qualifier token.Qualifier
}

// Equal reports whether two names denote the same variable: the
// identifiers compare case-insensitively and the qualifiers match
// exactly (spec §3).
func (n Name) Equal(o Name) bool {
	return n.Qualifier == o.Qualifier && strings.EqualFold(n.Ident, o.Ident)
}

// Key returns a case-insensitive, qualifier-distinguishing string
// suitable for use as a map key in frames and the function registry.
func (n Name) Key() string {
	return strings.ToUpper(n.Ident) + n.Qualifier.String()
}

// String renders the name with its sigil, for diagnostics.
func (n Name) String() string {
	return n.Ident + n.Qualifier.String()
}

// Program is the ordered sequence of top-level items parsed from one
// source file.
type Program struct {
	Items []*TopLevelItem
}

// Pos is the type of the Pos field that AST nodes carry for their
// source position, used for error reporting.
type Pos = source.Position
