// Package registry implements the FunctionRegistry: a lookup from a
// function name to its declared parameter list and, once seen, its
// implementation (spec §4.5).
//
// Names and parameters are stored with their qualifiers exactly as
// written: the registry never consults DEFtype and never treats
// token.None specially, so "Add" and "Add!" are different keys and an
// unqualified parameter does not agree with a sigil-qualified one.
package registry

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
)

// Implementation is a registered function body together with its
// parameter list as written.
type Implementation struct {
	Name   ast.Name
	Params []ast.Name
	Body   []*ast.Statement
}

// Status reports what Lookup found for a name.
type Status int

const (
	// NotFound means the name was never declared or implemented —
	// triggers the evaluator's undefined-function-tolerant rule.
	NotFound Status = iota
	// DeclaredOnly means a DECLARE FUNCTION exists with no matching
	// FUNCTION body — calling it is a SubprogramNotDefined error.
	DeclaredOnly
	// Found means an implementation is registered and callable.
	Found
)

type pending struct {
	name   ast.Name
	params []ast.Name
}

// Registry holds declarations and implementations, keyed by the
// resolved function Name.
type Registry struct {
	decls map[string]pending
	impls map[string]*Implementation
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		decls: make(map[string]pending),
		impls: make(map[string]*Implementation),
	}
}

// RegisterDeclaration records a forward DECLARE FUNCTION. If an
// implementation for the same name already exists, their arity and
// per-position parameter qualifiers must agree, or this returns a
// ParameterMismatch error.
func (r *Registry) RegisterDeclaration(name ast.Name, params []ast.Name, pos ast.Pos) error {
	key := name.Key()
	if impl, ok := r.impls[key]; ok {
		if !paramsAgree(impl.Params, params) {
			return basicerrors.ParameterMismatch(name.String(), pos)
		}
	}
	r.decls[key] = pending{name: name, params: params}
	return nil
}

// RegisterImplementation records a FUNCTION body. Two implementations
// for the same name is a DuplicateDefinition error; disagreement with
// a prior declaration's arity/qualifiers is a ParameterMismatch error.
func (r *Registry) RegisterImplementation(name ast.Name, params []ast.Name, body []*ast.Statement, pos ast.Pos) error {
	key := name.Key()
	if _, ok := r.impls[key]; ok {
		return basicerrors.DuplicateDefinition(name.String(), pos)
	}
	if decl, ok := r.decls[key]; ok {
		if !paramsAgree(decl.params, params) {
			return basicerrors.ParameterMismatch(name.String(), pos)
		}
	}
	r.impls[key] = &Implementation{Name: name, Params: params, Body: body}
	return nil
}

// Lookup reports whether name has a registered implementation, is
// declared only, or is unknown entirely.
func (r *Registry) Lookup(name ast.Name) (*Implementation, Status) {
	key := name.Key()
	if impl, ok := r.impls[key]; ok {
		return impl, Found
	}
	if _, ok := r.decls[key]; ok {
		return nil, DeclaredOnly
	}
	return nil, NotFound
}

func paramsAgree(a, b []ast.Name) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Qualifier != b[i].Qualifier {
			return false
		}
	}
	return true
}
