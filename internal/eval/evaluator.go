// Package eval implements the Evaluator: the walker that executes a
// parsed Program against a value domain and nested variable-context
// stack, honoring BASIC's sigil-based type qualification and
// arithmetic coercion rules (spec §4.6).
package eval

import (
	"strings"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/registry"
	"github.com/cwbudde/go-basic/internal/scope"
	"github.com/cwbudde/go-basic/internal/token"
	"github.com/cwbudde/go-basic/pkg/stdlib"
)

// Evaluator holds the ContextStack and FunctionRegistry the spec
// describes as owned exclusively by the evaluator for the duration of
// a run (spec §5): no state survives past Run returning.
type Evaluator struct {
	registry *registry.Registry
	stack    *scope.Stack
	std      stdlib.Stdlib

	// defTypes is the active DEFtype map, mutated in source order as
	// Run's main pass walks DefType items — never snapshotted, so a
	// function body called mid-run observes whatever the map holds at
	// call time (spec §4.6's non-retroactivity decision, SPEC_FULL.md).
	defTypes map[byte]token.Qualifier

	// funcNames[i] is the Name of the function whose body is executing
	// in frame i (index 0, the global frame, is never read). Pushed and
	// popped in lockstep with stack.Push/Pop so a bare reference to the
	// enclosing function's own identifier — its return slot — resolves
	// to the function's declared qualifier rather than going through
	// DEFtype like an ordinary variable (see resolveNameForFrame).
	funcNames []ast.Name
}

// New returns an Evaluator ready to run a single Program against std.
func New(std stdlib.Stdlib) *Evaluator {
	return &Evaluator{
		registry:  registry.New(),
		stack:     scope.NewStack(),
		std:       std,
		defTypes:  make(map[byte]token.Qualifier),
		funcNames: []ast.Name{{}},
	}
}

// Run executes program to completion (spec §4.6's public entry). A
// SYSTEM call ends the run early and is not itself an error.
func Run(program *ast.Program, std stdlib.Stdlib) error {
	return New(std).Run(program)
}

// Run drives the two walks spec.md §4.6 describes as a single
// pre-pass plus main pass: the pre-pass registers every function
// declaration/implementation across the whole program first (so
// forward references resolve regardless of textual order), then the
// main pass walks the program again in order, applying DefType
// directives and executing statements as it reaches them.
func (e *Evaluator) Run(program *ast.Program) error {
	if err := e.registerFunctions(program); err != nil {
		return err
	}
	return e.runMainPass(program)
}

func (e *Evaluator) registerFunctions(program *ast.Program) error {
	for _, item := range program.Items {
		switch item.Kind {
		case ast.ItemFunctionDeclaration:
			d := item.FuncDecl
			if err := e.registry.RegisterDeclaration(d.Name, d.Params, item.Pos); err != nil {
				return err
			}
		case ast.ItemFunctionImplementation:
			impl := item.FuncImpl
			if err := e.registry.RegisterImplementation(impl.Name, impl.Params, impl.Body, item.Pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Evaluator) runMainPass(program *ast.Program) error {
	defer func() {
		// Frame conservation (spec §8): unwind any frames a panic-free
		// error path left pushed. Ordinary control flow never leaves
		// extra frames, but this keeps the invariant under a future
		// caller that retries Run with the same Evaluator.
		for e.stack.Depth() > 1 {
			e.stack.Pop()
		}
	}()

	for _, item := range program.Items {
		switch item.Kind {
		case ast.ItemDefType:
			e.applyDefType(item.DefType)
		case ast.ItemStatement:
			if err := e.execStatement(item.Statement); err != nil {
				if err == stdlib.ErrHalt {
					return nil
				}
				return err
			}
		}
	}
	return nil
}

func (e *Evaluator) applyDefType(dt *ast.DefType) {
	for c := dt.From; c <= dt.To; c++ {
		e.defTypes[c] = dt.Qualifier
		if c == 'Z' {
			break // guard against an inverted range reaching the byte wraparound
		}
	}
}

// resolveQualifier returns name's explicit sigil, or its DEFtype
// default, or single-precision (BASIC's ambient default) if no
// DEFtype directive covers its leading letter (spec §3, §4.6).
func (e *Evaluator) resolveQualifier(name ast.Name) token.Qualifier {
	if name.Qualifier != token.None {
		return name.Qualifier
	}
	if len(name.Ident) == 0 {
		return token.BangSingle
	}
	lead := upperLetter(name.Ident[0])
	if q, ok := e.defTypes[lead]; ok {
		return q
	}
	return token.BangSingle
}

func upperLetter(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// resolveNameForFrame resolves name to the Name actually used as a
// frame key: an ordinary variable resolves via the live DEFtype map,
// but a bare reference to the enclosing function's own identifier —
// its return slot — always resolves to that function's declared
// qualifier (or single-precision default), regardless of what the
// DEFtype map currently says for its leading letter. This keeps a
// function's return-value assignments and the Found-path return read
// (functions.go) using the same key no matter when DEFtype directives
// appear relative to the function's definition.
func (e *Evaluator) resolveNameForFrame(name ast.Name) ast.Name {
	if depth := e.stack.Depth(); depth > 1 {
		fn := e.funcNames[depth-1]
		if strings.EqualFold(fn.Ident, name.Ident) {
			return ast.Name{Ident: fn.Ident, Qualifier: effectiveFuncQualifier(fn)}
		}
	}
	return ast.Name{Ident: name.Ident, Qualifier: e.resolveQualifier(name)}
}

// effectiveFuncQualifier is a function identifier's qualifier: its
// explicit sigil, or single-precision if none was written. Function
// identifiers never consult DEFtype (functions.go), sidestepping any
// ordering question between a function's position in source and a
// DEFtype directive elsewhere — see DESIGN.md.
func effectiveFuncQualifier(name ast.Name) token.Qualifier {
	if name.Qualifier != token.None {
		return name.Qualifier
	}
	return token.BangSingle
}
