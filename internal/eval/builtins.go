package eval

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/token"
	"github.com/cwbudde/go-basic/internal/value"
)

// execPrint evaluates each argument and passes its PRINT-formatted
// text to the stdlib collaborator as one line (spec §6).
func (e *Evaluator) execPrint(args []*ast.Expression) error {
	parts := make([]string, len(args))
	for i, a := range args {
		v, err := e.evalExpression(a)
		if err != nil {
			return err
		}
		parts[i] = v.String()
	}
	if err := e.std.Print(parts); err != nil {
		return basicerrors.Host(err)
	}
	return nil
}

// execInput reads one line from the stdlib collaborator and, if a
// target variable was given, stores it coerced to that variable's
// qualifier (spec §6's input() contract, extended the way classic
// BASIC's "INPUT var" statement binds its result — an expansion since
// spec.md's Stdlib interface names the primitive but not the
// statement's own argument handling).
func (e *Evaluator) execInput(args []*ast.Expression) error {
	if len(args) > 1 {
		return basicerrors.ArityMismatch("INPUT", 1, len(args))
	}

	line, err := e.std.Input()
	if err != nil {
		return basicerrors.Host(err)
	}
	if len(args) == 0 {
		return nil
	}

	target := args[0]
	if target.Kind != ast.ExprVariable {
		return basicerrors.TypeMismatch("INPUT target must be a variable")
	}
	name := e.resolveNameForFrame(target.Name)
	in := value.String(line)
	if name.Qualifier != token.DollarString {
		f, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if perr != nil {
			return basicerrors.TypeMismatch("INPUT expected a numeric value")
		}
		in = value.Double(f)
	}
	casted, err := value.Cast(in, name.Qualifier)
	if err != nil {
		return err
	}
	e.stack.Current().Set(name, casted)
	return nil
}

// execSystem requests termination via the stdlib collaborator (spec
// §6); any arguments are ignored, matching bare "SYSTEM" usage.
func (e *Evaluator) execSystem(_ []*ast.Expression) error {
	return e.std.System()
}
