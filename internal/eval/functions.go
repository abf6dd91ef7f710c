package eval

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/registry"
	"github.com/cwbudde/go-basic/internal/value"
)

// evalFunctionCall evaluates arguments left-to-right, then dispatches
// on the three-way registry status (spec §4.5, §4.6):
//   - Found: push a frame, bind parameters positionally (coercing each
//     argument to its parameter's qualifier), execute the body, read
//     the return value from the frame under the function's own name,
//     pop the frame.
//   - DeclaredOnly: a forward DECLARE with no implementation — error.
//   - NotFound: the "undefined function tolerant" rule — a string
//     argument is a type mismatch, otherwise the call evaluates to the
//     zero of the function name's effective qualifier.
func (e *Evaluator) evalFunctionCall(call *ast.Expression) (value.Variant, error) {
	args := make([]value.Variant, len(call.Args))
	for i, argExpr := range call.Args {
		v, err := e.evalExpression(argExpr)
		if err != nil {
			return value.Variant{}, err
		}
		args[i] = v
	}

	impl, status := e.registry.Lookup(call.Name)
	switch status {
	case registry.Found:
		return e.callFunction(impl, args)
	case registry.DeclaredOnly:
		return value.Variant{}, basicerrors.SubprogramNotDefined(call.Name.String())
	default: // registry.NotFound
		for _, a := range args {
			if a.Kind == value.KString {
				return value.Variant{}, basicerrors.TypeMismatch("string argument to an undefined function")
			}
		}
		return value.Zero(effectiveFuncQualifier(call.Name)), nil
	}
}

// callFunction binds args into a fresh frame and executes impl's body.
func (e *Evaluator) callFunction(impl *registry.Implementation, args []value.Variant) (value.Variant, error) {
	if len(args) != len(impl.Params) {
		return value.Variant{}, basicerrors.ArityMismatch(impl.Name.String(), len(impl.Params), len(args))
	}

	e.stack.Push()
	e.funcNames = append(e.funcNames, impl.Name)
	defer func() {
		e.funcNames = e.funcNames[:len(e.funcNames)-1]
		e.stack.Pop()
	}()

	frame := e.stack.Current()
	for i, param := range impl.Params {
		casted, err := value.Cast(args[i], e.resolveQualifier(param))
		if err != nil {
			return value.Variant{}, err
		}
		frame.Set(e.resolveNameForFrame(param), casted)
	}

	if err := e.execStatements(impl.Body); err != nil {
		return value.Variant{}, err
	}

	retName := ast.Name{Ident: impl.Name.Ident, Qualifier: effectiveFuncQualifier(impl.Name)}
	ret, ok := frame.Get(retName)
	if !ok {
		ret = value.Zero(retName.Qualifier)
	}
	return ret, nil
}
