package eval

import (
	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/value"
)

// evalExpression walks an Expression to a Variant (spec §4.6).
func (e *Evaluator) evalExpression(expr *ast.Expression) (value.Variant, error) {
	switch expr.Kind {
	case ast.ExprStringLiteral:
		return value.String(expr.Str), nil
	case ast.ExprIntegerLiteral:
		return value.Integer(expr.Int), nil
	case ast.ExprSingleLiteral:
		return value.Single(expr.Single), nil
	case ast.ExprDoubleLiteral:
		return value.Double(expr.Double), nil
	case ast.ExprVariable:
		return e.evalVariable(expr.Name), nil
	case ast.ExprFunctionCall:
		return e.evalFunctionCall(expr)
	case ast.ExprBinary:
		return e.evalBinary(expr)
	default:
		return value.Variant{}, basicerrors.TypeMismatch("unknown expression kind")
	}
}

// evalVariable resolves name's effective qualifier, then looks it up
// in the current frame; a missing variable reads as the qualifier's
// zero/empty value (spec §4.6).
func (e *Evaluator) evalVariable(name ast.Name) value.Variant {
	resolved := e.resolveNameForFrame(name)
	if v, ok := e.stack.Current().Get(resolved); ok {
		return v
	}
	return value.Zero(resolved.Qualifier)
}

// evalBinary dispatches to arithmetic or comparison per op (spec
// §4.6).
func (e *Evaluator) evalBinary(expr *ast.Expression) (value.Variant, error) {
	left, err := e.evalExpression(expr.Left)
	if err != nil {
		return value.Variant{}, err
	}
	right, err := e.evalExpression(expr.Right)
	if err != nil {
		return value.Variant{}, err
	}

	switch expr.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		return evalArithmetic(expr.Op, left, right)
	default:
		return evalComparison(expr.Op, left, right)
	}
}
