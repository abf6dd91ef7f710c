package eval

import (
	"strings"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/value"
)

// execStatement dispatches on Kind (spec §4.6).
func (e *Evaluator) execStatement(stmt *ast.Statement) error {
	switch stmt.Kind {
	case ast.StmtAssignment:
		return e.execAssignment(stmt.Assignment)
	case ast.StmtSubCall:
		return e.execSubCall(stmt.SubCall, stmt.Pos)
	case ast.StmtForLoop:
		return e.execForLoop(stmt.ForLoop)
	case ast.StmtIfBlock:
		return e.execIfBlock(stmt.IfBlock)
	default:
		return basicerrors.TypeMismatch("unknown statement kind")
	}
}

func (e *Evaluator) execStatements(body []*ast.Statement) error {
	for _, s := range body {
		if err := e.execStatement(s); err != nil {
			return err
		}
	}
	return nil
}

// execAssignment evaluates the RHS, casts it to the LHS qualifier,
// and stores it in the current frame (spec §4.6).
func (e *Evaluator) execAssignment(a *ast.Assignment) error {
	rhs, err := e.evalExpression(a.Value)
	if err != nil {
		return err
	}
	target := e.resolveNameForFrame(a.Target)
	casted, err := value.Cast(rhs, target.Qualifier)
	if err != nil {
		return err
	}
	e.stack.Current().Set(target, casted)
	return nil
}

// execSubCall dispatches a built-in by name; any other identifier is
// an "Unknown sub" error (spec §4.6) — the minimal dialect never
// allows a user-defined function to be invoked in statement position.
func (e *Evaluator) execSubCall(call *ast.SubCall, pos ast.Pos) error {
	switch strings.ToUpper(call.Name) {
	case "PRINT":
		return e.execPrint(call.Args)
	case "INPUT":
		return e.execInput(call.Args)
	case "SYSTEM":
		return e.execSystem(call.Args)
	default:
		return basicerrors.UnknownSub(call.Name)
	}
}

// execIfBlock evaluates conditions in order and runs the first
// matching block, else the else block if present (spec §4.6).
func (e *Evaluator) execIfBlock(ifb *ast.IfBlock) error {
	matched, err := e.evalCondTruth(ifb.If.Cond)
	if err != nil {
		return err
	}
	if matched {
		return e.execStatements(ifb.If.Body)
	}
	for _, elseIf := range ifb.ElseIfs {
		matched, err := e.evalCondTruth(elseIf.Cond)
		if err != nil {
			return err
		}
		if matched {
			return e.execStatements(elseIf.Body)
		}
	}
	if ifb.Else != nil {
		return e.execStatements(ifb.Else)
	}
	return nil
}

// evalCondTruth evaluates cond and reports whether it is BASIC-true
// (the integer -1 convention spec §4.6 assigns to comparisons); any
// nonzero numeric value is treated as true, matching how a bare
// numeric variable used as a condition would behave.
func (e *Evaluator) evalCondTruth(cond *ast.Expression) (bool, error) {
	v, err := e.evalExpression(cond)
	if err != nil {
		return false, err
	}
	if v.Kind == value.KString {
		return false, basicerrors.TypeMismatch("condition must be numeric")
	}
	return v.Float64() != 0, nil
}
