package eval

import (
	"strings"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/value"
)

// execForLoop evaluates lower/upper/step, coerces the counter to its
// own qualifier, and loops while ascending (step > 0: counter ≤
// upper) or descending (step < 0: counter ≥ upper); STEP == 0 is an
// error rather than an infinite loop (spec §4.6, Open Question
// resolved in SPEC_FULL.md §4.6). After the loop exits — including
// zero iterations — the counter holds the first value that failed the
// bound check, matching the Rust original's `while start <= stop`
// shape where `start` is unconditionally advanced each pass.
func (e *Evaluator) execForLoop(f *ast.ForLoop) error {
	if f.NextCounter != nil && !strings.EqualFold(f.NextCounter.Ident, f.Counter.Ident) {
		return basicerrors.NextCounterMismatch(f.Counter.String(), f.NextCounter.String())
	}

	lowerV, err := e.evalExpression(f.Lower)
	if err != nil {
		return err
	}
	upperV, err := e.evalExpression(f.Upper)
	if err != nil {
		return err
	}
	var stepV value.Variant
	if f.Step != nil {
		stepV, err = e.evalExpression(f.Step)
		if err != nil {
			return err
		}
	} else {
		stepV = value.Integer(1)
	}
	if lowerV.Kind == value.KString || upperV.Kind == value.KString || stepV.Kind == value.KString {
		return basicerrors.TypeMismatch("FOR loop bounds must be numeric")
	}

	counterName := e.resolveNameForFrame(f.Counter)
	counter, err := value.Cast(lowerV, counterName.Qualifier)
	if err != nil {
		return err
	}
	step, err := value.Cast(stepV, counterName.Qualifier)
	if err != nil {
		return err
	}
	stepFloat := step.Float64()
	if stepFloat == 0 {
		return basicerrors.ZeroStep()
	}
	ascending := stepFloat > 0

	for {
		cmp := compareFloat(counter.Float64(), upperV.Float64())
		if (ascending && cmp > 0) || (!ascending && cmp < 0) {
			break
		}

		e.stack.Current().Set(counterName, counter)
		if err := e.execStatements(f.Body); err != nil {
			return err
		}

		next, err := evalArithmetic(ast.OpAdd, counter, step)
		if err != nil {
			return err
		}
		counter, err = value.Cast(next, counterName.Qualifier)
		if err != nil {
			return err
		}
	}

	e.stack.Current().Set(counterName, counter)
	return nil
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
