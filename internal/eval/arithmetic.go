package eval

import (
	"strings"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/token"
	"github.com/cwbudde/go-basic/internal/value"
)

// numericRank orders the numeric kinds integer < long < single <
// double (spec §4.6); -1 marks the non-numeric string kind.
func numericRank(k value.Kind) int {
	switch k {
	case value.KInteger:
		return 0
	case value.KLong:
		return 1
	case value.KSingle:
		return 2
	case value.KDouble:
		return 3
	default:
		return -1
	}
}

func qualifierForKind(k value.Kind) token.Qualifier {
	switch k {
	case value.KInteger:
		return token.PercentInteger
	case value.KLong:
		return token.AmpersandLong
	case value.KSingle:
		return token.BangSingle
	case value.KDouble:
		return token.HashDouble
	default:
		return token.DollarString
	}
}

// evalArithmetic implements spec §4.6's Binary arithmetic rules:
// string+string concatenates, any other string mix is a type
// mismatch, two integers divided widen to single (the minimal
// dialect's only "/" special case), and every other pair promotes to
// the wider numeric type and operates in that type's own
// representation.
func evalArithmetic(op ast.BinOp, a, b value.Variant) (value.Variant, error) {
	if a.Kind == value.KString || b.Kind == value.KString {
		if op == ast.OpAdd && a.Kind == value.KString && b.Kind == value.KString {
			return value.String(a.Str + b.Str), nil
		}
		return value.Variant{}, basicerrors.TypeMismatch("arithmetic operand mixes string and non-string")
	}

	if op == ast.OpDiv && a.Kind == value.KInteger && b.Kind == value.KInteger {
		if b.Int == 0 {
			return value.Variant{}, basicerrors.DivisionByZero()
		}
		return value.Single(float32(a.Int) / float32(b.Int)), nil
	}

	rank := numericRank(a.Kind)
	if r := numericRank(b.Kind); r > rank {
		rank = r
	}
	target := qualifierForKind(kindForRank(rank))

	ac, err := value.Cast(a, target)
	if err != nil {
		return value.Variant{}, err
	}
	bc, err := value.Cast(b, target)
	if err != nil {
		return value.Variant{}, err
	}

	switch ac.Kind {
	case value.KInteger:
		return arithInt(op, ac.Int, bc.Int)
	case value.KLong:
		return arithLong(op, ac.Long, bc.Long)
	case value.KSingle:
		return arithSingle(op, ac.Single, bc.Single)
	default:
		return arithDouble(op, ac.Double, bc.Double)
	}
}

func kindForRank(rank int) value.Kind {
	switch rank {
	case 0:
		return value.KInteger
	case 1:
		return value.KLong
	case 2:
		return value.KSingle
	default:
		return value.KDouble
	}
}

func arithInt(op ast.BinOp, a, b int32) (value.Variant, error) {
	switch op {
	case ast.OpAdd:
		return value.Integer(a + b), nil
	case ast.OpSub:
		return value.Integer(a - b), nil
	case ast.OpMul:
		return value.Integer(a * b), nil
	default:
		if b == 0 {
			return value.Variant{}, basicerrors.DivisionByZero()
		}
		return value.Single(float32(a) / float32(b)), nil
	}
}

func arithLong(op ast.BinOp, a, b int64) (value.Variant, error) {
	switch op {
	case ast.OpAdd:
		return value.Long(a + b), nil
	case ast.OpSub:
		return value.Long(a - b), nil
	case ast.OpMul:
		return value.Long(a * b), nil
	default:
		if b == 0 {
			return value.Variant{}, basicerrors.DivisionByZero()
		}
		return value.Long(a / b), nil
	}
}

func arithSingle(op ast.BinOp, a, b float32) (value.Variant, error) {
	switch op {
	case ast.OpAdd:
		return value.Single(a + b), nil
	case ast.OpSub:
		return value.Single(a - b), nil
	case ast.OpMul:
		return value.Single(a * b), nil
	default:
		if b == 0 {
			return value.Variant{}, basicerrors.DivisionByZero()
		}
		return value.Single(a / b), nil
	}
}

func arithDouble(op ast.BinOp, a, b float64) (value.Variant, error) {
	switch op {
	case ast.OpAdd:
		return value.Double(a + b), nil
	case ast.OpSub:
		return value.Double(a - b), nil
	case ast.OpMul:
		return value.Double(a * b), nil
	default:
		if b == 0 {
			return value.Variant{}, basicerrors.DivisionByZero()
		}
		return value.Double(a / b), nil
	}
}

// evalComparison implements spec §4.6's comparison rules: numeric
// uses promoted comparison, string uses lexicographic, yielding
// integer -1 for true and 0 for false.
func evalComparison(op ast.BinOp, a, b value.Variant) (value.Variant, error) {
	var cmp int
	switch {
	case a.Kind == value.KString && b.Kind == value.KString:
		cmp = strings.Compare(a.Str, b.Str)
	case a.Kind == value.KString || b.Kind == value.KString:
		return value.Variant{}, basicerrors.TypeMismatch("comparison operand mixes string and non-string")
	default:
		af, bf := a.Float64(), b.Float64()
		switch {
		case af < bf:
			cmp = -1
		case af > bf:
			cmp = 1
		default:
			cmp = 0
		}
	}

	var truth bool
	switch op {
	case ast.OpEq:
		truth = cmp == 0
	case ast.OpNe:
		truth = cmp != 0
	case ast.OpLt:
		truth = cmp < 0
	case ast.OpLe:
		truth = cmp <= 0
	case ast.OpGt:
		truth = cmp > 0
	case ast.OpGe:
		truth = cmp >= 0
	}
	if truth {
		return value.Integer(-1), nil
	}
	return value.Integer(0), nil
}
