package eval

import (
	"testing"

	"github.com/cwbudde/go-basic/internal/ast"
	"github.com/cwbudde/go-basic/internal/value"
)

func TestIntegerDivisionWidensToSingle(t *testing.T) {
	got, err := evalArithmetic(ast.OpDiv, value.Integer(7), value.Integer(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KSingle {
		t.Fatalf("expected KSingle, got %v", got.Kind)
	}
	if got.Single != 3.5 {
		t.Errorf("got %v, want 3.5", got.Single)
	}
}

func TestArithmeticPromotesToWiderRank(t *testing.T) {
	got, err := evalArithmetic(ast.OpAdd, value.Integer(1), value.Double(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KDouble {
		t.Fatalf("expected KDouble, got %v", got.Kind)
	}
	if got.Double != 1.5 {
		t.Errorf("got %v, want 1.5", got.Double)
	}
}

func TestStringConcatenation(t *testing.T) {
	got, err := evalArithmetic(ast.OpAdd, value.String("foo"), value.String("bar"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "foobar" {
		t.Errorf("got %q, want %q", got.Str, "foobar")
	}
}

func TestMixedStringArithmeticIsTypeMismatch(t *testing.T) {
	if _, err := evalArithmetic(ast.OpAdd, value.String("x"), value.Integer(1)); err == nil {
		t.Fatal("expected type mismatch error")
	}
}

func TestDivisionByZero(t *testing.T) {
	if _, err := evalArithmetic(ast.OpDiv, value.Double(1), value.Double(0)); err == nil {
		t.Fatal("expected division by zero error")
	}
	if _, err := evalArithmetic(ast.OpDiv, value.Long(1), value.Long(0)); err == nil {
		t.Fatal("expected division by zero error")
	}
}

func TestComparisonYieldsBasicBooleans(t *testing.T) {
	truth, err := evalComparison(ast.OpLt, value.Integer(1), value.Integer(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if truth.Int != -1 {
		t.Errorf("got %d, want -1 (true)", truth.Int)
	}

	falsy, err := evalComparison(ast.OpGt, value.Integer(1), value.Integer(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if falsy.Int != 0 {
		t.Errorf("got %d, want 0 (false)", falsy.Int)
	}
}

func TestStringComparisonIsLexicographic(t *testing.T) {
	truth, err := evalComparison(ast.OpLt, value.String("abc"), value.String("abd"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if truth.Int != -1 {
		t.Errorf("got %d, want -1 (true)", truth.Int)
	}
}
