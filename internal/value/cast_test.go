package value_test

import (
	"testing"

	"github.com/cwbudde/go-basic/internal/token"
	"github.com/cwbudde/go-basic/internal/value"
)

func TestCastRoundsHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int32
	}{
		{2.5, 3},
		{-2.5, -3},
		{2.4, 2},
		{-2.4, -2},
	}
	for _, c := range cases {
		got, err := value.Cast(value.Double(c.in), token.PercentInteger)
		if err != nil {
			t.Fatalf("Cast(%v): %v", c.in, err)
		}
		if got.Int != c.want {
			t.Errorf("Cast(%v) = %d, want %d", c.in, got.Int, c.want)
		}
	}
}

func TestCastStringNumericMismatch(t *testing.T) {
	if _, err := value.Cast(value.String("x"), token.BangSingle); err == nil {
		t.Fatal("expected error casting string to single")
	}
	if _, err := value.Cast(value.Integer(1), token.DollarString); err == nil {
		t.Fatal("expected error casting integer to string")
	}
}

func TestCastStringIdentity(t *testing.T) {
	got, err := value.Cast(value.String("hi"), token.DollarString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "hi" {
		t.Errorf("got %q, want %q", got.Str, "hi")
	}
}

func TestCastLongToIntegerOverflow(t *testing.T) {
	if _, err := value.Cast(value.Long(1<<40), token.PercentInteger); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestCastIsIdempotentOnSameKind(t *testing.T) {
	v := value.Single(3.5)
	got, err := value.Cast(v, token.BangSingle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != v {
		t.Errorf("Cast to the same qualifier changed the value: got %+v, want %+v", got, v)
	}
}
