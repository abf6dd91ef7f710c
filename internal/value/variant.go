// Package value implements the runtime value domain: the Variant
// tagged union and its coercion lattice (spec §3, §4.7).
package value

import (
	"fmt"

	"github.com/cwbudde/go-basic/internal/token"
)

// Kind tags the payload carried by a Variant.
type Kind int

const (
	KSingle Kind = iota
	KDouble
	KInteger
	KLong
	KString
)

// Variant is the interpreter's runtime value: exactly one of five
// BASIC types, selected by Kind.
type Variant struct {
	Kind   Kind
	Single float32
	Double float64
	Int    int32
	Long   int64
	Str    string
}

func Single(f float32) Variant { return Variant{Kind: KSingle, Single: f} }
func Double(f float64) Variant { return Variant{Kind: KDouble, Double: f} }
func Integer(i int32) Variant  { return Variant{Kind: KInteger, Int: i} }
func Long(i int64) Variant     { return Variant{Kind: KLong, Long: i} }
func String(s string) Variant  { return Variant{Kind: KString, Str: s} }

// Zero returns the default zero/empty value for a fully resolved
// qualifier (token.None has no zero value and must not reach here —
// callers resolve None via the active DEFtype map first).
func Zero(q token.Qualifier) Variant {
	switch q {
	case token.BangSingle:
		return Single(0)
	case token.HashDouble:
		return Double(0)
	case token.PercentInteger:
		return Integer(0)
	case token.AmpersandLong:
		return Long(0)
	case token.DollarString:
		return String("")
	default:
		return Single(0)
	}
}

// Qualifier returns the type qualifier corresponding to v's Kind.
func (v Variant) Qualifier() token.Qualifier {
	switch v.Kind {
	case KSingle:
		return token.BangSingle
	case KDouble:
		return token.HashDouble
	case KInteger:
		return token.PercentInteger
	case KLong:
		return token.AmpersandLong
	default:
		return token.DollarString
	}
}

// Float64 returns v's value widened to float64. Only valid for
// numeric variants; panics on a string variant (callers must check
// Kind first — this is an internal helper used after promotion).
func (v Variant) Float64() float64 {
	switch v.Kind {
	case KSingle:
		return float64(v.Single)
	case KDouble:
		return v.Double
	case KInteger:
		return float64(v.Int)
	case KLong:
		return float64(v.Long)
	default:
		panic("value: Float64 called on a string Variant")
	}
}

// String renders the variant's value as BASIC's PRINT would.
func (v Variant) String() string {
	switch v.Kind {
	case KSingle:
		return trimFloat(float64(v.Single))
	case KDouble:
		return trimFloat(v.Double)
	case KInteger:
		return fmt.Sprintf("%d", v.Int)
	case KLong:
		return fmt.Sprintf("%d", v.Long)
	default:
		return v.Str
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
