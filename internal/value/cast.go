package value

import (
	"math"

	"github.com/cwbudde/go-basic/internal/basicerrors"
	"github.com/cwbudde/go-basic/internal/token"
)

// Cast converts v to the target qualifier per the lattice in spec
// §4.7, grounded on original_source's casting.rs QBNumberCast table:
// single<->double are lossless/rounding conversions, float->int/long
// rounds half-away-from-zero and range-checks, int<->long range-checks
// only when narrowing, and any numeric<->string crossing is a type
// mismatch. String->string is identity.
func Cast(v Variant, target token.Qualifier) (Variant, error) {
	if v.Kind == KString {
		if target == token.DollarString {
			return v, nil
		}
		return Variant{}, basicerrors.TypeMismatch("cannot cast string to a numeric type")
	}
	if target == token.DollarString {
		return Variant{}, basicerrors.TypeMismatch("cannot cast a numeric value to string")
	}

	switch target {
	case token.BangSingle:
		return castToSingle(v)
	case token.HashDouble:
		return castToDouble(v)
	case token.PercentInteger:
		return castToInt(v)
	case token.AmpersandLong:
		return castToLong(v)
	default:
		// token.None: caller must resolve via DEFtype before casting.
		return Variant{}, basicerrors.TypeMismatch("cannot cast to an unresolved qualifier")
	}
}

func castToSingle(v Variant) (Variant, error) {
	switch v.Kind {
	case KSingle:
		return v, nil
	case KDouble:
		return Single(float32(v.Double)), nil
	case KInteger:
		return Single(float32(v.Int)), nil
	case KLong:
		return Single(float32(v.Long)), nil
	}
	panic("unreachable")
}

func castToDouble(v Variant) (Variant, error) {
	switch v.Kind {
	case KSingle:
		return Double(float64(v.Single)), nil
	case KDouble:
		return v, nil
	case KInteger:
		return Double(float64(v.Int)), nil
	case KLong:
		return Double(float64(v.Long)), nil
	}
	panic("unreachable")
}

func castToInt(v Variant) (Variant, error) {
	switch v.Kind {
	case KSingle:
		return floatToInt(float64(v.Single))
	case KDouble:
		return floatToInt(v.Double)
	case KInteger:
		return v, nil
	case KLong:
		if v.Long < math.MinInt32 || v.Long > math.MaxInt32 {
			return Variant{}, basicerrors.Overflow("long to integer")
		}
		return Integer(int32(v.Long)), nil
	}
	panic("unreachable")
}

func castToLong(v Variant) (Variant, error) {
	switch v.Kind {
	case KSingle:
		return floatToLong(float64(v.Single))
	case KDouble:
		return floatToLong(v.Double)
	case KInteger:
		return Long(int64(v.Int)), nil
	case KLong:
		return v, nil
	}
	panic("unreachable")
}

func floatToInt(f float64) (Variant, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Variant{}, basicerrors.CannotCast("non-finite value to integer")
	}
	r := math.Round(f)
	if r < math.MinInt32 || r > math.MaxInt32 {
		return Variant{}, basicerrors.Overflow("float to integer")
	}
	return Integer(int32(r)), nil
}

func floatToLong(f float64) (Variant, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Variant{}, basicerrors.CannotCast("non-finite value to long")
	}
	r := math.Round(f)
	if r < math.MinInt64 || r >= math.MaxInt64 { // float64(MaxInt64) is 2^63, already out of range
		return Variant{}, basicerrors.Overflow("float to long")
	}
	return Long(int64(r)), nil
}
