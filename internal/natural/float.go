package natural

import (
	"math"

	"github.com/agbru/limbcalc/internal/rounding"
)

const mantissaBits = 53

// decompose splits a finite positive f into a 53-bit integer mantissa and a
// binary exponent with f == mant * 2^exp.
func decompose(f float64) (mant uint64, exp int) {
	frac, e := math.Frexp(f)
	return uint64(math.Ldexp(frac, mantissaBits)), e - mantissaBits
}

// CheckedRoundingFromFloat64 converts f to a Natural rounded by m. ok is false
// if f is NaN or infinite, if f is negative and m would need a negative
// result, or if m is Exact and f is not an integer.
func CheckedRoundingFromFloat64(f float64, m rounding.Mode) (*Natural, rounding.Ordering, bool) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return nil, rounding.Equal, false
	case f == 0:
		return Zero(), rounding.Equal, true
	case f < 0:
		if m == rounding.Down || m == rounding.Ceiling || m == rounding.Nearest {
			return Zero(), rounding.Greater, true
		}
		return nil, rounding.Equal, false
	}
	mant, exp := decompose(f)
	n := FromUint64(mant)
	if exp >= 0 {
		return n.Shl(uint64(exp)), rounding.Equal, true
	}
	return n.CheckedShrRound(uint64(-exp), m)
}

// RoundingFromFloat64 converts f to a Natural rounded by m. Negative values
// round to 0 under Down, Ceiling and Nearest. It panics on NaN, infinities,
// negative values under the other modes, and inexact values under Exact.
func RoundingFromFloat64(f float64, m rounding.Mode) (*Natural, rounding.Ordering) {
	n, o, ok := CheckedRoundingFromFloat64(f, m)
	if !ok {
		panic("natural: float cannot be rounded to a Natural")
	}
	return n, o
}

// ConvertibleFromFloat64 reports whether f is a non-negative integer.
func ConvertibleFromFloat64(f float64) bool {
	return !math.IsInf(f, 0) && f >= 0 && f == math.Trunc(f)
}

// CheckedFromFloat64 converts f exactly, or returns false if f is not a
// non-negative integer.
func CheckedFromFloat64(f float64) (*Natural, bool) {
	if !ConvertibleFromFloat64(f) {
		return nil, false
	}
	n, _ := RoundingFromFloat64(f, rounding.Exact)
	return n, true
}

// ExactFromFloat64 converts f exactly. It panics if f is not a non-negative
// integer.
func ExactFromFloat64(f float64) *Natural {
	n, ok := CheckedFromFloat64(f)
	if !ok {
		panic("natural: float is not a non-negative integer")
	}
	return n
}

// CheckedRoundingToFloat64 converts x to the float64 chosen by m. Values past
// the largest finite float become +Inf under Up, Ceiling and Nearest and the
// largest finite float under Down and Floor. ok is false if m is Exact and x
// is not representable.
func (x *Natural) CheckedRoundingToFloat64(m rounding.Mode) (float64, rounding.Ordering, bool) {
	bits := x.SignificantBits()
	if bits <= mantissaBits {
		return float64(x.LowUint64()), rounding.Equal, true
	}
	shift := bits - mantissaBits
	mant, o, ok := x.CheckedShrRound(shift, m)
	if !ok {
		return 0, rounding.Equal, false
	}
	f := math.Ldexp(float64(mant.LowUint64()), int(min(shift, 2048)))
	if math.IsInf(f, 1) {
		switch m {
		case rounding.Down, rounding.Floor:
			return math.MaxFloat64, rounding.Less, true
		case rounding.Exact:
			return 0, rounding.Equal, false
		}
		return f, rounding.Greater, true
	}
	return f, o, true
}

// RoundingToFloat64 is CheckedRoundingToFloat64 that panics when m is Exact
// and x has no exact float64 form.
func (x *Natural) RoundingToFloat64(m rounding.Mode) (float64, rounding.Ordering) {
	f, o, ok := x.CheckedRoundingToFloat64(m)
	if !ok {
		panic("natural: value is not exactly representable as a float64")
	}
	return f, o
}

// CheckedToFloat64 returns x as a float64 if the conversion is exact.
func (x *Natural) CheckedToFloat64() (float64, bool) {
	f, _, ok := x.CheckedRoundingToFloat64(rounding.Exact)
	return f, ok
}

// SciMantissaAndExponent returns m in [1, 2) and e with x ~= m * 2^e, the
// mantissa rounded to nearest. It panics if x is zero.
func (x *Natural) SciMantissaAndExponent() (float64, uint64) {
	bits := x.SignificantBits()
	if bits == 0 {
		panic("natural: zero has no scientific form")
	}
	e := bits - 1
	if bits <= mantissaBits {
		return math.Ldexp(float64(x.LowUint64()), -int(e)), e
	}
	mant, _ := x.ShrRound(bits-mantissaBits, rounding.Nearest)
	if mant.SignificantBits() > mantissaBits {
		return 1, e + 1
	}
	return math.Ldexp(float64(mant.LowUint64()), 1-mantissaBits), e
}
