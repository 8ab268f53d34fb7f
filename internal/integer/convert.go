package integer

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/agbru/limbcalc/internal/natural"
	"github.com/agbru/limbcalc/internal/rounding"
)

func bitSize[T constraints.Integer]() uint64 {
	var z T
	return uint64(unsafe.Sizeof(z)) * 8
}

func isSigned[T constraints.Integer]() bool {
	var z T
	z--
	return z < 0
}

// minOf returns the smallest value of T.
func minOf[T constraints.Integer]() T {
	if !isSigned[T]() {
		return 0
	}
	return T(uint64(1) << (bitSize[T]() - 1))
}

// From returns v as an Integer.
func From[T constraints.Integer](v T) *Integer {
	if v < 0 {
		return fromParts(true, natural.FromUint64(-uint64(v)))
	}
	return fromParts(false, natural.FromUint64(uint64(v)))
}

// ConvertibleTo reports whether x fits T.
func ConvertibleTo[T constraints.Integer](x *Integer) bool {
	if !x.neg {
		return natural.ConvertibleTo[T](&x.abs)
	}
	if !isSigned[T]() {
		return false
	}
	limit := bitSize[T]() - 1
	bits := x.abs.SignificantBits()
	// -2^(w-1) is the one magnitude with w bits that fits.
	return bits <= limit || (bits == limit+1 && x.abs.IsPowerOf2())
}

// CheckedTo returns x as a T, or false if it does not fit.
func CheckedTo[T constraints.Integer](x *Integer) (T, bool) {
	if !ConvertibleTo[T](x) {
		return 0, false
	}
	return WrappingTo[T](x), true
}

// ExactTo returns x as a T. It panics if x does not fit.
func ExactTo[T constraints.Integer](x *Integer) T {
	v, ok := CheckedTo[T](x)
	if !ok {
		panic("integer: value does not fit the target type")
	}
	return v
}

// WrappingTo returns the low bits of the two's-complement form of x
// reinterpreted as T.
func WrappingTo[T constraints.Integer](x *Integer) T {
	v := x.abs.LowUint64()
	if x.neg {
		v = -v
	}
	return T(v)
}

// SaturatingTo returns x as a T, clamped to the range of T.
func SaturatingTo[T constraints.Integer](x *Integer) T {
	if v, ok := CheckedTo[T](x); ok {
		return v
	}
	if x.neg {
		return minOf[T]()
	}
	return natural.SaturatingTo[T](&x.abs)
}

// CheckedRoundingFromFloat64 converts f to an Integer rounded by m. ok is
// false for NaN and infinities, and when m is Exact and f is not an integer.
func CheckedRoundingFromFloat64(f float64, m rounding.Mode) (*Integer, rounding.Ordering, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, rounding.Equal, false
	}
	neg := math.Signbit(f)
	n, o, ok := natural.CheckedRoundingFromFloat64(math.Abs(f), magnitudeMode(neg, m))
	return signed(neg, n, o, ok)
}

// RoundingFromFloat64 converts f to an Integer rounded by m. It panics on
// NaN and infinities, and on inexact values under Exact.
func RoundingFromFloat64(f float64, m rounding.Mode) (*Integer, rounding.Ordering) {
	n, o, ok := CheckedRoundingFromFloat64(f, m)
	if !ok {
		panic("integer: float cannot be rounded to an Integer")
	}
	return n, o
}

// ConvertibleFromFloat64 reports whether f is an integer.
func ConvertibleFromFloat64(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// CheckedFromFloat64 converts f exactly, or returns false if f is not an
// integer.
func CheckedFromFloat64(f float64) (*Integer, bool) {
	n, _, ok := CheckedRoundingFromFloat64(f, rounding.Exact)
	return n, ok
}

// ExactFromFloat64 converts f exactly. It panics if f is not an integer.
func ExactFromFloat64(f float64) *Integer {
	n, ok := CheckedFromFloat64(f)
	if !ok {
		panic("integer: float is not an integer")
	}
	return n
}

// CheckedRoundingToFloat64 converts x to the float64 chosen by m. ok is
// false if m is Exact and x has no exact float64 form.
func (x *Integer) CheckedRoundingToFloat64(m rounding.Mode) (float64, rounding.Ordering, bool) {
	f, o, ok := x.abs.CheckedRoundingToFloat64(magnitudeMode(x.neg, m))
	if !ok {
		return 0, rounding.Equal, false
	}
	if x.neg {
		return -f, o.Reverse(), true
	}
	return f, o, true
}

// RoundingToFloat64 converts x to the float64 chosen by m. It panics if m is
// Exact and x has no exact float64 form.
func (x *Integer) RoundingToFloat64(m rounding.Mode) (float64, rounding.Ordering) {
	f, o, ok := x.CheckedRoundingToFloat64(m)
	if !ok {
		panic("integer: value is not exactly representable as a float64")
	}
	return f, o
}

// CheckedToFloat64 returns x as a float64 if the conversion is exact.
func (x *Integer) CheckedToFloat64() (float64, bool) {
	f, _, ok := x.CheckedRoundingToFloat64(rounding.Exact)
	return f, ok
}

// SciMantissaAndExponent returns m with 1 <= |m| < 2 and the sign of x, and
// e with x ~= m * 2^e. It panics if x is zero.
func (x *Integer) SciMantissaAndExponent() (float64, uint64) {
	m, e := x.abs.SciMantissaAndExponent()
	if x.neg {
		m = -m
	}
	return m, e
}
