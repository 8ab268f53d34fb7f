package natural

import (
	"unsafe"

	"golang.org/x/exp/constraints"
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

// valueBits returns the number of bits available for non-negative values of T.
func valueBits[T constraints.Integer]() uint64 {
	if isSigned[T]() {
		return bitSize[T]() - 1
	}
	return bitSize[T]()
}

// maxOf returns the largest value of T.
func maxOf[T constraints.Integer]() T {
	return T(^uint64(0) >> (64 - valueBits[T]()))
}

// ConvertibleTo reports whether x fits T.
func ConvertibleTo[T constraints.Integer](x *Natural) bool {
	return x.SignificantBits() <= valueBits[T]()
}

// CheckedTo returns x as a T, or false if it does not fit.
func CheckedTo[T constraints.Integer](x *Natural) (T, bool) {
	if !ConvertibleTo[T](x) {
		return 0, false
	}
	return T(x.LowUint64()), true
}

// ExactTo returns x as a T. It panics if x does not fit.
func ExactTo[T constraints.Integer](x *Natural) T {
	v, ok := CheckedTo[T](x)
	if !ok {
		panic("natural: value does not fit the target type")
	}
	return v
}

// WrappingTo returns x mod 2^n reinterpreted as T, where n is the width of T.
func WrappingTo[T constraints.Integer](x *Natural) T {
	return T(x.LowUint64())
}

// SaturatingTo returns x as a T, clamped to the largest value of T.
func SaturatingTo[T constraints.Integer](x *Natural) T {
	if v, ok := CheckedTo[T](x); ok {
		return v
	}
	return maxOf[T]()
}

// CheckedFrom returns v as a Natural, or false if v is negative.
func CheckedFrom[T constraints.Integer](v T) (*Natural, bool) {
	if v < 0 {
		return nil, false
	}
	return FromUint64(uint64(v)), true
}

// ExactFrom returns v as a Natural. It panics if v is negative.
func ExactFrom[T constraints.Integer](v T) *Natural {
	n, ok := CheckedFrom(v)
	if !ok {
		panic("natural: cannot convert a negative value")
	}
	return n
}

// SaturatingFrom returns v as a Natural, clamping negative values to 0.
func SaturatingFrom[T constraints.Integer](v T) *Natural {
	if v < 0 {
		return Zero()
	}
	return FromUint64(uint64(v))
}
