//go:build !limb32

package limb

import "math/bits"

// Limb is a single digit of a multi-precision magnitude.
type Limb = uint64

const (
	// Width is the number of bits in a Limb.
	Width = 64
	// LogWidth is log2(Width).
	LogWidth = 6
)

// AddWithCarry returns a + b + carry and the carry out. carry must be 0 or 1.
func AddWithCarry(a, b, carry Limb) (sum, carryOut Limb) {
	return bits.Add64(a, b, carry)
}

// SubWithBorrow returns a - b - borrow and the borrow out. borrow must be 0 or 1.
func SubWithBorrow(a, b, borrow Limb) (diff, borrowOut Limb) {
	return bits.Sub64(a, b, borrow)
}

// OverflowingMul returns the double-width product of a and b as (low, high).
func OverflowingMul(a, b Limb) (lo, hi Limb) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// LeadingZeros returns the number of leading zero bits in x; Width for x == 0.
func LeadingZeros(x Limb) uint { return uint(bits.LeadingZeros64(x)) }

// TrailingZeros returns the number of trailing zero bits in x; Width for x == 0.
func TrailingZeros(x Limb) uint { return uint(bits.TrailingZeros64(x)) }

// OnesCount returns the number of one bits in x.
func OnesCount(x Limb) uint { return uint(bits.OnesCount64(x)) }
