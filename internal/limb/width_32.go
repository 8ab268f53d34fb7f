//go:build limb32

package limb

import "math/bits"

// Limb is a single digit of a multi-precision magnitude.
type Limb = uint32

const (
	// Width is the number of bits in a Limb.
	Width = 32
	// LogWidth is log2(Width).
	LogWidth = 5
)

// AddWithCarry returns a + b + carry and the carry out. carry must be 0 or 1.
func AddWithCarry(a, b, carry Limb) (sum, carryOut Limb) {
	return bits.Add32(a, b, carry)
}

// SubWithBorrow returns a - b - borrow and the borrow out. borrow must be 0 or 1.
func SubWithBorrow(a, b, borrow Limb) (diff, borrowOut Limb) {
	return bits.Sub32(a, b, borrow)
}

// OverflowingMul returns the double-width product of a and b as (low, high).
func OverflowingMul(a, b Limb) (lo, hi Limb) {
	hi, lo = bits.Mul32(a, b)
	return lo, hi
}

// LeadingZeros returns the number of leading zero bits in x; Width for x == 0.
func LeadingZeros(x Limb) uint { return uint(bits.LeadingZeros32(x)) }

// TrailingZeros returns the number of trailing zero bits in x; Width for x == 0.
func TrailingZeros(x Limb) uint { return uint(bits.TrailingZeros32(x)) }

// OnesCount returns the number of one bits in x.
func OnesCount(x Limb) uint { return uint(bits.OnesCount32(x)) }
