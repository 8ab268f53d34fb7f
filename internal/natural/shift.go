package natural

import "github.com/agbru/limbcalc/internal/rounding"

// Shl returns x << bits.
func (x *Natural) Shl(bits uint64) *Natural {
	return fromLimbs(shlNat(x.limbs(), bits))
}

// ShlAssign sets x = x << bits.
func (x *Natural) ShlAssign(bits uint64) {
	x.setLimbs(shlNat(x.limbs(), bits))
}

// Shr returns floor(x / 2^bits).
func (x *Natural) Shr(bits uint64) *Natural {
	return fromLimbs(shrNat(x.limbs(), bits))
}

// ShrAssign sets x = floor(x / 2^bits).
func (x *Natural) ShrAssign(bits uint64) {
	x.setLimbs(shrNat(x.limbs(), bits))
}

// halfPowerOf2 compares x mod 2^bits with 2^(bits-1), for bits > 0.
func (x *Natural) halfPowerOf2(bits uint64) int {
	if !x.GetBit(bits - 1) {
		return -1
	}
	if x.DivisibleByPowerOf2(bits - 1) {
		return 0
	}
	return 1
}

// CheckedShrRound returns x / 2^bits rounded by m. ok is false if m is Exact
// and nonzero bits would be shifted out.
func (x *Natural) CheckedShrRound(bits uint64, m rounding.Mode) (*Natural, rounding.Ordering, bool) {
	q := x.Shr(bits)
	if bits == 0 || x.DivisibleByPowerOf2(bits) {
		return q, rounding.Equal, true
	}
	up, ok := rounding.RoundsUp(m, x.halfPowerOf2(bits), q.IsOdd())
	if !ok {
		return nil, rounding.Equal, false
	}
	if up {
		return q.AddLimb(1), rounding.Greater, true
	}
	return q, rounding.Less, true
}

// ShrRound returns x / 2^bits rounded by m. It panics if m is Exact and the
// shift is inexact.
func (x *Natural) ShrRound(bits uint64, m rounding.Mode) (*Natural, rounding.Ordering) {
	q, o, ok := x.CheckedShrRound(bits, m)
	if !ok {
		panic("natural: right shift is not exact")
	}
	return q, o
}

// ShrRoundAssign sets x to x / 2^bits rounded by m and returns the ordering.
func (x *Natural) ShrRoundAssign(bits uint64, m rounding.Mode) rounding.Ordering {
	q, o := x.ShrRound(bits, m)
	x.setLimbs(q.limbs())
	return o
}
