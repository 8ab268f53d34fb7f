package integer

import "github.com/agbru/limbcalc/internal/rounding"

// Shl returns x * 2^bits.
func (x *Integer) Shl(bits uint64) *Integer {
	return fromParts(x.neg, x.abs.Shl(bits))
}

// ShlAssign sets x = x * 2^bits.
func (x *Integer) ShlAssign(bits uint64) {
	x.setParts(x.neg, x.abs.Shl(bits))
}

// Shr returns floor(x / 2^bits), the arithmetic right shift of x.
func (x *Integer) Shr(bits uint64) *Integer {
	q, _ := x.ShrRound(bits, rounding.Floor)
	return q
}

// ShrAssign sets x = floor(x / 2^bits).
func (x *Integer) ShrAssign(bits uint64) {
	x.ShrRoundAssign(bits, rounding.Floor)
}

// CheckedShrRound returns x / 2^bits rounded by m. ok is false if m is Exact
// and the shift is inexact.
func (x *Integer) CheckedShrRound(bits uint64, m rounding.Mode) (*Integer, rounding.Ordering, bool) {
	q, o, ok := x.abs.CheckedShrRound(bits, magnitudeMode(x.neg, m))
	return signed(x.neg, q, o, ok)
}

// ShrRound returns x / 2^bits rounded by m. It panics if m is Exact and the
// shift is inexact.
func (x *Integer) ShrRound(bits uint64, m rounding.Mode) (*Integer, rounding.Ordering) {
	q, o, ok := x.CheckedShrRound(bits, m)
	if !ok {
		panic("integer: right shift is not exact")
	}
	return q, o
}

// ShrRoundAssign sets x to x / 2^bits rounded by m and returns the ordering.
func (x *Integer) ShrRoundAssign(bits uint64, m rounding.Mode) rounding.Ordering {
	q, o := x.ShrRound(bits, m)
	x.setParts(q.neg, &q.abs)
	return o
}

// CheckedRoundToMultiple rounds x to a multiple of |y| by m. A zero y admits
// only zero. ok is false when no multiple satisfies m.
func (x *Integer) CheckedRoundToMultiple(y *Integer, m rounding.Mode) (*Integer, rounding.Ordering, bool) {
	r, o, ok := x.abs.CheckedRoundToMultiple(&y.abs, magnitudeMode(x.neg, m))
	return signed(x.neg, r, o, ok)
}

// RoundToMultiple rounds x to a multiple of |y| by m. It panics when no
// multiple satisfies m.
func (x *Integer) RoundToMultiple(y *Integer, m rounding.Mode) (*Integer, rounding.Ordering) {
	r, o, ok := x.CheckedRoundToMultiple(y, m)
	if !ok {
		panic("integer: cannot round to multiple in mode " + m.String())
	}
	return r, o
}

// RoundToMultipleAssign sets x to x.RoundToMultiple(y, m).
func (x *Integer) RoundToMultipleAssign(y *Integer, m rounding.Mode) rounding.Ordering {
	r, o := x.RoundToMultiple(y, m)
	x.setParts(r.neg, &r.abs)
	return o
}

// CheckedRoundToMultipleOfPowerOf2 rounds x to a multiple of 2^k by m.
func (x *Integer) CheckedRoundToMultipleOfPowerOf2(k uint64, m rounding.Mode) (*Integer, rounding.Ordering, bool) {
	r, o, ok := x.abs.CheckedRoundToMultipleOfPowerOf2(k, magnitudeMode(x.neg, m))
	return signed(x.neg, r, o, ok)
}

// RoundToMultipleOfPowerOf2 rounds x to a multiple of 2^k by m. It panics if
// m is Exact and x is not such a multiple.
func (x *Integer) RoundToMultipleOfPowerOf2(k uint64, m rounding.Mode) (*Integer, rounding.Ordering) {
	r, o, ok := x.CheckedRoundToMultipleOfPowerOf2(k, m)
	if !ok {
		panic("integer: value is not a multiple of the power of two")
	}
	return r, o
}

// RoundToMultipleOfPowerOf2Assign sets x to
// x.RoundToMultipleOfPowerOf2(k, m).
func (x *Integer) RoundToMultipleOfPowerOf2Assign(k uint64, m rounding.Mode) rounding.Ordering {
	r, o := x.RoundToMultipleOfPowerOf2(k, m)
	x.setParts(r.neg, &r.abs)
	return o
}
