package natural

import "github.com/agbru/limbcalc/internal/rounding"

// CheckedRoundToMultiple returns the multiple of y chosen by m among the two
// multiples bracketing x, and its ordering against x. A zero y admits only
// zero, which Down, Floor and Nearest select for any x. ok is false when no
// multiple satisfies m.
func (x *Natural) CheckedRoundToMultiple(y *Natural, m rounding.Mode) (*Natural, rounding.Ordering, bool) {
	if y.IsZero() {
		switch {
		case x.IsZero():
			return Zero(), rounding.Equal, true
		case m == rounding.Down || m == rounding.Floor || m == rounding.Nearest:
			return Zero(), rounding.Less, true
		}
		return nil, rounding.Equal, false
	}
	q, o, ok := x.CheckedDivRound(y, m)
	if !ok {
		return nil, rounding.Equal, false
	}
	return q.Mul(y), o, true
}

// RoundToMultiple is CheckedRoundToMultiple that panics when no multiple
// satisfies m.
func (x *Natural) RoundToMultiple(y *Natural, m rounding.Mode) (*Natural, rounding.Ordering) {
	z, o, ok := x.CheckedRoundToMultiple(y, m)
	if !ok {
		panic("natural: cannot round to multiple in mode " + m.String())
	}
	return z, o
}

// RoundToMultipleAssign sets x to x.RoundToMultiple(y, m).
func (x *Natural) RoundToMultipleAssign(y *Natural, m rounding.Mode) rounding.Ordering {
	z, o := x.RoundToMultiple(y, m)
	x.setLimbs(z.limbs())
	return o
}

// CheckedRoundToMultipleOfPowerOf2 rounds x to a multiple of 2^k.
func (x *Natural) CheckedRoundToMultipleOfPowerOf2(k uint64, m rounding.Mode) (*Natural, rounding.Ordering, bool) {
	q, o, ok := x.CheckedShrRound(k, m)
	if !ok {
		return nil, rounding.Equal, false
	}
	return q.Shl(k), o, true
}

// RoundToMultipleOfPowerOf2 rounds x to a multiple of 2^k. It panics if m
// is Exact and x is not such a multiple.
func (x *Natural) RoundToMultipleOfPowerOf2(k uint64, m rounding.Mode) (*Natural, rounding.Ordering) {
	z, o, ok := x.CheckedRoundToMultipleOfPowerOf2(k, m)
	if !ok {
		panic("natural: value is not a multiple of the power of two")
	}
	return z, o
}

// RoundToMultipleOfPowerOf2Assign sets x to x.RoundToMultipleOfPowerOf2(k, m).
func (x *Natural) RoundToMultipleOfPowerOf2Assign(k uint64, m rounding.Mode) rounding.Ordering {
	z, o := x.RoundToMultipleOfPowerOf2(k, m)
	x.setLimbs(z.limbs())
	return o
}
