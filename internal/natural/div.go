package natural

import (
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/rounding"
)

// DivMod returns the quotient and remainder of x / y. It panics if y == 0.
func (x *Natural) DivMod(y *Natural) (q, r *Natural) {
	if a, ok := x.toLimb(); ok {
		if b, ok := y.toLimb(); ok {
			if b == 0 {
				panic("natural: division by zero")
			}
			return FromLimb(a / b), FromLimb(a % b)
		}
	}
	qs, rs := divModNat(x.limbs(), y.limbs())
	return fromLimbs(qs), fromLimbs(rs)
}

// Div returns floor(x / y). It panics if y == 0.
func (x *Natural) Div(y *Natural) *Natural {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns x mod y. It panics if y == 0.
func (x *Natural) Mod(y *Natural) *Natural {
	_, r := x.DivMod(y)
	return r
}

// DivAssign sets x = floor(x / y).
func (x *Natural) DivAssign(y *Natural) {
	q, _ := divModNat(x.limbs(), y.limbs())
	x.setLimbs(q)
}

// ModAssign sets x = x mod y.
func (x *Natural) ModAssign(y *Natural) {
	_, r := divModNat(x.limbs(), y.limbs())
	x.setLimbs(r)
}

// CeilingDivNegMod returns ceil(x / y) and the non-negative r with
// x == q*y - r. It panics if y == 0.
func (x *Natural) CeilingDivNegMod(y *Natural) (q, r *Natural) {
	q, r = x.DivMod(y)
	if r.IsZero() {
		return q, r
	}
	return q.AddLimb(1), y.Sub(r)
}

// DivModLimb returns x / d and x mod d. It panics if d == 0.
func (x *Natural) DivModLimb(d limb.Limb) (*Natural, limb.Limb) {
	if d == 0 {
		panic("natural: division by zero")
	}
	xs := x.limbs()
	q := make([]limb.Limb, len(xs))
	r := limb.DivModLimb(q, xs, d)
	return fromLimbs(q), r
}

// ModLimb returns x mod d. It panics if d == 0.
func (x *Natural) ModLimb(d limb.Limb) limb.Limb {
	if d == 0 {
		panic("natural: division by zero")
	}
	return limb.ModLimb(x.limbs(), d)
}

// DivisibleBy reports whether y divides x. Only zero is divisible by zero.
func (x *Natural) DivisibleBy(y *Natural) bool {
	if y.IsZero() {
		return x.IsZero()
	}
	_, r := x.DivMod(y)
	return r.IsZero()
}

// DivExact returns x / y when y is known to divide x. It panics if y == 0 or
// if the division leaves a remainder.
func (x *Natural) DivExact(y *Natural) *Natural {
	q, r := x.DivMod(y)
	if !r.IsZero() {
		panic("natural: inexact division in DivExact")
	}
	return q
}

// EqMod reports whether x and y are congruent modulo m. Modulo zero this is
// equality.
func (x *Natural) EqMod(y, m *Natural) bool {
	if m.IsZero() {
		return x.Eq(y)
	}
	return x.AbsDiff(y).DivisibleBy(m)
}

// half compares the remainder r of a division by y with y/2.
func half(r, y *Natural) int {
	return r.Cmp(y.Sub(r))
}

// CheckedDivRound returns x / y rounded by m and its ordering against the
// exact quotient. ok is false if m is Exact and y does not divide x. It panics
// if y == 0.
func (x *Natural) CheckedDivRound(y *Natural, m rounding.Mode) (*Natural, rounding.Ordering, bool) {
	q, r := x.DivMod(y)
	if r.IsZero() {
		return q, rounding.Equal, true
	}
	up, ok := rounding.RoundsUp(m, half(r, y), q.IsOdd())
	if !ok {
		return nil, rounding.Equal, false
	}
	if up {
		return q.AddLimb(1), rounding.Greater, true
	}
	return q, rounding.Less, true
}

// DivRound returns x / y rounded by m and its ordering against the exact
// quotient. It panics if y == 0 or if m is Exact and the division is inexact.
func (x *Natural) DivRound(y *Natural, m rounding.Mode) (*Natural, rounding.Ordering) {
	q, o, ok := x.CheckedDivRound(y, m)
	if !ok {
		panic("natural: division is not exact")
	}
	return q, o
}

// DivRoundAssign sets x to x / y rounded by m and returns the ordering.
func (x *Natural) DivRoundAssign(y *Natural, m rounding.Mode) rounding.Ordering {
	q, o := x.DivRound(y, m)
	x.setLimbs(q.limbs())
	return o
}
