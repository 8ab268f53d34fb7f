package integer

import (
	"github.com/agbru/limbcalc/internal/natural"
	"github.com/agbru/limbcalc/internal/rounding"
)

func checkDivisor(y *Integer) {
	if y.IsZero() {
		panic("integer: division by zero")
	}
}

// DivRem returns the quotient truncated toward zero and the remainder, which
// has the sign of x. It panics if y == 0.
func (x *Integer) DivRem(y *Integer) (q, r *Integer) {
	checkDivisor(y)
	qa, ra := x.abs.DivMod(&y.abs)
	return fromParts(x.neg != y.neg, qa), fromParts(x.neg, ra)
}

// DivMod returns the quotient rounded toward negative infinity and the
// remainder, which has the sign of y. It panics if y == 0.
func (x *Integer) DivMod(y *Integer) (q, r *Integer) {
	checkDivisor(y)
	qa, ra := x.abs.DivMod(&y.abs)
	if x.neg == y.neg || ra.IsZero() {
		return fromParts(x.neg != y.neg, qa), fromParts(y.neg, ra)
	}
	return fromParts(true, qa.AddLimb(1)), fromParts(y.neg, y.abs.Sub(ra))
}

// CeilingDivMod returns the quotient rounded toward positive infinity and
// the remainder x - q*y, whose sign is opposite to y. It panics if y == 0.
func (x *Integer) CeilingDivMod(y *Integer) (q, r *Integer) {
	checkDivisor(y)
	qa, ra := x.abs.DivMod(&y.abs)
	if x.neg != y.neg || ra.IsZero() {
		return fromParts(x.neg != y.neg, qa), fromParts(x.neg, ra)
	}
	return fromParts(false, qa.AddLimb(1)), fromParts(!y.neg, y.abs.Sub(ra))
}

// Div returns floor(x / y).
func (x *Integer) Div(y *Integer) *Integer {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns x mod y with the sign of y.
func (x *Integer) Mod(y *Integer) *Integer {
	_, r := x.DivMod(y)
	return r
}

// Rem returns the remainder of truncated division, with the sign of x.
func (x *Integer) Rem(y *Integer) *Integer {
	_, r := x.DivRem(y)
	return r
}

// DivExact returns x / y when y divides x. It panics otherwise.
func (x *Integer) DivExact(y *Integer) *Integer {
	checkDivisor(y)
	qa, ra := x.abs.DivMod(&y.abs)
	if !ra.IsZero() {
		panic("integer: inexact division in DivExact")
	}
	return fromParts(x.neg != y.neg, qa)
}

// DivisibleBy reports whether y divides x. Only zero is divisible by zero.
func (x *Integer) DivisibleBy(y *Integer) bool {
	return x.abs.DivisibleBy(&y.abs)
}

// EqMod reports whether x and y are congruent modulo m. Modulo zero this is
// equality.
func (x *Integer) EqMod(y, m *Integer) bool {
	if m.IsZero() {
		return x.Eq(y)
	}
	return x.Sub(y).DivisibleBy(m)
}

// magnitudeMode returns the mode to apply to the magnitude of a result with
// the given sign.
func magnitudeMode(neg bool, m rounding.Mode) rounding.Mode {
	if neg {
		return m.Neg()
	}
	return m
}

// signed applies a sign to a rounded magnitude and its ordering.
func signed(neg bool, abs *natural.Natural, o rounding.Ordering, ok bool) (*Integer, rounding.Ordering, bool) {
	if !ok {
		return nil, rounding.Equal, false
	}
	if neg {
		o = o.Reverse()
	}
	return fromParts(neg, abs), o, true
}

// CheckedDivRound returns x / y rounded by m. Negative quotients round their
// magnitude with m.Neg(), so Nearest breaks ties toward the even quotient on
// both sides of zero. ok is false if m is Exact and y does not divide x.
func (x *Integer) CheckedDivRound(y *Integer, m rounding.Mode) (*Integer, rounding.Ordering, bool) {
	checkDivisor(y)
	neg := x.neg != y.neg
	q, o, ok := x.abs.CheckedDivRound(&y.abs, magnitudeMode(neg, m))
	return signed(neg, q, o, ok)
}

// DivRound returns x / y rounded by m. It panics if y == 0 or if m is Exact
// and the division is inexact.
func (x *Integer) DivRound(y *Integer, m rounding.Mode) (*Integer, rounding.Ordering) {
	q, o, ok := x.CheckedDivRound(y, m)
	if !ok {
		panic("integer: division is not exact")
	}
	return q, o
}

// DivRoundAssign sets x to x / y rounded by m and returns the ordering.
func (x *Integer) DivRoundAssign(y *Integer, m rounding.Mode) rounding.Ordering {
	q, o := x.DivRound(y, m)
	x.setParts(q.neg, &q.abs)
	return o
}
