package integer

import (
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/natural"
)

// twosLimbs yields the limbs of the two's-complement form of an Integer,
// least significant first and sign-extended forever.
//
// For a negative value -a the limbs are those of ^(a-1): the zero limbs at
// the bottom of a stay zero, the first nonzero limb is negated, and every
// limb after it is complemented. Past the magnitude the walk yields 0 or
// limb.Max.
type twosLimbs struct {
	abs *natural.Natural
	n   int
	i   int
	neg bool
	// carry is set while only zero limbs of a negative magnitude were seen.
	carry bool
}

func newTwosLimbs(x *Integer) *twosLimbs {
	return &twosLimbs{abs: &x.abs, n: x.abs.LimbCount(), neg: x.neg, carry: x.neg}
}

func (t *twosLimbs) next() limb.Limb {
	i := t.i
	t.i++
	if i >= t.n {
		if t.neg {
			return limb.Max
		}
		return 0
	}
	v := t.abs.LimbAt(i)
	switch {
	case !t.neg:
		return v
	case t.carry:
		if v == 0 {
			return 0
		}
		t.carry = false
		return -v
	}
	return ^v
}

// extension returns the limb that repeats past the magnitude of x.
func (x *Integer) extension() limb.Limb {
	if x.neg {
		return limb.Max
	}
	return 0
}

// negateLimbs replaces xs with its two's-complement negation modulo
// 2^(W*len(xs)).
func negateLimbs(xs []limb.Limb) {
	i := 0
	for i < len(xs) && xs[i] == 0 {
		i++
	}
	if i == len(xs) {
		return
	}
	xs[i] = -xs[i]
	for i++; i < len(xs); i++ {
		xs[i] = ^xs[i]
	}
}

// fromTwosLimbs decodes a sign-extended two's-complement limb slice, taking
// ownership of it.
func fromTwosLimbs(xs []limb.Limb) *Integer {
	if len(xs) == 0 || xs[len(xs)-1]&limb.HighBit == 0 {
		return fromParts(false, natural.FromLimbsAsc(xs))
	}
	negateLimbs(xs)
	return fromParts(true, natural.FromLimbsAsc(xs))
}

// TwosComplementLimbsAsc returns the shortest two's-complement encoding of
// x, least significant limb first. The top bit of the last limb is the sign.
// Zero encodes as an empty slice.
func (x *Integer) TwosComplementLimbsAsc() []limb.Limb {
	n := x.abs.LimbCount()
	if n == 0 {
		return nil
	}
	t := newTwosLimbs(x)
	out := make([]limb.Limb, n, n+1)
	for i := range out {
		out[i] = t.next()
	}
	if top := out[n-1]&limb.HighBit != 0; top != x.neg {
		out = append(out, x.extension())
	}
	return out
}

// FromTwosComplementLimbsAsc decodes a two's-complement limb slice whose
// last limb carries the sign bit. xs is not modified.
func FromTwosComplementLimbsAsc(xs []limb.Limb) *Integer {
	c := make([]limb.Limb, len(xs))
	copy(c, xs)
	return fromTwosLimbs(c)
}

// GetBit reports whether bit i of the two's-complement form of x is set.
func (x *Integer) GetBit(i uint64) bool {
	if !x.neg {
		return x.abs.GetBit(i)
	}
	tz, _ := x.abs.TrailingZeros()
	switch {
	case i < tz:
		return false
	case i == tz:
		return true
	}
	return !x.abs.GetBit(i)
}

// ModPowerOf2 returns x mod 2^k, which is never negative.
func (x *Integer) ModPowerOf2(k uint64) *natural.Natural {
	r := x.abs.ModPowerOf2(k)
	if !x.neg || r.IsZero() {
		return r
	}
	return natural.One().Shl(k).Sub(r)
}

// RemPowerOf2 returns the remainder of x / 2^k truncated toward zero, with
// the sign of x.
func (x *Integer) RemPowerOf2(k uint64) *Integer {
	return fromParts(x.neg, x.abs.ModPowerOf2(k))
}

// GetBits returns bits [start, end) of the two's-complement form of x as a
// Natural. Bits past the magnitude of a negative value read as ones. It
// panics if start > end.
func (x *Integer) GetBits(start, end uint64) *natural.Natural {
	if start > end {
		panic("integer: GetBits start exceeds end")
	}
	return x.ModPowerOf2(end).Shr(start)
}

// bitwise combines the two's-complement forms of x and y limb by limb.
func bitwise(x, y *Integer, op func(a, b limb.Limb) limb.Limb) *Integer {
	n := max(x.abs.LimbCount(), y.abs.LimbCount()) + 1
	tx, ty := newTwosLimbs(x), newTwosLimbs(y)
	z := make([]limb.Limb, n)
	for i := range z {
		z[i] = op(tx.next(), ty.next())
	}
	return fromTwosLimbs(z)
}

// And returns x & y.
func (x *Integer) And(y *Integer) *Integer {
	return bitwise(x, y, func(a, b limb.Limb) limb.Limb { return a & b })
}

// Or returns x | y.
func (x *Integer) Or(y *Integer) *Integer {
	return bitwise(x, y, func(a, b limb.Limb) limb.Limb { return a | b })
}

// Xor returns x ^ y.
func (x *Integer) Xor(y *Integer) *Integer {
	return bitwise(x, y, func(a, b limb.Limb) limb.Limb { return a ^ b })
}

// AndNot returns x &^ y.
func (x *Integer) AndNot(y *Integer) *Integer {
	return bitwise(x, y, func(a, b limb.Limb) limb.Limb { return a &^ b })
}

// Not returns ^x, which is -x - 1.
func (x *Integer) Not() *Integer {
	if x.neg {
		return fromParts(false, x.abs.Sub(natural.One()))
	}
	return fromParts(true, x.abs.AddLimb(1))
}

// EqModPowerOf2 reports whether x and y agree in the low k bits of their
// two's-complement forms, that is whether 2^k divides x - y.
func (x *Integer) EqModPowerOf2(y *Integer, k uint64) bool {
	n := uint64(max(x.abs.LimbCount(), y.abs.LimbCount()))
	tx, ty := newTwosLimbs(x), newTwosLimbs(y)
	full, rem := k/limb.Width, k%limb.Width
	for i := uint64(0); i < full; i++ {
		if i >= n {
			// Only sign extension remains.
			return x.neg == y.neg
		}
		if tx.next() != ty.next() {
			return false
		}
	}
	if rem == 0 {
		return true
	}
	mask := limb.Limb(1)<<rem - 1
	return (tx.next()^ty.next())&mask == 0
}

// CheckedHammingDistance returns the number of differing bits between the
// two's-complement forms of x and y. ok is false when the signs differ,
// since the forms then differ in infinitely many positions.
func (x *Integer) CheckedHammingDistance(y *Integer) (d uint64, ok bool) {
	if x.neg != y.neg {
		return 0, false
	}
	n := max(x.abs.LimbCount(), y.abs.LimbCount())
	tx, ty := newTwosLimbs(x), newTwosLimbs(y)
	for range n {
		d += uint64(limb.OnesCount(tx.next() ^ ty.next()))
	}
	return d, true
}
