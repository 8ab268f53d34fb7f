package natural

import (
	"math/big"
	"slices"

	"github.com/agbru/limbcalc/internal/limb"
)

// Natural is an arbitrary-precision non-negative integer.
type Natural struct {
	small limb.Limb
	// large is nil unless the value needs two or more limbs.
	large []limb.Limb
}

// Zero returns a new Natural equal to 0.
func Zero() *Natural { return new(Natural) }

// One returns a new Natural equal to 1.
func One() *Natural { return &Natural{small: 1} }

// FromLimb returns a Natural equal to v.
func FromLimb(v limb.Limb) *Natural { return &Natural{small: v} }

// FromUint64 returns a Natural equal to v.
func FromUint64(v uint64) *Natural { return fromLimbs(limb.FromUint64(v)) }

// FromLimbsAsc returns the Natural whose limbs, least significant first, are
// xs. Leading zero limbs are allowed. xs is copied.
func FromLimbsAsc(xs []limb.Limb) *Natural { return fromLimbs(slices.Clone(xs)) }

// FromLimbsDesc is like FromLimbsAsc with the most significant limb first.
func FromLimbsDesc(xs []limb.Limb) *Natural {
	c := slices.Clone(xs)
	slices.Reverse(c)
	return fromLimbs(c)
}

// fromLimbs takes ownership of xs.
func fromLimbs(xs []limb.Limb) *Natural {
	z := new(Natural)
	z.setLimbs(xs)
	return z
}

// setLimbs makes xs the value of z, taking ownership of it.
func (z *Natural) setLimbs(xs []limb.Limb) {
	xs = limb.Trim(xs)
	switch len(xs) {
	case 0:
		z.small, z.large = 0, nil
	case 1:
		z.small, z.large = xs[0], nil
	default:
		z.small, z.large = 0, xs
	}
}

func (z *Natural) set(x *Natural) {
	if z == x {
		return
	}
	z.setLimbs(slices.Clone(x.limbs()))
}

// limbs returns the trimmed magnitude of x. The result may alias x and must
// not be modified.
func (x *Natural) limbs() []limb.Limb {
	if x.large != nil {
		return limb.Trim(x.large)
	}
	if x.small == 0 {
		return nil
	}
	return []limb.Limb{x.small}
}

// toLimb returns the value of x if it fits a single limb.
func (x *Natural) toLimb() (limb.Limb, bool) {
	if x.large == nil {
		return x.small, true
	}
	t := limb.Trim(x.large)
	switch len(t) {
	case 0:
		return 0, true
	case 1:
		return t[0], true
	}
	return 0, false
}

// Clone returns a deep copy of x.
func (x *Natural) Clone() *Natural {
	return fromLimbs(slices.Clone(x.limbs()))
}

// LimbCount returns the number of limbs in the canonical representation of x.
// Zero has no limbs.
func (x *Natural) LimbCount() int { return len(x.limbs()) }

// LimbAt returns limb i of x, least significant first, or 0 past the top.
func (x *Natural) LimbAt(i int) limb.Limb {
	if v, ok := x.toLimb(); ok {
		if i == 0 {
			return v
		}
		return 0
	}
	xs := x.limbs()
	if i < len(xs) {
		return xs[i]
	}
	return 0
}

// LimbsAsc returns a copy of the limbs of x, least significant first.
func (x *Natural) LimbsAsc() []limb.Limb { return slices.Clone(x.limbs()) }

// LimbsDesc returns a copy of the limbs of x, most significant first.
func (x *Natural) LimbsDesc() []limb.Limb {
	c := slices.Clone(x.limbs())
	slices.Reverse(c)
	return c
}

// IsZero reports whether x == 0.
func (x *Natural) IsZero() bool {
	v, ok := x.toLimb()
	return ok && v == 0
}

// IsOdd reports whether x is odd.
func (x *Natural) IsOdd() bool { return x.LimbAt(0)&1 == 1 }

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Natural) Cmp(y *Natural) int {
	a, aok := x.toLimb()
	b, bok := y.toLimb()
	if aok && bok {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	return limb.Cmp(x.limbs(), y.limbs())
}

// CmpLimb compares x with the single limb v.
func (x *Natural) CmpLimb(v limb.Limb) int {
	a, ok := x.toLimb()
	switch {
	case !ok || a > v:
		return 1
	case a < v:
		return -1
	}
	return 0
}

// Eq reports whether x == y.
func (x *Natural) Eq(y *Natural) bool { return x.Cmp(y) == 0 }

// FromBigInt converts a non-negative b. It returns false if b is negative.
func FromBigInt(b *big.Int) (*Natural, bool) {
	if b.Sign() < 0 {
		return nil, false
	}
	return fromLimbs(limb.FromBytesBE(b.Bytes())), true
}

// ToBigInt returns x as a new big.Int.
func (x *Natural) ToBigInt() *big.Int {
	return new(big.Int).SetBytes(limb.ToBytesBE(x.limbs()))
}

// LowUint64 returns x mod 2^64.
func (x *Natural) LowUint64() uint64 {
	if v, ok := x.toLimb(); ok {
		return uint64(v)
	}
	return limb.LowUint64(x.limbs())
}
