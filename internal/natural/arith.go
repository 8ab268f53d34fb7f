package natural

import (
	"github.com/agbru/limbcalc/internal/limb"
)

// Add returns x + y.
func (x *Natural) Add(y *Natural) *Natural {
	if a, ok := x.toLimb(); ok {
		if b, ok := y.toLimb(); ok {
			s, c := limb.AddWithCarry(a, b, 0)
			if c == 0 {
				return FromLimb(s)
			}
			return fromLimbs([]limb.Limb{s, c})
		}
	}
	return fromLimbs(addNat(x.limbs(), y.limbs()))
}

// AddLimb returns x + v.
func (x *Natural) AddLimb(v limb.Limb) *Natural {
	return fromLimbs(addLimbNat(x.limbs(), v))
}

// AddAssign sets x = x + y.
func (x *Natural) AddAssign(y *Natural) {
	x.setLimbs(addNat(x.limbs(), y.limbs()))
}

// AddLimbAssign sets x = x + v.
func (x *Natural) AddLimbAssign(v limb.Limb) {
	x.setLimbs(addLimbNat(x.limbs(), v))
}

// CheckedSub returns x - y, or false if y > x.
func (x *Natural) CheckedSub(y *Natural) (*Natural, bool) {
	if a, ok := x.toLimb(); ok {
		if b, ok := y.toLimb(); ok {
			if b > a {
				return nil, false
			}
			return FromLimb(a - b), true
		}
	}
	z, ok := subNat(x.limbs(), y.limbs())
	if !ok {
		return nil, false
	}
	return fromLimbs(z), true
}

// Sub returns x - y. It panics if y > x.
func (x *Natural) Sub(y *Natural) *Natural {
	z, ok := x.CheckedSub(y)
	if !ok {
		panic("natural: subtraction result is negative")
	}
	return z
}

// SaturatingSub returns x - y, or 0 if y > x.
func (x *Natural) SaturatingSub(y *Natural) *Natural {
	z, ok := x.CheckedSub(y)
	if !ok {
		return Zero()
	}
	return z
}

// CheckedSubLimb returns x - v, or false if v > x.
func (x *Natural) CheckedSubLimb(v limb.Limb) (*Natural, bool) {
	z, ok := subNat(x.limbs(), limb.Trim([]limb.Limb{v}))
	if !ok {
		return nil, false
	}
	return fromLimbs(z), true
}

// SubAssign sets x = x - y. It panics if y > x, leaving x unchanged.
func (x *Natural) SubAssign(y *Natural) {
	z, ok := subNat(x.limbs(), y.limbs())
	if !ok {
		panic("natural: subtraction result is negative")
	}
	x.setLimbs(z)
}

// AbsDiff returns |x - y|.
func (x *Natural) AbsDiff(y *Natural) *Natural {
	if x.Cmp(y) < 0 {
		x, y = y, x
	}
	z, _ := subNat(x.limbs(), y.limbs())
	return fromLimbs(z)
}

// Mul returns x * y.
func (x *Natural) Mul(y *Natural) *Natural {
	if a, ok := x.toLimb(); ok {
		if b, ok := y.toLimb(); ok {
			lo, hi := limb.OverflowingMul(a, b)
			return fromLimbs([]limb.Limb{lo, hi})
		}
	}
	return fromLimbs(mulNat(x.limbs(), y.limbs()))
}

// MulLimb returns x * v.
func (x *Natural) MulLimb(v limb.Limb) *Natural {
	return fromLimbs(mulNat(x.limbs(), limb.Trim([]limb.Limb{v})))
}

// MulAssign sets x = x * y.
func (x *Natural) MulAssign(y *Natural) {
	x.setLimbs(mulNat(x.limbs(), y.limbs()))
}

// Square returns x * x.
func (x *Natural) Square() *Natural {
	xs := x.limbs()
	return fromLimbs(mulNat(xs, xs))
}

// Pow returns x^exp, with 0^0 == 1.
func (x *Natural) Pow(exp uint64) *Natural {
	result := []limb.Limb{1}
	base := x.limbs()
	for exp != 0 {
		if exp&1 == 1 {
			result = limb.Trim(mulNat(result, base))
		}
		exp >>= 1
		if exp != 0 {
			base = limb.Trim(mulNat(base, base))
		}
	}
	return fromLimbs(result)
}

// AddMul returns x + y*z.
func (x *Natural) AddMul(y, z *Natural) *Natural {
	return fromLimbs(addNat(x.limbs(), limb.Trim(mulNat(y.limbs(), z.limbs()))))
}

// AddMulLimb returns x + y*v. It accumulates in place with limb.AddMulLimb.
func (x *Natural) AddMulLimb(y *Natural, v limb.Limb) *Natural {
	xs, ys := x.limbs(), y.limbs()
	n := max(len(xs), len(ys)) + 2
	z := make([]limb.Limb, n)
	copy(z, xs)
	if len(ys) > 0 && v != 0 {
		c := limb.AddMulLimb(z, ys, v)
		limb.AddVW(z[len(ys):], z[len(ys):], c)
	}
	return fromLimbs(z)
}

// AddMulAssign sets x = x + y*z.
func (x *Natural) AddMulAssign(y, z *Natural) {
	x.setLimbs(addNat(x.limbs(), limb.Trim(mulNat(y.limbs(), z.limbs()))))
}

// CheckedSubMul returns x - y*z, or false if y*z > x.
func (x *Natural) CheckedSubMul(y, z *Natural) (*Natural, bool) {
	d, ok := subNat(x.limbs(), limb.Trim(mulNat(y.limbs(), z.limbs())))
	if !ok {
		return nil, false
	}
	return fromLimbs(d), true
}

// SubMul returns x - y*z. It panics if y*z > x.
func (x *Natural) SubMul(y, z *Natural) *Natural {
	d, ok := x.CheckedSubMul(y, z)
	if !ok {
		panic("natural: subtraction result is negative")
	}
	return d
}

// SaturatingSubMul returns x - y*z, or 0 if y*z > x.
func (x *Natural) SaturatingSubMul(y, z *Natural) *Natural {
	d, ok := x.CheckedSubMul(y, z)
	if !ok {
		return Zero()
	}
	return d
}

// CheckedSubMulLimb returns x - y*v, or false if y*v > x. It subtracts in
// place with limb.SubMulLimb and reads the sign from the final borrow.
func (x *Natural) CheckedSubMulLimb(y *Natural, v limb.Limb) (*Natural, bool) {
	xs, ys := x.limbs(), y.limbs()
	if v == 0 || len(ys) == 0 {
		return x.Clone(), true
	}
	if len(ys) > len(xs) {
		return nil, false
	}
	z := make([]limb.Limb, len(xs))
	copy(z, xs)
	b := limb.SubMulLimb(z, ys, v)
	if limb.SubVW(z[len(ys):], z[len(ys):], b) != 0 {
		return nil, false
	}
	return fromLimbs(z), true
}

// SubMulAssign sets x = x - y*z. It panics if y*z > x, leaving x unchanged.
func (x *Natural) SubMulAssign(y, z *Natural) {
	d, ok := subNat(x.limbs(), limb.Trim(mulNat(y.limbs(), z.limbs())))
	if !ok {
		panic("natural: subtraction result is negative")
	}
	x.setLimbs(d)
}
