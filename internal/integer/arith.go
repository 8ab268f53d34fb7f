package integer

import (
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/natural"
)

// addSigned returns (-1)^aNeg*a + (-1)^bNeg*b as a sign and a fresh magnitude.
func addSigned(aNeg bool, a *natural.Natural, bNeg bool, b *natural.Natural) (bool, *natural.Natural) {
	if aNeg == bNeg {
		return aNeg, a.Add(b)
	}
	if d, ok := a.CheckedSub(b); ok {
		return aNeg, d
	}
	return bNeg, b.Sub(a)
}

// Add returns x + y.
func (x *Integer) Add(y *Integer) *Integer {
	return fromParts(addSigned(x.neg, &x.abs, y.neg, &y.abs))
}

// Sub returns x - y.
func (x *Integer) Sub(y *Integer) *Integer {
	return fromParts(addSigned(x.neg, &x.abs, !y.neg, &y.abs))
}

// AddAssign sets x = x + y.
func (x *Integer) AddAssign(y *Integer) {
	x.setParts(addSigned(x.neg, &x.abs, y.neg, &y.abs))
}

// SubAssign sets x = x - y.
func (x *Integer) SubAssign(y *Integer) {
	x.setParts(addSigned(x.neg, &x.abs, !y.neg, &y.abs))
}

// Mul returns x * y.
func (x *Integer) Mul(y *Integer) *Integer {
	return fromParts(x.neg != y.neg, x.abs.Mul(&y.abs))
}

// MulAssign sets x = x * y.
func (x *Integer) MulAssign(y *Integer) {
	x.setParts(x.neg != y.neg, x.abs.Mul(&y.abs))
}

// Square returns x * x.
func (x *Integer) Square() *Integer { return fromParts(false, x.abs.Square()) }

// Pow returns x^exp, with 0^0 == 1.
func (x *Integer) Pow(exp uint64) *Integer {
	return fromParts(x.neg && exp&1 == 1, x.abs.Pow(exp))
}

// AddMul returns x + y*z.
func (x *Integer) AddMul(y, z *Integer) *Integer {
	return fromParts(addSigned(x.neg, &x.abs, y.neg != z.neg, y.abs.Mul(&z.abs)))
}

// SubMul returns x - y*z.
func (x *Integer) SubMul(y, z *Integer) *Integer {
	return fromParts(addSigned(x.neg, &x.abs, y.neg == z.neg, y.abs.Mul(&z.abs)))
}

// AddMulAssign sets x = x + y*z.
func (x *Integer) AddMulAssign(y, z *Integer) {
	x.setParts(addSigned(x.neg, &x.abs, y.neg != z.neg, y.abs.Mul(&z.abs)))
}

// SubMulAssign sets x = x - y*z.
func (x *Integer) SubMulAssign(y, z *Integer) {
	x.setParts(addSigned(x.neg, &x.abs, y.neg == z.neg, y.abs.Mul(&z.abs)))
}

// addMulLimb returns x + (-1)^pNeg * y*m. When the product has the sign of x
// the magnitudes accumulate; otherwise the product is subtracted from |x|
// and, if that underflows, the sign flips to the product's.
func (x *Integer) addMulLimb(pNeg bool, y *natural.Natural, m limb.Limb) (bool, *natural.Natural) {
	if pNeg == x.neg {
		return x.neg, x.abs.AddMulLimb(y, m)
	}
	if d, ok := x.abs.CheckedSubMulLimb(y, m); ok {
		return x.neg, d
	}
	return pNeg, y.MulLimb(m).Sub(&x.abs)
}

// AddMulLimb returns x + y*m.
func (x *Integer) AddMulLimb(y *Integer, m limb.Limb) *Integer {
	return fromParts(x.addMulLimb(y.neg, &y.abs, m))
}

// SubMulLimb returns x - y*m.
func (x *Integer) SubMulLimb(y *Integer, m limb.Limb) *Integer {
	return fromParts(x.addMulLimb(!y.neg, &y.abs, m))
}
