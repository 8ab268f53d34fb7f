package natural

import "github.com/agbru/limbcalc/internal/limb"

// Slice-level helpers. Inputs are trimmed magnitudes and are never modified;
// results are freshly allocated and may carry high zero limbs.

func addNat(x, y []limb.Limb) []limb.Limb {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]limb.Limb, len(x)+1)
	c := limb.AddVV(z[:len(y)], x, y)
	z[len(x)] = limb.AddVW(z[len(y):len(x)], x[len(y):], c)
	return z
}

func addLimbNat(x []limb.Limb, v limb.Limb) []limb.Limb {
	z := make([]limb.Limb, len(x)+1)
	if len(x) == 0 {
		z[0] = v
		return z
	}
	z[len(x)] = limb.AddVW(z[:len(x)], x, v)
	return z
}

// subNat returns x - y and false if y > x.
func subNat(x, y []limb.Limb) ([]limb.Limb, bool) {
	if len(x) < len(y) {
		return nil, false
	}
	z := make([]limb.Limb, len(x))
	b := limb.SubVV(z[:len(y)], x, y)
	b = limb.SubVW(z[len(y):], x[len(y):], b)
	return z, b == 0
}

// subInPlace sets z -= y, which must not underflow.
func subInPlace(z, y []limb.Limb) {
	b := limb.SubVV(z[:len(y)], z, y)
	limb.SubVW(z[len(y):], z[len(y):], b)
}

// addAt adds v * B^off into z, which must be long enough to hold the sum.
func addAt(z, v []limb.Limb, off int) {
	v = limb.Trim(v)
	if len(v) == 0 {
		return
	}
	c := limb.AddVV(z[off:off+len(v)], z[off:], v)
	limb.AddVW(z[off+len(v):], z[off+len(v):], c)
}

const karatsubaThreshold = 40

func mulNat(x, y []limb.Limb) []limb.Limb {
	if len(x) < len(y) {
		x, y = y, x
	}
	switch {
	case len(y) == 0:
		return nil
	case len(y) == 1:
		z := make([]limb.Limb, len(x)+1)
		z[len(x)] = limb.MulAddVWW(z[:len(x)], x, y[0], 0)
		return z
	case len(y) < karatsubaThreshold:
		return basicMul(x, y)
	}
	return karatsuba(x, y)
}

func basicMul(x, y []limb.Limb) []limb.Limb {
	z := make([]limb.Limb, len(x)+len(y))
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = limb.AddMulLimb(z[i:], x, d)
		}
	}
	return z
}

// karatsuba multiplies x by y with len(x) >= len(y) >= karatsubaThreshold.
func karatsuba(x, y []limb.Limb) []limb.Limb {
	m := len(x) / 2
	z := make([]limb.Limb, len(x)+len(y))
	x0, x1 := limb.Trim(x[:m]), x[m:]
	if len(y) <= m {
		addAt(z, mulNat(x0, y), 0)
		addAt(z, mulNat(x1, y), m)
		return z
	}
	y0, y1 := limb.Trim(y[:m]), y[m:]
	z0 := limb.Trim(mulNat(x0, y0))
	z2 := limb.Trim(mulNat(x1, y1))
	z1 := limb.Trim(mulNat(limb.Trim(addNat(x0, x1)), limb.Trim(addNat(y0, y1))))
	subInPlace(z1, z0)
	subInPlace(z1, z2)
	addAt(z, z0, 0)
	addAt(z, z1, m)
	addAt(z, z2, 2*m)
	return z
}

// divModNat returns the quotient and remainder of x / y. It panics if y is
// zero.
func divModNat(x, y []limb.Limb) (q, r []limb.Limb) {
	switch {
	case len(y) == 0:
		panic("natural: division by zero")
	case limb.Cmp(x, y) < 0:
		return nil, append([]limb.Limb(nil), x...)
	case len(y) == 1:
		q = make([]limb.Limb, len(x))
		rem := limb.DivModLimb(q, x, y[0])
		return q, []limb.Limb{rem}
	}
	return limb.DivMod(x, y)
}

func shlNat(x []limb.Limb, bits uint64) []limb.Limb {
	if len(x) == 0 {
		return nil
	}
	n := int(bits / limb.Width)
	s := uint(bits % limb.Width)
	z := make([]limb.Limb, n+len(x)+1)
	z[n+len(x)] = limb.ShlVU(z[n:n+len(x)], x, s)
	return z
}

func shrNat(x []limb.Limb, bits uint64) []limb.Limb {
	n := bits / limb.Width
	if n >= uint64(len(x)) {
		return nil
	}
	s := uint(bits % limb.Width)
	z := make([]limb.Limb, len(x)-int(n))
	limb.ShrVU(z, x[n:], s)
	return z
}
