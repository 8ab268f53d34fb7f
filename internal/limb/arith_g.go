// This file provides portable implementations of the vector operations on
// limb slices. They carry the suffix _g and back the exported functions on
// builds without the math/big fast path; tests use them as the reference.

package limb

// Many loops below test i < len(z) && i < len(x) so that the compiler can
// drop the bounds checks in the body. len(z) is the real condition.

// addVV_g sets z = x + y and returns the carry (0 or 1).
func addVV_g(z, x, y []Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = AddWithCarry(x[i], y[i], c)
	}
	return c
}

// subVV_g sets z = x - y and returns the borrow (0 or 1).
func subVV_g(z, x, y []Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = SubWithBorrow(x[i], y[i], c)
	}
	return c
}

// addVW_g sets z = x + y and returns the carry (0 or 1). Once the carry dies
// the remaining limbs are copied.
func addVW_g(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if &z[i] != &x[i] {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = AddWithCarry(x[i], c, 0)
	}
	return c
}

// subVW_g sets z = x - y and returns the borrow (0 or 1).
func subVW_g(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if &z[i] != &x[i] {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = SubWithBorrow(x[i], c, 0)
	}
	return c
}

// shlVU_g sets z = x << s for 0 <= s < Width and returns the bits shifted out.
func shlVU_g(z, x []Limb, s uint) (c Limb) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	s &= Width - 1
	ŝ := Width - s
	ŝ &= Width - 1
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// shrVU_g sets z = x >> s for 0 <= s < Width and returns the bits shifted out,
// left-aligned.
func shrVU_g(z, x []Limb, s uint) (c Limb) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	s &= Width - 1
	ŝ := Width - s
	ŝ &= Width - 1
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

// mulAddVWW_g sets z = x*y + r and returns the high limb.
func mulAddVWW_g(z, x []Limb, y, r Limb) (c Limb) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = MulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW_g sets z += x*y and returns the carry limb.
func addMulVVW_g(z, x []Limb, y Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := MulAddWWW(x[i], y, z[i])
		var cc Limb
		z[i], cc = AddWithCarry(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// subMulVVW_g sets z -= x*y and returns the borrow limb: the amount that would
// have to be subtracted from a next, more significant limb of z.
func subMulVVW_g(z, x []Limb, y Limb) (c Limb) {
	for i := 0; i < len(z) && i < len(x); i++ {
		lo, hi := OverflowingMul(x[i], y)
		var b1, b2 Limb
		lo, b1 = AddWithCarry(lo, c, 0)
		z[i], b2 = SubWithBorrow(z[i], lo, 0)
		c = hi + b1 + b2
	}
	return c
}
