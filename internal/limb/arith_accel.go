//go:build !limb32 && (amd64 || arm64) && !purego

package limb

// AddVV sets z = x + y limb-wise and returns the carry. x and y must be at
// least as long as z.
func AddVV(z, x, y []Limb) Limb {
	if len(z) == 0 {
		return 0
	}
	return Limb(addVV(words(z), words(x[:len(z)]), words(y[:len(z)])))
}

// SubVV sets z = x - y limb-wise and returns the borrow.
func SubVV(z, x, y []Limb) Limb {
	if len(z) == 0 {
		return 0
	}
	return Limb(subVV(words(z), words(x[:len(z)]), words(y[:len(z)])))
}

// AddVW sets z = x + y and returns the carry out of the top limb.
func AddVW(z, x []Limb, y Limb) Limb {
	if len(z) == 0 {
		return y
	}
	return Limb(addVW(words(z), words(x[:len(z)]), word(y)))
}

// SubVW sets z = x - y and returns the borrow out of the top limb.
func SubVW(z, x []Limb, y Limb) Limb {
	if len(z) == 0 {
		return y
	}
	return Limb(subVW(words(z), words(x[:len(z)]), word(y)))
}

// ShlVU sets z = x << s for s < Width and returns the bits shifted out.
func ShlVU(z, x []Limb, s uint) Limb {
	if s == 0 {
		copy(z, x[:len(z)])
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	return Limb(shlVU(words(z), words(x[:len(z)]), s))
}

// ShrVU sets z = x >> s for s < Width and returns the bits shifted out,
// left-aligned in the result.
func ShrVU(z, x []Limb, s uint) Limb {
	return shrVU_g(z, x, s)
}

// MulAddVWW sets z = x*y + r and returns the high limb of the result.
func MulAddVWW(z, x []Limb, y, r Limb) Limb {
	if len(z) == 0 {
		return r
	}
	return Limb(mulAddVWW(words(z), words(x[:len(z)]), word(y), word(r)))
}

// AddMulLimb adds src*m into dst[:len(src)] with carry propagation and
// returns the carry out, the limb that would be added to dst[len(src)].
// dst must be at least as long as src.
func AddMulLimb(dst, src []Limb, m Limb) Limb {
	if len(src) == 0 {
		return 0
	}
	return Limb(addMulVVW(words(dst[:len(src)]), words(src), word(m)))
}

// SubMulLimb subtracts src*m from dst[:len(src)] with borrow propagation and
// returns the borrow out. A non-zero borrow means the true difference is
// negative when dst has no further limbs.
func SubMulLimb(dst, src []Limb, m Limb) Limb {
	return subMulVVW_g(dst[:len(src)], src, m)
}
