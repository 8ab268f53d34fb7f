//go:build limb32 || !(amd64 || arm64) || purego

package limb

// Accelerated reports whether vector operations use the math/big kernels.
const Accelerated = false

// AddVV sets z = x + y limb-wise and returns the carry. x and y must be at
// least as long as z.
func AddVV(z, x, y []Limb) Limb {
	return addVV_g(z, x[:len(z)], y[:len(z)])
}

// SubVV sets z = x - y limb-wise and returns the borrow.
func SubVV(z, x, y []Limb) Limb {
	return subVV_g(z, x[:len(z)], y[:len(z)])
}

// AddVW sets z = x + y and returns the carry out of the top limb.
func AddVW(z, x []Limb, y Limb) Limb {
	return addVW_g(z, x[:len(z)], y)
}

// SubVW sets z = x - y and returns the borrow out of the top limb.
func SubVW(z, x []Limb, y Limb) Limb {
	return subVW_g(z, x[:len(z)], y)
}

// ShlVU sets z = x << s for s < Width and returns the bits shifted out.
func ShlVU(z, x []Limb, s uint) Limb {
	return shlVU_g(z, x[:len(z)], s)
}

// ShrVU sets z = x >> s for s < Width and returns the bits shifted out,
// left-aligned in the result.
func ShrVU(z, x []Limb, s uint) Limb {
	return shrVU_g(z, x[:len(z)], s)
}

// MulAddVWW sets z = x*y + r and returns the high limb of the result.
func MulAddVWW(z, x []Limb, y, r Limb) Limb {
	return mulAddVWW_g(z, x[:len(z)], y, r)
}

// AddMulLimb adds src*m into dst[:len(src)] with carry propagation and
// returns the carry out, the limb that would be added to dst[len(src)].
// dst must be at least as long as src.
func AddMulLimb(dst, src []Limb, m Limb) Limb {
	return addMulVVW_g(dst[:len(src)], src, m)
}

// SubMulLimb subtracts src*m from dst[:len(src)] with borrow propagation and
// returns the borrow out. A non-zero borrow means the true difference is
// negative when dst has no further limbs.
func SubMulLimb(dst, src []Limb, m Limb) Limb {
	return subMulVVW_g(dst[:len(src)], src, m)
}
