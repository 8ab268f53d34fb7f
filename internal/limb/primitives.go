package limb

// Max is the largest value a Limb can hold.
const Max = ^Limb(0)

// HighBit is a Limb with only its most significant bit set.
const HighBit = Limb(1) << (Width - 1)

// OverflowingAdd returns a + b wrapped to Width bits and whether it wrapped.
func OverflowingAdd(a, b Limb) (Limb, bool) {
	s, c := AddWithCarry(a, b, 0)
	return s, c != 0
}

// OverflowingSub returns a - b wrapped to Width bits and whether it wrapped.
func OverflowingSub(a, b Limb) (Limb, bool) {
	d, c := SubWithBorrow(a, b, 0)
	return d, c != 0
}

// CheckedAdd returns a + b, or ok == false if the sum does not fit a Limb.
func CheckedAdd(a, b Limb) (Limb, bool) {
	s, overflow := OverflowingAdd(a, b)
	return s, !overflow
}

// CheckedSub returns a - b, or ok == false if b > a.
func CheckedSub(a, b Limb) (Limb, bool) {
	d, overflow := OverflowingSub(a, b)
	return d, !overflow
}

// CheckedMul returns a * b, or ok == false if the product does not fit a Limb.
func CheckedMul(a, b Limb) (Limb, bool) {
	lo, hi := OverflowingMul(a, b)
	return lo, hi == 0
}

// MulAddWWW returns x*y + c as a double-width (hi, lo) pair. It cannot overflow.
func MulAddWWW(x, y, c Limb) (hi, lo Limb) {
	lo, hi = OverflowingMul(x, y)
	var cc Limb
	lo, cc = AddWithCarry(lo, c, 0)
	return hi + cc, lo
}

// WrappingAddMul returns x + y*z modulo 2^Width.
func WrappingAddMul(x, y, z Limb) Limb { return x + y*z }

// WrappingSubMul returns x - y*z modulo 2^Width.
func WrappingSubMul(x, y, z Limb) Limb { return x - y*z }

// CheckedAddMul returns x + y*z, or ok == false if the result does not fit.
func CheckedAddMul(x, y, z Limb) (Limb, bool) {
	lo, hi := OverflowingMul(y, z)
	if hi != 0 {
		return 0, false
	}
	return CheckedAdd(x, lo)
}

// CheckedSubMul returns x - y*z, or ok == false if y*z > x. Unlike
// WrappingSubMul it never produces a wrapped value.
func CheckedSubMul(x, y, z Limb) (Limb, bool) {
	lo, hi := OverflowingMul(y, z)
	if hi != 0 {
		return 0, false
	}
	return CheckedSub(x, lo)
}
