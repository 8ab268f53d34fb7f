package limb

import "golang.org/x/exp/constraints"

// WidthOf returns the bit width of the unsigned type T.
func WidthOf[T constraints.Unsigned]() uint {
	w := uint(0)
	for x := ^T(0); x != 0; x >>= 1 {
		w++
	}
	return w
}

// RotateLeft rotates x left by s bits, reduced modulo the width of T.
func RotateLeft[T constraints.Unsigned](x T, s uint64) T {
	w := uint64(WidthOf[T]())
	s %= w
	if s == 0 {
		return x
	}
	return x<<s | x>>(w-s)
}

// RotateRight rotates x right by s bits, reduced modulo the width of T.
func RotateRight[T constraints.Unsigned](x T, s uint64) T {
	w := uint64(WidthOf[T]())
	s %= w
	if s == 0 {
		return x
	}
	return x>>s | x<<(w-s)
}
