package natural

import (
	"slices"

	"github.com/agbru/limbcalc/internal/limb"
)

// GetBit reports whether bit i of x is set.
func (x *Natural) GetBit(i uint64) bool {
	return limb.GetBit(x.limbs(), i)
}

// editBit applies f to the limb holding bit i of x, growing x as needed.
func (x *Natural) editBit(i uint64, f func(w, mask limb.Limb) limb.Limb) {
	idx := int(i / limb.Width)
	xs := x.limbs()
	n := max(len(xs), idx+1)
	z := make([]limb.Limb, n)
	copy(z, xs)
	z[idx] = f(z[idx], limb.Limb(1)<<(i%limb.Width))
	x.setLimbs(z)
}

// SetBit sets bit i of x in place.
func (x *Natural) SetBit(i uint64) {
	x.editBit(i, func(w, m limb.Limb) limb.Limb { return w | m })
}

// ClearBit clears bit i of x in place.
func (x *Natural) ClearBit(i uint64) {
	if !x.GetBit(i) {
		return
	}
	x.editBit(i, func(w, m limb.Limb) limb.Limb { return w &^ m })
}

// FlipBit toggles bit i of x in place.
func (x *Natural) FlipBit(i uint64) {
	x.editBit(i, func(w, m limb.Limb) limb.Limb { return w ^ m })
}

// GetBits returns bits [start, end) of x as a Natural. It panics if
// start > end.
func (x *Natural) GetBits(start, end uint64) *Natural {
	if start > end {
		panic("natural: GetBits start exceeds end")
	}
	return fromLimbs(truncateNat(shrNat(x.limbs(), start), end-start))
}

// truncateNat reduces xs mod 2^bits in place and returns it.
func truncateNat(xs []limb.Limb, bits uint64) []limb.Limb {
	n := bits / limb.Width
	if n >= uint64(len(xs)) {
		return xs
	}
	if r := bits % limb.Width; r != 0 {
		xs[n] &= limb.Limb(1)<<r - 1
		n++
	}
	return xs[:n]
}

// SignificantBits returns the bit length of x; zero has none.
func (x *Natural) SignificantBits() uint64 {
	return limb.SignificantBits(x.limbs())
}

// TrailingZeros returns the number of trailing zero bits of x, or false if x
// is zero.
func (x *Natural) TrailingZeros() (uint64, bool) {
	return limb.TrailingZerosSlice(x.limbs())
}

// CountOnes returns the number of set bits in x.
func (x *Natural) CountOnes() uint64 {
	return limb.CountOnesSlice(x.limbs())
}

// HammingDistance returns the number of bit positions where x and y differ.
func (x *Natural) HammingDistance(y *Natural) uint64 {
	xs, ys := x.limbs(), y.limbs()
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	var d uint64
	for i, v := range xs {
		if i < len(ys) {
			v ^= ys[i]
		}
		d += uint64(limb.OnesCount(v))
	}
	return d
}

// And returns x & y.
func (x *Natural) And(y *Natural) *Natural {
	xs, ys := x.limbs(), y.limbs()
	n := min(len(xs), len(ys))
	z := make([]limb.Limb, n)
	for i := range z {
		z[i] = xs[i] & ys[i]
	}
	return fromLimbs(z)
}

// Or returns x | y.
func (x *Natural) Or(y *Natural) *Natural {
	xs, ys := x.limbs(), y.limbs()
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	z := slices.Clone(xs)
	for i, v := range ys {
		z[i] |= v
	}
	return fromLimbs(z)
}

// Xor returns x ^ y.
func (x *Natural) Xor(y *Natural) *Natural {
	xs, ys := x.limbs(), y.limbs()
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	z := slices.Clone(xs)
	for i, v := range ys {
		z[i] ^= v
	}
	return fromLimbs(z)
}

// ModPowerOf2 returns x mod 2^k.
func (x *Natural) ModPowerOf2(k uint64) *Natural {
	return fromLimbs(truncateNat(slices.Clone(x.limbs()), k))
}

// DivisibleByPowerOf2 reports whether 2^k divides x.
func (x *Natural) DivisibleByPowerOf2(k uint64) bool {
	tz, ok := x.TrailingZeros()
	return !ok || tz >= k
}

// EqModPowerOf2 reports whether x and y agree in their low k bits.
func (x *Natural) EqModPowerOf2(y *Natural, k uint64) bool {
	xs, ys := x.limbs(), y.limbs()
	n := k / limb.Width
	r := k % limb.Width
	for i := uint64(0); i < n; i++ {
		if i >= uint64(len(xs)) && i >= uint64(len(ys)) {
			return true
		}
		if at(xs, i) != at(ys, i) {
			return false
		}
	}
	if r == 0 {
		return true
	}
	mask := limb.Limb(1)<<r - 1
	return at(xs, n)&mask == at(ys, n)&mask
}

func at(xs []limb.Limb, i uint64) limb.Limb {
	if i < uint64(len(xs)) {
		return xs[i]
	}
	return 0
}

// IsPowerOf2 reports whether x is a power of two. Zero is not.
func (x *Natural) IsPowerOf2() bool {
	return x.CountOnes() == 1
}
