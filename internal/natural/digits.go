package natural

import (
	"math/bits"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/agbru/limbcalc/internal/limb"
)

// chunkBase returns the largest power base^k that fits a limb, and k.
func chunkBase(base limb.Limb) (limb.Limb, int) {
	d, k := base, 1
	for d <= limb.Max/base {
		d *= base
		k++
	}
	return d, k
}

func isPowerOf2(v uint64) bool { return v&(v-1) == 0 }

// ToDigitsAsc returns the digits of x in the given base, least significant
// first. The last digit is nonzero; zero has no digits. It panics if
// base < 2.
func ToDigitsAsc[T constraints.Unsigned](x *Natural, base T) []T {
	if base < 2 {
		panic("natural: digit base must be at least 2")
	}
	if isPowerOf2(uint64(base)) {
		return ToPowerOf2DigitsAsc[T](x, uint64(bits.TrailingZeros64(uint64(base))))
	}
	var digits []T
	if uint64(base) > uint64(limb.Max) {
		b := FromUint64(uint64(base))
		for cur := x; !cur.IsZero(); {
			q, r := cur.DivMod(b)
			digits = append(digits, T(r.LowUint64()))
			cur = q
		}
		return digits
	}
	b := limb.Limb(base)
	d, k := chunkBase(b)
	xs := slices.Clone(x.limbs())
	for len(xs) > 0 {
		r := limb.DivModLimb(xs, xs, d)
		xs = limb.Trim(xs)
		for range k {
			digits = append(digits, T(r%b))
			r /= b
		}
	}
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	return digits
}

// ToDigitsDesc is like ToDigitsAsc with the most significant digit first.
func ToDigitsDesc[T constraints.Unsigned](x *Natural, base T) []T {
	digits := ToDigitsAsc(x, base)
	slices.Reverse(digits)
	return digits
}

// FromDigitsAsc returns the Natural with the given digits in base, least
// significant first. Trailing zero digits are allowed. It returns false if
// base-1 does not fit T or some digit is not below base, and panics if
// base < 2.
func FromDigitsAsc[T constraints.Unsigned](base uint64, digits []T) (*Natural, bool) {
	if base < 2 {
		panic("natural: digit base must be at least 2")
	}
	if base-1 > uint64(^T(0)) {
		return nil, false
	}
	for _, d := range digits {
		if uint64(d) >= base {
			return nil, false
		}
	}
	if isPowerOf2(base) {
		return FromPowerOf2DigitsAsc(uint64(bits.TrailingZeros64(base)), digits)
	}
	if base > uint64(limb.Max) {
		b := FromUint64(base)
		acc := Zero()
		for i := len(digits) - 1; i >= 0; i-- {
			acc = acc.Mul(b).Add(FromUint64(uint64(digits[i])))
		}
		return acc, true
	}
	b := limb.Limb(base)
	_, k := chunkBase(b)
	var acc []limb.Limb
	for i := len(digits); i > 0; {
		g := (i-1)%k + 1
		v, p := limb.Limb(0), limb.Limb(1)
		for j := i - 1; j >= i-g; j-- {
			v = v*b + limb.Limb(digits[j])
			p *= b
		}
		acc = limb.Trim(addLimbNat(limb.Trim(mulNat(acc, []limb.Limb{p})), v))
		i -= g
	}
	return fromLimbs(acc), true
}

// FromDigitsDesc is like FromDigitsAsc with the most significant digit first.
func FromDigitsDesc[T constraints.Unsigned](base uint64, digits []T) (*Natural, bool) {
	asc := slices.Clone(digits)
	slices.Reverse(asc)
	return FromDigitsAsc(base, asc)
}

func checkLogBase[T constraints.Unsigned](logBase uint64) {
	if logBase == 0 || logBase > uint64(limb.WidthOf[T]()) {
		panic("natural: log base must be between 1 and the digit width")
	}
}

// ToPowerOf2DigitsAsc returns the base-2^logBase digits of x, least
// significant first. It panics if logBase is 0 or exceeds the width of T.
func ToPowerOf2DigitsAsc[T constraints.Unsigned](x *Natural, logBase uint64) []T {
	checkLogBase[T](logBase)
	xs := x.limbs()
	n := (limb.SignificantBits(xs) + logBase - 1) / logBase
	digits := make([]T, n)
	for i := range digits {
		digits[i] = T(limb.BitsAt(xs, uint64(i)*logBase, uint(logBase)))
	}
	return digits
}

// ToPowerOf2DigitsDesc is like ToPowerOf2DigitsAsc with the most significant
// digit first.
func ToPowerOf2DigitsDesc[T constraints.Unsigned](x *Natural, logBase uint64) []T {
	digits := ToPowerOf2DigitsAsc[T](x, logBase)
	slices.Reverse(digits)
	return digits
}

// FromPowerOf2DigitsAsc returns the Natural with the given base-2^logBase
// digits, least significant first. It returns false if a digit does not fit
// in logBase bits, and panics if logBase is 0 or exceeds the width of T.
func FromPowerOf2DigitsAsc[T constraints.Unsigned](logBase uint64, digits []T) (*Natural, bool) {
	checkLogBase[T](logBase)
	for _, d := range digits {
		if logBase < 64 && uint64(d)>>logBase != 0 {
			return nil, false
		}
	}
	buf := make([]limb.Limb, uint64(len(digits))*logBase/limb.Width+1)
	for i, d := range digits {
		if d != 0 {
			limb.OrBitsAt(buf, uint64(i)*logBase, uint64(d), uint(logBase))
		}
	}
	return fromLimbs(buf), true
}

// FromPowerOf2DigitsDesc is like FromPowerOf2DigitsAsc with the most
// significant digit first.
func FromPowerOf2DigitsDesc[T constraints.Unsigned](logBase uint64, digits []T) (*Natural, bool) {
	asc := slices.Clone(digits)
	slices.Reverse(asc)
	return FromPowerOf2DigitsAsc(logBase, asc)
}
