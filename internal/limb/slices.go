package limb

// Trim returns xs without its most significant zero limbs.
func Trim(xs []Limb) []Limb {
	i := len(xs)
	for i > 0 && xs[i-1] == 0 {
		i--
	}
	return xs[:i]
}

// IsZero reports whether every limb of xs is zero.
func IsZero(xs []Limb) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

// Cmp compares two trimmed limb slices as magnitudes and returns -1, 0 or +1.
func Cmp(xs, ys []Limb) int {
	if len(xs) != len(ys) {
		if len(xs) < len(ys) {
			return -1
		}
		return 1
	}
	return CmpSameLength(xs, ys)
}

// CmpSameLength compares two equal-length limb slices from the top down.
func CmpSameLength(xs, ys []Limb) int {
	for i := len(xs) - 1; i >= 0; i-- {
		if xs[i] != ys[i] {
			if xs[i] < ys[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SignificantBits returns the bit length of the trimmed magnitude xs.
func SignificantBits(xs []Limb) uint64 {
	if len(xs) == 0 {
		return 0
	}
	top := xs[len(xs)-1]
	return uint64(len(xs))*Width - uint64(LeadingZeros(top))
}

// TrailingZerosSlice returns the number of trailing zero bits of xs, and
// false if xs is zero.
func TrailingZerosSlice(xs []Limb) (uint64, bool) {
	for i, x := range xs {
		if x != 0 {
			return uint64(i)*Width + uint64(TrailingZeros(x)), true
		}
	}
	return 0, false
}

// CountOnesSlice returns the population count of xs.
func CountOnesSlice(xs []Limb) uint64 {
	var n uint64
	for _, x := range xs {
		n += uint64(OnesCount(x))
	}
	return n
}

// GetBit reports whether bit i of xs is set. Bits beyond xs are zero.
func GetBit(xs []Limb, i uint64) bool {
	idx := i >> LogWidth
	if idx >= uint64(len(xs)) {
		return false
	}
	return xs[idx]>>(i&(Width-1))&1 != 0
}

// BitsAt returns the n <= 64 bits of xs starting at bit start, as a uint64.
// Bits beyond xs read as zero.
func BitsAt(xs []Limb, start uint64, n uint) uint64 {
	var v uint64
	var got uint
	for got < n {
		pos := start + uint64(got)
		idx := pos >> LogWidth
		if idx >= uint64(len(xs)) {
			break
		}
		off := uint(pos & (Width - 1))
		take := Width - off
		if take > n-got {
			take = n - got
		}
		chunk := uint64(xs[idx] >> off)
		if take < 64 {
			chunk &= 1<<take - 1
		}
		v |= chunk << got
		got += take
	}
	return v
}

// OrBitsAt ors the low n <= 64 bits of v into xs at bit offset start. xs must
// be long enough to hold bit start+n-1.
func OrBitsAt(xs []Limb, start uint64, v uint64, n uint) {
	var put uint
	for put < n {
		pos := start + uint64(put)
		idx := pos >> LogWidth
		off := uint(pos & (Width - 1))
		take := Width - off
		if take > n-put {
			take = n - put
		}
		chunk := v >> put
		if take < 64 {
			chunk &= 1<<take - 1
		}
		xs[idx] |= Limb(chunk) << off
		put += take
	}
}

// FromUint64 splits x into trimmed limbs.
func FromUint64(x uint64) []Limb {
	if x == 0 {
		return nil
	}
	if Width == 64 {
		return []Limb{Limb(x)}
	}
	return Trim([]Limb{Limb(x), Limb(x >> (Width % 64))})
}

// LowUint64 returns the low 64 bits of xs.
func LowUint64(xs []Limb) uint64 {
	return BitsAt(xs, 0, 64)
}
