package limb

// BytesPerLimb is the number of bytes in a Limb.
const BytesPerLimb = Width / 8

// ToBytesBE encodes the magnitude xs as big-endian bytes with no leading zero
// byte. Zero encodes as an empty slice.
func ToBytesBE(xs []Limb) []byte {
	xs = Trim(xs)
	buf := make([]byte, len(xs)*BytesPerLimb)
	i := len(buf)
	for _, x := range xs {
		for j := 0; j < BytesPerLimb; j++ {
			i--
			buf[i] = byte(x)
			x >>= 8
		}
	}
	for i = 0; i < len(buf) && buf[i] == 0; i++ {
	}
	return buf[i:]
}

// FromBytesBE decodes big-endian bytes into trimmed limbs.
func FromBytesBE(buf []byte) []Limb {
	xs := make([]Limb, (len(buf)+BytesPerLimb-1)/BytesPerLimb)
	for i := range buf {
		b := buf[len(buf)-1-i]
		xs[i/BytesPerLimb] |= Limb(b) << (8 * uint(i%BytesPerLimb))
	}
	return Trim(xs)
}
