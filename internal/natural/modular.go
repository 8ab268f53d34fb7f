package natural

// Modular operations take operands already reduced modulo m and panic
// otherwise. A zero modulus has no reduced operands, so it always panics.

func checkReduced(m *Natural, xs ...*Natural) {
	for _, x := range xs {
		if x.Cmp(m) >= 0 {
			panic("natural: operand is not reduced modulo m")
		}
	}
}

// ModAdd returns x + y mod m. It panics unless x, y < m.
func (x *Natural) ModAdd(y, m *Natural) *Natural {
	checkReduced(m, x, y)
	s := x.Add(y)
	if s.Cmp(m) >= 0 {
		s.SubAssign(m)
	}
	return s
}

// ModAddAssign sets x = x + y mod m.
func (x *Natural) ModAddAssign(y, m *Natural) { x.set(x.ModAdd(y, m)) }

// ModSub returns x - y mod m. It panics unless x, y < m.
func (x *Natural) ModSub(y, m *Natural) *Natural {
	checkReduced(m, x, y)
	if d, ok := x.CheckedSub(y); ok {
		return d
	}
	return x.Add(m).Sub(y)
}

// ModSubAssign sets x = x - y mod m.
func (x *Natural) ModSubAssign(y, m *Natural) { x.set(x.ModSub(y, m)) }

// ModNeg returns -x mod m. It panics unless x < m.
func (x *Natural) ModNeg(m *Natural) *Natural {
	checkReduced(m, x)
	if x.IsZero() {
		return Zero()
	}
	return m.Sub(x)
}

// ModMul returns x * y mod m. It panics unless x, y < m.
func (x *Natural) ModMul(y, m *Natural) *Natural {
	checkReduced(m, x, y)
	return x.Mul(y).Mod(m)
}

// ModMulAssign sets x = x * y mod m.
func (x *Natural) ModMulAssign(y, m *Natural) { x.set(x.ModMul(y, m)) }

// ModSquare returns x^2 mod m. It panics unless x < m.
func (x *Natural) ModSquare(m *Natural) *Natural {
	checkReduced(m, x)
	return x.Square().Mod(m)
}

// ModPow returns x^e mod m by left-to-right binary exponentiation. It panics
// unless x < m. 0^0 is 1, reduced modulo m.
func (x *Natural) ModPow(e, m *Natural) *Natural {
	checkReduced(m, x)
	z := One().Mod(m)
	for i := e.SignificantBits(); i > 0; i-- {
		z = z.Square().Mod(m)
		if e.GetBit(i - 1) {
			z = z.Mul(x).Mod(m)
		}
	}
	return z
}

// ModPowAssign sets x = x^e mod m.
func (x *Natural) ModPowAssign(e, m *Natural) { x.set(x.ModPow(e, m)) }

// ModShl returns x * 2^bits mod m. It panics unless x < m. Shifts longer
// than m switch to modular exponentiation so the product never grows past
// twice the size of m.
func (x *Natural) ModShl(bits uint64, m *Natural) *Natural {
	checkReduced(m, x)
	if bits <= m.SignificantBits() {
		return x.Shl(bits).Mod(m)
	}
	p := FromLimb(2).Mod(m).ModPow(FromUint64(bits), m)
	return x.Mul(p).Mod(m)
}

// ModShlAssign sets x = x * 2^bits mod m.
func (x *Natural) ModShlAssign(bits uint64, m *Natural) { x.set(x.ModShl(bits, m)) }

func checkReducedPowerOf2(k uint64, xs ...*Natural) {
	for _, x := range xs {
		if x.SignificantBits() > k {
			panic("natural: operand is not reduced modulo 2^k")
		}
	}
}

// ModPowerOf2Add returns x + y mod 2^k. It panics unless x, y < 2^k.
func (x *Natural) ModPowerOf2Add(y *Natural, k uint64) *Natural {
	checkReducedPowerOf2(k, x, y)
	s := x.Add(y)
	if s.SignificantBits() > k {
		s.ClearBit(k)
	}
	return s
}

// ModPowerOf2Sub returns x - y mod 2^k. It panics unless x, y < 2^k.
func (x *Natural) ModPowerOf2Sub(y *Natural, k uint64) *Natural {
	checkReducedPowerOf2(k, x, y)
	if d, ok := x.CheckedSub(y); ok {
		return d
	}
	d := x.Add(One().Shl(k))
	d.SubAssign(y)
	return d
}

// ModPowerOf2Neg returns -x mod 2^k. It panics unless x < 2^k.
func (x *Natural) ModPowerOf2Neg(k uint64) *Natural {
	return Zero().ModPowerOf2Sub(x, k)
}
