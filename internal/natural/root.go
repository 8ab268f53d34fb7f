package natural

// FloorRoot returns the largest r with r^n <= x. It panics if n == 0.
//
// Newton's iteration r' = ((n-1)r + x/r^(n-1)) / n starts above the root
// and decreases strictly until it reaches it.
func (x *Natural) FloorRoot(n uint64) *Natural {
	if n == 0 {
		panic("natural: zeroth root")
	}
	bits := x.SignificantBits()
	if n == 1 || bits <= 1 {
		return x.Clone()
	}
	if n >= bits {
		// 1 <= x < 2^n
		return One()
	}
	nn := FromUint64(n)
	r := One().Shl((bits + n - 1) / n)
	for {
		next := r.Mul(FromUint64(n - 1)).Add(x.Div(r.Pow(n - 1))).Div(nn)
		if next.Cmp(r) >= 0 {
			return r
		}
		r = next
	}
}

// CeilingRoot returns the smallest r with r^n >= x. It panics if n == 0.
func (x *Natural) CeilingRoot(n uint64) *Natural {
	r, rem := x.RootRem(n)
	if !rem.IsZero() {
		r.AddLimbAssign(1)
	}
	return r
}

// CheckedRoot returns the exact n-th root of x, or false if x is not a
// perfect n-th power. It panics if n == 0.
func (x *Natural) CheckedRoot(n uint64) (*Natural, bool) {
	r, rem := x.RootRem(n)
	if !rem.IsZero() {
		return nil, false
	}
	return r, true
}

// RootRem returns FloorRoot(n) and x - FloorRoot(n)^n.
func (x *Natural) RootRem(n uint64) (r, rem *Natural) {
	r = x.FloorRoot(n)
	return r, x.Sub(r.Pow(n))
}

// FloorRootAssign sets x = FloorRoot(x, n).
func (x *Natural) FloorRootAssign(n uint64) { x.set(x.FloorRoot(n)) }

// FloorSqrt returns the largest r with r^2 <= x.
func (x *Natural) FloorSqrt() *Natural { return x.FloorRoot(2) }

// CeilingSqrt returns the smallest r with r^2 >= x.
func (x *Natural) CeilingSqrt() *Natural { return x.CeilingRoot(2) }

// CheckedSqrt returns the exact square root of x, or false if x is not a
// perfect square.
func (x *Natural) CheckedSqrt() (*Natural, bool) { return x.CheckedRoot(2) }

// SqrtRem returns FloorSqrt(x) and x - FloorSqrt(x)^2.
func (x *Natural) SqrtRem() (r, rem *Natural) { return x.RootRem(2) }

// FloorSqrtAssign sets x = FloorSqrt(x).
func (x *Natural) FloorSqrtAssign() { x.FloorRootAssign(2) }
