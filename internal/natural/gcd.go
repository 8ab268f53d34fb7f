package natural

// Gcd returns the greatest common divisor of x and y. Gcd(0, 0) is 0.
func (x *Natural) Gcd(y *Natural) *Natural {
	a, b := x.Clone(), y.Clone()
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}

// GcdAssign sets x = Gcd(x, y).
func (x *Natural) GcdAssign(y *Natural) { x.set(x.Gcd(y)) }

// Lcm returns the least common multiple of x and y, which is 0 when either
// is 0.
func (x *Natural) Lcm(y *Natural) *Natural {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	return x.Div(x.Gcd(y)).Mul(y)
}

// CoprimeWith reports whether Gcd(x, y) == 1.
func (x *Natural) CoprimeWith(y *Natural) bool {
	return x.Gcd(y).CmpLimb(1) == 0
}
