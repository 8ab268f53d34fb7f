package integer

import "github.com/agbru/limbcalc/internal/natural"

// ExtendedGcd returns g = gcd(a, b) and the Bézout coefficients x, y with
// a*x + b*y == g. The coefficients are the ones the extended Euclidean
// algorithm yields:
//
//   - (0, 0, 0) when a == b == 0;
//   - (a, 1, 0) when a > 0 divides b and b != a;
//   - (b, 0, 1) when b > 0 divides a, a == b included;
//   - otherwise |x| <= b/g and |y| <= a/g.
func ExtendedGcd(a, b *natural.Natural) (g *natural.Natural, x, y *Integer) {
	if a.IsZero() && b.IsZero() {
		return natural.Zero(), Zero(), Zero()
	}
	r0, r1 := a.Clone(), b.Clone()
	s0, s1 := FromInt64(1), Zero()
	for !r1.IsZero() {
		q, r := r0.DivMod(r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0.Sub(FromNatural(q).Mul(s1))
	}
	g, x = r0, s0
	if b.IsZero() {
		return g, x, Zero()
	}
	// b*y == g - a*x exactly.
	y = FromNatural(g).Sub(FromNatural(a).Mul(x)).DivExact(FromNatural(b))
	return g, x, y
}
