package limb

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// XXDivModYIsQR divides the two-limb value x1*2^W + x0 by y, where W is the
// width of T, and returns the quotient and remainder, both of which fit in a
// single T: q*y + r == x1*2^W + x0 and r < y.
//
// It panics unless x1 < y, which also rules out y == 0.
//
// The divisor is normalized so that its top bit is set, then split into two
// W/2-bit halves. Each half of the quotient is estimated by a half-width trial
// division and corrected at most twice against the partial product.
func XXDivModYIsQR[T constraints.Unsigned](x1, x0, y T) (q, r T) {
	if x1 >= y {
		panic("limb: XXDivModYIsQR requires x1 < y")
	}
	w := WidthOf[T]()
	shift := w - uint(bits.Len64(uint64(y)))
	if shift != 0 {
		y <<= shift
		x1 = x1<<shift | x0>>(w-shift)
		x0 <<= shift
	}
	half := w / 2
	mask := T(1)<<half - 1
	yHi, yLo := y>>half, y&mask

	q1 := x1 / yHi
	r1 := x1 - q1*yHi
	m := q1 * yLo
	r1 = r1<<half | x0>>half
	if r1 < m {
		q1--
		r1 += y
		// r1 >= y means the addition did not wrap.
		if r1 >= y && r1 < m {
			q1--
			r1 += y
		}
	}
	r1 -= m

	q0 := r1 / yHi
	r0 := r1 - q0*yHi
	m = q0 * yLo
	r0 = r0<<half | x0&mask
	if r0 < m {
		q0--
		r0 += y
		if r0 >= y && r0 < m {
			q0--
			r0 += y
		}
	}
	r0 -= m

	return q1<<half | q0, r0 >> shift
}

// Invert returns floor((2^(2W) - 1) / d) - 2^W for a normalized divisor d
// (top bit set). It is the reciprocal used by DivModByPreinversion.
func Invert(d Limb) Limb {
	if d&HighBit == 0 {
		panic("limb: Invert requires a normalized divisor")
	}
	// (B^2 - 1) - B*d == (B - 1 - d)*B + (B - 1), and B - 1 - d < d.
	q, _ := XXDivModYIsQR(^d, Max, d)
	return q
}

// DivModByPreinversion divides x1*2^W + x0 by the normalized divisor d using
// its precomputed reciprocal dInv = Invert(d). It requires x1 < d.
func DivModByPreinversion(x1, x0, d, dInv Limb) (q, r Limb) {
	lo, hi := OverflowingMul(x1, dInv)
	var c Limb
	lo, c = AddWithCarry(lo, x0, 0)
	q, _ = AddWithCarry(hi, x1+1, c)
	r = x0 - q*d
	if r > lo {
		q--
		r += d
	}
	if r >= d {
		q++
		r -= d
	}
	return q, r
}

// DivModLimb sets q = x / d and returns x mod d. q must be at least as long
// as x and may alias it. It panics if d == 0.
func DivModLimb(q, x []Limb, d Limb) (r Limb) {
	if d == 0 {
		panic("limb: division by zero")
	}
	n := len(x)
	if n == 0 {
		return 0
	}
	s := LeadingZeros(d)
	dn := d << s
	inv := Invert(dn)
	if s == 0 {
		for i := n - 1; i >= 0; i-- {
			q[i], r = DivModByPreinversion(r, x[i], dn, inv)
		}
		return r
	}
	r = x[n-1] >> (Width - s)
	for i := n - 1; i >= 0; i-- {
		lo := x[i] << s
		if i > 0 {
			lo |= x[i-1] >> (Width - s)
		}
		q[i], r = DivModByPreinversion(r, lo, dn, inv)
	}
	return r >> s
}

// ModLimb returns x mod d without producing the quotient. It panics if d == 0.
func ModLimb(x []Limb, d Limb) Limb {
	if d == 0 {
		panic("limb: division by zero")
	}
	n := len(x)
	if n == 0 {
		return 0
	}
	s := LeadingZeros(d)
	dn := d << s
	inv := Invert(dn)
	var r Limb
	if s != 0 {
		r = x[n-1] >> (Width - s)
	}
	for i := n - 1; i >= 0; i-- {
		lo := x[i] << s
		if s != 0 && i > 0 {
			lo |= x[i-1] >> (Width - s)
		}
		_, r = DivModByPreinversion(r, lo, dn, inv)
	}
	return r >> s
}

// DivMod divides the trimmed magnitude x by the trimmed magnitude y, which
// must have at least two limbs and no more limbs than x. It returns freshly
// allocated quotient and remainder limbs, both trimmed.
//
// This is Knuth's Algorithm D: the divisor is normalized, each quotient limb
// is estimated from the top two limbs of the running remainder, corrected with
// the second divisor limb, and fixed up with at most one add-back.
func DivMod(x, y []Limb) (q, r []Limb) {
	n := len(y)
	if n < 2 || y[n-1] == 0 {
		panic("limb: DivMod requires a trimmed divisor of at least two limbs")
	}
	if len(x) < n {
		panic("limb: DivMod requires len(x) >= len(y)")
	}
	m := len(x) - n

	s := LeadingZeros(y[n-1])
	yn := AcquireScratch(n)
	defer ReleaseScratch(yn)
	ShlVU(yn, y, s)

	u := make([]Limb, len(x)+1)
	u[len(x)] = ShlVU(u[:len(x)], x, s)

	qhatv := AcquireScratch(n + 1)
	defer ReleaseScratch(qhatv)

	q = make([]Limb, m+1)
	vTop, vNext := yn[n-1], yn[n-2]
	inv := Invert(vTop)
	for j := m; j >= 0; j-- {
		qhat := Max
		if ujn := u[j+n]; ujn != vTop {
			var rhat Limb
			qhat, rhat = DivModByPreinversion(ujn, u[j+n-1], vTop, inv)
			ujn2 := u[j+n-2]
			for {
				lo, hi := OverflowingMul(qhat, vNext)
				if hi < rhat || (hi == rhat && lo <= ujn2) {
					break
				}
				qhat--
				prev := rhat
				rhat += vTop
				if rhat < prev {
					break
				}
			}
		}

		qhatv[n] = MulAddVWW(qhatv[:n], yn, qhat, 0)
		if c := SubVV(u[j:j+n+1], u[j:j+n+1], qhatv); c != 0 {
			c = AddVV(u[j:j+n], u[j:j+n], yn)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	r = make([]Limb, n)
	ShrVU(r, u[:n], s)
	return Trim(q), Trim(r)
}
