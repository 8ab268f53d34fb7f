package integer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/agbru/limbcalc/internal/natural"
)

// Integer is an arbitrary-precision signed integer. Zero is never negative.
type Integer struct {
	neg bool
	abs natural.Natural
}

// fromParts builds an Integer from a sign and a magnitude it takes ownership
// of. A zero magnitude is always non-negative.
func fromParts(neg bool, abs *natural.Natural) *Integer {
	z := &Integer{neg: neg && !abs.IsZero()}
	z.abs = *abs
	return z
}

// setParts replaces the value of z, taking ownership of abs.
func (z *Integer) setParts(neg bool, abs *natural.Natural) {
	z.neg = neg && !abs.IsZero()
	z.abs = *abs
}

// Zero returns a new Integer equal to 0.
func Zero() *Integer { return new(Integer) }

// FromInt64 returns an Integer equal to v.
func FromInt64(v int64) *Integer { return From(v) }

// FromUint64 returns an Integer equal to v.
func FromUint64(v uint64) *Integer { return fromParts(false, natural.FromUint64(v)) }

// FromNatural returns a non-negative Integer equal to n.
func FromNatural(n *natural.Natural) *Integer { return fromParts(false, n.Clone()) }

// FromSignAndAbs returns -abs if neg is set and abs otherwise.
func FromSignAndAbs(neg bool, abs *natural.Natural) *Integer {
	return fromParts(neg, abs.Clone())
}

// FromBigInt returns b as an Integer.
func FromBigInt(b *big.Int) *Integer {
	abs, _ := natural.FromBigInt(new(big.Int).Abs(b))
	return fromParts(b.Sign() < 0, abs)
}

// ToBigInt returns x as a new big.Int.
func (x *Integer) ToBigInt() *big.Int {
	b := x.abs.ToBigInt()
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Clone returns a deep copy of x.
func (x *Integer) Clone() *Integer { return fromParts(x.neg, x.abs.Clone()) }

// Sign returns -1, 0 or +1.
func (x *Integer) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.abs.IsZero():
		return 0
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *Integer) IsZero() bool { return x.abs.IsZero() }

// IsNegative reports whether x < 0.
func (x *Integer) IsNegative() bool { return x.neg }

// Abs returns |x| as an Integer.
func (x *Integer) Abs() *Integer { return fromParts(false, x.abs.Clone()) }

// UnsignedAbs returns |x| as a Natural.
func (x *Integer) UnsignedAbs() *natural.Natural { return x.abs.Clone() }

// Neg returns -x.
func (x *Integer) Neg() *Integer { return fromParts(!x.neg, x.abs.Clone()) }

// NegAssign sets x = -x.
func (x *Integer) NegAssign() { x.neg = !x.neg && !x.abs.IsZero() }

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Integer) Cmp(y *Integer) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return y.abs.Cmp(&x.abs)
	}
	return x.abs.Cmp(&y.abs)
}

// CmpAbs compares |x| and |y|.
func (x *Integer) CmpAbs(y *Integer) int { return x.abs.Cmp(&y.abs) }

// Eq reports whether x == y.
func (x *Integer) Eq(y *Integer) bool { return x.Cmp(y) == 0 }

// Text returns x in the given base with a leading '-' when negative.
func (x *Integer) Text(base int) string {
	s := x.abs.Text(base)
	if x.neg {
		return "-" + s
	}
	return s
}

// String returns x in base 10.
func (x *Integer) String() string { return x.Text(10) }

// Parse reads an Integer in the given base with an optional leading '+' or
// '-'. It returns false for malformed input and panics unless
// 2 <= base <= 36.
func Parse(s string, base int) (*Integer, bool) {
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	abs, ok := natural.Parse(s, base)
	if !ok {
		return nil, false
	}
	return fromParts(neg, abs), true
}

// Format implements fmt.Formatter with the verbs natural.Natural supports.
func (x *Integer) Format(s fmt.State, ch rune) {
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	w, hasWidth := s.Width()
	inner := "%" + string(ch)
	if hasWidth && s.Flag('0') && x.neg {
		inner = fmt.Sprintf("%%0%d%c", w-1, ch)
		hasWidth = false
	}
	fmt.Fprintf(&sb, inner, &x.abs)
	out := sb.String()
	if hasWidth && len(out) < w {
		pad := " "
		if s.Flag('0') {
			pad = "0"
		}
		out = strings.Repeat(pad, w-len(out)) + out
	}
	fmt.Fprint(s, out)
}
