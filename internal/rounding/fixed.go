package rounding

import (
	"golang.org/x/exp/constraints"
)

func widthOf[T constraints.Unsigned]() uint64 {
	var w uint64
	for x := ^T(0); x != 0; x >>= 1 {
		w++
	}
	return w
}

// cmpHalf returns the sign of r - (d - r), i.e. compares r/d with 1/2,
// without overflowing.
func cmpHalf[T constraints.Unsigned](r, d T) int {
	rest := d - r
	switch {
	case r < rest:
		return -1
	case r > rest:
		return 1
	}
	return 0
}

func finish[T constraints.Unsigned](q T, half int, m Mode) (T, Ordering, bool) {
	up, ok := RoundsUp(m, half, q&1 == 1)
	if !ok {
		return 0, Equal, false
	}
	if up {
		return q + 1, Greater, true
	}
	return q, Less, true
}

func mustRound[T constraints.Unsigned](v T, o Ordering, ok bool) (T, Ordering) {
	if !ok {
		panic("rounding: inexact result in Exact mode")
	}
	return v, o
}

// DivRound returns x / y rounded according to m. It panics if y is zero or
// if m is Exact and y does not divide x.
func DivRound[T constraints.Unsigned](x, y T, m Mode) (T, Ordering) {
	if y == 0 {
		panic("rounding: division by zero")
	}
	return mustRound(CheckedDivRound(x, y, m))
}

// CheckedDivRound is DivRound reporting false instead of panicking when y is
// zero or when m is Exact and y does not divide x.
func CheckedDivRound[T constraints.Unsigned](x, y T, m Mode) (T, Ordering, bool) {
	if y == 0 {
		return 0, Equal, false
	}
	q, r := x/y, x%y
	if r == 0 {
		return q, Equal, true
	}
	return finish(q, cmpHalf(r, y), m)
}

// ShrRound returns x / 2^s rounded according to m. Shifts at or beyond the
// width of T are allowed. It panics if m is Exact and bits would be lost.
func ShrRound[T constraints.Unsigned](x T, s uint64, m Mode) (T, Ordering) {
	return mustRound(CheckedShrRound(x, s, m))
}

// CheckedShrRound is ShrRound reporting false instead of panicking when m is
// Exact and bits would be lost.
func CheckedShrRound[T constraints.Unsigned](x T, s uint64, m Mode) (T, Ordering, bool) {
	if s == 0 || x == 0 {
		return x, Equal, true
	}
	w := widthOf[T]()
	if s > w {
		// x < 2^w <= 2^(s-1)
		return finish(T(0), -1, m)
	}
	if s == w {
		hb := T(1) << (w - 1)
		half := 0
		if x < hb {
			half = -1
		} else if x > hb {
			half = 1
		}
		return finish(T(0), half, m)
	}
	q := x >> s
	r := x & (T(1)<<s - 1)
	if r == 0 {
		return q, Equal, true
	}
	half := T(1) << (s - 1)
	h := 0
	if r < half {
		h = -1
	} else if r > half {
		h = 1
	}
	return finish(q, h, m)
}

// RoundToMultiple returns the multiple of y selected by m among the two
// multiples bracketing x. A zero y admits only zero: x == 0 yields 0, and
// otherwise Down, Floor and Nearest yield 0 while the other modes panic. It
// also panics if the selected multiple does not fit T.
func RoundToMultiple[T constraints.Unsigned](x, y T, m Mode) (T, Ordering) {
	v, o, ok := CheckedRoundToMultiple(x, y, m)
	if ok {
		return v, o
	}
	if y == 0 {
		panic("rounding: cannot round a nonzero value to a multiple of zero")
	}
	// Panics on an inexact Exact division before reaching the overflow case.
	DivRound(x, y, m)
	panic("rounding: multiple does not fit the type")
}

// CheckedRoundToMultiple is RoundToMultiple reporting false instead of
// panicking.
func CheckedRoundToMultiple[T constraints.Unsigned](x, y T, m Mode) (T, Ordering, bool) {
	if y == 0 {
		switch {
		case x == 0:
			return 0, Equal, true
		case m == Down || m == Floor || m == Nearest:
			return 0, Less, true
		}
		return 0, Equal, false
	}
	q, o, ok := CheckedDivRound(x, y, m)
	if !ok || (q != 0 && q > ^T(0)/y) {
		return 0, Equal, false
	}
	return q * y, o, true
}
