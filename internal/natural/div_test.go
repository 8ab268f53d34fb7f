package natural

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/limbcalc/internal/rounding"
)

func TestDivModAgainstBig(t *testing.T) {
	t.Parallel()
	samples := naturalSamples()
	for i, a := range samples {
		for j, b := range samples {
			if b.IsZero() {
				continue
			}
			q, r := a.DivMod(b)
			wq, wr := new(big.Int).QuoRem(a.ToBigInt(), b.ToBigInt(), new(big.Int))
			if q.ToBigInt().Cmp(wq) != 0 || r.ToBigInt().Cmp(wr) != 0 {
				t.Errorf("DivMod(#%d, #%d) = (%v, %v), want (%v, %v)", i, j, q, r, wq, wr)
			}
		}
	}
}

func TestDivisionByZeroPanics(t *testing.T) {
	t.Parallel()
	ops := map[string]func(){
		"DivMod":    func() { One().DivMod(Zero()) },
		"DivModBig": func() { One().Shl(100).DivMod(Zero()) },
		"DivLimb":   func() { One().DivModLimb(0) },
		"ModLimb":   func() { One().ModLimb(0) },
		"DivRound":  func() { One().DivRound(Zero(), rounding.Floor) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if r := recover(); r != "natural: division by zero" {
					t.Errorf("recover() = %v, want division by zero", r)
				}
			}()
			op()
		})
	}
}

func TestCeilingDivNegMod(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, y, q, r uint64
	}{
		{23, 10, 3, 7},
		{20, 10, 2, 0},
		{0, 7, 0, 0},
		{1, 7, 1, 6},
	}
	for _, tt := range tests {
		q, r := FromUint64(tt.x).CeilingDivNegMod(FromUint64(tt.y))
		if q.LowUint64() != tt.q || r.LowUint64() != tt.r {
			t.Errorf("CeilingDivNegMod(%d, %d) = (%v, %v), want (%d, %d)", tt.x, tt.y, q, r, tt.q, tt.r)
		}
	}
}

func TestDivModLimb(t *testing.T) {
	t.Parallel()
	x := mustParse("1000000000000000000000000000007")
	q, r := x.DivModLimb(10)
	if q.String() != "100000000000000000000000000000" || r != 7 {
		t.Errorf("DivModLimb = (%v, %d)", q, r)
	}
	if m := x.ModLimb(10); m != 7 {
		t.Errorf("ModLimb = %d", m)
	}
}

func TestDivisibility(t *testing.T) {
	t.Parallel()
	x := mustParse("15241578753238836750495351562536198787501905199875019052100")
	y := mustParse("123456789012345678901234567890")
	if !x.DivisibleBy(y) {
		t.Error("DivisibleBy returned false for a square")
	}
	if got := x.DivExact(y); !got.Eq(y) {
		t.Errorf("DivExact = %v, want %v", got, y)
	}
	if x.AddLimb(1).DivisibleBy(y) {
		t.Error("DivisibleBy returned true for a non-multiple")
	}
	if !Zero().DivisibleBy(Zero()) || One().DivisibleBy(Zero()) {
		t.Error("divisibility by zero is wrong")
	}
	defer func() {
		if recover() == nil {
			t.Error("DivExact of a non-multiple did not panic")
		}
	}()
	x.AddLimb(1).DivExact(y)
}

func TestEqMod(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, y, m uint64
		want    bool
	}{
		{13, 21, 8, true},
		{13, 21, 16, false},
		{21, 13, 4, true},
		{5, 5, 0, true},
		{5, 6, 0, false},
		{5, 6, 1, true},
	}
	for _, tt := range tests {
		if got := FromUint64(tt.x).EqMod(FromUint64(tt.y), FromUint64(tt.m)); got != tt.want {
			t.Errorf("EqMod(%d, %d, %d) = %v, want %v", tt.x, tt.y, tt.m, got, tt.want)
		}
	}
}

func TestDivRound(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, y uint64
		m    rounding.Mode
		want uint64
		o    rounding.Ordering
	}{
		{10, 4, rounding.Down, 2, rounding.Less},
		{10, 4, rounding.Up, 3, rounding.Greater},
		{10, 4, rounding.Nearest, 2, rounding.Less},
		{14, 4, rounding.Nearest, 4, rounding.Greater},
		{13, 4, rounding.Nearest, 3, rounding.Less},
		{12, 4, rounding.Exact, 3, rounding.Equal},
	}
	for _, tt := range tests {
		got, o := FromUint64(tt.x).DivRound(FromUint64(tt.y), tt.m)
		if got.LowUint64() != tt.want || o != tt.o {
			t.Errorf("DivRound(%d, %d, %v) = (%v, %v), want (%d, %v)", tt.x, tt.y, tt.m, got, o, tt.want, tt.o)
		}
	}
	if _, _, ok := FromUint64(10).CheckedDivRound(FromUint64(4), rounding.Exact); ok {
		t.Error("CheckedDivRound(10, 4, Exact) reported success")
	}
	x := FromUint64(10)
	if o := x.DivRoundAssign(FromUint64(4), rounding.Ceiling); o != rounding.Greater || x.LowUint64() != 3 {
		t.Errorf("DivRoundAssign = (%v, %v)", x, o)
	}
}

func TestDivisionProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("q*y + r == x and r < y", prop.ForAll(
		func(x, y *Natural) bool {
			if y.IsZero() {
				return true
			}
			q, r := x.DivMod(y)
			return q.Mul(y).Add(r).Eq(x) && r.Cmp(y) < 0
		},
		genNatural(12), genNatural(6),
	))

	properties.Property("floor <= nearest <= ceiling", prop.ForAll(
		func(x, y *Natural) bool {
			if y.IsZero() {
				return true
			}
			f, _ := x.DivRound(y, rounding.Floor)
			n, _ := x.DivRound(y, rounding.Nearest)
			c, _ := x.DivRound(y, rounding.Ceiling)
			return f.Cmp(n) <= 0 && n.Cmp(c) <= 0
		},
		genNatural(6), genNatural(4),
	))

	properties.TestingRun(t)
}
