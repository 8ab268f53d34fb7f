package integer

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/limbcalc/internal/limb"
)

func TestArithmeticAgainstBig(t *testing.T) {
	t.Parallel()
	samples := integerSamples()
	for i, a := range samples {
		for j, b := range samples {
			ba, bb := a.ToBigInt(), b.ToBigInt()
			check := func(op string, got *Integer, want *big.Int) {
				if got.ToBigInt().Cmp(want) != 0 {
					t.Errorf("%s(#%d, #%d) = %v, want %v", op, i, j, got, want)
				}
				if got.IsZero() && got.IsNegative() {
					t.Errorf("%s(#%d, #%d) produced negative zero", op, i, j)
				}
			}
			check("Add", a.Add(b), new(big.Int).Add(ba, bb))
			check("Sub", a.Sub(b), new(big.Int).Sub(ba, bb))
			check("Mul", a.Mul(b), new(big.Int).Mul(ba, bb))
			check("AddMul", a.AddMul(b, b), new(big.Int).Add(ba, new(big.Int).Mul(bb, bb)))
			check("SubMul", a.SubMul(a, b), new(big.Int).Sub(ba, new(big.Int).Mul(ba, bb)))
		}
	}
}

func TestAssignForms(t *testing.T) {
	t.Parallel()
	x := FromInt64(10)
	x.SubAssign(FromInt64(25))
	if x.String() != "-15" {
		t.Errorf("SubAssign = %v", x)
	}
	x.AddAssign(FromInt64(15))
	if !x.IsZero() || x.IsNegative() {
		t.Errorf("AddAssign to zero = %v (neg %v)", x, x.IsNegative())
	}
	x = FromInt64(-3)
	x.MulAssign(x)
	if x.String() != "9" {
		t.Errorf("x.MulAssign(x) = %v", x)
	}
	x.AddMulAssign(FromInt64(-2), FromInt64(5))
	x.SubMulAssign(FromInt64(1), FromInt64(-1))
	if x.String() != "0" {
		t.Errorf("fused assigns = %v, want 0", x)
	}
	if got := FromInt64(-2).Pow(3).String(); got != "-8" {
		t.Errorf("(-2)^3 = %s", got)
	}
	if got := FromInt64(-7).Square().String(); got != "49" {
		t.Errorf("(-7)^2 = %s", got)
	}
}

func TestMulLimbSignRederivation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, y int64
		m    limb.Limb
		add  string
		sub  string
	}{
		{10, 3, 2, "16", "4"},
		{10, 3, 5, "25", "-5"},
		{-10, 3, 5, "5", "-25"},
		{-10, -3, 2, "-16", "-4"},
		{-10, -3, 5, "-25", "5"},
		{0, -3, 5, "-15", "15"},
		{7, 0, 5, "7", "7"},
		{6, 3, 2, "12", "0"},
	}
	for _, tt := range tests {
		x, y := FromInt64(tt.x), FromInt64(tt.y)
		if got := x.AddMulLimb(y, tt.m).String(); got != tt.add {
			t.Errorf("%d + %d*%d = %s, want %s", tt.x, tt.y, tt.m, got, tt.add)
		}
		got := x.SubMulLimb(y, tt.m)
		if got.String() != tt.sub {
			t.Errorf("%d - %d*%d = %s, want %s", tt.x, tt.y, tt.m, got, tt.sub)
		}
		if got.IsZero() && got.IsNegative() {
			t.Errorf("%d - %d*%d gave negative zero", tt.x, tt.y, tt.m)
		}
	}
}

func TestArithmeticProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("sub is add of negation", prop.ForAll(
		func(a, b *Integer) bool {
			return a.Sub(b).Eq(a.Add(b.Neg()))
		},
		genInteger(5), genInteger(5),
	))

	properties.Property("AddMulLimb matches math/big", prop.ForAll(
		func(a, b *Integer, v uint64) bool {
			m := limb.Limb(v)
			want := new(big.Int).Mul(b.ToBigInt(), new(big.Int).SetUint64(uint64(m)))
			return a.AddMulLimb(b, m).ToBigInt().Cmp(new(big.Int).Add(a.ToBigInt(), want)) == 0 &&
				a.SubMulLimb(b, m).ToBigInt().Cmp(new(big.Int).Sub(a.ToBigInt(), want)) == 0
		},
		genInteger(3), genInteger(3), gen.UInt64(),
	))

	properties.TestingRun(t)
}
