package natural

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
	samples := naturalSamples()
	for i, a := range samples {
		for j, b := range samples {
			ba, bb := a.ToBigInt(), b.ToBigInt()
			if got, want := a.Add(b).ToBigInt(), new(big.Int).Add(ba, bb); got.Cmp(want) != 0 {
				t.Errorf("#%d + #%d = %v, want %v", i, j, got, want)
			}
			if got, want := a.Mul(b).ToBigInt(), new(big.Int).Mul(ba, bb); got.Cmp(want) != 0 {
				t.Errorf("#%d * #%d = %v, want %v", i, j, got, want)
			}
			if got, want := a.AbsDiff(b).ToBigInt(), new(big.Int).Abs(new(big.Int).Sub(ba, bb)); got.Cmp(want) != 0 {
				t.Errorf("AbsDiff(#%d, #%d) = %v, want %v", i, j, got, want)
			}
			d, ok := a.CheckedSub(b)
			if wantOK := ba.Cmp(bb) >= 0; ok != wantOK {
				t.Errorf("CheckedSub(#%d, #%d) ok = %v, want %v", i, j, ok, wantOK)
			} else if ok && d.ToBigInt().Cmp(new(big.Int).Sub(ba, bb)) != 0 {
				t.Errorf("CheckedSub(#%d, #%d) = %v", i, j, d)
			}
			if !ok && !a.SaturatingSub(b).IsZero() {
				t.Errorf("SaturatingSub(#%d, #%d) is not zero", i, j)
			}
		}
	}
}

func TestSubPanicsOnNegative(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != "natural: subtraction result is negative" {
			t.Errorf("recover() = %v", r)
		}
	}()
	FromLimb(3).Sub(FromLimb(4))
}

func TestSubAssignLeavesReceiverOnPanic(t *testing.T) {
	t.Parallel()
	x := FromLimb(3)
	func() {
		defer func() { _ = recover() }()
		x.SubAssign(FromLimb(4))
	}()
	if !x.Eq(FromLimb(3)) {
		t.Errorf("x = %v after failed SubAssign, want 3", x)
	}
}

func TestKaratsubaMatchesBig(t *testing.T) {
	t.Parallel()
	for _, words := range [][2]int{{karatsubaThreshold, karatsubaThreshold}, {3 * karatsubaThreshold, karatsubaThreshold + 1}, {200, 150}, {500, 45}} {
		a := One().Shl(uint64(words[0])*64 - 1).Sub(One())
		b := mustParse("987654321987654321987654321").Pow(uint64(words[1]) / 2)
		want := new(big.Int).Mul(a.ToBigInt(), b.ToBigInt())
		if got := a.Mul(b).ToBigInt(); got.Cmp(want) != 0 {
			t.Errorf("Mul over %v words differs from math/big", words)
		}
		if got := b.Square().ToBigInt(); got.Cmp(new(big.Int).Mul(b.ToBigInt(), b.ToBigInt())) != 0 {
			t.Errorf("Square over %d words differs from math/big", words[1])
		}
	}
}

func TestPow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		base string
		exp  uint64
		want string
	}{
		{"0", 0, "1"},
		{"0", 5, "0"},
		{"3", 4, "81"},
		{"2", 100, "1267650600228229401496703205376"},
		{"10", 30, "1000000000000000000000000000000"},
	}
	for _, tt := range tests {
		if got := mustParse(tt.base).Pow(tt.exp).String(); got != tt.want {
			t.Errorf("%s^%d = %s, want %s", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestFusedMultiplyAdd(t *testing.T) {
	t.Parallel()
	x := mustParse("1000000000000000000000")
	y := mustParse("123456789123456789")
	z := mustParse("1000")
	if got := x.AddMul(y, z).String(); got != "1123456789123456789000" {
		t.Errorf("AddMul = %s", got)
	}
	if got := x.AddMulLimb(y, 1000).String(); got != "1123456789123456789000" {
		t.Errorf("AddMulLimb = %s", got)
	}
	if got := x.SubMul(y, z).String(); got != "876543210876543211000" {
		t.Errorf("SubMul = %s", got)
	}
	if _, ok := z.CheckedSubMul(y, z); ok {
		t.Error("CheckedSubMul with a larger product succeeded")
	}
	if !z.SaturatingSubMul(y, z).IsZero() {
		t.Error("SaturatingSubMul did not clamp to zero")
	}
	if got, ok := x.CheckedSubMulLimb(y, 1000); !ok || got.String() != "876543210876543211000" {
		t.Errorf("CheckedSubMulLimb = (%v, %v)", got, ok)
	}
	if _, ok := FromLimb(5).CheckedSubMulLimb(FromLimb(3), 2); ok {
		t.Error("CheckedSubMulLimb(5 - 3*2) succeeded")
	}

	acc := x.Clone()
	acc.AddMulAssign(y, z)
	acc.SubMulAssign(y, z)
	if !acc.Eq(x) {
		t.Errorf("AddMulAssign then SubMulAssign = %v, want %v", acc, x)
	}
}

func TestAssignWithAliasedOperand(t *testing.T) {
	t.Parallel()
	x := One().Shl(100).AddLimb(5)
	want := x.Add(x)
	x.AddAssign(x)
	if !x.Eq(want) {
		t.Errorf("x.AddAssign(x) = %v, want %v", x, want)
	}
	want = x.Mul(x)
	x.MulAssign(x)
	if !x.Eq(want) {
		t.Errorf("x.MulAssign(x) = %v, want %v", x, want)
	}
	x.SubAssign(x)
	if !x.IsZero() {
		t.Errorf("x.SubAssign(x) = %v", x)
	}
}

func TestArithmeticProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("add then sub is identity", prop.ForAll(
		func(a, b *Natural) bool {
			return a.Add(b).Sub(b).Eq(a)
		},
		genNatural(6), genNatural(6),
	))

	properties.Property("mul matches math/big", prop.ForAll(
		func(a, b *Natural) bool {
			return a.Mul(b).ToBigInt().Cmp(new(big.Int).Mul(a.ToBigInt(), b.ToBigInt())) == 0
		},
		genNatural(60), genNatural(60),
	))

	properties.Property("AddMulLimb matches AddMul", prop.ForAll(
		func(a, b *Natural, v uint64) bool {
			m := limb.Limb(v)
			return a.AddMulLimb(b, m).Eq(a.AddMul(b, FromLimb(m)))
		},
		genNatural(4), genNatural(4), gen.UInt64(),
	))

	properties.TestingRun(t)
}
