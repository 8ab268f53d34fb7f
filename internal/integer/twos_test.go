package integer

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/limbcalc/internal/limb"
)

func TestLogicAgainstBig(t *testing.T) {
	t.Parallel()
	samples := integerSamples()
	for i, a := range samples {
		ba := a.ToBigInt()
		if got, want := a.Not().ToBigInt(), new(big.Int).Not(ba); got.Cmp(want) != 0 {
			t.Errorf("Not(#%d) = %v, want %v", i, got, want)
		}
		for j, b := range samples {
			bb := b.ToBigInt()
			tests := []struct {
				name string
				got  *Integer
				want *big.Int
			}{
				{"And", a.And(b), new(big.Int).And(ba, bb)},
				{"Or", a.Or(b), new(big.Int).Or(ba, bb)},
				{"Xor", a.Xor(b), new(big.Int).Xor(ba, bb)},
				{"AndNot", a.AndNot(b), new(big.Int).AndNot(ba, bb)},
			}
			for _, tt := range tests {
				if tt.got.ToBigInt().Cmp(tt.want) != 0 {
					t.Errorf("%s(#%d, #%d) = %v, want %v", tt.name, i, j, tt.got, tt.want)
				}
			}
		}
	}
}

func TestGetBitNegative(t *testing.T) {
	t.Parallel()
	for _, x := range integerSamples() {
		b := x.ToBigInt()
		for i := uint64(0); i < 260; i++ {
			if got, want := x.GetBit(i), b.Bit(int(i)) == 1; got != want {
				t.Fatalf("GetBit(%v, %d) = %v, want %v", x, i, got, want)
			}
		}
	}
}

func TestTwosComplementLimbs(t *testing.T) {
	t.Parallel()
	if got := Zero().TwosComplementLimbsAsc(); len(got) != 0 {
		t.Errorf("zero encodes as %v", got)
	}
	if got := FromInt64(-1).TwosComplementLimbsAsc(); len(got) != 1 || got[0] != limb.Max {
		t.Errorf("-1 encodes as %v", got)
	}
	// 2^(W-1) needs a zero sign limb, -2^(W-1) does not.
	hb := FromUint64(uint64(limb.HighBit))
	if got := hb.TwosComplementLimbsAsc(); len(got) != 2 || got[1] != 0 {
		t.Errorf("2^(W-1) encodes as %v", got)
	}
	if got := hb.Neg().TwosComplementLimbsAsc(); len(got) != 1 || got[0] != limb.HighBit {
		t.Errorf("-2^(W-1) encodes as %v", got)
	}
	for _, x := range integerSamples() {
		xs := x.TwosComplementLimbsAsc()
		if got := FromTwosComplementLimbsAsc(xs); !got.Eq(x) {
			t.Errorf("round trip of %v gave %v", x, got)
		}
	}
}

func TestModAndGetBits(t *testing.T) {
	t.Parallel()
	x := FromInt64(-3)
	if got := x.ModPowerOf2(3).String(); got != "5" {
		t.Errorf("-3 mod 8 = %s", got)
	}
	if got := x.RemPowerOf2(3).String(); got != "-3" {
		t.Errorf("-3 rem 8 = %s", got)
	}
	if got := x.GetBits(1, 6).String(); got != "30" {
		t.Errorf("GetBits(-3, 1, 6) = %s", got)
	}
	if got := FromInt64(0x5a).GetBits(4, 8).String(); got != "5" {
		t.Errorf("GetBits(0x5a, 4, 8) = %s", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("GetBits(5, 4) did not panic")
		}
	}()
	x.GetBits(5, 4)
}

func TestEqModPowerOf2(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, y int64
		k    uint64
		want bool
	}{
		{-3, 21, 3, true},
		{-3, 21, 4, false},
		{-13, 21, 3, false},
		{13, 21, 3, true},
		{13, 21, 4, false},
		{-1, -1, 1000, true},
		{0, 256, 8, true},
		{0, 256, 9, false},
		{5, 99, 0, true},
	}
	for _, tt := range tests {
		if got := FromInt64(tt.x).EqModPowerOf2(FromInt64(tt.y), tt.k); got != tt.want {
			t.Errorf("EqModPowerOf2(%d, %d, %d) = %v, want %v", tt.x, tt.y, tt.k, got, tt.want)
		}
	}
}

func TestHammingDistance(t *testing.T) {
	t.Parallel()
	if _, ok := FromInt64(-1).CheckedHammingDistance(FromInt64(1)); ok {
		t.Error("opposite signs have a finite distance")
	}
	if d, ok := FromInt64(-1).CheckedHammingDistance(FromInt64(-2)); !ok || d != 1 {
		t.Errorf("d(-1, -2) = (%d, %v), want (1, true)", d, ok)
	}
	if d, ok := FromInt64(0).CheckedHammingDistance(FromInt64(255)); !ok || d != 8 {
		t.Errorf("d(0, 255) = (%d, %v), want (8, true)", d, ok)
	}
}

func TestTwosProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("EqModPowerOf2 iff 2^k divides the difference", prop.ForAll(
		func(x, y *Integer, k uint64) bool {
			d := x.Sub(y).ToBigInt()
			m := new(big.Int).Lsh(big.NewInt(1), uint(k))
			want := new(big.Int).Mod(d, m).Sign() == 0
			return x.EqModPowerOf2(y, k) == want
		},
		genInt64Integer(), genInt64Integer(), gen.UInt64Range(0, 140),
	))

	properties.Property("EqModPowerOf2 on wide values", prop.ForAll(
		func(x, y *Integer, k uint64) bool {
			d := x.Sub(y).ToBigInt()
			m := new(big.Int).Lsh(big.NewInt(1), uint(k))
			want := new(big.Int).Mod(d, m).Sign() == 0
			return x.EqModPowerOf2(y, k) == want && x.EqModPowerOf2(x.Add(FromInt64(1).Shl(k)), k)
		},
		genInteger(3), genInteger(3), gen.UInt64Range(0, 260),
	))

	properties.Property("same-sign Hamming distance satisfies the triangle inequality", prop.ForAll(
		func(neg bool, a, b, c *Integer) bool {
			if neg {
				a, b, c = a.Abs().Not(), b.Abs().Not(), c.Abs().Not()
			} else {
				a, b, c = a.Abs(), b.Abs(), c.Abs()
			}
			ab, ok1 := a.CheckedHammingDistance(b)
			bc, ok2 := b.CheckedHammingDistance(c)
			ac, ok3 := a.CheckedHammingDistance(c)
			return ok1 && ok2 && ok3 && ac <= ab+bc
		},
		gen.Bool(), genInteger(3), genInteger(3), genInteger(3),
	))

	properties.Property("Xor then count matches Hamming distance", prop.ForAll(
		func(a, b *Integer) bool {
			a, b = a.Abs(), b.Abs()
			d, ok := a.CheckedHammingDistance(b)
			return ok && d == a.Xor(b).UnsignedAbs().CountOnes()
		},
		genInteger(3), genInteger(3),
	))

	properties.TestingRun(t)
}
