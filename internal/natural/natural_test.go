package natural

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/limbcalc/internal/limb"
)

func TestCanonicalRepresentation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		n         *Natural
		wantLimbs int
	}{
		{"zero value", new(Natural), 0},
		{"from zero limbs", FromLimbsAsc([]limb.Limb{0, 0, 0}), 0},
		{"one limb", FromLimbsAsc([]limb.Limb{7, 0}), 1},
		{"two limbs", FromLimbsAsc([]limb.Limb{0, 1}), 2},
		{"difference collapses", FromLimbsAsc([]limb.Limb{0, 1}).Sub(FromLimb(1)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.n.LimbCount(); got != tt.wantLimbs {
				t.Errorf("LimbCount() = %d, want %d", got, tt.wantLimbs)
			}
			if tt.wantLimbs < 2 && tt.n.large != nil {
				t.Errorf("value below 2^W stored as large: %v", tt.n.large)
			}
		})
	}
}

func TestLimbOrder(t *testing.T) {
	t.Parallel()
	asc := []limb.Limb{1, 2, 3}
	n := FromLimbsAsc(asc)
	if !n.Eq(FromLimbsDesc([]limb.Limb{3, 2, 1})) {
		t.Error("FromLimbsDesc disagrees with FromLimbsAsc")
	}
	got := n.LimbsDesc()
	if len(got) != 3 || got[0] != 3 || got[2] != 1 {
		t.Errorf("LimbsDesc() = %v", got)
	}
	asc[0] = 99
	if n.LimbAt(0) != 1 {
		t.Error("FromLimbsAsc kept a reference to its input")
	}
	if n.LimbAt(5) != 0 {
		t.Error("LimbAt past the top is not zero")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	x := One().Shl(130)
	y := x.Clone()
	y.AddAssign(One())
	if x.Eq(y) {
		t.Error("mutating a clone changed the original")
	}
	if x.String() != "1361129467683753853853498429727072845824" {
		t.Errorf("original = %v", x)
	}
}

func TestBigIntRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"0", "1", "18446744073709551615", "18446744073709551616", "340282366920938463463374607431768211457"} {
		b := bigOf(s)
		n, ok := FromBigInt(b)
		if !ok || n.ToBigInt().Cmp(b) != 0 {
			t.Errorf("FromBigInt(%s) round trip = %v", s, n)
		}
	}
	if _, ok := FromBigInt(big.NewInt(-1)); ok {
		t.Error("FromBigInt(-1) succeeded")
	}
}

func TestCmp(t *testing.T) {
	t.Parallel()
	samples := naturalSamples()
	for i, a := range samples {
		for j, b := range samples {
			want := a.ToBigInt().Cmp(b.ToBigInt())
			if got := a.Cmp(b); got != want {
				t.Errorf("Cmp(#%d, #%d) = %d, want %d", i, j, got, want)
			}
			if got := padded(a).Cmp(b); got != want {
				t.Errorf("padded Cmp(#%d, #%d) = %d, want %d", i, j, got, want)
			}
		}
	}
	if FromLimb(5).CmpLimb(5) != 0 || One().Shl(100).CmpLimb(limb.Max) != 1 || Zero().CmpLimb(1) != -1 {
		t.Error("CmpLimb returned a wrong ordering")
	}
}

// Operations must not depend on whether a value is held inline or as a slice.
func TestRepresentationIndependence(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("padded operands give identical results", prop.ForAll(
		func(a, b *Natural) bool {
			pa, pb := padded(a), padded(b)
			if !a.Add(b).Eq(pa.Add(pb)) || !a.Mul(b).Eq(pa.Mul(pb)) {
				return false
			}
			if !a.Xor(b).Eq(pa.Xor(pb)) || a.HammingDistance(b) != pa.HammingDistance(pb) {
				return false
			}
			if a.String() != pa.String() || a.SignificantBits() != pa.SignificantBits() {
				return false
			}
			if !b.IsZero() {
				q1, r1 := a.DivMod(b)
				q2, r2 := pa.DivMod(pb)
				if !q1.Eq(q2) || !r1.Eq(r2) {
					return false
				}
			}
			d1, ok1 := a.CheckedSub(b)
			d2, ok2 := pa.CheckedSub(pb)
			return ok1 == ok2 && (!ok1 || d1.Eq(d2))
		},
		genNatural(4), genNatural(4),
	))

	properties.Property("single limb held as a slice", prop.ForAll(
		func(v uint64) bool {
			small := FromUint64(v)
			large := &Natural{large: small.LimbsAsc()}
			return small.Eq(large) && small.Shl(3).Eq(large.Shl(3)) &&
				small.AddLimb(1).Eq(large.AddLimb(1)) && large.LimbCount() == small.LimbCount()
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestLowUint64(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(1))
	n := randomNatural(r, 3)
	want := new(big.Int).And(n.ToBigInt(), new(big.Int).SetUint64(^uint64(0))).Uint64()
	if got := n.LowUint64(); got != want {
		t.Errorf("LowUint64() = %#x, want %#x", got, want)
	}
}
