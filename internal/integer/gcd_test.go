package integer

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/limbcalc/internal/natural"
)

func TestExtendedGcd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b    uint64
		g, x, y int64
	}{
		{0, 0, 0, 0, 0},
		{3, 5, 1, 2, -1},
		{240, 46, 2, -9, 47},
		{0, 7, 7, 0, 1},
		{7, 0, 7, 1, 0},
		{6, 6, 6, 0, 1},
		{6, 18, 6, 1, 0},
		{18, 6, 6, 0, 1},
	}
	for _, tt := range tests {
		g, x, y := ExtendedGcd(natural.FromUint64(tt.a), natural.FromUint64(tt.b))
		if g.LowUint64() != uint64(tt.g) || !x.Eq(FromInt64(tt.x)) || !y.Eq(FromInt64(tt.y)) {
			t.Errorf("ExtendedGcd(%d, %d) = (%v, %v, %v), want (%d, %d, %d)",
				tt.a, tt.b, g, x, y, tt.g, tt.x, tt.y)
		}
	}
}

func TestExtendedGcdProperties(t *testing.T) {
	t.Parallel()
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("a*x + b*y == gcd with bounded coefficients", prop.ForAll(
		func(a, b *Integer) bool {
			na, nb := a.UnsignedAbs(), b.UnsignedAbs()
			g, x, y := ExtendedGcd(na, nb)
			want := new(big.Int).GCD(nil, nil, na.ToBigInt(), nb.ToBigInt())
			if g.ToBigInt().Cmp(want) != 0 {
				return false
			}
			if !FromNatural(na).Mul(x).Add(FromNatural(nb).Mul(y)).Eq(FromNatural(g)) {
				return false
			}
			if g.IsZero() {
				return x.IsZero() && y.IsZero()
			}
			return x.UnsignedAbs().Cmp(atLeastOne(nb.Div(g))) <= 0 &&
				y.UnsignedAbs().Cmp(atLeastOne(na.Div(g))) <= 0
		},
		genInteger(4), genInteger(4),
	))

	properties.TestingRun(t)
}

func atLeastOne(n *natural.Natural) *natural.Natural {
	if n.IsZero() {
		return natural.One()
	}
	return n
}
