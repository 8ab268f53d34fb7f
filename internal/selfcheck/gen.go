package selfcheck

import (
	"math/rand/v2"

	"github.com/agbru/limbcalc/internal/integer"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/natural"
	"github.com/agbru/limbcalc/internal/rounding"
)

// Gen draws random operands for one shard of a check. It is not safe for
// concurrent use; every worker owns its own Gen.
type Gen struct {
	rng     *rand.Rand
	maxBits uint64
}

// NewGen returns a generator seeded by (seed, stream). Operands never exceed
// maxBits significant bits.
func NewGen(seed, stream uint64, maxBits uint64) *Gen {
	return &Gen{rng: rand.New(rand.NewPCG(seed, stream)), maxBits: max(maxBits, 1)}
}

// Uint64N returns a uniform value in [0, n).
func (g *Gen) Uint64N(n uint64) uint64 { return g.rng.Uint64N(n) }

// Bool returns a fair coin flip.
func (g *Gen) Bool() bool { return g.rng.Uint64()&1 == 1 }

// Bits returns a random bit length in [0, maxBits]. A quarter of the draws
// stay within two limbs so the single-limb paths see traffic.
func (g *Gen) Bits() uint64 {
	if g.rng.IntN(4) == 0 {
		return g.rng.Uint64N(min(g.maxBits, 2*limb.Width) + 1)
	}
	return g.rng.Uint64N(g.maxBits + 1)
}

// limbValue picks a limb that is either uniform or one of the carry-heavy
// patterns.
func (g *Gen) limbValue() limb.Limb {
	switch g.rng.IntN(8) {
	case 0:
		return 0
	case 1:
		return limb.Max
	case 2:
		return limb.HighBit
	case 3:
		return 1
	}
	return limb.Limb(g.rng.Uint64())
}

// NaturalBits returns a Natural with exactly bits significant bits.
func (g *Gen) NaturalBits(bits uint64) *natural.Natural {
	if bits == 0 {
		return natural.Zero()
	}
	n := int((bits + limb.Width - 1) / limb.Width)
	xs := make([]limb.Limb, n)
	for i := range xs {
		xs[i] = g.limbValue()
	}
	top := bits - uint64(n-1)*limb.Width
	if top < limb.Width {
		xs[n-1] &= limb.Limb(1)<<top - 1
	}
	xs[n-1] |= limb.Limb(1) << (top - 1)
	return natural.FromLimbsAsc(xs)
}

// Natural returns a random Natural, zero included.
func (g *Gen) Natural() *natural.Natural { return g.NaturalBits(g.Bits()) }

// PositiveNatural returns a random nonzero Natural.
func (g *Gen) PositiveNatural() *natural.Natural {
	return g.NaturalBits(max(g.Bits(), 1))
}

// Integer returns a random Integer of either sign.
func (g *Gen) Integer() *integer.Integer {
	return integer.FromSignAndAbs(g.Bool(), g.Natural())
}

// NonZeroInteger returns a random Integer other than zero.
func (g *Gen) NonZeroInteger() *integer.Integer {
	return integer.FromSignAndAbs(g.Bool(), g.PositiveNatural())
}

// Shift returns a shift amount up to a limb past maxBits.
func (g *Gen) Shift() uint64 { return g.rng.Uint64N(g.maxBits + limb.Width + 1) }

// Mode returns a rounding mode other than Exact.
func (g *Gen) Mode() rounding.Mode {
	return rounding.Mode(g.rng.IntN(int(rounding.Exact)))
}
