package limb

import (
	"math/big"
	"math/rand"
)

// randomLimbs returns n random limbs from a seeded source.
func randomLimbs(n int, seed int64) []Limb {
	r := rand.New(rand.NewSource(seed))
	xs := make([]Limb, n)
	for i := range xs {
		xs[i] = Limb(r.Uint64())
	}
	return xs
}

func cloneLimbs(xs []Limb) []Limb {
	out := make([]Limb, len(xs))
	copy(out, xs)
	return out
}

// toBig converts little-endian limbs to a big.Int.
func toBig(xs []Limb) *big.Int {
	return new(big.Int).SetBytes(ToBytesBE(xs))
}

// pow2 returns 2^n.
func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}
