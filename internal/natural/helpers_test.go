package natural

import (
	"math/big"
	"math/rand"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/agbru/limbcalc/internal/limb"
)

// mustParse parses a base-10 literal or panics.
func mustParse(s string) *Natural {
	n, ok := Parse(s, 10)
	if !ok {
		panic("bad literal " + s)
	}
	return n
}

func bigOf(s string) *big.Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad literal " + s)
	}
	return b
}

// fromWords builds a Natural from 64-bit words, least significant first.
func fromWords(ws []uint64) *Natural {
	b := new(big.Int)
	for i := len(ws) - 1; i >= 0; i-- {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(ws[i]))
	}
	n, _ := FromBigInt(b)
	return n
}

// padded returns x in the multi-limb case with extra zero limbs on top.
func padded(x *Natural) *Natural {
	return &Natural{large: append(x.LimbsAsc(), 0, 0)}
}

// genNatural generates Naturals of up to maxWords 64-bit words, biased toward
// small values.
func genNatural(maxWords int) gopter.Gen {
	return gen.OneGenOf(
		gen.UInt64().Map(FromUint64),
		gen.SliceOf(gen.UInt64()).Map(func(ws []uint64) *Natural {
			if len(ws) > maxWords {
				ws = ws[:maxWords]
			}
			return fromWords(ws)
		}),
	)
}

func randomNatural(r *rand.Rand, words int) *Natural {
	ws := make([]uint64, words)
	for i := range ws {
		ws[i] = r.Uint64()
	}
	return fromWords(ws)
}

// naturalSamples covers the small/large boundary.
func naturalSamples() []*Natural {
	return []*Natural{
		Zero(),
		One(),
		FromLimb(limb.Max),
		FromLimb(limb.Max).AddLimb(1),
		mustParse("12345678901234567890123456789"),
		One().Shl(200).Sub(One()),
		One().Shl(300),
	}
}

func fromBytes(raw []byte) *Natural {
	n, _ := FromBigInt(new(big.Int).SetBytes(raw))
	return n
}
