package integer

import (
	"math/big"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

func mustParse(s string) *Integer {
	x, ok := Parse(s, 10)
	if !ok {
		panic("bad literal " + s)
	}
	return x
}

// integerSamples covers both signs around the limb boundary.
func integerSamples() []*Integer {
	var out []*Integer
	for _, s := range []string{
		"0", "1", "5", "13", "21",
		"18446744073709551615", "18446744073709551616",
		"340282366920938463463374607431768211455",
		"1606938044258990275541962092341162602522202993782792835301376",
	} {
		x := mustParse(s)
		out = append(out, x)
		if !x.IsZero() {
			out = append(out, x.Neg())
		}
	}
	return out
}

func fromWords(neg bool, ws []uint64) *Integer {
	b := new(big.Int)
	for i := len(ws) - 1; i >= 0; i-- {
		b.Lsh(b, 64)
		b.Or(b, new(big.Int).SetUint64(ws[i]))
	}
	if neg {
		b.Neg(b)
	}
	return FromBigInt(b)
}

// genInteger generates Integers of either sign up to maxWords 64-bit words.
func genInteger(maxWords int) gopter.Gen {
	return gopter.CombineGens(gen.Bool(), gen.SliceOf(gen.UInt64())).Map(func(vs []any) *Integer {
		ws := vs[1].([]uint64)
		if len(ws) > maxWords {
			ws = ws[:maxWords]
		}
		return fromWords(vs[0].(bool), ws)
	})
}

// genInt64Integer generates small Integers so that random pairs often share
// low bits.
func genInt64Integer() gopter.Gen {
	return gen.Int64Range(-1000, 1000).Map(func(v int64) *Integer { return FromInt64(v) })
}

// floorDivMod is the math/big reference for floor division.
func floorDivMod(x, y *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, y)
	}
	return q, r
}
