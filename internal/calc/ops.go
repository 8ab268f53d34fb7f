package calc

import (
	"strconv"
	"strings"

	"github.com/agbru/limbcalc/internal/integer"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/natural"
	"github.com/agbru/limbcalc/internal/rounding"
)

func intValue(name string, x *integer.Integer, base int) Value {
	return Value{Name: name, Text: x.Text(base)}
}

func natValue(name string, x *natural.Natural, base int) Value {
	return Value{Name: name, Text: x.Text(base)}
}

func orderingValue(o rounding.Ordering) Value {
	return Value{Name: "ordering", Text: o.String()}
}

func boolValue(name string, b bool) Value {
	return Value{Name: name, Text: strconv.FormatBool(b)}
}

// binary builds an operation x op y on Integers.
func binary(name, doc string, f func(x, y *integer.Integer) *integer.Integer) Operation {
	return Operation{Name: name, Usage: "x y", Doc: doc, Arity: 2,
		eval: func(a *args, o Options) []Value {
			return []Value{intValue("result", f(a.integer(0), a.integer(1)), o.Base)}
		}}
}

// pair builds an operation returning a quotient and a remainder.
func pair(name, doc string, f func(x, y *integer.Integer) (*integer.Integer, *integer.Integer)) Operation {
	return Operation{Name: name, Usage: "x y", Doc: doc, Arity: 2,
		eval: func(a *args, o Options) []Value {
			q, r := f(a.integer(0), a.integer(1))
			return []Value{intValue("quotient", q, o.Base), intValue("remainder", r, o.Base)}
		}}
}

func builtins() []Operation {
	return []Operation{
		binary("add", "x + y", (*integer.Integer).Add),
		binary("sub", "x - y", (*integer.Integer).Sub),
		binary("mul", "x * y", (*integer.Integer).Mul),
		binary("divexact", "x / y, which must be exact", (*integer.Integer).DivExact),
		binary("and", "bitwise AND in two's complement", (*integer.Integer).And),
		binary("or", "bitwise OR in two's complement", (*integer.Integer).Or),
		binary("xor", "bitwise XOR in two's complement", (*integer.Integer).Xor),
		binary("andnot", "x AND NOT y in two's complement", (*integer.Integer).AndNot),
		pair("divmod", "floor division: quotient and remainder with the sign of y", (*integer.Integer).DivMod),
		pair("divrem", "truncating division: quotient and remainder with the sign of x", (*integer.Integer).DivRem),
		pair("ceildivmod", "ceiling division: quotient and remainder with the sign opposite to y", (*integer.Integer).CeilingDivMod),
		{Name: "addmul", Usage: "x y z", Doc: "x + y * z", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{intValue("result", a.integer(0).AddMul(a.integer(1), a.integer(2)), o.Base)}
			}},
		{Name: "submul", Usage: "x y z", Doc: "x - y * z", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{intValue("result", a.integer(0).SubMul(a.integer(1), a.integer(2)), o.Base)}
			}},
		{Name: "pow", Usage: "x e", Doc: "x raised to the decimal power e", Arity: 2,
			eval: func(a *args, o Options) []Value {
				x := a.integer(0)
				return []Value{intValue("result", x.Pow(a.exponent(1, x.UnsignedAbs())), o.Base)}
			}},
		{Name: "not", Usage: "x", Doc: "bitwise NOT, -x - 1", Arity: 1,
			eval: func(a *args, o Options) []Value {
				return []Value{intValue("result", a.integer(0).Not(), o.Base)}
			}},
		{Name: "divround", Usage: "x y", Doc: "x / y rounded by -rounding", Arity: 2,
			eval: func(a *args, o Options) []Value {
				q, ord := a.integer(0).DivRound(a.integer(1), o.Rounding)
				return []Value{intValue("quotient", q, o.Base), orderingValue(ord)}
			}},
		{Name: "shl", Usage: "x n", Doc: "x * 2^n", Arity: 2,
			eval: func(a *args, o Options) []Value {
				return []Value{intValue("result", a.integer(0).Shl(a.bitCount(1)), o.Base)}
			}},
		{Name: "shr", Usage: "x n", Doc: "floor(x / 2^n)", Arity: 2,
			eval: func(a *args, o Options) []Value {
				return []Value{intValue("result", a.integer(0).Shr(a.bitCount(1)), o.Base)}
			}},
		{Name: "shrround", Usage: "x n", Doc: "x / 2^n rounded by -rounding", Arity: 2,
			eval: func(a *args, o Options) []Value {
				q, ord := a.integer(0).ShrRound(a.bitCount(1), o.Rounding)
				return []Value{intValue("result", q, o.Base), orderingValue(ord)}
			}},
		{Name: "roundmult", Usage: "x y", Doc: "x rounded to a multiple of |y| by -rounding", Arity: 2,
			eval: func(a *args, o Options) []Value {
				r, ord := a.integer(0).RoundToMultiple(a.integer(1), o.Rounding)
				return []Value{intValue("result", r, o.Base), orderingValue(ord)}
			}},
		{Name: "roundpow2", Usage: "x k", Doc: "x rounded to a multiple of 2^k by -rounding", Arity: 2,
			eval: func(a *args, o Options) []Value {
				r, ord := a.integer(0).RoundToMultipleOfPowerOf2(a.bitCount(1), o.Rounding)
				return []Value{intValue("result", r, o.Base), orderingValue(ord)}
			}},
		{Name: "eqmod", Usage: "x y m", Doc: "whether x = y (mod m)", Arity: 3,
			eval: func(a *args, _ Options) []Value {
				return []Value{boolValue("result", a.integer(0).EqMod(a.integer(1), a.integer(2)))}
			}},
		{Name: "eqmodpow2", Usage: "x y k", Doc: "whether x = y (mod 2^k)", Arity: 3,
			eval: func(a *args, _ Options) []Value {
				return []Value{boolValue("result", a.integer(0).EqModPowerOf2(a.integer(1), a.bitCount(2)))}
			}},
		{Name: "divisible", Usage: "x y", Doc: "whether y divides x", Arity: 2,
			eval: func(a *args, _ Options) []Value {
				return []Value{boolValue("result", a.integer(0).DivisibleBy(a.integer(1)))}
			}},
		{Name: "hamming", Usage: "x y", Doc: "differing bits of the two's-complement forms, or none", Arity: 2,
			eval: func(a *args, _ Options) []Value {
				d, ok := a.integer(0).CheckedHammingDistance(a.integer(1))
				if !ok {
					return []Value{{Name: "result", Text: "none"}}
				}
				return []Value{{Name: "result", Text: strconv.FormatUint(d, 10)}}
			}},
		{Name: "getbit", Usage: "x i", Doc: "bit i of the two's-complement form of x", Arity: 2,
			eval: func(a *args, _ Options) []Value {
				return []Value{boolValue("result", a.integer(0).GetBit(a.bitCount(1)))}
			}},
		{Name: "getbits", Usage: "x start end", Doc: "bits [start, end) of the two's-complement form of x", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.integer(0).GetBits(a.bitCount(1), a.bitCount(2)), o.Base)}
			}},
		{Name: "modpow2", Usage: "x k", Doc: "x mod 2^k", Arity: 2,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.integer(0).ModPowerOf2(a.bitCount(1)), o.Base)}
			}},
		{Name: "bits", Usage: "x", Doc: "significant bits and trailing zeros of |x|", Arity: 1,
			eval: func(a *args, _ Options) []Value {
				n := a.integer(0).UnsignedAbs()
				vs := []Value{{Name: "significant", Text: strconv.FormatUint(n.SignificantBits(), 10)}}
				if tz, ok := n.TrailingZeros(); ok {
					vs = append(vs, Value{Name: "trailing_zeros", Text: strconv.FormatUint(tz, 10)})
				}
				return append(vs, Value{Name: "ones", Text: strconv.FormatUint(n.CountOnes(), 10)})
			}},
		{Name: "digits", Usage: "n b", Doc: "digits of n in decimal base b, most significant first", Arity: 2,
			eval: func(a *args, _ Options) []Value {
				ds := natural.ToDigitsDesc(a.natural(0), a.count(1))
				return []Value{{Name: "digits", Text: joinUint64(ds)}}
			}},
		{Name: "fromdigits", Usage: "b d...", Doc: "the number with decimal digits d in base b, most significant first", Arity: -1, MinArgs: 1,
			eval: func(a *args, o Options) []Value {
				b := a.count(0)
				ds := make([]uint64, len(a.raw)-1)
				for i := range ds {
					ds[i] = a.count(i + 1)
				}
				n, ok := natural.FromDigitsDesc(b, ds)
				if !ok {
					panic(parseError{msg: "every digit must be less than the base"})
				}
				return []Value{natValue("result", n, o.Base)}
			}},
		{Name: "twos", Usage: "x", Doc: "two's-complement limbs of x in hex, least significant first", Arity: 1,
			eval: func(a *args, _ Options) []Value {
				ls := a.integer(0).TwosComplementLimbsAsc()
				parts := make([]string, len(ls))
				for i, l := range ls {
					parts[i] = "0x" + strconv.FormatUint(uint64(l), 16)
				}
				return []Value{
					{Name: "limbs", Text: strings.Join(parts, " ")},
					{Name: "width", Text: strconv.Itoa(limb.Width)},
				}
			}},
		{Name: "modadd", Usage: "x y m", Doc: "x + y mod m, with x, y < m", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).ModAdd(a.natural(1), a.natural(2)), o.Base)}
			}},
		{Name: "modsub", Usage: "x y m", Doc: "x - y mod m, with x, y < m", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).ModSub(a.natural(1), a.natural(2)), o.Base)}
			}},
		{Name: "modmul", Usage: "x y m", Doc: "x * y mod m, with x, y < m", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).ModMul(a.natural(1), a.natural(2)), o.Base)}
			}},
		{Name: "modpow", Usage: "x e m", Doc: "x^e mod m, with x < m", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).ModPow(a.natural(1), a.natural(2)), o.Base)}
			}},
		{Name: "modshl", Usage: "x n m", Doc: "x * 2^n mod m for a decimal n, with x < m", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).ModShl(a.count(1), a.natural(2)), o.Base)}
			}},
		{Name: "modpow2add", Usage: "x y k", Doc: "x + y mod 2^k, with x, y < 2^k", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).ModPowerOf2Add(a.natural(1), a.bitCount(2)), o.Base)}
			}},
		{Name: "modpow2sub", Usage: "x y k", Doc: "x - y mod 2^k, with x, y < 2^k", Arity: 3,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).ModPowerOf2Sub(a.natural(1), a.bitCount(2)), o.Base)}
			}},
		{Name: "gcd", Usage: "x y", Doc: "greatest common divisor of x and y", Arity: 2,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).Gcd(a.natural(1)), o.Base)}
			}},
		{Name: "lcm", Usage: "x y", Doc: "least common multiple of x and y", Arity: 2,
			eval: func(a *args, o Options) []Value {
				return []Value{natValue("result", a.natural(0).Lcm(a.natural(1)), o.Base)}
			}},
		{Name: "xgcd", Usage: "x y", Doc: "gcd of x and y with coefficients s, t such that x*s + y*t = gcd", Arity: 2,
			eval: func(a *args, o Options) []Value {
				g, s, t := integer.ExtendedGcd(a.natural(0), a.natural(1))
				return []Value{natValue("gcd", g, o.Base), intValue("s", s, o.Base), intValue("t", t, o.Base)}
			}},
		{Name: "sqrt", Usage: "x", Doc: "floor square root of x and the remainder", Arity: 1,
			eval: func(a *args, o Options) []Value {
				r, rem := a.natural(0).SqrtRem()
				return []Value{natValue("root", r, o.Base), natValue("remainder", rem, o.Base)}
			}},
		{Name: "root", Usage: "x n", Doc: "floor n-th root of x for a decimal n and the remainder", Arity: 2,
			eval: func(a *args, o Options) []Value {
				r, rem := a.natural(0).RootRem(a.count(1))
				return []Value{natValue("root", r, o.Base), natValue("remainder", rem, o.Base)}
			}},
		{Name: "tofloat", Usage: "x", Doc: "x as the float64 chosen by -rounding", Arity: 1,
			eval: func(a *args, o Options) []Value {
				f, ord := a.integer(0).RoundingToFloat64(o.Rounding)
				return []Value{{Name: "result", Text: strconv.FormatFloat(f, 'g', -1, 64)}, orderingValue(ord)}
			}},
		{Name: "fromfloat", Usage: "f", Doc: "the integer chosen by -rounding for f", Arity: 1,
			eval: func(a *args, o Options) []Value {
				x, ord := integer.RoundingFromFloat64(a.float(0), o.Rounding)
				return []Value{intValue("result", x, o.Base), orderingValue(ord)}
			}},
	}
}

func joinUint64(vs []uint64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, " ")
}
