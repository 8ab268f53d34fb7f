package selfcheck

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"

	"github.com/agbru/limbcalc/internal/integer"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/natural"
	"github.com/agbru/limbcalc/internal/rounding"
)

// Check is one property verified against math/big.
type Check struct {
	// Name identifies the check in reports and metrics labels.
	Name string
	// Doc is a one-line description shown by verbose output.
	Doc string
	// Sample tests one random instance and describes the counterexample
	// when the property fails.
	Sample func(g *Gen) error
}

// DefaultChecks returns the full property list in a stable order.
func DefaultChecks() []Check {
	return []Check{
		{"add-sub", "sums and differences match math/big and cancel", checkAddSub},
		{"mul", "products, squares and small powers match math/big", checkMul},
		{"add-mul", "fused multiply-add and multiply-subtract match math/big", checkAddMul},
		{"div-mod", "floor, truncating and ceiling division match math/big", checkDivMod},
		{"div-exact", "exact division undoes multiplication", checkDivExact},
		{"div-round", "rounded division and its ordering match math/big", checkDivRound},
		{"round-monotone", "rounded division is monotone in the dividend and mode", checkRoundMonotone},
		{"shift", "shifts and rounded right shifts match math/big", checkShift},
		{"round-multiple", "rounding to multiples matches scaled division", checkRoundMultiple},
		{"digits", "digit expansions round-trip and match math/big text", checkDigits},
		{"logic", "two's-complement logic matches math/big", checkLogic},
		{"bits", "bit access and two's-complement limbs match math/big", checkBits},
		{"eq-mod", "congruence tests agree with divisibility of the difference", checkEqMod},
		{"hamming", "Hamming distance counts differing bits and obeys the triangle inequality", checkHamming},
		{"rotate", "limb rotations are inverse and match math/bits", checkRotate},
		{"limb-division", "two-limb division and preinversion match math/big", checkLimbDivision},
		{"float", "float conversions bracket the exact value", checkFloat},
		{"convert", "primitive conversions match math/big", checkConvert},
		{"modular", "modular sums, products, powers and shifts match math/big", checkModular},
		{"gcd", "gcd, lcm and Bézout coefficients match math/big", checkGcd},
		{"root", "square roots match math/big and n-th roots bracket x", checkRoot},
	}
}

func checkAddSub(g *Gen) error {
	x, y := g.Integer(), g.Integer()
	bx, by := x.ToBigInt(), y.ToBigInt()
	sum := x.Add(y)
	if want := new(big.Int).Add(bx, by); !sameInt(sum, want) {
		return fmt.Errorf("%v + %v = %v, want %v", x, y, sum, want)
	}
	if diff := x.Sub(y); !sameInt(diff, new(big.Int).Sub(bx, by)) {
		return fmt.Errorf("%v - %v = %v", x, y, diff)
	}
	if back := sum.Sub(y); !back.Eq(x) {
		return fmt.Errorf("(%v + %v) - %v = %v", x, y, y, back)
	}
	return nil
}

func checkMul(g *Gen) error {
	x, y := g.Integer(), g.Integer()
	bx := x.ToBigInt()
	if p := x.Mul(y); !sameInt(p, new(big.Int).Mul(bx, y.ToBigInt())) {
		return fmt.Errorf("%v * %v = %v", x, y, p)
	}
	if sq := x.Square(); !sameInt(sq, new(big.Int).Mul(bx, bx)) {
		return fmt.Errorf("%v squared = %v", x, sq)
	}
	e := g.Uint64N(5)
	if p := x.Pow(e); !sameInt(p, new(big.Int).Exp(bx, big.NewInt(int64(e)), nil)) {
		return fmt.Errorf("%v ^ %d = %v", x, e, p)
	}
	return nil
}

func checkAddMul(g *Gen) error {
	x, y, z := g.Integer(), g.Integer(), g.Integer()
	prod := new(big.Int).Mul(y.ToBigInt(), z.ToBigInt())
	if got := x.AddMul(y, z); !sameInt(got, new(big.Int).Add(x.ToBigInt(), prod)) {
		return fmt.Errorf("%v + %v*%v = %v", x, y, z, got)
	}
	if got := x.SubMul(y, z); !sameInt(got, new(big.Int).Sub(x.ToBigInt(), prod)) {
		return fmt.Errorf("%v - %v*%v = %v", x, y, z, got)
	}
	a, b, c := g.Natural(), g.Natural(), g.Natural()
	want := new(big.Int).Sub(a.ToBigInt(), new(big.Int).Mul(b.ToBigInt(), c.ToBigInt()))
	got, ok := a.CheckedSubMul(b, c)
	if ok != (want.Sign() >= 0) || ok && !sameNat(got, want) {
		return fmt.Errorf("natural %v - %v*%v = %v (ok=%t)", a, b, c, got, ok)
	}
	return nil
}

func checkDivMod(g *Gen) error {
	x, y := g.Integer(), g.NonZeroInteger()
	bx, by := x.ToBigInt(), y.ToBigInt()

	q, r := x.DivMod(y)
	wq, wr := floorDivModBig(bx, by)
	if !sameInt(q, wq) || !sameInt(r, wr) {
		return fmt.Errorf("%v divmod %v = (%v, %v), want (%v, %v)", x, y, q, r, wq, wr)
	}

	q, r = x.DivRem(y)
	tq, tr := new(big.Int).QuoRem(bx, by, new(big.Int))
	if !sameInt(q, tq) || !sameInt(r, tr) {
		return fmt.Errorf("%v divrem %v = (%v, %v), want (%v, %v)", x, y, q, r, tq, tr)
	}

	q, r = x.CeilingDivMod(y)
	cq, _ := floorDivModBig(new(big.Int).Neg(bx), by)
	cq.Neg(cq)
	cr := new(big.Int).Sub(bx, new(big.Int).Mul(cq, by))
	if !sameInt(q, cq) || !sameInt(r, cr) {
		return fmt.Errorf("%v ceildivmod %v = (%v, %v), want (%v, %v)", x, y, q, r, cq, cr)
	}

	a, b := g.Natural(), g.PositiveNatural()
	nq, nr := a.DivMod(b)
	if nr.Cmp(b) >= 0 || !nq.Mul(b).Add(nr).Eq(a) {
		return fmt.Errorf("natural %v divmod %v = (%v, %v)", a, b, nq, nr)
	}
	return nil
}

func checkDivExact(g *Gen) error {
	x, y := g.Integer(), g.NonZeroInteger()
	p := x.Mul(y)
	if q := p.DivExact(y); !q.Eq(x) {
		return fmt.Errorf("(%v * %v) / %v = %v", x, y, y, q)
	}
	if !p.DivisibleBy(y) {
		return fmt.Errorf("%v reported not divisible by %v", p, y)
	}
	unit := y.Abs().Eq(integer.FromInt64(1))
	if next := p.Add(integer.FromInt64(1)); next.DivisibleBy(y) != unit {
		return fmt.Errorf("%v divisible by %v = %t", next, y, !unit)
	}
	return nil
}

func checkDivRound(g *Gen) error {
	x, y, m := g.Integer(), g.NonZeroInteger(), g.Mode()
	q, o := x.DivRound(y, m)
	wq, wo := divRoundBig(x.ToBigInt(), y.ToBigInt(), m)
	if !sameInt(q, wq) || o != wo {
		return fmt.Errorf("%v / %v rounded %v = (%v, %v), want (%v, %v)", x, y, m, q, o, wq, wo)
	}
	_, _, ok := x.CheckedDivRound(y, rounding.Exact)
	if ok != x.DivisibleBy(y) {
		return fmt.Errorf("%v / %v exact ok=%t", x, y, ok)
	}
	return nil
}

func checkRoundMonotone(g *Gen) error {
	x1, x2, y := g.Integer(), g.Integer(), g.NonZeroInteger().Abs()
	if x1.Cmp(x2) > 0 {
		x1, x2 = x2, x1
	}
	m := g.Mode()
	q1, _ := x1.DivRound(y, m)
	q2, _ := x2.DivRound(y, m)
	if q1.Cmp(q2) > 0 {
		return fmt.Errorf("%v <= %v but rounded %v quotients by %v are %v > %v", x1, x2, m, y, q1, q2)
	}
	floor, _ := x1.DivRound(y, rounding.Floor)
	near, _ := x1.DivRound(y, rounding.Nearest)
	ceil, _ := x1.DivRound(y, rounding.Ceiling)
	if floor.Cmp(near) > 0 || near.Cmp(ceil) > 0 {
		return fmt.Errorf("%v / %v: floor %v, nearest %v, ceiling %v out of order", x1, y, floor, near, ceil)
	}
	return nil
}

func checkShift(g *Gen) error {
	x, k, m := g.Integer(), g.Shift(), g.Mode()
	bx := x.ToBigInt()
	if got := x.Shl(k); !sameInt(got, new(big.Int).Lsh(bx, uint(k))) {
		return fmt.Errorf("%v << %d = %v", x, k, got)
	}
	if got := x.Shr(k); !sameInt(got, new(big.Int).Rsh(bx, uint(k))) {
		return fmt.Errorf("%v >> %d = %v", x, k, got)
	}
	q, o := x.ShrRound(k, m)
	wq, wo := divRoundBig(bx, new(big.Int).Lsh(big.NewInt(1), uint(k)), m)
	if !sameInt(q, wq) || o != wo {
		return fmt.Errorf("%v >> %d rounded %v = (%v, %v), want (%v, %v)", x, k, m, q, o, wq, wo)
	}
	return nil
}

func checkRoundMultiple(g *Gen) error {
	x, y, m := g.Integer(), g.NonZeroInteger(), g.Mode()
	ay := new(big.Int).Abs(y.ToBigInt())
	got, o := x.RoundToMultiple(y, m)
	wq, wo := divRoundBig(x.ToBigInt(), ay, m)
	if want := wq.Mul(wq, ay); !sameInt(got, want) || o != wo {
		return fmt.Errorf("%v to multiple of %v rounded %v = (%v, %v), want (%v, %v)", x, y, m, got, o, want, wo)
	}
	k := g.Uint64N(2*limb.Width + 1)
	pow := new(big.Int).Lsh(big.NewInt(1), uint(k))
	got, o = x.RoundToMultipleOfPowerOf2(k, m)
	wq, wo = divRoundBig(x.ToBigInt(), pow, m)
	if want := wq.Mul(wq, pow); !sameInt(got, want) || o != wo {
		return fmt.Errorf("%v to multiple of 2^%d rounded %v = (%v, %v), want (%v, %v)", x, k, m, got, o, want, wo)
	}
	return nil
}

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

func checkDigits(g *Gen) error {
	x := g.Natural()
	base := 2 + g.Uint64N(1<<32-2)
	if g.Bool() {
		base = 2 + g.Uint64N(35)
	}
	ds := natural.ToDigitsAsc(x, base)
	if n := len(ds); n > 0 && ds[n-1] == 0 {
		return fmt.Errorf("digits of %v in base %d end with zero", x, base)
	}
	for _, d := range ds {
		if d >= base {
			return fmt.Errorf("digit %d of %v is not below base %d", d, x, base)
		}
	}
	back, ok := natural.FromDigitsAsc(base, ds)
	if !ok || !back.Eq(x) {
		return fmt.Errorf("digits of %v in base %d decode to %v", x, base, back)
	}
	if base <= 36 && !x.IsZero() {
		var sb strings.Builder
		for _, d := range natural.ToDigitsDesc(x, base) {
			sb.WriteByte(digitChars[d])
		}
		if want := x.ToBigInt().Text(int(base)); sb.String() != want {
			return fmt.Errorf("base %d digits of %v spell %s, want %s", base, x, sb.String(), want)
		}
	}
	logBase := 1 + g.Uint64N(64)
	pds := natural.ToPowerOf2DigitsAsc[uint64](x, logBase)
	if back, ok := natural.FromPowerOf2DigitsAsc(logBase, pds); !ok || !back.Eq(x) {
		return fmt.Errorf("base 2^%d digits of %v decode to %v", logBase, x, back)
	}
	return nil
}

func checkLogic(g *Gen) error {
	x, y := g.Integer(), g.Integer()
	bx, by := x.ToBigInt(), y.ToBigInt()
	for _, c := range []struct {
		name string
		got  *integer.Integer
		want *big.Int
	}{
		{"and", x.And(y), new(big.Int).And(bx, by)},
		{"or", x.Or(y), new(big.Int).Or(bx, by)},
		{"xor", x.Xor(y), new(big.Int).Xor(bx, by)},
		{"andnot", x.AndNot(y), new(big.Int).AndNot(bx, by)},
		{"not", x.Not(), new(big.Int).Not(bx)},
	} {
		if !sameInt(c.got, c.want) {
			return fmt.Errorf("%s(%v, %v) = %v, want %v", c.name, x, y, c.got, c.want)
		}
	}
	return nil
}

func checkBits(g *Gen) error {
	x := g.Integer()
	bx := x.ToBigInt()
	i := g.Shift()
	if x.GetBit(i) != (bx.Bit(int(i)) == 1) {
		return fmt.Errorf("bit %d of %v = %t", i, x, x.GetBit(i))
	}
	start := g.Shift()
	end := start + g.Uint64N(2*limb.Width+1)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(end-start))
	mask.Sub(mask, big.NewInt(1))
	want := new(big.Int).Rsh(bx, uint(start))
	want.And(want, mask)
	if got := x.GetBits(start, end); !sameNat(got, want) {
		return fmt.Errorf("bits [%d, %d) of %v = %v, want %v", start, end, x, got, want)
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(end))
	if got := x.ModPowerOf2(end); !sameNat(got, new(big.Int).Mod(bx, mod)) {
		return fmt.Errorf("%v mod 2^%d = %v", x, end, got)
	}
	if back := integer.FromTwosComplementLimbsAsc(x.TwosComplementLimbsAsc()); !back.Eq(x) {
		return fmt.Errorf("two's-complement limbs of %v decode to %v", x, back)
	}
	n := x.UnsignedAbs()
	if got, want := n.SignificantBits(), uint64(bx.BitLen()); got != want {
		return fmt.Errorf("significant bits of %v = %d, want %d", n, got, want)
	}
	if got, ones := n.CountOnes(), onesOf(n.ToBigInt()); got != ones {
		return fmt.Errorf("ones of %v = %d, want %d", n, got, ones)
	}
	return nil
}

func checkEqMod(g *Gen) error {
	x, k := g.Integer(), g.Shift()
	y := g.Integer()
	if g.Bool() {
		// Force a congruent pair.
		y = x.Add(y.Shl(k))
	}
	diff := new(big.Int).Sub(x.ToBigInt(), y.ToBigInt())
	want := diff.Sign() == 0 || uint64(diff.TrailingZeroBits()) >= k
	if got := x.EqModPowerOf2(y, k); got != want {
		return fmt.Errorf("%v == %v mod 2^%d = %t, want %t", x, y, k, got, want)
	}
	m := g.Integer()
	wantMod := diff.Sign() == 0
	if m.Sign() != 0 {
		wantMod = new(big.Int).Rem(diff, m.ToBigInt()).Sign() == 0
	}
	if got := x.EqMod(y, m); got != wantMod {
		return fmt.Errorf("%v == %v mod %v = %t, want %t", x, y, m, got, wantMod)
	}
	return nil
}

// onesOf counts the set bits of a non-negative big.Int.
func onesOf(b *big.Int) uint64 {
	var n uint64
	for _, w := range b.Bits() {
		n += uint64(bits.OnesCount(uint(w)))
	}
	return n
}

func checkHamming(g *Gen) error {
	x, y := g.Integer(), g.Integer()
	d, ok := x.CheckedHammingDistance(y)
	if ok != (x.IsNegative() == y.IsNegative()) {
		return fmt.Errorf("hamming(%v, %v) ok=%t", x, y, ok)
	}
	if !ok {
		return nil
	}
	if want := onesOf(new(big.Int).Xor(x.ToBigInt(), y.ToBigInt())); d != want {
		return fmt.Errorf("hamming(%v, %v) = %d, want %d", x, y, d, want)
	}
	z := integer.FromSignAndAbs(x.IsNegative(), g.PositiveNatural())
	dxz, _ := x.CheckedHammingDistance(z)
	dyz, _ := y.CheckedHammingDistance(z)
	if dxz > d+dyz {
		return fmt.Errorf("hamming(%v, %v) = %d exceeds %d + %d through %v", x, z, dxz, d, dyz, y)
	}
	return nil
}

func checkRotate(g *Gen) error {
	v := g.rng.Uint64()
	s := g.Uint64N(3 * 64)
	if got := limb.RotateRight(limb.RotateLeft(v, s), s); got != v {
		return fmt.Errorf("rotate %#x left then right by %d = %#x", v, s, got)
	}
	if got, want := limb.RotateLeft(v, s), bits.RotateLeft64(v, int(s%64)); got != want {
		return fmt.Errorf("rotate %#x left by %d = %#x, want %#x", v, s, got, want)
	}
	w := uint32(v)
	if got, want := limb.RotateRight(w, s), bits.RotateLeft32(w, -int(s%32)); got != want {
		return fmt.Errorf("rotate %#x right by %d = %#x, want %#x", w, s, got, want)
	}
	return nil
}

func limbBig(v limb.Limb) *big.Int { return new(big.Int).SetUint64(uint64(v)) }

func checkLimbDivision(g *Gen) error {
	y := g.limbValue()
	if y == 0 {
		y = 1
	}
	x1, x0 := g.limbValue()%y, g.limbValue()
	x := new(big.Int).Lsh(limbBig(x1), limb.Width)
	x.Or(x, limbBig(x0))
	wq, wr := new(big.Int).QuoRem(x, limbBig(y), new(big.Int))
	q, r := limb.XXDivModYIsQR(x1, x0, y)
	if !sameBigLimb(q, wq) || !sameBigLimb(r, wr) {
		return fmt.Errorf("[%#x %#x] / %#x = (%#x, %#x), want (%v, %v)", x1, x0, y, q, r, wq, wr)
	}
	d := y | limb.HighBit
	hi := x1 % d
	pq, pr := limb.DivModByPreinversion(hi, x0, d, limb.Invert(d))
	if eq, er := limb.XXDivModYIsQR(hi, x0, d); pq != eq || pr != er {
		return fmt.Errorf("preinverted [%#x %#x] / %#x = (%#x, %#x), want (%#x, %#x)", hi, x0, d, pq, pr, eq, er)
	}
	return nil
}

func sameBigLimb(v limb.Limb, b *big.Int) bool { return limbBig(v).Cmp(b) == 0 }

func checkFloat(g *Gen) error {
	x := g.Integer()
	exact := new(big.Float).SetInt(x.ToBigInt())
	lo, olo := x.RoundingToFloat64(rounding.Floor)
	hi, ohi := x.RoundingToFloat64(rounding.Ceiling)
	if big.NewFloat(lo).Cmp(exact) > 0 || big.NewFloat(hi).Cmp(exact) < 0 {
		return fmt.Errorf("%v is not within [%g, %g]", x, lo, hi)
	}
	if olo != rounding.Ordering(big.NewFloat(lo).Cmp(exact)) || ohi != rounding.Ordering(big.NewFloat(hi).Cmp(exact)) {
		return fmt.Errorf("%v float orderings %v, %v disagree with values %g, %g", x, olo, ohi, lo, hi)
	}
	near, _ := x.RoundingToFloat64(rounding.Nearest)
	if math.IsInf(near, 0) {
		return nil
	}
	back, ok := integer.CheckedFromFloat64(near)
	if !ok {
		return fmt.Errorf("float %g from %v is not an integer", near, x)
	}
	if want, _ := big.NewFloat(near).Int(nil); !sameInt(back, want) {
		return fmt.Errorf("float %g converts to %v, want %v", near, back, want)
	}
	return nil
}

func checkConvert(g *Gen) error {
	x := g.Integer()
	bx := x.ToBigInt()
	v, ok := integer.CheckedTo[int64](x)
	if ok != bx.IsInt64() || ok && v != bx.Int64() {
		return fmt.Errorf("%v to int64 = (%d, %t)", x, v, ok)
	}
	low := new(big.Int).And(bx, new(big.Int).SetUint64(math.MaxUint64))
	if got := integer.WrappingTo[uint64](x); got != low.Uint64() {
		return fmt.Errorf("%v wrapped to uint64 = %d, want %d", x, got, low.Uint64())
	}
	want := int32(math.MaxInt32)
	switch {
	case bx.Cmp(big.NewInt(math.MinInt32)) < 0:
		want = math.MinInt32
	case bx.Cmp(big.NewInt(math.MaxInt32)) <= 0:
		want = int32(bx.Int64())
	}
	if got := integer.SaturatingTo[int32](x); got != want {
		return fmt.Errorf("%v saturated to int32 = %d, want %d", x, got, want)
	}
	return nil
}

func checkModular(g *Gen) error {
	m := g.PositiveNatural()
	x, y := g.Natural().Mod(m), g.Natural().Mod(m)
	bx, by, bm := x.ToBigInt(), y.ToBigInt(), m.ToBigInt()
	mod := func(b *big.Int) *big.Int { return b.Mod(b, bm) }

	if got, want := x.ModAdd(y, m), mod(new(big.Int).Add(bx, by)); !sameNat(got, want) {
		return fmt.Errorf("%v + %v mod %v = %v, want %v", x, y, m, got, want)
	}
	if got, want := x.ModSub(y, m), mod(new(big.Int).Sub(bx, by)); !sameNat(got, want) {
		return fmt.Errorf("%v - %v mod %v = %v, want %v", x, y, m, got, want)
	}
	if got, want := x.ModMul(y, m), mod(new(big.Int).Mul(bx, by)); !sameNat(got, want) {
		return fmt.Errorf("%v * %v mod %v = %v, want %v", x, y, m, got, want)
	}
	// Exponents stay short so that a sample costs a few hundred products.
	e := g.NaturalBits(g.Uint64N(257))
	if got, want := x.ModPow(e, m), new(big.Int).Exp(bx, e.ToBigInt(), bm); !sameNat(got, want) {
		return fmt.Errorf("%v ^ %v mod %v = %v, want %v", x, e, m, got, want)
	}
	k := g.Shift()
	shifted := mod(new(big.Int).Lsh(bx, uint(k)))
	if got := x.ModShl(k, m); !sameNat(got, shifted) {
		return fmt.Errorf("%v << %d mod %v = %v, want %v", x, k, m, got, shifted)
	}

	x2, y2 := g.Natural().ModPowerOf2(k), g.Natural().ModPowerOf2(k)
	p2 := new(big.Int).Lsh(big.NewInt(1), uint(k))
	sum := new(big.Int).Add(x2.ToBigInt(), y2.ToBigInt())
	if got := x2.ModPowerOf2Add(y2, k); !sameNat(got, sum.Mod(sum, p2)) {
		return fmt.Errorf("%v + %v mod 2^%d = %v, want %v", x2, y2, k, got, sum)
	}
	diff := new(big.Int).Sub(x2.ToBigInt(), y2.ToBigInt())
	if got := x2.ModPowerOf2Sub(y2, k); !sameNat(got, diff.Mod(diff, p2)) {
		return fmt.Errorf("%v - %v mod 2^%d = %v, want %v", x2, y2, k, got, diff)
	}
	return nil
}

func checkGcd(g *Gen) error {
	x, y := g.Natural(), g.Natural()
	if g.Bool() {
		// Share a factor so the gcd is rarely 1.
		c := g.PositiveNatural()
		x, y = x.Mul(c), y.Mul(c)
	}
	bx, by := x.ToBigInt(), y.ToBigInt()
	want := new(big.Int).GCD(nil, nil, bx, by)
	if got := x.Gcd(y); !sameNat(got, want) {
		return fmt.Errorf("gcd(%v, %v) = %v, want %v", x, y, got, want)
	}
	if !x.Gcd(y).Mul(x.Lcm(y)).Eq(x.Mul(y)) {
		return fmt.Errorf("gcd(%v, %v) * lcm = %v, want the product", x, y, x.Lcm(y))
	}
	gcd, s, t := integer.ExtendedGcd(x, y)
	if !sameNat(gcd, want) {
		return fmt.Errorf("extended gcd(%v, %v) = %v, want %v", x, y, gcd, want)
	}
	lhs := new(big.Int).Mul(bx, s.ToBigInt())
	lhs.Add(lhs, new(big.Int).Mul(by, t.ToBigInt()))
	if lhs.Cmp(want) != 0 {
		return fmt.Errorf("%v*%v + %v*%v = %v, want %v", x, s, y, t, lhs, want)
	}
	if want.Sign() != 0 {
		sb := new(big.Int).Quo(by, want)
		tb := new(big.Int).Quo(bx, want)
		if new(big.Int).Abs(s.ToBigInt()).Cmp(maxBig(sb, big.NewInt(1))) > 0 ||
			new(big.Int).Abs(t.ToBigInt()).Cmp(maxBig(tb, big.NewInt(1))) > 0 {
			return fmt.Errorf("coefficients (%v, %v) of gcd(%v, %v) are not minimal", s, t, x, y)
		}
	}
	return nil
}

func maxBig(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func checkRoot(g *Gen) error {
	x := g.Natural()
	bx := x.ToBigInt()
	r, rem := x.SqrtRem()
	if want := new(big.Int).Sqrt(bx); !sameNat(r, want) {
		return fmt.Errorf("sqrt(%v) = %v, want %v", x, r, want)
	}
	if !r.Square().Add(rem).Eq(x) {
		return fmt.Errorf("sqrt(%v)^2 + %v != x", x, rem)
	}
	n := 1 + g.Uint64N(16)
	root := x.FloorRoot(n)
	lo := new(big.Int).Exp(root.ToBigInt(), new(big.Int).SetUint64(n), nil)
	hi := new(big.Int).Exp(root.AddLimb(1).ToBigInt(), new(big.Int).SetUint64(n), nil)
	if lo.Cmp(bx) > 0 || hi.Cmp(bx) <= 0 {
		return fmt.Errorf("floor %d-th root of %v = %v", n, x, root)
	}
	if exact, ok := root.Pow(n).CheckedRoot(n); !ok || !exact.Eq(root) {
		return fmt.Errorf("%v^%d is not reported as a perfect power", root, n)
	}
	return nil
}
