package selfcheck

import (
	"math/big"

	"github.com/agbru/limbcalc/internal/integer"
	"github.com/agbru/limbcalc/internal/natural"
	"github.com/agbru/limbcalc/internal/rounding"
)

// divRoundBig rounds x / y by m using only math/big. y must be nonzero and m
// must not be Exact. The ordering compares the result with the exact
// quotient.
func divRoundBig(x, y *big.Int, m rounding.Mode) (*big.Int, rounding.Ordering) {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() == 0 {
		return q, rounding.Equal
	}
	// The exact quotient is q + f with 0 < |f| < 1 and f of sign s.
	s := int64(x.Sign() * y.Sign())
	away := false
	switch m {
	case rounding.Up:
		away = true
	case rounding.Floor:
		away = s < 0
	case rounding.Ceiling:
		away = s > 0
	case rounding.Nearest:
		twice := new(big.Int).Abs(r)
		twice.Lsh(twice, 1)
		switch twice.Cmp(new(big.Int).Abs(y)) {
		case 1:
			away = true
		case 0:
			away = q.Bit(0) == 1
		}
	}
	if !away {
		// q sits on the zero side of the exact quotient.
		if s > 0 {
			return q, rounding.Less
		}
		return q, rounding.Greater
	}
	q.Add(q, big.NewInt(s))
	if s > 0 {
		return q, rounding.Greater
	}
	return q, rounding.Less
}

// floorDivModBig returns the quotient rounded toward negative infinity and
// the remainder with the sign of y.
func floorDivModBig(x, y *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, y)
	}
	return q, r
}

// sameInt reports whether an Integer equals a big.Int.
func sameInt(x *integer.Integer, b *big.Int) bool { return x.ToBigInt().Cmp(b) == 0 }

// sameNat reports whether a Natural equals a big.Int.
func sameNat(x *natural.Natural, b *big.Int) bool { return x.ToBigInt().Cmp(b) == 0 }
