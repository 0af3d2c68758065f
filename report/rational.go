package report

import (
	"math/big"
	"strconv"
)

// MaxDenominator bounds the denominators printed by Rational.
const MaxDenominator = 1000000

// Rational formats v as the closest fraction with a denominator of at
// most MaxDenominator, e.g. "1/3" for 0.333333333.
func Rational(v float64) string {
	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return LimitDenominator(r, MaxDenominator).RatString()
}

// LimitDenominator returns the fraction closest to r whose denominator
// does not exceed max, using the continued fraction expansion of r.
func LimitDenominator(r *big.Rat, max int64) *big.Rat {
	limit := big.NewInt(max)
	if r.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(r)
	}

	neg := r.Sign() < 0
	n := new(big.Int).Abs(r.Num())
	d := new(big.Int).Set(r.Denom())

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	a, q2, tmp := new(big.Int), new(big.Int), new(big.Int)
	for d.Sign() != 0 {
		a.Quo(n, d)
		q2.Mul(a, q1).Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}
		// p0, q0, p1, q1 = p1, q1, p0+a*p1, q2
		tmp.Mul(a, p1).Add(tmp, p0)
		p0.Set(p1)
		q0.Set(q1)
		p1.Set(tmp)
		q1.Set(q2)
		// n, d = d, n-a*d
		tmp.Mul(a, d)
		n.Sub(n, tmp)
		n, d = d, n
	}

	// k = (max-q0)/q1
	k := new(big.Int).Sub(limit, q0)
	k.Quo(k, q1)
	lower := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	upper := new(big.Rat).SetFrac(p1, q1)

	abs := new(big.Rat).Abs(r)
	dl := new(big.Rat).Sub(lower, abs)
	du := new(big.Rat).Sub(upper, abs)
	best := lower
	if du.Abs(du).Cmp(dl.Abs(dl)) <= 0 {
		best = upper
	}
	if neg {
		best.Neg(best)
	}
	return best
}
