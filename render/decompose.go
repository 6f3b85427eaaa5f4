package render

import (
	"math/big"
	"strconv"

	"github.com/ratiorepl/ratiorepl/ratio"
)

// RelativeErrorDecomposition renders the "truth * (1 ± factor)" form
// described for the estimate frame's fourth line. a is the f64 value
// reinterpreted exactly as a rational; t is the truth rational. Callers
// must not invoke this when t is zero or a is non-finite.
func RelativeErrorDecomposition(a, t *big.Rat) string {
	abs := new(big.Rat).Sub(a, t)
	if abs.Sign() == 0 {
		return renderTruth(t)
	}

	rel := new(big.Rat).Quo(abs, t)
	sign := "+"
	if abs.Sign() < 0 {
		sign = "-"
	}
	if rel.Sign() < 0 {
		rel.Neg(rel)
	}

	numTZ := new(big.Int).Abs(rel.Num()).TrailingZeroBits()
	denTZ := rel.Denom().TrailingZeroBits()
	exp := int(numTZ) - int(denTZ)

	relPrime := new(big.Rat).Set(rel)
	if exp != 0 {
		scale := new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(absInt(exp))), nil)
		scaleRat := new(big.Rat).SetInt(scale)
		if exp > 0 {
			relPrime.Quo(rel, scaleRat)
		} else {
			relPrime.Mul(rel, scaleRat)
		}
	}

	truthStr := renderTruth(t)
	isOne := relPrime.Cmp(big.NewRat(1, 1)) == 0

	var factor string
	switch {
	case isOne && exp == 0:
		factor = "1"
	case isOne:
		factor = "2^" + strconv.Itoa(exp)
	case exp == 0:
		factor = relPrime.RatString()
	default:
		factor = relPrime.RatString() + " * 2^" + strconv.Itoa(exp)
	}

	return truthStr + " * (1 " + sign + " " + factor + ")"
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// renderTruth renders a truth rational as num/den when its DecimalTuple
// form is repetitive (where the fraction form is unambiguous), else as
// the DecimalTuple's canonical decimal rendering.
func renderTruth(t *big.Rat) string {
	d := ratio.FromRational(t)
	if d.IsRepetitive() {
		return t.RatString()
	}
	return d.String()
}
