// Copyright 2024 The Ratiorepl Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package ratio

import (
	"math/big"

	"github.com/ratiorepl/ratiorepl/ratio/digitcycle"
)

// ToRational computes the exact *big.Rat value of d.
func (d DecimalTuple) ToRational() *big.Rat {
	return toRational(d.Sign, d.Int, d.FracOnce, d.FracRep)
}

// toRational implements the formula from the decimal data model:
//
//	r = int + frac_once/10^|frac_once| + frac_rep/((10^|frac_rep|-1)*10^|frac_once|)
//
// signed by sign. The frac_rep term is zero whenever frac_rep is empty
// (or all zero, which normalized input never produces but raw,
// not-yet-normalized input may).
func toRational(sign Sign, intPart *big.Int, fracOnce, fracRep []uint8) *big.Rat {
	if intPart == nil {
		intPart = new(big.Int)
	}
	result := new(big.Rat).SetInt(intPart)

	onceNum, onceLen := digitsToInt(fracOnce)
	onceDen := pow10(onceLen)
	if onceLen > 0 {
		result.Add(result, new(big.Rat).SetFrac(onceNum, onceDen))
	}

	repNum, repLen := digitsToInt(fracRep)
	if repLen > 0 && repNum.Sign() != 0 {
		repDenBase := new(big.Int).Sub(pow10(repLen), big.NewInt(1))
		repDen := new(big.Int).Mul(repDenBase, onceDen)
		result.Add(result, new(big.Rat).SetFrac(repNum, repDen))
	}

	if sign == Negative {
		result.Neg(result)
	}
	return result
}

// FromRational converts an exact rational to its canonical DecimalTuple,
// detecting the repeating block via digitcycle.Find over the sequence of
// remainders produced by long division.
func FromRational(r *big.Rat) DecimalTuple {
	switch r.Sign() {
	case 0:
		return zeroTuple()
	}

	sign := Positive
	mag := r
	if r.Sign() < 0 {
		sign = Negative
		mag = new(big.Rat).Neg(r)
	}

	num := mag.Num()
	den := mag.Denom()

	intPart := new(big.Int).Quo(num, den)
	fracNum := new(big.Int).Mod(num, den)

	mu, lambda := digitcycle.Find(fracNum.String(), func(s string) string {
		x, _ := new(big.Int).SetString(s, 10)
		x.Mul(x, ten)
		x.Mod(x, den)
		return x.String()
	})

	digits := make([]uint8, mu+lambda)
	x := new(big.Int).Set(fracNum)
	for i := 0; i < mu+lambda; i++ {
		scaled := new(big.Int).Mul(x, ten)
		digit := new(big.Int).Quo(scaled, den)
		digits[i] = uint8(digit.Int64())
		x = new(big.Int).Mod(scaled, den)
	}

	fracOnce := digits[:mu]
	fracRep := digits[mu : mu+lambda]
	if len(fracRep) == 1 && fracRep[0] == 0 {
		fracRep = nil
	}
	if len(fracOnce) == 0 {
		fracOnce = nil
	}

	return DecimalTuple{Sign: sign, Int: intPart, FracOnce: fracOnce, FracRep: fracRep}
}

// digitsToInt interprets digits as the decimal digits of a non-negative
// integer (most significant first) and returns that integer along with
// the digit count.
func digitsToInt(digits []uint8) (*big.Int, int) {
	n := new(big.Int)
	for _, dg := range digits {
		n.Mul(n, ten)
		n.Add(n, big.NewInt(int64(dg)))
	}
	return n, len(digits)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}
