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

import "math/big"

var zeroBigInt = new(big.Int)

// dot is the sentinel stream element standing in for the decimal point.
// It is disjoint from the digit range 0-9, so it can never be confused
// with a real digit when two streams are compared.
const dot uint8 = '.'

// LCPLen returns the length of the longest common prefix between d and
// other when both are rendered as a digit stream (sign is not part of
// the stream; see below), or ok == false if the two values are exactly
// equal (no divergence point exists).
//
//   - If signs differ, returns (0, true).
//   - If the integer parts have different digit counts (after the
//     implicit leading-zero stripping that *big.Int already performs),
//     returns (0, true).
//   - Otherwise the two values are compared as the streaming sequence
//     int-digits . '.' . frac-once . frac-rep-repeated . zeros, truncated
//     at twice the longer side's formatted length; the zero-based index
//     of the first difference is returned.
//   - When both sides are negative, 1 is added to the result to account
//     for the shared leading '-' that the stream itself does not model.
func (d DecimalTuple) LCPLen(other DecimalTuple) (int, bool) {
	if d.Sign != other.Sign {
		return 0, true
	}

	intL, intR := d.intOrZero(), other.intOrZero()
	sL, sR := intL.String(), intR.String()

	var idx int
	var ok bool
	switch {
	case len(sL) != len(sR):
		idx, ok = 0, true
	case intL.Cmp(intR) != 0:
		idx, ok = diffIndexASCII(sL, sR)
	default:
		lenL := len(sL) + 1 + len(d.FracOnce) + len(d.FracRep)
		lenR := len(sR) + 1 + len(other.FracOnce) + len(other.FracRep)
		bound := 2 * maxInt(lenL, lenR)
		left := streamDigits(sL, d.FracOnce, d.FracRep, bound)
		right := streamDigits(sR, other.FracOnce, other.FracRep, bound)
		idx, ok = diffIndex(left, right)
	}

	if ok && d.Sign == Negative {
		idx++
	}
	return idx, ok
}

func (d DecimalTuple) intOrZero() *big.Int {
	if d.Int == nil {
		return zeroBigInt
	}
	return d.Int
}

func diffIndexASCII(a, b string) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i, true
		}
	}
	return 0, false
}

func diffIndex(a, b []uint8) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i, true
		}
	}
	return 0, false
}

// streamDigits renders intStr's digits, a literal dot, fracOnce, then
// fracRep cycled forever (or, if fracRep is empty, zeros forever),
// truncated to bound elements.
func streamDigits(intStr string, fracOnce, fracRep []uint8, bound int) []uint8 {
	out := make([]uint8, 0, bound)
	for i := 0; i < len(intStr) && len(out) < bound; i++ {
		out = append(out, intStr[i]-'0')
	}
	if len(out) < bound {
		out = append(out, dot)
	}
	for _, dg := range fracOnce {
		if len(out) >= bound {
			break
		}
		out = append(out, dg)
	}
	if len(fracRep) > 0 {
		for i := 0; len(out) < bound; i++ {
			out = append(out, fracRep[i%len(fracRep)])
		}
	}
	for len(out) < bound {
		out = append(out, 0)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
