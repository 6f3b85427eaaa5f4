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
	"strings"
)

// Sign is the sign of a DecimalTuple's numeric value.
type Sign int

const (
	// Negative means the value is strictly less than zero.
	Negative Sign = -1
	// Zero means the value is exactly zero. Zero has a single canonical
	// representation: Sign == Zero, Int == 0, FracOnce and FracRep empty.
	Zero Sign = 0
	// Positive means the value is strictly greater than zero.
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Positive:
		return "+"
	default:
		return ""
	}
}

// DecimalTuple is a canonical repeating-decimal value: Sign, an
// arbitrary-precision integer part, a non-repeating fractional tail
// (FracOnce), and a repeating block (FracRep, empty for terminating
// decimals). Every DecimalTuple produced by this package satisfies:
//
//   - Sign == Zero iff the numeric value is zero, and in that case Int is
//     0 and both digit slices are empty.
//   - FracRep is never []uint8{0}; an all-zero repeating block is
//     collapsed to "terminating" (FracRep == nil).
//   - (FracOnce, FracRep) is the lexicographically minimal such pair: the
//     cycle's mu is minimal, and lambda is minimal given mu.
//
// The zero value of DecimalTuple is the canonical representation of 0.
type DecimalTuple struct {
	Sign     Sign
	Int      *big.Int
	FracOnce []uint8
	FracRep  []uint8
}

var ten = big.NewInt(10)

func zeroTuple() DecimalTuple {
	return DecimalTuple{Sign: Zero, Int: new(big.Int)}
}

// New builds the canonical DecimalTuple for sign*(intPart + 0.fracOnce +
// 0.[fracOnce-width zeros]fracRep-repeating). The inputs need not already
// be normalized: New always routes through the exact rational value and
// re-derives the canonical digit sequences, so "0.1(1)" and "0.(11)"
// (both sign Positive, intPart 0) normalize to the same result.
func New(sign Sign, intPart *big.Int, fracOnce, fracRep []uint8) DecimalTuple {
	return FromRational(toRational(sign, intPart, fracOnce, fracRep))
}

// IsInteger reports whether d has no fractional part.
func (d DecimalTuple) IsInteger() bool {
	return len(d.FracOnce) == 0 && len(d.FracRep) == 0
}

// IsRepetitive reports whether d has a non-empty repeating block.
func (d DecimalTuple) IsRepetitive() bool {
	return len(d.FracRep) != 0
}

// String renders the canonical form "[-]int[.fracOnce[(fracRep...)]]",
// omitting the decimal point entirely when both fractional sequences are
// empty, and wrapping the repeating block in parentheses with a
// trailing ellipsis.
func (d DecimalTuple) String() string {
	var b strings.Builder
	if d.Sign == Negative {
		b.WriteByte('-')
	}
	intVal := d.Int
	if intVal == nil {
		intVal = new(big.Int)
	}
	b.WriteString(intVal.String())
	if len(d.FracOnce) == 0 && len(d.FracRep) == 0 {
		return b.String()
	}
	b.WriteByte('.')
	writeDigits(&b, d.FracOnce)
	if len(d.FracRep) != 0 {
		b.WriteByte('(')
		writeDigits(&b, d.FracRep)
		b.WriteString("...)")
	}
	return b.String()
}

func writeDigits(b *strings.Builder, digits []uint8) {
	for _, dg := range digits {
		b.WriteByte('0' + dg)
	}
}
