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
	"regexp"
	"strings"
)

// decimalPattern mirrors (sign? digits ('.' digits? group?)?) with
// group := '(' digits '.'* ')'. The INT capture keeps its own optional
// leading '-' (rather than forbidding it) so that a doubled sign such as
// "+-0" is accepted by the grammar but rejected one step later, when the
// captured integer text is found to contain a sign character where only
// magnitude digits are allowed.
var decimalPattern = regexp.MustCompile(
	`^(?P<SIGN>[+-])?(?P<INT>-?[0-9]+)(?:\.(?P<ONCE>[0-9]+)?(?P<REP>\([0-9]+\.*\))?)?$`,
)

var decimalSubexpIndex = func() map[string]int {
	m := make(map[string]int)
	for i, name := range decimalPattern.SubexpNames() {
		if name != "" {
			m[name] = i
		}
	}
	return m
}()

// Parse parses s under the decimal grammar:
//
//	decimal := sign? digits ('.' digits? group?)?
//	group   := '(' digits '.'* ')'
//	sign    := '+' | '-'
//	digits  := [0-9]+
//
// and returns its normalized DecimalTuple. Parse failure (empty string,
// whitespace, two decimal points, doubled parentheses, a trailing "..."
// without parens, or any extraneous character) yields a *ParseError with
// Kind == MatchFailed. A grammatically valid integer part that embeds an
// extra sign character (such as the second "-" in "+-0") yields Kind ==
// BigIntError.
func Parse(s string) (DecimalTuple, error) {
	m := decimalPattern.FindStringSubmatch(s)
	if m == nil {
		return DecimalTuple{}, &ParseError{Kind: MatchFailed, s: s}
	}

	negSign := m[decimalSubexpIndex["SIGN"]] == "-"
	intStr := m[decimalSubexpIndex["INT"]]
	if strings.Contains(intStr, "-") {
		return DecimalTuple{}, &ParseError{Kind: BigIntError, s: s}
	}
	intVal, ok := new(big.Int).SetString(intStr, 10)
	if !ok {
		return DecimalTuple{}, &ParseError{Kind: BigIntError, s: s}
	}

	once := filterDigits(m[decimalSubexpIndex["ONCE"]])
	rep := filterDigits(m[decimalSubexpIndex["REP"]])

	sign := Positive
	if negSign {
		sign = Negative
	}
	return New(sign, intVal, once, rep), nil
}

// filterDigits extracts the ASCII-digit bytes of s as 0-9 values,
// discarding any surrounding punctuation (parentheses, trailing dots).
func filterDigits(s string) []uint8 {
	if s == "" {
		return nil
	}
	out := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			out = append(out, c-'0')
		}
	}
	return out
}
