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

// Package ratio implements exact conversion between arbitrary-precision
// rationals and a canonical repeating-decimal representation.
//
// A DecimalTuple separates a value into a sign, an integer part, a
// non-repeating fractional tail, and a repeating block. Conversion in
// either direction is exact: DecimalTuple -> *big.Rat never loses
// precision, and *big.Rat -> DecimalTuple always terminates because every
// rational's decimal expansion is eventually periodic.
package ratio
