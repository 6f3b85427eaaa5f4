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

// Package digitcycle finds the (mu, lambda) decomposition of an
// eventually-periodic orbit x0, f(x0), f(f(x0)), ... using Floyd's
// tortoise-and-hare algorithm. It is split out of the main ratio package
// the way the teacher splits digit-level primitives into its own
// subpackage, since the orbit here ranges over long-division remainders
// rather than over DecimalTuple values themselves.
package digitcycle

// Find returns the lexicographically minimal (mu, lambda) such that, for
// the orbit x_i = f^i(x0), x_{mu+i} == x_{mu+lambda+i} for every i >= 0.
// f must be a pure function: calling it twice on equal inputs (by ==)
// must produce equal outputs.
//
// The algorithm: first locate any meeting point of a tortoise stepping by
// one and a hare stepping by two; then replay from x0 with both stepping
// by one to find the minimal mu; then hold the tortoise and step the hare
// alone to find the minimal lambda.
func Find[T comparable](x0 T, f func(T) T) (mu, lambda int) {
	tortoise := f(x0)
	hare := f(tortoise)
	for tortoise != hare {
		tortoise = f(tortoise)
		hare = f(f(hare))
	}

	tortoise = x0
	for tortoise != hare {
		tortoise = f(tortoise)
		hare = f(hare)
		mu++
	}

	lambda = 1
	hare = f(tortoise)
	for tortoise != hare {
		hare = f(hare)
		lambda++
	}

	return mu, lambda
}
