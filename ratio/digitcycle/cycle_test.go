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

package digitcycle

import "testing"

func TestFindKnownCycle(t *testing.T) {
	// x mod 7, times 10: orbit of 1/7 = 0.(142857), period 6, no tail.
	f := func(x int) int { return (x * 10) % 7 }
	mu, lambda := Find(1, f)
	if mu != 0 || lambda != 6 {
		t.Errorf("Find(1, mod7) = (%d, %d), want (0, 6)", mu, lambda)
	}
}

func TestFindWithTail(t *testing.T) {
	// 1/6 = 0.1(6): mu = 1, lambda = 1.
	f := func(x int) int { return (x * 10) % 6 }
	mu, lambda := Find(1, f)
	if mu != 1 || lambda != 1 {
		t.Errorf("Find(1, mod6) = (%d, %d), want (1, 1)", mu, lambda)
	}
}

func TestFindImmediateFixedPoint(t *testing.T) {
	f := func(x int) int { return x }
	mu, lambda := Find(0, f)
	if mu != 0 || lambda != 1 {
		t.Errorf("Find(0, id) = (%d, %d), want (0, 1)", mu, lambda)
	}
}

func TestFindMinimality(t *testing.T) {
	// Orbit: 0 -> 1 -> 2 -> 1 -> 2 -> ... mu should be 1 (not 3 or any
	// larger value that would also satisfy the periodicity equation).
	next := map[int]int{0: 1, 1: 2, 2: 1}
	f := func(x int) int { return next[x] }
	mu, lambda := Find(0, f)
	if mu != 1 || lambda != 2 {
		t.Errorf("Find(0, ...) = (%d, %d), want (1, 2)", mu, lambda)
	}
	// Verify the returned pair actually satisfies the periodicity property.
	x := 0
	orbit := []int{x}
	for i := 0; i < mu+2*lambda; i++ {
		x = f(x)
		orbit = append(orbit, x)
	}
	for i := 0; i < lambda; i++ {
		if orbit[mu+i] != orbit[mu+lambda+i] {
			t.Errorf("periodicity violated at i=%d", i)
		}
	}
}
