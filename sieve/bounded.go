// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sieve generates prime numbers by crossing off composites.
//
// Bounded computes every prime up to a fixed bound in one pass. The other
// sieves return unbounded sequences computed on demand: each range over a
// sequence owns a private registry of pending composites, so sequences can be
// consumed independently of each other.
package sieve

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Bounded returns all the primes p such that 2 <= p <= n in increasing order.
// It returns an empty slice if n < 2.
//
// Bounded allocates a table of n+1 entries: n must fit in memory.
// Bounded panics if n+1 overflows an int.
func Bounded[T constraints.Integer](n T) []T {
	if n < 2 {
		return nil
	}
	if uint64(n) >= math.MaxInt {
		panic(fmt.Sprintf("sieve.Bounded: cannot allocate a table for bound %d", n))
	}
	size := int(n) + 1
	composite := make([]bool, size)
	for i := 2; i*i < size; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j < size; j += i {
			composite[j] = true
		}
	}
	var primes []T
	for i := 2; i < size; i++ {
		if !composite[i] {
			primes = append(primes, T(i))
		}
	}
	return primes
}
