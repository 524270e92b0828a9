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

package sieve

import (
	"iter"
	"math/bits"
)

// Basic returns the primes in increasing order.
//
// Unlike the other sieves, Basic registers a prime only once the scan
// reaches its square. The primes below that frontier are read from an inner
// Basic sequence through a pull cursor. The inner sequence starts only when
// the scan reaches 9, so the nesting depth grows as log log n.
func Basic() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if !yield(2) || !yield(3) {
			return
		}
		next, stop := iter.Pull(Basic())
		defer stop()
		next() // Skip 2: even numbers are never scanned.
		frontier, _ := next()
		sq := square(frontier)
		reg := registry{}
		for q := uint64(5); ; {
			if p, ok := reg[q]; ok {
				delete(reg, q)
				reg.advance(mod2, q, p)
			} else if q < sq {
				if !yield(q) {
					return
				}
			} else {
				// q is the square of the frontier prime.
				reg.advance(mod2, q, frontier)
				frontier, _ = next()
				sq = square(frontier)
			}
			var carry uint64
			if q, carry = bits.Add64(q, 2, 0); carry != 0 {
				return
			}
		}
	}
}
