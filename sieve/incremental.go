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
	"math"
	"math/bits"
)

// wheel describes the candidates scanned by an incremental sieve.
// The base primes are yielded first. Candidates then start at first and
// advance by each spoke in turn; every candidate is coprime with mod, the
// product of the base primes.
type wheel struct {
	base    []uint64
	first   uint64
	spokes  []uint64
	mod     uint64
	coprime []bool
}

func newWheel(base, spokes []uint64) *wheel {
	w := &wheel{base: base, spokes: spokes, mod: 1}
	for _, p := range base {
		w.mod *= p
	}
	w.coprime = make([]bool, w.mod)
	for r := range w.mod {
		w.coprime[r] = true
		for _, p := range base {
			if r%p == 0 {
				w.coprime[r] = false
				break
			}
		}
	}
	for r := uint64(2); ; r++ {
		if w.coprime[r%w.mod] {
			w.first = r
			break
		}
	}
	return w
}

var (
	// mod2 only scans odd numbers.
	mod2 = newWheel([]uint64{2}, []uint64{2})

	// mod30 is the Croft spiral: residues 1, 7, 11, 13, 17, 19, 23, 29 mod 30.
	mod30 = newWheel([]uint64{2, 3, 5}, []uint64{4, 2, 4, 2, 4, 6, 2, 6})

	mod210 = newWheel([]uint64{2, 3, 5, 7}, []uint64{
		2, 4, 2, 4, 6, 2, 6, 4, 2, 4, 6, 6, 2, 6, 4, 2,
		6, 4, 6, 8, 4, 2, 4, 2, 4, 8, 6, 4, 6, 2, 4, 6,
		2, 6, 6, 4, 2, 4, 6, 2, 6, 4, 2, 4, 2, 10, 2, 10,
	})
)

// registry maps the next multiple to cross off to the prime responsible
// for it.
type registry map[uint64]uint64

// square returns p*p or math.MaxUint64 if the square does not fit.
func square(p uint64) uint64 {
	if p > math.MaxUint32 {
		return math.MaxUint64
	}
	return p * p
}

// seed defers crossing off the multiples of a new prime until the scan
// reaches its square.
func (r registry) seed(p uint64) {
	if p > math.MaxUint32 {
		// The square is never scanned.
		return
	}
	r[p*p] = p
}

// advance moves the marker of p from q to the next multiple of p which is
// not already registered and which the wheel scans.
// The marker is dropped if that multiple overflows.
func (r registry) advance(w *wheel, q, p uint64) {
	step := 2 * p
	for x := q; ; {
		var carry uint64
		if x, carry = bits.Add64(x, step, 0); carry != 0 {
			return
		}
		if _, taken := r[x]; taken || !w.coprime[x%w.mod] {
			continue
		}
		r[x] = p
		return
	}
}

// primes returns the sequence of primes generated by the wheel.
// A candidate missing from the registry is prime: its square is registered
// right away since any smaller composite has a smaller prime factor already
// scanned.
func (w *wheel) primes() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, p := range w.base {
			if !yield(p) {
				return
			}
		}
		reg := registry{}
		q := w.first
		for spoke := 0; ; spoke = (spoke + 1) % len(w.spokes) {
			if p, ok := reg[q]; ok {
				delete(reg, q)
				reg.advance(w, q, p)
			} else {
				if !yield(q) {
					return
				}
				reg.seed(q)
			}
			var carry uint64
			if q, carry = bits.Add64(q, w.spokes[spoke], 0); carry != 0 {
				return
			}
		}
	}
}

// Cookbook returns the primes in increasing order.
// Only odd numbers are scanned after 2.
func Cookbook() iter.Seq[uint64] {
	return mod2.primes()
}

// Croft returns the primes in increasing order using the Croft spiral, a
// wheel modulo 30. After 2, 3 and 5, only numbers coprime with 30 are
// scanned.
func Croft() iter.Seq[uint64] {
	return mod30.primes()
}

// Wheel210 returns the primes in increasing order using a wheel modulo 210.
// After 2, 3, 5 and 7, only numbers coprime with 210 are scanned.
func Wheel210() iter.Seq[uint64] {
	return mod210.primes()
}

// Default returns the sieve recommended for general use.
func Default() iter.Seq[uint64] {
	return Croft()
}
