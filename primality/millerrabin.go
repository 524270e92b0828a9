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

package primality

import (
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
)

// DeterministicLimit is the integer below which the Miller-Rabin test is exact.
const DeterministicLimit = 3_317_044_064_279_371

// deterministic lists, by increasing threshold, the smallest set of bases
// proven to make the test exact for all integers below the threshold.
var deterministic = []struct {
	below uint64
	bases []uint64
}{
	{below: 1_373_653, bases: []uint64{2, 3}},
	{below: 25_326_001, bases: []uint64{2, 3, 5}},
	{below: 3_215_031_751, bases: []uint64{2, 3, 5, 7}},
	{below: 2_152_302_898_747, bases: []uint64{2, 3, 5, 7, 11}},
	{below: 3_474_749_660_383, bases: []uint64{2, 3, 5, 7, 11, 13}},
	{below: 341_550_071_728_321, bases: []uint64{2, 3, 5, 7, 11, 13, 17}},
	{below: DeterministicLimit, bases: []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}},
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
	six = big.NewInt(6)
)

// Classify runs the Miller-Rabin test on n.
//
// Integers below DeterministicLimit are tested with a fixed set of bases and
// are either Prime or NotPrime. Larger integers are tested with distinct
// random bases drawn from [2, n-2] and are either ProbablyPrime or NotPrime.
//
// If an observer is set, it is called once with the outcome. An observer
// error is returned along with the outcome.
func Classify(n *big.Int, opts ...Option) (Outcome, error) {
	if n == nil {
		return NotPrime, errors.Wrap(ErrInvalidArgument, "cannot test a nil integer")
	}
	o, err := newOptions(opts)
	if err != nil {
		return NotPrime, err
	}
	outcome := o.classify(n)
	if o.observer == nil {
		return outcome, nil
	}
	if err := o.observer.Update(MethodMillerRabin, n, outcome); err != nil {
		return outcome, errors.Wrapf(err, "cannot record the test of %s", n)
	}
	return outcome, nil
}

// IsPrime returns true if n is prime (below DeterministicLimit) or probably prime (above).
func IsPrime(n *big.Int, opts ...Option) (bool, error) {
	outcome, err := Classify(n, opts...)
	return outcome.IsPrime(), err
}

// IsPrimeInt returns true if n is prime or probably prime
// using the default options.
func IsPrimeInt(n int64) bool {
	if n < DeterministicLimit {
		return classifyUint64(uint64(max(n, 0))).IsPrime()
	}
	o, _ := newOptions(nil)
	return o.classify(big.NewInt(n)).IsPrime()
}

func (o *options) classify(n *big.Int) Outcome {
	if n.Sign() < 0 {
		return NotPrime
	}
	if n.IsUint64() && n.Uint64() < DeterministicLimit {
		return classifyUint64(n.Uint64())
	}
	if n.Bit(0) == 0 {
		return NotPrime
	}
	if new(big.Int).Mod(n, six).Int64() == 3 {
		// Odd multiple of 3.
		return NotPrime
	}
	w := newBigWitness(n)
	for _, a := range o.sample(n) {
		if w.composite(a) {
			return NotPrime
		}
	}
	return ProbablyPrime
}

// sample returns o.rounds distinct bases drawn uniformly from [2, n-2].
// Drawing a base takes time linear in the number of bits of n.
func (o *options) sample(n *big.Int) []*big.Int {
	rnd := o.source()
	size := new(big.Int).Sub(n, big.NewInt(3))
	seen := make(map[string]bool, o.rounds)
	bases := make([]*big.Int, 0, o.rounds)
	for len(bases) < o.rounds {
		a := new(big.Int).Rand(rnd, size)
		a.Add(a, two)
		key := string(a.Bytes())
		if seen[key] {
			continue
		}
		seen[key] = true
		bases = append(bases, a)
	}
	return bases
}

// bigWitness tests bases against n-1 = 2^s * d with d odd.
type bigWitness struct {
	n, nMinus1, d *big.Int
	s             uint
}

func newBigWitness(n *big.Int) *bigWitness {
	w := &bigWitness{n: n, nMinus1: new(big.Int).Sub(n, one)}
	w.s = w.nMinus1.TrailingZeroBits()
	w.d = new(big.Int).Rsh(w.nMinus1, w.s)
	return w
}

// composite returns true if a proves that n is composite.
func (w *bigWitness) composite(a *big.Int) bool {
	if a.Cmp(w.n) >= 0 {
		return false
	}
	if new(big.Int).Mod(w.n, a).Sign() == 0 {
		return true
	}
	x := new(big.Int).Exp(a, w.d, w.n)
	if x.Cmp(one) == 0 || x.Cmp(w.nMinus1) == 0 {
		return false
	}
	for i := uint(1); i < w.s; i++ {
		x.Mul(x, x).Mod(x, w.n)
		if x.Cmp(w.nMinus1) == 0 {
			return false
		}
	}
	return true
}

func classifyUint64(n uint64) Outcome {
	switch {
	case n < 2:
		return NotPrime
	case n == 2 || n == 3:
		return Prime
	case n%2 == 0 || n%3 == 0:
		return NotPrime
	}
	for _, a := range basesFor(n) {
		if compositeUint64(n, a) {
			return NotPrime
		}
	}
	return Prime
}

// basesFor returns the deterministic bases for n < DeterministicLimit.
func basesFor(n uint64) []uint64 {
	for _, set := range deterministic {
		if n < set.below {
			return set.bases
		}
	}
	return deterministic[len(deterministic)-1].bases
}

// compositeUint64 returns true if a proves that n is composite.
// n is odd and greater than 3.
func compositeUint64(n, a uint64) bool {
	if a >= n {
		return false
	}
	if n%a == 0 {
		return true
	}
	nMinus1 := n - 1
	s := bits.TrailingZeros64(nMinus1)
	d := nMinus1 >> s
	x := powMod(a, d, n)
	if x == 1 || x == nMinus1 {
		return false
	}
	for range s - 1 {
		x = mulMod(x, x, n)
		if x == nMinus1 {
			return false
		}
	}
	return true
}

// mulMod returns a*b mod n for a, b < n.
func mulMod(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, n)
	return rem
}

// powMod returns a^e mod n for a < n.
func powMod(a, e, n uint64) uint64 {
	r := uint64(1)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = mulMod(r, a, n)
		}
		a = mulMod(a, a, n)
	}
	return r
}
