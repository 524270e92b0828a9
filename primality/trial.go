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
	"github.com/gx-org/primes/sieve"
	"golang.org/x/exp/constraints"
)

// TrialDivision returns true if n is prime by dividing n by every prime p
// such that p*p <= n. It takes O(sqrt(n)/log(n)) divisions: use Classify for
// large integers.
func TrialDivision[T constraints.Integer](n T) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	m := uint64(n)
	for p := range sieve.Cookbook() {
		if p > m/p {
			break
		}
		if m%p == 0 {
			return false
		}
	}
	return true
}
