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

package instrument_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/primes/instrument"
	"github.com/gx-org/primes/primality"
	"github.com/pkg/errors"
)

func TestUpdate(t *testing.T) {
	in := instrument.New("test", primality.MethodMillerRabin, primality.MethodTrialDivision)
	updates := []struct {
		method  string
		n       int64
		outcome primality.Outcome
	}{
		{method: primality.MethodMillerRabin, n: 10, outcome: primality.NotPrime},
		{method: primality.MethodMillerRabin, n: 7, outcome: primality.Prime},
		{method: primality.MethodMillerRabin, n: -3, outcome: primality.NotPrime},
		{method: primality.MethodMillerRabin, n: 101, outcome: primality.ProbablyPrime},
		{method: primality.MethodTrialDivision, n: 5, outcome: primality.Prime},
	}
	for _, u := range updates {
		if err := in.Update(u.method, big.NewInt(u.n), u.outcome); err != nil {
			t.Fatalf("Update(%s, %d, %s): unexpected error: %v", u.method, u.n, u.outcome, err)
		}
	}
	if in.Calls != 5 || in.NotPrime != 2 || in.Prime != 2 || in.Uncertain != 1 {
		t.Errorf("got calls=%d notprime=%d prime=%d uncertain=%d but want 5, 2, 2, 1", in.Calls, in.NotPrime, in.Prime, in.Uncertain)
	}
	stats, ok := in.Stats(primality.MethodMillerRabin)
	if !ok {
		t.Fatalf("no statistics for %s", primality.MethodMillerRabin)
	}
	if got, want := stats.String(), "MethodStats(hits=4, low=-3, high=101)"; got != want {
		t.Errorf("got %s but want %s", got, want)
	}
	if got, want := in.Methods(), []string{primality.MethodMillerRabin, primality.MethodTrialDivision}; !cmp.Equal(got, want) {
		t.Errorf("got methods %v but want %v", got, want)
	}
}

func TestUpdateErrors(t *testing.T) {
	in := instrument.New("errors", primality.MethodMillerRabin)
	tests := []struct {
		method  string
		n       *big.Int
		outcome primality.Outcome
		want    error
	}{
		{method: "Fermat", n: big.NewInt(7), outcome: primality.Prime, want: instrument.ErrNotRegistered},
		{method: primality.MethodMillerRabin, n: nil, outcome: primality.Prime, want: instrument.ErrInvalidArgument},
		{method: primality.MethodMillerRabin, n: big.NewInt(7), outcome: primality.Outcome(3), want: instrument.ErrInvalidArgument},
	}
	for _, test := range tests {
		err := in.Update(test.method, test.n, test.outcome)
		if !errors.Is(err, test.want) {
			t.Errorf("Update(%s, %v, %d): got error %v but want %v", test.method, test.n, int(test.outcome), err, test.want)
		}
	}
	if in.Calls != 0 {
		t.Errorf("failed updates have been counted: %d calls", in.Calls)
	}
}

func TestRegisterTwice(t *testing.T) {
	in := instrument.New("twice", primality.MethodMillerRabin)
	if err := in.Update(primality.MethodMillerRabin, big.NewInt(3), primality.Prime); err != nil {
		t.Fatal(err)
	}
	in.Register(primality.MethodMillerRabin)
	stats, _ := in.Stats(primality.MethodMillerRabin)
	if stats.Hits != 1 {
		t.Errorf("registering again reset the statistics: %s", stats)
	}
	if _, ok := in.Stats("Fermat"); ok {
		t.Errorf("statistics found for an unregistered method")
	}
}

func TestObservePrimality(t *testing.T) {
	in := instrument.New("is_prime_profiling", primality.MethodMillerRabin)
	for n := range int64(1000) {
		if _, err := primality.IsPrime(big.NewInt(n), primality.WithObserver(in)); err != nil {
			t.Fatalf("IsPrime(%d): unexpected error: %v", n, err)
		}
	}
	m61 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	for _, n := range []*big.Int{m61, new(big.Int).Add(m61, big.NewInt(6))} {
		if _, err := primality.IsPrime(n, primality.WithObserver(in)); err != nil {
			t.Fatalf("IsPrime(%s): unexpected error: %v", n, err)
		}
	}
	// 168 primes below 1000.
	want := `Instrumentation for is_prime_profiling
  - definitely not prime: 833
  - definitely prime:     168
  - probably prime:       1
  - total:                1002
  MillerRabin: MethodStats(hits=1002, low=0, high=2305843009213693957)
`
	got := in.String()
	if got != want {
		t.Errorf("got:\n%s\nbut want:\n%s\ndiff:\n%s", got, want, cmp.Diff(got, want))
	}
	var b strings.Builder
	if err := in.Display(&b); err != nil {
		t.Fatal(err)
	}
	if b.String() != want {
		t.Errorf("Display wrote:\n%s\nbut want:\n%s", b.String(), want)
	}
}

func TestUnregisteredObserver(t *testing.T) {
	in := instrument.New("empty")
	ok, err := primality.IsPrime(big.NewInt(13), primality.WithObserver(in))
	if !errors.Is(err, instrument.ErrNotRegistered) {
		t.Errorf("got error %v but want %v", err, instrument.ErrNotRegistered)
	}
	if !ok {
		t.Errorf("IsPrime(13) = false but want true")
	}
	want := `Instrumentation for empty
  - definitely not prime: 0
  - definitely prime:     0
  - probably prime:       0
  - total:                0

`
	if got := in.String(); got != want {
		t.Errorf("got:\n%s\nbut want:\n%s\ndiff:\n%s", got, want, cmp.Diff(got, want))
	}
}
