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

// Package primality tests whether integers are prime.
//
// TrialDivision divides by successive primes and is meant for small integers.
// Classify and IsPrime implement the Miller-Rabin test: the test is exact
// below DeterministicLimit and probabilistic above, where a composite is
// reported as prime with a probability of at most 4^-rounds.
package primality

import (
	"math/big"
	"math/rand"
	"time"

	"github.com/gx-org/primes/sieve"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when an argument is outside of the domain of an operation.
var ErrInvalidArgument = sieve.ErrInvalidArgument

// Names of the methods reported to observers.
const (
	MethodMillerRabin   = "MillerRabin"
	MethodTrialDivision = "TrialDivision"
)

// Outcome classifies the result of a primality test.
type Outcome int

const (
	// NotPrime is returned for integers proven to be composite or less than 2.
	NotPrime Outcome = iota
	// Prime is returned for integers proven to be prime.
	Prime
	// ProbablyPrime is returned for integers passing randomly chosen witnesses.
	ProbablyPrime
)

var outcomeNames = [...]string{
	NotPrime:      "not prime",
	Prime:         "prime",
	ProbablyPrime: "probably prime",
}

// Valid returns true if the outcome is one of the defined outcomes.
func (o Outcome) Valid() bool {
	return o >= 0 && int(o) < len(outcomeNames)
}

// IsPrime returns true unless the outcome is NotPrime.
func (o Outcome) IsPrime() bool {
	return o == Prime || o == ProbablyPrime
}

func (o Outcome) String() string {
	if !o.Valid() {
		return "invalid outcome"
	}
	return outcomeNames[o]
}

type (
	// Observer records the calls to a primality test.
	// Observers are not synchronized by this package.
	Observer interface {
		// Update records a call of method on n.
		Update(method string, n *big.Int, outcome Outcome) error
	}

	// ObserverFunc is a function implementing Observer.
	ObserverFunc func(method string, n *big.Int, outcome Outcome) error

	// Option configures a Miller-Rabin test.
	Option func(*options)

	options struct {
		rounds   int
		rnd      *rand.Rand
		observer Observer
	}
)

// Update calls the function.
func (f ObserverFunc) Update(method string, n *big.Int, outcome Outcome) error {
	return f(method, n, outcome)
}

// DefaultRounds is the number of random witnesses used above DeterministicLimit.
const DefaultRounds = 8

// WithRounds sets the number of random witnesses used above DeterministicLimit.
// It is ignored for smaller integers.
func WithRounds(k int) Option {
	return func(o *options) {
		o.rounds = k
	}
}

// WithRand sets the source of the random witnesses.
// By default, a new source seeded from the clock is used for each test.
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) {
		o.rnd = rnd
	}
}

// WithObserver reports the outcome of the test to an observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{rounds: DefaultRounds}
	for _, opt := range opts {
		opt(o)
	}
	if o.rounds < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "number of rounds %d is less than 1", o.rounds)
	}
	return o, nil
}

func (o *options) source() *rand.Rand {
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o.rnd
}
