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

// Package instrument records statistics about primality tests.
package instrument

import (
	"fmt"
	"io"
	"math/big"
	"slices"
	"strings"

	gxfmt "github.com/gx-org/primes/base/fmt"
	"github.com/gx-org/primes/base/ordered"
	"github.com/gx-org/primes/primality"
	"github.com/pkg/errors"
)

var (
	// ErrNotRegistered is returned when a method has not been registered in an instrument.
	ErrNotRegistered = errors.New("method not registered")

	// ErrInvalidArgument is returned for invalid integers or outcomes.
	ErrInvalidArgument = primality.ErrInvalidArgument
)

// MethodStats records the calls of a method.
type MethodStats struct {
	// Hits is the number of calls.
	Hits int
	// Low and High are the smallest and largest integers tested.
	// They are nil if the method has never been called.
	Low, High *big.Int
}

func (s *MethodStats) update(n *big.Int) {
	s.Hits++
	if s.Low == nil || n.Cmp(s.Low) < 0 {
		s.Low = new(big.Int).Set(n)
	}
	if s.High == nil || n.Cmp(s.High) > 0 {
		s.High = new(big.Int).Set(n)
	}
}

func (s MethodStats) String() string {
	return fmt.Sprintf("MethodStats(hits=%d, low=%s, high=%s)", s.Hits, bound(s.Low), bound(s.High))
}

func bound(x *big.Int) string {
	if x == nil {
		return "none"
	}
	return x.String()
}

// Instrument counts the calls to primality tests.
// It implements primality.Observer.
//
// An Instrument is not safe for concurrent use.
type Instrument struct {
	// Calls is the total number of recorded calls.
	Calls int
	// NotPrime, Prime and Uncertain count the calls per outcome.
	NotPrime, Prime, Uncertain int

	owner string
	stats *ordered.Map[string, *MethodStats]
}

var _ primality.Observer = (*Instrument)(nil)

// New returns an instrument for a set of methods.
func New(owner string, methods ...string) *Instrument {
	in := &Instrument{
		owner: owner,
		stats: ordered.NewMap[string, *MethodStats](),
	}
	for _, method := range methods {
		in.Register(method)
	}
	return in
}

// Owner returns the name given to the instrument.
func (in *Instrument) Owner() string {
	return in.owner
}

// Register a method. Registering a method twice keeps its statistics.
func (in *Instrument) Register(method string) {
	if _, ok := in.stats.Load(method); ok {
		return
	}
	in.stats.Store(method, &MethodStats{})
}

// Methods returns the registered methods in registration order.
func (in *Instrument) Methods() []string {
	return slices.AppendSeq(make([]string, 0, in.stats.Len()), in.stats.Keys())
}

// Update records a call of method on n.
func (in *Instrument) Update(method string, n *big.Int, outcome primality.Outcome) error {
	stats, ok := in.stats.Load(method)
	if !ok {
		return errors.Wrapf(ErrNotRegistered, "instrument %q: cannot record a call to %q", in.owner, method)
	}
	if n == nil {
		return errors.Wrapf(ErrInvalidArgument, "instrument %q: nil integer", in.owner)
	}
	switch outcome {
	case primality.NotPrime:
		in.NotPrime++
	case primality.Prime:
		in.Prime++
	case primality.ProbablyPrime:
		in.Uncertain++
	default:
		return errors.Wrapf(ErrInvalidArgument, "instrument %q: invalid outcome %d", in.owner, int(outcome))
	}
	in.Calls++
	stats.update(n)
	return nil
}

// Stats returns the statistics of a method.
func (in *Instrument) Stats(method string) (MethodStats, bool) {
	stats, ok := in.stats.Load(method)
	if !ok {
		return MethodStats{}, false
	}
	return *stats, true
}

// String returns a summary of the statistics.
// Methods which have never been called are omitted.
// The summary ends with an empty line if no method has been called.
func (in *Instrument) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "Instrumentation for %s\n", in.owner)
	s.WriteString(gxfmt.Indent("  - ", gxfmt.Aligned(
		gxfmt.Row{Key: "definitely not prime", Value: in.NotPrime},
		gxfmt.Row{Key: "definitely prime", Value: in.Prime},
		gxfmt.Row{Key: "probably prime", Value: in.Uncertain},
		gxfmt.Row{Key: "total", Value: in.Calls},
	)))
	var called []string
	for method, stats := range in.stats.All() {
		if stats.Hits > 0 {
			called = append(called, method)
		}
	}
	if len(called) == 0 {
		s.WriteString("\n")
		return s.String()
	}
	slices.Sort(called)
	var methods strings.Builder
	for _, method := range called {
		stats, _ := in.stats.Load(method)
		fmt.Fprintf(&methods, "%s: %s\n", method, stats)
	}
	s.WriteString(gxfmt.Indent("  ", methods.String()))
	return s.String()
}

// Display writes the summary of the statistics.
func (in *Instrument) Display(w io.Writer) error {
	_, err := io.WriteString(w, in.String())
	return err
}
