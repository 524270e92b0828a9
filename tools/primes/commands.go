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

package main

import (
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"slices"
	"strconv"

	gxfmt "github.com/gx-org/primes/base/fmt"
	gxiter "github.com/gx-org/primes/base/iter"
	"github.com/gx-org/primes/base/stringseq"
	"github.com/gx-org/primes/instrument"
	"github.com/gx-org/primes/primality"
	"github.com/gx-org/primes/sieve"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func formatInt(p int64) string {
	return strconv.FormatInt(p, 10)
}

func formatUint(p uint64) string {
	return strconv.FormatUint(p, 10)
}

func (a *app) uptoCmd() *cobra.Command {
	var number bool
	cmd := &cobra.Command{
		Use:   "upto N",
		Short: "Print all the primes less or equal to N using the bounded sieve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 0, 64)
			if err != nil {
				return errors.Wrapf(primality.ErrInvalidArgument, "invalid bound %q", args[0])
			}
			if n > a.cfg.MaxBound {
				return errors.Wrapf(primality.ErrInvalidArgument, "bound %d is larger than the maximum bound %d", n, a.cfg.MaxBound)
			}
			a.logger.Debug("bounded sieve", zap.Int64("n", n))
			primes := sieve.Bounded(n)
			if len(primes) == 0 {
				return nil
			}
			text := stringseq.Join(stringseq.Map(slices.Values(primes), formatInt), "\n")
			if number {
				text = gxfmt.Number(text)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text+"\n")
			return err
		},
	}
	cmd.Flags().BoolVarP(&number, "number", "n", false, "prefix each prime with its index")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var (
		variant     string
		count       int
		from, below uint64
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print primes using an incremental sieve",
		Long: `Print primes using an incremental sieve.

The sequence of primes is unbounded: at least one of --count or --below is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Sieve
			if cmd.Flags().Changed("sieve") {
				name = variant
			}
			v, err := sieve.ParseVariant(name)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("count") && !flags.Changed("below") {
				return errors.Wrap(primality.ErrInvalidArgument, "the list of primes is unbounded: set --count or --below")
			}
			seq, err := sieve.New(v)
			if err != nil {
				return err
			}
			if flags.Changed("from") {
				seq = gxiter.From(seq, from)
			}
			if flags.Changed("below") {
				seq = gxiter.Below(seq, below)
			}
			if flags.Changed("count") {
				seq = gxiter.Take(seq, count)
			}
			a.logger.Debug("incremental sieve", zap.Stringer("sieve", v))
			n, err := stringseq.Write(cmd.OutOrStdout(), stringseq.Map(seq, formatUint), "\n")
			if err != nil {
				return errors.Wrapf(err, "cannot write primes")
			}
			a.logger.Debug("primes listed", zap.Int("count", n))
			return nil
		},
	}
	cmd.Flags().StringVarP(&variant, "sieve", "s", "", "incremental sieve: basic, cookbook, croft or wheel210")
	cmd.Flags().IntVarP(&count, "count", "c", 0, "maximum number of primes")
	cmd.Flags().Uint64Var(&from, "from", 0, "smallest prime to print")
	cmd.Flags().Uint64Var(&below, "below", 0, "print only primes strictly less than this bound")
	return cmd
}

// checker tests integers and records the outcomes in an instrument.
type checker struct {
	trial bool
	in    *instrument.Instrument
	opts  []primality.Option
}

func (c *checker) check(n *big.Int) (primality.Outcome, error) {
	if !c.trial {
		return primality.Classify(n, c.opts...)
	}
	if !n.IsInt64() {
		return primality.NotPrime, errors.Wrapf(primality.ErrInvalidArgument, "%s does not fit in 64 bits for trial division", n)
	}
	outcome := primality.NotPrime
	if primality.TrialDivision(n.Int64()) {
		outcome = primality.Prime
	}
	return outcome, c.in.Update(primality.MethodTrialDivision, n, outcome)
}

func (a *app) checkCmd() *cobra.Command {
	var (
		trial, stats bool
		rounds       int
		seed         int64
	)
	cmd := &cobra.Command{
		Use:   "check N...",
		Short: "Test whether integers are prime",
		Long: `Test whether integers are prime.

Integers can be written in decimal or with a 0x, 0o or 0b prefix.
Invalid arguments are reported together after the valid ones have been tested.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("rounds") {
				rounds = a.cfg.Rounds
			}
			if !flags.Changed("seed") {
				seed = a.cfg.Seed
			}
			c := &checker{
				trial: trial,
				in:    instrument.New("primes check", primality.MethodMillerRabin, primality.MethodTrialDivision),
			}
			c.opts = []primality.Option{primality.WithRounds(rounds), primality.WithObserver(c.in)}
			if seed != 0 {
				c.opts = append(c.opts, primality.WithRand(rand.New(rand.NewSource(seed))))
			}
			out := cmd.OutOrStdout()
			var errs error
			for _, arg := range args {
				n, ok := new(big.Int).SetString(arg, 0)
				if !ok {
					errs = multierr.Append(errs, errors.Wrapf(primality.ErrInvalidArgument, "invalid integer %q", arg))
					continue
				}
				outcome, err := c.check(n)
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				a.logger.Debug("primality test", zap.Stringer("n", n), zap.Stringer("outcome", outcome), zap.Bool("trial", trial))
				fmt.Fprintf(out, "%s: %s\n", n, outcome)
			}
			if stats {
				if err := c.in.Display(out); err != nil {
					errs = multierr.Append(errs, err)
				}
			}
			return errs
		},
	}
	cmd.Flags().BoolVar(&trial, "trial", false, "use trial division instead of Miller-Rabin")
	cmd.Flags().BoolVar(&stats, "stats", false, "print statistics about the tests")
	cmd.Flags().IntVarP(&rounds, "rounds", "k", primality.DefaultRounds, "Miller-Rabin rounds above the deterministic limit")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed of the random witnesses, 0 to seed from the clock")
	return cmd
}
