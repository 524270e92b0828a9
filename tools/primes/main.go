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

// Package main runs the primes command line tool.
//
// The tool lists primes with the bounded or incremental sieves and tests
// integers with the Miller-Rabin or trial division tests. Defaults are read
// from an optional YAML configuration file and overridden by flags.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by the commands.
type app struct {
	out        io.Writer
	logger     *zap.Logger
	configPath string
	verbose    bool
	cfg        Config
}

func newApp(out io.Writer) *app {
	return &app{out: out, cfg: defaultConfig()}
}

// setup reads the configuration file and initializes the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		if err := loadConfig(a.configPath, &a.cfg); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("verbose") {
		a.cfg.Verbose = a.verbose
	}
	if a.logger != nil {
		return nil
	}
	config := zap.NewProductionConfig()
	if a.cfg.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	a.logger, err = config.Build()
	if err != nil {
		return errors.Wrap(err, "cannot initialize logger")
	}
	return nil
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "primes",
		Short: "Generate prime numbers and test primality",
		Long: `primes generates prime numbers with sieves and tests primality.

Sieves: basic, cookbook, croft (default) and wheel210.
Primality: Miller-Rabin, exact below 3,317,044,064,279,371 and probabilistic
above, or trial division for small integers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.out)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(a.uptoCmd(), a.listCmd(), a.checkCmd())
	return root
}

func main() {
	if err := newApp(os.Stdout).rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
