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
	"math"
	"os"

	"github.com/gx-org/primes/primality"
	"github.com/gx-org/primes/sieve"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the content of the configuration file.
type Config struct {
	// Sieve is the name of the incremental sieve used by the list command.
	Sieve string `yaml:"sieve"`
	// Rounds is the number of Miller-Rabin rounds above the deterministic limit.
	Rounds int `yaml:"rounds"`
	// Seed seeds the random witnesses. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
	// MaxBound is the largest bound accepted by the upto command.
	MaxBound int64 `yaml:"max_bound"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// defaultMaxBound limits the table of the bounded sieve to 1GiB.
const defaultMaxBound = 1 << 30

func defaultConfig() Config {
	return Config{
		Sieve:    sieve.VariantCroft.String(),
		Rounds:   primality.DefaultRounds,
		MaxBound: defaultMaxBound,
	}
}

// loadConfig reads a YAML file into cfg. Fields absent from the file are left unchanged.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read configuration")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "cannot parse configuration %s", path)
	}
	if _, err := sieve.ParseVariant(cfg.Sieve); err != nil {
		return errors.Wrapf(err, "invalid configuration %s", path)
	}
	if cfg.Rounds < 1 {
		return errors.Wrapf(primality.ErrInvalidArgument, "invalid configuration %s: rounds %d is less than 1", path, cfg.Rounds)
	}
	if cfg.MaxBound < 1 || cfg.MaxBound >= math.MaxInt {
		return errors.Wrapf(primality.ErrInvalidArgument, "invalid configuration %s: max_bound %d out of range", path, cfg.MaxBound)
	}
	return nil
}
