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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when an argument is outside of the domain of an operation.
var ErrInvalidArgument = errors.New("invalid argument")

// Variant identifies an incremental sieve.
type Variant int

// Incremental sieves.
const (
	VariantBasic Variant = iota
	VariantCookbook
	VariantCroft
	VariantWheel210
)

var variants = []struct {
	name string
	new  func() iter.Seq[uint64]
}{
	VariantBasic:    {name: "basic", new: Basic},
	VariantCookbook: {name: "cookbook", new: Cookbook},
	VariantCroft:    {name: "croft", new: Croft},
	VariantWheel210: {name: "wheel210", new: Wheel210},
}

// Variants returns all the incremental sieves.
func Variants() []Variant {
	vs := make([]Variant, len(variants))
	for i := range variants {
		vs[i] = Variant(i)
	}
	return vs
}

func (v Variant) valid() bool {
	return v >= 0 && int(v) < len(variants)
}

// String returns the name of the variant.
func (v Variant) String() string {
	if !v.valid() {
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variants[v].name
}

// ParseVariant returns the variant given its name.
// The empty string selects the default sieve.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return VariantCroft, nil
	}
	for i, v := range variants {
		if v.name == name {
			return Variant(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown sieve %q", name)
}

// New returns the sequence of primes generated by a variant.
func New(v Variant) (iter.Seq[uint64], error) {
	if !v.valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown sieve %s", v)
	}
	return variants[v].new(), nil
}
