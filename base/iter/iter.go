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

// Package iter provides common iterators.
package iter

import "cmp"

// TakeWhile iterates over the elements of a sequence
// and stops at the first element for which f returns false.
func TakeWhile[T any](seq func(yield func(T) bool), f func(T) bool) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for el := range seq {
			if !f(el) || !yield(el) {
				return
			}
		}
	}
}

// DropWhile iterates over the elements of a sequence
// and skips the leading elements for which f returns true.
func DropWhile[T any](seq func(yield func(T) bool), f func(T) bool) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		dropping := true
		for el := range seq {
			if dropping && f(el) {
				continue
			}
			dropping = false
			if !yield(el) {
				return
			}
		}
	}
}

// Take iterates over the first n elements of a sequence.
func Take[T any](seq func(yield func(T) bool), n int) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for el := range seq {
			if !yield(el) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// From iterates over the elements of a sorted sequence starting
// with the first element greater or equal to start.
func From[T cmp.Ordered](seq func(yield func(T) bool), start T) func(yield func(T) bool) {
	return DropWhile(seq, func(el T) bool { return el < start })
}

// Below iterates over the elements of a sorted sequence strictly less than end.
// The input sequence is not consumed past the first element greater or equal to end,
// so Below terminates on unbounded sequences.
func Below[T cmp.Ordered](seq func(yield func(T) bool), end T) func(yield func(T) bool) {
	return TakeWhile(seq, func(el T) bool { return el < end })
}

// Between iterates over the elements x of a sorted sequence such that start <= x < end.
// The input sequence is not sorted: an unsorted input gives unspecified results.
func Between[T cmp.Ordered](seq func(yield func(T) bool), start, end T) func(yield func(T) bool) {
	return Below(From(seq, start), end)
}
