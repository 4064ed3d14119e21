// Copyright 2025 go-highway Authors
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

package sortr

import "cmp"

// CompareFunc is a three-way comparator. It returns a negative number when
// a sorts before b, a positive number when a sorts after b and zero when
// they are equivalent. It must be a consistent total order for the
// duration of one call and must not modify its arguments.
type CompareFunc[E any] func(a, b E) int

// ContextCompareFunc is a comparator that receives caller state as an
// explicit trailing argument.
type ContextCompareFunc[E, C any] func(a, b E, ctx C) int

// KeyFunc compares a search key against an element of the slice.
type KeyFunc[K, E any] func(key K, elem E) int

// WithContext binds ctx to a three-argument comparator. Every invocation of
// the returned CompareFunc passes ctx through unchanged.
func WithContext[E, C any](fn func(a, b E, ctx C) int, ctx C) CompareFunc[E] {
	return func(a, b E) int {
		return fn(a, b, ctx)
	}
}

// Natural returns the ascending comparator for an ordered type.
// NaNs sort before all other floats.
func Natural[E cmp.Ordered]() CompareFunc[E] {
	return cmp.Compare[E]
}

// Reverse inverts the order of fn.
func Reverse[E any](fn CompareFunc[E]) CompareFunc[E] {
	return func(a, b E) int {
		return fn(b, a)
	}
}
