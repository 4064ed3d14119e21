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

// Search looks for key in s, which must be sorted in ascending order
// according to cmp. It returns the index of an element for which
// cmp(key, elem) == 0 and true, or -1 and false if there is none.
//
// When several elements match, any one of them may be returned.
// If s is not sorted the result is unspecified, but Search never
// reads outside s.
func Search[S ~[]E, E, K any](s S, key K, cmp func(key K, elem E) int) (int, bool) {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) // avoid overflow when computing mid
		c := cmp(key, s[mid])
		switch {
		case c < 0:
			hi = mid - 1
		case c > 0:
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return -1, false
}

// Find is like Search but returns a pointer to the matching element
// inside s, or nil.
func Find[S ~[]E, E, K any](s S, key K, cmp func(key K, elem E) int) *E {
	i, ok := Search(s, key, cmp)
	if !ok {
		return nil
	}
	return &s[i]
}
