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

// Package sortr provides an in-place, comparator-driven sort and a binary
// search that work on slices of any element type.
//
// Comparators are three-way functions returning a negative number, zero or
// a positive number. Any state the comparison needs (a weight table, a
// collation, a lookup map) is captured by the closure, or threaded
// explicitly with [WithContext]:
//
//	weights := []int{30, 10, 20}
//	idx := []int{0, 1, 2}
//	sortr.Sort(idx, sortr.WithContext(func(a, b int, w []int) int {
//	    return w[a] - w[b]
//	}, weights))
//	// idx == [1 2 0]
//
//	if i, ok := sortr.Search(idx, 20, func(k, e int) int { return k - weights[e] }); ok {
//	    fmt.Println(idx[i]) // 2
//	}
//
// # Strategy selection
//
// [Sort] picks its implementation once, at startup:
//   - native: the standard library's slices.SortFunc (pattern-defeating quicksort)
//   - fallback: the self-contained quicksort in [SortSimple]
//
// Building with the sortr_purego tag removes the native strategy. Setting
// SORTR_NO_NATIVE=1 forces the fallback at runtime. Both produce the same
// postcondition; equal elements may end up in any order with either.
//
// Neither function allocates or starts goroutines. Concurrent calls are
// safe as long as they operate on disjoint slices.
package sortr
