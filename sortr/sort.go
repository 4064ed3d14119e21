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

import "math/bits"

// insertionThreshold: use insertion sort for slices shorter than this.
const insertionThreshold = 7

// Sort sorts s in place in ascending order according to cmp, using the
// strategy returned by CurrentStrategy.
//
// The sort is not stable. After Sort returns, cmp(s[i], s[i+1]) <= 0 for
// every adjacent pair, provided cmp is a consistent total order. An
// inconsistent cmp leaves s in an unspecified permutation of its input.
func Sort[S ~[]E, E any](s S, cmp func(a, b E) int) {
	sortWith(currentStrategy, s, cmp)
}

func sortWith[S ~[]E, E any](strategy Strategy, s S, cmp func(a, b E) int) {
	if len(s) < 2 {
		return
	}

	switch strategy {
	case StrategyNative:
		nativeSort(s, cmp)
	default:
		quickSort(s, cmp)
	}
}

// SortSimple sorts s in place with the self-contained quicksort that backs
// the fallback strategy, regardless of the current strategy:
//   - insertion sort for fewer than 7 elements
//   - median-of-three quicksort otherwise
//
// Recursion always descends into the smaller partition, so stack depth
// stays O(log n). After 2*log2(n) partitioning rounds on one range the
// remainder is heapsorted, which bounds the worst case at O(n log n) for
// inputs that defeat the pivot choice, such as many equal elements.
func SortSimple[S ~[]E, E any](s S, cmp func(a, b E) int) {
	quickSort(s, cmp)
}

// IsSorted reports whether s is sorted in ascending order according to cmp.
func IsSorted[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}

// depthLimit returns the partitioning budget for n elements: 2*floor(log2(n))+2.
func depthLimit(n int) int {
	return 2 * bits.Len(uint(n))
}

func quickSort[S ~[]E, E any](s S, cmp func(a, b E) int) {
	quickSortDepth(s, cmp, depthLimit(len(s)))
}

func quickSortDepth[S ~[]E, E any](s S, cmp func(a, b E) int, depth int) {
	for len(s) >= insertionThreshold {
		if depth == 0 {
			heapSort(s, cmp)
			return
		}
		depth--

		p := partition(s, cmp)

		// Pivot at s[p] is in its final position.
		left, right := s[:p], s[p+1:]
		if len(left) < len(right) {
			quickSortDepth(left, cmp, depth)
			s = right
		} else {
			quickSortDepth(right, cmp, depth)
			s = left
		}
	}
	insertionSort(s, cmp)
}

// insertionSort moves each element left while its left neighbour compares
// strictly greater. Equal neighbours are never exchanged.
func insertionSort[S ~[]E, E any](s S, cmp func(a, b E) int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && cmpSwap(s, j-1, j, cmp); j-- {
		}
	}
}

// cmpSwap exchanges s[i] and s[j] iff s[i] > s[j], and reports whether it did.
func cmpSwap[S ~[]E, E any](s S, i, j int, cmp func(a, b E) int) bool {
	if cmp(s[i], s[j]) > 0 {
		s[i], s[j] = s[j], s[i]
		return true
	}
	return false
}

// medianOfThree returns the index of the median of the first, middle and
// last elements. Only the candidate indices are reordered, not s.
func medianOfThree[S ~[]E, E any](s S, cmp func(a, b E) int) int {
	lo, mid, hi := 0, len(s)/2, len(s)-1
	if cmp(s[lo], s[mid]) > 0 {
		lo, mid = mid, lo
	}
	if cmp(s[mid], s[hi]) > 0 {
		mid, hi = hi, mid
		if cmp(s[lo], s[mid]) > 0 {
			lo, mid = mid, lo
		}
	}
	return mid
}

// partition moves the median-of-three pivot into its final position and
// returns that position. Everything before it compares <= pivot and
// everything after it compares >= pivot. Requires len(s) >= 3.
//
// The pivot starts in the last slot. The left scan swaps the first element
// greater than the pivot with the pivot, which leaves the pivot at the left
// pointer; the right scan then swaps the first element less than the pivot
// back across it. Scans alternate until the pointers meet on the pivot.
func partition[S ~[]E, E any](s S, cmp func(a, b E) int) int {
	last := len(s) - 1
	m := medianOfThree(s, cmp)
	s[m], s[last] = s[last], s[m]

	l, r := 0, last
	for l < r {
		for ; l < r; l++ {
			if cmpSwap(s, l, r, cmp) {
				r-- // pivot now at l
				break
			}
		}
		for ; l < r; r-- {
			if cmpSwap(s, l, r, cmp) {
				l++ // pivot now at r
				break
			}
		}
	}
	return l
}

// heapSort is heapsort for the O(n log n) worst-case guarantee.
func heapSort[S ~[]E, E any](s S, cmp func(a, b E) int) {
	n := len(s)

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, cmp)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		s[0], s[i] = s[i], s[0]
		siftDown(s, 0, i, cmp)
	}
}

// siftDown restores the heap property for s[root:n].
func siftDown[S ~[]E, E any](s S, root, n int, cmp func(a, b E) int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && cmp(s[child], s[child+1]) < 0 {
			child++
		}
		if cmp(s[root], s[child]) >= 0 {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
