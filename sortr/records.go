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

import "fmt"

// Records are fixed-width binary entries packed back to back in a byte
// buffer, as found in serialized lookup tables. The functions below sort
// and search such buffers in place without decoding them.
//
// Comparators receive sub-slices of the buffer. They must not retain or
// modify them.

// swapChunk bounds the stack buffer used to exchange two records.
const swapChunk = 64

// Record returns the i-th width-byte record of buf.
func Record(buf []byte, width, i int) []byte {
	off := i * width
	return buf[off : off+width : off+width]
}

// NumRecords returns the number of width-byte records in buf.
// It panics if width is not positive or does not divide len(buf).
func NumRecords(buf []byte, width int) int {
	if width <= 0 {
		panic(fmt.Sprintf("sortr: record width %d must be positive", width))
	}
	if len(buf)%width != 0 {
		panic(fmt.Sprintf("sortr: buffer length %d is not a multiple of record width %d", len(buf), width))
	}
	return len(buf) / width
}

// SortRecords sorts the width-byte records of buf in place in ascending
// order according to cmp, using the same algorithm as SortSimple.
// Records are exchanged by copying exactly width bytes, so they must not
// contain references to their own position.
func SortRecords(buf []byte, width int, cmp func(a, b []byte) int) {
	r := records{buf: buf, width: width, cmp: cmp}
	n := NumRecords(buf, width)
	r.quickSort(0, n, depthLimit(n))
}

// SearchRecords looks for key among the records of buf, which must be sorted
// according to cmp. It returns the record index and true, or -1 and false.
func SearchRecords[K any](buf []byte, width int, key K, cmp func(key K, rec []byte) int) (int, bool) {
	lo, hi := 0, NumRecords(buf, width)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		c := cmp(key, Record(buf, width, mid))
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

type records struct {
	buf   []byte
	width int
	cmp   func(a, b []byte) int
}

func (r records) at(i int) []byte {
	return Record(r.buf, r.width, i)
}

func (r records) swap(i, j int) {
	a, b := r.at(i), r.at(j)
	var tmp [swapChunk]byte
	for len(a) > 0 {
		n := copy(tmp[:], a)
		copy(a, b[:n])
		copy(b, tmp[:n])
		a, b = a[n:], b[n:]
	}
}

func (r records) cmpSwap(i, j int) bool {
	if r.cmp(r.at(i), r.at(j)) > 0 {
		r.swap(i, j)
		return true
	}
	return false
}

// quickSort sorts records [lo, hi).
func (r records) quickSort(lo, hi, depth int) {
	for hi-lo >= insertionThreshold {
		if depth == 0 {
			r.heapSort(lo, hi)
			return
		}
		depth--

		p := r.partition(lo, hi)
		if p-lo < hi-p-1 {
			r.quickSort(lo, p, depth)
			lo = p + 1
		} else {
			r.quickSort(p+1, hi, depth)
			hi = p
		}
	}
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && r.cmpSwap(j-1, j); j-- {
		}
	}
}

func (r records) partition(lo, hi int) int {
	last := hi - 1
	a, m, c := lo, lo+(hi-lo)/2, last
	if r.cmp(r.at(a), r.at(m)) > 0 {
		a, m = m, a
	}
	if r.cmp(r.at(m), r.at(c)) > 0 {
		m, c = c, m
		if r.cmp(r.at(a), r.at(m)) > 0 {
			a, m = m, a
		}
	}
	if m != last {
		r.swap(m, last)
	}

	l, p := lo, last
	for l < p {
		for ; l < p; l++ {
			if r.cmpSwap(l, p) {
				p--
				break
			}
		}
		for ; l < p; p-- {
			if r.cmpSwap(l, p) {
				l++
				break
			}
		}
	}
	return l
}

func (r records) heapSort(lo, hi int) {
	n := hi - lo
	for i := n/2 - 1; i >= 0; i-- {
		r.siftDown(lo, i, n)
	}
	for i := n - 1; i > 0; i-- {
		r.swap(lo, lo+i)
		r.siftDown(lo, 0, i)
	}
}

// siftDown restores the heap property for the heap rooted at record lo.
func (r records) siftDown(lo, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && r.cmp(r.at(lo+child), r.at(lo+child+1)) < 0 {
			child++
		}
		if r.cmp(r.at(lo+root), r.at(lo+child)) >= 0 {
			return
		}
		r.swap(lo+root, lo+child)
		root = child
	}
}
