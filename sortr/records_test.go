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

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packUint32s(vals []int) []byte {
	buf := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		buf = binary.BigEndian.AppendUint32(buf, uint32(v))
	}
	return buf
}

func unpackUint32s(buf []byte) []int {
	vals := make([]int, 0, len(buf)/4)
	for i, n := 0, NumRecords(buf, 4); i < n; i++ {
		vals = append(vals, int(binary.BigEndian.Uint32(Record(buf, 4, i))))
	}
	return vals
}

func TestSortRecordsWorkedExample(t *testing.T) {
	buf := packUint32s([]int{5, 3, 8, 1, 9, 2})
	SortRecords(buf, 4, bytes.Compare)
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, unpackUint32s(buf))

	i, ok := SearchRecords(buf, 4, packUint32s([]int{8}), bytes.Compare)
	require.True(t, ok)
	assert.Equal(t, 4, i)

	_, ok = SearchRecords(buf, 4, packUint32s([]int{4}), bytes.Compare)
	assert.False(t, ok)
}

func TestSortRecordsMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, p := range inputPatterns {
		for _, n := range []int{0, 1, 2, 6, 7, 8, 100, 1000} {
			vals := p.gen(rng, n)
			buf := packUint32s(vals)
			SortRecords(buf, 4, bytes.Compare)

			want := slices.Clone(vals)
			SortSimple(want, intCmp)
			assert.Equal(t, want, unpackUint32s(buf), "%s n=%d", p.name, n)
		}
	}
}

func TestSortRecordsWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	// Widths around the swap buffer size exercise partial chunks.
	for _, width := range []int{1, 3, 63, 64, 65, 200} {
		const n = 50
		buf := make([]byte, n*width)
		rng.Read(buf)

		want := make([][]byte, n)
		for i := range want {
			want[i] = slices.Clone(Record(buf, width, i))
		}
		slices.SortFunc(want, bytes.Compare)

		SortRecords(buf, width, bytes.Compare)
		for i := 0; i < n; i++ {
			require.Equal(t, want[i], Record(buf, width, i), "width=%d record %d", width, i)
		}
	}
}

func TestSortRecordsKeyPrefix(t *testing.T) {
	// 2-byte key followed by a 2-byte payload; only the key is compared.
	buf := []byte{
		0, 9, 'a', 'a',
		0, 2, 'b', 'b',
		0, 5, 'c', 'c',
	}
	byKey := func(a, b []byte) int { return bytes.Compare(a[:2], b[:2]) }
	SortRecords(buf, 4, byKey)
	assert.Equal(t, []byte{0, 2, 'b', 'b', 0, 5, 'c', 'c', 0, 9, 'a', 'a'}, buf)

	i, ok := SearchRecords(buf, 4, uint16(5), func(k uint16, rec []byte) int {
		return intCmp(int(k), int(binary.BigEndian.Uint16(rec)))
	})
	require.True(t, ok)
	assert.Equal(t, []byte("cc"), Record(buf, 4, i)[2:])
}

func TestRecordsInvalidWidth(t *testing.T) {
	assert.PanicsWithValue(t, "sortr: record width 0 must be positive", func() {
		SortRecords([]byte{1, 2}, 0, bytes.Compare)
	})
	assert.PanicsWithValue(t, "sortr: buffer length 5 is not a multiple of record width 2", func() {
		SearchRecords([]byte{1, 2, 3, 4, 5}, 2, []byte{1, 2}, bytes.Compare)
	})
}

func TestRecordCapacity(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6}
	r := Record(buf, 2, 1)
	assert.Equal(t, []byte{3, 4}, r)
	assert.Equal(t, 2, cap(r))
}
