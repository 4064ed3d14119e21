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
	"math/rand"
	"slices"
	"testing"

	"github.com/samber/lo"
)

var strategies = []Strategy{StrategyFallback, StrategyNative}

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// inputPattern builds an input of size n.
type inputPattern struct {
	name string
	gen  func(rng *rand.Rand, n int) []int
}

var inputPatterns = []inputPattern{
	{"random", func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return rng.Intn(1 << 20) })
	}},
	{"sorted", func(_ *rand.Rand, n int) []int {
		return lo.Range(n)
	}},
	{"reverse", func(_ *rand.Rand, n int) []int {
		return lo.Map(lo.Range(n), func(v, _ int) int { return n - v })
	}},
	{"equal", func(_ *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return 7 })
	}},
	{"few-unique", func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return rng.Intn(4) })
	}},
	{"sawtooth", func(_ *rand.Rand, n int) []int {
		return lo.Times(n, func(i int) int { return i % 16 })
	}},
	{"organ-pipe", func(_ *rand.Rand, n int) []int {
		return lo.Times(n, func(i int) int { return min(i, n-i) })
	}},
}

// distinctInts returns n distinct values in random order.
func distinctInts(rng *rand.Rand, n int) []int {
	data := lo.Map(lo.Range(n), func(v, _ int) int { return 3*v - n })
	rng.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
	return data
}

// checkSorted verifies the sort postcondition: got is ordered and is a
// permutation of input.
func checkSorted(t *testing.T, input, got []int) {
	t.Helper()
	if !IsSorted(got, intCmp) {
		t.Fatalf("not sorted: %v", got)
	}
	want := slices.Clone(input)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("not a permutation of the input:\n got  %v\n want %v", got, want)
	}
}
