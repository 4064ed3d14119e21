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

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var errUnknownPattern = errors.New("unknown pattern")

type generator func(rng *rand.Rand, n int) []int

var generators = map[string]generator{
	"random": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return rng.Int() })
	},
	"sorted": func(_ *rand.Rand, n int) []int {
		return lo.Range(n)
	},
	"reverse": func(_ *rand.Rand, n int) []int {
		return lo.RangeWithSteps(n, 0, -1)
	},
	"equal": func(_ *rand.Rand, n int) []int {
		return make([]int, n)
	},
	"few-unique": func(rng *rand.Rand, n int) []int {
		return lo.Times(n, func(int) int { return rng.Intn(16) })
	},
	"organ-pipe": func(_ *rand.Rand, n int) []int {
		return lo.Times(n, func(i int) int { return min(i, n-i) })
	},
}

func patternNames() []string {
	names := lo.Keys(generators)
	slices.Sort(names)
	return names
}

// parsePatterns resolves a list of pattern names, accepting "all".
func parsePatterns(names []string) ([]string, error) {
	if slices.Contains(names, "all") {
		return patternNames(), nil
	}
	for _, name := range names {
		if _, ok := generators[name]; !ok {
			return nil, fmt.Errorf("%w %q (want one of: %s)", errUnknownPattern, name, strings.Join(patternNames(), ", "))
		}
	}
	return lo.Uniq(names), nil
}
