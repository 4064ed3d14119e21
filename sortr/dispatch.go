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
	"os"
	"strconv"
)

// Strategy identifies the implementation used by Sort.
type Strategy int

const (
	// StrategyFallback is the self-contained quicksort in SortSimple.
	StrategyFallback Strategy = iota

	// StrategyNative delegates to the standard library's slices.SortFunc.
	StrategyNative
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyFallback:
		return "fallback"
	case StrategyNative:
		return "native"
	default:
		return "unknown"
	}
}

// currentStrategy is the strategy selected for this process.
// Set by init().
var currentStrategy Strategy

func init() {
	currentStrategy = selectStrategy(nativeAvailable, NoNativeEnv())
}

func selectStrategy(native, disabled bool) Strategy {
	if native && !disabled {
		return StrategyNative
	}
	return StrategyFallback
}

// CurrentStrategy returns the strategy Sort dispatches to.
func CurrentStrategy() Strategy {
	return currentStrategy
}

// CurrentName returns a human-readable name for the current strategy.
// For example: "native", "fallback".
func CurrentName() string {
	return currentStrategy.String()
}

// NativeAvailable reports whether the native strategy was compiled in.
// It is false when building with the sortr_purego tag.
func NativeAvailable() bool {
	return nativeAvailable
}

// NoNativeEnv checks if the SORTR_NO_NATIVE environment variable is set.
// When set, Sort uses the fallback regardless of what was compiled in.
// This is useful for testing and debugging.
func NoNativeEnv() bool {
	val := os.Getenv("SORTR_NO_NATIVE")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
