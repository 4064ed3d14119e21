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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "fallback", StrategyFallback.String())
	assert.Equal(t, "native", StrategyNative.String())
	assert.Equal(t, "unknown", Strategy(42).String())
}

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		native, disabled bool
		want             Strategy
	}{
		{true, false, StrategyNative},
		{true, true, StrategyFallback},
		{false, false, StrategyFallback},
		{false, true, StrategyFallback},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, selectStrategy(tt.native, tt.disabled), "native=%v disabled=%v", tt.native, tt.disabled)
	}
}

func TestNoNativeEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}
	for _, tt := range tests {
		t.Run("SORTR_NO_NATIVE="+tt.val, func(t *testing.T) {
			t.Setenv("SORTR_NO_NATIVE", tt.val)
			assert.Equal(t, tt.want, NoNativeEnv())
		})
	}
}

func TestCurrentStrategy(t *testing.T) {
	t.Logf("strategy=%s native compiled in=%v", CurrentName(), NativeAvailable())
	if !NativeAvailable() || NoNativeEnv() {
		assert.Equal(t, StrategyFallback, CurrentStrategy())
	} else {
		assert.Equal(t, StrategyNative, CurrentStrategy())
	}
	assert.Equal(t, CurrentStrategy().String(), CurrentName())
}
