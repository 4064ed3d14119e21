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

// Command sortrbench reports which sort strategy sortr selected on this
// platform and times both strategies on generated inputs.
//
// Usage:
//
//	sortrbench info
//	sortrbench run -n 1000000 --pattern random,sorted --trials 5
//	sortrbench sort --search 8 5 3 8 1 9 2
//
// SORTR_NO_NATIVE=1 forces the fallback strategy, as it does for any
// program using sortr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sortrbench:", err)
		os.Exit(1)
	}
}
