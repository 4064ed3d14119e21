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
	"fmt"
	"runtime"
	"strings"

	"github.com/ajroetker/go-sortr/sortr"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the selected strategy and platform details",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "strategy:         %s\n", sortr.CurrentName())
			fmt.Fprintf(out, "native available: %v\n", sortr.NativeAvailable())
			fmt.Fprintf(out, "SORTR_NO_NATIVE:  %v\n", sortr.NoNativeEnv())
			fmt.Fprintf(out, "platform:         %s/%s %s\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
			fmt.Fprintf(out, "cpu features:     %s\n", cpuFeatures())
		},
	}
}

// cpuFeatures lists the CPU extensions relevant to the standard library's
// sort and compare routines on this architecture.
func cpuFeatures() string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse4.2", cpu.X86.HasSSE42)
		add("popcnt", cpu.X86.HasPOPCNT)
		add("bmi2", cpu.X86.HasBMI2)
		add("avx2", cpu.X86.HasAVX2)
		add("avx512f", cpu.X86.HasAVX512F)
		add("erms", cpu.X86.HasERMS)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("atomics", cpu.ARM64.HasATOMICS)
		add("sve", cpu.ARM64.HasSVE)
	}

	if len(features) == 0 {
		return "none detected"
	}
	return strings.Join(features, " ")
}
