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
	"log/slog"
	"strconv"

	"github.com/ajroetker/go-sortr/sortr"
	"github.com/spf13/cobra"
)

var errInvalidValue = errors.New("invalid value")

func newSortCmd() *cobra.Command {
	var (
		search  []int
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "sort [flags] INT...",
		Short: "Sort integers given on the command line and optionally search the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseInts(args)
			if err != nil {
				return err
			}

			order := sortr.Natural[int]()
			if reverse {
				order = sortr.Reverse(order)
			}
			sortr.Sort(data, order)
			slog.Debug("sorted", "n", len(data), "strategy", sortr.CurrentName())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, data)
			for _, key := range search {
				if i, ok := sortr.Search(data, key, order); ok {
					fmt.Fprintf(out, "%d: found at %d\n", key, i)
				} else {
					fmt.Fprintf(out, "%d: not found\n", key)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&search, "search", "s", nil, "keys to look up in the sorted result")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "sort in descending order")
	return cmd
}

func parseInts(args []string) ([]int, error) {
	data := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errInvalidValue, arg, err)
		}
		data[i] = v
	}
	return data, nil
}
