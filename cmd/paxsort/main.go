// Copyright 2025 go-paxsort Authors
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

// Command paxsort benchmarks sorting algorithms over a passenger dataset.
//
// Usage:
//
//	paxsort generate -n 100000 -o passengers.csv       # synthetic dataset
//	paxsort run                                        # default sizes and paths
//	paxsort run --sizes 100,1000 --quicksort inplace   # in-place quicksort column
//	paxsort plot -t timings.csv -o images              # linear and log charts
//
// run loads the dataset, times selection sort, insertion sort, quicksort and
// the standard library sort on each prefix size, appends one row per size to
// the timing log and writes the sorted files into the output directory,
// which must already exist. plot reads a timing log back and writes
// sort_plot_linear and sort_plot_log charts of milliseconds against size.
//
// Exit status is 1 when the dataset cannot be loaded and 2 for any other
// failure.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const (
	exitDataset = 1
	exitFailure = 2
)

// exitError carries a specific process exit status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

type globalOptions struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:           "paxsort",
		Short:         "Benchmark sorting algorithms over a passenger dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}
			g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRunCmd(g), newGenerateCmd(g), newPlotCmd(g))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
