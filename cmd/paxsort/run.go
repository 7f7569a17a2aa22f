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

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-paxsort/bench"
	"github.com/ajroetker/go-paxsort/dataset"
	"github.com/ajroetker/go-paxsort/sorting"
)

// quicksortModes maps --quicksort values to the QuickSort column algorithm.
var quicksortModes = map[string]sorting.Func{
	"copy":    sorting.Quick,
	"inplace": sorting.QuickInPlace,
}

// quicksortFlag is a pflag.Value restricted to the keys of quicksortModes.
type quicksortFlag string

var _ pflag.Value = (*quicksortFlag)(nil)

func (q *quicksortFlag) String() string { return string(*q) }
func (q *quicksortFlag) Type() string   { return "mode" }

func (q *quicksortFlag) Set(s string) error {
	if _, ok := quicksortModes[s]; !ok {
		return fmt.Errorf("unknown quicksort mode %q (want copy or inplace)", s)
	}
	*q = quicksortFlag(s)
	return nil
}

type runOptions struct {
	input     string
	timings   string
	outputDir string
	sizes     []int
	quicksort quicksortFlag
}

func newRunCmd(g *globalOptions) *cobra.Command {
	opts := &runOptions{quicksort: "copy"}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time every algorithm on each dataset prefix and save the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, g, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "passengers.csv", "Passenger dataset to load")
	f.StringVarP(&opts.timings, "timings", "t", "timings.csv", "Timing log to write")
	f.StringVarP(&opts.outputDir, "output-dir", "o", "sorted", "Existing directory for sorted files")
	f.IntSliceVarP(&opts.sizes, "sizes", "s", slices.Clone(bench.DefaultSizes), "Comma-separated prefix sizes to benchmark")
	f.Var(&opts.quicksort, "quicksort", "QuickSort column variant: copy or inplace")
	return cmd
}

func runBenchmark(cmd *cobra.Command, g *globalOptions, opts *runOptions) error {
	data, err := dataset.Load(opts.input)
	if err != nil {
		return &exitError{code: exitDataset, err: fmt.Errorf("load dataset: %w", err)}
	}
	g.logger.Info("dataset loaded", "path", opts.input, "records", len(data))

	algs := bench.DefaultAlgorithms(quicksortModes[string(opts.quicksort)])
	report, err := bench.Run(data, bench.Config{
		Sizes:       opts.sizes,
		OutputDir:   opts.outputDir,
		TimingsPath: opts.timings,
		Algorithms:  algs,
		Logger:      g.logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%10s", "size")
	for _, a := range algs {
		fmt.Fprintf(out, " %15s", a.Name)
	}
	fmt.Fprintln(out)
	for _, r := range report.Results {
		fmt.Fprintf(out, "%10d", r.Size)
		for _, ms := range r.Millis() {
			fmt.Fprintf(out, " %13dms", ms)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Timings written to %s\n", opts.timings)
	if n := len(report.SaveErrors); n > 0 {
		fmt.Fprintf(out, "%d sorted file(s) could not be saved under %s:\n", n, opts.outputDir)
		for _, e := range report.SaveErrors {
			fmt.Fprintf(out, "  %v\n", e)
		}
	}
	return nil
}
