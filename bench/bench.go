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

// Package bench times the sorting algorithms over prefixes of a passenger
// dataset and records the results.
//
// For every configured size, Run takes the first size records of the
// dataset, gives each algorithm its own copy, and times it with the wall
// clock. One row of millisecond durations per size goes to the timing log,
// and the sorted copy of every algorithm with a Code is saved as
// <OutputDir>/<Code>_<size>.csv.
//
// Everything runs sequentially on the calling goroutine. The input dataset
// is never modified.
package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-paxsort/dataset"
	"github.com/ajroetker/go-paxsort/host"
	"github.com/ajroetker/go-paxsort/passenger"
	"github.com/ajroetker/go-paxsort/sorting"
)

// ErrSizeOutOfRange is returned when a benchmark size is larger than the
// dataset.
var ErrSizeOutOfRange = errors.New("benchmark size exceeds dataset")

// DefaultSizes are the prefix lengths benchmarked when Config.Sizes is empty.
var DefaultSizes = []int{100, 1000, 3000, 5000, 7000, 10000, 20000, 30000, 50000, 70000, 100000}

// Algorithm is one timed column of the benchmark.
type Algorithm struct {
	// Name is the timing log column header.
	Name string

	// Code prefixes the sorted output file name. Empty means the sorted
	// copy is timed but not saved.
	Code string

	Sort sorting.Func
}

// DefaultAlgorithms returns the four benchmarked algorithms in timing log
// order. quick fills the QuickSort column; nil selects sorting.Quick.
func DefaultAlgorithms(quick sorting.Func) []Algorithm {
	if quick == nil {
		quick = sorting.Quick
	}
	return []Algorithm{
		{Name: "SelectionSort", Code: "ss", Sort: sorting.Selection},
		{Name: "InsertionSort", Code: "is", Sort: sorting.Insertion},
		{Name: "QuickSort", Code: "qs", Sort: quick},
		{Name: "StdSort", Sort: sorting.Reference},
	}
}

// Config controls a benchmark run.
type Config struct {
	// Sizes are the prefix lengths to benchmark, in order.
	Sizes []int

	// OutputDir receives the sorted files. It must already exist.
	OutputDir string

	// TimingsPath is the timing log file. It is truncated if it exists.
	TimingsPath string

	// Algorithms defaults to DefaultAlgorithms(nil).
	Algorithms []Algorithm

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Report summarizes a completed run.
type Report struct {
	Results []Result

	// SaveErrors holds one error per sorted file that could not be written.
	// A failed save does not stop the run.
	SaveErrors []error
}

// Prefix returns the first size records of data. It returns
// ErrSizeOutOfRange rather than truncating when data is too short.
func Prefix(data []passenger.Passenger, size int) ([]passenger.Passenger, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative benchmark size %d", size)
	}
	if size > len(data) {
		return nil, fmt.Errorf("size %d, dataset has %d records: %w", size, len(data), ErrSizeOutOfRange)
	}
	return data[:size:size], nil
}

// SortedPath returns the file name used for an algorithm's sorted output.
func SortedPath(dir, code string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.csv", code, size))
}

// Run benchmarks every algorithm at every size. All sizes are checked
// against the dataset before any timing starts, so an out-of-range size
// produces no output at all.
func Run(data []passenger.Passenger, cfg Config) (report *Report, err error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	algs := cfg.Algorithms
	if len(algs) == 0 {
		algs = DefaultAlgorithms(nil)
	}
	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}

	if slices.ContainsFunc(sizes, func(n int) bool { return n <= 0 }) {
		return nil, fmt.Errorf("benchmark sizes must be positive: %v", sizes)
	}
	if largest := lo.Max(sizes); largest > len(data) {
		return nil, fmt.Errorf("size %d, dataset has %d records: %w", largest, len(data), ErrSizeOutOfRange)
	}

	f, err := os.Create(cfg.TimingsPath)
	if err != nil {
		return nil, fmt.Errorf("create timing log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close timing log: %w", cerr)
		}
	}()

	names := lo.Map(algs, func(a Algorithm, _ int) string { return a.Name })
	timings, err := NewTimingLog(f, names)
	if err != nil {
		return nil, err
	}

	logger.Info("benchmark starting",
		"host", host.Describe(),
		"records", len(data),
		"sizes", sizes,
		"algorithms", names)

	report = &Report{}
	for _, size := range sizes {
		prefix, err := Prefix(data, size)
		if err != nil {
			return nil, err
		}

		result := Result{Size: size, Durations: make([]time.Duration, len(algs))}
		sorted := make([][]passenger.Passenger, len(algs))
		for i, alg := range algs {
			work := slices.Clone(prefix)
			start := time.Now()
			alg.Sort(work)
			result.Durations[i] = time.Since(start)
			sorted[i] = work
		}

		if err := timings.Append(result); err != nil {
			return nil, err
		}
		report.Results = append(report.Results, result)

		attrs := []any{"size", size}
		for i, ms := range result.Millis() {
			attrs = append(attrs, names[i]+"_ms", ms)
		}
		logger.Info("size benchmarked", attrs...)

		for i, alg := range algs {
			if alg.Code == "" {
				continue
			}
			path := SortedPath(cfg.OutputDir, alg.Code, size)
			if err := dataset.Save(path, sorted[i]); err != nil {
				logger.Warn("sorted output not saved", "path", path, "err", err)
				report.SaveErrors = append(report.SaveErrors, err)
				continue
			}
			logger.Debug("sorted output saved", "path", path, "records", len(sorted[i]))
		}
	}
	return report, nil
}
