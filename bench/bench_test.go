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

package bench

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-paxsort/dataset"
	"github.com/ajroetker/go-paxsort/passenger"
	"github.com/ajroetker/go-paxsort/sorting"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func TestPrefix(t *testing.T) {
	data := dataset.Generate(10, 1)

	got, err := Prefix(data, 4)
	require.NoError(t, err)
	if diff := cmp.Diff(data[:4], got); diff != "" {
		t.Errorf("Prefix(data, 4) mismatch (-want +got):\n%s", diff)
	}

	// Appending to a prefix must not overwrite the dataset.
	next := data[4]
	_ = append(got, passenger.Passenger{FullName: "intruder"})
	if data[4] != next {
		t.Errorf("append to prefix overwrote data[4]")
	}

	all, err := Prefix(data, 10)
	require.NoError(t, err)
	require.Len(t, all, 10)

	_, err = Prefix(data, 11)
	require.ErrorIs(t, err, ErrSizeOutOfRange)

	_, err = Prefix(data, -1)
	require.Error(t, err)
}

func TestSortedPath(t *testing.T) {
	if got, want := SortedPath("out", "qs", 50000), filepath.Join("out", "qs_50000.csv"); got != want {
		t.Errorf("SortedPath() = %q, want %q", got, want)
	}
}

func TestDefaultAlgorithms(t *testing.T) {
	algs := DefaultAlgorithms(nil)
	var names, codes []string
	for _, a := range algs {
		names = append(names, a.Name)
		codes = append(codes, a.Code)
		require.NotNil(t, a.Sort, "algorithm %s", a.Name)
	}
	if diff := cmp.Diff([]string{"SelectionSort", "InsertionSort", "QuickSort", "StdSort"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ss", "is", "qs", ""}, codes); diff != "" {
		t.Errorf("codes mismatch (-want +got):\n%s", diff)
	}

	called := false
	custom := DefaultAlgorithms(func(data []passenger.Passenger) { called = true })
	custom[2].Sort(nil)
	if !called {
		t.Errorf("DefaultAlgorithms(quick) did not use quick for the QuickSort column")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "sorted")
	require.NoError(t, os.Mkdir(outDir, 0o755))
	timingsPath := filepath.Join(dir, "timings.csv")

	data := dataset.Generate(300, 5)
	before := slices.Clone(data)
	sizes := []int{10, 50, 300}

	report, err := Run(data, Config{
		Sizes:       sizes,
		OutputDir:   outDir,
		TimingsPath: timingsPath,
		Logger:      quietLogger(),
	})
	require.NoError(t, err)
	require.Empty(t, report.SaveErrors)
	require.Len(t, report.Results, len(sizes))

	if diff := cmp.Diff(before, data); diff != "" {
		t.Errorf("Run modified the dataset (-before +after):\n%s", diff)
	}

	lines := readLines(t, timingsPath)
	require.Len(t, lines, 1+len(sizes))
	if want := "Size,SelectionSort,InsertionSort,QuickSort,StdSort"; lines[0] != want {
		t.Errorf("timing header = %q, want %q", lines[0], want)
	}
	for i, size := range sizes {
		fields := strings.Split(lines[i+1], ",")
		require.Len(t, fields, 5, "row %q", lines[i+1])
		if fields[0] != strconv.Itoa(size) {
			t.Errorf("row %d size = %s, want %d", i, fields[0], size)
		}
		for _, f := range fields[1:] {
			ms, err := strconv.ParseInt(f, 10, 64)
			require.NoError(t, err)
			require.GreaterOrEqual(t, ms, int64(0))
		}
		require.Equal(t, size, report.Results[i].Size)
		require.Len(t, report.Results[i].Durations, 4)
	}

	for _, size := range sizes {
		want := slices.Clone(data[:size])
		sorting.Reference(want)
		for _, code := range []string{"ss", "is", "qs"} {
			got, err := dataset.Load(SortedPath(outDir, code, size))
			require.NoError(t, err)
			require.True(t, sorting.IsSorted(got), "%s_%d not sorted", code, size)
			require.ElementsMatch(t, want, got, "%s_%d not a permutation of the prefix", code, size)
		}
	}

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 3*len(sizes), "only ss, is and qs outputs are saved")
}

func TestRunSizeOutOfRange(t *testing.T) {
	dir := t.TempDir()
	timingsPath := filepath.Join(dir, "timings.csv")

	_, err := Run(dataset.Generate(20, 1), Config{
		Sizes:       []int{10, 21},
		OutputDir:   dir,
		TimingsPath: timingsPath,
		Logger:      quietLogger(),
	})
	require.ErrorIs(t, err, ErrSizeOutOfRange)

	_, statErr := os.Stat(timingsPath)
	require.ErrorIs(t, statErr, os.ErrNotExist, "no output before sizes are validated")
}

func TestRunInvalidSize(t *testing.T) {
	_, err := Run(dataset.Generate(20, 1), Config{
		Sizes:       []int{10, 0},
		TimingsPath: filepath.Join(t.TempDir(), "timings.csv"),
		Logger:      quietLogger(),
	})
	require.ErrorContains(t, err, "must be positive")
}

func TestRunMissingOutputDir(t *testing.T) {
	dir := t.TempDir()
	timingsPath := filepath.Join(dir, "timings.csv")

	report, err := Run(dataset.Generate(30, 2), Config{
		Sizes:       []int{5, 30},
		OutputDir:   filepath.Join(dir, "missing"),
		TimingsPath: timingsPath,
		Logger:      quietLogger(),
	})
	require.NoError(t, err, "save failures must not abort the run")
	require.Len(t, report.SaveErrors, 6)
	for _, e := range report.SaveErrors {
		require.ErrorIs(t, e, os.ErrNotExist)
	}
	require.Len(t, readLines(t, timingsPath), 3)
}

func TestRunTimingLogUnwritable(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(dataset.Generate(10, 3), Config{
		Sizes:       []int{5},
		OutputDir:   dir,
		TimingsPath: filepath.Join(dir, "no", "such", "timings.csv"),
		Logger:      quietLogger(),
	})
	require.ErrorContains(t, err, "create timing log")
}

func TestRunCustomAlgorithms(t *testing.T) {
	dir := t.TempDir()
	timingsPath := filepath.Join(dir, "timings.csv")
	var seen []int

	_, err := Run(dataset.Generate(40, 4), Config{
		Sizes:       []int{40, 8},
		OutputDir:   dir,
		TimingsPath: timingsPath,
		Algorithms: []Algorithm{
			{Name: "Recorder", Sort: func(data []passenger.Passenger) { seen = append(seen, len(data)) }},
			{Name: "InPlace", Code: "qi", Sort: sorting.QuickInPlace},
		},
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	if diff := cmp.Diff([]int{40, 8}, seen); diff != "" {
		t.Errorf("sizes seen by algorithm (-want +got):\n%s", diff)
	}
	lines := readLines(t, timingsPath)
	require.Equal(t, "Size,Recorder,InPlace", lines[0])
	for _, size := range []int{40, 8} {
		_, err := os.Stat(SortedPath(dir, "qi", size))
		require.NoError(t, err)
	}
}

func TestRunLogsEverySize(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dir := t.TempDir()

	_, err := Run(dataset.Generate(12, 6), Config{
		Sizes:       []int{4, 12},
		OutputDir:   dir,
		TimingsPath: filepath.Join(dir, "timings.csv"),
		Logger:      logger,
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "benchmark starting")
	require.Equal(t, 2, strings.Count(out, "size benchmarked"))
	require.Equal(t, 6, strings.Count(out, "sorted output saved"))
	require.Contains(t, out, "SelectionSort_ms=")
}

func TestTimingLog(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewTimingLog(&buf, []string{"A", "B", "C", "D"})
	require.NoError(t, err)

	require.NoError(t, l.Append(Result{
		Size:      100,
		Durations: []time.Duration{1500 * time.Microsecond, 2 * time.Second, 0, 999 * time.Microsecond},
	}))
	require.NoError(t, l.Append(Result{
		Size:      7,
		Durations: []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond, time.Millisecond},
	}))

	want := "Size,A,B,C,D\n100,1,2000,0,0\n7,1,1,1,1\n"
	if got := buf.String(); got != want {
		t.Errorf("timing log = %q, want %q", got, want)
	}

	err = l.Append(Result{Size: 1, Durations: []time.Duration{0}})
	require.ErrorContains(t, err, "want 4")
}

func TestReadTimingLog(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewTimingLog(&buf, []string{"A", "B"})
	require.NoError(t, err)
	written := []Result{
		{Size: 10, Durations: []time.Duration{3 * time.Millisecond, 0}},
		{Size: 20, Durations: []time.Duration{12 * time.Millisecond, 1 * time.Millisecond}},
	}
	for _, r := range written {
		require.NoError(t, l.Append(r))
	}

	names, results, err := ReadTimingLog(&buf)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, names)
	if diff := cmp.Diff(written, results); diff != "" {
		t.Errorf("ReadTimingLog() mismatch (-want +got):\n%s", diff)
	}

	names, results, err = ReadTimingLog(strings.NewReader(" Size , A \r\n\n5, 7 \n"))
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, names)
	require.Equal(t, []Result{{Size: 5, Durations: []time.Duration{7 * time.Millisecond}}}, results)
}

func TestReadTimingLogMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"empty":      "",
		"no columns": "Size\n1\n",
		"bad header": "N,A\n1,2\n",
		"short row":  "Size,A,B\n1,2\n",
		"bad size":   "Size,A\nten,2\n",
		"bad millis": "Size,A\n10,2.5\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := ReadTimingLog(strings.NewReader(in))
			require.ErrorIs(t, err, ErrMalformedTimingLog)
		})
	}
}

func TestLoadTimingLog(t *testing.T) {
	dir := t.TempDir()
	_, _, err := LoadTimingLog(filepath.Join(dir, "absent.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	data := dataset.Generate(30, 4)
	path := filepath.Join(dir, "timings.csv")
	report, err := Run(data, Config{
		Sizes:       []int{10, 30},
		OutputDir:   dir,
		TimingsPath: path,
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	names, results, err := LoadTimingLog(path)
	require.NoError(t, err)
	require.Equal(t, []string{"SelectionSort", "InsertionSort", "QuickSort", "StdSort"}, names)
	require.Len(t, results, len(report.Results))
	for i, r := range results {
		require.Equal(t, report.Results[i].Size, r.Size)
		require.Equal(t, report.Results[i].Millis(), r.Millis())
	}
}
