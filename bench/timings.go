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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ErrMalformedTimingLog is returned when a timing log does not have the
// layout written by TimingLog.
var ErrMalformedTimingLog = errors.New("malformed timing log")

// Result holds the measured durations for one benchmark size, in the same
// order as the algorithms that produced them.
type Result struct {
	Size      int
	Durations []time.Duration
}

// Millis returns the durations truncated to whole milliseconds.
func (r Result) Millis() []int64 {
	return lo.Map(r.Durations, func(d time.Duration, _ int) int64 {
		return d.Milliseconds()
	})
}

// TimingLog writes one comma-separated row per Result, after a header naming
// the columns. Every row is flushed as soon as it is appended.
type TimingLog struct {
	w       *bufio.Writer
	columns int
}

// NewTimingLog writes the header "Size,<names...>" to w.
func NewTimingLog(w io.Writer, names []string) (*TimingLog, error) {
	l := &TimingLog{w: bufio.NewWriter(w), columns: len(names)}
	l.w.WriteString("Size")
	for _, name := range names {
		l.w.WriteByte(',')
		l.w.WriteString(name)
	}
	l.w.WriteByte('\n')
	if err := l.w.Flush(); err != nil {
		return nil, fmt.Errorf("write timing header: %w", err)
	}
	return l, nil
}

// Append writes r as one row of millisecond durations.
func (l *TimingLog) Append(r Result) error {
	if len(r.Durations) != l.columns {
		return fmt.Errorf("timing row for size %d has %d durations, want %d", r.Size, len(r.Durations), l.columns)
	}
	fields := lo.Map(r.Millis(), func(ms int64, _ int) string {
		return strconv.FormatInt(ms, 10)
	})
	l.w.WriteString(strconv.Itoa(r.Size))
	if len(fields) > 0 {
		l.w.WriteByte(',')
		l.w.WriteString(strings.Join(fields, ","))
	}
	l.w.WriteByte('\n')
	if err := l.w.Flush(); err != nil {
		return fmt.Errorf("write timing row for size %d: %w", r.Size, err)
	}
	return nil
}

// LoadTimingLog reads a timing log file written by TimingLog.
func LoadTimingLog(path string) (names []string, results []Result, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open timing log: %w", err)
	}
	defer f.Close()

	names, results, err = ReadTimingLog(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return names, results, nil
}

// ReadTimingLog parses the header and rows of a timing log. names are the
// algorithm columns after Size, and every Result has one duration per name.
// Column names and values are trimmed of surrounding whitespace and blank
// lines are skipped.
func ReadTimingLog(r io.Reader) (names []string, results []Result, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := lo.Map(strings.Split(text, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
		if names == nil {
			if fields[0] != "Size" || len(fields) < 2 {
				return nil, nil, fmt.Errorf("%w: line %d: header %q", ErrMalformedTimingLog, line, text)
			}
			names = fields[1:]
			continue
		}
		if len(fields) != len(names)+1 {
			return nil, nil, fmt.Errorf("%w: line %d: %d fields, want %d", ErrMalformedTimingLog, line, len(fields), len(names)+1)
		}
		size, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: size: %w", ErrMalformedTimingLog, line, err)
		}
		result := Result{Size: size, Durations: make([]time.Duration, len(names))}
		for i, field := range fields[1:] {
			ms, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %s: %w", ErrMalformedTimingLog, line, names[i], err)
			}
			result.Durations[i] = time.Duration(ms) * time.Millisecond
		}
		results = append(results, result)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read timing log: %w", err)
	}
	if names == nil {
		return nil, nil, fmt.Errorf("%w: no header", ErrMalformedTimingLog)
	}
	return names, results, nil
}
