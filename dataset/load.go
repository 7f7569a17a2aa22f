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

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ajroetker/go-paxsort/passenger"
)

// Delimiter separates fields in a passenger file.
const Delimiter = ","

// Header is the first line of every file written by this package.
const Header = "ФИО пассажира,Номер каюты,Тип каюты,Порт назначения"

// Positional field indices within a row.
const (
	fieldName = iota
	fieldCabinNumber
	fieldCabinClass
	fieldPort
	numFields
)

// maxLineBytes bounds a single line; bufio.Scanner's 64 KiB default is too
// small for some exported spreadsheets.
const maxLineBytes = 1 << 20

var (
	// ErrEmpty is returned when a file has no data rows.
	ErrEmpty = errors.New("dataset has no records")

	// ErrMalformedRow is returned when a row's cabin number is not an integer.
	ErrMalformedRow = errors.New("malformed row")
)

// Load reads every passenger in the file at path, in file order.
func Load(path string) ([]passenger.Passenger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read parses a passenger file from r. The first line is the header and is
// ignored. Input starting with a UTF-16LE or UTF-16BE byte order mark is
// decoded to UTF-8 first, and a UTF-8 byte order mark is dropped; input with
// no byte order mark is read as UTF-8.
func Read(r io.Reader) ([]passenger.Passenger, error) {
	sc := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []passenger.Passenger
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return records, nil
}

// parseRow splits a line into its four positional fields. Fields past the
// fourth are dropped and missing trailing fields are left empty.
func parseRow(text string) (passenger.Passenger, error) {
	var fields [numFields]string
	copy(fields[:], strings.SplitN(text, Delimiter, numFields+1))

	cabin := strings.TrimSpace(fields[fieldCabinNumber])
	n, err := strconv.Atoi(cabin)
	if err != nil {
		return passenger.Passenger{}, fmt.Errorf("%w: cabin number %q: %w", ErrMalformedRow, cabin, err)
	}
	return passenger.Passenger{
		FullName:        fields[fieldName],
		CabinNumber:     n,
		CabinClass:      fields[fieldCabinClass],
		DestinationPort: fields[fieldPort],
	}, nil
}
