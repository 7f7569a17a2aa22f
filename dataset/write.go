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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajroetker/go-paxsort/passenger"
)

// Save writes records to a new file at path, replacing any existing file.
// The parent directory must already exist.
func Save(path string, records []passenger.Passenger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := Write(f, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Write writes the Header line followed by one line per record.
func Write(w io.Writer, records []passenger.Passenger) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(Header)
	bw.WriteByte('\n')
	for _, p := range records {
		bw.WriteString(p.FullName)
		bw.WriteString(Delimiter)
		bw.WriteString(strconv.Itoa(p.CabinNumber))
		bw.WriteString(Delimiter)
		bw.WriteString(p.CabinClass)
		bw.WriteString(Delimiter)
		bw.WriteString(p.DestinationPort)
		bw.WriteByte('\n')
	}
	// bufio.Writer latches the first error, so Flush reports any failed write.
	return bw.Flush()
}
