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

// Package passenger defines the passenger record and the total order used by
// every sorting algorithm in this module.
//
// Records are ordered by cabin number, then destination port, then full name,
// all ascending. Strings compare byte-wise, which for UTF-8 text is the same
// as comparing code points.
//
// Only Compare inspects fields. Less, Greater, LessOrEqual and GreaterOrEqual
// are all derived from Less, so the four can never disagree with each other.
package passenger

import (
	"cmp"
	"strings"
)

// Passenger is a single passenger entry.
type Passenger struct {
	FullName        string
	CabinNumber     int
	CabinClass      string
	DestinationPort string
}

// Compare returns -1 if a sorts before b, +1 if a sorts after b and 0 if
// neither does. The result is suitable for slices.SortFunc.
func Compare(a, b Passenger) int {
	if c := cmp.Compare(a.CabinNumber, b.CabinNumber); c != 0 {
		return c
	}
	if c := strings.Compare(a.DestinationPort, b.DestinationPort); c != 0 {
		return c
	}
	return strings.Compare(a.FullName, b.FullName)
}

// Less reports whether p sorts strictly before other.
func (p Passenger) Less(other Passenger) bool {
	return Compare(p, other) < 0
}

// Greater reports whether p sorts strictly after other.
func (p Passenger) Greater(other Passenger) bool {
	return other.Less(p)
}

// LessOrEqual reports whether p does not sort after other.
func (p Passenger) LessOrEqual(other Passenger) bool {
	return !other.Less(p)
}

// GreaterOrEqual reports whether p does not sort before other.
func (p Passenger) GreaterOrEqual(other Passenger) bool {
	return !p.Less(other)
}
