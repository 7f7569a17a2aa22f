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

package sorting

import (
	"slices"

	"github.com/ajroetker/go-paxsort/passenger"
)

// Func is the signature shared by every algorithm in this package.
type Func func(data []passenger.Passenger)

// Selection sorts data in-place using selection sort.
// For each position it finds the minimum of the unsorted suffix and swaps
// it into place.
func Selection(data []passenger.Passenger) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[j].Less(data[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			data[i], data[minIdx] = data[minIdx], data[i]
		}
	}
}

// Insertion sorts data in-place using insertion sort.
func Insertion(data []passenger.Passenger) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j].Greater(key) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// Reference sorts data with the standard library's general-purpose sort.
func Reference(data []passenger.Passenger) {
	slices.SortFunc(data, passenger.Compare)
}

// IsSorted reports whether data is non-decreasing under passenger.Compare.
func IsSorted(data []passenger.Passenger) bool {
	for i := 1; i < len(data); i++ {
		if data[i].Less(data[i-1]) {
			return false
		}
	}
	return true
}
