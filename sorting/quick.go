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

// Quick sorts data in-place using recursive quicksort.
//
// Each recursion level sorts a freshly allocated copy of its partition and
// copies the result back into data. See the package documentation for the
// memory cost of this.
func Quick(data []passenger.Passenger) {
	if len(data) <= 1 {
		return
	}

	i, j := partitionHoare(data)

	// data[:j+1] holds elements <= pivot, data[i:] elements >= pivot.
	if j > 0 {
		left := slices.Clone(data[:j+1])
		Quick(left)
		copy(data, left)
	}
	if i < len(data) {
		right := slices.Clone(data[i:])
		Quick(right)
		copy(data[i:], right)
	}
}

// QuickInPlace sorts data in-place with the same partition scheme as Quick,
// recursing on sub-slices of data instead of copies.
func QuickInPlace(data []passenger.Passenger) {
	if len(data) <= 1 {
		return
	}

	i, j := partitionHoare(data)

	if j > 0 {
		QuickInPlace(data[:j+1])
	}
	if i < len(data) {
		QuickInPlace(data[i:])
	}
}

// partitionHoare partitions data around its middle element. On return
// i > j, every element of data[:j+1] is <= pivot and every element of
// data[i:] is >= pivot. Elements strictly between j and i equal the pivot.
//
// len(data) must be at least 2.
func partitionHoare(data []passenger.Passenger) (i, j int) {
	pivot := data[len(data)>>1]
	i, j = 0, len(data)-1
	for i <= j {
		for data[i].Less(pivot) {
			i++
		}
		for data[j].Greater(pivot) {
			j--
		}
		if i <= j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
		}
	}
	return i, j
}
