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

// Package sorting implements the benchmarked sorting algorithms over
// passenger records.
//
// # Algorithms
//
//   - Selection: O(n²) comparisons, at most n-1 swaps
//   - Insertion: O(n²) worst case, O(n) on sorted input
//   - Quick: Hoare partition around the middle element, recursing on copies
//     of each partition
//   - QuickInPlace: the same partition, recursing on sub-slices of one buffer
//   - Reference: slices.SortFunc, used as the baseline
//
// All of them sort in place, ascending by passenger.Compare, and treat empty
// and single-element slices as no-ops.
//
// # Quicksort Memory
//
// Quick allocates a fresh slice for every partition it recurses into and
// copies the sorted result back. Auxiliary memory is O(n log n) for balanced
// partitions and O(n²) when the middle element is repeatedly a poor pivot.
// There is no median-of-three or depth limit, so adversarial inputs degrade
// to quadratic time. QuickInPlace shares the time behaviour but needs only
// stack space.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-paxsort/sorting"
//
//	func SortCopy(records []passenger.Passenger) []passenger.Passenger {
//	    out := slices.Clone(records)
//	    sorting.Insertion(out)
//	    return out
//	}
package sorting
