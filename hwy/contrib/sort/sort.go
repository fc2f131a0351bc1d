// Copyright 2025 go-highway Authors
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

package sort

import "github.com/go-jbm/jbm/hwy"

// Thresholds for the automatic choice made by Index.
const (
	// interchangeThreshold: use IndexInterchange for this many elements or fewer.
	interchangeThreshold = 8

	// insertionThreshold: use IndexInsertion for this many elements or fewer.
	insertionThreshold = 64
)

// Index returns the descending permutation of data using the algorithm
// best suited to its length.
func Index[T hwy.Floats](data []T) []int {
	switch n := len(data); {
	case n <= interchangeThreshold:
		return IndexInterchange(data)
	case n <= insertionThreshold:
		return IndexInsertion(data)
	}
	return IndexFlash(data)
}

// before reports whether element i precedes element j: a larger value
// first, numbers before NaN, then the lower index.
func before[T hwy.Floats](data []T, i, j int) bool {
	a, b := data[i], data[j]
	switch {
	case a > b:
		return true
	case a < b:
		return false
	}
	if an, bn := a != a, b != b; an != bn {
		return bn
	}
	return i < j
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// IndexInsertion returns the descending permutation of data by insertion
// sort.
func IndexInsertion[T hwy.Floats](data []T) []int {
	idx := identity(len(data))
	insertion(data, idx)
	return idx
}

// insertion orders the indices idx in place.
func insertion[T hwy.Floats](data []T, idx []int) {
	for i := 1; i < len(idx); i++ {
		key := idx[i]
		j := i - 1
		for j >= 0 && before(data, key, idx[j]) {
			idx[j+1] = idx[j]
			j--
		}
		idx[j+1] = key
	}
}

// IndexInterchange returns the descending permutation of data by repeated
// selection of the leading remaining element.
func IndexInterchange[T hwy.Floats](data []T) []int {
	idx := identity(len(data))
	for i := range len(idx) - 1 {
		best := i
		for j := i + 1; j < len(idx); j++ {
			if before(data, idx[j], idx[best]) {
				best = j
			}
		}
		idx[i], idx[best] = idx[best], idx[i]
	}
	return idx
}

// IsDescending reports whether data is non-increasing. A NaN anywhere
// makes it false.
func IsDescending[T hwy.Floats](data []T) bool {
	n := len(data)
	lanes := hwy.MaxLanes[T]()
	i := 0

	// Compare each lane group with the group one element further on.
	for ; i+lanes < n; i += lanes {
		v1 := hwy.Load(data[i:])
		v2 := hwy.Load(data[i+1:])
		if !hwy.GreaterEqual(v1, v2).AllTrue() {
			return false
		}
	}

	for ; i < n-1; i++ {
		if !(data[i] >= data[i+1]) {
			return false
		}
	}
	return n != 1 || data[0] == data[0]
}

// Gather returns data reordered by idx.
func Gather[T hwy.Floats](data []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = data[j]
	}
	return out
}
