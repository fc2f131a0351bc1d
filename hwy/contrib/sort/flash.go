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

// flashClassSize is the mean number of elements per flash class.
const flashClassSize = 4

// IndexFlash returns the descending permutation of data.
//
// Elements are first distributed into value classes spanning equal parts
// of [min, max], highest class first and NaN in a class of its own, with
// a stable counting pass. Each class is then ordered by insertion when
// short and by merge sort otherwise. Data with an infinite range skips
// classification and is merge sorted as a whole.
func IndexFlash[T hwy.Floats](data []T) []int {
	n := len(data)
	idx := identity(n)
	if n < 2 {
		return idx
	}

	lo, hi, nans := finiteRange(data)
	span := hi - lo
	if nans == n || !(span > 0) || span-span != 0 {
		mergeSort(data, idx, make([]int, n))
		return idx
	}

	m := n/flashClassSize + 1
	class := classify(data, hi, T(m-1)/span, m)

	// Stable counting sort by class.
	start := make([]int, m+2)
	for _, k := range class {
		start[k+1]++
	}
	for k := 1; k < len(start); k++ {
		start[k] += start[k-1]
	}
	next := append([]int(nil), start...)
	for i, k := range class {
		idx[next[k]] = i
		next[k]++
	}

	buf := make([]int, n)
	for k := range m {
		seg := idx[start[k]:start[k+1]]
		if len(seg) <= insertionThreshold {
			insertion(data, seg)
		} else {
			mergeSort(data, seg, buf[:len(seg)])
		}
	}
	return idx
}

// finiteRange returns the extremes of the non-NaN values and the NaN count.
func finiteRange[T hwy.Floats](data []T) (lo, hi T, nans int) {
	first := true
	for _, v := range data {
		switch {
		case v != v:
			nans++
		case first:
			lo, hi, first = v, v, false
		case v < lo:
			lo = v
		case v > hi:
			hi = v
		}
	}
	return lo, hi, nans
}

// classify maps each value to its class: 0 for hi, m-1 for the minimum
// and m for NaN.
func classify[T hwy.Floats](data []T, hi, scale T, m int) []int {
	keys := make([]T, len(data))
	hwy.MapSlice(data, keys, hwy.MaxLanes[T](), func(v hwy.Vec[T]) hwy.Vec[T] {
		d := hwy.Sub(hwy.SetLike(v, hi), v)
		return hwy.Floor(hwy.Mul(d, hwy.SetLike(v, scale)))
	})
	class := make([]int, len(data))
	for i, k := range keys {
		switch {
		case data[i] != data[i]:
			class[i] = m
		case k <= 0:
			class[i] = 0
		default:
			class[i] = min(int(k), m-1)
		}
	}
	return class
}

// mergeSort orders idx by bottom-up merging through buf, which must be at
// least as long as idx.
func mergeSort[T hwy.Floats](data []T, idx, buf []int) {
	n := len(idx)
	if n < 2 {
		return
	}
	const run = 16
	for lo := 0; lo < n; lo += run {
		insertion(data, idx[lo:min(lo+run, n)])
	}
	src, dst := idx, buf[:n]
	for width := run; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid, hi := min(lo+width, n), min(lo+2*width, n)
			merge(data, src[lo:mid], src[mid:hi], dst[lo:hi])
		}
		src, dst = dst, src
	}
	if &src[0] != &idx[0] {
		copy(idx, src)
	}
}

func merge[T hwy.Floats](data []T, a, b, out []int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if before(data, b[j], a[i]) {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}
