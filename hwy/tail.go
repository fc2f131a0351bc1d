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

package hwy

// TailMask creates a mask of lanes lanes with the first count active.
// This is useful for handling the remainder of an array whose size is not a
// multiple of the lane-group width.
func TailMask[T Lanes](count, lanes int) Mask[T] {
	count = max(0, min(count, lanes))
	bits := make([]bool, lanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail walks size elements in groups of lanes.
//
// It calls:
//   - fullFn(offset) for each full group (offset is the starting index)
//   - tailFn(offset, count) once for the remainder if size is not a multiple of lanes
//
// Example:
//
//	hwy.ProcessWithTail(len(data), 4,
//	    func(offset int) {
//	        v := hwy.LoadN(data[offset:], 4)
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.LoadN(data[offset:offset+count], 4)
//	        hwy.Store(hwy.Add(v, v), output[offset:offset+count])
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes <= 0 {
		return
	}
	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}
	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}

// MapSlice applies a lane-group kernel to input in groups of lanes and
// stores the results to output. The final partial group is zero-padded and
// stored through a tail mask, so output past the input length is untouched.
func MapSlice[T Floats](input, output []T, lanes int, kernel func(Vec[T]) Vec[T]) {
	size := min(len(input), len(output))
	ProcessWithTail(size, lanes,
		func(offset int) {
			Store(kernel(LoadN(input[offset:offset+lanes], lanes)), output[offset:offset+lanes])
		},
		func(offset, count int) {
			BlendedStore(kernel(LoadN(input[offset:offset+count], lanes)), TailMask[T](count, lanes), output[offset:])
		},
	)
}

// MapSlice2 is MapSlice for two-argument kernels.
func MapSlice2[T Floats](a, b, output []T, lanes int, kernel func(Vec[T], Vec[T]) Vec[T]) {
	size := min(len(a), len(b), len(output))
	ProcessWithTail(size, lanes,
		func(offset int) {
			end := offset + lanes
			Store(kernel(LoadN(a[offset:end], lanes), LoadN(b[offset:end], lanes)), output[offset:end])
		},
		func(offset, count int) {
			end := offset + count
			BlendedStore(kernel(LoadN(a[offset:end], lanes), LoadN(b[offset:end], lanes)), TailMask[T](count, lanes), output[offset:])
		},
	)
}

// AlignedSize rounds up size to the next multiple of the vector width.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}
