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

package vec

import "github.com/go-jbm/jbm/hwy"

// Sum returns the sum of v, 0 if v is empty.
func Sum[T hwy.Floats](v []T) T {
	lanes := hwy.MaxLanes[T]()
	sum := hwy.Zero[T]()
	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		sum = hwy.Add(sum, hwy.Load(v[i:]))
	}
	result := hwy.ReduceSum(sum)
	for ; i < len(v); i++ {
		result += v[i]
	}
	return result
}

// Dot returns the inner product of a and b over the shorter length.
func Dot[T hwy.Floats](a, b []T) T {
	n := min(len(a), len(b))
	lanes := hwy.MaxLanes[T]()
	sum := hwy.Zero[T]()
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		sum = hwy.MulAdd(hwy.Load(a[i:]), hwy.Load(b[i:]), sum)
	}
	result := hwy.ReduceSum(sum)
	for ; i < n; i++ {
		result += a[i] * b[i]
	}
	return result
}

// SquaredNorm returns Dot(v, v).
func SquaredNorm[T hwy.Floats](v []T) T {
	return Dot(v, v)
}

// Max returns the largest element of v. It panics if v is empty.
func Max[T hwy.Floats](v []T) T {
	if len(v) == 0 {
		panic("vec: Max called on empty slice")
	}
	_, hi := MinMax(v)
	return hi
}

// Min returns the smallest element of v. It panics if v is empty.
func Min[T hwy.Floats](v []T) T {
	if len(v) == 0 {
		panic("vec: Min called on empty slice")
	}
	lo, _ := MinMax(v)
	return lo
}

// MinMax returns the smallest and largest elements of v in one pass. It
// panics if v is empty.
func MinMax[T hwy.Floats](v []T) (lo, hi T) {
	if len(v) == 0 {
		panic("vec: MinMax called on empty slice")
	}
	lanes := hwy.MaxLanes[T]()
	if len(v) < lanes {
		lo, hi = v[0], v[0]
		for _, x := range v[1:] {
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
		return lo, hi
	}

	minVec := hwy.Load(v)
	maxVec := minVec
	var i int
	for i = lanes; i+lanes <= len(v); i += lanes {
		va := hwy.Load(v[i:])
		minVec = hwy.Min(minVec, va)
		maxVec = hwy.Max(maxVec, va)
	}
	lo, hi = hwy.ReduceMin(minVec), hwy.ReduceMax(maxVec)
	for ; i < len(v); i++ {
		if v[i] < lo {
			lo = v[i]
		}
		if v[i] > hi {
			hi = v[i]
		}
	}
	return lo, hi
}
