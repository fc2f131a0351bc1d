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

// Package vec provides slice-level arithmetic and reductions written on
// lane groups.
//
// The in-place forms (Add, Sub, Mul, Div, Scale, AddConst) modify dst;
// MulConstAdd accumulates a scaled slice into dst. When the slices have
// different lengths the shorter length is used.
package vec

import "github.com/go-jbm/jbm/hwy"

// binary applies op lane group by lane group to dst and s, storing to dst.
func binary[T hwy.Floats](dst, s []T, op func(a, b hwy.Vec[T]) hwy.Vec[T], scalar func(a, b T) T) {
	n := min(len(dst), len(s))
	lanes := hwy.MaxLanes[T]()
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		hwy.Store(op(hwy.Load(dst[i:]), hwy.Load(s[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = scalar(dst[i], s[i])
	}
}

// Add performs dst[i] += s[i].
func Add[T hwy.Floats](dst, s []T) {
	binary(dst, s, hwy.Add[T], func(a, b T) T { return a + b })
}

// Sub performs dst[i] -= s[i].
func Sub[T hwy.Floats](dst, s []T) {
	binary(dst, s, hwy.Sub[T], func(a, b T) T { return a - b })
}

// Mul performs dst[i] *= s[i].
func Mul[T hwy.Floats](dst, s []T) {
	binary(dst, s, hwy.Mul[T], func(a, b T) T { return a * b })
}

// Div performs dst[i] /= s[i].
func Div[T hwy.Floats](dst, s []T) {
	binary(dst, s, hwy.Div[T], func(a, b T) T { return a / b })
}

// Scale performs dst[i] *= c.
func Scale[T hwy.Floats](c T, dst []T) {
	lanes := hwy.MaxLanes[T]()
	cv := hwy.Set(c)
	var i int
	for i = 0; i+lanes <= len(dst); i += lanes {
		hwy.Store(hwy.Mul(hwy.Load(dst[i:]), cv), dst[i:])
	}
	for ; i < len(dst); i++ {
		dst[i] *= c
	}
}

// AddConst performs dst[i] += c.
func AddConst[T hwy.Floats](c T, dst []T) {
	lanes := hwy.MaxLanes[T]()
	cv := hwy.Set(c)
	var i int
	for i = 0; i+lanes <= len(dst); i += lanes {
		hwy.Store(hwy.Add(hwy.Load(dst[i:]), cv), dst[i:])
	}
	for ; i < len(dst); i++ {
		dst[i] += c
	}
}

// MulConstAdd performs dst[i] += a * x[i] with a fused multiply-add.
func MulConstAdd[T hwy.Floats](dst []T, a T, x []T) {
	n := min(len(dst), len(x))
	lanes := hwy.MaxLanes[T]()
	av := hwy.Set(a)
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		hwy.Store(hwy.MulAdd(av, hwy.Load(x[i:]), hwy.Load(dst[i:])), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] += a * x[i]
	}
}
