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

// Package math provides transcendental functions computed from range
// reduction and fitted polynomial or rational approximants.
//
// Every function comes in four forms:
//
//	Exp2[T](x T) T                          scalar
//	Exp2Vec[T](x hwy.Vec[T]) hwy.Vec[T]     one lane group
//	Exp2Slice[T](input, output []T)         a slice, MaxLanes at a time
//	Exp2_F32x4(x [4]float32) [4]float32     fixed width arrays
//
// The fixed width forms exist for float32 x2, x4, x8, x16 and float64 x2,
// x4, x8. All forms of a function share one algorithm. Lanes holding NaN,
// infinities, zeros or out-of-range arguments get exactly the value the
// scalar form returns for them.
//
// # Exponential and logarithmic
//
//   - Exp2, Exp, Exp10, Expm1
//   - Log2, Log, Log10
//   - Pow
//
// The exponentials reduce x to n + f with integer n, approximate the
// fractional part with a rational function and scale by 2^n with
// ieee.Ldexp. Results below the smallest normal value flush to zero.
//
// # Trigonometric
//
//   - Sin, Cos, SinCos, Tan
//   - Atan, Asin, Acos, Atan2
//
// Sin, Cos and Tan reduce by multiples of pi/2 in three parts; accuracy is
// full for |x| below about 1e6 (float64) and 1e4 (float32).
//
// # Hyperbolic and error functions
//
//   - Sinh, Cosh, Tanh
//   - Erf, Erfc
package math

//go:generate go run ../../../cmd/polygen -mode widths -output widths_gen.go
