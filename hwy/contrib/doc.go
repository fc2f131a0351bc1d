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

// Package contrib holds the numerical packages built on the hwy lane layer.
//
// # Subpackages
//
//   - precision: build-tag selected working precisions and their traits
//   - ieee: exponent and mantissa decomposition of floating values
//   - poly: Horner and rational evaluators
//   - math: exp, log, trigonometric, hyperbolic and error functions
//   - vec: element-wise arithmetic and reductions over slices
//   - solve: dense, tridiagonal and pentadiagonal linear systems
//   - integral: Gauss-Legendre quadrature
//   - flux: slope limiters for flux-limited schemes
//   - regression: least-squares fits
//   - spline: cubic spline interpolation
//   - rootfind: bracketing, bisection and range boundaries
//   - farray: dynamically sized float arrays
//   - sort: descending index sorts
//   - workerpool: a fixed pool of goroutines for data-parallel loops
//
// # Example
//
//	import (
//	    "github.com/go-jbm/jbm/hwy/contrib/math"
//	)
//
//	func Softplus(input, output []float64) {
//	    math.ExpSlice(input, output)
//	    for i := range output {
//	        output[i] = math.Log(1 + output[i])
//	    }
//	}
package contrib
