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

import "math"

// This file provides the portable implementations of all lane operations.
// Binary operations produce as many lanes as the shorter operand.

// Load creates a vector by loading data from a slice. The vector has
// MaxLanes[T]() lanes, or len(src) if src is shorter.
func Load[T Lanes](src []T) Vec[T] {
	return LoadN(src, min(len(src), MaxLanes[T]()))
}

// LoadN creates a vector of exactly lanes lanes from src. Lanes past the end
// of src are zero.
func LoadN[T Lanes](src []T, lanes int) Vec[T] {
	data := make([]T, lanes)
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst, stopping at the end of dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all MaxLanes[T]() lanes set to value.
func Set[T Lanes](value T) Vec[T] {
	return SetN(value, MaxLanes[T]())
}

// SetN creates a vector of lanes lanes all set to value.
func SetN[T Lanes](value T, lanes int) Vec[T] {
	data := make([]T, lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// SetLike creates a vector with the lane count of v, all lanes set to value.
func SetLike[T Lanes](v Vec[T], value T) Vec[T] {
	return SetN(value, len(v.data))
}

// Zero creates a vector with all MaxLanes[T]() lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return ZeroN[T](MaxLanes[T]())
}

// ZeroN creates a vector of lanes zero lanes.
func ZeroN[T Lanes](lanes int) Vec[T] {
	return Vec[T]{data: make([]T, lanes)}
}

// Iota returns a vector with lane i holding i.
func Iota[T Lanes](lanes int) Vec[T] {
	data := make([]T, lanes)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// lanewise applies f to every lane of v.
func lanewise[T Lanes](v Vec[T], f func(T) T) Vec[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}
	return Vec[T]{data: out}
}

// zip applies f lane by lane to a and b.
func zip[T Lanes](a, b Vec[T], f func(x, y T) T) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data)))
	for i := range out {
		out[i] = f(a.data[i], b.data[i])
	}
	return Vec[T]{data: out}
}

func Add[T Lanes](a, b Vec[T]) Vec[T] { return zip(a, b, func(x, y T) T { return x + y }) }
func Sub[T Lanes](a, b Vec[T]) Vec[T] { return zip(a, b, func(x, y T) T { return x - y }) }
func Mul[T Lanes](a, b Vec[T]) Vec[T] { return zip(a, b, func(x, y T) T { return x * y }) }

// Div divides a by b lane by lane; division by zero follows IEEE 754.
func Div[T Floats](a, b Vec[T]) Vec[T] { return zip(a, b, func(x, y T) T { return x / y }) }

// Min and Max follow the builtins: a NaN lane in either operand yields NaN.
func Min[T Lanes](a, b Vec[T]) Vec[T] { return zip(a, b, func(x, y T) T { return min(x, y) }) }
func Max[T Lanes](a, b Vec[T]) Vec[T] { return zip(a, b, func(x, y T) T { return max(x, y) }) }

func Neg[T Lanes](v Vec[T]) Vec[T] { return lanewise(v, func(x T) T { return -x }) }

// Abs negates the negative lanes; -0 is left as it is.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return lanewise(v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return lanewise(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// FMA computes a*b + c per lane, rounded once in float64 and then to T.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	out := make([]T, min(len(a.data), len(b.data), len(c.data)))
	for i := range out {
		out[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return Vec[T]{data: out}
}

// MulAdd is FMA in the argument order of Horner steps: a*b + c.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] { return FMA(a, b, c) }

// NegMulAdd computes c - a*b.
func NegMulAdd[T Floats](a, b, c Vec[T]) Vec[T] { return FMA(Neg(a), b, c) }

// RoundToEven rounds half-way lanes to the even integer, the rounding the
// range reductions rely on.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	return lanewise(v, func(x T) T { return T(math.RoundToEven(float64(x))) })
}

// CopySign returns the magnitude of mag with the sign bit of sign.
func CopySign[T Floats](mag, sign Vec[T]) Vec[T] {
	return zip(mag, sign, func(x, y T) T { return T(math.Copysign(float64(x), float64(y))) })
}

func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMin and ReduceMax panic on a vector with no lanes.
func ReduceMin[T Lanes](v Vec[T]) T { return reduce(v, func(x, y T) T { return min(x, y) }) }
func ReduceMax[T Lanes](v Vec[T]) T { return reduce(v, func(x, y T) T { return max(x, y) }) }

func reduce[T Lanes](v Vec[T], f func(x, y T) T) T {
	m := v.data[0]
	for _, x := range v.data[1:] {
		m = f(m, x)
	}
	return m
}

func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = pred(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

func classify[T Floats](v Vec[T], pred func(float64) bool) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = pred(float64(x))
	}
	return Mask[T]{bits: bits}
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return classify(v, math.IsNaN)
}

// IsInf returns a mask indicating which lanes contain infinity.
// The sign parameter: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	return classify(v, func(x float64) bool { return math.IsInf(x, sign) })
}

// IsFinite returns a mask indicating which lanes contain finite values.
// A value is finite if it is neither NaN nor infinity.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	return classify(v, func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) })
}

// IsNegative returns a mask of lanes whose sign bit is set, including -0.
func IsNegative[T Floats](v Vec[T]) Mask[T] {
	return classify(v, math.Signbit)
}

// IfThenElse performs conditional selection.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(len(a.data), len(mask.bits))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	n := min(len(b.data), len(mask.bits))
	result := make([]T, n)
	for i := range n {
		if !mask.bits[i] {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}
