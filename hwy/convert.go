package hwy

import "math"

// This file provides lane conversions between floating values and the
// per-lane integer arrays used for binary exponents.

// ToInts converts each lane to an int, truncating toward zero. NaN and
// out-of-range lanes produce 0.
func ToInts[T Floats](v Vec[T]) []int {
	result := make([]int, len(v.data))
	for i, x := range v.data {
		f := float64(x)
		if math.IsNaN(f) || f >= math.MaxInt32 || f <= math.MinInt32 {
			continue
		}
		result[i] = int(f)
	}
	return result
}

// FromInts builds a vector with one lane per element of e.
func FromInts[T Floats](e []int) Vec[T] {
	result := make([]T, len(e))
	for i, x := range e {
		result[i] = T(x)
	}
	return Vec[T]{data: result}
}

// Round rounds each lane to the nearest integer, halves away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	return mapLanes(v, math.Round)
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	return mapLanes(v, math.Trunc)
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	return mapLanes(v, math.Ceil)
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return mapLanes(v, math.Floor)
}

func mapLanes[T Floats](v Vec[T], fn func(float64) float64) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(fn(float64(x)))
	}
	return Vec[T]{data: result}
}
