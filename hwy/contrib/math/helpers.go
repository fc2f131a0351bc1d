package math

import (
	stdmath "math"

	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// coeffs returns the table matching the width of T. float32 and float64
// use the tables directly; other named float types get a converted copy.
func coeffs[T hwy.Floats](c32 []float32, c64 []float64) []T {
	if precision.Is32[T]() {
		if p, ok := any(c32).([]T); ok {
			return p
		}
		return convert[T](c32)
	}
	if p, ok := any(c64).([]T); ok {
		return p
	}
	return convert[T](c64)
}

func convert[T, S hwy.Floats](s []S) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = T(v)
	}
	return out
}

// pick returns c32 or c64 by the width of T.
func pick[T hwy.Floats](c32 float32, c64 float64) T {
	if precision.Is32[T]() {
		return T(c32)
	}
	return T(c64)
}

func isNaN[T hwy.Floats](x T) bool { return x != x }

func isInf[T hwy.Floats](x T, sign int) bool {
	return stdmath.IsInf(float64(x), sign)
}

func inf[T hwy.Floats](sign int) T { return T(stdmath.Inf(sign)) }

func nan[T hwy.Floats]() T { return T(stdmath.NaN()) }

func abs[T hwy.Floats](x T) T { return T(stdmath.Abs(float64(x))) }

func copysign[T hwy.Floats](x, s T) T {
	return T(stdmath.Copysign(float64(x), float64(s)))
}

func signbit[T hwy.Floats](x T) bool { return stdmath.Signbit(float64(x)) }

func sqrt[T hwy.Floats](x T) T { return T(stdmath.Sqrt(float64(x))) }

func roundToEven[T hwy.Floats](x T) T { return T(stdmath.RoundToEven(float64(x))) }

// fixLanes replaces the lanes of r selected by mask with fn of the matching
// lane of x.
func fixLanes[T hwy.Floats](r, x hwy.Vec[T], mask hwy.Mask[T], fn func(T) T) hwy.Vec[T] {
	if !mask.AnyTrue() {
		return r
	}
	out := make([]T, r.NumLanes())
	for i := range out {
		if mask.GetBit(i) {
			out[i] = fn(x.Lane(i))
		} else {
			out[i] = r.Lane(i)
		}
	}
	return hwy.LoadN(out, len(out))
}

// fixLanes2 is fixLanes for two-argument functions.
func fixLanes2[T hwy.Floats](r, a, b hwy.Vec[T], mask hwy.Mask[T], fn func(T, T) T) hwy.Vec[T] {
	if !mask.AnyTrue() {
		return r
	}
	out := make([]T, r.NumLanes())
	for i := range out {
		if mask.GetBit(i) {
			out[i] = fn(a.Lane(i), b.Lane(i))
		} else {
			out[i] = r.Lane(i)
		}
	}
	return hwy.LoadN(out, len(out))
}

// nonFinite selects NaN and infinite lanes.
func nonFinite[T hwy.Floats](x hwy.Vec[T]) hwy.Mask[T] {
	return hwy.MaskNot(hwy.IsFinite(x))
}

// isZero selects ±0 lanes.
func isZero[T hwy.Floats](x hwy.Vec[T]) hwy.Mask[T] {
	return hwy.Equal(x, hwy.SetLike(x, 0))
}

// laneBits builds a mask with lane i set when pred(q[i]) holds.
func laneBits[T hwy.Floats](q []int, pred func(int) bool) hwy.Mask[T] {
	bits := make([]bool, len(q))
	for i, v := range q {
		bits[i] = pred(v)
	}
	return hwy.MaskFromBits[T](bits)
}
