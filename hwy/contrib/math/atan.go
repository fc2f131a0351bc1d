package math

import (
	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/poly"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// atanPoly approximates atan(t) for |t| <= tan(pi/8).
func atanPoly[T hwy.Floats](t T) T {
	w := t * t
	var a T
	if precision.Is32[T]() {
		a = poly.Poly3(w, coeffs[T](atanP_f32, atanP_f64))
	} else {
		a = poly.Poly9(w, coeffs[T](atanP_f32, atanP_f64))
	}
	return t + t*w*a
}

func atanPolyVec[T hwy.Floats](t hwy.Vec[T]) hwy.Vec[T] {
	w := hwy.Mul(t, t)
	var a hwy.Vec[T]
	if precision.Is32[T]() {
		a = poly.Poly3Vec(w, coeffs[T](atanP_f32, atanP_f64))
	} else {
		a = poly.Poly9Vec(w, coeffs[T](atanP_f32, atanP_f64))
	}
	return hwy.MulAdd(hwy.Mul(t, w), a, t)
}

// Atan returns the arctangent of x in [-pi/2, pi/2].
//
// |x| > 1 is folded with atan(x) = pi/2 - atan(1/x), then arguments above
// tan(pi/8) are shifted with atan(t) = pi/4 + atan((t-1)/(t+1)).
func Atan[T hwy.Floats](x T) T {
	if isNaN(x) || x == 0 {
		return x
	}
	t := abs(x)
	invert := t > 1
	if invert {
		t = 1 / t
	}
	var r T
	if t > T(tanPi8) {
		r = T(pi/4) + atanPoly((t-1)/(t+1))
	} else {
		r = atanPoly(t)
	}
	if invert {
		r = T(pi/2) - r
	}
	return copysign(r, x)
}

// AtanVec is Atan over a lane group.
func AtanVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.SetLike(x, 1)
	a := hwy.Abs(x)
	invert := hwy.GreaterThan(a, one)
	t := hwy.IfThenElse(invert, hwy.Div(one, a), a)
	shift := hwy.GreaterThan(t, hwy.SetLike(x, T(tanPi8)))
	t = hwy.IfThenElse(shift, hwy.Div(hwy.Sub(t, one), hwy.Add(t, one)), t)

	r := atanPolyVec(t)
	r = hwy.IfThenElse(shift, hwy.Add(r, hwy.SetLike(x, T(pi/4))), r)
	r = hwy.IfThenElse(invert, hwy.Sub(hwy.SetLike(x, T(pi/2)), r), r)
	r = hwy.CopySign(r, x)
	return fixLanes(r, x, hwy.MaskOr(hwy.IsNaN(x), isZero(x)), Atan[T])
}

// Asin returns the arcsine of x. It is NaN for |x| > 1.
func Asin[T hwy.Floats](x T) T {
	if isNaN(x) || abs(x) > 1 {
		return nan[T]()
	}
	return Atan(x / sqrt((1-x)*(1+x)))
}

// AsinVec is Asin over a lane group.
func AsinVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.SetLike(x, 1)
	d := hwy.Sqrt(hwy.Mul(hwy.Sub(one, x), hwy.Add(one, x)))
	r := AtanVec(hwy.Div(x, d))
	return fixLanes(r, x, hwy.MaskOr(hwy.IsNaN(x), hwy.GreaterThan(hwy.Abs(x), one)), Asin[T])
}

// Acos returns the arccosine of x in [0, pi]. It is NaN for |x| > 1.
func Acos[T hwy.Floats](x T) T {
	if isNaN(x) || abs(x) > 1 {
		return nan[T]()
	}
	return 2 * Atan(sqrt((1-x)/(1+x)))
}

// AcosVec is Acos over a lane group.
func AcosVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.SetLike(x, 1)
	q := hwy.Sqrt(hwy.Div(hwy.Sub(one, x), hwy.Add(one, x)))
	r := hwy.Mul(hwy.SetLike(x, 2), AtanVec(q))
	return fixLanes(r, x, hwy.MaskOr(hwy.IsNaN(x), hwy.GreaterThan(hwy.Abs(x), one)), Acos[T])
}

// Atan2 returns the arctangent of y/x, using the signs of both to pick the
// quadrant. Special values follow the C99 Annex F conventions.
func Atan2[T hwy.Floats](y, x T) T {
	switch {
	case isNaN(y) || isNaN(x):
		return nan[T]()
	case y == 0:
		if x >= 0 && !signbit(x) {
			return copysign(0, y)
		}
		return copysign(T(pi), y)
	case x == 0:
		return copysign(T(pi/2), y)
	case isInf(x, 0):
		if isInf(x, 1) {
			if isInf(y, 0) {
				return copysign(T(pi/4), y)
			}
			return copysign(0, y)
		}
		if isInf(y, 0) {
			return copysign(T(3*pi/4), y)
		}
		return copysign(T(pi), y)
	case isInf(y, 0):
		return copysign(T(pi/2), y)
	}
	q := Atan(y / x)
	if x < 0 {
		if q <= 0 {
			return q + T(pi)
		}
		return q - T(pi)
	}
	return q
}

// Atan2Vec is Atan2 over lane groups y and x.
func Atan2Vec[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	q := AtanVec(hwy.Div(y, x))
	zero := hwy.SetLike(x, 0)
	vpi := hwy.SetLike(x, T(pi))
	adj := hwy.IfThenElse(hwy.LessEqual(q, zero), hwy.Add(q, vpi), hwy.Sub(q, vpi))
	r := hwy.IfThenElse(hwy.LessThan(x, zero), adj, q)

	special := hwy.MaskOr(nonFinite(x), nonFinite(y))
	special = hwy.MaskOr(special, hwy.MaskOr(isZero(x), isZero(y)))
	return fixLanes2(r, y, x, special, Atan2[T])
}
