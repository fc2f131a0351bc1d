package math

import (
	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/poly"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// sinPoly and cosPoly approximate sin and cos on |r| <= pi/4.
func sinPoly[T hwy.Floats](r T) T {
	w := r * r
	var s T
	if precision.Is32[T]() {
		s = poly.Poly2(w, coeffs[T](sinP_f32, sinP_f64))
	} else {
		s = poly.Poly5(w, coeffs[T](sinP_f32, sinP_f64))
	}
	return r + r*w*s
}

func cosPoly[T hwy.Floats](r T) T {
	w := r * r
	var c T
	if precision.Is32[T]() {
		c = poly.Poly2(w, coeffs[T](cosP_f32, cosP_f64))
	} else {
		c = poly.Poly5(w, coeffs[T](cosP_f32, cosP_f64))
	}
	return 1 - w/2 + w*w*c
}

func sinPolyVec[T hwy.Floats](r hwy.Vec[T]) hwy.Vec[T] {
	w := hwy.Mul(r, r)
	var s hwy.Vec[T]
	if precision.Is32[T]() {
		s = poly.Poly2Vec(w, coeffs[T](sinP_f32, sinP_f64))
	} else {
		s = poly.Poly5Vec(w, coeffs[T](sinP_f32, sinP_f64))
	}
	return hwy.MulAdd(hwy.Mul(r, w), s, r)
}

func cosPolyVec[T hwy.Floats](r hwy.Vec[T]) hwy.Vec[T] {
	w := hwy.Mul(r, r)
	var c hwy.Vec[T]
	if precision.Is32[T]() {
		c = poly.Poly2Vec(w, coeffs[T](cosP_f32, cosP_f64))
	} else {
		c = poly.Poly5Vec(w, coeffs[T](cosP_f32, cosP_f64))
	}
	one := hwy.NegMulAdd(w, hwy.SetLike(r, 0.5), hwy.SetLike(r, 1))
	return hwy.MulAdd(hwy.Mul(w, w), c, one)
}

// quadrant maps sin(r) and cos(r) to sin(x) and cos(x) for x = k*pi/2 + r.
func quadrant[T hwy.Floats](s, c T, k int) (T, T) {
	switch k & 3 {
	case 1:
		return c, -s
	case 2:
		return -s, -c
	case 3:
		return -c, s
	}
	return s, c
}

func quadrantVec[T hwy.Floats](s, c hwy.Vec[T], k []int) (hwy.Vec[T], hwy.Vec[T]) {
	swap := laneBits[T](k, func(q int) bool { return q&1 == 1 })
	negSin := laneBits[T](k, func(q int) bool { return q&2 == 2 })
	negCos := laneBits[T](k, func(q int) bool { return (q+1)&2 == 2 })
	sin := hwy.IfThenElse(swap, c, s)
	cos := hwy.IfThenElse(swap, s, c)
	return hwy.IfThenElse(negSin, hwy.Neg(sin), sin), hwy.IfThenElse(negCos, hwy.Neg(cos), cos)
}

// trigSpecial selects lanes that are NaN, infinite or zero.
func trigSpecial[T hwy.Floats](x hwy.Vec[T]) hwy.Mask[T] {
	return hwy.MaskOr(nonFinite(x), isZero(x))
}

// Sin returns the sine of x. Sin(±0) is ±0; NaN and infinities give NaN.
func Sin[T hwy.Floats](x T) T {
	switch {
	case x == 0:
		return x
	case isNaN(x) || isInf(x, 0):
		return nan[T]()
	}
	r, k := reduceHalfPi(x)
	s, _ := quadrant(sinPoly(r), cosPoly(r), k)
	return s
}

// Cos returns the cosine of x. NaN and infinities give NaN.
func Cos[T hwy.Floats](x T) T {
	if isNaN(x) || isInf(x, 0) {
		return nan[T]()
	}
	r, k := reduceHalfPi(x)
	_, c := quadrant(sinPoly(r), cosPoly(r), k)
	return c
}

// SinCos returns Sin(x) and Cos(x) from one reduction.
func SinCos[T hwy.Floats](x T) (sin, cos T) {
	switch {
	case x == 0:
		return x, 1
	case isNaN(x) || isInf(x, 0):
		return nan[T](), nan[T]()
	}
	r, k := reduceHalfPi(x)
	return quadrant(sinPoly(r), cosPoly(r), k)
}

// Tan returns the tangent of x. Tan(±0) is ±0; NaN and infinities give NaN.
func Tan[T hwy.Floats](x T) T {
	switch {
	case x == 0:
		return x
	case isNaN(x) || isInf(x, 0):
		return nan[T]()
	}
	r, k := reduceHalfPi(x)
	s, c := sinPoly(r), cosPoly(r)
	if k&1 == 1 {
		return -c / s
	}
	return s / c
}

// SinVec is Sin over a lane group.
func SinVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	s, _ := sinCosVec(x)
	return fixLanes(s, x, trigSpecial(x), Sin[T])
}

// CosVec is Cos over a lane group.
func CosVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	_, c := sinCosVec(x)
	return fixLanes(c, x, nonFinite(x), Cos[T])
}

// SinCosVec is SinCos over a lane group.
func SinCosVec[T hwy.Floats](x hwy.Vec[T]) (sin, cos hwy.Vec[T]) {
	s, c := sinCosVec(x)
	special := trigSpecial(x)
	s = fixLanes(s, x, special, Sin[T])
	c = fixLanes(c, x, special, Cos[T])
	return s, c
}

// TanVec is Tan over a lane group.
func TanVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	r, k := reduceHalfPiVec(x)
	s, c := sinPolyVec(r), cosPolyVec(r)
	odd := laneBits[T](k, func(q int) bool { return q&1 == 1 })
	t := hwy.IfThenElse(odd, hwy.Neg(hwy.Div(c, s)), hwy.Div(s, c))
	return fixLanes(t, x, trigSpecial(x), Tan[T])
}

func sinCosVec[T hwy.Floats](x hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	r, k := reduceHalfPiVec(x)
	return quadrantVec(sinPolyVec(r), cosPolyVec(r), k)
}
