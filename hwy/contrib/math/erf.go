package math

import (
	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/ieee"
	"github.com/go-jbm/jbm/hwy/contrib/poly"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// erfSmall approximates erf(x) for |x| <= 1.
func erfSmall[T hwy.Floats](x T) T {
	w := x * x
	if precision.Is32[T]() {
		return x * poly.Poly5(w, coeffs[T](erfP_f32, erfP_f64))
	}
	return x * poly.Poly11(w, coeffs[T](erfP_f32, erfP_f64))
}

func erfSmallVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	w := hwy.Mul(x, x)
	if precision.Is32[T]() {
		return hwy.Mul(x, poly.Poly5Vec(w, coeffs[T](erfP_f32, erfP_f64)))
	}
	return hwy.Mul(x, poly.Poly11Vec(w, coeffs[T](erfP_f32, erfP_f64)))
}

func erfcSplitBits[T hwy.Floats]() int {
	if precision.Is32[T]() {
		return erfcSplitBits_f32
	}
	return erfcSplitBits_f64
}

// expNegSquare returns exp(-x*x) with x*x split into an exactly squared
// high part and a small correction.
func expNegSquare[T hwy.Floats](x T) T {
	xh := ieee.TruncateMantissa(x, erfcSplitBits[T]())
	return Exp(-xh*xh) * Exp(-(x-xh)*(x+xh))
}

func expNegSquareVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	xh := ieee.TruncateMantissaVec(x, erfcSplitBits[T]())
	hi := ExpVec(hwy.Neg(hwy.Mul(xh, xh)))
	lo := ExpVec(hwy.Neg(hwy.Mul(hwy.Sub(x, xh), hwy.Add(x, xh))))
	return hwy.Mul(hi, lo)
}

// erfcTail approximates erfc(x) for x > 1.
func erfcTail[T hwy.Floats](x T) T {
	if x >= pick[T](erfcZero_f32, erfcZero_f64) {
		return 0
	}
	v := 1 / x
	var g T
	switch {
	case precision.Is32[T]():
		g = poly.Rational8_4(v, coeffs[T](erfcP_f32, nil))
	case x <= 2:
		g = poly.Rational12_6(v, coeffs[T](nil, erfcP1_f64))
	case x <= 4:
		g = poly.Rational12_6(v, coeffs[T](nil, erfcP2_f64))
	default:
		g = poly.Rational12_6(v, coeffs[T](nil, erfcP3_f64))
	}
	return expNegSquare(x) * v * g
}

func erfcTailVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	v := hwy.Div(hwy.SetLike(x, 1), x)
	var g hwy.Vec[T]
	if precision.Is32[T]() {
		g = poly.Rational8_4Vec(v, coeffs[T](erfcP_f32, nil))
	} else {
		g1 := poly.Rational12_6Vec(v, coeffs[T](nil, erfcP1_f64))
		g2 := poly.Rational12_6Vec(v, coeffs[T](nil, erfcP2_f64))
		g3 := poly.Rational12_6Vec(v, coeffs[T](nil, erfcP3_f64))
		g = hwy.IfThenElse(hwy.LessEqual(x, hwy.SetLike(x, 4)), g2, g3)
		g = hwy.IfThenElse(hwy.LessEqual(x, hwy.SetLike(x, 2)), g1, g)
	}
	r := hwy.Mul(hwy.Mul(expNegSquareVec(x), v), g)
	zero := hwy.GreaterEqual(x, hwy.SetLike(x, pick[T](erfcZero_f32, erfcZero_f64)))
	return hwy.IfThenZeroElse(zero, r)
}

// Erf returns the error function of x.
func Erf[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case isInf(x, 0):
		return copysign(1, x)
	}
	a := abs(x)
	if a <= 1 {
		return erfSmall(x)
	}
	return copysign(1-erfcTail(a), x)
}

// ErfVec is Erf over a lane group.
func ErfVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	a := hwy.Abs(x)
	small := hwy.LessEqual(a, hwy.SetLike(x, 1))
	large := hwy.CopySign(hwy.Sub(hwy.SetLike(x, 1), erfcTailVec(a)), x)
	r := hwy.IfThenElse(small, erfSmallVec(x), large)
	return fixLanes(r, x, nonFinite(x), Erf[T])
}

// Erfc returns the complementary error function 1 - Erf(x), without the
// cancellation of computing it that way for large x.
func Erfc[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case isInf(x, 1):
		return 0
	case isInf(x, -1):
		return 2
	case abs(x) <= 1:
		return 1 - erfSmall(x)
	case x > 0:
		return erfcTail(x)
	}
	return 2 - erfcTail(-x)
}

// ErfcVec is Erfc over a lane group.
func ErfcVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.SetLike(x, 1)
	a := hwy.Abs(x)
	tail := erfcTailVec(a)
	large := hwy.IfThenElse(hwy.IsNegative(x), hwy.Sub(hwy.SetLike(x, 2), tail), tail)
	r := hwy.IfThenElse(hwy.LessEqual(a, one), hwy.Sub(one, erfSmallVec(x)), large)
	return fixLanes(r, x, nonFinite(x), Erfc[T])
}
