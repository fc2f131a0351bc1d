package math

import (
	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/ieee"
	"github.com/go-jbm/jbm/hwy/contrib/poly"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// expCore approximates exp(t) for |t| <= ln2/2.
func expCore[T hwy.Floats](t T) T {
	if precision.Is32[T]() {
		return poly.Rational6_3(t, coeffs[T](expP_f32, expP_f64))
	}
	return poly.Rational12_6(t, coeffs[T](expP_f32, expP_f64))
}

func expCoreVec[T hwy.Floats](t hwy.Vec[T]) hwy.Vec[T] {
	if precision.Is32[T]() {
		return poly.Rational6_3Vec(t, coeffs[T](expP_f32, expP_f64))
	}
	return poly.Rational12_6Vec(t, coeffs[T](expP_f32, expP_f64))
}

// Exp2 returns 2^x. It returns +Inf for x >= MaxExp+1 and 0 for x below
// the smallest normal exponent.
func Exp2[T hwy.Floats](x T) T {
	t := precision.Traits[T]()
	switch {
	case isNaN(x):
		return x
	case x >= T(t.MaxExp+1):
		return inf[T](1)
	case x < T(t.MinExp):
		return 0
	}
	n := roundToEven(x)
	return ieee.Ldexp(expCore((x-n)*T(ln2)), int(n))
}

// Exp2Vec is Exp2 over a lane group.
func Exp2Vec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	t := precision.Traits[T]()
	n := hwy.RoundToEven(x)
	f := hwy.Mul(hwy.Sub(x, n), hwy.SetLike(x, T(ln2)))
	r := ieee.LdexpVec(expCoreVec(f), hwy.ToInts(n))

	special := hwy.MaskOr(hwy.IsNaN(x), hwy.GreaterEqual(x, hwy.SetLike(x, T(t.MaxExp+1))))
	special = hwy.MaskOr(special, hwy.LessThan(x, hwy.SetLike(x, T(t.MinExp))))
	return fixLanes(r, x, special, Exp2[T])
}

// Exp returns e^x.
func Exp[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case x > pick[T](expOverflow_f32, expOverflow_f64):
		return inf[T](1)
	case x < pick[T](expUnderflow_f32, expUnderflow_f64):
		return 0
	}
	k := roundToEven(x * T(log2e))
	r := x - k*pick[T](expLn2Hi_f32, expLn2Hi_f64)
	r -= k * pick[T](expLn2Lo_f32, expLn2Lo_f64)
	return ieee.Ldexp(expCore(r), int(k))
}

// ExpVec is Exp over a lane group.
func ExpVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	k := hwy.RoundToEven(hwy.Mul(x, hwy.SetLike(x, T(log2e))))
	r := hwy.NegMulAdd(k, hwy.SetLike(x, pick[T](expLn2Hi_f32, expLn2Hi_f64)), x)
	r = hwy.NegMulAdd(k, hwy.SetLike(x, pick[T](expLn2Lo_f32, expLn2Lo_f64)), r)
	res := ieee.LdexpVec(expCoreVec(r), hwy.ToInts(k))

	special := hwy.MaskOr(hwy.IsNaN(x), hwy.GreaterThan(x, hwy.SetLike(x, pick[T](expOverflow_f32, expOverflow_f64))))
	special = hwy.MaskOr(special, hwy.LessThan(x, hwy.SetLike(x, pick[T](expUnderflow_f32, expUnderflow_f64))))
	return fixLanes(res, x, special, Exp[T])
}

// Exp10 returns 10^x.
func Exp10[T hwy.Floats](x T) T {
	switch {
	case isNaN(x):
		return x
	case x > pick[T](exp10Overflow_f32, exp10Overflow_f64):
		return inf[T](1)
	case x < pick[T](exp10Underflow_f32, exp10Underflow_f64):
		return 0
	}
	n := roundToEven(x * T(log2_10))
	r := x - n*pick[T](exp10Lg2Hi_f32, exp10Lg2Hi_f64)
	r -= n * pick[T](exp10Lg2Lo_f32, exp10Lg2Lo_f64)
	return ieee.Ldexp(expCore(r*T(ln10)), int(n))
}

// Exp10Vec is Exp10 over a lane group.
func Exp10Vec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	n := hwy.RoundToEven(hwy.Mul(x, hwy.SetLike(x, T(log2_10))))
	r := hwy.NegMulAdd(n, hwy.SetLike(x, pick[T](exp10Lg2Hi_f32, exp10Lg2Hi_f64)), x)
	r = hwy.NegMulAdd(n, hwy.SetLike(x, pick[T](exp10Lg2Lo_f32, exp10Lg2Lo_f64)), r)
	res := ieee.LdexpVec(expCoreVec(hwy.Mul(r, hwy.SetLike(x, T(ln10)))), hwy.ToInts(n))

	special := hwy.MaskOr(hwy.IsNaN(x), hwy.GreaterThan(x, hwy.SetLike(x, pick[T](exp10Overflow_f32, exp10Overflow_f64))))
	special = hwy.MaskOr(special, hwy.LessThan(x, hwy.SetLike(x, pick[T](exp10Underflow_f32, exp10Underflow_f64))))
	return fixLanes(res, x, special, Exp10[T])
}

// expm1Core approximates e^t - 1 for |t| <= ln2/2.
func expm1Core[T hwy.Floats](t T) T {
	if precision.Is32[T]() {
		return t * poly.Rational5_3(t, coeffs[T](expm1P_f32, expm1P_f64))
	}
	return t * poly.Rational10_5(t, coeffs[T](expm1P_f32, expm1P_f64))
}

func expm1CoreVec[T hwy.Floats](t hwy.Vec[T]) hwy.Vec[T] {
	if precision.Is32[T]() {
		return hwy.Mul(t, poly.Rational5_3Vec(t, coeffs[T](expm1P_f32, expm1P_f64)))
	}
	return hwy.Mul(t, poly.Rational10_5Vec(t, coeffs[T](expm1P_f32, expm1P_f64)))
}

// Expm1 returns e^x - 1, accurate also when x is near zero.
func Expm1[T hwy.Floats](x T) T {
	switch {
	case isNaN(x) || x == 0:
		return x
	case abs(x) <= T(ln2/2):
		return expm1Core(x)
	}
	return Exp(x) - 1
}

// Expm1Vec is Expm1 over a lane group.
func Expm1Vec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	small := hwy.LessEqual(hwy.Abs(x), hwy.SetLike(x, T(ln2/2)))
	r := hwy.IfThenElse(small, expm1CoreVec(x), hwy.Sub(ExpVec(x), hwy.SetLike(x, 1)))
	return fixLanes(r, x, hwy.MaskOr(hwy.IsNaN(x), isZero(x)), Expm1[T])
}
