package math

import "github.com/go-jbm/jbm/hwy"

// Sinh returns the hyperbolic sine of x.
func Sinh[T hwy.Floats](x T) T {
	if isNaN(x) || x == 0 || isInf(x, 0) {
		return x
	}
	a := abs(x)
	var r T
	if a > pick[T](hypLarge_f32, hypLarge_f64) {
		h := Exp(a / 2)
		r = (h / 2) * h
	} else {
		e := Expm1(a)
		r = (e + e/(e+1)) / 2
	}
	return copysign(r, x)
}

// SinhVec is Sinh over a lane group.
func SinhVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	half := hwy.SetLike(x, 0.5)
	a := hwy.Abs(x)
	large := hwy.GreaterThan(a, hwy.SetLike(x, pick[T](hypLarge_f32, hypLarge_f64)))

	h := ExpVec(hwy.Mul(a, half))
	big := hwy.Mul(hwy.Mul(h, half), h)
	e := Expm1Vec(a)
	small := hwy.Mul(hwy.Add(e, hwy.Div(e, hwy.Add(e, hwy.SetLike(x, 1)))), half)

	r := hwy.CopySign(hwy.IfThenElse(large, big, small), x)
	return fixLanes(r, x, hwy.MaskOr(nonFinite(x), isZero(x)), Sinh[T])
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[T hwy.Floats](x T) T {
	if isNaN(x) {
		return x
	}
	a := abs(x)
	if a > pick[T](hypLarge_f32, hypLarge_f64) {
		h := Exp(a / 2)
		return (h / 2) * h
	}
	e := Exp(a)
	return (e + 1/e) / 2
}

// CoshVec is Cosh over a lane group.
func CoshVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	half := hwy.SetLike(x, 0.5)
	a := hwy.Abs(x)
	large := hwy.GreaterThan(a, hwy.SetLike(x, pick[T](hypLarge_f32, hypLarge_f64)))

	h := ExpVec(hwy.Mul(a, half))
	big := hwy.Mul(hwy.Mul(h, half), h)
	e := ExpVec(a)
	small := hwy.Mul(hwy.Add(e, hwy.Div(hwy.SetLike(x, 1), e)), half)

	r := hwy.IfThenElse(large, big, small)
	return fixLanes(r, x, nonFinite(x), Cosh[T])
}

// Tanh returns the hyperbolic tangent of x. It saturates to ±1 for large
// |x|.
func Tanh[T hwy.Floats](x T) T {
	if isNaN(x) || x == 0 {
		return x
	}
	a := abs(x)
	if a > pick[T](hypLarge_f32, hypLarge_f64) {
		return copysign(1, x)
	}
	e := Expm1(2 * a)
	return copysign(e/(e+2), x)
}

// TanhVec is Tanh over a lane group.
func TanhVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.SetLike(x, 1)
	a := hwy.Abs(x)
	large := hwy.GreaterThan(a, hwy.SetLike(x, pick[T](hypLarge_f32, hypLarge_f64)))

	e := Expm1Vec(hwy.Add(a, a))
	r := hwy.IfThenElse(large, one, hwy.Div(e, hwy.Add(e, hwy.SetLike(x, 2))))
	r = hwy.CopySign(r, x)
	return fixLanes(r, x, hwy.MaskOr(hwy.IsNaN(x), isZero(x)), Tanh[T])
}
