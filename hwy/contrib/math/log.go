package math

import (
	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/ieee"
	"github.com/go-jbm/jbm/hwy/contrib/poly"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// logMantissa returns log(y) for y in [2/3, 4/3).
func logMantissa[T hwy.Floats](y T) T {
	z := y - 1
	s := z / (2 + z)
	w := s * s
	var a T
	if precision.Is32[T]() {
		a = poly.Rational3_2(w, coeffs[T](logP_f32, logP_f64))
	} else {
		a = poly.Rational8_4(w, coeffs[T](logP_f32, logP_f64))
	}
	return 2 * s * a
}

func logMantissaVec[T hwy.Floats](y hwy.Vec[T]) hwy.Vec[T] {
	z := hwy.Sub(y, hwy.SetLike(y, 1))
	s := hwy.Div(z, hwy.Add(z, hwy.SetLike(y, 2)))
	w := hwy.Mul(s, s)
	var a hwy.Vec[T]
	if precision.Is32[T]() {
		a = poly.Rational3_2Vec(w, coeffs[T](logP_f32, logP_f64))
	} else {
		a = poly.Rational8_4Vec(w, coeffs[T](logP_f32, logP_f64))
	}
	return hwy.Mul(hwy.Add(s, s), a)
}

// logSplit decomposes a positive finite x as 2^e * y with y in [2/3, 4/3)
// and returns e and log(y).
func logSplit[T hwy.Floats](x T) (T, T) {
	m, e := ieee.Frexp(x)
	if m < T(2.0/3.0) {
		m *= 2
		e--
	}
	return T(e), logMantissa(m)
}

func logSplitVec[T hwy.Floats](x hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	m, e := ieee.FrexpVec(x)
	low := hwy.LessThan(m, hwy.SetLike(x, T(2.0/3.0)))
	m = hwy.IfThenElse(low, hwy.Add(m, m), m)
	for i := range e {
		if low.GetBit(i) {
			e[i]--
		}
	}
	return hwy.FromInts[T](e), logMantissaVec(m)
}

// logSpecial handles the arguments outside (0, +Inf).
func logSpecial[T hwy.Floats](x T) (T, bool) {
	switch {
	case isNaN(x) || x < 0:
		return nan[T](), true
	case x == 0:
		return inf[T](-1), true
	case isInf(x, 1):
		return x, true
	}
	return 0, false
}

// logSpecialMask selects lanes that are NaN, not positive, or +Inf.
func logSpecialMask[T hwy.Floats](x hwy.Vec[T]) hwy.Mask[T] {
	return hwy.MaskOr(hwy.MaskNot(hwy.GreaterThan(x, hwy.SetLike(x, 0))), hwy.IsInf(x, 1))
}

// Log returns the natural logarithm of x. Log(0) is -Inf and negative
// arguments give NaN.
func Log[T hwy.Floats](x T) T {
	if r, ok := logSpecial(x); ok {
		return r
	}
	e, lm := logSplit(x)
	return e*pick[T](expLn2Hi_f32, expLn2Hi_f64) + (e*pick[T](expLn2Lo_f32, expLn2Lo_f64) + lm)
}

// LogVec is Log over a lane group.
func LogVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	e, lm := logSplitVec(x)
	lo := hwy.MulAdd(e, hwy.SetLike(x, pick[T](expLn2Lo_f32, expLn2Lo_f64)), lm)
	r := hwy.MulAdd(e, hwy.SetLike(x, pick[T](expLn2Hi_f32, expLn2Hi_f64)), lo)
	return fixLanes(r, x, logSpecialMask(x), Log[T])
}

// Log2 returns the binary logarithm of x. It is exact for powers of two.
func Log2[T hwy.Floats](x T) T {
	if r, ok := logSpecial(x); ok {
		return r
	}
	e, lm := logSplit(x)
	return e + lm*T(log2e)
}

// Log2Vec is Log2 over a lane group.
func Log2Vec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	e, lm := logSplitVec(x)
	r := hwy.MulAdd(lm, hwy.SetLike(x, T(log2e)), e)
	return fixLanes(r, x, logSpecialMask(x), Log2[T])
}

// Log10 returns the decimal logarithm of x.
func Log10[T hwy.Floats](x T) T {
	if r, ok := logSpecial(x); ok {
		return r
	}
	return Log(x) * T(log10e)
}

// Log10Vec is Log10 over a lane group.
func Log10Vec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	r := hwy.Mul(LogVec(x), hwy.SetLike(x, T(log10e)))
	return fixLanes(r, x, logSpecialMask(x), Log10[T])
}
