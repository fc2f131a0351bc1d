// Package poly evaluates polynomials and rational functions by Horner's
// scheme.
//
// Coefficients are stored constant term first: p[i] multiplies x^i. The
// fixed-degree routines Poly1 .. Poly29 and Rational<N>_<M> are generated
// with every step unrolled; Horner and Rational take the degree at run time
// and are used where the degree is data dependent.
//
// A rational routine Rational<N>_<M> reads N+1 coefficients: the M+1
// numerator coefficients p[0] .. p[M] followed by the N-M denominator
// coefficients of degree 1 and above. The denominator constant term is an
// implied 1.
package poly

//go:generate go run ../../../cmd/polygen -mode poly -output poly_gen.go -maxdeg 29 -maxrat 12

import "github.com/go-jbm/jbm/hwy"

// MaxDegree is the highest degree with a generated routine.
const MaxDegree = 29

// MaxRational is the highest total degree with a generated rational routine.
const MaxRational = 12

// Horner evaluates p[0] + p[1]*x + ... + p[len(p)-1]*x^(len(p)-1).
// An empty p evaluates to 0.
func Horner[T hwy.Floats](x T, p []T) T {
	if len(p) == 0 {
		return 0
	}
	r := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		r = r*x + p[i]
	}
	return r
}

// HornerVec is Horner over a lane group.
func HornerVec[T hwy.Floats](x hwy.Vec[T], p []T) hwy.Vec[T] {
	if len(p) == 0 {
		return hwy.SetLike(x, 0)
	}
	r := hwy.SetLike(x, p[len(p)-1])
	for i := len(p) - 2; i >= 0; i-- {
		r = hwy.MulAdd(r, x, hwy.SetLike(x, p[i]))
	}
	return r
}

// Rational evaluates P(x) / (1 + x*Q(x)) where P is p[:m+1] and Q is
// p[m+1:]. It panics if m+1 > len(p).
func Rational[T hwy.Floats](x T, p []T, m int) T {
	return Horner(x, p[:m+1]) / (1 + x*Horner(x, p[m+1:]))
}

// RationalVec is Rational over a lane group.
func RationalVec[T hwy.Floats](x hwy.Vec[T], p []T, m int) hwy.Vec[T] {
	den := hwy.MulAdd(x, HornerVec(x, p[m+1:]), hwy.SetLike(x, 1))
	return hwy.Div(HornerVec(x, p[:m+1]), den)
}

// Slice evaluates the polynomial p at every element of input and writes the
// results to output, processing hwy.MaxLanes[T]() elements at a time.
func Slice[T hwy.Floats](p []T, input, output []T) {
	hwy.MapSlice(input, output, hwy.MaxLanes[T](), func(x hwy.Vec[T]) hwy.Vec[T] {
		return HornerVec(x, p)
	})
}
