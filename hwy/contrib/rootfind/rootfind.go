// Package rootfind locates roots and boundaries of scalar functions by
// bracketing and bisection.
//
// These routines are scalar only. They are used off the hot path, for
// example to find where a kernel starts to overflow.
package rootfind

import (
	"errors"
	"fmt"

	"github.com/go-jbm/jbm/hwy"
)

var (
	// ErrNotBracketed is returned when the end points do not enclose a
	// root or a predicate change.
	ErrNotBracketed = errors.New("rootfind: interval does not bracket a root")

	// ErrMaxIterations is returned when the tolerance is not reached in
	// the allowed number of iterations.
	ErrMaxIterations = errors.New("rootfind: too many iterations")
)

// growth is the factor by which Bracket widens the interval.
const growth = 1.6

// opposite reports whether fa and fb have strictly opposite signs or one
// of them is zero.
func opposite[T hwy.Floats](fa, fb T) bool {
	return (fa <= 0 && fb >= 0) || (fa >= 0 && fb <= 0)
}

// Bracket widens [a, b] geometrically on the side with the smaller |f|
// until f changes sign, at most maxIter times. It returns the bracketing
// interval.
func Bracket[T hwy.Floats](f func(T) T, a, b T, maxIter int) (T, T, error) {
	if a == b {
		return a, b, fmt.Errorf("Bracket: empty interval at %v: %w", a, ErrNotBracketed)
	}
	fa, fb := f(a), f(b)
	for range maxIter {
		if opposite(fa, fb) {
			return a, b, nil
		}
		if abs(fa) < abs(fb) {
			a += growth * (a - b)
			fa = f(a)
		} else {
			b += growth * (b - a)
			fb = f(b)
		}
	}
	if opposite(fa, fb) {
		return a, b, nil
	}
	return a, b, fmt.Errorf("Bracket: [%v, %v] after %d steps: %w", a, b, maxIter, ErrNotBracketed)
}

// Bisection finds a root of f in [a, b] to within tol. f(a) and f(b) must
// not share a sign. When maxIter halvings do not reach tol it returns the
// best estimate with ErrMaxIterations.
func Bisection[T hwy.Floats](f func(T) T, a, b, tol T, maxIter int) (T, error) {
	fa, fb := f(a), f(b)
	switch {
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case !opposite(fa, fb):
		return a, fmt.Errorf("Bisection: f(%v)=%v, f(%v)=%v: %w", a, fa, b, fb, ErrNotBracketed)
	}
	for range maxIter {
		m := midpoint(a, b)
		if abs(b-a) <= tol || m == a || m == b {
			return m, nil
		}
		fm := f(m)
		if fm == 0 {
			return m, nil
		}
		if opposite(fa, fm) {
			b = m
		} else {
			a, fa = m, fm
		}
	}
	m := midpoint(a, b)
	if abs(b-a) <= tol {
		return m, nil
	}
	return m, fmt.Errorf("Bisection: width %v after %d iterations: %w", abs(b-a), maxIter, ErrMaxIterations)
}

// Boundary returns the point of the segment from lo to hi closest to hi at
// which pred still holds, to the resolution of T. pred(lo) must be true and
// pred(hi) false; lo may be on either side of hi.
func Boundary[T hwy.Floats](pred func(T) bool, lo, hi T) (T, error) {
	if !pred(lo) || pred(hi) {
		return lo, fmt.Errorf("Boundary: [%v, %v]: %w", lo, hi, ErrNotBracketed)
	}
	for {
		m := midpoint(lo, hi)
		if m == lo || m == hi {
			return lo, nil
		}
		if pred(m) {
			lo = m
		} else {
			hi = m
		}
	}
}

// midpoint halves before adding so that the sum cannot overflow.
func midpoint[T hwy.Floats](a, b T) T {
	return a/2 + b/2
}

func abs[T hwy.Floats](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
