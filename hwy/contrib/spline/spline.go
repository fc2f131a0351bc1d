// Package spline fits piecewise cubic interpolants through tabulated data.
//
// Cubic sets up one value, one slope-continuity and one curvature-continuity
// equation per interior knot plus one condition at each end, and solves the
// resulting pentadiagonal system with package solve. Each segment is stored
// as the four coefficients of a cubic in t-x[i].
package spline

import (
	"errors"
	"fmt"

	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/farray"
	"github.com/go-jbm/jbm/hwy/contrib/poly"
	"github.com/go-jbm/jbm/hwy/contrib/solve"
)

var (
	// ErrDimension is returned when x and y differ in length.
	ErrDimension = errors.New("spline: x and y lengths differ")

	// ErrTooFewPoints is returned for fewer than two knots.
	ErrTooFewPoints = errors.New("spline: need at least two knots")

	// ErrKnotOrder is returned when the knots are not strictly increasing.
	ErrKnotOrder = errors.New("spline: knots not strictly increasing")

	// ErrEndCondition is returned for an unknown EndCondition.
	ErrEndCondition = errors.New("spline: unknown end condition")
)

// EndCondition selects the two equations that close the system.
type EndCondition int

const (
	// Parabolic makes the first and last segments quadratic (zero third
	// derivative), so data taken from a parabola is reproduced exactly.
	Parabolic EndCondition = iota

	// Natural sets the second derivative to zero at both ends.
	Natural
)

func (e EndCondition) String() string {
	switch e {
	case Parabolic:
		return "parabolic"
	case Natural:
		return "natural"
	}
	return fmt.Sprintf("EndCondition(%d)", int(e))
}

// Spline is a fitted cubic spline.
type Spline[T hwy.Floats] struct {
	x    []T
	coef []T // y, b, c, d for each segment
}

func splineErrorf(err error) error {
	return fmt.Errorf("Cubic: %w", err)
}

// Cubic fits a spline through the knots (x[i], y[i]). The knots must be
// strictly increasing. With only two knots the spline is the straight line
// through them whatever the end condition.
func Cubic[T hwy.Floats](x, y []T, end EndCondition) (*Spline[T], error) {
	switch {
	case len(x) != len(y):
		return nil, splineErrorf(fmt.Errorf("%d and %d: %w", len(x), len(y), ErrDimension))
	case len(x) < 2:
		return nil, splineErrorf(fmt.Errorf("%d knots: %w", len(x), ErrTooFewPoints))
	case end != Parabolic && end != Natural:
		return nil, splineErrorf(fmt.Errorf("%v: %w", end, ErrEndCondition))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, splineErrorf(fmt.Errorf("x[%d]=%v after x[%d]=%v: %w", i, x[i], i-1, x[i-1], ErrKnotOrder))
		}
	}

	m := len(x) - 1
	s := &Spline[T]{x: append([]T(nil), x...), coef: make([]T, 4*m)}
	for i := range m {
		s.coef[4*i] = y[i]
	}
	if m == 1 {
		s.coef[1] = (y[1] - y[0]) / (x[1] - x[0])
		return s, nil
	}

	sys := newSystem[T](3*m, end)
	h := func(i int) T { return x[i+1] - x[i] }
	row := 0
	value := func(i int) {
		sys.set(row, i, 'b', 1)
		sys.set(row, i, 'c', 1)
		sys.set(row, i, 'd', 1)
		sys.h[row] = y[i+1] - y[i]
		row++
	}

	value(0)
	if end == Natural {
		sys.set(row, 0, 'c', 1)
	} else {
		sys.set(row, 0, 'd', 1)
	}
	row++
	for i := range m - 1 {
		r := h(i) / h(i+1)
		sys.set(row, i, 'b', 1)
		sys.set(row, i, 'c', 2)
		sys.set(row, i, 'd', 3)
		sys.set(row, i+1, 'b', -r)
		row++
		sys.set(row, i, 'c', 1)
		sys.set(row, i, 'd', 3)
		sys.set(row, i+1, 'c', -r*r)
		row++
		value(i + 1)
	}
	if end == Natural {
		sys.set(row, m-1, 'c', 1)
		sys.set(row, m-1, 'd', 3)
	} else {
		sys.set(row, m-1, 'd', 1)
	}

	if err := solve.Pentadiagonal(sys.b, sys.c, sys.d, sys.e, sys.f, sys.h); err != nil {
		return nil, splineErrorf(err)
	}
	for i := range m {
		hi := h(i)
		s.coef[4*i+1] = sys.h[sys.col(i, 'b')] / hi
		s.coef[4*i+2] = sys.h[sys.col(i, 'c')] / (hi * hi)
		s.coef[4*i+3] = sys.h[sys.col(i, 'd')] / (hi * hi * hi)
	}
	return s, nil
}

// system is the banded matrix of a spline fit. The unknowns of segment i
// are its coefficients scaled by powers of the segment width, so every
// equation is of order one whatever the knot spacing.
type system[T hwy.Floats] struct {
	b, c, d, e, f, h []T
	order            string
}

func newSystem[T hwy.Floats](n int, end EndCondition) *system[T] {
	s := &system[T]{
		b: make([]T, n-2), c: make([]T, n-1), d: make([]T, n),
		e: make([]T, n-1), f: make([]T, n-2), h: make([]T, n),
		order: "bcd",
	}
	// Keeps a nonzero entry on the diagonal of the first end row.
	if end == Parabolic {
		s.order = "bdc"
	}
	return s
}

func (s *system[T]) col(seg int, coef byte) int {
	for k := range len(s.order) {
		if s.order[k] == coef {
			return 3*seg + k
		}
	}
	panic("spline: unknown coefficient")
}

func (s *system[T]) set(row, seg int, coef byte, v T) {
	switch col := s.col(seg, coef); col - row {
	case -2:
		s.b[row-2] = v
	case -1:
		s.c[row-1] = v
	case 0:
		s.d[row] = v
	case 1:
		s.e[row] = v
	case 2:
		s.f[row] = v
	default:
		panic(fmt.Sprintf("spline: entry (%d, %d) outside the band", row, col))
	}
}

// Knots returns the number of knots.
func (s *Spline[T]) Knots() int { return len(s.x) }

// Segment returns the coefficients of segment i: on [x[i], x[i+1]] the
// spline is y + b*u + c*u^2 + d*u^3 with u = t-x[i].
func (s *Spline[T]) Segment(i int) (y, b, c, d T) {
	p := s.coef[4*i : 4*i+4]
	return p[0], p[1], p[2], p[3]
}

// Eval returns the spline at t. Points outside the knots are extrapolated
// from the first or last segment.
func (s *Spline[T]) Eval(t T) T {
	i := farray.Search(s.x, t)
	return poly.Poly3(t-s.x[i], s.coef[4*i:4*i+4])
}

// Derivative returns the first derivative of the spline at t.
func (s *Spline[T]) Derivative(t T) T {
	i := farray.Search(s.x, t)
	p := s.coef[4*i : 4*i+4]
	u := t - s.x[i]
	return p[1] + u*(2*p[2]+u*3*p[3])
}

// EvalSlice stores Eval(ts[i]) in out[i] for the shorter of the two.
func (s *Spline[T]) EvalSlice(ts, out []T) {
	n := min(len(ts), len(out))
	for i := range n {
		out[i] = s.Eval(ts[i])
	}
}
