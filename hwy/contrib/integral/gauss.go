// Package integral integrates functions of one variable with fixed
// Gauss-Legendre rules.
//
// Rules of 1 to 7 points are available through GaussN. Gauss uses the rule
// chosen at build time with one of the tags jbm_gauss1, jbm_gauss3 or
// jbm_gauss7; without a tag it uses 5 points. There is no adaptive
// refinement: an integrand that is not well approximated by a polynomial
// of degree 2n-1 on [x1, x2] should be split by the caller.
package integral

import (
	"errors"
	"fmt"

	"github.com/go-jbm/jbm/hwy"
)

// ErrPoints is returned for a rule size without a table.
var ErrPoints = errors.New("integral: unsupported number of points")

// MaxPoints is the largest rule size.
const MaxPoints = 7

// rule holds the abscissas on [-1, 1] and their weights.
type rule struct {
	x, w []float64
}

var rules = [MaxPoints + 1]rule{
	1: {
		x: []float64{0},
		w: []float64{2},
	},
	2: {
		x: []float64{-0.57735026918962576451, 0.57735026918962576451},
		w: []float64{1, 1},
	},
	3: {
		x: []float64{-0.77459666924148337704, 0, 0.77459666924148337704},
		w: []float64{5.0 / 9, 8.0 / 9, 5.0 / 9},
	},
	4: {
		x: []float64{
			-0.86113631159405257522, -0.33998104358485626480,
			0.33998104358485626480, 0.86113631159405257522,
		},
		w: []float64{
			0.34785484513745385737, 0.65214515486254614263,
			0.65214515486254614263, 0.34785484513745385737,
		},
	},
	5: {
		x: []float64{
			-0.90617984593866399280, -0.53846931010568309104, 0,
			0.53846931010568309104, 0.90617984593866399280,
		},
		w: []float64{
			0.23692688505618908751, 0.47862867049936646804, 128.0 / 225,
			0.47862867049936646804, 0.23692688505618908751,
		},
	},
	6: {
		x: []float64{
			-0.93246951420315202781, -0.66120938646626451366, -0.23861918608319690863,
			0.23861918608319690863, 0.66120938646626451366, 0.93246951420315202781,
		},
		w: []float64{
			0.17132449237917034504, 0.36076157304813860757, 0.46791393457269104739,
			0.46791393457269104739, 0.36076157304813860757, 0.17132449237917034504,
		},
	},
	7: {
		x: []float64{
			-0.94910791234275852453, -0.74153118559939443986, -0.40584515137739716691, 0,
			0.40584515137739716691, 0.74153118559939443986, 0.94910791234275852453,
		},
		w: []float64{
			0.12948496616886969327, 0.27970539148927666790, 0.38183005050511894495, 512.0 / 1225,
			0.38183005050511894495, 0.27970539148927666790, 0.12948496616886969327,
		},
	},
}

// Gauss integrates f over [x1, x2] with the DefaultPoints rule.
func Gauss[T hwy.Floats](f func(T) T, x1, x2 T) T {
	return gauss(f, x1, x2, rules[DefaultPoints])
}

// GaussN integrates f over [x1, x2] with an n-point rule, 1 <= n <= 7.
func GaussN[T hwy.Floats](f func(T) T, x1, x2 T, n int) (T, error) {
	if n < 1 || n > MaxPoints {
		return 0, fmt.Errorf("GaussN: %d points: %w", n, ErrPoints)
	}
	return gauss(f, x1, x2, rules[n]), nil
}

func gauss[T hwy.Floats](f func(T) T, x1, x2 T, r rule) T {
	half := (x2 - x1) / 2
	mid := (x1 + x2) / 2
	var s T
	for i, x := range r.x {
		s += T(r.w[i]) * f(mid+half*T(x))
	}
	return s * half
}

// GaussVec integrates a lane-group integrand over [x1, x2] with an n-point
// rule. All n abscissas are passed to f in one lane group of n lanes.
func GaussVec[T hwy.Floats](f func(hwy.Vec[T]) hwy.Vec[T], x1, x2 T, n int) (T, error) {
	if n < 1 || n > MaxPoints {
		return 0, fmt.Errorf("GaussVec: %d points: %w", n, ErrPoints)
	}
	r := rules[n]
	xs, ws := make([]T, n), make([]T, n)
	for i := range n {
		xs[i], ws[i] = T(r.x[i]), T(r.w[i])
	}
	half := hwy.SetN((x2-x1)/2, n)
	at := hwy.MulAdd(half, hwy.LoadN(xs, n), hwy.SetN((x1+x2)/2, n))
	s := hwy.ReduceSum(hwy.Mul(hwy.LoadN(ws, n), f(at)))
	return s * (x2 - x1) / 2, nil
}
