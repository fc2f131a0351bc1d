// Package regression fits linear, power law, polynomial and multivariate
// models by least squares.
//
// Every fit has a weighted form taking one non-negative weight per sample;
// the unweighted form uses unit weights. Power law fits work on the
// logarithms of the data, so they minimise the relative rather than the
// absolute residuals and need strictly positive data.
package regression

import (
	"errors"
	"fmt"

	"github.com/go-jbm/jbm/hwy"
	jmath "github.com/go-jbm/jbm/hwy/contrib/math"
	"github.com/go-jbm/jbm/hwy/contrib/solve"
	"github.com/go-jbm/jbm/hwy/contrib/vec"
)

var (
	// ErrDimension is returned when sample slices differ in length.
	ErrDimension = errors.New("regression: inconsistent dimensions")

	// ErrTooFewPoints is returned when there are fewer samples than
	// coefficients.
	ErrTooFewPoints = errors.New("regression: too few points")

	// ErrDomain is returned when a power law fit meets a non-positive
	// value.
	ErrDomain = errors.New("regression: data must be positive")
)

const (
	opLinear           = "Linear"
	opExponential      = "Exponential"
	opPolynomial       = "Polynomial"
	opMultilinear      = "Multilinear"
	opMultiexponential = "Multiexponential"
)

func regressionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func ones[T hwy.Floats](n int) []T {
	w := make([]T, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func checkSamples[T hwy.Floats](op string, need int, y, w []T, x ...[]T) error {
	for _, xi := range x {
		if len(xi) != len(y) {
			return regressionErrorf(op, fmt.Errorf("%d abscissas for %d ordinates: %w", len(xi), len(y), ErrDimension))
		}
	}
	if len(w) != len(y) {
		return regressionErrorf(op, fmt.Errorf("%d weights for %d ordinates: %w", len(w), len(y), ErrDimension))
	}
	if len(y) < need {
		return regressionErrorf(op, fmt.Errorf("%d points for %d coefficients: %w", len(y), need, ErrTooFewPoints))
	}
	return nil
}

// logs returns the natural logarithms of v, or ErrDomain if an element is
// not positive.
func logs[T hwy.Floats](op string, v []T) ([]T, error) {
	out := make([]T, len(v))
	for i, x := range v {
		if !(x > 0) {
			return nil, regressionErrorf(op, fmt.Errorf("element %d is %v: %w", i, x, ErrDomain))
		}
	}
	jmath.LogSlice(v, out)
	return out, nil
}

// Linear fits y = a + b*x.
func Linear[T hwy.Floats](x, y []T) (a, b T, err error) {
	return LinearWeighted(x, y, ones[T](len(y)))
}

// LinearWeighted fits y = a + b*x minimising the weighted squared
// residuals.
func LinearWeighted[T hwy.Floats](x, y, w []T) (a, b T, err error) {
	if err := checkSamples(opLinear, 2, y, w, x); err != nil {
		return 0, 0, err
	}
	a, b = linear(x, y, w)
	return a, b, nil
}

// linear solves the 2x2 normal equations in closed form.
func linear[T hwy.Floats](x, y, w []T) (a, b T) {
	wx := make([]T, len(x))
	copy(wx, w)
	vec.Mul(wx, x)
	sw, sx := vec.Sum(w), vec.Sum(wx)
	sy, sxx, sxy := vec.Dot(w, y), vec.Dot(wx, x), vec.Dot(wx, y)

	den := sw*sxx - sx*sx
	b = (sw*sxy - sx*sy) / den
	a = (sy - b*sx) / sw
	return a, b
}

// Exponential fits the power law y = a * x^b.
func Exponential[T hwy.Floats](x, y []T) (a, b T, err error) {
	return ExponentialWeighted(x, y, ones[T](len(y)))
}

// ExponentialWeighted fits y = a * x^b with weights on the logarithmic
// residuals.
func ExponentialWeighted[T hwy.Floats](x, y, w []T) (a, b T, err error) {
	if err := checkSamples(opExponential, 2, y, w, x); err != nil {
		return 0, 0, err
	}
	lx, err := logs(opExponential, x)
	if err != nil {
		return 0, 0, err
	}
	ly, err := logs(opExponential, y)
	if err != nil {
		return 0, 0, err
	}
	la, b := linear(lx, ly, w)
	return jmath.Exp(la), b, nil
}

// Polynomial fits y = c[0] + c[1]*x + ... + c[degree]*x^degree.
func Polynomial[T hwy.Floats](x, y []T, degree int) ([]T, error) {
	return PolynomialWeighted(x, y, ones[T](len(y)), degree)
}

// PolynomialWeighted is Polynomial with one weight per sample.
func PolynomialWeighted[T hwy.Floats](x, y, w []T, degree int) ([]T, error) {
	if degree < 0 {
		return nil, regressionErrorf(opPolynomial, fmt.Errorf("degree %d: %w", degree, ErrDimension))
	}
	if err := checkSamples(opPolynomial, degree+1, y, w, x); err != nil {
		return nil, err
	}
	// Column k of the design matrix holds x^k.
	cols := make([][]T, degree+1)
	cols[0] = ones[T](len(x))
	for k := 1; k <= degree; k++ {
		cols[k] = make([]T, len(x))
		copy(cols[k], cols[k-1])
		vec.Mul(cols[k], x)
	}
	return normal(opPolynomial, cols, y, w)
}

// Multilinear fits y = c[0] + c[1]*x[0] + ... + c[m]*x[m-1], where x[j]
// holds the samples of the j-th variable.
func Multilinear[T hwy.Floats](x [][]T, y []T) ([]T, error) {
	return MultilinearWeighted(x, y, ones[T](len(y)))
}

// MultilinearWeighted is Multilinear with one weight per sample.
func MultilinearWeighted[T hwy.Floats](x [][]T, y, w []T) ([]T, error) {
	if err := checkSamples(opMultilinear, len(x)+1, y, w, x...); err != nil {
		return nil, err
	}
	cols := make([][]T, 0, len(x)+1)
	cols = append(cols, ones[T](len(y)))
	cols = append(cols, x...)
	return normal(opMultilinear, cols, y, w)
}

// Multiexponential fits y = c[0] * x[0]^c[1] * ... * x[m-1]^c[m].
func Multiexponential[T hwy.Floats](x [][]T, y []T) ([]T, error) {
	return MultiexponentialWeighted(x, y, ones[T](len(y)))
}

// MultiexponentialWeighted is Multiexponential with weights on the
// logarithmic residuals.
func MultiexponentialWeighted[T hwy.Floats](x [][]T, y, w []T) ([]T, error) {
	if err := checkSamples(opMultiexponential, len(x)+1, y, w, x...); err != nil {
		return nil, err
	}
	cols := make([][]T, 0, len(x)+1)
	cols = append(cols, ones[T](len(y)))
	for _, xj := range x {
		lx, err := logs(opMultiexponential, xj)
		if err != nil {
			return nil, err
		}
		cols = append(cols, lx)
	}
	ly, err := logs(opMultiexponential, y)
	if err != nil {
		return nil, err
	}
	c, err := normal(opMultiexponential, cols, ly, w)
	if err != nil {
		return nil, err
	}
	c[0] = jmath.Exp(c[0])
	return c, nil
}

// normal assembles the weighted normal equations of the design matrix
// whose columns are cols and solves them with solve.Matrix.
func normal[T hwy.Floats](op string, cols [][]T, y, w []T) ([]T, error) {
	m := len(cols)
	wcol := make([]T, len(y))
	a := make([]T, m*(m+1))
	for i := range m {
		copy(wcol, cols[i])
		vec.Mul(wcol, w)
		for j := i; j < m; j++ {
			s := vec.Dot(wcol, cols[j])
			a[i*(m+1)+j] = s
			a[j*(m+1)+i] = s
		}
		a[i*(m+1)+m] = vec.Dot(wcol, y)
	}
	if err := solve.Matrix(a, m); err != nil {
		return nil, regressionErrorf(op, err)
	}
	c := make([]T, m)
	for i := range c {
		c[i] = a[i*(m+1)+m]
	}
	return c, nil
}
