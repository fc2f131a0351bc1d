// Package solve solves dense and banded linear systems in place.
//
// Banded systems are passed as one slice per diagonal. For n unknowns the
// main diagonal D and the right-hand side H have n entries, the first
// sub- and super-diagonals C and E have n-1, and the second sub- and
// super-diagonals B and F have n-2. Row i of a pentadiagonal system reads
//
//	B[i-2]*x[i-2] + C[i-1]*x[i-1] + D[i]*x[i] + E[i]*x[i+1] + F[i]*x[i+2] = H[i]
//
// The solvers overwrite their diagonals and leave the solution in H.
// Singular systems are not detected: the plain solvers divide by whatever
// pivot they find and let NaN or Inf propagate. The Zero variants instead
// skip any row whose pivot is smaller in magnitude than the machine epsilon
// of T and set its unknown to 0.
package solve

import (
	"errors"
	"fmt"

	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
	"github.com/go-jbm/jbm/hwy/contrib/vec"
)

// ErrDimension is returned when the slice lengths do not describe a system.
var ErrDimension = errors.New("solve: inconsistent dimensions")

const (
	opMatrix            = "Matrix"
	opTridiagonal       = "Tridiagonal"
	opTridiagonalZero   = "TridiagonalZero"
	opPentadiagonal     = "Pentadiagonal"
	opPentadiagonalZero = "PentadiagonalZero"
)

func solveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Matrix solves the n×n system stored as a row-major augmented matrix a of
// n rows by n+1 columns, the last column holding the right-hand side.
//
// Each column is pivoted on its largest magnitude entry at or below the
// diagonal, the pivot row is scaled to a unit pivot and the rows below are
// eliminated. On return the last column holds the solution: x[i] is
// a[i*(n+1)+n].
func Matrix[T hwy.Floats](a []T, n int) error {
	if n <= 0 || len(a) != n*(n+1) {
		return solveErrorf(opMatrix, fmt.Errorf("%d entries for %d unknowns: %w", len(a), n, ErrDimension))
	}
	w := n + 1
	row := func(i int) []T { return a[i*w : (i+1)*w] }

	for i := range n {
		p, big := i, abs(a[i*w+i])
		for k := i + 1; k < n; k++ {
			if v := abs(a[k*w+i]); v > big {
				p, big = k, v
			}
		}
		if p != i {
			swapRows(row(i), row(p))
		}

		pivot := row(i)
		vec.Scale(1/pivot[i], pivot[i:])
		for k := i + 1; k < n; k++ {
			r := row(k)
			if f := r[i]; f != 0 {
				vec.MulConstAdd(r[i:], -f, pivot[i:])
			}
		}
	}

	for i := n - 1; i >= 0; i-- {
		r := row(i)
		s := r[n]
		for j := i + 1; j < n; j++ {
			s -= r[j] * a[j*w+n]
		}
		r[n] = s
	}
	return nil
}

func swapRows[T hwy.Floats](a, b []T) {
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

func abs[T hwy.Floats](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func checkTri[T hwy.Floats](op string, c, d, e, h []T) error {
	n := len(d)
	if n == 0 || len(h) != n || len(c) != n-1 || len(e) != n-1 {
		return solveErrorf(op, fmt.Errorf("C=%d D=%d E=%d H=%d: %w", len(c), n, len(e), len(h), ErrDimension))
	}
	return nil
}

func band2(n int) int { return max(n-2, 0) }

func checkPenta[T hwy.Floats](op string, b, c, d, e, f, h []T) error {
	n := len(d)
	if n == 0 || len(h) != n || len(c) != n-1 || len(e) != n-1 || len(b) != band2(n) || len(f) != band2(n) {
		return solveErrorf(op, fmt.Errorf("B=%d C=%d D=%d E=%d F=%d H=%d: %w",
			len(b), len(c), n, len(e), len(f), len(h), ErrDimension))
	}
	return nil
}

// Tridiagonal solves a tridiagonal system by Thomas elimination. C is the
// sub-diagonal, D the diagonal and E the super-diagonal. D and H are
// overwritten and H holds the solution.
func Tridiagonal[T hwy.Floats](c, d, e, h []T) error {
	if err := checkTri(opTridiagonal, c, d, e, h); err != nil {
		return err
	}
	n := len(d)
	for i := range n - 1 {
		f := c[i] / d[i]
		d[i+1] -= f * e[i]
		h[i+1] -= f * h[i]
	}
	h[n-1] /= d[n-1]
	for i := n - 2; i >= 0; i-- {
		h[i] = (h[i] - e[i]*h[i+1]) / d[i]
	}
	return nil
}

// TridiagonalZero is Tridiagonal with zero-pivot protection: a row whose
// pivot is below the machine epsilon in magnitude does not eliminate the
// row after it, and its unknown is set to 0.
func TridiagonalZero[T hwy.Floats](c, d, e, h []T) error {
	if err := checkTri(opTridiagonalZero, c, d, e, h); err != nil {
		return err
	}
	eps := precision.Epsilon[T]()
	n := len(d)
	for i := range n - 1 {
		if abs(d[i]) < eps {
			continue
		}
		f := c[i] / d[i]
		d[i+1] -= f * e[i]
		h[i+1] -= f * h[i]
	}
	if abs(d[n-1]) < eps {
		h[n-1] = 0
	} else {
		h[n-1] /= d[n-1]
	}
	for i := n - 2; i >= 0; i-- {
		if abs(d[i]) < eps {
			h[i] = 0
			continue
		}
		h[i] = (h[i] - e[i]*h[i+1]) / d[i]
	}
	return nil
}

// Pentadiagonal solves a pentadiagonal system. B and C are the second and
// first sub-diagonals, E and F the first and second super-diagonals. C, D,
// E and H are overwritten and H holds the solution.
func Pentadiagonal[T hwy.Floats](b, c, d, e, f, h []T) error {
	if err := checkPenta(opPentadiagonal, b, c, d, e, f, h); err != nil {
		return err
	}
	for i := range len(d) - 1 {
		pentaEliminate(i, b, c, d, e, f, h)
	}
	pentaBack(d, e, f, h, func(int) bool { return false })
	return nil
}

// PentadiagonalZero is Pentadiagonal with the zero-pivot protection of
// TridiagonalZero.
func PentadiagonalZero[T hwy.Floats](b, c, d, e, f, h []T) error {
	if err := checkPenta(opPentadiagonalZero, b, c, d, e, f, h); err != nil {
		return err
	}
	eps := precision.Epsilon[T]()
	for i := range len(d) - 1 {
		if abs(d[i]) < eps {
			continue
		}
		pentaEliminate(i, b, c, d, e, f, h)
	}
	pentaBack(d, e, f, h, func(i int) bool { return abs(d[i]) < eps })
	return nil
}

// pentaEliminate removes unknown i from rows i+1 and i+2.
func pentaEliminate[T hwy.Floats](i int, b, c, d, e, f, h []T) {
	n := len(d)
	g := c[i] / d[i]
	d[i+1] -= g * e[i]
	h[i+1] -= g * h[i]
	if i+2 >= n {
		return
	}
	e[i+1] -= g * f[i]

	g = b[i] / d[i]
	c[i+1] -= g * e[i]
	d[i+2] -= g * f[i]
	h[i+2] -= g * h[i]
}

func pentaBack[T hwy.Floats](d, e, f, h []T, skip func(int) bool) {
	n := len(d)
	for i := n - 1; i >= 0; i-- {
		if skip(i) {
			h[i] = 0
			continue
		}
		s := h[i]
		if i+1 < n {
			s -= e[i] * h[i+1]
		}
		if i+2 < n {
			s -= f[i] * h[i+2]
		}
		h[i] = s / d[i]
	}
}
