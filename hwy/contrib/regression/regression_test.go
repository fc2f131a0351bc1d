package regression

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinearExact(t *testing.T) {
	a, b, err := Linear([]float64{0, 1, 2}, []float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if stdmath.Abs(a-1) > 1e-15 || stdmath.Abs(b-1) > 1e-15 {
		t.Errorf("Linear = %v + %v x, want 1 + 1 x", a, b)
	}
}

func TestLinearFloat32(t *testing.T) {
	x := []float32{-2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := make([]float32, len(x))
	for i, v := range x {
		y[i] = 0.5 - 3*v
	}
	a, b, err := Linear(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if stdmath.Abs(float64(a)-0.5) > 1e-5 || stdmath.Abs(float64(b)+3) > 1e-5 {
		t.Errorf("Linear = %v + %v x, want 0.5 - 3 x", a, b)
	}
}

func TestLinearWeighted(t *testing.T) {
	// The outlier at x=3 carries no weight.
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 100}
	a, b, err := LinearWeighted(x, y, []float64{1, 1, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if stdmath.Abs(a-1) > 1e-13 || stdmath.Abs(b-2) > 1e-13 {
		t.Errorf("LinearWeighted = %v + %v x, want 1 + 2 x", a, b)
	}
}

func TestLinearLeastSquares(t *testing.T) {
	// Residuals -1/6, 1/3, -1/6 around y = 1/6 + 1.5 x.
	a, b, err := Linear([]float64{0, 1, 2}, []float64{0, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if stdmath.Abs(a-1.0/6) > 1e-15 || stdmath.Abs(b-1.5) > 1e-15 {
		t.Errorf("Linear = %v + %v x, want 1/6 + 1.5 x", a, b)
	}
}

func TestExponential(t *testing.T) {
	x := []float64{0.5, 1, 2, 4, 8}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3 * stdmath.Pow(v, -1.25)
	}
	a, b, err := Exponential(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if stdmath.Abs(a-3) > 1e-13 || stdmath.Abs(b+1.25) > 1e-13 {
		t.Errorf("Exponential = %v x^%v, want 3 x^-1.25", a, b)
	}
}

func TestPolynomial(t *testing.T) {
	want := []float64{2, -1, 0.5, 0.25}
	poly := func(x float64) float64 { return want[0] + x*(want[1]+x*(want[2]+x*want[3])) }
	var x, y []float64
	for v := -2.0; v <= 3; v += 0.5 {
		x = append(x, v)
		y = append(y, poly(v))
	}
	got, err := Polynomial(x, y, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-10)); diff != "" {
		t.Errorf("Polynomial mismatch (-want +got):\n%s", diff)
	}

	c, err := Polynomial([]float64{0, 1, 2}, []float64{1, 2, 3}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 1}, c, cmpopts.EquateApprox(0, 1e-14)); diff != "" {
		t.Errorf("degree 1 mismatch (-want +got):\n%s", diff)
	}

	c, err = Polynomial([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 4}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if stdmath.Abs(c[0]-4) > 1e-14 {
		t.Errorf("degree 0 fit = %v, want the mean 4", c[0])
	}
}

func TestMultilinear(t *testing.T) {
	x := [][]float64{
		{0, 1, 0, 1, 2, 3},
		{0, 0, 1, 1, 5, -1},
	}
	y := make([]float64, len(x[0]))
	for i := range y {
		y[i] = 1 + 2*x[0][i] - 3*x[1][i]
	}
	got, err := Multilinear(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2, -3}, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Multilinear mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiexponential(t *testing.T) {
	x := [][]float64{
		{1, 2, 3, 4, 0.5, 2},
		{1, 1, 2, 0.25, 3, 5},
	}
	y := make([]float64, len(x[0]))
	for i := range y {
		y[i] = 0.75 * stdmath.Pow(x[0][i], 2) * stdmath.Pow(x[1][i], -0.5)
	}
	got, err := Multiexponential(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0.75, 2, -0.5}, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Multiexponential mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	_, _, errLen := Linear([]float64{1, 2}, []float64{1})
	_, _, errFew := Linear([]float64{1}, []float64{1})
	_, _, errDomain := Exponential([]float64{1, 0}, []float64{1, 2})
	_, _, errDomainY := Exponential([]float64{1, 2}, []float64{-1, 2})
	_, errDegree := Polynomial([]float64{1, 2}, []float64{1, 2}, 2)
	_, errNeg := Polynomial([]float64{1, 2}, []float64{1, 2}, -1)
	_, errWeights := PolynomialWeighted([]float64{1, 2}, []float64{1, 2}, []float64{1}, 1)
	_, errVar := Multilinear([][]float64{{1, 2, 3}, {1, 2}}, []float64{1, 2, 3})
	_, errFewMulti := Multilinear([][]float64{{1, 2}, {1, 2}}, []float64{1, 2})
	_, errNaN := Multiexponential([][]float64{{1, stdmath.NaN(), 3}}, []float64{1, 2, 3})

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"length", errLen, ErrDimension},
		{"few", errFew, ErrTooFewPoints},
		{"domain x", errDomain, ErrDomain},
		{"domain y", errDomainY, ErrDomain},
		{"degree", errDegree, ErrTooFewPoints},
		{"negative degree", errNeg, ErrDimension},
		{"weights", errWeights, ErrDimension},
		{"variables", errVar, ErrDimension},
		{"few multilinear", errFewMulti, ErrTooFewPoints},
		{"NaN", errNaN, ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("got %v, want %v", tt.err, tt.want)
			}
		})
	}
}
