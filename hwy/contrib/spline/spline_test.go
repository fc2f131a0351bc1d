package spline

import (
	"errors"
	stdmath "math"
	"math/rand/v2"
	"testing"
)

func randomKnots(r *rand.Rand, n int) []float64 {
	x := make([]float64, n)
	x[0] = r.Float64()*4 - 2
	for i := 1; i < n; i++ {
		x[i] = x[i-1] + 0.5 + r.Float64()*2
	}
	return x
}

func TestParabolicReproducesQuadratic(t *testing.T) {
	q := func(x float64) float64 { return 0.5*x*x - 3*x + 1 }
	r := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{3, 4, 7, 20} {
		x := randomKnots(r, n)
		y := make([]float64, n)
		for i := range x {
			y[i] = q(x[i])
		}
		s, err := Cubic(x, y, Parabolic)
		if err != nil {
			t.Fatal(err)
		}
		for i := range n - 1 {
			_, _, _, d := s.Segment(i)
			if stdmath.Abs(d) > 1e-10 {
				t.Errorf("n=%d segment %d cubic term %v", n, i, d)
			}
		}
		for _, tt := range []float64{x[0], (x[0] + x[1]) / 2, x[n/2] + 0.01, x[n-1], x[n-1] + 1} {
			if got, want := s.Eval(tt), q(tt); stdmath.Abs(got-want) > 1e-9*(1+stdmath.Abs(want)) {
				t.Errorf("n=%d Eval(%v) = %v, want %v", n, tt, got, want)
			}
		}
	}
}

func TestNaturalSmoothness(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 3))
	for _, n := range []int{3, 5, 12} {
		x := randomKnots(r, n)
		y := make([]float64, n)
		for i := range y {
			y[i] = r.Float64()*10 - 5
		}
		s, err := Cubic(x, y, Natural)
		if err != nil {
			t.Fatal(err)
		}
		for i := range n {
			if got := s.Eval(x[i]); stdmath.Abs(got-y[i]) > 1e-9 {
				t.Errorf("n=%d knot %d: Eval = %v, want %v", n, i, got, y[i])
			}
		}
		// Slope and curvature match across each interior knot.
		for i := 1; i < n-1; i++ {
			y0, b0, c0, d0 := s.Segment(i - 1)
			_, b1, c1, _ := s.Segment(i)
			h := x[i] - x[i-1]
			if v := y0 + h*(b0+h*(c0+h*d0)); stdmath.Abs(v-y[i]) > 1e-9 {
				t.Errorf("n=%d segment %d ends at %v, want %v", n, i-1, v, y[i])
			}
			if v := b0 + h*(2*c0+3*h*d0); stdmath.Abs(v-b1) > 1e-8*(1+stdmath.Abs(b1)) {
				t.Errorf("n=%d knot %d slope %v vs %v", n, i, v, b1)
			}
			if v := c0 + 3*h*d0; stdmath.Abs(v-c1) > 1e-8*(1+stdmath.Abs(c1)) {
				t.Errorf("n=%d knot %d curvature %v vs %v", n, i, v, c1)
			}
		}
		_, _, c, _ := s.Segment(0)
		_, _, cl, dl := s.Segment(n - 2)
		if stdmath.Abs(c) > 1e-10 || stdmath.Abs(cl+3*(x[n-1]-x[n-2])*dl) > 1e-8 {
			t.Errorf("n=%d end curvature not zero: %v, %v", n, c, cl+3*(x[n-1]-x[n-2])*dl)
		}
	}
}

func TestTwoKnots(t *testing.T) {
	for _, end := range []EndCondition{Parabolic, Natural} {
		s, err := Cubic([]float64{1, 3}, []float64{2, 6}, end)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.Eval(2); got != 4 {
			t.Errorf("%v: Eval(2) = %v, want 4", end, got)
		}
		if got := s.Derivative(0); got != 2 {
			t.Errorf("%v: Derivative(0) = %v, want 2", end, got)
		}
	}
}

func TestFloat32(t *testing.T) {
	x := []float32{0, 0.5, 1.25, 2, 3}
	y := make([]float32, len(x))
	for i, v := range x {
		y[i] = 2*v*v + 1
	}
	s, err := Cubic(x, y, Parabolic)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]float32, 3)
	s.EvalSlice([]float32{0.25, 1.5, 2.5}, out)
	for i, tt := range []float32{0.25, 1.5, 2.5} {
		if want := 2*tt*tt + 1; stdmath.Abs(float64(out[i]-want)) > 1e-5 {
			t.Errorf("Eval(%v) = %v, want %v", tt, out[i], want)
		}
	}
	if s.Knots() != len(x) {
		t.Errorf("Knots() = %d", s.Knots())
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		end  EndCondition
		want error
	}{
		{"lengths", []float64{0, 1}, []float64{0}, Natural, ErrDimension},
		{"one knot", []float64{0}, []float64{1}, Natural, ErrTooFewPoints},
		{"repeated knot", []float64{0, 1, 1}, []float64{0, 1, 2}, Parabolic, ErrKnotOrder},
		{"decreasing", []float64{0, 2, 1}, []float64{0, 1, 2}, Natural, ErrKnotOrder},
		{"NaN knot", []float64{0, stdmath.NaN(), 1}, []float64{0, 1, 2}, Natural, ErrKnotOrder},
		{"end condition", []float64{0, 1}, []float64{0, 1}, EndCondition(7), ErrEndCondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Cubic(tt.x, tt.y, tt.end); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func BenchmarkCubic(b *testing.B) {
	r := rand.New(rand.NewPCG(4, 5))
	x := randomKnots(r, 256)
	y := make([]float64, len(x))
	for i := range y {
		y[i] = stdmath.Sin(x[i])
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Cubic(x, y, Natural)
	}
}
