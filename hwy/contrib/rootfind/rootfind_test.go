package rootfind

import (
	"errors"
	stdmath "math"
	"testing"

	jmath "github.com/go-jbm/jbm/hwy/contrib/math"
)

func TestBisection(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 0, 2, stdmath.Sqrt2},
		{"reversed", func(x float64) float64 { return x*x - 2 }, 2, 0, stdmath.Sqrt2},
		{"cos", stdmath.Cos, 1, 2, stdmath.Pi / 2},
		{"root at end", func(x float64) float64 { return x - 1 }, 1, 3, 1},
		{"log", jmath.Log[float64], 0.5, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bisection(tt.f, tt.a, tt.b, 1e-12, 100)
			if err != nil {
				t.Fatal(err)
			}
			if stdmath.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBisectionErrors(t *testing.T) {
	sq := func(x float64) float64 { return x*x + 1 }
	if _, err := Bisection(sq, -1, 1, 1e-9, 50); !errors.Is(err, ErrNotBracketed) {
		t.Errorf("got %v, want ErrNotBracketed", err)
	}
	got, err := Bisection(func(x float64) float64 { return x - 0.3 }, 0, 1, 1e-12, 3)
	if !errors.Is(err, ErrMaxIterations) {
		t.Errorf("got %v, want ErrMaxIterations", err)
	}
	if stdmath.Abs(got-0.3) > 0.125 {
		t.Errorf("estimate %v is not within the last interval", got)
	}
}

func TestBisectionFloat32(t *testing.T) {
	got, err := Bisection(func(x float32) float32 { return jmath.Exp(x) - 3 }, 0, 2, 0, 200)
	if err != nil {
		t.Fatal(err)
	}
	if stdmath.Abs(float64(got)-stdmath.Log(3)) > 1e-6 {
		t.Errorf("got %v, want ln 3", got)
	}
}

func TestBracket(t *testing.T) {
	f := func(x float64) float64 { return x - 10 }
	a, b, err := Bracket(f, 0, 1, 50)
	if err != nil {
		t.Fatal(err)
	}
	if !(f(a) <= 0 && f(b) >= 0) {
		t.Errorf("[%v, %v] does not bracket 10", a, b)
	}
	if _, _, err := Bracket(func(x float64) float64 { return x*x + 1 }, 0, 1, 20); !errors.Is(err, ErrNotBracketed) {
		t.Errorf("got %v, want ErrNotBracketed", err)
	}
	if _, _, err := Bracket(f, 2, 2, 20); !errors.Is(err, ErrNotBracketed) {
		t.Errorf("empty interval: got %v, want ErrNotBracketed", err)
	}
}

func TestBoundary(t *testing.T) {
	tests := []struct {
		name   string
		pred   func(float64) bool
		lo, hi float64
	}{
		{"square", func(x float64) bool { return x*x < 2 }, 0, 10},
		{"exp finite", func(x float64) bool { return !stdmath.IsInf(jmath.Exp(x), 0) }, 0, 1000},
		{"exp2 nonzero", func(x float64) bool { return jmath.Exp2(x) > 0 }, 0, -2000},
		{"huge range", func(x float64) bool { return x < 1 }, -stdmath.MaxFloat64, stdmath.MaxFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Boundary(tt.pred, tt.lo, tt.hi)
			if err != nil {
				t.Fatal(err)
			}
			if !tt.pred(got) {
				t.Errorf("pred(%v) is false", got)
			}
			if next := stdmath.Nextafter(got, tt.hi); tt.pred(next) {
				t.Errorf("pred(%v) is true past the boundary %v", next, got)
			}
		})
	}
	if _, err := Boundary(func(float64) bool { return true }, 0, 1); !errors.Is(err, ErrNotBracketed) {
		t.Errorf("got %v, want ErrNotBracketed", err)
	}
}

func TestBoundaryExp2Limits(t *testing.T) {
	hi, err := Boundary(func(x float32) bool { return !stdmath.IsInf(float64(jmath.Exp2(x)), 0) }, 0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if hi < 127 || hi >= 128 {
		t.Errorf("float32 Exp2 overflow boundary = %v, want in [127, 128)", hi)
	}
	lo, err := Boundary(func(x float32) bool { return jmath.Exp2(x) > 0 }, 0, -1000)
	if err != nil {
		t.Fatal(err)
	}
	if lo > -126 || lo <= -127 {
		t.Errorf("float32 Exp2 underflow boundary = %v, want in (-127, -126]", lo)
	}
}
