package integral

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/go-jbm/jbm/hwy"
	jmath "github.com/go-jbm/jbm/hwy/contrib/math"
)

func monomial(k int) func(float64) float64 {
	return func(x float64) float64 { return stdmath.Pow(x, float64(k)) }
}

// TestGaussNExact checks that an n-point rule integrates x^(2n-1) exactly.
func TestGaussNExact(t *testing.T) {
	for n := 1; n <= MaxPoints; n++ {
		k := 2*n - 1
		got, err := GaussN(monomial(k), 0, 2, n)
		if err != nil {
			t.Fatal(err)
		}
		want := stdmath.Pow(2, float64(k+1)) / float64(k+1)
		if stdmath.Abs(got-want) > 1e-13*want {
			t.Errorf("n=%d: integral of x^%d on [0,2] = %v, want %v", n, k, got, want)
		}
	}
}

func TestGaussNWeights(t *testing.T) {
	for n := 1; n <= MaxPoints; n++ {
		got, err := GaussN(func(float64) float64 { return 1 }, -1, 1, n)
		if err != nil {
			t.Fatal(err)
		}
		if stdmath.Abs(got-2) > 1e-15 {
			t.Errorf("n=%d: weights sum to %v", n, got)
		}
	}
}

func TestGaussDefault(t *testing.T) {
	k := 2*DefaultPoints - 1
	got := Gauss(monomial(k), -1, 3)
	want := (stdmath.Pow(3, float64(k+1)) - 1) / float64(k+1)
	if stdmath.Abs(got-want) > 1e-12*want {
		t.Errorf("Gauss x^%d on [-1,3] = %v, want %v", k, got, want)
	}
}

func TestGaussExp(t *testing.T) {
	tests := []struct {
		n   int
		tol float64
	}{
		{3, 1e-5},
		{5, 1e-11},
		{7, 1e-14},
	}
	want := stdmath.E - 1
	for _, tt := range tests {
		got, err := GaussN(stdmath.Exp, 0, 1, tt.n)
		if err != nil {
			t.Fatal(err)
		}
		if stdmath.Abs(got-want) > tt.tol {
			t.Errorf("n=%d: integral of exp on [0,1] = %v, want %v", tt.n, got, want)
		}
	}
}

func TestGaussFloat32(t *testing.T) {
	got, err := GaussN(jmath.Sin[float32], 0, float32(stdmath.Pi), 7)
	if err != nil {
		t.Fatal(err)
	}
	if stdmath.Abs(float64(got)-2) > 1e-5 {
		t.Errorf("integral of sin on [0,pi] = %v, want 2", got)
	}
}

func TestGaussVec(t *testing.T) {
	for n := 1; n <= MaxPoints; n++ {
		want, _ := GaussN(jmath.Exp[float64], -0.5, 2, n)
		got, err := GaussVec(jmath.ExpVec[float64], -0.5, 2, n)
		if err != nil {
			t.Fatal(err)
		}
		if stdmath.Abs(got-want) > 1e-14*want {
			t.Errorf("n=%d: GaussVec = %v, GaussN = %v", n, got, want)
		}
	}
}

func TestGaussVecLanes(t *testing.T) {
	var lanes []int
	_, _ = GaussVec(func(x hwy.Vec[float64]) hwy.Vec[float64] {
		lanes = append(lanes, x.NumLanes())
		return x
	}, 0, 1, 6)
	if len(lanes) != 1 || lanes[0] != 6 {
		t.Errorf("integrand called with lane counts %v, want [6]", lanes)
	}
}

func TestPointsError(t *testing.T) {
	for _, n := range []int{0, -1, 8} {
		if _, err := GaussN(stdmath.Exp, 0, 1, n); !errors.Is(err, ErrPoints) {
			t.Errorf("GaussN n=%d: got %v, want ErrPoints", n, err)
		}
		if _, err := GaussVec(jmath.ExpVec[float64], 0, 1, n); !errors.Is(err, ErrPoints) {
			t.Errorf("GaussVec n=%d: got %v, want ErrPoints", n, err)
		}
	}
}

func BenchmarkGauss(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Gauss(jmath.Exp[float64], 0, 1)
	}
}
