package flux

import (
	"errors"
	stdmath "math"
	"math/rand/v2"
	"testing"

	"github.com/go-jbm/jbm/hwy"
)

func TestKindString(t *testing.T) {
	for k := range Kind(NumKinds) {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", got)
	}
	if _, err := ParseKind("upwind"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(upwind) error = %v, want ErrUnknownKind", err)
	}
	if Limiter[float64](Kind(-1)) != nil || LimiterVec[float64](Kind(NumKinds)) != nil {
		t.Error("unknown kind returned a limiter")
	}
}

func TestLimiterValues(t *testing.T) {
	tests := []struct {
		kind   Kind
		d1, d2 float64
		want   float64
	}{
		{KindTotal, 1, 2, 0},
		{KindNull, -1, 2, 1},
		{KindCentred, -3, 2, -1.5},
		{KindCentred, 1, 0, 0},
		{KindSuperbee, 1, 4, 0.5},
		{KindSuperbee, 1, 1.5, 1},
		{KindSuperbee, 3, 2, 1.5},
		{KindSuperbee, 5, 1, 2},
		{KindVanLeer, 1, 1, 1},
		{KindVanLeer, 3, 1, 1.5},
		{KindVanAlbada, 1, 1, 1},
		{KindVanAlbada, 2, 1, 1.2},
		{KindMinsuper, 3, 2, 1.5},
		{KindMinsuper, 9, 2, 2},
		{KindSupermin, 1, 4, 0.5},
		{KindSupermin, 3, 2, 1},
		{KindMinmod, 1, 2, 0.5},
		{KindMinmod, 4, 2, 1},
		{KindMonotonizedCentral, 1, 8, 0.25},
		{KindMonotonizedCentral, 1, 1, 1},
		{KindMonotonizedCentral, 4, 1, 2},
		{KindMean, 3, 1, 2},
		{KindMinmod, -1, 2, 0},
		{KindMean, 1, 0, 0},
		{KindSuperbee, 1e-9, 1e-9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := Limiter[float64](tt.kind)(tt.d1, tt.d2); stdmath.Abs(got-tt.want) > 1e-15 {
				t.Errorf("%v(%v, %v) = %v, want %v", tt.kind, tt.d1, tt.d2, got, tt.want)
			}
		})
	}
}

// TestBounds checks that bounded limiters stay in range for random
// differences of either sign.
func TestBounds(t *testing.T) {
	bounds := []struct {
		kind   Kind
		lo, hi float64
	}{
		{KindMinmod, 0, 1},
		{KindSuperbee, 0, 2},
		{KindVanLeer, 0, 2},
		{KindVanAlbada, 0, 1.5},
		{KindMinsuper, 0, 2},
		{KindSupermin, 0, 1},
		{KindMonotonizedCentral, 0, 2},
		{KindTotal, 0, 0},
		{KindNull, 1, 1},
	}
	r := rand.New(rand.NewPCG(5, 6))
	for _, b := range bounds {
		fn := Limiter[float64](b.kind)
		for range 10000 {
			d1 := (r.Float64()*2 - 1) * stdmath.Pow(10, r.Float64()*8-4)
			d2 := (r.Float64()*2 - 1) * stdmath.Pow(10, r.Float64()*8-4)
			got := fn(d1, d2)
			if got < b.lo || got > b.hi {
				t.Fatalf("%v(%v, %v) = %v outside [%v, %v]", b.kind, d1, d2, got, b.lo, b.hi)
			}
			if d1*d2 <= 0x1p-52 && b.kind != KindNull && got != 0 {
				t.Fatalf("%v(%v, %v) = %v, want 0 for opposite signs", b.kind, d1, d2, got)
			}
		}
	}
}

func TestLimiterVec(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	const n = 37
	d1, d2 := make([]float32, n), make([]float32, n)
	for i := range n {
		d1[i] = float32(r.Float64()*4 - 1)
		d2[i] = float32(r.Float64()*4 - 1)
	}
	d1[3], d2[5] = 0, 0
	for k := range Kind(NumKinds) {
		t.Run(k.String(), func(t *testing.T) {
			out := make([]float32, n)
			Slice(k, d1, d2, out)
			fn := Limiter[float32](k)
			for i := range n {
				want := fn(d1[i], d2[i])
				if stdmath.Abs(float64(out[i]-want)) > 1e-6*stdmath.Abs(float64(want)) {
					t.Errorf("lane %d (%v, %v) = %v, want %v", i, d1[i], d2[i], out[i], want)
				}
			}
		})
	}
}

func TestLimiterVecLanes(t *testing.T) {
	fn := LimiterVec[float64](KindSuperbee)
	v := fn(hwy.LoadN([]float64{1, -1, 3, 0}, 4), hwy.LoadN([]float64{4, 1, 2, 1}, 4))
	want := []float64{0.5, 0, 1.5, 0}
	for i, w := range want {
		if v.Lane(i) != w {
			t.Errorf("lane %d = %v, want %v", i, v.Lane(i), w)
		}
	}
}

func BenchmarkSlice(b *testing.B) {
	const n = 4096
	d1, d2, out := make([]float32, n), make([]float32, n), make([]float32, n)
	for i := range n {
		d1[i], d2[i] = float32(i%7)-2, float32(i%5)-1
	}
	b.ReportAllocs()
	for b.Loop() {
		Slice(KindVanLeer, d1, d2, out)
	}
}
