package solve

import (
	"errors"
	stdmath "math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestTridiagonal(t *testing.T) {
	c := []float64{1, -1, -1}
	d := []float64{1, 4, 2, 1}
	e := []float64{-1, 1, -1}
	h := []float64{3, -1, 0, 2}
	if err := Tridiagonal(c, d, e, h); err != nil {
		t.Fatal(err)
	}
	want := []float64{2, -1, 1, 3}
	if diff := cmp.Diff(want, h, approx); diff != "" {
		t.Errorf("Tridiagonal mismatch (-want +got):\n%s", diff)
	}
}

func TestTridiagonalFloat32(t *testing.T) {
	c := []float32{1, -1, -1}
	d := []float32{1, 4, 2, 1}
	e := []float32{-1, 1, -1}
	h := []float32{3, -1, 0, 2}
	if err := Tridiagonal(c, d, e, h); err != nil {
		t.Fatal(err)
	}
	want := []float32{2, -1, 1, 3}
	if diff := cmp.Diff(want, h, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("Tridiagonal mismatch (-want +got):\n%s", diff)
	}
}

func TestTridiagonalZero(t *testing.T) {
	tests := []struct {
		name       string
		c, d, e, h []float64
		want       []float64
	}{
		{
			name: "no zero pivot",
			c:    []float64{1, -1, -1},
			d:    []float64{1, 4, 2, 1},
			e:    []float64{-1, 1, -1},
			h:    []float64{3, -1, 0, 2},
			want: []float64{2, -1, 1, 3},
		},
		{
			name: "first pivot zero",
			c:    []float64{1, 2},
			d:    []float64{0, 3, 2},
			e:    []float64{5, 1},
			h:    []float64{7, 9, 4},
			want: []float64{0, 3.5, -1.5},
		},
		{
			name: "last pivot zero",
			c:    []float64{1},
			d:    []float64{2, 0.5},
			e:    []float64{1},
			h:    []float64{4, 1},
			want: []float64{2, 0},
		},
		{
			name: "single unknown",
			c:    []float64{},
			d:    []float64{1e-300},
			e:    []float64{},
			h:    []float64{5},
			want: []float64{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := TridiagonalZero(tt.c, tt.d, tt.e, tt.h); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, tt.h, approx); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// band holds the diagonals of a pentadiagonal matrix.
type band struct{ b, c, d, e, f []float64 }

func (m band) clone() band {
	cp := func(s []float64) []float64 { return append([]float64(nil), s...) }
	return band{cp(m.b), cp(m.c), cp(m.d), cp(m.e), cp(m.f)}
}

func (m band) mul(u []float64) []float64 {
	n := len(m.d)
	h := make([]float64, n)
	for i := range n {
		h[i] = m.d[i] * u[i]
		if i >= 1 {
			h[i] += m.c[i-1] * u[i-1]
		}
		if i >= 2 {
			h[i] += m.b[i-2] * u[i-2]
		}
		if i+1 < n {
			h[i] += m.e[i] * u[i+1]
		}
		if i+2 < n {
			h[i] += m.f[i] * u[i+2]
		}
	}
	return h
}

// randomBand returns a diagonally dominant pentadiagonal matrix.
func randomBand(r *rand.Rand, n int) band {
	fill := func(k int) []float64 {
		s := make([]float64, max(k, 0))
		for i := range s {
			s[i] = r.Float64()*2 - 1
		}
		return s
	}
	m := band{b: fill(n - 2), c: fill(n - 1), d: fill(n), e: fill(n - 1), f: fill(n - 2)}
	for i := range m.d {
		m.d[i] = 5 + m.d[i]
	}
	return m
}

func TestPentadiagonal(t *testing.T) {
	m := band{
		b: []float64{1, -1, 2, 0.5},
		c: []float64{2, 1, -1, 1, 3},
		d: []float64{6, 7, 8, 9, 7, 6},
		e: []float64{1, -2, 1, 2, 1},
		f: []float64{0.5, 1, -1, 2},
	}
	u := []float64{1, -2, 3, 0.5, -1, 2}
	h := m.mul(u)
	if diff := cmp.Diff([]float64{5.5, -17.5, 24.5, 5.5, 1.5, 9.25}, h); diff != "" {
		t.Fatalf("fixture mismatch (-want +got):\n%s", diff)
	}
	if err := Pentadiagonal(m.b, m.c, m.d, m.e, m.f, h); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(u, h, approx); diff != "" {
		t.Errorf("Pentadiagonal mismatch (-want +got):\n%s", diff)
	}
}

func TestPentadiagonalRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{1, 2, 3, 4, 7, 50} {
		m := randomBand(r, n)
		u := make([]float64, n)
		for i := range u {
			u[i] = r.Float64()*10 - 5
		}
		for _, solver := range []struct {
			name string
			fn   func(b, c, d, e, f, h []float64) error
		}{
			{"Pentadiagonal", Pentadiagonal[float64]},
			{"PentadiagonalZero", PentadiagonalZero[float64]},
		} {
			mm := m.clone()
			h := m.mul(u)
			if err := solver.fn(mm.b, mm.c, mm.d, mm.e, mm.f, h); err != nil {
				t.Fatalf("%s n=%d: %v", solver.name, n, err)
			}
			if diff := cmp.Diff(u, h, approx); diff != "" {
				t.Errorf("%s n=%d mismatch (-want +got):\n%s", solver.name, n, diff)
			}
		}
	}
}

func TestPentadiagonalZeroPivot(t *testing.T) {
	// x0 is dropped; rows 1 and 2 then form a 2x2 system.
	m := band{
		b: []float64{4},
		c: []float64{1, 1},
		d: []float64{0, 2, 3},
		e: []float64{9, 1},
		f: []float64{9},
	}
	h := []float64{100, 5, 7}
	if err := PentadiagonalZero(m.b, m.c, m.d, m.e, m.f, h); err != nil {
		t.Fatal(err)
	}
	// 2*x1 + x2 = 5, x1 + 3*x2 = 7.
	want := []float64{0, 8.0 / 5, 9.0 / 5}
	if diff := cmp.Diff(want, h, approx); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPentadiagonalMatchesTridiagonal(t *testing.T) {
	c := []float64{1, -1, -1}
	d := []float64{1, 4, 2, 1}
	e := []float64{-1, 1, -1}
	h := []float64{3, -1, 0, 2}
	if err := Pentadiagonal([]float64{0, 0}, c, d, e, []float64{0, 0}, h); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{2, -1, 1, 3}, h, approx); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrix(t *testing.T) {
	tests := []struct {
		name string
		n    int
		a    []float64
		want []float64
	}{
		{
			name: "1x1",
			n:    1,
			a:    []float64{4, 2},
			want: []float64{0.5},
		},
		{
			name: "needs pivoting",
			n:    3,
			a: []float64{
				0, 2, 1, 7,
				1, 1, 1, 6,
				2, 1, 3, 13,
			},
			want: []float64{1, 2, 3},
		},
		{
			name: "tridiagonal fixture",
			n:    4,
			a: []float64{
				1, -1, 0, 0, 3,
				1, 4, 1, 0, -1,
				0, -1, 2, -1, 0,
				0, 0, -1, 1, 2,
			},
			want: []float64{2, -1, 1, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Matrix(tt.a, tt.n); err != nil {
				t.Fatal(err)
			}
			got := make([]float64, tt.n)
			for i := range got {
				got[i] = tt.a[i*(tt.n+1)+tt.n]
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatrixRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{2, 5, 9, 17} {
		u := make([]float64, n)
		for i := range u {
			u[i] = r.Float64()*4 - 2
		}
		a := make([]float64, n*(n+1))
		for i := range n {
			var s float64
			for j := range n {
				v := r.Float64()*2 - 1
				if i == j {
					v += float64(n)
				}
				a[i*(n+1)+j] = v
				s += v * u[j]
			}
			a[i*(n+1)+n] = s
		}
		if err := Matrix(a, n); err != nil {
			t.Fatal(err)
		}
		for i := range n {
			if got := a[i*(n+1)+n]; stdmath.Abs(got-u[i]) > 1e-12 {
				t.Errorf("n=%d x[%d] = %v, want %v", n, i, got, u[i])
			}
		}
	}
}

func TestMatrixSingular(t *testing.T) {
	a := []float64{
		1, 2, 3,
		2, 4, 6,
	}
	if err := Matrix(a, 2); err != nil {
		t.Fatal(err)
	}
	x := a[5]
	if !stdmath.IsNaN(x) && !stdmath.IsInf(x, 0) {
		t.Errorf("singular system gave finite x1 = %v", x)
	}
}

func TestDimensionErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"Matrix short", Matrix(make([]float64, 5), 2)},
		{"Matrix zero", Matrix[float64](nil, 0)},
		{"Tridiagonal empty", Tridiagonal[float64](nil, nil, nil, nil)},
		{"Tridiagonal C", Tridiagonal([]float64{1, 2}, []float64{1, 1}, []float64{1}, []float64{1, 1})},
		{"TridiagonalZero H", TridiagonalZero([]float64{1}, []float64{1, 1}, []float64{1}, []float64{1})},
		{"Pentadiagonal B", Pentadiagonal([]float64{1}, []float64{1, 1}, []float64{1, 1, 1}, []float64{1, 1}, []float64{}, []float64{1, 1, 1})},
		{"PentadiagonalZero F", PentadiagonalZero([]float64{}, []float64{1}, []float64{1, 1}, []float64{1}, []float64{1}, []float64{1, 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrDimension) {
				t.Errorf("got %v, want ErrDimension", tt.err)
			}
		})
	}
}

func BenchmarkTridiagonal(b *testing.B) {
	const n = 1024
	c, d, e, h := make([]float64, n-1), make([]float64, n), make([]float64, n-1), make([]float64, n)
	b.ReportAllocs()
	for b.Loop() {
		for i := range d {
			d[i], h[i] = 4, 1
		}
		for i := range c {
			c[i], e[i] = 1, 1
		}
		_ = Tridiagonal(c, d, e, h)
	}
}

func BenchmarkMatrix(b *testing.B) {
	const n = 32
	a := make([]float64, n*(n+1))
	b.ReportAllocs()
	for b.Loop() {
		for i := range n {
			for j := range n + 1 {
				a[i*(n+1)+j] = 1 / float64(i+j+1)
			}
			a[i*(n+1)+i] += n
		}
		_ = Matrix(a, n)
	}
}
