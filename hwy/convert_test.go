package hwy

import (
	"math"
	"testing"
)

func TestRoundTruncCeilFloor(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	input := []float64{1.4, 1.5, 2.5, -1.5, -1.6, -0.1, 0, inf, -inf, nan}
	tests := []struct {
		name string
		fn   func(Vec[float64]) Vec[float64]
		want []float64
	}{
		{"Round", Round[float64], []float64{1, 2, 3, -2, -2, 0, 0, inf, -inf, nan}},
		{"Trunc", Trunc[float64], []float64{1, 1, 2, -1, -1, 0, 0, inf, -inf, nan}},
		{"Ceil", Ceil[float64], []float64{2, 2, 3, -1, -1, 0, 0, inf, -inf, nan}},
		{"Floor", Floor[float64], []float64{1, 1, 2, -2, -2, -1, 0, inf, -inf, nan}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(LoadN(input, len(input)))
			for i, w := range tt.want {
				g := got.Lane(i)
				if g != w && !(math.IsNaN(g) && math.IsNaN(w)) {
					t.Errorf("%s(%v) = %v, want %v", tt.name, input[i], g, w)
				}
			}
		})
	}
}

func TestRoundingFloat32(t *testing.T) {
	v := LoadN([]float32{1.5, -1.5, 0.1, -0.1}, 4)
	for _, tt := range []struct {
		name string
		got  Vec[float32]
		want []float32
	}{
		{"Round", Round(v), []float32{2, -2, 0, 0}},
		{"Floor", Floor(v), []float32{1, -2, 0, -1}},
		{"Ceil", Ceil(v), []float32{2, -1, 1, 0}},
	} {
		for i, w := range tt.want {
			if tt.got.Lane(i) != w {
				t.Errorf("%s lane %d = %v, want %v", tt.name, i, tt.got.Lane(i), w)
			}
		}
	}
}

func BenchmarkFloor(b *testing.B) {
	v := Set[float32](3.14159)
	b.ReportAllocs()
	for b.Loop() {
		_ = Floor(v)
	}
}
