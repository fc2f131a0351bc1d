package hwy

import (
	"slices"
	"testing"
)

func TestBlendedStore(t *testing.T) {
	tests := []struct {
		name string
		mask []bool
		dst  []float64
		want []float64
	}{
		{"all true", []bool{true, true, true, true}, []float64{9, 9, 9, 9}, []float64{1, 2, 3, 4}},
		{"all false", []bool{false, false, false, false}, []float64{9, 9, 9, 9}, []float64{9, 9, 9, 9}},
		{"alternating", []bool{true, false, true, false}, []float64{9, 9, 9, 9}, []float64{1, 9, 3, 9}},
		{"tail mask", TailMask[float64](3, 4).bits, []float64{9, 9, 9, 9, 9}, []float64{1, 2, 3, 9, 9}},
		{"short dst", []bool{true, true, true, true}, []float64{9, 9}, []float64{1, 2}},
		{"empty dst", []bool{true, true, true, true}, []float64{}, []float64{}},
		{"short mask", []bool{true}, []float64{9, 9}, []float64{1, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			BlendedStore(LoadN([]float64{1, 2, 3, 4}, 4), MaskFromBits[float64](tt.mask), tt.dst)
			if !slices.Equal(tt.dst, tt.want) {
				t.Errorf("got %v, want %v", tt.dst, tt.want)
			}
		})
	}
}

func TestAlignedAlloc(t *testing.T) {
	for _, n := range []int{1, 3, 16, 1000} {
		f32 := AlignedAlloc[float32](n)
		if len(f32) != n || cap(f32) != n {
			t.Errorf("AlignedAlloc[float32](%d): len %d cap %d", n, len(f32), cap(f32))
		}
		if !IsAddrAligned(f32) {
			t.Errorf("AlignedAlloc[float32](%d): not %d-byte aligned", n, VectorAlign)
		}
		f64 := AlignedAlloc[float64](n)
		if !IsAddrAligned(f64) {
			t.Errorf("AlignedAlloc[float64](%d): not %d-byte aligned", n, VectorAlign)
		}
		for i, x := range f64 {
			if x != 0 {
				t.Fatalf("AlignedAlloc[float64](%d): element %d = %v, want 0", n, i, x)
			}
		}
	}
	if got := AlignedAlloc[float64](0); got != nil {
		t.Errorf("AlignedAlloc(0): got %v, want nil", got)
	}
}
