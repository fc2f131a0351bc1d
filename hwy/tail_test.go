package hwy

import (
	"math"
	"slices"
	"testing"
)

func TestTailMask(t *testing.T) {
	mask := TailMask[float32](3, 8)

	if !mask.GetBit(0) || !mask.GetBit(1) || !mask.GetBit(2) {
		t.Error("TailMask: first 3 bits should be true")
	}

	for i := 3; i < mask.NumLanes(); i++ {
		if mask.GetBit(i) {
			t.Errorf("TailMask: bit %d should be false", i)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	data := make([]float32, 100)
	for i := range data {
		data[i] = float32(i)
	}

	output := make([]float32, len(data))

	fullVectors := 0
	tails := 0

	ProcessWithTail(len(data), 8,
		func(offset int) {
			fullVectors++
			v := LoadN(data[offset:offset+8], 8)
			Store(Add(v, v), output[offset:])
		},
		func(offset, count int) {
			tails++
			mask := TailMask[float32](count, 8)
			v := LoadN(data[offset:offset+count], 8)
			BlendedStore(Add(v, v), mask, output[offset:])
		},
	)

	if fullVectors != 12 || tails != 1 {
		t.Errorf("ProcessWithTail: got %d full groups and %d tails, want 12 and 1", fullVectors, tails)
	}

	for i, val := range output {
		expected := float32(i) * 2
		if math.Abs(float64(val-expected)) > 0.001 {
			t.Errorf("ProcessWithTail: output[%d]: got %v, want %v", i, val, expected)
		}
	}
}

func TestMapSlice(t *testing.T) {
	for _, lanes := range []int{2, 4, 8, 16} {
		input := make([]float64, 37)
		for i := range input {
			input[i] = float64(i)
		}
		output := make([]float64, len(input))
		MapSlice(input, output, lanes, func(v Vec[float64]) Vec[float64] {
			return MulAdd(v, SetLike(v, 2), SetLike(v, 1))
		})
		for i, got := range output {
			if want := 2*float64(i) + 1; got != want {
				t.Errorf("lanes=%d: output[%d] = %v, want %v", lanes, i, got, want)
			}
		}
	}

	// Output longer than input: the masked tail must not touch the rest.
	long := []float64{-1, -1, -1, -1, -1, -1, -1}
	MapSlice([]float64{1, 2, 3}, long, 4, func(v Vec[float64]) Vec[float64] { return Add(v, v) })
	if want := []float64{2, 4, 6, -1, -1, -1, -1}; !slices.Equal(long, want) {
		t.Errorf("MapSlice past input: got %v, want %v", long, want)
	}

	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	out := make([]float32, 3)
	MapSlice2(a, b, out, 2, Mul[float32])
	if out[0] != 4 || out[1] != 10 || out[2] != 18 {
		t.Errorf("MapSlice2: got %v", out)
	}
}

func TestAlignedSize(t *testing.T) {
	maxLanes := MaxLanes[float32]()

	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{1, maxLanes},
		{maxLanes, maxLanes},
		{maxLanes + 1, maxLanes * 2},
		{maxLanes * 2, maxLanes * 2},
	}

	for _, tt := range tests {
		result := AlignedSize[float32](tt.input)
		if result != tt.expected {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.input, result, tt.expected)
		}
	}
}
