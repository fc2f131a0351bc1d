package hwy

import (
	"math"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadN(t *testing.T) {
	v := LoadN([]float64{1, 2, 3}, 8)
	if v.NumLanes() != 8 {
		t.Fatalf("LoadN: got %d lanes, want 8", v.NumLanes())
	}
	want := []float64{1, 2, 3, 0, 0, 0, 0, 0}
	for i, w := range want {
		if v.Lane(i) != w {
			t.Errorf("LoadN: lane %d: got %v, want %v", i, v.Lane(i), w)
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() == 0 {
		t.Error("Set created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}

	for _, lanes := range []int{2, 4, 8, 16} {
		if got := SetN[float32](1, lanes).NumLanes(); got != lanes {
			t.Errorf("SetN(%d): got %d lanes", lanes, got)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Vec[float32]) Vec[float32]
		a, b float32
		want float32
	}{
		{"Add", Add[float32], 10, 5, 15},
		{"Sub", Sub[float32], 10, 3, 7},
		{"Mul", Mul[float32], 4, 5, 20},
		{"Div", Div[float32], 20, 4, 5},
		{"Min", Min[float32], -1, 3, -1},
		{"Max", Max[float32], -1, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.op(SetN(tt.a, 4), SetN(tt.b, 4))
			for i := 0; i < result.NumLanes(); i++ {
				if result.data[i] != tt.want {
					t.Errorf("lane %d: got %v, want %v", i, result.data[i], tt.want)
				}
			}
		})
	}
}

func TestNeg(t *testing.T) {
	v := Set[float32](42.0)
	result := Neg(v)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != -42.0 {
			t.Errorf("Neg: lane %d: got %v, want -42.0", i, result.data[i])
		}
	}
}

func TestAbs(t *testing.T) {
	v := Set[float32](-42.0)
	result := Abs(v)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 42.0 {
			t.Errorf("Abs: lane %d: got %v, want 42.0", i, result.data[i])
		}
	}
}

func TestSqrt(t *testing.T) {
	result := Sqrt(SetN[float64](16, 2))
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 4 {
			t.Errorf("Sqrt: lane %d: got %v, want 4", i, result.data[i])
		}
	}
}

func TestFMA(t *testing.T) {
	result := MulAdd(SetN[float64](2, 4), SetN[float64](3, 4), SetN[float64](1, 4))
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 7 {
			t.Errorf("MulAdd: lane %d: got %v, want 7", i, result.data[i])
		}
	}
	result = NegMulAdd(SetN[float64](2, 4), SetN[float64](3, 4), SetN[float64](1, 4))
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != -5 {
			t.Errorf("NegMulAdd: lane %d: got %v, want -5", i, result.data[i])
		}
	}
}

func TestRounding(t *testing.T) {
	v := LoadN([]float64{-1.5, -0.5, 0.5, 1.5, 2.5}, 5)
	tests := []struct {
		name string
		op   func(Vec[float64]) Vec[float64]
		want []float64
	}{
		{"RoundToEven", RoundToEven[float64], []float64{-2, -0, 0, 2, 2}},
		{"Round", Round[float64], []float64{-2, -1, 1, 2, 3}},
		{"Floor", Floor[float64], []float64{-2, -1, 0, 1, 2}},
		{"Ceil", Ceil[float64], []float64{-1, -0, 1, 2, 3}},
		{"Trunc", Trunc[float64], []float64{-1, -0, 0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(v)
			for i, w := range tt.want {
				if got.data[i] != w {
					t.Errorf("lane %d: got %v, want %v", i, got.data[i], w)
				}
			}
		})
	}
}

func TestCopySign(t *testing.T) {
	got := CopySign(LoadN([]float64{1, -2, 3}, 3), LoadN([]float64{-1, 1, math.Copysign(0, -1)}, 3))
	want := []float64{-1, 2, -3}
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("CopySign: lane %d: got %v, want %v", i, got.data[i], w)
		}
	}
}

func TestReduce(t *testing.T) {
	v := LoadN([]float32{3, -1, 7, 2}, 4)
	if got := ReduceSum(v); got != 11 {
		t.Errorf("ReduceSum: got %v, want 11", got)
	}
	if got := ReduceMin(v); got != -1 {
		t.Errorf("ReduceMin: got %v, want -1", got)
	}
	if got := ReduceMax(v); got != 7 {
		t.Errorf("ReduceMax: got %v, want 7", got)
	}
}

func TestEqual(t *testing.T) {
	a := Load([]float32{1, 2, 3, 4})
	b := Load([]float32{1, 5, 3, 7})
	mask := Equal(a, b)

	if !mask.GetBit(0) {
		t.Error("Equal: expected lane 0 to be true")
	}
	if mask.GetBit(1) {
		t.Error("Equal: expected lane 1 to be false")
	}
	if !mask.GetBit(2) {
		t.Error("Equal: expected lane 2 to be true")
	}
	if mask.GetBit(3) {
		t.Error("Equal: expected lane 3 to be false")
	}
}

func TestLessThan(t *testing.T) {
	a := Load([]float32{1, 5, 3, 7})
	b := Load([]float32{2, 4, 4, 6})
	mask := LessThan(a, b)

	if !mask.GetBit(0) {
		t.Error("LessThan: expected lane 0 to be true (1 < 2)")
	}
	if mask.GetBit(1) {
		t.Error("LessThan: expected lane 1 to be false (5 < 4)")
	}
}

func TestGreaterThan(t *testing.T) {
	a := Load([]float32{3, 5, 2, 8})
	b := Load([]float32{2, 6, 3, 7})
	mask := GreaterThan(a, b)

	if !mask.GetBit(0) {
		t.Error("GreaterThan: expected lane 0 to be true (3 > 2)")
	}
	if mask.GetBit(1) {
		t.Error("GreaterThan: expected lane 1 to be false (5 > 6)")
	}
}

func TestClassify(t *testing.T) {
	v := LoadN([]float64{math.NaN(), math.Inf(1), math.Inf(-1), 1, math.Copysign(0, -1)}, 5)
	nan := IsNaN(v)
	inf := IsInf(v, 0)
	pos := IsInf(v, 1)
	fin := IsFinite(v)
	neg := IsNegative(v)

	if !nan.GetBit(0) || nan.CountTrue() != 1 {
		t.Errorf("IsNaN: got %d active lanes", nan.CountTrue())
	}
	if inf.CountTrue() != 2 || !pos.GetBit(1) || pos.GetBit(2) {
		t.Error("IsInf: wrong lanes")
	}
	if fin.CountTrue() != 2 || !fin.GetBit(3) || !fin.GetBit(4) {
		t.Error("IsFinite: wrong lanes")
	}
	if !neg.GetBit(2) || !neg.GetBit(4) || neg.GetBit(3) {
		t.Error("IsNegative: wrong lanes")
	}
}

func TestIfThenElse(t *testing.T) {
	mask := Equal(
		Load([]float32{1, 2, 3, 4}),
		Load([]float32{1, 0, 3, 0}),
	)
	a := Set[float32](100.0)
	b := Set[float32](200.0)
	result := IfThenElse(mask, a, b)

	if result.data[0] != 100.0 {
		t.Errorf("IfThenElse: lane 0: got %v, want 100.0", result.data[0])
	}
	if result.data[1] != 200.0 {
		t.Errorf("IfThenElse: lane 1: got %v, want 200.0", result.data[1])
	}
	if result.data[2] != 100.0 {
		t.Errorf("IfThenElse: lane 2: got %v, want 100.0", result.data[2])
	}

	zeroed := IfThenElseZero(mask, a)
	if zeroed.data[0] != 100 || zeroed.data[1] != 0 {
		t.Errorf("IfThenElseZero: got %v", zeroed.data)
	}
	zeroed = IfThenZeroElse(mask, b)
	if zeroed.data[0] != 0 || zeroed.data[1] != 200 {
		t.Errorf("IfThenZeroElse: got %v", zeroed.data)
	}
}

func TestMaskLogic(t *testing.T) {
	a := MaskFromBits[float32]([]bool{true, true, false, false})
	b := MaskFromBits[float32]([]bool{true, false, true, false})

	tests := []struct {
		name string
		got  Mask[float32]
		want []bool
	}{
		{"And", MaskAnd(a, b), []bool{true, false, false, false}},
		{"Or", MaskOr(a, b), []bool{true, true, true, false}},
		{"Not", MaskNot(a), []bool{false, false, true, true}},
		{"AndNot", MaskAndNot(a, b), []bool{false, false, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, w := range tt.want {
				if tt.got.GetBit(i) != w {
					t.Errorf("lane %d: got %v, want %v", i, tt.got.GetBit(i), w)
				}
			}
		})
	}
}

func TestMaskAllTrue(t *testing.T) {
	allTrue := TailMask[float32](4, 4)
	if !allTrue.AllTrue() {
		t.Error("AllTrue: expected true for full mask")
	}

	partial := TailMask[float32](2, 4)
	if partial.AllTrue() {
		t.Error("AllTrue: expected false for partial mask")
	}
}

func TestMaskAnyTrue(t *testing.T) {
	partial := TailMask[float32](2, 4)
	if !partial.AnyTrue() {
		t.Error("AnyTrue: expected true for partial mask")
	}

	empty := TailMask[float32](0, 4)
	if empty.AnyTrue() {
		t.Error("AnyTrue: expected false for empty mask")
	}
}

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}

	if name == "" || name == "unknown" {
		t.Errorf("CurrentName: got %q", name)
	}
	if width != level.Width() {
		t.Errorf("CurrentWidth %d, level %v width %d", width, level, level.Width())
	}
	if d := Describe(); !strings.HasPrefix(d, name+", ") {
		t.Errorf("Describe: got %q", d)
	}
	if got := DispatchLevel(99).String(); got != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q", got)
	}
	if got := DispatchLevel(-1).Width(); got != 16 {
		t.Errorf("DispatchLevel(-1).Width() = %d", got)
	}
}

func TestMaxLanes(t *testing.T) {
	maxF32 := MaxLanes[float32]()
	maxF64 := MaxLanes[float64]()

	t.Logf("MaxLanes: float32=%d, float64=%d", maxF32, maxF64)

	if maxF32 <= 0 {
		t.Error("MaxLanes[float32] should be positive")
	}

	// float64 uses twice as much space, so should have half the lanes
	if maxF64*2 != maxF32 {
		t.Errorf("MaxLanes: expected float64 lanes (%d) to be half of float32 lanes (%d)", maxF64, maxF32)
	}
}

func TestLaneWidths(t *testing.T) {
	if got := LaneWidths[float32](); len(got) != 4 || got[3] != 16 {
		t.Errorf("LaneWidths[float32]: got %v", got)
	}
	if got := LaneWidths[float64](); len(got) != 3 || got[2] != 8 {
		t.Errorf("LaneWidths[float64]: got %v", got)
	}
	for _, lanes := range LaneWidths[float64]() {
		if lanes*8 > VectorAlign {
			t.Errorf("LaneWidths[float64]: %d lanes exceed %d bytes", lanes, VectorAlign)
		}
	}
}

func TestConvertInts(t *testing.T) {
	v := LoadN([]float64{-2.7, 0, 3.9, math.NaN()}, 4)
	got := ToInts(v)
	want := []int{-2, 0, 3, 0}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("ToInts: lane %d: got %d, want %d", i, got[i], w)
		}
	}
	back := FromInts[float32]([]int{1, -4})
	if back.NumLanes() != 2 || back.data[1] != -4 {
		t.Errorf("FromInts: got %v", back.data)
	}
}
