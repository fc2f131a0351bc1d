package ieee

import (
	stdmath "math"
	"math/rand/v2"
	"testing"

	"github.com/go-jbm/jbm/hwy"
)

func TestFrexpRoundTrip64(t *testing.T) {
	tests := []struct {
		name  string
		input float64
	}{
		{"one", 1},
		{"half", 0.5},
		{"negative", -3.75},
		{"max", stdmath.MaxFloat64},
		{"smallest normal", 0x1p-1022},
		{"largest subnormal", 0x1p-1022 - 0x1p-1074},
		{"smallest subnormal", 0x1p-1074},
		{"negative subnormal", -3 * 0x1p-1070},
		{"pi", stdmath.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, e := Frexp(tt.input)
			if a := stdmath.Abs(m); a < 0.5 || a >= 1 {
				t.Errorf("Frexp(%g) mantissa %g outside [0.5, 1)", tt.input, m)
			}
			wm, we := stdmath.Frexp(tt.input)
			if m != wm || e != we {
				t.Errorf("Frexp(%g) = (%g, %d), want (%g, %d)", tt.input, m, e, wm, we)
			}
			if got := Ldexp(m, e); stdmath.Float64bits(got) != stdmath.Float64bits(tt.input) {
				t.Errorf("Ldexp(Frexp(%g)) = %g", tt.input, got)
			}
		})
	}
}

func TestFrexpRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20000 {
		b64 := r.Uint64()
		x := stdmath.Float64frombits(b64)
		if x == 0 || stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
			continue
		}
		m, e := Frexp(x)
		if got := Ldexp(m, e); got != x {
			t.Fatalf("Ldexp(Frexp(%g)) = %g", x, got)
		}

		x32 := stdmath.Float32frombits(uint32(b64))
		if x32 == 0 || x32 != x32 || stdmath.IsInf(float64(x32), 0) {
			continue
		}
		m32, e32 := Frexp(x32)
		if a := stdmath.Abs(float64(m32)); a < 0.5 || a >= 1 {
			t.Fatalf("Frexp(%g) mantissa %g outside [0.5, 1)", x32, m32)
		}
		if got := Ldexp(m32, e32); got != x32 {
			t.Fatalf("Ldexp(Frexp(float32 %g)) = %g", x32, got)
		}
	}
}

func TestFrexpSpecial(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	for _, x := range []float64{0, negZero, stdmath.Inf(1), stdmath.Inf(-1)} {
		m, e := Frexp(x)
		if stdmath.Float64bits(m) != stdmath.Float64bits(x) || e != 0 {
			t.Errorf("Frexp(%g) = (%g, %d), want (%g, 0)", x, m, e, x)
		}
	}
	if m, e := Frexp(stdmath.NaN()); !stdmath.IsNaN(m) || e != 0 {
		t.Errorf("Frexp(NaN) = (%g, %d)", m, e)
	}
	if m, e := Frexp(float32(0x1p-149)); m != 0.5 || e != -148 {
		t.Errorf("Frexp(float32 min subnormal) = (%g, %d)", m, e)
	}
}

func TestExp2n(t *testing.T) {
	tests := []struct {
		e     int
		want  float64
		want2 float32
	}{
		{0, 1, 1},
		{10, 1024, 1024},
		{-1, 0.5, 0.5},
		{127, 0x1p127, 0x1p127},
		{128, 0x1p128, float32(stdmath.Inf(1))},
		{-126, 0x1p-126, 0x1p-126},
		{-127, 0x1p-127, 0},
		{1023, 0x1p1023, float32(stdmath.Inf(1))},
		{1024, stdmath.Inf(1), float32(stdmath.Inf(1))},
		{-1022, 0x1p-1022, 0},
		{-1023, 0, 0},
	}
	for _, tt := range tests {
		if got := Exp2n[float64](tt.e); got != tt.want {
			t.Errorf("Exp2n[float64](%d) = %g, want %g", tt.e, got, tt.want)
		}
		if got := Exp2n[float32](tt.e); got != tt.want2 {
			t.Errorf("Exp2n[float32](%d) = %g, want %g", tt.e, got, tt.want2)
		}
	}
}

func TestLdexp(t *testing.T) {
	tests := []struct {
		x    float64
		e    int
		want float64
	}{
		{1.5, 3, 12},
		{0.75, 1024, 0.75 * 0x1p1023 * 2},
		{1, 5000, stdmath.Inf(1)},
		{-1, 5000, stdmath.Inf(-1)},
		{1, -5000, 0},
		{0, 5000, 0},
		{0.5, -1073, 0x1p-1074},
	}
	for _, tt := range tests {
		if got := Ldexp(tt.x, tt.e); got != tt.want {
			t.Errorf("Ldexp(%g, %d) = %g, want %g", tt.x, tt.e, got, tt.want)
		}
	}
	if got := Ldexp(stdmath.NaN(), 3); !stdmath.IsNaN(got) {
		t.Errorf("Ldexp(NaN, 3) = %g", got)
	}
}

func TestBits(t *testing.T) {
	if got := Bits(float32(1)); got != 0x3f800000 {
		t.Errorf("Bits(float32(1)) = %#x", got)
	}
	if got := Bits(-2.0); got != 0xc000000000000000 {
		t.Errorf("Bits(-2.0) = %#x", got)
	}
	if got := FromBits[float32](0x40490fdb); got != float32(stdmath.Pi) {
		t.Errorf("FromBits[float32] = %g", got)
	}
}

func TestTruncateMantissa(t *testing.T) {
	x := 1.0 + 0x1p-30 + 0x1p-40
	got := TruncateMantissa(x, 25)
	if got != 1 {
		t.Errorf("TruncateMantissa(%g, 25) = %g, want 1", x, got)
	}
	y := 1.0 / 3
	h := TruncateMantissa(y, 25)
	if stdmath.FMA(h, h, -(h*h)) != 0 {
		t.Errorf("square of %g is not exact", h)
	}
	if got := TruncateMantissa(float32(1.0/3), 11); got*got != float32(float64(got)*float64(got)) {
		t.Errorf("float32 square of %g is not exact", got)
	}
}

func TestVecMatchesScalar(t *testing.T) {
	inputs := []float64{1, -0.3, 0, stdmath.Inf(-1), 0x1p-1070, 7e300, stdmath.NaN(), -123.25}
	v := hwy.LoadN(inputs, len(inputs))
	m, e := FrexpVec(v)
	for i, x := range inputs {
		wm, we := Frexp(x)
		gm := m.Lane(i)
		if e[i] != we || (gm != wm && !(stdmath.IsNaN(gm) && stdmath.IsNaN(wm))) {
			t.Errorf("lane %d: FrexpVec(%g) = (%g, %d), want (%g, %d)", i, x, gm, e[i], wm, we)
		}
	}
	back := LdexpVec(m, e)
	for i, x := range inputs {
		got := back.Lane(i)
		if got != x && !(stdmath.IsNaN(got) && stdmath.IsNaN(x)) {
			t.Errorf("lane %d: LdexpVec(FrexpVec(%g)) = %g", i, x, got)
		}
	}

	p := Exp2nVec[float32]([]int{0, 3, 200, -200})
	want := []float32{1, 8, float32(stdmath.Inf(1)), 0}
	for i, w := range want {
		if p.Lane(i) != w {
			t.Errorf("Exp2nVec lane %d = %g, want %g", i, p.Lane(i), w)
		}
	}

	tv := TruncateMantissaVec(hwy.LoadN([]float64{1.0 + 0x1p-40}, 1), 25)
	if tv.Lane(0) != 1 {
		t.Errorf("TruncateMantissaVec: got %g", tv.Lane(0))
	}
}

func BenchmarkFrexp(b *testing.B) {
	b.ReportAllocs()
	x := 123.456
	for i := 0; i < b.N; i++ {
		m, e := Frexp(x)
		x = Ldexp(m, e)
	}
}
