package math

import (
	stdmath "math"
	"testing"

	"github.com/go-jbm/jbm/hwy"
)

var (
	inf64  = stdmath.Inf(1)
	nan64  = stdmath.NaN()
	negZ64 = stdmath.Copysign(0, -1)
)

// same reports bit-for-bit equality, treating all NaNs as equal.
func same(a, b float64) bool {
	if stdmath.IsNaN(a) || stdmath.IsNaN(b) {
		return stdmath.IsNaN(a) && stdmath.IsNaN(b)
	}
	return a == b && stdmath.Signbit(a) == stdmath.Signbit(b)
}

var unaryFuncs = []struct {
	name   string
	scalar func(float64) float64
	vec    func(hwy.Vec[float64]) hwy.Vec[float64]
}{
	{"Exp2", Exp2[float64], Exp2Vec[float64]},
	{"Exp", Exp[float64], ExpVec[float64]},
	{"Exp10", Exp10[float64], Exp10Vec[float64]},
	{"Expm1", Expm1[float64], Expm1Vec[float64]},
	{"Log2", Log2[float64], Log2Vec[float64]},
	{"Log", Log[float64], LogVec[float64]},
	{"Log10", Log10[float64], Log10Vec[float64]},
	{"Sin", Sin[float64], SinVec[float64]},
	{"Cos", Cos[float64], CosVec[float64]},
	{"Tan", Tan[float64], TanVec[float64]},
	{"Atan", Atan[float64], AtanVec[float64]},
	{"Asin", Asin[float64], AsinVec[float64]},
	{"Acos", Acos[float64], AcosVec[float64]},
	{"Sinh", Sinh[float64], SinhVec[float64]},
	{"Cosh", Cosh[float64], CoshVec[float64]},
	{"Tanh", Tanh[float64], TanhVec[float64]},
	{"Erf", Erf[float64], ErfVec[float64]},
	{"Erfc", Erfc[float64], ErfcVec[float64]},
}

func TestSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		x    float64
		want float64
	}{
		{"Exp2(NaN)", Exp2[float64], nan64, nan64},
		{"Exp2(+Inf)", Exp2[float64], inf64, inf64},
		{"Exp2(-Inf)", Exp2[float64], -inf64, 0},
		{"Exp2(1024)", Exp2[float64], 1024, inf64},
		{"Exp2(-1022)", Exp2[float64], -1022, 0x1p-1022},
		{"Exp2(-1023)", Exp2[float64], -1023, 0},
		{"Exp2(10)", Exp2[float64], 10, 1024},
		{"Exp(0)", Exp[float64], 0, 1},
		{"Exp(710)", Exp[float64], 710, inf64},
		{"Exp(-710)", Exp[float64], -710, 0},
		{"Exp(-Inf)", Exp[float64], -inf64, 0},
		{"Exp10(0)", Exp10[float64], 0, 1},
		{"Exp10(309)", Exp10[float64], 309, inf64},
		{"Expm1(-0)", Expm1[float64], negZ64, negZ64},
		{"Expm1(-Inf)", Expm1[float64], -inf64, -1},
		{"Expm1(+Inf)", Expm1[float64], inf64, inf64},
		{"Log(0)", Log[float64], 0, -inf64},
		{"Log(-0)", Log[float64], negZ64, -inf64},
		{"Log(-1)", Log[float64], -1, nan64},
		{"Log(+Inf)", Log[float64], inf64, inf64},
		{"Log(1)", Log[float64], 1, 0},
		{"Log(NaN)", Log[float64], nan64, nan64},
		{"Log2(8)", Log2[float64], 8, 3},
		{"Log2(0.5)", Log2[float64], 0.5, -1},
		{"Log2(2^-1074)", Log2[float64], 0x1p-1074, -1074},
		{"Log2(0x1p1023)", Log2[float64], 0x1p1023, 1023},
		{"Log10(-Inf)", Log10[float64], -inf64, nan64},
		{"Sin(-0)", Sin[float64], negZ64, negZ64},
		{"Sin(+Inf)", Sin[float64], inf64, nan64},
		{"Cos(0)", Cos[float64], 0, 1},
		{"Cos(-Inf)", Cos[float64], -inf64, nan64},
		{"Tan(-0)", Tan[float64], negZ64, negZ64},
		{"Tan(NaN)", Tan[float64], nan64, nan64},
		{"Atan(-0)", Atan[float64], negZ64, negZ64},
		{"Atan(+Inf)", Atan[float64], inf64, stdmath.Pi / 2},
		{"Atan(-Inf)", Atan[float64], -inf64, -stdmath.Pi / 2},
		{"Asin(1)", Asin[float64], 1, stdmath.Pi / 2},
		{"Asin(-1)", Asin[float64], -1, -stdmath.Pi / 2},
		{"Asin(1.5)", Asin[float64], 1.5, nan64},
		{"Asin(-0)", Asin[float64], negZ64, negZ64},
		{"Acos(1)", Acos[float64], 1, 0},
		{"Acos(-1)", Acos[float64], -1, stdmath.Pi},
		{"Acos(-1.5)", Acos[float64], -1.5, nan64},
		{"Sinh(-0)", Sinh[float64], negZ64, negZ64},
		{"Sinh(-Inf)", Sinh[float64], -inf64, -inf64},
		{"Sinh(711)", Sinh[float64], 711, inf64},
		{"Cosh(-Inf)", Cosh[float64], -inf64, inf64},
		{"Cosh(0)", Cosh[float64], 0, 1},
		{"Tanh(+Inf)", Tanh[float64], inf64, 1},
		{"Tanh(-Inf)", Tanh[float64], -inf64, -1},
		{"Tanh(-0)", Tanh[float64], negZ64, negZ64},
		{"Tanh(40)", Tanh[float64], 40, 1},
		{"Erf(+Inf)", Erf[float64], inf64, 1},
		{"Erf(-Inf)", Erf[float64], -inf64, -1},
		{"Erf(-0)", Erf[float64], negZ64, negZ64},
		{"Erf(NaN)", Erf[float64], nan64, nan64},
		{"Erfc(+Inf)", Erfc[float64], inf64, 0},
		{"Erfc(-Inf)", Erfc[float64], -inf64, 2},
		{"Erfc(0)", Erfc[float64], 0, 1},
		{"Erfc(27)", Erfc[float64], 27, 0},
		{"Erfc(-27)", Erfc[float64], -27, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.x); !same(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSpecialLanes mixes special arguments with ordinary ones in one lane
// group and checks every lane against the scalar form.
func TestSpecialLanes(t *testing.T) {
	xs := []float64{nan64, inf64, -inf64, 0, negZ64, 0.75, -2.5, 1e6, -1e-310, 1.5, 800, -800}
	for _, fn := range unaryFuncs {
		t.Run(fn.name, func(t *testing.T) {
			for start := 0; start < len(xs); start += 4 {
				group := xs[start : start+4]
				v := fn.vec(hwy.LoadN(group, 4))
				for i, x := range group {
					want := fn.scalar(x)
					got := v.Lane(i)
					if stdmath.IsNaN(want) || stdmath.IsInf(want, 0) || want == 0 {
						if !same(got, want) {
							t.Errorf("%sVec lane %v = %v, want %v", fn.name, x, got, want)
						}
						continue
					}
					if !within(got, want, 2e-15, 1e-300) {
						t.Errorf("%sVec lane %v = %v, want %v", fn.name, x, got, want)
					}
				}
			}
		})
	}
}

func TestSpecialValuesF32(t *testing.T) {
	inf32 := float32(stdmath.Inf(1))
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"Exp2(128)", Exp2[float32](128), inf32},
		{"Exp2(-126)", Exp2[float32](-126), 0x1p-126},
		{"Exp2(-127)", Exp2[float32](-127), 0},
		{"Exp(89)", Exp[float32](89), inf32},
		{"Exp(-88)", Exp[float32](-88), 0},
		{"Log2(1024)", Log2[float32](1024), 10},
		{"Log(0)", Log[float32](0), -inf32},
		{"Tanh(10)", Tanh[float32](10), 1},
		{"Erfc(11)", Erfc[float32](11), 0},
		{"Cosh(100)", Cosh[float32](100), inf32},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if got := Exp2[float32](127.5); stdmath.IsInf(float64(got), 0) {
		t.Errorf("Exp2(127.5) overflowed")
	}
}

func TestPowSpecial(t *testing.T) {
	tests := []struct{ x, y float64 }{
		{nan64, 0}, {2, 0}, {1, nan64}, {nan64, 1}, {2, nan64},
		{0, -1}, {negZ64, -1}, {negZ64, -2}, {0, 3}, {negZ64, 3}, {negZ64, 2},
		{-1, inf64}, {-1, -inf64}, {0.5, inf64}, {0.5, -inf64}, {2, inf64}, {2, -inf64},
		{inf64, 2}, {inf64, -2}, {-inf64, 3}, {-inf64, 2}, {-inf64, -3}, {-inf64, -2},
		{-2, 0.5}, {-8, 1.0 / 3.0}, {4, 0.5}, {4, -0.5}, {-2, 3}, {-2, 2}, {2, -1},
	}
	for _, tt := range tests {
		want := stdmath.Pow(tt.x, tt.y)
		got := Pow(tt.x, tt.y)
		if !same(got, want) {
			t.Errorf("Pow(%v, %v) = %v, want %v", tt.x, tt.y, got, want)
		}
		v := PowVec(hwy.LoadN([]float64{tt.x}, 1), hwy.LoadN([]float64{tt.y}, 1))
		if !same(v.Lane(0), got) {
			t.Errorf("PowVec(%v, %v) = %v, want %v", tt.x, tt.y, v.Lane(0), got)
		}
	}
}

func TestAtan2Special(t *testing.T) {
	tests := []struct{ y, x float64 }{
		{nan64, 1}, {1, nan64}, {0, 1}, {negZ64, 1}, {0, negZ64}, {negZ64, -1}, {0, -1},
		{1, 0}, {-1, 0}, {inf64, inf64}, {-inf64, inf64}, {inf64, -inf64}, {-inf64, -inf64},
		{1, inf64}, {-1, inf64}, {1, -inf64}, {-1, -inf64}, {inf64, 3}, {-inf64, -3},
	}
	for _, tt := range tests {
		want := stdmath.Atan2(tt.y, tt.x)
		if got := Atan2(tt.y, tt.x); !same(got, want) {
			t.Errorf("Atan2(%v, %v) = %v, want %v", tt.y, tt.x, got, want)
		}
		v := Atan2Vec(hwy.LoadN([]float64{tt.y}, 1), hwy.LoadN([]float64{tt.x}, 1))
		if !same(v.Lane(0), want) {
			t.Errorf("Atan2Vec(%v, %v) = %v, want %v", tt.y, tt.x, v.Lane(0), want)
		}
	}
}
