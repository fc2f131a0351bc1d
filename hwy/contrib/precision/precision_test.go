package precision

import (
	"math"
	"testing"
)

func TestEpsilon(t *testing.T) {
	if got := Epsilon[float32](); got != float32(math.Nextafter32(1, 2)-1) {
		t.Errorf("Epsilon[float32]: got %g", got)
	}
	if got := Epsilon[float64](); got != math.Nextafter(1, 2)-1 {
		t.Errorf("Epsilon[float64]: got %g", got)
	}
}

func TestTraits(t *testing.T) {
	tests := []struct {
		name string
		got  IEEE
		want IEEE
	}{
		{"float32", Traits[float32](), IEEE{32, 23, 127, -126, 127}},
		{"float64", Traits[float64](), IEEE{64, 52, 1023, -1022, 1023}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
	if SmallestNormal[float64]() != math.SmallestNonzeroFloat64*(1<<52) {
		t.Errorf("SmallestNormal[float64]: got %g", SmallestNormal[float64]())
	}
	if MaxValue[float32]() != math.MaxFloat32 {
		t.Errorf("MaxValue[float32]: got %g", MaxValue[float32]())
	}
}

func TestFormat(t *testing.T) {
	if got := Format[float32](); got != "%.9g" {
		t.Errorf("Format[float32]: got %q", got)
	}
	if got := Sprint(0.1); got != "0.10000000000000001" {
		t.Errorf("Sprint(0.1): got %q", got)
	}
	if got := Sprint(float32(0.1)); got != "0.100000001" {
		t.Errorf("Sprint(float32(0.1)): got %q", got)
	}
}

func TestTiers(t *testing.T) {
	var low Low
	var high High
	t.Logf("low tier %v (%T), high tier %v (%T)", LowTier, low, HighTier, high)
	if LowTier.String() == "" || HighTier.String() == "" {
		t.Error("empty tier name")
	}
	if Is32[Low]() != (LowTier == Single) {
		t.Errorf("Low storage does not match tier %v", LowTier)
	}
	if Is32[High]() != (HighTier == Single) {
		t.Errorf("High storage does not match tier %v", HighTier)
	}
	if got := Tier(9).String(); got != "Tier(9)" {
		t.Errorf("Tier(9).String(): got %q", got)
	}
}
