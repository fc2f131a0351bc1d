// Package precision selects the two floating-point types the rest of jbm is
// instantiated with, and describes their IEEE-754 layout.
//
// Two tiers are fixed at build time: Low (default float32) and High (default
// float64). Build tags move a tier to another width:
//
//	jbm_low_double     Low = float64
//	jbm_low_extended   Low = float64, reported as Extended
//	jbm_low_quadruple  Low = float64, reported as Quadruple
//	jbm_high_single    High = float32
//	jbm_high_extended  High = float64, reported as Extended
//	jbm_high_quadruple High = float64, reported as Quadruple
//
// Go has no binary80 or binary128 type, so the extended and quadruple tiers
// are stored as float64. Their tier is still reported so diagnostics and
// formatting show what the build asked for.
package precision

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-jbm/jbm/hwy"
)

// Tier names one of the four precision choices.
type Tier int

const (
	Single Tier = iota
	Double
	Extended
	Quadruple
)

func (t Tier) String() string {
	switch t {
	case Single:
		return "single"
	case Double:
		return "double"
	case Extended:
		return "extended"
	case Quadruple:
		return "quadruple"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// IEEE describes the binary layout of a floating type.
type IEEE struct {
	Bits         int // total width
	MantissaBits int // stored fraction bits
	Bias         int
	MinExp       int // smallest normal binary exponent of 2^e
	MaxExp       int // largest e with 2^e finite
}

var (
	ieee32 = IEEE{Bits: 32, MantissaBits: 23, Bias: 127, MinExp: -126, MaxExp: 127}
	ieee64 = IEEE{Bits: 64, MantissaBits: 52, Bias: 1023, MinExp: -1022, MaxExp: 1023}
)

// Is32 reports whether T is a single precision type.
func Is32[T hwy.Floats]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Traits returns the IEEE-754 layout of T.
func Traits[T hwy.Floats]() IEEE {
	if Is32[T]() {
		return ieee32
	}
	return ieee64
}

// Epsilon returns the machine epsilon of T, the gap between 1 and the next
// representable value.
func Epsilon[T hwy.Floats]() T {
	if Is32[T]() {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

// SmallestNormal returns the smallest positive normal value of T.
func SmallestNormal[T hwy.Floats]() T {
	if Is32[T]() {
		return T(0x1p-126)
	}
	return T(0x1p-1022)
}

// MaxValue returns the largest finite value of T.
func MaxValue[T hwy.Floats]() T {
	if Is32[T]() {
		return T(math.MaxFloat32)
	}
	m := math.MaxFloat64
	return T(m)
}

// Digits returns the number of significant decimal digits needed to
// round-trip a value of T.
func Digits[T hwy.Floats]() int {
	if Is32[T]() {
		return 9
	}
	return 17
}

// Format returns the printf verb that prints a value of T with all its
// significant digits.
func Format[T hwy.Floats]() string {
	return fmt.Sprintf("%%.%dg", Digits[T]())
}

// Sprint formats x with Format[T].
func Sprint[T hwy.Floats](x T) string {
	return fmt.Sprintf(Format[T](), float64(x))
}
