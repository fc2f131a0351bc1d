// Package ieee splits floating values into mantissa and binary exponent and
// builds them back. It is the only jbm package that looks at raw IEEE-754
// bit patterns; everything else goes through Frexp, Exp2n and Ldexp.
package ieee

import (
	"math"

	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// Bits returns the bit pattern of x, zero-extended to 64 bits for single
// precision types.
func Bits[T hwy.Floats](x T) uint64 {
	if precision.Is32[T]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits is the inverse of Bits.
func FromBits[T hwy.Floats](b uint64) T {
	if precision.Is32[T]() {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// Frexp splits x into a mantissa in [0.5, 1) and an exponent with
// mantissa * 2^exp == x. NaN, ±Inf and ±0 are returned unchanged with a
// zero exponent. Subnormal inputs are normalized first.
func Frexp[T hwy.Floats](x T) (T, int) {
	t := precision.Traits[T]()
	b := Bits(x)
	expMask := uint64(1)<<(t.Bits-t.MantissaBits-1) - 1
	biased := int(b >> t.MantissaBits & expMask)
	switch {
	case biased == int(expMask):
		return x, 0
	case biased == 0:
		if b<<(65-t.Bits) == 0 {
			return x, 0
		}
		m, e := Frexp(x * Exp2n[T](t.MantissaBits))
		return m, e - t.MantissaBits
	}
	// Replace the exponent field with the one of 0.5.
	b = b&^(expMask<<t.MantissaBits) | uint64(t.Bias-1)<<t.MantissaBits
	return FromBits[T](b), biased - t.Bias + 1
}

// Exp2n returns 2^e built directly from its bit pattern. It returns +Inf
// above the largest finite exponent and 0 below the smallest normal one;
// there is no subnormal result.
func Exp2n[T hwy.Floats](e int) T {
	t := precision.Traits[T]()
	switch {
	case e > t.MaxExp:
		return T(math.Inf(1))
	case e < t.MinExp:
		return 0
	}
	return FromBits[T](uint64(e+t.Bias) << t.MantissaBits)
}

// splitExp returns e1, e2 with e1+e2 == e such that 2^e1 * 2^e2 can be
// applied in two exact steps whenever the final result is representable.
func splitExp(e int, t precision.IEEE) (int, int) {
	switch {
	case e > t.MaxExp:
		return t.MaxExp, e - t.MaxExp
	case e >= t.MinExp:
		return e, 0
	}
	k := t.MantissaBits + 1
	if e+k >= t.MinExp {
		return e + k, -k
	}
	return t.MinExp, e - t.MinExp
}

// Ldexp returns x * 2^e. Within the normal exponent range it is exactly
// x * Exp2n(e); outside it the scaling is applied in two factors so that
// Ldexp(Frexp(x)) reproduces every finite x, subnormals included.
func Ldexp[T hwy.Floats](x T, e int) T {
	if x == 0 || isSpecial(x) {
		return x
	}
	e1, e2 := splitExp(e, precision.Traits[T]())
	return x * Exp2n[T](e1) * Exp2n[T](e2)
}

// TruncateMantissa clears all but the leading keep fraction bits of x.
// The square of the result is exact when keep+1 significant bits fit twice
// into the significand: keep <= 11 for float32, keep <= 25 for float64.
func TruncateMantissa[T hwy.Floats](x T, keep int) T {
	t := precision.Traits[T]()
	drop := t.MantissaBits - keep
	if drop <= 0 || isSpecial(x) {
		return x
	}
	return FromBits[T](Bits(x) &^ (uint64(1)<<drop - 1))
}

func isSpecial[T hwy.Floats](x T) bool {
	f := float64(x)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
