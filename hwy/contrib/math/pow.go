package math

import (
	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// isOddInt reports whether x is an odd integer.
func isOddInt[T hwy.Floats](x T) bool {
	if abs(x) >= T(int64(1)<<(precision.Traits[T]().MantissaBits+1)) {
		return false
	}
	i := int64(x)
	return T(i) == x && i&1 == 1
}

func isInt[T hwy.Floats](x T) bool {
	return x == roundToEven(x)
}

// Pow returns x**y computed as 2^(y*log2(x)). Special cases follow the
// C99 Annex F conventions: Pow(x, ±0) is 1 for any x, Pow(1, y) is 1 for
// any y, and a negative finite x with a non-integer y gives NaN.
func Pow[T hwy.Floats](x, y T) T {
	switch {
	case y == 0 || x == 1:
		return 1
	case y == 1:
		return x
	case isNaN(x) || isNaN(y):
		return nan[T]()
	case x == 0:
		switch {
		case y < 0:
			if isOddInt(y) {
				return copysign(inf[T](1), x)
			}
			return inf[T](1)
		case isOddInt(y):
			return x
		}
		return 0
	case isInf(y, 0):
		switch {
		case x == -1:
			return 1
		case (abs(x) < 1) == isInf(y, 1):
			return 0
		}
		return inf[T](1)
	case isInf(x, 0):
		if isInf(x, -1) {
			return Pow(1/x, -y)
		}
		if y < 0 {
			return 0
		}
		return inf[T](1)
	case y == 0.5:
		return sqrt(x)
	case y == -0.5:
		return 1 / sqrt(x)
	}

	neg := false
	if x < 0 {
		if !isInt(y) {
			return nan[T]()
		}
		neg = isOddInt(y)
		x = -x
	}
	r := Exp2(y * Log2(x))
	if neg {
		return -r
	}
	return r
}

// PowVec is Pow over lane groups x and y.
func PowVec[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	r := Exp2Vec(hwy.Mul(y, Log2Vec(x)))

	// Everything but a positive finite base with a finite exponent other
	// than the exactly handled ones goes through Pow.
	special := hwy.MaskNot(hwy.GreaterThan(x, hwy.SetLike(x, 0)))
	special = hwy.MaskOr(special, hwy.MaskOr(nonFinite(x), nonFinite(y)))
	for _, v := range []T{0, 1, 0.5, -0.5} {
		special = hwy.MaskOr(special, hwy.Equal(y, hwy.SetLike(y, v)))
	}
	special = hwy.MaskOr(special, hwy.Equal(x, hwy.SetLike(x, 1)))
	return fixLanes2(r, x, y, special, Pow[T])
}
