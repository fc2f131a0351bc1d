// Package flux provides the flux limiters used by high resolution schemes.
//
// A limiter receives two consecutive differences d1 and d2 and returns the
// weight of the high order flux. Every limiter except Total, Null and
// Centred returns 0 when d1*d2 is not above the machine epsilon of T, that
// is when the differences change sign or one of them vanishes.
package flux

import (
	"errors"
	"fmt"

	"github.com/go-jbm/jbm/hwy"
	"github.com/go-jbm/jbm/hwy/contrib/precision"
)

// Kind selects a limiter.
type Kind int

const (
	KindTotal Kind = iota
	KindNull
	KindCentred
	KindSuperbee
	KindVanLeer
	KindVanAlbada
	KindMinsuper
	KindSupermin
	KindMinmod
	KindMonotonizedCentral
	KindMean
)

// NumKinds is the number of limiters.
const NumKinds = int(KindMean) + 1

var kindNames = [NumKinds]string{
	"total", "null", "centred", "superbee", "van-leer", "van-albada",
	"minsuper", "supermin", "minmod", "monotonized-central", "mean",
}

// ErrUnknownKind is returned by ParseKind for an unrecognised name.
var ErrUnknownKind = errors.New("flux: unknown limiter")

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s, as printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("ParseKind %q: %w", s, ErrUnknownKind)
}

// degenerate reports whether d1 and d2 do not share a sign.
func degenerate[T hwy.Floats](d1, d2 T) bool {
	return d1*d2 <= precision.Epsilon[T]()
}

// Total limits fully: the scheme falls back to first order.
func Total[T hwy.Floats](d1, d2 T) T { return 0 }

// Null does not limit.
func Null[T hwy.Floats](d1, d2 T) T { return 1 }

// Centred returns the ratio d1/d2 unclamped, or 0 if d2 is below the
// machine epsilon in magnitude.
func Centred[T hwy.Floats](d1, d2 T) T {
	if d2 < precision.Epsilon[T]() && -d2 < precision.Epsilon[T]() {
		return 0
	}
	return d1 / d2
}

// Superbee returns max(min(2r, 1), min(r, 2)) in [0, 2].
func Superbee[T hwy.Floats](d1, d2 T) T {
	if degenerate(d1, d2) {
		return 0
	}
	r := d1 / d2
	return max(min(r+r, 1), min(r, 2))
}

// VanLeer returns (r+|r|)/(1+|r|) in [0, 2).
func VanLeer[T hwy.Floats](d1, d2 T) T {
	if degenerate(d1, d2) {
		return 0
	}
	r := d1 / d2
	return (r + r) / (1 + r)
}

// VanAlbada returns (r+r²)/(1+r²).
func VanAlbada[T hwy.Floats](d1, d2 T) T {
	if degenerate(d1, d2) {
		return 0
	}
	r := d1 / d2
	k := r * r
	return (r + k) / (1 + k)
}

// Minsuper returns min(r, 2).
func Minsuper[T hwy.Floats](d1, d2 T) T {
	if degenerate(d1, d2) {
		return 0
	}
	return min(d1/d2, 2)
}

// Supermin returns min(2r, 1).
func Supermin[T hwy.Floats](d1, d2 T) T {
	if degenerate(d1, d2) {
		return 0
	}
	r := d1 / d2
	return min(r+r, 1)
}

// Minmod returns min(r, 1) in [0, 1].
func Minmod[T hwy.Floats](d1, d2 T) T {
	if degenerate(d1, d2) {
		return 0
	}
	return min(d1/d2, 1)
}

// MonotonizedCentral returns min(2r, (r+1)/2, 2) in [0, 2].
func MonotonizedCentral[T hwy.Floats](d1, d2 T) T {
	if degenerate(d1, d2) {
		return 0
	}
	r := d1 / d2
	switch {
	case r >= 3:
		return 2
	case r >= T(1)/3:
		return (r + 1) / 2
	}
	return r + r
}

// Mean returns (r+1)/2.
func Mean[T hwy.Floats](d1, d2 T) T {
	if degenerate(d1, d2) {
		return 0
	}
	return (d1/d2 + 1) / 2
}

// Limiter returns the limiter of kind k, or nil for an unknown kind.
func Limiter[T hwy.Floats](k Kind) func(d1, d2 T) T {
	switch k {
	case KindTotal:
		return Total[T]
	case KindNull:
		return Null[T]
	case KindCentred:
		return Centred[T]
	case KindSuperbee:
		return Superbee[T]
	case KindVanLeer:
		return VanLeer[T]
	case KindVanAlbada:
		return VanAlbada[T]
	case KindMinsuper:
		return Minsuper[T]
	case KindSupermin:
		return Supermin[T]
	case KindMinmod:
		return Minmod[T]
	case KindMonotonizedCentral:
		return MonotonizedCentral[T]
	case KindMean:
		return Mean[T]
	}
	return nil
}
